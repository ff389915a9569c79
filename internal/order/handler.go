package order

import (
	"encoding/json"
	"errors"
	"net/http"

	"mimistyle-be/internal/logger"
	"mimistyle-be/internal/payment"
	"mimistyle-be/internal/utils"

	"github.com/julienschmidt/httprouter"
	"go.uber.org/zap"
)

type Handler struct {
	svc Service
}

func NewHandler(svc Service) *Handler {
	return &Handler{svc: svc}
}

type createResponse struct {
	Order   *Order                   `json:"order"`
	Invoice *payment.PaymentResponse `json:"invoice,omitempty"`
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var params CreateOrderParams
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
		utils.WriteJSONError(w, "", http.StatusBadRequest)
		return
	}

	// The buyer comes from the session, not the request body.
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.WriteJSONError(w, "", http.StatusUnauthorized)
		return
	}
	params.BuyerID = userID

	o, invoice, err := h.svc.Create(r.Context(), params)
	if err != nil {
		switch {
		case errors.Is(err, ErrEmptyOrder):
			utils.WriteJSONError(w, "Đơn hàng phải có ít nhất một sản phẩm", http.StatusBadRequest)
		case errors.Is(err, ErrBuyerNotFound):
			utils.WriteJSONError(w, "Không tìm thấy người mua", http.StatusBadRequest)
		case errors.Is(err, ErrProductNotFound):
			utils.WriteJSONError(w, "Sản phẩm trong đơn hàng không tồn tại", http.StatusBadRequest)
		default:
			logger.FromCtx(r.Context()).Error("create order failed", zap.Error(err))
			utils.WriteJSONError(w, "Không thể tạo đơn hàng", http.StatusInternalServerError)
		}
		return
	}

	utils.WriteJSON(w, http.StatusCreated, createResponse{Order: o, Invoice: invoice})
}

type updateStatusRequest struct {
	Status OrderStatus `json:"status"`
}

func (h *Handler) UpdateStatus(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id, err := utils.ToUint(ps.ByName("id"))
	if err != nil {
		utils.WriteJSONError(w, "", http.StatusBadRequest)
		return
	}

	var req updateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteJSONError(w, "", http.StatusBadRequest)
		return
	}

	if err := h.svc.UpdateStatus(r.Context(), id, req.Status); err != nil {
		switch {
		case errors.Is(err, ErrInvalidStatus):
			utils.WriteJSONError(w, "Trạng thái đơn hàng không hợp lệ", http.StatusBadRequest)
		case errors.Is(err, ErrOrderNotFound):
			utils.WriteJSONError(w, "Không tìm thấy đơn hàng", http.StatusNotFound)
		default:
			logger.FromCtx(r.Context()).Error("update order status failed",
				zap.Uint("order_id", id), zap.Error(err))
			utils.WriteJSONError(w, "", http.StatusInternalServerError)
		}
		return
	}

	utils.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Đã cập nhật trạng thái đơn hàng",
	})
}

func (h *Handler) GetMine(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.WriteJSONError(w, "", http.StatusUnauthorized)
		return
	}

	orders, err := h.svc.GetByBuyer(r.Context(), userID)
	if err != nil {
		logger.FromCtx(r.Context()).Error("list orders failed", zap.Error(err))
		utils.WriteJSONError(w, "Không thể tải danh sách đơn hàng", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, http.StatusOK, orders)
}
