package revenue

import (
	"errors"
	"net/http"

	"mimistyle-be/internal/logger"
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

func filterFromQuery(r *http.Request) Filter {
	q := r.URL.Query()
	return Filter{
		StartDate: q.Get("startDate"),
		EndDate:   q.Get("endDate"),
		Category:  q.Get("category"),
	}
}

func (h *Handler) GetSummary(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	sellerID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.WriteJSONError(w, "", http.StatusUnauthorized)
		return
	}

	summary, err := h.svc.GetSummary(r.Context(), sellerID, filterFromQuery(r))
	if err != nil {
		if errors.Is(err, ErrInvalidDateRange) {
			utils.WriteJSONError(w, "", http.StatusBadRequest)
			return
		}
		logger.FromCtx(r.Context()).Error("revenue summary failed", zap.Error(err))
		utils.WriteJSONError(w, "Không thể tải báo cáo doanh thu", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, http.StatusOK, summary)
}

func (h *Handler) GetSoldProducts(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	sellerID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.WriteJSONError(w, "", http.StatusUnauthorized)
		return
	}

	items, err := h.svc.GetSoldProducts(r.Context(), sellerID, filterFromQuery(r))
	if err != nil {
		if errors.Is(err, ErrInvalidDateRange) {
			utils.WriteJSONError(w, "", http.StatusBadRequest)
			return
		}
		logger.FromCtx(r.Context()).Error("sold products failed", zap.Error(err))
		utils.WriteJSONError(w, "Không thể tải danh sách sản phẩm đã bán", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, http.StatusOK, items)
}

func (h *Handler) GetOrderGroups(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	sellerID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.WriteJSONError(w, "", http.StatusUnauthorized)
		return
	}

	groups, err := h.svc.GetOrderGroups(r.Context(), sellerID, filterFromQuery(r))
	if err != nil {
		if errors.Is(err, ErrInvalidDateRange) {
			utils.WriteJSONError(w, "", http.StatusBadRequest)
			return
		}
		logger.FromCtx(r.Context()).Error("order groups failed", zap.Error(err))
		utils.WriteJSONError(w, "Không thể tải danh sách đơn hàng", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, http.StatusOK, groups)
}
