package checkout

import (
	"encoding/json"
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

type quoteRequest struct {
	VoucherID   *uint   `json:"voucherId"`
	ShippingFee float64 `json:"shippingFee"`
}

func (h *Handler) Quote(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req quoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteJSONError(w, "", http.StatusBadRequest)
		return
	}

	sessionID := r.Header.Get("X-Cart-Session")
	if sessionID == "" {
		if c, err := r.Cookie("cart_session"); err == nil {
			sessionID = c.Value
		}
	}

	quote, sessionID, err := h.svc.Quote(r.Context(), sessionID, req.VoucherID, req.ShippingFee)
	if err != nil {
		logger.FromCtx(r.Context()).Error("checkout quote failed", zap.Error(err))
		utils.WriteJSONError(w, "", http.StatusInternalServerError)
		return
	}
	w.Header().Set("X-Cart-Session", sessionID)

	utils.WriteJSON(w, http.StatusOK, quote)
}
