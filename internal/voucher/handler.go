package voucher

import (
	"net/http"
	"strconv"

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

// GetApplicable degrades to an empty list on lookup failure: the checkout
// page renders "no vouchers" instead of an error.
func (h *Handler) GetApplicable(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	subtotal, err := strconv.ParseFloat(r.URL.Query().Get("subtotal"), 64)
	if err != nil || subtotal < 0 {
		subtotal = 0
	}

	vouchers, err := h.svc.GetApplicable(r.Context(), subtotal)
	if err != nil {
		logger.FromCtx(r.Context()).Warn("voucher lookup failed, returning empty list", zap.Error(err))
		utils.WriteJSON(w, http.StatusOK, []*Voucher{})
		return
	}

	utils.WriteJSON(w, http.StatusOK, vouchers)
}
