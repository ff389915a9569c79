package location

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

// The address picker treats location data as optional: when the upstream API
// is down the checkout form falls back to free-text input, so failures here
// degrade to an empty list instead of an error page.
func (h *Handler) GetProvinces(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	provinces, err := h.svc.ProvincesWithDistricts(r.Context())
	if err != nil {
		logger.FromCtx(r.Context()).Warn("province lookup failed", zap.Error(err))
		utils.WriteJSON(w, http.StatusOK, []Province{})
		return
	}

	utils.WriteJSON(w, http.StatusOK, provinces)
}

func (h *Handler) GetWards(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	code, err := strconv.Atoi(r.URL.Query().Get("districtCode"))
	if err != nil || code <= 0 {
		utils.WriteJSON(w, http.StatusOK, []Ward{})
		return
	}

	wards, err := h.svc.WardsByDistrict(r.Context(), code)
	if err != nil {
		logger.FromCtx(r.Context()).Warn("ward lookup failed",
			zap.Int("district_code", code), zap.Error(err))
		utils.WriteJSON(w, http.StatusOK, []Ward{})
		return
	}

	utils.WriteJSON(w, http.StatusOK, wards)
}
