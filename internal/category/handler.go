package category

import (
	"net/http"

	"mimistyle-be/internal/logger"
	"mimistyle-be/internal/utils"

	"github.com/julienschmidt/httprouter"
	"go.uber.org/zap"
)

type Handler struct {
	repo Repository
}

func NewHandler(repo Repository) *Handler {
	return &Handler{repo: repo}
}

func (h *Handler) GetAll(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	categories, err := h.repo.GetAll(r.Context())
	if err != nil {
		logger.FromCtx(r.Context()).Error("list categories failed", zap.Error(err))
		utils.WriteJSONError(w, "Không thể tải danh mục sản phẩm", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, http.StatusOK, categories)
}
