package product

import (
	"encoding/json"
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

func (h *Handler) GetAll(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	products, err := h.svc.GetAll(r.Context())
	if err != nil {
		logger.FromCtx(r.Context()).Error("list products failed", zap.Error(err))
		utils.WriteJSONError(w, "Không thể tải danh sách sản phẩm", http.StatusInternalServerError)
		return
	}
	utils.WriteJSON(w, http.StatusOK, products)
}

func (h *Handler) GetByID(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id, err := utils.ToUint(ps.ByName("id"))
	if err != nil {
		utils.WriteJSONError(w, "", http.StatusBadRequest)
		return
	}

	p, err := h.svc.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrProductNotFound) {
			utils.WriteJSONError(w, "Sản phẩm không tồn tại", http.StatusNotFound)
			return
		}
		logger.FromCtx(r.Context()).Error("get product failed", zap.Error(err))
		utils.WriteJSONError(w, "Không thể tải chi tiết sản phẩm", http.StatusInternalServerError)
		return
	}
	utils.WriteJSON(w, http.StatusOK, p)
}

func (h *Handler) GetBySeller(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	sellerID, err := utils.ToUint(ps.ByName("userId"))
	if err != nil {
		utils.WriteJSONError(w, "", http.StatusBadRequest)
		return
	}

	products, err := h.svc.GetBySeller(r.Context(), sellerID)
	if err != nil {
		logger.FromCtx(r.Context()).Error("list seller products failed", zap.Error(err))
		utils.WriteJSONError(w, "Không thể tải danh sách sản phẩm", http.StatusInternalServerError)
		return
	}
	utils.WriteJSON(w, http.StatusOK, products)
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var params CreateProductParams
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
		utils.WriteJSONError(w, "", http.StatusBadRequest)
		return
	}

	p, err := h.svc.Create(r.Context(), params)
	if err != nil {
		if msg, ok := validationMessage(err); ok {
			utils.WriteJSONError(w, msg, http.StatusBadRequest)
			return
		}
		logger.FromCtx(r.Context()).Error("create product failed", zap.Error(err))
		utils.WriteJSONError(w, "Không thể tạo sản phẩm", http.StatusInternalServerError)
		return
	}
	utils.WriteJSON(w, http.StatusOK, p)
}

// validationMessage maps listing validation errors to their localized form
// messages.
func validationMessage(err error) (string, bool) {
	switch {
	case errors.Is(err, ErrNameRequired):
		return "Tên sản phẩm không được để trống", true
	case errors.Is(err, ErrDescRequired):
		return "Mô tả sản phẩm không được để trống", true
	case errors.Is(err, ErrAddressRequired):
		return "Địa chỉ không được để trống", true
	case errors.Is(err, ErrInvalidPricing):
		return "Cần có ít nhất một giá (bán hoặc thuê) lớn hơn 0", true
	}
	return "", false
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id, err := utils.ToUint(ps.ByName("id"))
	if err != nil {
		utils.WriteJSONError(w, "", http.StatusBadRequest)
		return
	}

	var params UpdateProductParams
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
		utils.WriteJSONError(w, "", http.StatusBadRequest)
		return
	}

	p, err := h.svc.Update(r.Context(), id, params)
	if err != nil {
		if errors.Is(err, ErrProductNotFound) {
			utils.WriteJSONError(w, "Sản phẩm không tồn tại", http.StatusNotFound)
			return
		}
		if msg, ok := validationMessage(err); ok {
			utils.WriteJSONError(w, msg, http.StatusBadRequest)
			return
		}
		logger.FromCtx(r.Context()).Error("update product failed", zap.Error(err))
		utils.WriteJSONError(w, "Không thể cập nhật sản phẩm", http.StatusInternalServerError)
		return
	}
	utils.WriteJSON(w, http.StatusOK, p)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id, err := utils.ToUint(ps.ByName("id"))
	if err != nil {
		utils.WriteJSONError(w, "", http.StatusBadRequest)
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		if errors.Is(err, ErrProductNotFound) {
			utils.WriteJSONError(w, "Sản phẩm không tồn tại", http.StatusNotFound)
			return
		}
		logger.FromCtx(r.Context()).Error("delete product failed", zap.Error(err))
		utils.WriteJSONError(w, "Không thể xóa sản phẩm", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
}

func (h *Handler) SaveImageNames(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id, err := utils.ToUint(ps.ByName("id"))
	if err != nil {
		utils.WriteJSONError(w, "", http.StatusBadRequest)
		return
	}

	var filenames []string
	if err := json.NewDecoder(r.Body).Decode(&filenames); err != nil {
		utils.WriteJSONError(w, "", http.StatusBadRequest)
		return
	}
	if len(filenames) == 0 {
		utils.WriteJSONError(w, "Image filenames are required", http.StatusBadRequest)
		return
	}

	p, err := h.svc.SaveImageNames(r.Context(), id, filenames)
	if err != nil {
		if errors.Is(err, ErrProductNotFound) {
			utils.WriteJSONError(w, "Sản phẩm không tồn tại", http.StatusNotFound)
			return
		}
		logger.FromCtx(r.Context()).Error("save image names failed", zap.Error(err))
		utils.WriteJSONError(w, "Không thể lưu tên ảnh sản phẩm", http.StatusInternalServerError)
		return
	}
	utils.WriteJSON(w, http.StatusOK, p)
}
