package user

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

func (h *Handler) Register(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var params RegisterParams
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
		utils.WriteJSONError(w, "", http.StatusBadRequest)
		return
	}

	u, err := h.svc.Register(r.Context(), params)
	if err != nil {
		if errors.Is(err, ErrEmailExists) {
			utils.WriteJSONError(w, "Email đã được đăng ký", http.StatusBadRequest)
			return
		}
		logger.FromCtx(r.Context()).Error("register failed", zap.Error(err))
		utils.WriteJSONError(w, "", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, http.StatusOK, u)
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var params LoginParams
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
		utils.WriteJSONError(w, "", http.StatusBadRequest)
		return
	}

	u, token, err := h.svc.Login(r.Context(), params)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			utils.WriteJSONError(w, "Email hoặc mật khẩu không đúng", http.StatusUnauthorized)
			return
		}
		logger.FromCtx(r.Context()).Error("login failed", zap.Error(err))
		utils.WriteJSONError(w, "", http.StatusInternalServerError)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     "access_token",
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	utils.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"user":  u,
		"token": token,
	})
}

func (h *Handler) Me(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	id, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.WriteJSONError(w, "", http.StatusUnauthorized)
		return
	}

	u, err := h.svc.GetByID(r.Context(), id)
	if err != nil {
		logger.FromCtx(r.Context()).Error("get profile failed", zap.Error(err))
		utils.WriteJSONError(w, "", http.StatusInternalServerError)
		return
	}
	if u == nil {
		utils.WriteJSONError(w, "Người dùng không tồn tại", http.StatusNotFound)
		return
	}

	utils.WriteJSON(w, http.StatusOK, u)
}
