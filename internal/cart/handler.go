package cart

import (
	"encoding/json"
	"net/http"
	"strconv"

	"mimistyle-be/internal/metrics"
	"mimistyle-be/internal/utils"

	"github.com/julienschmidt/httprouter"
)

const sessionCookie = "cart_session"

type Handler struct {
	manager *Manager
}

func NewHandler(manager *Manager) *Handler {
	return &Handler{manager: manager}
}

// view is the JSON shape the storefront renders the cart panel from.
type view struct {
	Items    []LineItem `json:"items"`
	Count    int        `json:"count"`
	Subtotal float64    `json:"subtotal"`
	Open     bool       `json:"open"`
}

func sessionID(r *http.Request) string {
	if h := r.Header.Get("X-Cart-Session"); h != "" {
		return h
	}
	if c, err := r.Cookie(sessionCookie); err == nil {
		return c.Value
	}
	return ""
}

func (h *Handler) respond(w http.ResponseWriter, r *http.Request, fn func(*Store)) {
	var v view
	id := h.manager.With(sessionID(r), func(s *Store) {
		if fn != nil {
			fn(s)
		}
		v = view{
			Items:    s.Items(),
			Count:    s.Count(),
			Subtotal: s.Subtotal(),
			Open:     s.IsOpen(),
		}
	})

	writeSession(w, id)

	utils.WriteJSON(w, http.StatusOK, v)
}

// writeSession echoes the session id on both the cookie and the header so
// either kind of client can keep its cart.
func writeSession(w http.ResponseWriter, id string) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	w.Header().Set("X-Cart-Session", id)
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	h.respond(w, r, nil)
}

func (h *Handler) AddItem(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var item LineItem
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		utils.WriteJSONError(w, "", http.StatusBadRequest)
		return
	}

	metrics.CartMutations.Inc()
	h.respond(w, r, func(s *Store) {
		s.AddItem(item)
	})
}

type updateRequest struct {
	ProductID  uint `json:"productId"`
	ColorIndex int  `json:"colorIndex"`
	SizeIndex  int  `json:"sizeIndex"`
	Delta      int  `json:"delta"`
}

func (h *Handler) UpdateQuantity(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req updateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteJSONError(w, "", http.StatusBadRequest)
		return
	}

	metrics.CartMutations.Inc()
	h.respond(w, r, func(s *Store) {
		s.UpdateQuantity(req.ProductID, req.ColorIndex, req.SizeIndex, req.Delta)
	})
}

type removeRequest struct {
	ProductID  uint `json:"productId"`
	ColorIndex int  `json:"colorIndex"`
	SizeIndex  int  `json:"sizeIndex"`
}

func (h *Handler) RemoveItem(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req removeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteJSONError(w, "", http.StatusBadRequest)
		return
	}

	metrics.CartMutations.Inc()
	h.respond(w, r, func(s *Store) {
		s.RemoveItem(req.ProductID, req.ColorIndex, req.SizeIndex)
	})
}

func (h *Handler) Clear(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	metrics.CartMutations.Inc()
	h.respond(w, r, func(s *Store) {
		s.Clear()
	})
}

func (h *Handler) Contains(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	q := r.URL.Query()
	productID, err := utils.ToUint(q.Get("productId"))
	if err != nil {
		utils.WriteJSONError(w, "", http.StatusBadRequest)
		return
	}
	colorIndex := atoiOrZero(q.Get("colorIndex"))
	sizeIndex := atoiOrZero(q.Get("sizeIndex"))

	inCart := false
	id := h.manager.With(sessionID(r), func(s *Store) {
		inCart = s.IsInCart(productID, colorIndex, sizeIndex)
	})
	writeSession(w, id)

	utils.WriteJSON(w, http.StatusOK, map[string]bool{"inCart": inCart})
}

type panelRequest struct {
	Action string `json:"action"` // open | close | toggle
}

func (h *Handler) Panel(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req panelRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteJSONError(w, "", http.StatusBadRequest)
		return
	}

	switch req.Action {
	case "open", "close", "toggle":
	default:
		utils.WriteJSONError(w, "", http.StatusBadRequest)
		return
	}

	h.respond(w, r, func(s *Store) {
		switch req.Action {
		case "open":
			s.Open()
		case "close":
			s.Close()
		case "toggle":
			s.Toggle()
		}
	})
}

func atoiOrZero(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}
