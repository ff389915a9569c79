package revenue

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"mimistyle-be/internal/utils"

	"github.com/stretchr/testify/assert"
)

func sellerRequest(target string) *http.Request {
	req := httptest.NewRequest("GET", target, nil)
	ctx := utils.SetUserContext(req.Context(), 5, "seller@example.com", "seller")
	return req.WithContext(ctx)
}

func TestHandlerBadDateFilter(t *testing.T) {
	h := NewHandler(NewService(new(MockRepository)))

	t.Run("Summary", func(t *testing.T) {
		w := httptest.NewRecorder()
		h.GetSummary(w, sellerRequest("/api/revenue/summary?startDate=01-03-2024"), nil)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Dữ liệu không hợp lệ")
	})

	t.Run("SoldProducts", func(t *testing.T) {
		w := httptest.NewRecorder()
		h.GetSoldProducts(w, sellerRequest("/api/revenue/sold?endDate=not-a-date"), nil)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("OrderGroups", func(t *testing.T) {
		w := httptest.NewRecorder()
		h.GetOrderGroups(w, sellerRequest("/api/revenue/orders?endDate=31/03/2024"), nil)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestHandlerRequiresSeller(t *testing.T) {
	h := NewHandler(NewService(new(MockRepository)))

	w := httptest.NewRecorder()
	h.GetSummary(w, httptest.NewRequest("GET", "/api/revenue/summary", nil), nil)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
