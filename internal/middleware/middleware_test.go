package middleware

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"mimistyle-be/internal/user"
	"mimistyle-be/internal/utils"

	"github.com/stretchr/testify/assert"
)

func TestAuth(t *testing.T) {
	t.Setenv("JWT_SECRET", "testsecret")

	t.Run("Missing token passes through anonymously", func(t *testing.T) {
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, ok := utils.GetUserIDFromContext(r.Context())
			assert.False(t, ok, "context should not contain user ID")
			w.WriteHeader(http.StatusOK)
		})

		req := httptest.NewRequest("GET", "/api/products", nil)
		w := httptest.NewRecorder()
		AuthMiddleware(next).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Valid bearer token fills context", func(t *testing.T) {
		token, err := user.GenerateJWT(7, "buyer", "a@example.com")
		assert.NoError(t, err)

		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id, ok := utils.GetUserIDFromContext(r.Context())
			assert.True(t, ok)
			assert.Equal(t, uint(7), id)
			assert.Equal(t, "buyer", utils.GetUserRoleFromContext(r.Context()))
			w.WriteHeader(http.StatusOK)
		})

		req := httptest.NewRequest("GET", "/api/orders/me", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		AuthMiddleware(next).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Garbage token treated as anonymous", func(t *testing.T) {
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, ok := utils.GetUserIDFromContext(r.Context())
			assert.False(t, ok)
			w.WriteHeader(http.StatusOK)
		})

		req := httptest.NewRequest("GET", "/api/products", nil)
		req.Header.Set("Authorization", "Bearer not.a.token")
		w := httptest.NewRecorder()
		AuthMiddleware(next).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Cookie token accepted", func(t *testing.T) {
		token, _ := user.GenerateJWT(9, "buyer", "b@example.com")

		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id, ok := utils.GetUserIDFromContext(r.Context())
			assert.True(t, ok)
			assert.Equal(t, uint(9), id)
		})

		req := httptest.NewRequest("GET", "/api/orders/me", nil)
		req.AddCookie(&http.Cookie{Name: "access_token", Value: token})
		AuthMiddleware(next).ServeHTTP(httptest.NewRecorder(), req)
	})
}

func TestRequireUser(t *testing.T) {
	t.Run("Anonymous rejected", func(t *testing.T) {
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Fatal("handler should not run")
		})

		req := httptest.NewRequest("POST", "/api/orders", nil)
		w := httptest.NewRecorder()
		RequireUser(next).ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "Bạn cần đăng nhập")
	})

	t.Run("Authenticated passes", func(t *testing.T) {
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		})

		req := httptest.NewRequest("POST", "/api/orders", nil)
		ctx := utils.SetUserContext(req.Context(), 7, "a@example.com", "buyer")
		w := httptest.NewRecorder()
		RequireUser(next).ServeHTTP(w, req.WithContext(ctx))

		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestResolveRateTier(t *testing.T) {
	cases := []struct {
		method string
		path   string
		tier   string
	}{
		{"POST", "/api/auth/login", "strict"},
		{"POST", "/api/auth/register", "strict"},
		{"GET", "/api/products", "browse"},
		{"GET", "/api/locations/provinces", "browse"},
		{"POST", "/api/products", "general"},
		{"POST", "/api/orders", "general"},
	}

	for _, c := range cases {
		req := httptest.NewRequest(c.method, c.path, nil)
		_, _, tier := resolveRateTier(req)
		assert.Equal(t, c.tier, tier, "%s %s", c.method, c.path)
	}
}

func TestRateLimitMiddleware(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	handler := RateLimitMiddleware(next)

	t.Run("Strict tier exhausts burst", func(t *testing.T) {
		var lastCode int
		for i := 0; i < burstStrict+1; i++ {
			req := httptest.NewRequest("POST", "/api/auth/login", nil)
			req.RemoteAddr = "10.1.2.3:1234"
			w := httptest.NewRecorder()
			handler.ServeHTTP(w, req)
			lastCode = w.Code
		}
		assert.Equal(t, http.StatusTooManyRequests, lastCode)
	})

	t.Run("Separate identities get separate quotas", func(t *testing.T) {
		for i := 0; i < 3; i++ {
			req := httptest.NewRequest("POST", "/api/auth/login", nil)
			req.RemoteAddr = fmt.Sprintf("10.9.9.%d:1234", i)
			w := httptest.NewRecorder()
			handler.ServeHTTP(w, req)
			assert.Equal(t, http.StatusOK, w.Code)
		}
	})
}

func TestAuthFeedsRateLimiter(t *testing.T) {
	t.Setenv("JWT_SECRET", "testsecret")

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	// Same nesting as the router: auth outermost so the limiter sees the user.
	handler := AuthMiddleware(RateLimitMiddleware(next))

	tokenA, err := user.GenerateJWT(101, "seller", "a@example.com")
	assert.NoError(t, err)
	tokenB, err := user.GenerateJWT(102, "seller", "b@example.com")
	assert.NoError(t, err)

	send := func(token string) int {
		req := httptest.NewRequest("POST", "/api/orders", nil)
		req.RemoteAddr = "10.7.7.7:1234"
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)
		return w.Code
	}

	var lastCode int
	for i := 0; i < burstGeneral+1; i++ {
		lastCode = send(tokenA)
	}
	assert.Equal(t, http.StatusTooManyRequests, lastCode, "first user exhausts its own quota")

	assert.Equal(t, http.StatusOK, send(tokenB), "second user behind the same IP keeps a full quota")
}
