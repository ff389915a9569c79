package router

import (
	"net/http"

	"mimistyle-be/internal/cart"
	"mimistyle-be/internal/category"
	"mimistyle-be/internal/checkout"
	"mimistyle-be/internal/location"
	"mimistyle-be/internal/logger"
	"mimistyle-be/internal/metrics"
	"mimistyle-be/internal/middleware"
	"mimistyle-be/internal/order"
	"mimistyle-be/internal/product"
	"mimistyle-be/internal/revenue"
	"mimistyle-be/internal/user"
	"mimistyle-be/internal/utils"
	"mimistyle-be/internal/voucher"

	"github.com/julienschmidt/httprouter"
	"github.com/rs/cors"
)

type Handlers struct {
	Users      *user.Handler
	Products   *product.Handler
	Categories *category.Handler
	Carts      *cart.Handler
	Checkout   *checkout.Handler
	Vouchers   *voucher.Handler
	Orders     *order.Handler
	Revenue    *revenue.Handler
	Locations  *location.Handler
}

// New wires every route behind the shared middleware chain:
// request ID -> access log -> optional auth -> rate limit.
func New(h Handlers, corsOrigin string) http.Handler {
	r := httprouter.New()

	// auth
	r.POST("/api/auth/register", h.Users.Register)
	r.POST("/api/auth/login", h.Users.Login)
	r.GET("/api/auth/me", requireUser(h.Users.Me))

	// catalog
	r.GET("/api/products", h.Products.GetAll)
	r.GET("/api/products/:id", h.Products.GetByID)
	r.GET("/api/sellers/:userId/products", h.Products.GetBySeller)
	r.POST("/api/products", requireUser(h.Products.Create))
	r.PUT("/api/products/:id", requireUser(h.Products.Update))
	r.DELETE("/api/products/:id", requireUser(h.Products.Delete))
	r.POST("/api/products/:id/images", requireUser(h.Products.SaveImageNames))
	r.GET("/api/categories", h.Categories.GetAll)

	// cart
	r.GET("/api/cart", h.Carts.Get)
	r.POST("/api/cart/items", h.Carts.AddItem)
	r.PATCH("/api/cart/items", h.Carts.UpdateQuantity)
	r.DELETE("/api/cart/items", h.Carts.RemoveItem)
	r.DELETE("/api/cart", h.Carts.Clear)
	r.GET("/api/cart/contains", h.Carts.Contains)
	r.POST("/api/cart/panel", h.Carts.Panel)

	// checkout
	r.POST("/api/checkout/quote", h.Checkout.Quote)
	r.GET("/api/vouchers/applicable", h.Vouchers.GetApplicable)

	// orders
	r.POST("/api/orders", requireUser(h.Orders.Create))
	r.GET("/api/orders/me", requireUser(h.Orders.GetMine))
	r.PATCH("/api/orders/:id/status", requireUser(h.Orders.UpdateStatus))

	// revenue
	r.GET("/api/revenue/summary", requireUser(h.Revenue.GetSummary))
	r.GET("/api/revenue/sold", requireUser(h.Revenue.GetSoldProducts))
	r.GET("/api/revenue/orders", requireUser(h.Revenue.GetOrderGroups))

	// locations
	r.GET("/api/locations/provinces", h.Locations.GetProvinces)
	r.GET("/api/locations/wards", h.Locations.GetWards)

	r.GET("/healthz", health)

	c := cors.New(cors.Options{
		AllowedOrigins:   []string{corsOrigin},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization", "X-Cart-Session", "X-Request-ID"},
		ExposedHeaders:   []string{"X-Cart-Session", "X-Request-ID"},
		AllowCredentials: true,
	})

	// Auth wraps the limiter so authenticated requests are bucketed per user,
	// not per shared IP.
	var handler http.Handler = r
	handler = middleware.RateLimitMiddleware(handler)
	handler = middleware.AuthMiddleware(handler)
	handler = countRequests(handler)
	handler = logger.LoggingMiddleware(handler)
	handler = logger.RequestIDMiddleware(handler)
	return c.Handler(handler)
}

func countRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		metrics.Requests.Inc()
		next.ServeHTTP(w, r)
	})
}

// requireUser adapts the user gate to httprouter's handle signature.
func requireUser(next httprouter.Handle) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		wrapped := middleware.RequireUser(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next(w, r, ps)
		}))
		wrapped.ServeHTTP(w, r)
	}
}

func health(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	utils.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "ok",
		"metrics": metrics.Snapshot(),
	})
}
