package main

import (
	"net/http"

	"mimistyle-be/internal/cart"
	"mimistyle-be/internal/category"
	"mimistyle-be/internal/checkout"
	"mimistyle-be/internal/config"
	"mimistyle-be/internal/db"
	"mimistyle-be/internal/location"
	"mimistyle-be/internal/logger"
	"mimistyle-be/internal/order"
	"mimistyle-be/internal/payment"
	"mimistyle-be/internal/product"
	"mimistyle-be/internal/revenue"
	"mimistyle-be/internal/router"
	"mimistyle-be/internal/user"
	"mimistyle-be/internal/voucher"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func main() {
	cfg := config.LoadConfig()
	logger.Init(cfg.AppEnv)
	defer logger.Sync()

	database := db.InitDB(cfg)
	defer database.Close()

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	})
	defer redisClient.Close()

	userRepo := user.NewRepository(database)
	userSvc := user.NewService(userRepo)

	productRepo := product.NewRepository(database)
	productSvc := product.NewService(productRepo)

	categoryRepo := category.NewRepository(database)

	cartManager := cart.NewManager()

	voucherRepo := voucher.NewRepository(database)
	voucherSvc := voucher.NewService(voucherRepo, voucher.NewCache(redisClient))

	checkoutSvc := checkout.NewService(cartManager, voucherSvc)

	orderRepo := order.NewRepository(database)
	orderSvc := order.NewService(orderRepo, userRepo, productRepo, payment.NewLocalGateway())

	revenueSvc := revenue.NewService(revenue.NewRepository(database))

	locationSvc := location.NewService(
		location.NewClient(cfg.LocationAPIBase),
		location.NewCache(redisClient),
	)

	handler := router.New(router.Handlers{
		Users:      user.NewHandler(userSvc),
		Products:   product.NewHandler(productSvc),
		Categories: category.NewHandler(categoryRepo),
		Carts:      cart.NewHandler(cartManager),
		Checkout:   checkout.NewHandler(checkoutSvc),
		Vouchers:   voucher.NewHandler(voucherSvc),
		Orders:     order.NewHandler(orderSvc),
		Revenue:    revenue.NewHandler(revenueSvc),
		Locations:  location.NewHandler(locationSvc),
	}, cfg.CORSOrigin)

	logger.L().Info("server listening", zap.String("port", cfg.AppPort))
	if err := http.ListenAndServe(":"+cfg.AppPort, handler); err != nil {
		logger.L().Fatal("server stopped", zap.Error(err))
	}
}
