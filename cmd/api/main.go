package main

import (
	"context"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/pawtraits-dev/pawtraits-backend/api/routes"
	"github.com/pawtraits-dev/pawtraits-backend/internal/checkout"
	"github.com/pawtraits-dev/pawtraits-backend/internal/countries"
	"github.com/pawtraits-dev/pawtraits-backend/internal/orders"
	"github.com/pawtraits-dev/pawtraits-backend/internal/pricing"
	"github.com/pawtraits-dev/pawtraits-backend/internal/shipping"
	"github.com/pawtraits-dev/pawtraits-backend/pkg/config"
	"github.com/pawtraits-dev/pawtraits-backend/pkg/db"
	"github.com/pawtraits-dev/pawtraits-backend/pkg/logger"
	"github.com/pawtraits-dev/pawtraits-backend/pkg/metrics"
	"github.com/pawtraits-dev/pawtraits-backend/pkg/migrate"
	"github.com/pawtraits-dev/pawtraits-backend/pkg/platform"
	"github.com/pawtraits-dev/pawtraits-backend/pkg/redis"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	dbClient, err := db.New(context.Background(), cfg.DB, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap database", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing database", err)
		}
	}()

	if err := migrate.MaybeRunDev(context.Background(), cfg, logg, dbClient); err != nil {
		logg.Error(context.Background(), "failed to run dev migrations", err)
		os.Exit(1)
	}

	redisClient, err := redis.New(context.Background(), cfg.Redis, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap redis", err)
		os.Exit(1)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing redis", err)
		}
	}()

	platformClient, err := platform.NewClient(cfg.Platform.BaseURL, platform.WithTimeout(cfg.Platform.Timeout))
	if err != nil {
		logg.Error(context.Background(), "failed to create platform client", err)
		os.Exit(1)
	}

	registry := prometheus.NewRegistry()
	checkoutMetrics := metrics.NewCheckoutMetrics(registry)

	pricingService, err := pricing.NewService(pricing.NewRepository(dbClient.DB()), cfg.Pricing.TierCacheTTL, checkoutMetrics)
	if err != nil {
		logg.Error(context.Background(), "failed to create pricing service", err)
		os.Exit(1)
	}

	checkoutService, err := checkout.NewService(platformClient, logg, checkoutMetrics)
	if err != nil {
		logg.Error(context.Background(), "failed to create checkout service", err)
		os.Exit(1)
	}

	countriesService, err := countries.NewService(countries.NewRepository(dbClient.DB()), redisClient, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to create countries service", err)
		os.Exit(1)
	}

	shippingService, err := shipping.NewService(platformClient, checkoutMetrics)
	if err != nil {
		logg.Error(context.Background(), "failed to create shipping service", err)
		os.Exit(1)
	}

	ordersService, err := orders.NewService(orders.NewRepository(dbClient.DB()), cfg.Commission.PartnerRateBPS)
	if err != nil {
		logg.Error(context.Background(), "failed to create orders service", err)
		os.Exit(1)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	id := os.Getenv("DYNO")
	if id == "" {
		id = "local"
	}
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":      cfg.App.Env,
		"addr":     addr,
		"instance": id,
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr: addr,
		Handler: routes.NewRouter(cfg, logg, dbClient, redisClient, registry, routes.Services{
			Pricing:   pricingService,
			Checkout:  checkoutService,
			Countries: countriesService,
			Shipping:  shippingService,
			Orders:    ordersService,
		}),
	}

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Error(ctx, "api server stopped unexpectedly", err)
		os.Exit(1)
	}
}
