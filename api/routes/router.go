package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/pawtraits-dev/pawtraits-backend/api/controllers"
	"github.com/pawtraits-dev/pawtraits-backend/api/middleware"
	checkoutsvc "github.com/pawtraits-dev/pawtraits-backend/internal/checkout"
	"github.com/pawtraits-dev/pawtraits-backend/internal/countries"
	ordersvc "github.com/pawtraits-dev/pawtraits-backend/internal/orders"
	"github.com/pawtraits-dev/pawtraits-backend/internal/pricing"
	"github.com/pawtraits-dev/pawtraits-backend/internal/shipping"
	"github.com/pawtraits-dev/pawtraits-backend/pkg/config"
	"github.com/pawtraits-dev/pawtraits-backend/pkg/db"
	"github.com/pawtraits-dev/pawtraits-backend/pkg/enums"
	"github.com/pawtraits-dev/pawtraits-backend/pkg/logger"
	"github.com/pawtraits-dev/pawtraits-backend/pkg/redis"
)

// Services bundles the domain services the router exposes.
type Services struct {
	Pricing   pricing.Service
	Checkout  checkoutsvc.Service
	Countries countries.Service
	Shipping  shipping.Service
	Orders    ordersvc.Service
}

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	dbP db.Pinger,
	redisClient *redis.Client,
	gatherer prometheus.Gatherer,
	svcs Services,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(),
	)

	referralPolicy := middleware.NewRateLimitPolicy(
		"referral",
		cfg.RateLimit.ReferralWindow,
		cfg.RateLimit.ReferralIPLimit,
		cfg.RateLimit.ReferralEmailLimit,
	)

	var cacheP db.Pinger
	if redisClient != nil {
		cacheP = redisClient
	}
	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, dbP, cacheP))
	})

	if gatherer != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/ping", controllers.Ping())
		r.Get("/countries", controllers.Countries(svcs.Countries, logg))

		r.Route("/bundles", func(r chi.Router) {
			r.With(middleware.OptionalAuth(cfg.JWT, logg)).
				Get("/pricing", controllers.BundlePricing(svcs.Pricing, logg))
			r.With(
				middleware.Auth(cfg.JWT, logg),
				middleware.RequireUserType(logg, enums.UserTypeAdmin),
			).Post("/cache/clear", controllers.BundleCacheClear(svcs.Pricing, logg))
		})

		r.Route("/checkout", func(r chi.Router) {
			r.Post("/address/validate", controllers.AddressValidate(svcs.Checkout, svcs.Countries, logg))
			r.With(middleware.RateLimit(referralPolicy, redisClient, logg)).
				Post("/referrals/validate", controllers.ReferralValidate(svcs.Checkout, logg))

			r.Group(func(r chi.Router) {
				r.Use(middleware.Auth(cfg.JWT, logg))
				r.Post("/validate", controllers.CheckoutValidate(svcs.Checkout, svcs.Countries, logg))
				r.Post("/shipping/options", controllers.ShippingOptions(svcs.Shipping, logg))
			})
		})

		r.With(middleware.Auth(cfg.JWT, logg)).
			Get("/orders/{orderId}/pricing", controllers.OrderPricing(svcs.Orders, logg))
	})

	return r
}
