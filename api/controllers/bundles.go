package controllers

import (
	"net/http"

	"github.com/pawtraits-dev/pawtraits-backend/api/responses"
	"github.com/pawtraits-dev/pawtraits-backend/api/validators"
	"github.com/pawtraits-dev/pawtraits-backend/internal/pricing"
	"github.com/pawtraits-dev/pawtraits-backend/pkg/logger"
)

const maxBundleQuantity = 1000

// BundlePricing prices a requested bundle quantity from the tier ladder.
func BundlePricing(svc pricing.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		quantity, err := validators.ParseQueryInt(r, "quantity", 1, 1, maxBundleQuantity)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		result, err := svc.Calculate(r.Context(), quantity)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, result)
	}
}

// BundleCacheClear drops the cached tier snapshot so pricing changes take
// effect without waiting out the TTL. Admin only.
func BundleCacheClear(svc pricing.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		svc.ClearCache()
		if logg != nil {
			logg.Info(r.Context(), "pricing tier cache cleared")
		}
		responses.WriteSuccess(w, map[string]string{"status": "cleared"})
	}
}
