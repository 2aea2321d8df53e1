package controllers

import (
	"net/http"

	"github.com/pawtraits-dev/pawtraits-backend/api/responses"
	"github.com/pawtraits-dev/pawtraits-backend/internal/countries"
	"github.com/pawtraits-dev/pawtraits-backend/pkg/logger"
)

// Countries lists the supported countries for address forms.
func Countries(svc countries.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		list, err := svc.List(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]any{"countries": list})
	}
}
