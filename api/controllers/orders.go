package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/pawtraits-dev/pawtraits-backend/api/middleware"
	"github.com/pawtraits-dev/pawtraits-backend/api/responses"
	"github.com/pawtraits-dev/pawtraits-backend/internal/orders"
	"github.com/pawtraits-dev/pawtraits-backend/pkg/enums"
	pkgerrors "github.com/pawtraits-dev/pawtraits-backend/pkg/errors"
	"github.com/pawtraits-dev/pawtraits-backend/pkg/logger"
)

// OrderPricing reconstructs an order's discount breakdown for display,
// with the message phrased for the caller's role.
func OrderPricing(svc orders.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		orderID, err := uuid.Parse(chi.URLParam(r, "orderId"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w,
				pkgerrors.New(pkgerrors.CodeValidation, "order id must be a uuid"))
			return
		}

		role := enums.UserTypeCustomer
		if parsed, err := enums.ParseUserType(middleware.UserTypeFromContext(r.Context())); err == nil {
			role = parsed
		}

		result, err := svc.Pricing(r.Context(), orderID, role)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, result)
	}
}
