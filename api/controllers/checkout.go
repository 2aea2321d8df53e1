package controllers

import (
	"net/http"

	"github.com/pawtraits-dev/pawtraits-backend/api/middleware"
	"github.com/pawtraits-dev/pawtraits-backend/api/responses"
	"github.com/pawtraits-dev/pawtraits-backend/api/validators"
	"github.com/pawtraits-dev/pawtraits-backend/internal/address"
	"github.com/pawtraits-dev/pawtraits-backend/internal/checkout"
	"github.com/pawtraits-dev/pawtraits-backend/internal/countries"
	"github.com/pawtraits-dev/pawtraits-backend/internal/shipping"
	"github.com/pawtraits-dev/pawtraits-backend/pkg/enums"
	"github.com/pawtraits-dev/pawtraits-backend/pkg/logger"
	"github.com/pawtraits-dev/pawtraits-backend/pkg/types"
)

type checkoutValidateBody struct {
	ShippingAddress  types.CheckoutAddress `json:"shippingAddress" validate:"required"`
	ValidateReferral bool                  `json:"validateReferral"`
	ReferralCode     string                `json:"referralCode" validate:"omitempty,max=64"`
	OrderTotal       types.Money           `json:"orderTotal" validate:"omitempty,gte=0"`
}

// normalizedCheckout is the canonical identity and address shape the order
// pipeline will persist if this checkout goes through.
type normalizedCheckout struct {
	OrderType       enums.OrderType `json:"orderType"`
	RecipientName   string          `json:"recipientName"`
	RecipientEmail  string          `json:"recipientEmail"`
	AddressLine1    string          `json:"addressLine1"`
	AddressLine2    string          `json:"addressLine2,omitempty"`
	CombinedAddress string          `json:"combinedAddress"`
}

type checkoutValidateResponse struct {
	checkout.CheckoutValidation
	Normalized *normalizedCheckout `json:"normalized,omitempty"`
}

// CheckoutValidate runs the composite address + cart (+ referral) check for
// the authenticated shopper.
func CheckoutValidate(svc checkout.Service, countrySvc countries.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body checkoutValidateBody
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		countryList, err := countrySvc.List(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		email := middleware.EmailFromContext(r.Context())
		if email == "" {
			email = address.CustomerEmail(body.ShippingAddress)
		}

		result := svc.ValidateCheckout(r.Context(), checkout.CheckoutInput{
			Address:          body.ShippingAddress,
			Countries:        countryList,
			AuthToken:        middleware.AuthTokenFromContext(r.Context()),
			ValidateReferral: body.ValidateReferral,
			ReferralCode:     validators.SanitizeString(body.ReferralCode, 64),
			CustomerEmail:    email,
			OrderTotal:       body.OrderTotal,
		})

		resp := checkoutValidateResponse{CheckoutValidation: result}
		if result.IsValid {
			role, _ := enums.ParseUserType(middleware.UserTypeFromContext(r.Context()))
			line1, line2 := address.GelatoLines(body.ShippingAddress)
			resp.Normalized = &normalizedCheckout{
				OrderType:       address.OrderTypeFor(role, body.ShippingAddress.IsForClient),
				RecipientName:   address.CustomerName(body.ShippingAddress),
				RecipientEmail:  email,
				AddressLine1:    line1,
				AddressLine2:    line2,
				CombinedAddress: address.CombinedAddress(body.ShippingAddress),
			}
		}
		responses.WriteSuccess(w, resp)
	}
}

type addressValidateBody struct {
	ShippingAddress types.CheckoutAddress `json:"shippingAddress" validate:"required"`
}

// AddressValidate runs the local address checks only. Public: the
// storefront calls it as the shopper types.
func AddressValidate(svc checkout.Service, countrySvc countries.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body addressValidateBody
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		countryList, err := countrySvc.List(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, svc.ValidateAddress(body.ShippingAddress, countryList))
	}
}

type referralValidateBody struct {
	ReferralCode  string      `json:"referralCode" validate:"required,max=64"`
	CustomerEmail string      `json:"customerEmail" validate:"required,email"`
	OrderTotal    types.Money `json:"orderTotal" validate:"required,gt=0"`
}

// ReferralValidate checks a referral code against an order total. Public
// but rate limited upstream.
func ReferralValidate(svc checkout.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body referralValidateBody
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		code := validators.SanitizeString(body.ReferralCode, 64)
		result := svc.ValidateReferralCode(r.Context(), code, body.CustomerEmail, body.OrderTotal)
		responses.WriteSuccess(w, result)
	}
}

type shippingOptionsBody struct {
	ShippingAddress types.CheckoutAddress `json:"shippingAddress" validate:"required"`
	CartItems       []types.CartItem      `json:"cartItems" validate:"required,min=1,dive"`
}

// ShippingOptions quotes fulfillment choices for the address and cart.
func ShippingOptions(svc shipping.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body shippingOptionsBody
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		options, err := svc.Options(r.Context(), body.ShippingAddress, body.CartItems)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]any{"shippingOptions": options})
	}
}
