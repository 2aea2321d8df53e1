package checkout

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/pawtraits-dev/pawtraits-backend/pkg/db/models"
	"github.com/pawtraits-dev/pawtraits-backend/pkg/logger"
	"github.com/pawtraits-dev/pawtraits-backend/pkg/metrics"
	"github.com/pawtraits-dev/pawtraits-backend/pkg/platform"
	"github.com/pawtraits-dev/pawtraits-backend/pkg/types"
)

type platformClient interface {
	ValidateReferral(ctx context.Context, req platform.ReferralValidateRequest) (*types.ReferralValidation, error)
	ValidateCart(ctx context.Context, authToken string) (*types.CartValidation, error)
}

// CheckoutInput is everything one checkout attempt brings to validation.
type CheckoutInput struct {
	Address          types.CheckoutAddress
	Countries        []models.Country
	AuthToken        string
	ValidateReferral bool
	ReferralCode     string
	CustomerEmail    string
	OrderTotal       types.Money
}

// CheckoutValidation is the composite verdict. Sub-results are always
// populated for address and cart; Referral is nil when not requested.
type CheckoutValidation struct {
	IsValid  bool                      `json:"isValid"`
	Address  types.ValidationResult    `json:"address"`
	Cart     types.ValidationResult    `json:"cart"`
	Referral *types.ReferralValidation `json:"referral,omitempty"`
}

// Service validates checkout attempts, combining local address checks with
// the platform's cart and referral validators.
type Service interface {
	ValidateAddress(addr types.CheckoutAddress, countries []models.Country) types.ValidationResult
	ValidateReferralCode(ctx context.Context, code, email string, orderTotal types.Money) types.ReferralValidation
	ValidateCart(ctx context.Context, authToken string) types.ValidationResult
	ValidateCheckout(ctx context.Context, input CheckoutInput) CheckoutValidation
}

type service struct {
	platform platformClient
	logger   *logger.Logger
	metrics  *metrics.CheckoutMetrics
}

// NewService builds the checkout validation service.
func NewService(client platformClient, logg *logger.Logger, m *metrics.CheckoutMetrics) (Service, error) {
	if client == nil {
		return nil, fmt.Errorf("platform client required")
	}
	if logg == nil {
		return nil, fmt.Errorf("logger required")
	}
	return &service{platform: client, logger: logg, metrics: m}, nil
}

// ValidateAddress runs the local field-by-field address checks.
func (s *service) ValidateAddress(addr types.CheckoutAddress, countries []models.Country) types.ValidationResult {
	result := ValidateAddress(addr, countries)
	s.metrics.ObserveValidation("address", result.IsValid)
	return result
}

// ValidateReferralCode asks the platform whether the code is eligible for
// the order total. Remote failures come back as an invalid verdict, never
// as an error.
func (s *service) ValidateReferralCode(ctx context.Context, code, email string, orderTotal types.Money) types.ReferralValidation {
	started := time.Now()
	resp, err := s.platform.ValidateReferral(ctx, platform.ReferralValidateRequest{
		ReferralCode:  strings.TrimSpace(code),
		CustomerEmail: strings.TrimSpace(email),
		OrderTotal:    orderTotal,
	})
	s.metrics.ObservePlatformCall("referrals_validate", time.Since(started))

	if err != nil {
		s.logger.Warn(ctx, fmt.Sprintf("referral validation call failed: %v", err))
		s.metrics.ObserveValidation("referral", false)
		return types.ReferralValidation{Valid: false, Error: "referral validation unavailable"}
	}

	s.metrics.ObserveValidation("referral", resp.Valid)
	return *resp
}

// ValidateCart runs the platform's full-mode cart check on behalf of the
// authenticated shopper. Remote failures degrade to an invalid verdict.
func (s *service) ValidateCart(ctx context.Context, authToken string) types.ValidationResult {
	started := time.Now()
	resp, err := s.platform.ValidateCart(ctx, authToken)
	s.metrics.ObservePlatformCall("cart_validate", time.Since(started))

	if err != nil {
		s.logger.Warn(ctx, fmt.Sprintf("cart validation call failed: %v", err))
		s.metrics.ObserveValidation("cart", false)
		return types.Invalid("cart validation unavailable")
	}

	result := cartResult(resp)
	s.metrics.ObserveValidation("cart", result.IsValid)
	return result
}

// ValidateCheckout composes the full verdict. The address check runs
// locally while the cart check is in flight; the cart call is always
// issued, even when the address is already known to be invalid, so a
// shopper fixing their address learns about cart problems in the same
// round trip. The referral check only runs when requested with a code and
// a total.
func (s *service) ValidateCheckout(ctx context.Context, input CheckoutInput) CheckoutValidation {
	cartCh := make(chan types.ValidationResult, 1)
	go func() {
		cartCh <- s.ValidateCart(ctx, input.AuthToken)
	}()

	result := CheckoutValidation{
		Address: s.ValidateAddress(input.Address, input.Countries),
	}
	result.Cart = <-cartCh

	referralOK := true
	if input.ValidateReferral && strings.TrimSpace(input.ReferralCode) != "" && input.OrderTotal > 0 {
		referral := s.ValidateReferralCode(ctx, input.ReferralCode, input.CustomerEmail, input.OrderTotal)
		result.Referral = &referral
		referralOK = referral.Valid
	}

	result.IsValid = result.Address.IsValid && result.Cart.IsValid && referralOK
	s.metrics.ObserveValidation("checkout", result.IsValid)
	return result
}

func cartResult(resp *types.CartValidation) types.ValidationResult {
	if resp == nil {
		return types.Invalid("cart validation returned no result")
	}
	if resp.IsValid {
		return types.Valid()
	}
	messages := make([]string, 0, len(resp.Errors))
	for _, issue := range resp.Errors {
		if strings.TrimSpace(issue.Error) != "" {
			messages = append(messages, issue.Error)
		}
	}
	if len(messages) == 0 {
		messages = append(messages, "cart is not valid")
	}
	return types.Invalid(strings.Join(messages, "; "))
}
