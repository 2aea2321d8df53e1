package shipping

import (
	"context"
	"fmt"
	"time"

	pkgerrors "github.com/pawtraits-dev/pawtraits-backend/pkg/errors"
	"github.com/pawtraits-dev/pawtraits-backend/pkg/metrics"
	"github.com/pawtraits-dev/pawtraits-backend/pkg/platform"
	"github.com/pawtraits-dev/pawtraits-backend/pkg/types"
)

type platformClient interface {
	ShippingOptions(ctx context.Context, req platform.ShippingOptionsRequest) ([]types.ShippingOption, error)
}

// Service quotes fulfillment options for a checkout via the platform.
type Service interface {
	Options(ctx context.Context, address types.CheckoutAddress, items []types.CartItem) ([]types.ShippingOption, error)
}

type service struct {
	platform platformClient
	metrics  *metrics.CheckoutMetrics
}

// NewService builds the shipping options service.
func NewService(client platformClient, m *metrics.CheckoutMetrics) (Service, error) {
	if client == nil {
		return nil, fmt.Errorf("platform client required")
	}
	return &service{platform: client, metrics: m}, nil
}

// Options returns the quoted shipping options. Unlike cart and referral
// checks, an order cannot proceed without a shipping choice, so failures
// here surface as errors rather than as an invalid verdict.
func (s *service) Options(ctx context.Context, address types.CheckoutAddress, items []types.CartItem) ([]types.ShippingOption, error) {
	if len(items) == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "cart items are required")
	}

	started := time.Now()
	options, err := s.platform.ShippingOptions(ctx, platform.ShippingOptionsRequest{
		ShippingAddress: address,
		CartItems:       items,
	})
	s.metrics.ObservePlatformCall("shipping_options", time.Since(started))
	if err != nil {
		return nil, err
	}
	return options, nil
}
