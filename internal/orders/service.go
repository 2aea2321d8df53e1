package orders

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/pawtraits-dev/pawtraits-backend/pkg/enums"
	pkgerrors "github.com/pawtraits-dev/pawtraits-backend/pkg/errors"
)

// PricingResult pairs the order pricing view with the message rendered for
// the requesting role.
type PricingResult struct {
	Pricing OrderPricingView `json:"pricing"`
	Message string           `json:"message,omitempty"`
}

// Service serves order pricing views to display surfaces.
type Service interface {
	Pricing(ctx context.Context, orderID uuid.UUID, role enums.UserType) (*PricingResult, error)
}

type service struct {
	repo              OrderRepository
	commissionRateBPS int
}

// NewService builds the order pricing service. The commission rate is in
// basis points.
func NewService(repo OrderRepository, commissionRateBPS int) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("order repository required")
	}
	if commissionRateBPS < 0 {
		return nil, fmt.Errorf("commission rate must not be negative")
	}
	return &service{repo: repo, commissionRateBPS: commissionRateBPS}, nil
}

// Pricing loads the order and reconstructs its discount breakdown together
// with the role-specific message.
func (s *service) Pricing(ctx context.Context, orderID uuid.UUID, role enums.UserType) (*PricingResult, error) {
	if orderID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "order id is required")
	}

	order, err := s.repo.GetWithItems(ctx, orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "order not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load order")
	}

	view := OrderPricing(*order, s.commissionRateBPS)
	message, _ := DiscountMessage(view, role)
	return &PricingResult{Pricing: view, Message: message}, nil
}
