package orders

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/pawtraits-dev/pawtraits-backend/pkg/db/models"
	"github.com/pawtraits-dev/pawtraits-backend/pkg/enums"
	pkgerrors "github.com/pawtraits-dev/pawtraits-backend/pkg/errors"
)

type stubOrderRepo struct {
	order *models.Order
	err   error
}

func (s *stubOrderRepo) GetWithItems(ctx context.Context, id uuid.UUID) (*models.Order, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.order, nil
}

func TestPricingRequiresOrderID(t *testing.T) {
	t.Parallel()

	svc, err := NewService(&stubOrderRepo{}, 1000)
	if err != nil {
		t.Fatalf("build service: %v", err)
	}

	_, err = svc.Pricing(context.Background(), uuid.Nil, enums.UserTypeCustomer)
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestPricingOrderNotFound(t *testing.T) {
	t.Parallel()

	svc, err := NewService(&stubOrderRepo{err: gorm.ErrRecordNotFound}, 1000)
	if err != nil {
		t.Fatalf("build service: %v", err)
	}

	_, err = svc.Pricing(context.Background(), uuid.New(), enums.UserTypeCustomer)
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not-found error, got %v", err)
	}
}

func TestPricingRendersRoleMessage(t *testing.T) {
	t.Parallel()

	order := &models.Order{
		ID:        uuid.New(),
		OrderType: enums.OrderTypePartner,
		Currency:  enums.CurrencyGBP,
		Items: []models.OrderItem{
			{UnitPrice: 850, OriginalPrice: intPtr(1000), Quantity: 2, TotalPrice: 1700},
		},
	}
	svc, err := NewService(&stubOrderRepo{order: order}, 1000)
	if err != nil {
		t.Fatalf("build service: %v", err)
	}

	got, err := svc.Pricing(context.Background(), order.ID, enums.UserTypePartner)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.Pricing.HasDiscount {
		t.Fatalf("expected discount, got %+v", got.Pricing)
	}
	if !strings.Contains(got.Message, "Your commission") {
		t.Fatalf("expected partner message, got %q", got.Message)
	}
}

func TestPricingNoDiscountHasNoMessage(t *testing.T) {
	t.Parallel()

	order := &models.Order{
		ID:       uuid.New(),
		Currency: enums.CurrencyGBP,
		Items:    []models.OrderItem{{UnitPrice: 1500, Quantity: 1, TotalPrice: 1500}},
	}
	svc, err := NewService(&stubOrderRepo{order: order}, 1000)
	if err != nil {
		t.Fatalf("build service: %v", err)
	}

	got, err := svc.Pricing(context.Background(), order.ID, enums.UserTypeCustomer)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Message != "" {
		t.Fatalf("expected empty message, got %q", got.Message)
	}
}
