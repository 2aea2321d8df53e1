package pricing

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/shopspring/decimal"

	"github.com/pawtraits-dev/pawtraits-backend/pkg/db/models"
	"github.com/pawtraits-dev/pawtraits-backend/pkg/enums"
	pkgerrors "github.com/pawtraits-dev/pawtraits-backend/pkg/errors"
	"github.com/pawtraits-dev/pawtraits-backend/pkg/metrics"
	"github.com/pawtraits-dev/pawtraits-backend/pkg/types"
)

const defaultTierCacheTTL = 5 * time.Minute

// NextTierView is the upsell lookahead: the smallest tier above the
// requested quantity and the extra savings unlocked by reaching it.
type NextTierView struct {
	Quantity                   int         `json:"quantity"`
	PricePerItem               types.Money `json:"pricePerItem"`
	PricePerItemFormatted      string      `json:"pricePerItemFormatted"`
	AdditionalSavings          types.Money `json:"additionalSavings"`
	AdditionalSavingsFormatted string      `json:"additionalSavingsFormatted"`
}

// BundlePricing is the priced view of a requested bundle quantity. Amounts
// are GBP minor units; formatted strings carry the symbol.
type BundlePricing struct {
	Quantity              int           `json:"quantity"`
	TierQuantity          int           `json:"tierQuantity"`
	PricePerItem          types.Money   `json:"pricePerItem"`
	PricePerItemFormatted string        `json:"pricePerItemFormatted"`
	TotalPrice            types.Money   `json:"totalPrice"`
	TotalPriceFormatted   string        `json:"totalPriceFormatted"`
	Savings               types.Money   `json:"savings"`
	SavingsFormatted      string        `json:"savingsFormatted"`
	DiscountPercentage    int           `json:"discountPercentage"`
	NextTier              *NextTierView `json:"nextTier,omitempty"`
}

// Service prices digital bundles against the tier ladder.
type Service interface {
	Calculate(ctx context.Context, quantity int) (*BundlePricing, error)
	ClearCache()
}

type tier struct {
	quantity int
	perUnit  types.Money
}

type snapshot struct {
	tiers    []tier
	loadedAt time.Time
}

type service struct {
	repo    TierRepository
	ttl     time.Duration
	metrics *metrics.CheckoutMetrics
	now     func() time.Time

	// slot holds the cached tier snapshot; replaced wholesale, never
	// mutated in place, so concurrent readers at worst duplicate a fetch.
	slot atomic.Pointer[snapshot]
}

// NewService builds the bundle pricing service. A non-positive ttl falls
// back to the five minute default.
func NewService(repo TierRepository, ttl time.Duration, m *metrics.CheckoutMetrics) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("tier repository required")
	}
	if ttl <= 0 {
		ttl = defaultTierCacheTTL
	}
	return &service{
		repo:    repo,
		ttl:     ttl,
		metrics: m,
		now:     time.Now,
	}, nil
}

// Calculate prices the requested quantity against the cached tier ladder.
func (s *service) Calculate(ctx context.Context, quantity int) (*BundlePricing, error) {
	if quantity <= 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "quantity must be a positive integer")
	}

	snap, err := s.current(ctx)
	if err != nil {
		return nil, err
	}

	selected := snap.tiers[0]
	for _, t := range snap.tiers {
		if t.quantity <= quantity {
			selected = t
		}
	}

	baseline := snap.tiers[0].perUnit
	total := selected.perUnit.Mul(quantity)
	baselineTotal := baseline.Mul(quantity)
	savings := (baselineTotal - total).ClampZero()

	result := &BundlePricing{
		Quantity:              quantity,
		TierQuantity:          selected.quantity,
		PricePerItem:          selected.perUnit,
		PricePerItemFormatted: selected.perUnit.Format(enums.CurrencyGBP),
		TotalPrice:            total,
		TotalPriceFormatted:   total.Format(enums.CurrencyGBP),
		Savings:               savings,
		SavingsFormatted:      savings.Format(enums.CurrencyGBP),
		DiscountPercentage:    savings.PercentOf(baselineTotal),
	}

	if next := nextTierAbove(snap.tiers, quantity); next != nil {
		nextSavings := (baseline.Mul(next.quantity) - next.perUnit.Mul(next.quantity)).ClampZero()
		additional := (nextSavings - savings).ClampZero()
		result.NextTier = &NextTierView{
			Quantity:                   next.quantity,
			PricePerItem:               next.perUnit,
			PricePerItemFormatted:      next.perUnit.Format(enums.CurrencyGBP),
			AdditionalSavings:          additional,
			AdditionalSavingsFormatted: additional.Format(enums.CurrencyGBP),
		}
	}

	return result, nil
}

// ClearCache drops the tier snapshot; the next Calculate reloads it.
func (s *service) ClearCache() {
	s.slot.Store(nil)
	s.metrics.IncCacheRefresh("manual")
}

func (s *service) current(ctx context.Context) (*snapshot, error) {
	snap := s.slot.Load()
	if snap != nil && s.now().Sub(snap.loadedAt) < s.ttl {
		return snap, nil
	}

	trigger := "expired"
	if snap == nil {
		trigger = "cold"
	}

	rows, err := s.repo.ListActiveTiers(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load pricing tiers")
	}

	fresh, err := buildSnapshot(rows, s.now())
	if err != nil {
		return nil, err
	}

	s.slot.Store(fresh)
	s.metrics.IncCacheRefresh(trigger)
	return fresh, nil
}

// buildSnapshot derives per-unit prices and rejects ladders that would make
// the upsell arithmetic lie: the first tier must be the quantity-1 baseline
// and per-unit price must never rise as tier quantity grows.
func buildSnapshot(rows []models.PricingTier, loadedAt time.Time) (*snapshot, error) {
	if len(rows) == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeConfiguration, "no active pricing tiers configured")
	}
	if rows[0].Quantity != 1 {
		return nil, pkgerrors.New(pkgerrors.CodeConfiguration, "pricing tiers must include a quantity-1 baseline")
	}

	tiers := make([]tier, 0, len(rows))
	for i, row := range rows {
		if row.Quantity <= 0 || row.PriceGBP <= 0 {
			return nil, pkgerrors.New(pkgerrors.CodeConfiguration, "pricing tier quantity and price must be positive")
		}
		perUnit := roundedPerUnit(row.PriceGBP, row.Quantity)
		if i > 0 && perUnit > tiers[i-1].perUnit {
			return nil, pkgerrors.New(pkgerrors.CodeConfiguration,
				fmt.Sprintf("pricing tier %d raises the per-unit price above the previous tier", row.Quantity))
		}
		tiers = append(tiers, tier{quantity: row.Quantity, perUnit: perUnit})
	}

	return &snapshot{tiers: tiers, loadedAt: loadedAt}, nil
}

func roundedPerUnit(price, quantity int) types.Money {
	perUnit := decimal.New(int64(price), 0).
		Div(decimal.New(int64(quantity), 0)).
		Round(0)
	return types.Money(perUnit.IntPart())
}

func nextTierAbove(tiers []tier, quantity int) *tier {
	for i := range tiers {
		if tiers[i].quantity > quantity {
			return &tiers[i]
		}
	}
	return nil
}
