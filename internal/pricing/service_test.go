package pricing

import (
	"context"
	"testing"
	"time"

	"github.com/pawtraits-dev/pawtraits-backend/pkg/db/models"
	pkgerrors "github.com/pawtraits-dev/pawtraits-backend/pkg/errors"
	"github.com/pawtraits-dev/pawtraits-backend/pkg/types"
)

var ladder = []models.PricingTier{
	{Quantity: 1, PriceGBP: 1500},
	{Quantity: 3, PriceGBP: 3825},
	{Quantity: 5, PriceGBP: 5625},
	{Quantity: 10, PriceGBP: 9750},
}

type stubTierRepo struct {
	tiers []models.PricingTier
	err   error
	calls int
}

func (s *stubTierRepo) ListActiveTiers(ctx context.Context) ([]models.PricingTier, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.tiers, nil
}

func newTestService(repo *stubTierRepo, now func() time.Time) *service {
	return &service{
		repo: repo,
		ttl:  5 * time.Minute,
		now:  now,
	}
}

func TestCalculateRejectsNonPositiveQuantity(t *testing.T) {
	t.Parallel()

	svc := newTestService(&stubTierRepo{tiers: ladder}, time.Now)
	for _, qty := range []int{0, -1} {
		_, err := svc.Calculate(context.Background(), qty)
		if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeValidation {
			t.Fatalf("quantity %d: expected validation error, got %v", qty, err)
		}
	}
}

func TestCalculateNoTiersIsConfigurationError(t *testing.T) {
	t.Parallel()

	svc := newTestService(&stubTierRepo{}, time.Now)
	_, err := svc.Calculate(context.Background(), 1)
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeConfiguration {
		t.Fatalf("expected configuration error, got %v", err)
	}
}

func TestCalculateRejectsRisingPerUnitLadder(t *testing.T) {
	t.Parallel()

	repo := &stubTierRepo{tiers: []models.PricingTier{
		{Quantity: 1, PriceGBP: 1500},
		{Quantity: 3, PriceGBP: 4800}, // per-unit 1600 > 1500
	}}
	svc := newTestService(repo, time.Now)
	_, err := svc.Calculate(context.Background(), 3)
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeConfiguration {
		t.Fatalf("expected configuration error, got %v", err)
	}
}

func TestCalculateExactTierQuantity(t *testing.T) {
	t.Parallel()

	svc := newTestService(&stubTierRepo{tiers: ladder}, time.Now)
	got, err := svc.Calculate(context.Background(), 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got.TierQuantity != 3 || got.PricePerItem != 1275 {
		t.Fatalf("unexpected tier selection: %+v", got)
	}
	if got.TotalPrice != 3825 || got.TotalPriceFormatted != "£38.25" {
		t.Fatalf("unexpected total: %+v", got)
	}
	if got.Savings != 675 || got.DiscountPercentage != 15 {
		t.Fatalf("unexpected savings: %+v", got)
	}
	if got.NextTier == nil || got.NextTier.Quantity != 5 {
		t.Fatalf("expected next tier 5, got %+v", got.NextTier)
	}
	// savings at 5 units = (1500-1125)*5 = 1875; incremental over 675 = 1200
	if got.NextTier.AdditionalSavings != 1200 {
		t.Fatalf("unexpected next tier savings: %+v", got.NextTier)
	}
}

func TestCalculateBetweenTiersExtendsUnitEconomics(t *testing.T) {
	t.Parallel()

	svc := newTestService(&stubTierRepo{tiers: ladder}, time.Now)
	got, err := svc.Calculate(context.Background(), 4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got.TierQuantity != 3 {
		t.Fatalf("expected quantity-3 tier, got %+v", got)
	}
	if want := got.PricePerItem.Mul(4); got.TotalPrice != want {
		t.Fatalf("total %d is not per-unit × quantity %d", got.TotalPrice, want)
	}
	if got.Savings != 900 || got.DiscountPercentage != 15 {
		t.Fatalf("unexpected savings: %+v", got)
	}
}

func TestCalculateBelowAllTiersUsesBaseline(t *testing.T) {
	t.Parallel()

	svc := newTestService(&stubTierRepo{tiers: ladder}, time.Now)
	got, err := svc.Calculate(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.TierQuantity != 1 || got.Savings != 0 || got.DiscountPercentage != 0 {
		t.Fatalf("expected baseline pricing, got %+v", got)
	}
	if got.NextTier == nil || got.NextTier.Quantity != 3 {
		t.Fatalf("expected next tier 3, got %+v", got.NextTier)
	}
}

func TestCalculateTopTierHasNoLookahead(t *testing.T) {
	t.Parallel()

	svc := newTestService(&stubTierRepo{tiers: ladder}, time.Now)
	got, err := svc.Calculate(context.Background(), 12)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.TierQuantity != 10 || got.NextTier != nil {
		t.Fatalf("expected top tier without lookahead, got %+v", got)
	}
}

func TestDiscountPercentageMonotonicWithinTier(t *testing.T) {
	t.Parallel()

	svc := newTestService(&stubTierRepo{tiers: ladder}, time.Now)
	prev := -1
	for qty := 5; qty < 10; qty++ {
		got, err := svc.Calculate(context.Background(), qty)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.DiscountPercentage < prev {
			t.Fatalf("discount fell from %d to %d at quantity %d", prev, got.DiscountPercentage, qty)
		}
		prev = got.DiscountPercentage
	}
}

func TestTotalIsPerUnitTimesQuantity(t *testing.T) {
	t.Parallel()

	svc := newTestService(&stubTierRepo{tiers: ladder}, time.Now)
	for qty := 1; qty <= 25; qty++ {
		got, err := svc.Calculate(context.Background(), qty)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.TotalPrice != got.PricePerItem.Mul(qty) {
			t.Fatalf("quantity %d: total %d != per-unit %d × qty", qty, got.TotalPrice, got.PricePerItem)
		}
	}
}

func TestSnapshotReusedUntilExpiry(t *testing.T) {
	t.Parallel()

	clock := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	repo := &stubTierRepo{tiers: ladder}
	svc := newTestService(repo, func() time.Time { return clock })

	for i := 0; i < 3; i++ {
		if _, err := svc.Calculate(context.Background(), 3); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if repo.calls != 1 {
		t.Fatalf("expected one load within ttl, got %d", repo.calls)
	}

	clock = clock.Add(6 * time.Minute)
	if _, err := svc.Calculate(context.Background(), 3); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.calls != 2 {
		t.Fatalf("expected reload after ttl, got %d calls", repo.calls)
	}
}

func TestClearCacheForcesReload(t *testing.T) {
	t.Parallel()

	repo := &stubTierRepo{tiers: ladder}
	svc := newTestService(repo, time.Now)

	if _, err := svc.Calculate(context.Background(), 3); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	svc.ClearCache()
	if _, err := svc.Calculate(context.Background(), 3); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.calls != 2 {
		t.Fatalf("expected reload after clear, got %d calls", repo.calls)
	}
}

func TestRoundedPerUnitRoundsHalfUp(t *testing.T) {
	t.Parallel()

	if got := roundedPerUnit(1000, 3); got != types.Money(333) {
		t.Fatalf("expected 333, got %d", got)
	}
	if got := roundedPerUnit(1001, 2); got != types.Money(501) {
		t.Fatalf("expected 501, got %d", got)
	}
}
