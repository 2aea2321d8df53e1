package pricing

import (
	"context"

	"gorm.io/gorm"

	"github.com/pawtraits-dev/pawtraits-backend/pkg/db/models"
)

// TierRepository loads the active discount ladder for bundle pricing.
type TierRepository interface {
	ListActiveTiers(ctx context.Context) ([]models.PricingTier, error)
}

// Repository reads pricing tiers from the platform-owned table.
type Repository struct {
	db *gorm.DB
}

// NewRepository builds a repository tied to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// ListActiveTiers returns active tiers ordered by quantity ascending.
func (r *Repository) ListActiveTiers(ctx context.Context) ([]models.PricingTier, error) {
	var tiers []models.PricingTier
	if err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("quantity ASC").
		Find(&tiers).Error; err != nil {
		return nil, err
	}
	return tiers, nil
}
