package orders

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/pawtraits-dev/pawtraits-backend/pkg/db/models"
)

// OrderRepository loads persisted orders for the pricing view.
type OrderRepository interface {
	GetWithItems(ctx context.Context, id uuid.UUID) (*models.Order, error)
}

// Repository reads orders from the platform-owned tables.
type Repository struct {
	db *gorm.DB
}

// NewRepository builds a repository tied to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// GetWithItems loads the order header and its line items.
func (r *Repository) GetWithItems(ctx context.Context, id uuid.UUID) (*models.Order, error) {
	var order models.Order
	if err := r.db.WithContext(ctx).
		Preload("Items").
		First(&order, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &order, nil
}
