package countries

import (
	"context"

	"gorm.io/gorm"

	"github.com/pawtraits-dev/pawtraits-backend/pkg/db/models"
)

// CountryRepository loads the country reference table.
type CountryRepository interface {
	ListCountries(ctx context.Context) ([]models.Country, error)
}

// Repository reads countries from the platform-owned table.
type Repository struct {
	db *gorm.DB
}

// NewRepository builds a repository tied to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// ListCountries returns all countries ordered by name.
func (r *Repository) ListCountries(ctx context.Context) ([]models.Country, error) {
	var countries []models.Country
	if err := r.db.WithContext(ctx).
		Order("name ASC").
		Find(&countries).Error; err != nil {
		return nil, err
	}
	return countries, nil
}
