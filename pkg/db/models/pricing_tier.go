package models

import (
	"time"

	"github.com/google/uuid"
)

// PricingTier captures one row of the digital-bundle discount ladder. The
// quantity-1 tier is the baseline unit price every savings figure is
// measured against.
type PricingTier struct {
	ID                 uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	Quantity           int       `gorm:"column:quantity;not null;uniqueIndex"`
	PriceGBP           int       `gorm:"column:price_gbp;not null"`
	DiscountPercentage int       `gorm:"column:discount_percentage;not null;default:0"`
	IsActive           bool      `gorm:"column:is_active;not null;default:true"`
	CreatedAt          time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt          time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

// TableName keeps GORM on the platform's table name.
func (PricingTier) TableName() string {
	return "pricing_tiers"
}
