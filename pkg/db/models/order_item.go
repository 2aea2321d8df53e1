package models

import (
	"time"

	"github.com/google/uuid"
)

// OrderItem is the snapshot of one line within a persisted order. UnitPrice
// is the realized price the customer paid; OriginalPrice, when present, is
// the pre-discount reference price. Discount amounts are always derived
// from the pair, never stored.
type OrderItem struct {
	ID            uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	OrderID       uuid.UUID `gorm:"column:order_id;type:uuid;not null"`
	ProductName   string    `gorm:"column:product_name;not null"`
	ImageURL      *string   `gorm:"column:image_url"`
	UnitPrice     int       `gorm:"column:unit_price;not null"`
	OriginalPrice *int      `gorm:"column:original_price"`
	Quantity      int       `gorm:"column:quantity;not null"`
	TotalPrice    int       `gorm:"column:total_price;not null"`
	CreatedAt     time.Time `gorm:"column:created_at;autoCreateTime"`
}

// TableName keeps GORM on the platform's table name.
func (OrderItem) TableName() string {
	return "order_items"
}
