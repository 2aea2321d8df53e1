package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/pawtraits-dev/pawtraits-backend/pkg/enums"
)

// Order is the persisted order header as written by the platform at
// checkout. This service only ever reads it back to reconstruct discount
// breakdowns; it never mutates order rows.
type Order struct {
	ID             uuid.UUID       `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	OrderNumber    string          `gorm:"column:order_number;not null;uniqueIndex"`
	CustomerEmail  string          `gorm:"column:customer_email;not null"`
	OrderType      enums.OrderType `gorm:"column:order_type;not null;default:'customer'"`
	Currency       enums.Currency  `gorm:"column:currency;not null;default:'GBP'"`
	SubtotalAmount int             `gorm:"column:subtotal_amount"`
	ShippingAmount int             `gorm:"column:shipping_amount;not null;default:0"`
	TotalAmount    int             `gorm:"column:total_amount"`
	Items          []OrderItem     `gorm:"foreignKey:OrderID"`
	CreatedAt      time.Time       `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt      time.Time       `gorm:"column:updated_at;autoUpdateTime"`
}

// TableName keeps GORM on the platform's table name.
func (Order) TableName() string {
	return "orders"
}
