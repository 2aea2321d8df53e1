package enums

// OrderType classifies who an order is placed by and for.
type OrderType string

const (
	OrderTypeCustomer         OrderType = "customer"
	OrderTypePartner          OrderType = "partner"
	OrderTypePartnerForClient OrderType = "partner_for_client"
)

// String implements fmt.Stringer.
func (o OrderType) String() string {
	return string(o)
}

// IsValid reports whether the order type is recognized.
func (o OrderType) IsValid() bool {
	switch o {
	case OrderTypeCustomer, OrderTypePartner, OrderTypePartnerForClient:
		return true
	}
	return false
}
