package types

import "strings"

// CheckoutAddress is the shipping address submitted at checkout. Older
// storefront clients send a single free-form Address line; newer ones send
// the structured AddressLine1/AddressLine2 pair. Field names follow the
// storefront wire format.
type CheckoutAddress struct {
	FirstName    string  `json:"firstName"`
	LastName     string  `json:"lastName"`
	Email        string  `json:"email"`
	AddressLine1 *string `json:"addressLine1,omitempty"`
	AddressLine2 *string `json:"addressLine2,omitempty"`
	Address      string  `json:"address,omitempty"`
	City         string  `json:"city"`
	Postcode     string  `json:"postcode"`
	Country      string  `json:"country"`
	BusinessName *string `json:"businessName,omitempty"`
	IsForClient  bool    `json:"isForClient"`
	ClientName   *string `json:"clientName,omitempty"`
	ClientEmail  *string `json:"clientEmail,omitempty"`
}

// Line1 resolves the primary address line, preferring the structured field
// over the legacy free-form one.
func (a CheckoutAddress) Line1() string {
	if a.AddressLine1 != nil && strings.TrimSpace(*a.AddressLine1) != "" {
		return strings.TrimSpace(*a.AddressLine1)
	}
	return strings.TrimSpace(a.Address)
}

// Line2 resolves the secondary address line; empty when absent or when the
// address came from a legacy client.
func (a CheckoutAddress) Line2() string {
	if a.AddressLine2 == nil {
		return ""
	}
	return strings.TrimSpace(*a.AddressLine2)
}
