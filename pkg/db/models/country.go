package models

// Country is one row of the platform-owned country reference table. The
// storefront uses it to resolve display names back to ISO codes and to pick
// the postcode rule for an address.
type Country struct {
	Code           string `gorm:"column:code;primaryKey" json:"code"`
	Name           string `gorm:"column:name;not null" json:"name"`
	CurrencyCode   string `gorm:"column:currency_code" json:"currency_code"`
	CurrencySymbol string `gorm:"column:currency_symbol" json:"currency_symbol"`
	Flag           string `gorm:"column:flag" json:"flag"`
}

// TableName keeps GORM on the platform's table name.
func (Country) TableName() string {
	return "countries"
}
