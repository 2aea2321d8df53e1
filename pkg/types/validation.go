package types

// ValidationResult is the structured verdict returned by every checkout
// validation surface. Failures are data, not errors: callers always receive
// a result, never a raised failure for expected invalid input.
type ValidationResult struct {
	IsValid bool   `json:"isValid"`
	Error   string `json:"error,omitempty"`
}

// Valid returns a passing result.
func Valid() ValidationResult {
	return ValidationResult{IsValid: true}
}

// Invalid returns a failing result carrying the accumulated message.
func Invalid(message string) ValidationResult {
	return ValidationResult{IsValid: false, Error: message}
}

// ReferralDiscount describes the discount a referral code grants.
type ReferralDiscount struct {
	Eligible    bool   `json:"eligible"`
	Amount      Money  `json:"amount"`
	Description string `json:"description,omitempty"`
}

// ReferralValidation is the verdict returned by the platform's referral
// eligibility check. Consumed, never computed, by this service.
type ReferralValidation struct {
	Valid    bool              `json:"valid"`
	Error    string            `json:"error,omitempty"`
	Discount *ReferralDiscount `json:"discount,omitempty"`
}

// CartIssue is a single problem reported by the platform cart validator.
type CartIssue struct {
	Error string `json:"error"`
}

// CartWarning is a non-blocking notice from the platform cart validator.
type CartWarning struct {
	Message string `json:"message"`
}

// CartValidation is the full-mode cart check response from the platform.
type CartValidation struct {
	IsValid  bool          `json:"isValid"`
	Errors   []CartIssue   `json:"errors,omitempty"`
	Warnings []CartWarning `json:"warnings,omitempty"`
}

// ShippingOption is one fulfillment choice quoted by the platform.
type ShippingOption struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	PriceCents   Money  `json:"price"`
	Currency     string `json:"currency"`
	MinDeliveryD int    `json:"minDeliveryDays"`
	MaxDeliveryD int    `json:"maxDeliveryDays"`
}

// CartItem is the line-item shape forwarded to the shipping-options quote.
type CartItem struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}
