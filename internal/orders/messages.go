package orders

import (
	"fmt"

	"github.com/pawtraits-dev/pawtraits-backend/pkg/enums"
)

// DiscountMessage renders the role-appropriate summary of an order's
// discount. The second return is false when there is nothing to say. No
// arithmetic happens here; amounts arrive already formatted on the view.
func DiscountMessage(pricing OrderPricingView, role enums.UserType) (string, bool) {
	if !pricing.HasDiscount {
		return "", false
	}

	switch role {
	case enums.UserTypePartner:
		return fmt.Sprintf("Your client saved %s (%d%%) on this order. Your commission is %s.",
			pricing.DiscountTotalFormatted, pricing.DiscountPercentage, pricing.CommissionFormatted), true
	case enums.UserTypeAdmin:
		return fmt.Sprintf("Order discount %s (%d%%), partner commission %s.",
			pricing.DiscountTotalFormatted, pricing.DiscountPercentage, pricing.CommissionFormatted), true
	default:
		return fmt.Sprintf("You saved %s (%d%%) on this order!",
			pricing.DiscountTotalFormatted, pricing.DiscountPercentage), true
	}
}
