package orders

import (
	"github.com/shopspring/decimal"

	"github.com/pawtraits-dev/pawtraits-backend/pkg/db/models"
	"github.com/pawtraits-dev/pawtraits-backend/pkg/enums"
	"github.com/pawtraits-dev/pawtraits-backend/pkg/types"
)

// ItemPricingView is the discount breakdown for one order line. Every
// amount is carried both as minor units and as a formatted string.
type ItemPricingView struct {
	ProductName            string       `json:"productName"`
	Quantity               int          `json:"quantity"`
	UnitPrice              types.Money  `json:"unitPrice"`
	UnitPriceFormatted     string       `json:"unitPriceFormatted"`
	OriginalPrice          *types.Money `json:"originalPrice,omitempty"`
	OriginalPriceFormatted string       `json:"originalPriceFormatted,omitempty"`
	TotalPrice             types.Money  `json:"totalPrice"`
	TotalPriceFormatted    string       `json:"totalPriceFormatted"`
	HasDiscount            bool         `json:"hasDiscount"`
	DiscountPerUnit        types.Money  `json:"discountPerUnit"`
	DiscountTotal          types.Money  `json:"discountTotal"`
	DiscountTotalFormatted string       `json:"discountTotalFormatted"`
	DiscountPercentage     int          `json:"discountPercentage"`
}

// OrderPricingView is the order-level reconstruction of realized prices,
// discounts, and the partner commission.
type OrderPricingView struct {
	Currency               enums.Currency    `json:"currency"`
	Items                  []ItemPricingView `json:"items"`
	Subtotal               types.Money       `json:"subtotal"`
	SubtotalFormatted      string            `json:"subtotalFormatted"`
	Shipping               types.Money       `json:"shipping"`
	ShippingFormatted      string            `json:"shippingFormatted"`
	Total                  types.Money       `json:"total"`
	TotalFormatted         string            `json:"totalFormatted"`
	HasDiscount            bool              `json:"hasDiscount"`
	DiscountTotal          types.Money       `json:"discountTotal"`
	DiscountTotalFormatted string            `json:"discountTotalFormatted"`
	DiscountPercentage     int               `json:"discountPercentage"`
	Commission             types.Money       `json:"commission"`
	CommissionFormatted    string            `json:"commissionFormatted"`
}

// ItemPricing derives the discount view for a single line. It never fails:
// a missing original price simply means no discount, and a reference price
// below the realized price clamps to zero rather than going negative.
func ItemPricing(item models.OrderItem, currency enums.Currency) ItemPricingView {
	unit := types.Money(item.UnitPrice)
	total := types.Money(item.TotalPrice)

	view := ItemPricingView{
		ProductName:         item.ProductName,
		Quantity:            item.Quantity,
		UnitPrice:           unit,
		UnitPriceFormatted:  unit.Format(currency),
		TotalPrice:          total,
		TotalPriceFormatted: total.Format(currency),
	}

	if item.OriginalPrice == nil {
		return view
	}

	original := types.Money(*item.OriginalPrice)
	view.OriginalPrice = &original
	view.OriginalPriceFormatted = original.Format(currency)
	view.HasDiscount = original != unit

	perUnit := (original - unit).ClampZero()
	view.DiscountPerUnit = perUnit
	view.DiscountTotal = perUnit.Mul(item.Quantity)
	view.DiscountTotalFormatted = view.DiscountTotal.Format(currency)
	view.DiscountPercentage = perUnit.PercentOf(original)
	return view
}

// OrderPricing reconstructs the order-level breakdown. Absent stored
// subtotal/total amounts fall back to sums over the items; the partner
// commission is the rate (basis points) applied to the discounted subtotal.
func OrderPricing(order models.Order, commissionRateBPS int) OrderPricingView {
	// Unknown currencies still format (the symbol map defaults to euro),
	// so no coercion happens here.
	currency := order.Currency

	items := make([]ItemPricingView, 0, len(order.Items))
	var itemTotal, referenceTotal types.Money
	for _, item := range order.Items {
		view := ItemPricing(item, currency)
		items = append(items, view)

		itemTotal += view.TotalPrice
		if view.OriginalPrice != nil {
			referenceTotal += view.OriginalPrice.Mul(item.Quantity)
		} else {
			referenceTotal += view.TotalPrice
		}
	}

	subtotal := types.Money(order.SubtotalAmount)
	if subtotal <= 0 {
		subtotal = itemTotal
	}
	shipping := types.Money(order.ShippingAmount)
	total := types.Money(order.TotalAmount)
	if total <= 0 {
		total = subtotal + shipping
	}

	discount := (referenceTotal - itemTotal).ClampZero()
	commission := commissionFor(subtotal, commissionRateBPS)

	return OrderPricingView{
		Currency:               currency,
		Items:                  items,
		Subtotal:               subtotal,
		SubtotalFormatted:      subtotal.Format(currency),
		Shipping:               shipping,
		ShippingFormatted:      shipping.Format(currency),
		Total:                  total,
		TotalFormatted:         total.Format(currency),
		HasDiscount:            discount > 0,
		DiscountTotal:          discount,
		DiscountTotalFormatted: discount.Format(currency),
		DiscountPercentage:     discount.PercentOf(referenceTotal),
		Commission:             commission,
		CommissionFormatted:    commission.Format(currency),
	}
}

func commissionFor(subtotal types.Money, rateBPS int) types.Money {
	if subtotal <= 0 || rateBPS <= 0 {
		return 0
	}
	amount := decimal.New(int64(subtotal), 0).
		Mul(decimal.New(int64(rateBPS), 0)).
		Div(decimal.New(10000, 0)).
		Round(0)
	return types.Money(amount.IntPart())
}
