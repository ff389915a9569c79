package checkout

import (
	"mimistyle-be/internal/cart"
	"mimistyle-be/internal/voucher"
)

// Totals is the breakdown shown on the checkout summary.
type Totals struct {
	Subtotal float64 `json:"subtotal"`
	Discount float64 `json:"discount"`
	Total    float64 `json:"total"`
}

// Calculate derives the checkout totals from scratch on every call: the
// inputs are user-scale, caching buys nothing.
//
//	subtotal = Σ price * quantity (missing price counts 0)
//	discount = selected voucher's value, 0 without one
//	total    = max(0, subtotal - discount + shippingFee)
func Calculate(items []cart.LineItem, selected *voucher.Voucher, shippingFee float64) Totals {
	var subtotal float64
	for _, it := range items {
		if it.Product.Price != nil {
			subtotal += *it.Product.Price * float64(it.Quantity)
		}
	}

	var discount float64
	if selected != nil {
		discount = selected.DiscountValue
	}

	total := subtotal - discount + shippingFee
	if total < 0 {
		total = 0
	}

	return Totals{
		Subtotal: subtotal,
		Discount: discount,
		Total:    total,
	}
}
