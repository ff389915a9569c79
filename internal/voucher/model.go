package voucher

// Voucher is a fixed-value discount code with a minimum order threshold.
// Vouchers are supplied by the backend and immutable from the storefront's
// perspective.
type Voucher struct {
	ID            uint    `json:"id"`
	Code          string  `json:"code"`
	DiscountValue float64 `json:"discountValue"`
	MinOrderValue float64 `json:"minOrderValue"`
}
