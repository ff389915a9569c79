package checkout

import (
	"context"

	"mimistyle-be/internal/cart"
	"mimistyle-be/internal/voucher"
)

// Quote is a priced view of the session cart: the line items plus the totals
// for the currently selected voucher and shipping fee.
type Quote struct {
	Items   []cart.LineItem  `json:"items"`
	Voucher *voucher.Voucher `json:"voucher,omitempty"`
	Totals
}

// Service defines the business logic for checkout pricing.
type Service interface {
	Quote(ctx context.Context, sessionID string, voucherID *uint, shippingFee float64) (*Quote, string, error)
}

type service struct {
	carts    *cart.Manager
	vouchers voucher.Service
}

func NewService(carts *cart.Manager, vouchers voucher.Service) Service {
	return &service{carts: carts, vouchers: vouchers}
}

func (s *service) Quote(ctx context.Context, sessionID string, voucherID *uint, shippingFee float64) (*Quote, string, error) {
	var items []cart.LineItem
	sessionID = s.carts.With(sessionID, func(st *cart.Store) {
		items = st.Items()
	})

	var selected *voucher.Voucher
	if voucherID != nil {
		v, err := s.vouchers.GetByID(ctx, *voucherID)
		if err != nil {
			return nil, sessionID, err
		}
		selected = v
	}

	q := &Quote{
		Items:   items,
		Voucher: selected,
		Totals:  Calculate(items, selected, shippingFee),
	}
	return q, sessionID, nil
}
