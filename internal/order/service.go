package order

import (
	"context"
	"fmt"
	"strings"

	"mimistyle-be/internal/logger"
	"mimistyle-be/internal/metrics"
	"mimistyle-be/internal/payment"
	"mimistyle-be/internal/product"
	"mimistyle-be/internal/user"

	"go.uber.org/zap"
)

type Service interface {
	Create(ctx context.Context, params CreateOrderParams) (*Order, *payment.PaymentResponse, error)
	UpdateStatus(ctx context.Context, orderID uint, status OrderStatus) error
	GetByBuyer(ctx context.Context, buyerID uint) ([]*Order, error)
}

type service struct {
	repo     Repository
	users    user.Repository
	products product.Repository
	gateway  payment.Gateway
}

func NewService(repo Repository, users user.Repository, products product.Repository, gateway payment.Gateway) Service {
	return &service{repo: repo, users: users, products: products, gateway: gateway}
}

var validStatuses = map[OrderStatus]bool{
	StatusPending:   true,
	StatusConfirmed: true,
	StatusShipping:  true,
	StatusCompleted: true,
	StatusCancelled: true,
}

// Create places an order from the given lines. Prices come from the catalog
// at placement time, never from the client: a missing buy price sells for
// zero, and a non-positive quantity is bumped to one.
func (s *service) Create(ctx context.Context, params CreateOrderParams) (*Order, *payment.PaymentResponse, error) {
	log := logger.FromCtx(ctx)

	if len(params.Items) == 0 {
		return nil, nil, ErrEmptyOrder
	}

	buyer, err := s.users.GetUserByID(ctx, params.BuyerID)
	if err != nil {
		return nil, nil, err
	}
	if buyer == nil {
		return nil, nil, ErrBuyerNotFound
	}

	o := &Order{
		BuyerID:         params.BuyerID,
		Status:          StatusPending,
		ShippingName:    strings.TrimSpace(params.ShippingName),
		ShippingPhone:   strings.TrimSpace(params.ShippingPhone),
		ShippingAddress: strings.TrimSpace(params.ShippingAddress),
		ShippingEmail:   strings.TrimSpace(params.ShippingEmail),
		Note:            params.Note,
		PaymentMethod:   params.PaymentMethod,
		ShippingFee:     params.ShippingFee,
		DiscountAmount:  params.DiscountAmount,
	}
	if o.PaymentMethod == "" {
		o.PaymentMethod = PaymentCOD
	}

	var total float64
	for _, line := range params.Items {
		p, err := s.products.GetByID(ctx, line.ProductID)
		if err != nil {
			return nil, nil, err
		}
		if p == nil {
			return nil, nil, ErrProductNotFound
		}

		qty := line.Quantity
		if qty <= 0 {
			qty = 1
		}

		price := 0.0
		if p.BuyPrice != nil {
			price = *p.BuyPrice
		}

		lineTotal := price * float64(qty)
		total += lineTotal

		image := ""
		if len(p.Images) > 0 {
			image = p.Images[0]
		}
		o.Items = append(o.Items, OrderItem{
			ProductID:   p.ID,
			ProductName: p.Name,
			ImageURL:    image,
			Quantity:    qty,
			Price:       price,
			LineTotal:   lineTotal,
		})
	}

	o.TotalAmount = total
	final := total + o.ShippingFee - o.DiscountAmount
	if final < 0 {
		final = 0
	}
	o.FinalAmount = final

	created, err := s.repo.CreateOrderTx(ctx, o)
	if err != nil {
		return nil, nil, err
	}

	invoice, err := s.gateway.CreateInvoice(ctx,
		fmt.Sprintf("order-%d", created.ID),
		payment.BuyerInfo{Name: buyer.FullName, Email: buyer.Email, Phone: buyer.PhoneNumber},
		created.FinalAmount,
		string(created.PaymentMethod),
	)
	if err != nil {
		// The order is already persisted, the invoice can be re-issued later.
		log.Error("invoice creation failed", zap.Uint("order_id", created.ID), zap.Error(err))
		invoice = nil
	}

	metrics.OrdersCreated.Inc()
	log.Info("order placed",
		zap.Uint("order_id", created.ID),
		zap.Uint("buyer_id", created.BuyerID),
		zap.Float64("final_amount", created.FinalAmount),
	)

	return created, invoice, nil
}

func (s *service) UpdateStatus(ctx context.Context, orderID uint, status OrderStatus) error {
	if !validStatuses[status] {
		return ErrInvalidStatus
	}
	return s.repo.UpdateStatus(ctx, orderID, status)
}

func (s *service) GetByBuyer(ctx context.Context, buyerID uint) ([]*Order, error) {
	return s.repo.GetByBuyer(ctx, buyerID)
}
