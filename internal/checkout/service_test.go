package checkout

import (
	"context"
	"testing"

	"mimistyle-be/internal/cart"
	"mimistyle-be/internal/utils"
	"mimistyle-be/internal/voucher"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockVoucherService struct {
	mock.Mock
}

func (m *MockVoucherService) GetApplicable(ctx context.Context, subtotal float64) ([]*voucher.Voucher, error) {
	args := m.Called(ctx, subtotal)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*voucher.Voucher), args.Error(1)
}

func (m *MockVoucherService) GetByID(ctx context.Context, id uint) (*voucher.Voucher, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*voucher.Voucher), args.Error(1)
}

func TestServiceQuote(t *testing.T) {
	ctx := context.Background()

	t.Run("Prices the session cart with a voucher", func(t *testing.T) {
		manager := cart.NewManager()
		session := manager.With("", func(s *cart.Store) {
			s.AddItem(cart.LineItem{
				ProductID: 1,
				Product:   cart.ProductSnapshot{Name: "Áo thun", Price: utils.Float64Ptr(200000)},
				Quantity:  1,
			})
		})

		vouchers := new(MockVoucherService)
		vouchers.On("GetByID", ctx, uint(3)).
			Return(&voucher.Voucher{ID: 3, Code: "GIAM50K", DiscountValue: 50000}, nil)

		svc := NewService(manager, vouchers)

		id := uint(3)
		q, gotSession, err := svc.Quote(ctx, session, &id, 20000)
		require.NoError(t, err)

		assert.Equal(t, session, gotSession)
		require.Len(t, q.Items, 1)
		assert.Equal(t, 200000.0, q.Subtotal)
		assert.Equal(t, 50000.0, q.Discount)
		assert.Equal(t, 170000.0, q.Total)
		assert.Equal(t, "GIAM50K", q.Voucher.Code)
	})

	t.Run("Empty session gets a fresh cart and a session id", func(t *testing.T) {
		svc := NewService(cart.NewManager(), new(MockVoucherService))

		q, session, err := svc.Quote(ctx, "", nil, 15000)
		require.NoError(t, err)

		assert.NotEmpty(t, session)
		assert.Empty(t, q.Items)
		assert.Equal(t, 0.0, q.Subtotal)
		assert.Equal(t, 15000.0, q.Total)
	})

	t.Run("Unknown voucher id quotes without a discount", func(t *testing.T) {
		vouchers := new(MockVoucherService)
		vouchers.On("GetByID", ctx, uint(404)).Return(nil, nil)
		svc := NewService(cart.NewManager(), vouchers)

		id := uint(404)
		q, _, err := svc.Quote(ctx, "", &id, 0)
		require.NoError(t, err)
		assert.Nil(t, q.Voucher)
		assert.Equal(t, 0.0, q.Discount)
	})
}
