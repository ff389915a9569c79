package voucher

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) GetActive(ctx context.Context) ([]*Voucher, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*Voucher), args.Error(1)
}

func (m *MockRepository) GetByID(ctx context.Context, id uint) (*Voucher, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Voucher), args.Error(1)
}

type fakeCache struct {
	vouchers []*Voucher
	hit      bool
	setCount int
}

func (c *fakeCache) Get(ctx context.Context) ([]*Voucher, bool) {
	return c.vouchers, c.hit
}

func (c *fakeCache) Set(ctx context.Context, vouchers []*Voucher) {
	c.vouchers = vouchers
	c.setCount++
}

func activeVouchers() []*Voucher {
	return []*Voucher{
		{ID: 1, Code: "GIAM50K", DiscountValue: 50000, MinOrderValue: 200000},
		{ID: 2, Code: "FREESHIP", DiscountValue: 30000, MinOrderValue: 300000},
		{ID: 3, Code: "TET2025", DiscountValue: 100000, MinOrderValue: 500000},
	}
}

func TestService_GetApplicable(t *testing.T) {
	ctx := context.Background()

	t.Run("FiltersByMinOrderValue", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("GetActive", ctx).Return(activeVouchers(), nil)
		svc := NewService(repo, nil)

		applicable, err := svc.GetApplicable(ctx, 350000)
		require.NoError(t, err)

		require.Len(t, applicable, 2)
		assert.Equal(t, "GIAM50K", applicable[0].Code)
		assert.Equal(t, "FREESHIP", applicable[1].Code)
	})

	t.Run("ExactThresholdQualifies", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("GetActive", ctx).Return(activeVouchers(), nil)
		svc := NewService(repo, nil)

		applicable, err := svc.GetApplicable(ctx, 200000)
		require.NoError(t, err)
		require.Len(t, applicable, 1)
		assert.Equal(t, "GIAM50K", applicable[0].Code)
	})

	t.Run("NothingApplicableGivesEmptyList", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("GetActive", ctx).Return(activeVouchers(), nil)
		svc := NewService(repo, nil)

		applicable, err := svc.GetApplicable(ctx, 1000)
		require.NoError(t, err)
		assert.NotNil(t, applicable)
		assert.Empty(t, applicable)
	})

	t.Run("CacheHitSkipsRepository", func(t *testing.T) {
		repo := new(MockRepository)
		cache := &fakeCache{vouchers: activeVouchers(), hit: true}
		svc := NewService(repo, cache)

		applicable, err := svc.GetApplicable(ctx, 500000)
		require.NoError(t, err)
		assert.Len(t, applicable, 3)
		repo.AssertNotCalled(t, "GetActive")
	})

	t.Run("CacheMissPopulatesCache", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("GetActive", ctx).Return(activeVouchers(), nil)
		cache := &fakeCache{}
		svc := NewService(repo, cache)

		_, err := svc.GetApplicable(ctx, 500000)
		require.NoError(t, err)
		assert.Equal(t, 1, cache.setCount)
	})

	t.Run("RepositoryError", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("GetActive", ctx).Return(nil, errors.New("db down"))
		svc := NewService(repo, nil)

		_, err := svc.GetApplicable(ctx, 500000)
		assert.Error(t, err)
	})
}
