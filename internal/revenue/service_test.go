package revenue

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) GetSoldItemsBySeller(ctx context.Context, sellerID uint, start, end *time.Time) ([]SoldProduct, error) {
	args := m.Called(ctx, sellerID, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]SoldProduct), args.Error(1)
}

func soldRow(orderID uint, category string, qty int, total float64) SoldProduct {
	return SoldProduct{
		OrderID:     orderID,
		Category:    category,
		Quantity:    qty,
		TotalAmount: total,
		SoldDate:    "2024-03-01",
		OrderStatus: "COMPLETED",
	}
}

func TestServiceGetSummary(t *testing.T) {
	ctx := context.Background()

	t.Run("Sums revenue and units over all sold rows", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("GetSoldItemsBySeller", ctx, uint(5), (*time.Time)(nil), (*time.Time)(nil)).
			Return([]SoldProduct{
				soldRow(1, "Áo", 2, 200000),
				soldRow(2, "Quần", 1, 150000),
			}, nil)

		summary, err := NewService(repo).GetSummary(ctx, 5, Filter{})
		require.NoError(t, err)

		assert.Equal(t, 350000.0, summary.TotalRevenue)
		assert.Equal(t, 3, summary.TotalProductsSold)
		assert.Equal(t, "Tất cả thời gian", summary.Period)
	})

	t.Run("Date range widens end bound to end of day", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("GetSoldItemsBySeller", ctx, uint(5), mock.Anything, mock.Anything).
			Run(func(args mock.Arguments) {
				start := args.Get(2).(*time.Time)
				end := args.Get(3).(*time.Time)
				require.NotNil(t, start)
				require.NotNil(t, end)
				assert.Equal(t, "2024-03-01T00:00:00Z", start.Format(time.RFC3339))
				assert.Equal(t, "2024-03-31T23:59:59Z", end.Format(time.RFC3339))
			}).
			Return([]SoldProduct{}, nil)

		summary, err := NewService(repo).GetSummary(ctx, 5, Filter{StartDate: "2024-03-01", EndDate: "2024-03-31"})
		require.NoError(t, err)
		assert.Equal(t, "01/03/2024 - 31/03/2024", summary.Period)
	})

	t.Run("Invalid date rejected", func(t *testing.T) {
		_, err := NewService(new(MockRepository)).GetSummary(ctx, 5, Filter{StartDate: "01-03-2024"})
		assert.ErrorIs(t, err, ErrInvalidDateRange)
	})
}

func TestServiceCategoryFilter(t *testing.T) {
	ctx := context.Background()

	repo := new(MockRepository)
	repo.On("GetSoldItemsBySeller", ctx, uint(5), (*time.Time)(nil), (*time.Time)(nil)).
		Return([]SoldProduct{
			soldRow(1, "Áo", 1, 100000),
			soldRow(2, "Quần", 1, 50000),
			soldRow(3, "áo", 1, 70000),
		}, nil)

	items, err := NewService(repo).GetSoldProducts(ctx, 5, Filter{Category: "Áo"})
	require.NoError(t, err)

	// Case-insensitive match keeps both Áo rows.
	require.Len(t, items, 2)
	assert.Equal(t, uint(1), items[0].OrderID)
	assert.Equal(t, uint(3), items[1].OrderID)
}

func TestServiceGetOrderGroups(t *testing.T) {
	ctx := context.Background()

	repo := new(MockRepository)
	repo.On("GetSoldItemsBySeller", ctx, uint(5), (*time.Time)(nil), (*time.Time)(nil)).
		Return([]SoldProduct{
			soldRow(1, "Áo", 1, 100000),
			soldRow(1, "Quần", 1, 50000),
			soldRow(2, "Áo", 1, 30000),
		}, nil)

	groups, err := NewService(repo).GetOrderGroups(ctx, 5, Filter{})
	require.NoError(t, err)

	require.Len(t, groups, 2)
	assert.Equal(t, 150000.0, groups[0].OrderTotal)
}
