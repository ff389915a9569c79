package revenue

import (
	"context"
	"fmt"
	"strings"
	"time"
)

type Service interface {
	GetSummary(ctx context.Context, sellerID uint, filter Filter) (*Summary, error)
	GetSoldProducts(ctx context.Context, sellerID uint, filter Filter) ([]SoldProduct, error)
	GetOrderGroups(ctx context.Context, sellerID uint, filter Filter) ([]OrderGroup, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) GetSummary(ctx context.Context, sellerID uint, filter Filter) (*Summary, error) {
	items, err := s.soldItems(ctx, sellerID, filter)
	if err != nil {
		return nil, err
	}

	summary := &Summary{Period: formatPeriod(filter.StartDate, filter.EndDate)}
	for _, it := range items {
		summary.TotalRevenue += it.TotalAmount
		summary.TotalProductsSold += it.Quantity
	}

	return summary, nil
}

func (s *service) GetSoldProducts(ctx context.Context, sellerID uint, filter Filter) ([]SoldProduct, error) {
	return s.soldItems(ctx, sellerID, filter)
}

func (s *service) GetOrderGroups(ctx context.Context, sellerID uint, filter Filter) ([]OrderGroup, error) {
	items, err := s.soldItems(ctx, sellerID, filter)
	if err != nil {
		return nil, err
	}
	return GroupByOrder(items), nil
}

func (s *service) soldItems(ctx context.Context, sellerID uint, filter Filter) ([]SoldProduct, error) {
	start, end, err := parseRange(filter.StartDate, filter.EndDate)
	if err != nil {
		return nil, err
	}

	items, err := s.repo.GetSoldItemsBySeller(ctx, sellerID, start, end)
	if err != nil {
		return nil, err
	}

	if filter.Category != "" {
		filtered := items[:0]
		for _, it := range items {
			if strings.EqualFold(it.Category, filter.Category) {
				filtered = append(filtered, it)
			}
		}
		items = filtered
	}

	return items, nil
}

// parseRange widens the end bound to the end of its day so a same-day range
// still matches orders placed during that day.
func parseRange(startDate, endDate string) (*time.Time, *time.Time, error) {
	var start, end *time.Time

	if startDate != "" {
		t, err := time.Parse(dateLayout, startDate)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: start date %q", ErrInvalidDateRange, startDate)
		}
		start = &t
	}
	if endDate != "" {
		t, err := time.Parse(dateLayout, endDate)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: end date %q", ErrInvalidDateRange, endDate)
		}
		t = t.Add(24*time.Hour - time.Second)
		end = &t
	}

	return start, end, nil
}

func formatPeriod(startDate, endDate string) string {
	if startDate == "" && endDate == "" {
		return "Tất cả thời gian"
	}

	start := "Bắt đầu"
	if startDate != "" {
		if t, err := time.Parse(dateLayout, startDate); err == nil {
			start = t.Format("02/01/2006")
		}
	}
	end := "Hiện tại"
	if endDate != "" {
		if t, err := time.Parse(dateLayout, endDate); err == nil {
			end = t.Format("02/01/2006")
		}
	}

	return start + " - " + end
}
