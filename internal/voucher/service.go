package voucher

import (
	"context"

	"mimistyle-be/internal/logger"

	"go.uber.org/zap"
)

// Service defines the business logic for discount vouchers.
type Service interface {
	GetApplicable(ctx context.Context, subtotal float64) ([]*Voucher, error)
	GetByID(ctx context.Context, id uint) (*Voucher, error)
}

type service struct {
	repo  Repository
	cache Cache
}

func NewService(repo Repository, cache Cache) Service {
	return &service{repo: repo, cache: cache}
}

// GetApplicable returns the active vouchers whose minimum order value the
// subtotal already clears. Applicability is decided here; the storefront only
// toggles selection.
func (s *service) GetApplicable(ctx context.Context, subtotal float64) ([]*Voucher, error) {
	vouchers, err := s.activeVouchers(ctx)
	if err != nil {
		return nil, err
	}

	applicable := []*Voucher{}
	for _, v := range vouchers {
		if subtotal >= v.MinOrderValue {
			applicable = append(applicable, v)
		}
	}

	return applicable, nil
}

func (s *service) activeVouchers(ctx context.Context) ([]*Voucher, error) {
	if s.cache != nil {
		if cached, ok := s.cache.Get(ctx); ok {
			return cached, nil
		}
	}

	vouchers, err := s.repo.GetActive(ctx)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		s.cache.Set(ctx, vouchers)
	}

	logger.FromCtx(ctx).Debug("active vouchers loaded", zap.Int("count", len(vouchers)))
	return vouchers, nil
}

func (s *service) GetByID(ctx context.Context, id uint) (*Voucher, error) {
	return s.repo.GetByID(ctx, id)
}
