package product

import (
	"context"
	"strings"

	"mimistyle-be/internal/utils"
)

// Service defines the business logic for product listings.
type Service interface {
	GetAll(ctx context.Context) ([]*Product, error)
	GetByID(ctx context.Context, id uint) (*Product, error)
	GetBySeller(ctx context.Context, sellerID uint) ([]*Product, error)
	Create(ctx context.Context, params CreateProductParams) (*Product, error)
	Update(ctx context.Context, id uint, params UpdateProductParams) (*Product, error)
	Delete(ctx context.Context, id uint) error
	SaveImageNames(ctx context.Context, productID uint, filenames []string) (*Product, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) GetAll(ctx context.Context) ([]*Product, error) {
	return s.repo.GetAll(ctx)
}

func (s *service) GetByID(ctx context.Context, id uint) (*Product, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrProductNotFound
	}
	return p, nil
}

func (s *service) GetBySeller(ctx context.Context, sellerID uint) ([]*Product, error) {
	return s.repo.GetBySeller(ctx, sellerID)
}

func (s *service) Create(ctx context.Context, params CreateProductParams) (*Product, error) {
	if err := validatePricing(params.TradeType, params.BuyPrice, params.RentPrice); err != nil {
		return nil, err
	}
	if strings.TrimSpace(params.Name) == "" {
		return nil, ErrNameRequired
	}
	if strings.TrimSpace(params.Description) == "" {
		return nil, ErrDescRequired
	}
	if strings.TrimSpace(params.AddressContact) == "" {
		return nil, ErrAddressRequired
	}

	p := &Product{
		Name:                strings.TrimSpace(params.Name),
		Description:         params.Description,
		ConditionPercentage: params.ConditionPercentage,
		TradeType:           params.TradeType,
		BuyPrice:            params.BuyPrice,
		RentPrice:           params.RentPrice,
		RentUnit:            params.RentUnit,
		Status:              utils.ProductStatusAvailable,
		AddressContact:      params.AddressContact,
		IsNew:               true,
		SellerID:            params.SellerID,
		CategoryID:          params.CategoryID,
	}

	return s.repo.Create(ctx, p)
}

// validatePricing mirrors the listing rules: a sale listing needs a sale
// price, a rental needs a rent price, a combined listing needs at least one.
func validatePricing(tradeType TradeType, buyPrice, rentPrice *float64) error {
	hasBuy := buyPrice != nil && *buyPrice > 0
	hasRent := rentPrice != nil && *rentPrice > 0

	switch tradeType {
	case TradeBuyOnly:
		if !hasBuy {
			return ErrInvalidPricing
		}
	case TradeRentOnly:
		if !hasRent {
			return ErrInvalidPricing
		}
	case TradeBoth:
		if !hasBuy && !hasRent {
			return ErrInvalidPricing
		}
	}
	return nil
}

func (s *service) Update(ctx context.Context, id uint, params UpdateProductParams) (*Product, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrProductNotFound
	}

	if params.Name != nil {
		existing.Name = *params.Name
	}
	if params.Description != nil {
		existing.Description = *params.Description
	}
	if params.BuyPrice != nil {
		existing.BuyPrice = params.BuyPrice
	}
	if params.RentPrice != nil {
		existing.RentPrice = params.RentPrice
	}
	if params.RentUnit != nil {
		existing.RentUnit = params.RentUnit
	}
	if params.Status != nil {
		existing.Status = *params.Status
	}
	if params.TradeType != nil {
		existing.TradeType = *params.TradeType
	}
	if params.AddressContact != nil {
		existing.AddressContact = *params.AddressContact
	}

	if err := validatePricing(existing.TradeType, existing.BuyPrice, existing.RentPrice); err != nil {
		return nil, err
	}

	return s.repo.Update(ctx, existing)
}

func (s *service) Delete(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}

// SaveImageNames records uploaded image filenames; the first becomes the
// thumbnail.
func (s *service) SaveImageNames(ctx context.Context, productID uint, filenames []string) (*Product, error) {
	p, err := s.repo.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrProductNotFound
	}

	if err := s.repo.SaveImages(ctx, productID, filenames); err != nil {
		return nil, err
	}

	images, err := s.repo.GetImages(ctx, productID)
	if err != nil {
		return nil, err
	}
	p.Images = images

	return p, nil
}
