package product

import "errors"

var (
	ErrProductNotFound = errors.New("product not found")
	ErrNameRequired    = errors.New("product name is required")
	ErrDescRequired    = errors.New("product description is required")
	ErrAddressRequired = errors.New("contact address is required")
	ErrInvalidPricing  = errors.New("invalid pricing for trade type")
)
