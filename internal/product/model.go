package product

import "time"

type TradeType string

const (
	TradeBuyOnly  TradeType = "BUY_ONLY"
	TradeRentOnly TradeType = "RENT_ONLY"
	TradeBoth     TradeType = "BOTH"
)

type Product struct {
	ID                  uint       `json:"id"`
	Name                string     `json:"name"`
	Description         string     `json:"description"`
	ConditionPercentage *int       `json:"conditionPercentage,omitempty"`
	TradeType           TradeType  `json:"tradeType"`
	BuyPrice            *float64   `json:"buyPrice,omitempty"`
	RentPrice           *float64   `json:"rentPrice,omitempty"`
	RentUnit            *string    `json:"rentUnit,omitempty"`
	Status              string     `json:"status"`
	AddressContact      string     `json:"addressContact"`
	Featured            bool       `json:"featured"`
	IsNew               bool       `json:"isNew"`
	SellerID            uint       `json:"sellerId"`
	SellerName          string     `json:"sellerName,omitempty"`
	CategoryID          uint       `json:"categoryId"`
	CategoryName        string     `json:"categoryName,omitempty"`
	Images              []string   `json:"images,omitempty"`
	CreatedAt           time.Time  `json:"createdAt"`
}

type CreateProductParams struct {
	Name                string    `json:"name"`
	Description         string    `json:"description"`
	ConditionPercentage *int      `json:"conditionPercentage"`
	TradeType           TradeType `json:"tradeType"`
	BuyPrice            *float64  `json:"buyPrice"`
	RentPrice           *float64  `json:"rentPrice"`
	RentUnit            *string   `json:"rentUnit"`
	AddressContact      string    `json:"addressContact"`
	SellerID            uint      `json:"sellerId"`
	CategoryID          uint      `json:"categoryId"`
}

type UpdateProductParams struct {
	Name           *string    `json:"name"`
	Description    *string    `json:"description"`
	BuyPrice       *float64   `json:"buyPrice"`
	RentPrice      *float64   `json:"rentPrice"`
	RentUnit       *string    `json:"rentUnit"`
	Status         *string    `json:"status"`
	TradeType      *TradeType `json:"tradeType"`
	AddressContact *string    `json:"addressContact"`
}
