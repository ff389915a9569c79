package order

import "time"

type OrderStatus string

const (
	StatusPending   OrderStatus = "PENDING"
	StatusConfirmed OrderStatus = "CONFIRMED"
	StatusShipping  OrderStatus = "SHIPPING"
	StatusCompleted OrderStatus = "COMPLETED"
	StatusCancelled OrderStatus = "CANCELLED"
)

type PaymentMethod string

const (
	PaymentCOD  PaymentMethod = "COD"
	PaymentBank PaymentMethod = "BANK_TRANSFER"
)

type Order struct {
	ID              uint          `json:"id"`
	BuyerID         uint          `json:"buyerId"`
	Status          OrderStatus   `json:"status"`
	ShippingName    string        `json:"shippingName"`
	ShippingPhone   string        `json:"shippingPhone"`
	ShippingAddress string        `json:"shippingAddress"`
	ShippingEmail   string        `json:"shippingEmail,omitempty"`
	Note            string        `json:"note,omitempty"`
	PaymentMethod   PaymentMethod `json:"paymentMethod"`
	TotalAmount     float64       `json:"totalAmount"`
	ShippingFee     float64       `json:"shippingFee"`
	DiscountAmount  float64       `json:"discountAmount"`
	FinalAmount     float64       `json:"finalAmount"`
	CreatedAt       time.Time     `json:"createdAt"`
	Items           []OrderItem   `json:"items"`
}

type OrderItem struct {
	ProductID   uint    `json:"productId"`
	ProductName string  `json:"productName"`
	ImageURL    string  `json:"imageUrl,omitempty"`
	Quantity    int     `json:"quantity"`
	Price       float64 `json:"price"`
	LineTotal   float64 `json:"lineTotal"`
}

type CreateOrderParams struct {
	BuyerID         uint              `json:"buyerId"`
	ShippingName    string            `json:"shippingName"`
	ShippingPhone   string            `json:"shippingPhone"`
	ShippingAddress string            `json:"shippingAddress"`
	ShippingEmail   string            `json:"shippingEmail"`
	ShippingFee     float64           `json:"shippingFee"`
	DiscountAmount  float64           `json:"discountAmount"`
	PaymentMethod   PaymentMethod     `json:"paymentMethod"`
	Note            string            `json:"note"`
	Items           []OrderItemParams `json:"items"`
}

type OrderItemParams struct {
	ProductID uint  `json:"productId"`
	Quantity  int   `json:"quantity"`
	VariantID *uint `json:"variantId"`
}
