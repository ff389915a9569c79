package payment

import "time"

type BuyerInfo struct {
	Name  string
	Email string
	Phone string
}

type PaymentResponse struct {
	ExternalID     string  `json:"external_id"`
	InvoiceNumber  string  `json:"invoice_number"`
	Amount         float64 `json:"amount"`
	Status         string  `json:"status"`
	PaymentMethod  string  `json:"payment_method,omitempty"`
	ExpirationTime string  `json:"expires_at,omitempty"`
}

const (
	StatusAwaiting = "AWAITING_PAYMENT"
	StatusPaid     = "PAID"
)

// COD invoices fall due on delivery, bank transfers expire after this window.
const transferExpiry = 24 * time.Hour
