package payment

import (
	"context"
	"time"

	"mimistyle-be/internal/logger"
	"mimistyle-be/internal/utils"

	"go.uber.org/zap"
)

// Gateway issues an invoice for a placed order. The store currently only
// supports COD and manual bank transfer, so the default implementation
// generates invoices locally instead of calling out to a processor.
type Gateway interface {
	CreateInvoice(ctx context.Context, externalID string, buyer BuyerInfo, amount float64, method string) (*PaymentResponse, error)
}

type localGateway struct{}

func NewLocalGateway() Gateway {
	return &localGateway{}
}

func (g *localGateway) CreateInvoice(ctx context.Context, externalID string, buyer BuyerInfo, amount float64, method string) (*PaymentResponse, error) {
	resp := &PaymentResponse{
		ExternalID:    externalID,
		InvoiceNumber: utils.GenerateInvoiceNumber(),
		Amount:        amount,
		Status:        StatusAwaiting,
		PaymentMethod: method,
	}

	if method == "BANK_TRANSFER" {
		resp.ExpirationTime = time.Now().Add(transferExpiry).Format(time.RFC3339)
	}

	logger.FromCtx(ctx).Info("invoice issued",
		zap.String("external_id", externalID),
		zap.String("invoice", resp.InvoiceNumber),
		zap.Float64("amount", amount),
		zap.String("method", method),
	)

	return resp, nil
}
