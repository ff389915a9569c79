package payment

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalGatewayCreateInvoice(t *testing.T) {
	g := NewLocalGateway()

	t.Run("CODInvoiceHasNoExpiry", func(t *testing.T) {
		resp, err := g.CreateInvoice(context.Background(), "order-12", BuyerInfo{Name: "Lan"}, 250000, "COD")
		require.NoError(t, err)

		assert.Equal(t, "order-12", resp.ExternalID)
		assert.Equal(t, StatusAwaiting, resp.Status)
		assert.Equal(t, 250000.0, resp.Amount)
		assert.True(t, strings.HasPrefix(resp.InvoiceNumber, "INV-"))
		assert.Empty(t, resp.ExpirationTime)
	})

	t.Run("BankTransferGetsExpiry", func(t *testing.T) {
		resp, err := g.CreateInvoice(context.Background(), "order-13", BuyerInfo{Name: "Lan"}, 100000, "BANK_TRANSFER")
		require.NoError(t, err)

		assert.NotEmpty(t, resp.ExpirationTime)
	})
}
