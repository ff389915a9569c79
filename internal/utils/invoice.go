package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"time"
)

// GenerateInvoiceNumber builds an INV- number from the UTC timestamp down to
// the millisecond plus a random suffix, so invoices issued in the same instant
// stay distinct.
func GenerateInvoiceNumber() string {
	now := time.Now().UTC()
	ms := now.Nanosecond() / int(time.Millisecond)

	suffix, err := rand.Int(rand.Reader, big.NewInt(10000))
	if err != nil {
		suffix = big.NewInt(now.UnixNano() % 10000)
	}

	return fmt.Sprintf("INV-%s-%03d-%04d", now.Format("20060102-150405"), ms, suffix.Int64())
}
