// Package gateway answers "what did the payment gateway charge for this sale".
package gateway

import (
	"context"

	"github.com/hance08/concil/internal/model"
	"github.com/shopspring/decimal"
)

const (
	ModeMock   = "mock"
	ModePortal = "portal"
)

// Consultation is the gateway's view of a sale.
// PaymentDate is nil while the payment is still being processed.
type Consultation struct {
	Fee         decimal.Decimal
	Status      string
	PaymentDate *string
}

type Gateway interface {
	Name() string
	Query(ctx context.Context, sale model.Sale) (Consultation, error)
}
