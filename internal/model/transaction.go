package model

import "github.com/shopspring/decimal"

// TransactionRecord is one transaction as the payment portal knows it.
// PaymentDate is nil while the payment has not been settled.
type TransactionRecord struct {
	ID            string
	CustomerName  string
	SaleDate      string
	PaymentDate   *string
	PaymentMethod string
	GrossAmount   decimal.Decimal
	GatewayFee    decimal.Decimal
	Status        string
}

func (r TransactionRecord) IsSettled() bool {
	return r.PaymentDate != nil
}
