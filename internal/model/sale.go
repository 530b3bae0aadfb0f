package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale is a row of the sales spreadsheet.
type Sale struct {
	ID            string
	Customer      string
	GrossAmount   decimal.Decimal
	SaleDate      time.Time
	PaymentMethod string
	ProductCost   decimal.Decimal
}

// ReportRow is a reconciled sale as written to the report.
type ReportRow struct {
	SaleID        string
	Customer      string
	GrossAmount   decimal.Decimal
	PaymentMethod string
	GatewayFee    decimal.Decimal
	AdditionalFee decimal.Decimal
	NetAmount     decimal.Decimal
	ProductCost   decimal.Decimal
	Profit        decimal.Decimal
	ROI           decimal.Decimal
	Status        string
}
