package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type Run struct {
	ID          string
	StartedAt   time.Time
	FinishedAt  time.Time
	InputPath   string
	OutputPath  string
	Gateway     string
	Read        int
	Processed   int
	Skipped     int
	TotalGross  decimal.Decimal
	TotalNet    decimal.Decimal
	TotalProfit decimal.Decimal
}
