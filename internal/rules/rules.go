// Package rules holds the financial rules applied to every reconciled sale:
// the additional fee charged per payment method, and the resulting net
// amount, profit and ROI.
package rules

import (
	"errors"
	"fmt"
	"strings"

	"github.com/hance08/concil/internal/utils"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidPaymentMethod = errors.New("invalid payment method")
	ErrInvalidAmount        = errors.New("invalid amount")
)

type PaymentMethod string

const (
	MethodCreditCard PaymentMethod = "cartao_credito"
	MethodDebitCard  PaymentMethod = "cartao_debito"
	MethodPix        PaymentMethod = "pix"
	MethodBoleto     PaymentMethod = "boleto"
)

// Methods lists every accepted payment method in display order.
var Methods = []PaymentMethod{MethodCreditCard, MethodDebitCard, MethodPix, MethodBoleto}

type FeeKind string

const (
	FeePercentage FeeKind = "percentage"
	FeeFixed      FeeKind = "fixed"
)

type FeeRule struct {
	Kind  FeeKind
	Value decimal.Decimal
}

// FeeRules is the single source of truth for additional fees.
var FeeRules = map[PaymentMethod]FeeRule{
	MethodCreditCard: {Kind: FeePercentage, Value: decimal.RequireFromString("0.025")},
	MethodDebitCard:  {Kind: FeePercentage, Value: decimal.RequireFromString("0.018")},
	MethodPix:        {Kind: FeePercentage, Value: decimal.RequireFromString("0.005")},
	MethodBoleto:     {Kind: FeeFixed, Value: decimal.RequireFromString("3.50")},
}

// ParsePaymentMethod normalises user or spreadsheet input ("PiX", " boleto ").
func ParsePaymentMethod(raw string) (PaymentMethod, error) {
	method := PaymentMethod(strings.ToLower(strings.TrimSpace(raw)))
	if _, ok := FeeRules[method]; !ok {
		valid := make([]string, 0, len(Methods))
		for _, m := range Methods {
			valid = append(valid, string(m))
		}
		return "", fmt.Errorf("%w: '%s' (valid: %s)", ErrInvalidPaymentMethod, raw, strings.Join(valid, ", "))
	}
	return method, nil
}

func (r FeeRule) Apply(gross decimal.Decimal) decimal.Decimal {
	if r.Kind == FeePercentage {
		return gross.Mul(r.Value)
	}
	return r.Value
}

// AdditionalFee returns the unrounded fee for a sale paid with method.
func AdditionalFee(gross decimal.Decimal, method string) (decimal.Decimal, error) {
	m, err := ParsePaymentMethod(method)
	if err != nil {
		return decimal.Zero, err
	}
	return FeeRules[m].Apply(gross), nil
}

type Input struct {
	GrossAmount   decimal.Decimal
	GatewayFee    decimal.Decimal
	ProductCost   decimal.Decimal
	PaymentMethod string
}

// Result values are rounded to two decimal places.
type Result struct {
	AdditionalFee decimal.Decimal
	NetAmount     decimal.Decimal
	Profit        decimal.Decimal
	ROI           decimal.Decimal
}

// Calculate applies the fee rules to one sale.
//
//	net    = gross - gateway fee - additional fee
//	profit = net - product cost
//	roi    = profit / product cost * 100, or 0 when the cost is 0
func Calculate(in Input) (Result, error) {
	if !in.GrossAmount.IsPositive() {
		return Result{}, fmt.Errorf("%w: gross amount must be positive", ErrInvalidAmount)
	}
	if in.GatewayFee.IsNegative() {
		return Result{}, fmt.Errorf("%w: gateway fee can not be negative", ErrInvalidAmount)
	}
	if in.ProductCost.IsNegative() {
		return Result{}, fmt.Errorf("%w: product cost can not be negative", ErrInvalidAmount)
	}

	additional, err := AdditionalFee(in.GrossAmount, in.PaymentMethod)
	if err != nil {
		return Result{}, err
	}

	net := in.GrossAmount.Sub(in.GatewayFee).Sub(additional)
	profit := net.Sub(in.ProductCost)

	roi := decimal.Zero
	if in.ProductCost.IsPositive() {
		roi = profit.Div(in.ProductCost).Mul(decimal.NewFromInt(100))
	}

	return Result{
		AdditionalFee: additional.Round(2),
		NetAmount:     net.Round(2),
		Profit:        profit.Round(2),
		ROI:           roi.Round(2),
	}, nil
}

type FeeDescription struct {
	Method  PaymentMethod
	Kind    FeeKind
	Value   decimal.Decimal
	Percent string // empty for fixed fees
}

func FeeInfo(method string) (FeeDescription, error) {
	m, err := ParsePaymentMethod(method)
	if err != nil {
		return FeeDescription{}, err
	}

	rule := FeeRules[m]
	info := FeeDescription{Method: m, Kind: rule.Kind, Value: rule.Value}
	if rule.Kind == FeePercentage {
		info.Percent = utils.FormatPercent(rule.Value)
	}
	return info, nil
}
