package rules

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestAdditionalFee(t *testing.T) {
	tests := []struct {
		name   string
		gross  string
		method string
		want   string
	}{
		{name: "credit card 2.5%", gross: "100", method: "cartao_credito", want: "2.5"},
		{name: "debit card 1.8%", gross: "200", method: "cartao_debito", want: "3.6"},
		{name: "pix 0.5%", gross: "1000", method: "pix", want: "5"},
		{name: "boleto fixed", gross: "50", method: "boleto", want: "3.5"},
		{name: "boleto fixed high value", gross: "5000", method: "boleto", want: "3.5"},
		{name: "mixed case input", gross: "100", method: "PiX", want: "0.5"},
		{name: "surrounding spaces", gross: "100", method: "  pix ", want: "0.5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := AdditionalFee(d(tt.gross), tt.method)
			require.NoError(t, err)
			assert.True(t, d(tt.want).Equal(got), "got %s", got)
		})
	}
}

func TestAdditionalFee_InvalidMethod(t *testing.T) {
	_, err := AdditionalFee(d("100"), "bitcoin")

	assert.ErrorIs(t, err, ErrInvalidPaymentMethod)
	assert.ErrorContains(t, err, "bitcoin")
	assert.ErrorContains(t, err, "cartao_credito")
}

func TestCalculate_StandardSale(t *testing.T) {
	// net = 100 - 3 - 0.50 = 96.50; profit = 46.50; roi = 93%
	got, err := Calculate(Input{
		GrossAmount:   d("100"),
		GatewayFee:    d("3"),
		ProductCost:   d("50"),
		PaymentMethod: "pix",
	})

	require.NoError(t, err)
	assert.Equal(t, "0.50", got.AdditionalFee.StringFixed(2))
	assert.Equal(t, "96.50", got.NetAmount.StringFixed(2))
	assert.Equal(t, "46.50", got.Profit.StringFixed(2))
	assert.Equal(t, "93.00", got.ROI.StringFixed(2))
}

func TestCalculate_Loss(t *testing.T) {
	got, err := Calculate(Input{
		GrossAmount:   d("10"),
		GatewayFee:    d("1"),
		ProductCost:   d("15"),
		PaymentMethod: "boleto",
	})

	require.NoError(t, err)
	assert.Equal(t, "5.50", got.NetAmount.StringFixed(2))
	assert.Equal(t, "-9.50", got.Profit.StringFixed(2))
	assert.Equal(t, "-63.33", got.ROI.StringFixed(2))
}

func TestCalculate_ZeroCostHasZeroROI(t *testing.T) {
	got, err := Calculate(Input{
		GrossAmount:   d("100"),
		GatewayFee:    d("0"),
		ProductCost:   d("0"),
		PaymentMethod: "pix",
	})

	require.NoError(t, err)
	assert.True(t, got.ROI.IsZero())
	assert.True(t, got.Profit.IsPositive())
}

func TestCalculate_Validation(t *testing.T) {
	valid := Input{GrossAmount: d("100"), GatewayFee: d("5"), ProductCost: d("50"), PaymentMethod: "pix"}

	tests := []struct {
		name   string
		mutate func(*Input)
		want   error
	}{
		{name: "zero gross", mutate: func(in *Input) { in.GrossAmount = d("0") }, want: ErrInvalidAmount},
		{name: "negative gross", mutate: func(in *Input) { in.GrossAmount = d("-10") }, want: ErrInvalidAmount},
		{name: "negative gateway fee", mutate: func(in *Input) { in.GatewayFee = d("-1") }, want: ErrInvalidAmount},
		{name: "negative cost", mutate: func(in *Input) { in.ProductCost = d("-5") }, want: ErrInvalidAmount},
		{name: "unknown method", mutate: func(in *Input) { in.PaymentMethod = "cheque" }, want: ErrInvalidPaymentMethod},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := valid
			tt.mutate(&in)

			_, err := Calculate(in)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestFeeInfo(t *testing.T) {
	info, err := FeeInfo("cartao_credito")
	require.NoError(t, err)
	assert.Equal(t, FeePercentage, info.Kind)
	assert.True(t, d("0.025").Equal(info.Value))
	assert.Equal(t, "2.5%", info.Percent)

	boleto, err := FeeInfo("BOLETO")
	require.NoError(t, err)
	assert.Equal(t, FeeFixed, boleto.Kind)
	assert.Empty(t, boleto.Percent)
}

func TestEveryMethodHasAFeeRule(t *testing.T) {
	for _, m := range Methods {
		_, ok := FeeRules[m]
		assert.True(t, ok, "missing fee rule for %s", m)
	}
	assert.Len(t, FeeRules, len(Methods))
}
