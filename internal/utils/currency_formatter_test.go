package utils

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatBRL(t *testing.T) {
	tests := []struct {
		name   string
		amount string
		want   string
	}{
		{name: "whole amount", amount: "150", want: "R$ 150,00"},
		{name: "cents", amount: "0.75", want: "R$ 0,75"},
		{name: "one decimal", amount: "7.5", want: "R$ 7,50"},
		{name: "no thousands grouping", amount: "1200", want: "R$ 1200,00"},
		{name: "rounds to two places", amount: "1.445", want: "R$ 1,45"},
		{name: "negative", amount: "-9.5", want: "R$ -9,50"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatBRL(decimal.RequireFromString(tt.amount)))
		})
	}
}

func TestParseBRL(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		want    string
		wantErr bool
	}{
		{name: "simple", text: "R$ 0,75", want: "0.75"},
		{name: "thousands separator", text: "R$ 1.200,00", want: "1200"},
		{name: "no prefix", text: "300,00", want: "300"},
		{name: "non breaking space", text: "R$\u00a06,00", want: "6"},
		{name: "empty", text: "R$ ", wantErr: true},
		{name: "garbage", text: "R$ abc", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseBRL(tt.text)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, decimal.RequireFromString(tt.want).Equal(got), "got %s", got)
		})
	}
}

func TestFormatBRL_RoundTrip(t *testing.T) {
	amount := decimal.RequireFromString("1200.5")

	parsed, err := ParseBRL(FormatBRL(amount))

	require.NoError(t, err)
	assert.True(t, amount.Equal(parsed))
}

func TestFormatPercent(t *testing.T) {
	assert.Equal(t, "2.5%", FormatPercent(decimal.RequireFromString("0.025")))
	assert.Equal(t, "0.5%", FormatPercent(decimal.RequireFromString("0.005")))
}
