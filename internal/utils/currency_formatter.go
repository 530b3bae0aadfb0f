package utils

import (
	"fmt"
	"strings"

	"github.com/hance08/concil/internal/constants"
	"github.com/shopspring/decimal"
)

// FormatAmount renders an amount with two decimals and a comma separator,
// e.g. 150 -> "150,00". No thousands grouping is applied.
func FormatAmount(amount decimal.Decimal) string {
	return strings.Replace(amount.StringFixed(2), ".", ",", 1)
}

// FormatBRL prefixes FormatAmount with the currency label: "R$ 150,00".
func FormatBRL(amount decimal.Decimal) string {
	return constants.DefaultCurrencyLabel + " " + FormatAmount(amount)
}

// ParseBRL converts a pt-BR money string back into a decimal.
// e.g., "R$ 1.200,00" -> 1200, "0,75" -> 0.75
func ParseBRL(text string) (decimal.Decimal, error) {
	clean := strings.ReplaceAll(text, constants.DefaultCurrencyLabel, "")
	clean = strings.Map(func(r rune) rune {
		if r == ' ' || r == '\u00a0' || r == '.' {
			return -1
		}
		return r
	}, clean)
	clean = strings.Replace(clean, ",", ".", 1)

	if clean == "" {
		return decimal.Zero, fmt.Errorf("invalid amount: %q", text)
	}

	amount, err := decimal.NewFromString(clean)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid amount %q: %w", text, err)
	}
	return amount, nil
}

// FormatPercent renders a ratio (0.025) as a percent label ("2.5%").
func FormatPercent(ratio decimal.Decimal) string {
	return ratio.Mul(decimal.NewFromInt(100)).String() + "%"
}
