package utils

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/teddybear-cooking/spend-tracker/internal/constants"
	"github.com/teddybear-cooking/spend-tracker/internal/model"
)

// FormatAmount renders an amount with two decimal places followed by its
// currency code, e.g. "12.50 USD".
func FormatAmount(amount decimal.Decimal, currency model.Currency) string {
	return fmt.Sprintf("%s %s", amount.StringFixed(constants.AmountPlaces), currency.OrDefault())
}

// FormatNumber renders an amount with two decimal places and no currency.
func FormatNumber(amount decimal.Decimal) string {
	return amount.StringFixed(constants.AmountPlaces)
}

// ParseAmount accepts "150", "150.5", "150,50" and rejects anything that is
// not strictly positive.
func ParseAmount(s string) (decimal.Decimal, error) {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", ".")
	if s == "" {
		return decimal.Zero, model.ErrInvalidAmount
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q", model.ErrInvalidAmount, s)
	}
	if !d.IsPositive() {
		return decimal.Zero, model.ErrInvalidAmount
	}
	return d, nil
}
