package model

import (
	"fmt"
	"strings"

	"github.com/teddybear-cooking/spend-tracker/internal/constants"
)

type Currency string

const (
	USD Currency = "USD"
	THB Currency = "THB"
	MMK Currency = "MMK"
)

// SupportedCurrencies is ordered the way currencies are presented.
var SupportedCurrencies = []Currency{USD, THB, MMK}

func (c Currency) String() string {
	return string(c)
}

func (c Currency) IsValid() bool {
	for _, s := range SupportedCurrencies {
		if c == s {
			return true
		}
	}
	return false
}

// OrDefault maps the empty currency of records written before currencies
// existed to USD.
func (c Currency) OrDefault() Currency {
	if c == "" {
		return Currency(constants.DefaultCurrency)
	}
	return c
}

// ParseCurrency accepts a currency code in any case. An empty string yields USD.
func ParseCurrency(s string) (Currency, error) {
	c := Currency(strings.ToUpper(strings.TrimSpace(s))).OrDefault()
	if !c.IsValid() {
		return "", fmt.Errorf("%w: %q (supported: %s)", ErrInvalidCurrency, s, strings.Join(CurrencyCodes(), ", "))
	}
	return c, nil
}

func CurrencyCodes() []string {
	codes := make([]string, 0, len(SupportedCurrencies))
	for _, c := range SupportedCurrencies {
		codes = append(codes, c.String())
	}
	return codes
}

