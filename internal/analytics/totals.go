package analytics

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"github.com/teddybear-cooking/spend-tracker/internal/model"
)

// CurrencyTotals maps each currency to the sum of its amounts. Amounts in
// different currencies are never added together.
type CurrencyTotals map[model.Currency]decimal.Decimal

// Get returns the total for c, or zero when nothing was spent in c.
func (ct CurrencyTotals) Get(c model.Currency) decimal.Decimal {
	if v, ok := ct[c.OrDefault()]; ok {
		return v
	}
	return decimal.Zero
}

// Currencies lists the currencies present, supported ones first in their
// usual order and any others alphabetically.
func (ct CurrencyTotals) Currencies() []model.Currency {
	out := make([]model.Currency, 0, len(ct))
	for _, c := range model.SupportedCurrencies {
		if _, ok := ct[c]; ok {
			out = append(out, c)
		}
	}

	var extra []model.Currency
	for c := range ct {
		if !c.IsValid() {
			extra = append(extra, c)
		}
	}
	sort.Slice(extra, func(i, j int) bool { return extra[i] < extra[j] })
	return append(out, extra...)
}

func (ct CurrencyTotals) add(c model.Currency, amount decimal.Decimal) {
	c = c.OrDefault()
	ct[c] = ct.Get(c).Add(amount)
}

func SumByCurrency(txs []model.Transaction) CurrencyTotals {
	totals := CurrencyTotals{}
	for _, t := range txs {
		totals.add(t.Currency, t.Amount)
	}
	return totals
}

func TotalAllTime(txs []model.Transaction) CurrencyTotals {
	return SumByCurrency(txs)
}

// TotalForMonth sums the transactions whose date falls in month (YYYY-MM).
func TotalForMonth(txs []model.Transaction, month string) CurrencyTotals {
	totals := CurrencyTotals{}
	for _, t := range txs {
		if inMonth(t, month) {
			totals.add(t.Currency, t.Amount)
		}
	}
	return totals
}

func TotalForWindow(txs []model.Transaction, filter TimeFilter, selectedMonth string, now time.Time) CurrencyTotals {
	return SumByCurrency(FilterByWindow(txs, filter, selectedMonth, now))
}
