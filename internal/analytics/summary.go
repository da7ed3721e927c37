package analytics

import (
	"sort"

	"github.com/shopspring/decimal"
	"github.com/teddybear-cooking/spend-tracker/internal/model"
)

type CategorySummary struct {
	Category string
	Currency model.Currency
	Total    decimal.Decimal
	Count    int
}

type categoryKey struct {
	category string
	currency model.Currency
}

// SummaryByCategory returns one row per (category, currency) pair. Rows are
// grouped by currency in the order currencies first appear, and sorted by
// descending total inside each currency. Equal totals keep their first-seen
// order.
func SummaryByCategory(txs []model.Transaction) []CategorySummary {
	index := map[categoryKey]int{}
	rank := map[model.Currency]int{}
	rows := []CategorySummary{}

	for _, t := range txs {
		cur := t.Currency.OrDefault()
		if _, ok := rank[cur]; !ok {
			rank[cur] = len(rank)
		}

		key := categoryKey{category: t.Category, currency: cur}
		i, ok := index[key]
		if !ok {
			i = len(rows)
			index[key] = i
			rows = append(rows, CategorySummary{Category: t.Category, Currency: cur, Total: decimal.Zero})
		}
		rows[i].Total = rows[i].Total.Add(t.Amount)
		rows[i].Count++
	}

	sort.SliceStable(rows, func(i, j int) bool {
		ri, rj := rank[rows[i].Currency], rank[rows[j].Currency]
		if ri != rj {
			return ri < rj
		}
		return rows[i].Total.GreaterThan(rows[j].Total)
	})
	return rows
}
