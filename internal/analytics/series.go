package analytics

import (
	"sort"

	"github.com/shopspring/decimal"
	"github.com/teddybear-cooking/spend-tracker/internal/model"
)

// DatePoint is one day of the spending trend.
type DatePoint struct {
	Date   string
	Totals CurrencyTotals
}

// Amount returns the point's total in currency c.
func (p DatePoint) Amount(c model.Currency) decimal.Decimal {
	return p.Totals.Get(c)
}

// SeriesByDate groups transactions by their exact date and returns one point
// per date in ascending order.
func SeriesByDate(txs []model.Transaction) []DatePoint {
	byDate := map[string]CurrencyTotals{}
	for _, t := range txs {
		totals, ok := byDate[t.Date]
		if !ok {
			totals = CurrencyTotals{}
			byDate[t.Date] = totals
		}
		totals.add(t.Currency, t.Amount)
	}

	points := make([]DatePoint, 0, len(byDate))
	for date, totals := range byDate {
		points = append(points, DatePoint{Date: date, Totals: totals})
	}
	sort.Slice(points, func(i, j int) bool { return points[i].Date < points[j].Date })
	return points
}
