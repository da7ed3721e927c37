package service

import (
	"time"

	"github.com/teddybear-cooking/spend-tracker/internal/analytics"
	"github.com/teddybear-cooking/spend-tracker/internal/model"
)

type ReportService struct {
	ledger Ledger
}

func NewReportService(ledger Ledger) *ReportService {
	return &ReportService{ledger: ledger}
}

type DashboardOptions struct {
	Filter analytics.TimeFilter
	// Month is YYYY-MM; empty means the month of Now.
	Month string
	// Currency restricts every figure to one currency when set.
	Currency model.Currency
	Now      time.Time
}

// Dashboard is everything the report screen shows, computed from one load of
// the ledger.
type Dashboard struct {
	Filter      analytics.TimeFilter
	Month       string
	Currency    model.Currency
	Count       int
	AllTime     analytics.CurrencyTotals
	MonthTotal  analytics.CurrencyTotals
	WindowTotal analytics.CurrencyTotals
	Series      []analytics.DatePoint
	Categories  []analytics.CategorySummary
}

func (rs *ReportService) Dashboard(opts DashboardOptions) (*Dashboard, error) {
	if opts.Now.IsZero() {
		opts.Now = time.Now()
	}
	if opts.Month == "" {
		opts.Month = analytics.CurrentMonth(opts.Now)
	} else if _, err := model.ParseMonth(opts.Month); err != nil {
		return nil, err
	}
	if opts.Filter == "" {
		opts.Filter = analytics.Monthly
	}

	txs := rs.ledger.GetTransactions()
	if opts.Currency != "" {
		txs = onlyCurrency(txs, opts.Currency)
	}
	window := analytics.FilterByWindow(txs, opts.Filter, opts.Month, opts.Now)

	return &Dashboard{
		Filter:      opts.Filter,
		Month:       opts.Month,
		Currency:    opts.Currency,
		Count:       len(window),
		AllTime:     analytics.TotalAllTime(txs),
		MonthTotal:  analytics.TotalForMonth(txs, opts.Month),
		WindowTotal: analytics.TotalForWindow(txs, opts.Filter, opts.Month, opts.Now),
		Series:      analytics.SeriesByDate(window),
		Categories:  analytics.SummaryByCategory(window),
	}, nil
}

func onlyCurrency(txs []model.Transaction, c model.Currency) []model.Transaction {
	out := []model.Transaction{}
	for _, t := range txs {
		if t.Currency.OrDefault() == c {
			out = append(out, t)
		}
	}
	return out
}
