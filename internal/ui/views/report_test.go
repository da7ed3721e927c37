package views

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/teddybear-cooking/spend-tracker/internal/analytics"
	"github.com/teddybear-cooking/spend-tracker/internal/model"
)

func TestTrendBars(t *testing.T) {
	series := []analytics.DatePoint{
		{Date: "2024-03-01", Totals: analytics.CurrencyTotals{model.USD: decimal.RequireFromString("10.60")}},
		{Date: "2024-03-02", Totals: analytics.CurrencyTotals{model.THB: decimal.NewFromInt(300)}},
		{Date: "2024-03-03", Totals: analytics.CurrencyTotals{model.USD: decimal.RequireFromString("0.40")}},
	}

	bars := trendBars(series, model.USD)
	if len(bars) != 2 {
		t.Fatalf("expected two USD bars, got %d", len(bars))
	}
	if bars[0].Label != "2024-03-01" || bars[0].Value != 11 {
		t.Fatalf("unexpected first bar %+v", bars[0])
	}
	if bars[1].Value != 0 {
		t.Fatalf("expected rounding down to 0, got %d", bars[1].Value)
	}
}
