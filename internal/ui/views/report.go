package views

import (
	"fmt"
	"strings"

	"github.com/pterm/pterm"
	"github.com/teddybear-cooking/spend-tracker/internal/analytics"
	"github.com/teddybear-cooking/spend-tracker/internal/model"
	"github.com/teddybear-cooking/spend-tracker/internal/service"
	"github.com/teddybear-cooking/spend-tracker/internal/ui"
	"github.com/teddybear-cooking/spend-tracker/internal/utils"
)

// RenderDashboard prints the totals, the daily trend and the category
// breakdown of one report.
func RenderDashboard(d *service.Dashboard) error {
	ui.PrintL1Title("Spending Report")
	pterm.Info.Printf("Window: %s  |  Month: %s  |  Transactions: %d\n", windowLabel(d), d.Month, d.Count)
	pterm.Println()

	if err := renderTotals(d); err != nil {
		return err
	}

	if d.Count == 0 {
		pterm.Warning.Println("No transactions in this window")
		return nil
	}

	if err := renderTrend(d); err != nil {
		return err
	}
	return renderCategories(d.Categories)
}

func windowLabel(d *service.Dashboard) string {
	label := string(d.Filter)
	if label != "" {
		label = strings.ToUpper(label[:1]) + label[1:]
	}
	if d.Currency != "" {
		label += " (" + d.Currency.String() + " only)"
	}
	return label
}

func renderTotals(d *service.Dashboard) error {
	ui.PrintL2Title("Totals")

	currencies := d.AllTime.Currencies()
	if len(currencies) == 0 {
		pterm.Warning.Println("No transactions recorded yet")
		return nil
	}

	tableData := pterm.TableData{{"Currency", "All Time", "Month " + d.Month, "Window"}}
	for _, c := range currencies {
		tableData = append(tableData, []string{
			c.String(),
			utils.FormatNumber(d.AllTime.Get(c)),
			utils.FormatNumber(d.MonthTotal.Get(c)),
			utils.FormatNumber(d.WindowTotal.Get(c)),
		})
	}

	return pterm.DefaultTable.WithHasHeader().WithData(tableData).Render()
}

func renderTrend(d *service.Dashboard) error {
	ui.PrintL2Title("Daily Trend")

	for _, c := range d.WindowTotal.Currencies() {
		bars := trendBars(d.Series, c)
		if len(bars) == 0 {
			continue
		}
		pterm.DefaultSection.WithLevel(2).Println(c.String())
		if err := pterm.DefaultBarChart.
			WithBars(bars).
			WithHorizontal().
			WithShowValue().
			Render(); err != nil {
			return err
		}
	}

	tableData := pterm.TableData{{"Date", "Amount"}}
	for _, p := range d.Series {
		var parts []string
		for _, c := range p.Totals.Currencies() {
			parts = append(parts, utils.FormatAmount(p.Amount(c), c))
		}
		tableData = append(tableData, []string{p.Date, strings.Join(parts, ", ")})
	}
	return pterm.DefaultTable.WithHasHeader().WithData(tableData).Render()
}

// trendBars turns the series into bar chart rows for one currency. The chart
// only takes whole numbers, so values are rounded.
func trendBars(series []analytics.DatePoint, c model.Currency) pterm.Bars {
	var bars pterm.Bars
	for _, p := range series {
		if _, ok := p.Totals[c]; !ok {
			continue
		}
		bars = append(bars, pterm.Bar{
			Label: p.Date,
			Value: int(p.Amount(c).Round(0).IntPart()),
		})
	}
	return bars
}

func renderCategories(rows []analytics.CategorySummary) error {
	ui.PrintL2Title("By Category")

	tableData := pterm.TableData{{"Category", "Currency", "Total", "Count"}}
	for _, r := range rows {
		tableData = append(tableData, []string{
			r.Category,
			r.Currency.String(),
			utils.FormatNumber(r.Total),
			fmt.Sprint(r.Count),
		})
	}
	return pterm.DefaultTable.WithHasHeader().WithData(tableData).Render()
}
