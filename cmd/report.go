package cmd

import (
	"time"

	"github.com/spf13/cobra"
	"github.com/teddybear-cooking/spend-tracker/internal/analytics"
	"github.com/teddybear-cooking/spend-tracker/internal/model"
	"github.com/teddybear-cooking/spend-tracker/internal/service"
	"github.com/teddybear-cooking/spend-tracker/internal/ui/views"
)

type reportFlags struct {
	Filter   string
	Month    string
	Currency string
}

type reportRunner struct {
	svc   *service.Service
	flags *reportFlags
}

func NewReportCmd(svc *service.Service) *cobra.Command {
	flags := &reportFlags{}

	cmd := &cobra.Command{
		Use:     "report",
		Aliases: []string{"stats"},
		Short:   "Show spending totals, trend and category breakdown",
		Long: `Show spending analytics for a time window.

The daily window is today, the weekly window starts on Sunday, and the monthly
window is the month given by --month (default: the current month). Amounts in
different currencies are always reported separately.`,
		Example: `  spend report
  spend report --filter weekly
  spend report --filter monthly --month 2024-03 --currency THB`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &reportRunner{
				svc:   svc,
				flags: flags,
			}
			return runner.Run()
		},
	}

	cmd.Flags().StringVarP(&flags.Filter, "filter", "f", string(analytics.Monthly), "Time window: daily, weekly or monthly")
	cmd.Flags().StringVarP(&flags.Month, "month", "m", "", "Month for monthly totals (YYYY-MM), default is the current month")
	cmd.Flags().StringVarP(&flags.Currency, "currency", "u", "", "Only include one currency (USD, THB or MMK)")

	return cmd
}

func (r *reportRunner) Run() error {
	filter, err := analytics.ParseTimeFilter(r.flags.Filter)
	if err != nil {
		return err
	}

	var currency model.Currency
	if r.flags.Currency != "" {
		currency, err = model.ParseCurrency(r.flags.Currency)
		if err != nil {
			return err
		}
	}

	dashboard, err := r.svc.Report.Dashboard(service.DashboardOptions{
		Filter:   filter,
		Month:    r.flags.Month,
		Currency: currency,
		Now:      time.Now(),
	})
	if err != nil {
		return err
	}

	return views.RenderDashboard(dashboard)
}
