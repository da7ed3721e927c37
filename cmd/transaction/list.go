/*
Copyright © 2026 teddybear-cooking

*/
package transaction

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/teddybear-cooking/spend-tracker/internal/constants"
	"github.com/teddybear-cooking/spend-tracker/internal/service"
	"github.com/teddybear-cooking/spend-tracker/internal/ui/views"
)

type listFlags struct {
	Month string
	Limit int
}

type listRunner struct {
	svc   *service.Service
	flags *listFlags
}

func NewListCmd(svc *service.Service) *cobra.Command {
	flags := &listFlags{}

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls", "l"},
		Short:   "List recent transactions",
		Long: `List recorded transactions, newest date first.

Entries on the same date are ordered by when they were recorded.`,
		Example: `  spend list
  spend list --month 2024-03
  spend list --limit 0   # everything`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &listRunner{
				svc:   svc,
				flags: flags,
			}
			return runner.Run()
		},
	}

	cmd.Flags().StringVarP(&flags.Month, "month", "m", "", "Only show transactions in this month (YYYY-MM)")
	cmd.Flags().IntVarP(&flags.Limit, "limit", "l", constants.DefaultJournal, "Maximum number of transactions to display (0 for all)")

	return cmd
}

func (r *listRunner) Run() error {
	transactions, err := r.svc.Transaction.Journal(r.flags.Month, r.flags.Limit)
	if err != nil {
		return fmt.Errorf("failed to get transactions: %w", err)
	}

	return views.NewTransactionListView().Render(transactions, r.flags.Month, r.flags.Limit)
}
