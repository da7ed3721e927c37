package cmd

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/teddybear-cooking/spend-tracker/internal/service"
	"github.com/teddybear-cooking/spend-tracker/internal/ui"
)

type clearRunner struct {
	svc *service.Service
	yes bool
}

func NewClearCmd(svc *service.Service) *cobra.Command {
	runner := &clearRunner{svc: svc}

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete all transactions and custom categories",
		Long:  `Delete every recorded transaction and every custom category. This action cannot be undone.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runner.Run()
		},
	}
	cmd.Flags().BoolVarP(&runner.yes, "yes", "y", false, "Skip the confirmation prompt")

	return cmd
}

func (r *clearRunner) Run() error {
	if !r.yes {
		count := len(r.svc.Ledger.GetTransactions())
		pterm.Warning.Printf("About to delete %d transactions and all custom categories.\n", count)
		pterm.Warning.Println("This action cannot be undone!")

		confirmation, err := ui.ConfirmDanger("Do you want to delete all data?")
		if err != nil {
			return err
		}
		if !confirmation {
			pterm.Info.Println("Clear cancelled")
			return nil
		}
	}

	if err := r.svc.Transaction.ClearAll(); err != nil {
		return err
	}

	pterm.Success.Println("All data cleared")
	ui.Separator()
	return nil
}
