package transaction

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/teddybear-cooking/spend-tracker/internal/service"
	"github.com/teddybear-cooking/spend-tracker/internal/ui"
	"github.com/teddybear-cooking/spend-tracker/internal/ui/views"
)

type deleteRunner struct {
	svc *service.Service
	yes bool
}

func NewDeleteCmd(svc *service.Service) *cobra.Command {
	runner := &deleteRunner{svc: svc}

	cmd := &cobra.Command{
		Use:     "delete <transaction-id>",
		Aliases: []string{"rm"},
		Short:   "Delete a transaction",
		Long:    `Delete a transaction. This action cannot be undone.`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runner.Run(args[0])
		},
	}
	cmd.Flags().BoolVarP(&runner.yes, "yes", "y", false, "Skip the confirmation prompt")

	return cmd
}

func (r *deleteRunner) Run(id string) error {
	tx, err := r.svc.Transaction.GetTransaction(id)
	if err != nil {
		return err
	}

	if !r.yes {
		views.RenderTransactionDeletePreview(tx)

		confirmation, err := ui.ConfirmDanger("Do you want to delete this transaction?")
		if err != nil {
			return err
		}
		if !confirmation {
			pterm.Info.Println("Deletion cancelled")
			return nil
		}
	}

	if err := r.svc.Transaction.Delete(id); err != nil {
		return err
	}

	views.RenderTransactionDeleteSuccess(id)
	return nil
}
