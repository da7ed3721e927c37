package transaction

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/teddybear-cooking/spend-tracker/internal/model"
	"github.com/teddybear-cooking/spend-tracker/internal/service"
	"github.com/teddybear-cooking/spend-tracker/internal/ui"
	"github.com/teddybear-cooking/spend-tracker/internal/ui/prompts"
	"github.com/teddybear-cooking/spend-tracker/internal/ui/views"
)

type EditCommandRunner struct {
	svc *service.Service
}

func NewEditCmd(svc *service.Service) *cobra.Command {
	return &cobra.Command{
		Use:   "edit <transaction-id>",
		Short: "Edit a transaction",
		Long: `Edit a transaction's date, amount, currency, category and description
interactively. The id and the time it was recorded never change.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &EditCommandRunner{
				svc: svc,
			}
			return runner.Run(args)
		},
	}
}

func (r *EditCommandRunner) Run(args []string) error {
	current, err := r.svc.Transaction.GetTransaction(args[0])
	if err != nil {
		return err
	}

	pterm.DefaultSection.Printf("Editing Transaction %s", current.ID)
	if err := views.RenderTransactionDetail(current); err != nil {
		return err
	}

	form := prompts.FormFromTransaction(*current)
	if err := prompts.PromptTransaction("Edit expense", &form, r.svc.Category.Categories(), false); err != nil {
		return err
	}

	input, err := form.Input()
	if err != nil {
		return err
	}

	edited := *current
	edited.Date = input.Date
	edited.Amount = input.Amount
	edited.Currency = input.Currency
	edited.Category = input.Category
	edited.Description = input.Description

	update := model.Diff(*current, edited)
	if update.IsEmpty() {
		pterm.Info.Println("Nothing changed")
		return nil
	}

	updated, err := r.svc.Transaction.Update(current.ID, update)
	if err != nil {
		return err
	}

	pterm.Success.Printf("Transaction %s updated successfully\n", updated.ID)
	if err := views.RenderTransactionSummary(updated); err != nil {
		return err
	}
	ui.Separator()
	return nil
}
