package cmd

import (
	"fmt"
	"time"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/teddybear-cooking/spend-tracker/internal/constants"
	"github.com/teddybear-cooking/spend-tracker/internal/model"
	"github.com/teddybear-cooking/spend-tracker/internal/service"
	"github.com/teddybear-cooking/spend-tracker/internal/ui/prompts"
	"github.com/teddybear-cooking/spend-tracker/internal/ui/views"
)

type addFlags struct {
	Date     string
	Amount   string
	Currency string
	Category string
	Desc     string
}

type addRunner struct {
	svc   *service.Service
	flags *addFlags
	cmd   *cobra.Command
}

func NewAddCmd(svc *service.Service) *cobra.Command {
	flags := &addFlags{}

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a new expense",
		Long: `Record a new expense.

Use flags for quick entry or run without flags for an interactive form.`,
		Example: `  # Interactive mode
  spend add

  # Quick mode with flags
  spend add --amount 4.50 --category "Food & Dining" --desc "Coffee"

  # Another currency and date
  spend add --amount 120 --currency THB --category Transportation --date 2024-03-01`,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &addRunner{
				svc:   svc,
				flags: flags,
				cmd:   cmd,
			}
			return runner.Run()
		},
	}
	cmd.Flags().StringVar(&flags.Date, "date", "", "Transaction date (YYYY-MM-DD), default is today")
	cmd.Flags().StringVarP(&flags.Amount, "amount", "a", "", "Amount spent (e.g., 150 or 150.50)")
	cmd.Flags().StringVarP(&flags.Currency, "currency", "u", "", "Currency (USD, THB or MMK), default from config")
	cmd.Flags().StringVarP(&flags.Category, "category", "g", "", "Expense category")
	cmd.Flags().StringVarP(&flags.Desc, "desc", "d", "", "Optional description")

	return cmd
}

func (r *addRunner) Run() error {
	var input model.TransactionInput
	var err error

	hasFlags := r.cmd.Flags().Changed("amount") || r.cmd.Flags().Changed("category")

	if hasFlags {
		input, err = r.flagsMode()
	} else {
		input, err = r.interactiveMode()
	}
	if err != nil {
		return err
	}

	tx, err := r.svc.Transaction.Create(input)
	if err != nil {
		return err
	}

	pterm.Success.Printf("Transaction recorded! (ID: %s)\n", tx.ID)
	return views.RenderTransactionSummary(tx)
}

func (r *addRunner) flagsMode() (model.TransactionInput, error) {
	if r.flags.Amount == "" || r.flags.Category == "" {
		return model.TransactionInput{}, fmt.Errorf("when using flags, --amount and --category are both required")
	}

	form := prompts.TransactionForm{
		Date:        r.flags.Date,
		Amount:      r.flags.Amount,
		Currency:    r.flags.Currency,
		Category:    r.flags.Category,
		Description: r.flags.Desc,
	}
	if form.Date == "" {
		form.Date = time.Now().Format(constants.DateFormat)
	}
	if form.Currency == "" {
		form.Currency = r.svc.Config.DefaultCurrency().String()
	}

	return form.Input()
}

func (r *addRunner) interactiveMode() (model.TransactionInput, error) {
	categories := r.svc.Category.Categories()

	form := prompts.TransactionForm{
		Date:     time.Now().Format(constants.DateFormat),
		Currency: r.svc.Config.DefaultCurrency().String(),
	}
	if len(categories) > 0 {
		form.Category = categories[0]
	}

	if err := prompts.PromptTransaction("New expense", &form, categories, true); err != nil {
		return model.TransactionInput{}, err
	}

	if form.Category == prompts.NewCategoryOption {
		name, err := prompts.PromptNewCategory(categories)
		if err != nil {
			return model.TransactionInput{}, err
		}
		if _, err := r.svc.Category.AddCategory(name); err != nil {
			return model.TransactionInput{}, err
		}
		pterm.Success.Printf("Category '%s' added\n", name)
		form.Category = name
	}

	return form.Input()
}
