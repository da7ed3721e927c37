package views

import (
	"github.com/pterm/pterm"
	"github.com/teddybear-cooking/spend-tracker/internal/model"
	"github.com/teddybear-cooking/spend-tracker/internal/ui"
	"github.com/teddybear-cooking/spend-tracker/internal/utils"
)

type TransactionListView struct{}

func NewTransactionListView() *TransactionListView {
	return &TransactionListView{}
}

// Render prints the journal. month is only used in the heading.
func (v *TransactionListView) Render(txs []model.Transaction, month string, limit int) error {
	if len(txs) == 0 {
		pterm.Warning.Println("No transactions found")
		return nil
	}

	switch {
	case month != "":
		pterm.DefaultSection.Printf("Transactions in %s", month)
	case limit > 0:
		pterm.DefaultSection.Printf("Showing recent transactions (limit: %d)", limit)
	default:
		pterm.DefaultSection.Println("All transactions")
	}

	tableData := pterm.TableData{
		{"ID", "Date", "Category", "Description", "Amount"},
	}

	for _, tx := range txs {
		tableData = append(tableData, []string{
			ui.Muted(tx.ID),
			tx.Date,
			pterm.Cyan(tx.Category),
			ui.OrDash(tx.Description),
			pterm.Red(utils.FormatAmount(tx.Amount, tx.Currency)),
		})
	}

	if err := pterm.DefaultTable.WithHasHeader().WithData(tableData).Render(); err != nil {
		return err
	}
	pterm.Info.Printf("Total: %d transactions\n", len(txs))
	return nil
}
