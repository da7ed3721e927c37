package views

import (
	"github.com/pterm/pterm"
	"github.com/teddybear-cooking/spend-tracker/internal/model"
	"github.com/teddybear-cooking/spend-tracker/internal/ui"
)

func RenderTransactionDeletePreview(tx *model.Transaction) {
	pterm.Warning.Printf("About to delete transaction %s:\n", tx.ID)

	pterm.DefaultTable.WithData(transactionRows(tx)).Render()
	pterm.Warning.Println("This action cannot be undone!")
}

func RenderTransactionDeleteSuccess(id string) {
	pterm.Success.Printf("Transaction %s deleted successfully\n", id)
	ui.Separator()
}
