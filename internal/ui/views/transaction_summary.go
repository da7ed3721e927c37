package views

import (
	"github.com/pterm/pterm"
	"github.com/teddybear-cooking/spend-tracker/internal/model"
)

// RenderTransactionSummary shows what was just written.
func RenderTransactionSummary(tx *model.Transaction) error {
	pterm.DefaultSection.Println("Transaction Summary")

	tableData := pterm.TableData{{"Field", "Value"}}
	tableData = append(tableData, transactionRows(tx)...)

	return pterm.DefaultTable.WithHasHeader().WithData(tableData).Render()
}
