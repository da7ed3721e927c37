package views

import (
	"github.com/pterm/pterm"
	"github.com/teddybear-cooking/spend-tracker/internal/model"
	"github.com/teddybear-cooking/spend-tracker/internal/ui"
	"github.com/teddybear-cooking/spend-tracker/internal/utils"
)

func transactionRows(tx *model.Transaction) pterm.TableData {
	return pterm.TableData{
		{"Date", tx.Date},
		{"Amount", utils.FormatAmount(tx.Amount, tx.Currency)},
		{"Category", tx.Category},
		{"Description", ui.OrDash(tx.Description)},
	}
}

func RenderTransactionDetail(tx *model.Transaction) error {
	pterm.Println()
	ui.PrintL2Title("Transaction Info")

	infoData := pterm.TableData{
		{"Field", "Value"},
		{"ID", tx.ID},
	}
	infoData = append(infoData, transactionRows(tx)...)
	infoData = append(infoData, []string{"Recorded", tx.Timestamp.Local().Format("2006-01-02 15:04:05")})

	return pterm.DefaultTable.
		WithHasHeader().
		WithHeaderStyle(pterm.NewStyle(pterm.FgGray)).
		WithData(infoData).
		Render()
}
