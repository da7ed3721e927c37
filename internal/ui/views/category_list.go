package views

import "github.com/pterm/pterm"

func RenderCategoryList(defaults, custom []string) error {
	if len(defaults) == 0 && len(custom) == 0 {
		pterm.Warning.Println("No categories configured")
		return nil
	}

	tableData := pterm.TableData{{"#", "Category", "Source"}}
	n := 0
	for _, c := range defaults {
		n++
		tableData = append(tableData, []string{pterm.Sprint(n), c, pterm.Gray("default")})
	}
	for _, c := range custom {
		n++
		tableData = append(tableData, []string{pterm.Sprint(n), c, pterm.Green("custom")})
	}

	return pterm.DefaultTable.WithHasHeader().WithData(tableData).Render()
}
