package views

import "github.com/pterm/pterm"

type SystemInfoItem struct {
	ConfigPath      string
	DBPath          string
	DBDriver        string
	DBExists        bool // true = Found, false = Not Found
	DefaultCurrency string
	LogLevel        string
	LogFile         string
	AppDataDir      string
	Transactions    int
	CustomCount     int
}

func RenderSystemInfo(data SystemInfoItem) error {
	dbStatus := pterm.Green("Found")
	if !data.DBExists {
		dbStatus = pterm.Red("Not Found (Will be created)")
	}
	if data.DBDriver == "memory" {
		dbStatus = pterm.Yellow("In memory (not persisted)")
	}

	logFile := data.LogFile
	if logFile == "" {
		logFile = "stderr"
	}

	tableData := pterm.TableData{
		{"Configuration File", data.ConfigPath},
		{"Database Path", data.DBPath},
		{"Database Driver", data.DBDriver},
		{"Database Status", dbStatus},
		{"Default Currency", data.DefaultCurrency},
		{"Log Level", data.LogLevel},
		{"Log Output", logFile},
		{"AppData Directory", data.AppDataDir},
		{"Transactions", pterm.Sprint(data.Transactions)},
		{"Custom Categories", pterm.Sprint(data.CustomCount)},
	}

	return pterm.DefaultTable.WithData(tableData).Render()
}
