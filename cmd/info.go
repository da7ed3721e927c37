package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/teddybear-cooking/spend-tracker/internal/app"
	"github.com/teddybear-cooking/spend-tracker/internal/ui/views"
)

type infoRunner struct {
	app *app.App
}

func NewInfoCmd(a *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Display application information",
		Long:  `Display current configuration, database path, and system details.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &infoRunner{
				app: a,
			}

			return runner.Run()
		},
	}
}

func (r *infoRunner) Run() error {
	cfg := r.app.Service.Config

	configPath := cfg.ConfigPath
	if configPath == "" {
		configPath = "(None, using defaults)"
	}

	dbExists := false
	if _, err := os.Stat(r.app.DBPath); err == nil {
		dbExists = true
	}

	items := views.SystemInfoItem{
		ConfigPath:      configPath,
		DBPath:          r.app.DBPath,
		DBDriver:        cfg.Database.Driver,
		DBExists:        dbExists,
		DefaultCurrency: cfg.DefaultCurrency().String(),
		LogLevel:        cfg.Log.Level,
		LogFile:         cfg.Log.File,
		AppDataDir:      appDataDirOrUnknown(),
		Transactions:    len(r.app.Service.Ledger.GetTransactions()),
		CustomCount:     len(r.app.Service.Category.Custom()),
	}

	if err := views.RenderSystemInfo(items); err != nil {
		return err
	}
	return nil
}

func appDataDirOrUnknown() string {
	dir, err := app.DataDir()
	if err != nil {
		return "Unknown"
	}
	return dir
}
