package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/teddybear-cooking/spend-tracker/cmd/category"
	"github.com/teddybear-cooking/spend-tracker/cmd/transaction"
	"github.com/teddybear-cooking/spend-tracker/internal/app"
	"github.com/teddybear-cooking/spend-tracker/internal/config"
	"github.com/teddybear-cooking/spend-tracker/internal/errhandler"
	"github.com/teddybear-cooking/spend-tracker/internal/model"
	"github.com/teddybear-cooking/spend-tracker/internal/ui/prompts"
)

var (
	cfgFile string
	cfg     *config.Config
)

func Execute() {
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " ERROR ",
		Style: pterm.NewStyle(pterm.BgLightRed, pterm.FgBlack),
	}

	// A missing .env file is fine.
	_ = godotenv.Load()

	cfgFile = configFlag(os.Args[1:])

	if err := initConfig(); err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}

	if err := ensureDefaultCurrency(); err != nil {
		errhandler.HandleError(err)
	}

	application, cleanup, err := app.NewApp(cfg)
	if err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}

	defer cleanup()

	rootCmd := &cobra.Command{
		Use:   app.Name,
		Short: "spend is a local personal expense tracker",
		Long: `spend records your expenses in a local database and shows where the
money went: totals per currency, a daily trend and a breakdown by category.`,
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "set the config file path")

	rootCmd.AddCommand(transaction.NewTransactionCmd(application.Service))
	rootCmd.AddCommand(category.NewCategoryCmd(application.Service))

	rootCmd.AddCommand(NewAddCmd(application.Service))
	rootCmd.AddCommand(transaction.NewListCmd(application.Service))
	rootCmd.AddCommand(NewReportCmd(application.Service))
	rootCmd.AddCommand(NewClearCmd(application.Service))
	rootCmd.AddCommand(NewInfoCmd(application))

	if err := rootCmd.Execute(); err != nil {
		cleanup()
		errhandler.HandleError(err)
	}
}

// configFlag reads --config before cobra runs, since the config decides
// which storage the commands are built on.
func configFlag(args []string) string {
	fs := pflag.NewFlagSet(app.Name, pflag.ContinueOnError)
	fs.ParseErrorsWhitelist.UnknownFlags = true
	fs.Usage = func() {}

	var path string
	fs.StringVarP(&path, "config", "c", "", "")
	_ = fs.Parse(args)
	return path
}

func initConfig() error {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		appDir, err := app.DataDir()
		if err != nil {
			return fmt.Errorf("error getting app dir: %w", err)
		}

		viper.AddConfigPath(appDir)
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")

		if err := createDefaultConfig(appDir); err != nil {
			return fmt.Errorf("failed to ensure config file: %w", err)
		}
	}

	viper.SetEnvPrefix(strings.ToUpper(app.Name))
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv() // allow using environment variables to override

	if err := viper.ReadInConfig(); err != nil {

		if cfgFile != "" {
			return fmt.Errorf("failed to read config file: %w", err)
		}

		if !errors.As(err, &viper.ConfigFileNotFoundError{}) {
			return fmt.Errorf("config file error: %w", err)
		}
	}

	cfg = config.NewDefault()
	if err := viper.Unmarshal(cfg); err != nil {
		return fmt.Errorf("unable to decode into struct, %v", err)
	}

	cfg.ConfigPath = viper.ConfigFileUsed()

	return nil
}

// ensureDefaultCurrency runs the first-run wizard when no currency has been
// chosen yet.
func ensureDefaultCurrency() error {
	if viper.GetString("defaults.currency") != "" {
		return nil
	}

	currency, err := initWizard()
	if err != nil {
		return err
	}
	cfg.Defaults.Currency = currency
	return nil
}

func initWizard() (string, error) {
	currency, err := prompts.PromptInitCurrency(model.USD.String())
	if err != nil {
		return "", err
	}

	viper.Set("defaults.currency", currency)

	if err := viper.WriteConfig(); err != nil {
		return "", fmt.Errorf("failed to save config to file: %w", err)
	}

	pterm.Success.Printf("Configuration saved. Default currency set to: %s\n", currency)

	return currency, nil
}

// createDefaultConfig writes a config.yaml with every key except the default
// currency, which the first-run wizard asks for.
func createDefaultConfig(appDir string) error {
	if err := os.MkdirAll(appDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	configPath := filepath.Join(appDir, "config.yaml")

	if _, err := os.Stat(configPath); err == nil {
		return nil
	}

	defaults := config.NewDefault()
	viper.SetDefault("database.path", filepath.Join(appDir, app.Name+".db"))
	viper.SetDefault("database.driver", defaults.Database.Driver)
	viper.SetDefault("defaults.categories", defaults.Defaults.Categories)
	viper.SetDefault("log.level", defaults.Log.Level)
	viper.SetDefault("log.file", "")

	if err := viper.WriteConfigAs(configPath); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
