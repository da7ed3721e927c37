package config

import (
	"fmt"
	"strings"

	"github.com/teddybear-cooking/spend-tracker/internal/log"
	"github.com/teddybear-cooking/spend-tracker/internal/model"
	"github.com/teddybear-cooking/spend-tracker/internal/store"
)

type Config struct {
	Database   DatabaseConfig `mapstructure:"database"`
	Defaults   DefaultsConfig `mapstructure:"defaults"`
	Log        LogConfig      `mapstructure:"log"`
	ConfigPath string         `mapstructure:"-"`
}

type DatabaseConfig struct {
	Path   string `mapstructure:"path"`
	Driver string `mapstructure:"driver"`
}

type DefaultsConfig struct {
	Currency   string   `mapstructure:"currency"`
	Categories []string `mapstructure:"categories"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
	File  string `mapstructure:"file"`
}

// DefaultCategories is the built-in category list used until the config
// file supplies its own.
var DefaultCategories = []string{
	"Food & Dining",
	"Groceries",
	"Transportation",
	"Housing",
	"Utilities",
	"Healthcare",
	"Entertainment",
	"Shopping",
	"Education",
	"Travel",
	"Personal Care",
	"Gifts & Donations",
	"Other",
}

func NewDefault() *Config {
	return &Config{
		Database: DatabaseConfig{Path: "", Driver: store.DriverSQLite3},
		Defaults: DefaultsConfig{
			Currency:   string(model.USD),
			Categories: append([]string(nil), DefaultCategories...),
		},
		Log: LogConfig{Level: "warn"},
	}
}

// DefaultCurrency returns the configured currency, falling back to USD.
func (c *Config) DefaultCurrency() model.Currency {
	cur, err := model.ParseCurrency(c.Defaults.Currency)
	if err != nil {
		return model.USD
	}
	return cur
}

// Validate reports every configuration problem at once.
func (c *Config) Validate() error {
	var errs []string

	validDriver := false
	for _, d := range store.Drivers {
		if c.Database.Driver == d {
			validDriver = true
			break
		}
	}
	if !validDriver {
		errs = append(errs, fmt.Sprintf("invalid database driver '%s': must be one of %v", c.Database.Driver, store.Drivers))
	}

	if _, err := model.ParseCurrency(c.Defaults.Currency); err != nil {
		errs = append(errs, fmt.Sprintf("invalid default currency '%s': must be one of %v", c.Defaults.Currency, model.CurrencyCodes()))
	}

	for i, cat := range c.Defaults.Categories {
		if err := model.ValidateCategoryName(cat); err != nil {
			errs = append(errs, fmt.Sprintf("invalid default category #%d: %v", i+1, err))
		}
	}

	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, err.Error())
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errs, "\n- "))
	}
	return nil
}
