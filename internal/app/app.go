package app

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/teddybear-cooking/spend-tracker/internal/config"
	"github.com/teddybear-cooking/spend-tracker/internal/log"
	"github.com/teddybear-cooking/spend-tracker/internal/service"
	"github.com/teddybear-cooking/spend-tracker/internal/store"
)

const Name = "spend"

type App struct {
	Service *service.Service
	Store   store.KV
	Logger  *log.Logger
	DBPath  string
}

// NewApp initialize logger, storage and services, then return App entity
func NewApp(cfg *config.Config) (*App, func(), error) {
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}

	logWriter, closeLog, err := openLogWriter(cfg.Log.File)
	if err != nil {
		return nil, nil, err
	}

	logCfg := log.DefaultConfig()
	logCfg.Level = cfg.Log.Level
	logCfg.Writer = logWriter

	logger, err := log.New(logCfg)
	if err != nil {
		closeLog()
		return nil, nil, err
	}
	log.SetDefault(logger)

	dbPath, err := ResolveDBPath(cfg.Database.Path)
	if err != nil {
		closeLog()
		return nil, nil, err
	}

	kv, err := store.Open(cfg.Database.Driver, dbPath)
	if err != nil {
		closeLog()
		return nil, nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	logger.WithComponent(log.ComponentStorage).Debug("storage opened",
		log.FieldOperation, log.OpOpen,
		log.FieldDriver, cfg.Database.Driver,
		log.FieldPath, dbPath,
	)

	ledger := service.NewLocalLedger(kv, logger)
	svc := service.NewService(ledger, cfg)

	cleanup := func() {
		if err := kv.Close(); err != nil {
			logger.Error("failed to close database", log.FieldError, err)
		}
		closeLog()
	}

	return &App{
		Service: svc,
		Store:   kv,
		Logger:  logger,
		DBPath:  dbPath,
	}, cleanup, nil
}

// ResolveDBPath expands a leading ~ and falls back to spend.db inside the
// application data directory.
func ResolveDBPath(raw string) (string, error) {
	if raw == "" {
		appDir, err := DataDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(appDir, Name+".db"), nil
	}
	return ExpandPath(raw)
}

func DataDir() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("unable to determine user home directory: %w", err)
		}
		return filepath.Join(home, "."+Name), nil
	}

	return filepath.Join(configDir, Name), nil
}

func ExpandPath(path string) (string, error) {
	if strings.HasPrefix(path, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		if path == "~" {
			return home, nil
		}
		if strings.HasPrefix(path, "~/") || strings.HasPrefix(path, "~\\") {
			return filepath.Join(home, path[2:]), nil
		}
	}
	return path, nil
}

func openLogWriter(path string) (io.Writer, func(), error) {
	if path == "" {
		return os.Stderr, func() {}, nil
	}

	path, err := ExpandPath(path)
	if err != nil {
		return nil, nil, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, nil, fmt.Errorf("can not create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, nil, fmt.Errorf("can not open log file %s: %w", path, err)
	}
	return f, func() { f.Close() }, nil
}
