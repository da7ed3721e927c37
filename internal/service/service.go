package service

import (
	"github.com/teddybear-cooking/spend-tracker/internal/config"
)

type Service struct {
	Config      *config.Config
	Ledger      Ledger
	Transaction *TransactionService
	Category    *CategoryService
	Report      *ReportService
}

func NewService(ledger Ledger, cfg *config.Config) *Service {
	if cfg == nil {
		cfg = config.NewDefault()
	}
	return &Service{
		Config:      cfg,
		Ledger:      ledger,
		Transaction: NewTransactionService(ledger, cfg),
		Category:    NewCategoryService(ledger, cfg),
		Report:      NewReportService(ledger),
	}
}
