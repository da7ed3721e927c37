package service

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/teddybear-cooking/spend-tracker/internal/config"
	"github.com/teddybear-cooking/spend-tracker/internal/model"
)

var (
	ErrTransactionNotFound = errors.New("transaction not found")
	ErrSaveFailed          = errors.New("failed to write to local storage (see log for details)")
)

type TransactionService struct {
	ledger Ledger
	config *config.Config
}

func NewTransactionService(ledger Ledger, cfg *config.Config) *TransactionService {
	return &TransactionService{ledger: ledger, config: cfg}
}

// GetTransaction returns the stored transaction with the given id.
func (ts *TransactionService) GetTransaction(id string) (*model.Transaction, error) {
	for _, t := range ts.ledger.GetTransactions() {
		if t.ID == id {
			return &t, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrTransactionNotFound, id)
}

// Journal lists transactions newest date first, entries on the same date
// ordered by when they were recorded. month (YYYY-MM) narrows the list when
// set and limit caps it when positive.
func (ts *TransactionService) Journal(month string, limit int) ([]model.Transaction, error) {
	month = strings.TrimSpace(month)
	if month != "" {
		if _, err := model.ParseMonth(month); err != nil {
			return nil, err
		}
	}

	txs := ts.ledger.GetTransactions()
	out := make([]model.Transaction, 0, len(txs))
	for _, t := range txs {
		if month == "" || strings.HasPrefix(t.Date, month) {
			out = append(out, t)
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date > out[j].Date
		}
		return out[i].Timestamp.After(out[j].Timestamp)
	})

	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// Create validates input, filling the configured default currency when none
// is given, and records it.
func (ts *TransactionService) Create(input model.TransactionInput) (*model.Transaction, error) {
	if input.Currency == "" {
		input.Currency = ts.config.DefaultCurrency()
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	tx := ts.ledger.SaveTransaction(input)
	if tx == nil {
		return nil, ErrSaveFailed
	}
	return tx, nil
}

func (ts *TransactionService) Update(id string, update model.TransactionUpdate) (*model.Transaction, error) {
	current, err := ts.GetTransaction(id)
	if err != nil {
		return nil, err
	}
	if update.IsEmpty() {
		return current, nil
	}
	if err := update.Apply(*current).Validate(); err != nil {
		return nil, err
	}

	tx := ts.ledger.UpdateTransaction(id, update)
	if tx == nil {
		return nil, ErrSaveFailed
	}
	return tx, nil
}

func (ts *TransactionService) Delete(id string) error {
	if _, err := ts.GetTransaction(id); err != nil {
		return err
	}
	if !ts.ledger.DeleteTransaction(id) {
		return ErrSaveFailed
	}
	return nil
}

// ClearAll removes every transaction and custom category.
func (ts *TransactionService) ClearAll() error {
	if !ts.ledger.ClearAllData() {
		return ErrSaveFailed
	}
	return nil
}
