package model

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/teddybear-cooking/spend-tracker/internal/constants"
)

var (
	ErrEmptyDate          = errors.New("date is required")
	ErrInvalidDate        = errors.New("date must be in YYYY-MM-DD format")
	ErrInvalidMonth       = errors.New("month must be in YYYY-MM format")
	ErrInvalidAmount      = errors.New("amount must be a number greater than zero")
	ErrEmptyCategory      = errors.New("category is required")
	ErrInvalidCurrency    = errors.New("unsupported currency")
)

// Transaction is a single recorded expense as persisted in the store.
type Transaction struct {
	ID          string          `json:"id"`
	Date        string          `json:"date"`
	Amount      decimal.Decimal `json:"amount"`
	Currency    Currency        `json:"currency"`
	Category    string          `json:"category"`
	Description string          `json:"description"`
	Timestamp   time.Time       `json:"timestamp"`
}

// MarshalJSON writes the amount as a bare JSON number and the timestamp with
// millisecond precision, the layout older records were stored in.
func (t Transaction) MarshalJSON() ([]byte, error) {
	type record struct {
		ID          string      `json:"id"`
		Date        string      `json:"date"`
		Amount      json.Number `json:"amount"`
		Currency    Currency    `json:"currency"`
		Category    string      `json:"category"`
		Description string      `json:"description"`
		Timestamp   string      `json:"timestamp"`
	}
	return json.Marshal(record{
		ID:          t.ID,
		Date:        t.Date,
		Amount:      json.Number(t.Amount.String()),
		Currency:    t.Currency,
		Category:    t.Category,
		Description: t.Description,
		Timestamp:   t.Timestamp.UTC().Format(constants.TimestampFormat),
	})
}

// TransactionInput is what a caller supplies when recording a new expense.
type TransactionInput struct {
	Date        string
	Amount      decimal.Decimal
	Currency    Currency
	Category    string
	Description string
}

// Normalize fills defaults for fields missing from older records.
func Normalize(t Transaction) Transaction {
	t.Currency = t.Currency.OrDefault()
	return t
}

// Validate checks the invariants every stored transaction must hold.
func (t Transaction) Validate() error {
	return TransactionInput{
		Date:        t.Date,
		Amount:      t.Amount,
		Currency:    t.Currency,
		Category:    t.Category,
		Description: t.Description,
	}.Validate()
}

func (in TransactionInput) Validate() error {
	if _, err := ParseDate(in.Date); err != nil {
		return err
	}
	if !in.Amount.IsPositive() {
		return ErrInvalidAmount
	}
	if err := ValidateCategoryName(in.Category); err != nil {
		return err
	}
	if !in.Currency.OrDefault().IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidCurrency, in.Currency)
	}
	return nil
}

// ParseDate parses an ISO calendar date (YYYY-MM-DD).
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, ErrEmptyDate
	}
	d, err := time.Parse(constants.DateFormat, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return d, nil
}

// ParseMonth parses a year-month reference (YYYY-MM).
func ParseMonth(s string) (time.Time, error) {
	m, err := time.Parse(constants.MonthFormat, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidMonth, s)
	}
	return m, nil
}

func ValidateCategoryName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrEmptyCategory
	}
	return nil
}
