package model

import (
	"strings"

	"github.com/shopspring/decimal"
)

// TransactionUpdate lists the fields an edit may change. Nil fields are left
// as stored. ID and Timestamp cannot be updated.
type TransactionUpdate struct {
	Date        *string
	Amount      *decimal.Decimal
	Currency    *Currency
	Category    *string
	Description *string
}

func (u TransactionUpdate) IsEmpty() bool {
	return u.Date == nil && u.Amount == nil && u.Currency == nil &&
		u.Category == nil && u.Description == nil
}

// Apply merges the update into t field by field and returns the result.
func (u TransactionUpdate) Apply(t Transaction) Transaction {
	if u.Date != nil {
		t.Date = strings.TrimSpace(*u.Date)
	}
	if u.Amount != nil {
		t.Amount = *u.Amount
	}
	if u.Currency != nil {
		t.Currency = u.Currency.OrDefault()
	}
	if u.Category != nil {
		t.Category = *u.Category
	}
	if u.Description != nil {
		t.Description = *u.Description
	}
	return t
}

// Diff builds the update that turns before into after, leaving out fields
// that did not change.
func Diff(before, after Transaction) TransactionUpdate {
	var u TransactionUpdate
	if strings.TrimSpace(after.Date) != before.Date {
		u.Date = &after.Date
	}
	if !after.Amount.Equal(before.Amount) {
		u.Amount = &after.Amount
	}
	if after.Currency.OrDefault() != before.Currency.OrDefault() {
		u.Currency = &after.Currency
	}
	if after.Category != before.Category {
		u.Category = &after.Category
	}
	if after.Description != before.Description {
		u.Description = &after.Description
	}
	return u
}
