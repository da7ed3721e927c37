package model

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestTransactionUpdateApply(t *testing.T) {
	stored := Transaction{
		ID:        "01A",
		Date:      "2024-03-01",
		Amount:    decimal.NewFromInt(10),
		Currency:  USD,
		Category:  "Food",
		Timestamp: time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC),
	}

	amount := decimal.NewFromInt(25)
	category := "Groceries"
	got := TransactionUpdate{Amount: &amount, Category: &category}.Apply(stored)

	if !got.Amount.Equal(amount) || got.Category != category {
		t.Fatalf("update not applied: %+v", got)
	}
	if got.ID != stored.ID || !got.Timestamp.Equal(stored.Timestamp) {
		t.Fatalf("identity changed: %+v", got)
	}
	if got.Date != stored.Date || got.Currency != stored.Currency {
		t.Fatalf("untouched fields changed: %+v", got)
	}
}

func TestTransactionUpdateApply_TrimsDate(t *testing.T) {
	date := " 2024-03-05\t"
	got := TransactionUpdate{Date: &date}.Apply(Transaction{Date: "2024-03-01"})
	if got.Date != "2024-03-05" {
		t.Fatalf("expected trimmed date, got %q", got.Date)
	}
}

func TestTransactionUpdateApply_EmptyCurrencyDefaults(t *testing.T) {
	empty := Currency("")
	got := TransactionUpdate{Currency: &empty}.Apply(Transaction{Currency: THB})
	if got.Currency != USD {
		t.Fatalf("expected USD, got %q", got.Currency)
	}
}

func TestDiff(t *testing.T) {
	before := Transaction{
		Date:     "2024-03-01",
		Amount:   decimal.RequireFromString("10.0"),
		Currency: USD,
		Category: "Food",
	}

	after := before
	after.Amount = decimal.RequireFromString("10.00")
	if u := Diff(before, after); !u.IsEmpty() {
		t.Fatalf("equal amounts should produce an empty update: %+v", u)
	}

	after.Description = "dinner"
	after.Currency = MMK
	u := Diff(before, after)
	if u.Description == nil || *u.Description != "dinner" {
		t.Fatalf("expected description in update: %+v", u)
	}
	if u.Currency == nil || *u.Currency != MMK {
		t.Fatalf("expected currency in update: %+v", u)
	}
	if u.Date != nil || u.Amount != nil || u.Category != nil {
		t.Fatalf("unchanged fields leaked into update: %+v", u)
	}
}
