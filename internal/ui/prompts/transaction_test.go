package prompts

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/teddybear-cooking/spend-tracker/internal/model"
)

func TestTransactionFormInput(t *testing.T) {
	form := TransactionForm{
		Date:     "2024-03-01",
		Amount:   "12,50",
		Currency: "thb",
		Category: "Food",
	}

	in, err := form.Input()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !in.Amount.Equal(decimal.RequireFromString("12.5")) || in.Currency != model.THB {
		t.Fatalf("unexpected input %+v", in)
	}

	form.Amount = "0"
	if _, err := form.Input(); !errors.Is(err, model.ErrInvalidAmount) {
		t.Fatalf("expected ErrInvalidAmount, got %v", err)
	}

	form.Amount = "1"
	form.Category = ""
	if _, err := form.Input(); !errors.Is(err, model.ErrEmptyCategory) {
		t.Fatalf("expected ErrEmptyCategory, got %v", err)
	}
}

func TestFormFromTransaction(t *testing.T) {
	form := FormFromTransaction(model.Transaction{
		Date:     "2024-03-01",
		Amount:   decimal.RequireFromString("3.5"),
		Category: "Food",
	})
	if form.Amount != "3.5" || form.Currency != "USD" {
		t.Fatalf("unexpected form %+v", form)
	}
}

func TestFormFromTransaction_UnchangedAmountIsNotUpdated(t *testing.T) {
	stored := model.Transaction{
		ID:       "1",
		Date:     "2024-03-01",
		Amount:   decimal.RequireFromString("12.345"),
		Currency: model.USD,
		Category: "Food",
	}

	form := FormFromTransaction(stored)
	form.Description = "lunch"
	in, err := form.Input()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	edited := stored
	edited.Date = in.Date
	edited.Amount = in.Amount
	edited.Currency = in.Currency
	edited.Category = in.Category
	edited.Description = in.Description

	u := model.Diff(stored, edited)
	if u.Amount != nil {
		t.Fatalf("amount should be left out of the update, got %s", u.Amount)
	}
	if u.Description == nil || *u.Description != "lunch" {
		t.Fatalf("expected description in update, got %+v", u)
	}
}

func TestUnique(t *testing.T) {
	got := Unique([]string{"Food", "Rent", "", "Food", "Coffee"})
	want := []string{"Food", "Rent", "Coffee"}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}
