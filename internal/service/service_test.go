package service

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/teddybear-cooking/spend-tracker/internal/analytics"
	"github.com/teddybear-cooking/spend-tracker/internal/config"
	"github.com/teddybear-cooking/spend-tracker/internal/model"
	"github.com/teddybear-cooking/spend-tracker/internal/store"
)

func newTestService(t *testing.T, kv store.KV) (*Service, *LocalLedger) {
	t.Helper()
	cfg := config.NewDefault()
	cfg.Defaults.Categories = []string{"Food", "Rent"}
	cfg.Defaults.Currency = "THB"

	ledger := newTestLedger(t, kv)
	return NewService(ledger, cfg), ledger
}

func TestTransactionService_CreateUsesDefaultCurrency(t *testing.T) {
	svc, _ := newTestService(t, store.NewMemory())

	tx, err := svc.Transaction.Create(input("2024-03-01", "5", "", "Food"))
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if tx.Currency != model.THB {
		t.Fatalf("expected configured default THB, got %s", tx.Currency)
	}

	if _, err := svc.Transaction.Create(input("2024-03-01", "0", model.USD, "Food")); !errors.Is(err, model.ErrInvalidAmount) {
		t.Fatalf("expected ErrInvalidAmount, got %v", err)
	}
}

func TestTransactionService_CreateStorageFailure(t *testing.T) {
	kv := &flakyKV{Memory: store.NewMemory(), failSet: true}
	svc, _ := newTestService(t, kv)

	if _, err := svc.Transaction.Create(input("2024-03-01", "5", model.USD, "Food")); !errors.Is(err, ErrSaveFailed) {
		t.Fatalf("expected ErrSaveFailed, got %v", err)
	}
}

func TestTransactionService_Journal(t *testing.T) {
	svc, ledger := newTestService(t, store.NewMemory())

	clock := fixedNow
	ledger.now = func() time.Time {
		clock = clock.Add(time.Minute)
		return clock
	}

	ledger.SaveTransaction(input("2024-02-20", "1", model.USD, "A"))
	ledger.SaveTransaction(input("2024-03-05", "1", model.USD, "B"))
	ledger.SaveTransaction(input("2024-03-01", "1", model.USD, "C"))
	ledger.SaveTransaction(input("2024-03-05", "1", model.USD, "D"))

	all, err := svc.Transaction.Journal("", 0)
	if err != nil {
		t.Fatalf("journal: %v", err)
	}
	var order []string
	for _, tx := range all {
		order = append(order, tx.Category)
	}
	want := []string{"D", "B", "C", "A"}
	if len(order) != len(want) {
		t.Fatalf("expected %v, got %v", want, order)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, order)
		}
	}

	march, err := svc.Transaction.Journal("2024-03", 2)
	if err != nil {
		t.Fatalf("journal: %v", err)
	}
	if len(march) != 2 || march[0].Category != "D" || march[1].Category != "B" {
		t.Fatalf("unexpected month page %+v", march)
	}

	if _, err := svc.Transaction.Journal("March", 0); !errors.Is(err, model.ErrInvalidMonth) {
		t.Fatalf("expected ErrInvalidMonth, got %v", err)
	}
}

func TestTransactionService_GetUpdateDelete(t *testing.T) {
	svc, _ := newTestService(t, store.NewMemory())
	tx, err := svc.Transaction.Create(input("2024-03-01", "5", model.USD, "Food"))
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := svc.Transaction.GetTransaction(tx.ID)
	if err != nil || got.ID != tx.ID {
		t.Fatalf("get: %+v, %v", got, err)
	}
	if _, err := svc.Transaction.GetTransaction("nope"); !errors.Is(err, ErrTransactionNotFound) {
		t.Fatalf("expected ErrTransactionNotFound, got %v", err)
	}

	unchanged, err := svc.Transaction.Update(tx.ID, model.TransactionUpdate{})
	if err != nil || unchanged.ID != tx.ID {
		t.Fatalf("empty update: %+v, %v", unchanged, err)
	}

	empty := ""
	if _, err := svc.Transaction.Update(tx.ID, model.TransactionUpdate{Category: &empty}); !errors.Is(err, model.ErrEmptyCategory) {
		t.Fatalf("expected ErrEmptyCategory, got %v", err)
	}

	amount := decimal.NewFromInt(9)
	updated, err := svc.Transaction.Update(tx.ID, model.TransactionUpdate{Amount: &amount})
	if err != nil || !updated.Amount.Equal(amount) {
		t.Fatalf("update: %+v, %v", updated, err)
	}

	if err := svc.Transaction.Delete(tx.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := svc.Transaction.Delete(tx.ID); !errors.Is(err, ErrTransactionNotFound) {
		t.Fatalf("expected ErrTransactionNotFound, got %v", err)
	}
}

func TestTransactionService_ClearAll(t *testing.T) {
	kv := &flakyKV{Memory: store.NewMemory()}
	svc, _ := newTestService(t, kv)
	svc.Transaction.Create(input("2024-03-01", "5", model.USD, "Food"))

	kv.failDelete = true
	if err := svc.Transaction.ClearAll(); !errors.Is(err, ErrSaveFailed) {
		t.Fatalf("expected ErrSaveFailed, got %v", err)
	}
	kv.failDelete = false
	if err := svc.Transaction.ClearAll(); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if n := len(svc.Ledger.GetTransactions()); n != 0 {
		t.Fatalf("expected empty ledger, got %d", n)
	}
}

func TestCategoryService(t *testing.T) {
	svc, ledger := newTestService(t, store.NewMemory())

	if got := svc.Category.Categories(); len(got) != 2 || got[0] != "Food" {
		t.Fatalf("unexpected defaults %v", got)
	}

	cats, err := svc.Category.AddCategory("  Coffee ")
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if len(cats) != 1 || cats[0] != "Coffee" {
		t.Fatalf("expected trimmed name stored, got %v", cats)
	}

	if _, err := svc.Category.AddCategory("Food"); err == nil {
		t.Fatal("expected a default category to be refused")
	}
	if _, err := svc.Category.AddCategory("Coffee"); err == nil {
		t.Fatal("expected an existing custom category to be refused")
	}
	if _, err := svc.Category.AddCategory(" "); !errors.Is(err, model.ErrEmptyCategory) {
		t.Fatalf("expected ErrEmptyCategory, got %v", err)
	}

	// A custom name that duplicates a default is listed twice.
	ledger.SaveCustomCategory("Rent")
	got := svc.Category.Categories()
	want := []string{"Food", "Rent", "Coffee", "Rent"}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}

func TestCategoryService_AddStorageFailure(t *testing.T) {
	kv := &flakyKV{Memory: store.NewMemory(), failSet: true}
	svc, _ := newTestService(t, kv)

	if _, err := svc.Category.AddCategory("Coffee"); !errors.Is(err, ErrSaveFailed) {
		t.Fatalf("expected ErrSaveFailed, got %v", err)
	}
}

func TestReportService_Dashboard(t *testing.T) {
	svc, ledger := newTestService(t, store.NewMemory())
	ledger.SaveTransaction(input("2024-02-28", "7", model.USD, "Rent"))
	ledger.SaveTransaction(input("2024-03-10", "10", model.USD, "Food"))
	ledger.SaveTransaction(input("2024-03-13", "5", model.USD, "Food"))
	ledger.SaveTransaction(input("2024-03-13", "100", model.THB, "Food"))

	now := time.Date(2024, 3, 13, 12, 0, 0, 0, time.Local)
	d, err := svc.Report.Dashboard(DashboardOptions{Filter: analytics.Weekly, Now: now})
	if err != nil {
		t.Fatalf("dashboard: %v", err)
	}

	if d.Month != "2024-03" {
		t.Fatalf("expected current month, got %q", d.Month)
	}
	if d.Count != 3 {
		t.Fatalf("expected 3 in window, got %d", d.Count)
	}
	if !d.AllTime.Get(model.USD).Equal(decimal.NewFromInt(22)) {
		t.Fatalf("all time USD %s", d.AllTime.Get(model.USD))
	}
	if !d.MonthTotal.Get(model.USD).Equal(decimal.NewFromInt(15)) {
		t.Fatalf("month USD %s", d.MonthTotal.Get(model.USD))
	}
	if !d.WindowTotal.Get(model.THB).Equal(decimal.NewFromInt(100)) {
		t.Fatalf("window THB %s", d.WindowTotal.Get(model.THB))
	}
	if len(d.Series) != 2 || d.Series[0].Date != "2024-03-10" {
		t.Fatalf("unexpected series %+v", d.Series)
	}
	if len(d.Categories) != 2 || d.Categories[0].Currency != model.USD || d.Categories[0].Count != 2 {
		t.Fatalf("unexpected categories %+v", d.Categories)
	}

	thb, err := svc.Report.Dashboard(DashboardOptions{Filter: analytics.Monthly, Month: "2024-03", Currency: model.THB, Now: now})
	if err != nil {
		t.Fatalf("dashboard: %v", err)
	}
	if len(thb.AllTime) != 1 || thb.Count != 1 {
		t.Fatalf("currency filter not applied: %+v", thb)
	}

	if _, err := svc.Report.Dashboard(DashboardOptions{Month: "2024/03"}); !errors.Is(err, model.ErrInvalidMonth) {
		t.Fatalf("expected ErrInvalidMonth, got %v", err)
	}
}
