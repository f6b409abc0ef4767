package store_test

import (
	"path/filepath"
	"testing"
	"time"

	"toybox/internal/domain"
	"toybox/internal/store"
)

func openTestLedger(t *testing.T) *store.LedgerStore {
	t.Helper()
	s, err := store.NewLedgerStore(filepath.Join(t.TempDir(), "ledger.db"))
	if err != nil {
		t.Fatalf("open ledger: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestLedger_AddListByMonth(t *testing.T) {
	s := openTestLedger(t)

	aug := time.Date(2026, time.August, 12, 10, 0, 0, 0, time.UTC)
	sep := time.Date(2026, time.September, 1, 8, 0, 0, 0, time.UTC)

	if err := s.AddExpense(domain.Expense{ID: "e1", At: aug, Category: "food", Amount: 1250, Note: "lunch"}); err != nil {
		t.Fatalf("add expense: %v", err)
	}
	if err := s.AddExpense(domain.Expense{ID: "e2", At: sep, Category: "rent", Amount: 90000}); err != nil {
		t.Fatalf("add expense: %v", err)
	}

	got, err := s.ListExpenses(2026, time.August)
	if err != nil {
		t.Fatalf("list expenses: %v", err)
	}
	if len(got) != 1 || got[0].ID != "e1" || got[0].Amount != 1250 {
		t.Fatalf("unexpected august entries: %+v", got)
	}

	all, err := s.ListExpenses(0, 0)
	if err != nil {
		t.Fatalf("list all: %v", err)
	}
	if len(all) != 2 || all[0].ID != "e1" || all[1].ID != "e2" {
		t.Fatalf("unexpected full ledger: %+v", all)
	}
}

func TestLedger_BudgetUpsert(t *testing.T) {
	s := openTestLedger(t)

	if err := s.SetBudget(domain.Budget{Category: "food", Ceiling: 40000}); err != nil {
		t.Fatalf("set budget: %v", err)
	}
	if err := s.SetBudget(domain.Budget{Category: "food", Ceiling: 35000}); err != nil {
		t.Fatalf("update budget: %v", err)
	}

	got, err := s.Budgets()
	if err != nil {
		t.Fatalf("budgets: %v", err)
	}
	if len(got) != 1 || got[0].Ceiling != 35000 {
		t.Fatalf("expected upserted ceiling, got %+v", got)
	}
}
