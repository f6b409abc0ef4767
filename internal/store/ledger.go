package store

import (
	"database/sql"
	"fmt"
	"sync"
	"time"

	_ "modernc.org/sqlite"

	"toybox/internal/domain"
)

// LedgerStore keeps expenses and budget ceilings in SQLite.
type LedgerStore struct {
	db *sql.DB
	mu sync.Mutex
}

// NewLedgerStore opens (or creates) the ledger database at path.
func NewLedgerStore(path string) (*LedgerStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open ledger: %w", err)
	}
	s := &LedgerStore{db: db}
	if err := s.initialize(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// initialize creates the required tables.
func (s *LedgerStore) initialize() error {
	schema := `
	CREATE TABLE IF NOT EXISTS expenses (
		id TEXT PRIMARY KEY,
		at TEXT NOT NULL,
		category TEXT NOT NULL,
		amount_cents INTEGER NOT NULL,
		note TEXT
	);
	CREATE INDEX IF NOT EXISTS idx_expenses_at ON expenses(at);
	CREATE TABLE IF NOT EXISTS budgets (
		category TEXT PRIMARY KEY,
		ceiling_cents INTEGER NOT NULL
	);
	`
	_, err := s.db.Exec(schema)
	if err != nil {
		return fmt.Errorf("create ledger schema: %w", err)
	}
	return nil
}

func (s *LedgerStore) AddExpense(e domain.Expense) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.Exec(
		`INSERT INTO expenses (id, at, category, amount_cents, note) VALUES (?, ?, ?, ?, ?)`,
		e.ID, e.At.UTC().Format(time.RFC3339), e.Category.String(), int64(e.Amount), e.Note,
	)
	return err
}

// ListExpenses returns entries for the given month, oldest first. A zero
// year means every entry in the ledger.
func (s *LedgerStore) ListExpenses(year int, month time.Month) ([]domain.Expense, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	query := `SELECT id, at, category, amount_cents, note FROM expenses ORDER BY at`
	args := []any{}
	if year != 0 {
		query = `SELECT id, at, category, amount_cents, note FROM expenses
			WHERE at >= ? AND at < ? ORDER BY at`
		from := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
		args = append(args, from.Format(time.RFC3339), from.AddDate(0, 1, 0).Format(time.RFC3339))
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Expense
	for rows.Next() {
		var (
			e      domain.Expense
			at     string
			cat    string
			amount int64
		)
		if err := rows.Scan(&e.ID, &at, &cat, &amount, &e.Note); err != nil {
			return nil, err
		}
		t, err := time.Parse(time.RFC3339, at)
		if err != nil {
			return nil, fmt.Errorf("bad timestamp in ledger row %s: %w", e.ID, err)
		}
		e.At = t
		e.Category = domain.Category(cat)
		e.Amount = domain.Money(amount)
		out = append(out, e)
	}
	return out, rows.Err()
}

func (s *LedgerStore) SetBudget(b domain.Budget) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.Exec(
		`INSERT INTO budgets (category, ceiling_cents) VALUES (?, ?)
		 ON CONFLICT(category) DO UPDATE SET ceiling_cents = excluded.ceiling_cents`,
		b.Category.String(), int64(b.Ceiling),
	)
	return err
}

func (s *LedgerStore) Budgets() ([]domain.Budget, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rows, err := s.db.Query(`SELECT category, ceiling_cents FROM budgets ORDER BY category`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Budget
	for rows.Next() {
		var (
			cat     string
			ceiling int64
		)
		if err := rows.Scan(&cat, &ceiling); err != nil {
			return nil, err
		}
		out = append(out, domain.Budget{Category: domain.Category(cat), Ceiling: domain.Money(ceiling)})
	}
	return out, rows.Err()
}

// Close releases the underlying database handle.
func (s *LedgerStore) Close() error { return s.db.Close() }

// Compile-time assertion that LedgerStore implements domain.ExpenseStore.
var _ domain.ExpenseStore = (*LedgerStore)(nil)
