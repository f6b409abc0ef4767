package ledger

import (
	"errors"
	"sort"
	"time"

	"github.com/google/uuid"

	"toybox/internal/domain"
)

// ErrNonPositiveAmount indicates an expense of zero or negative cents.
var ErrNonPositiveAmount = errors.New("amount must be positive")

// ErrEmptyCategory indicates a missing category.
var ErrEmptyCategory = errors.New("category is required")

// CategoryAmount represents an amount aggregated by category name.
type CategoryAmount struct {
	Name   string
	Amount domain.Money
}

// BudgetStatus compares a category's spend against its ceiling.
type BudgetStatus struct {
	Category  domain.Category
	Ceiling   domain.Money
	Spent     domain.Money
	Remaining domain.Money // negative when over budget
}

// MonthOverview is a compact summary for a specific year+month, with the
// burn-rate forecast the budget tracker prints.
type MonthOverview struct {
	Year             int
	Month            time.Month
	Total            domain.Money
	ByCategory       []CategoryAmount
	Budgets          []BudgetStatus
	DailyBurnRate    float64 // dollars per elapsed day
	ProjectedMonthly float64 // dollars if the burn rate holds
	DaysRemaining    int
}

// Service wraps an expense store with the tracker's rules.
type Service struct {
	store domain.ExpenseStore
	now   func() time.Time
}

// New returns a ledger service backed by the given store.
func New(s domain.ExpenseStore) *Service {
	return &Service{store: s, now: time.Now}
}

// NewAt is New with a fixed clock, for tests and reproducible summaries.
func NewAt(s domain.ExpenseStore, now func() time.Time) *Service {
	return &Service{store: s, now: now}
}

// AddExpense validates and records one expense, returning the stored entry.
func (s *Service) AddExpense(category string, amount domain.Money, note string) (domain.Expense, error) {
	if amount <= 0 {
		return domain.Expense{}, ErrNonPositiveAmount
	}
	if category == "" {
		return domain.Expense{}, ErrEmptyCategory
	}

	e := domain.Expense{
		ID:       uuid.NewString(),
		At:       s.now().UTC(),
		Category: domain.Category(category),
		Amount:   amount,
		Note:     note,
	}
	if err := s.store.AddExpense(e); err != nil {
		return domain.Expense{}, err
	}
	return e, nil
}

// SetBudget records a monthly ceiling for a category.
func (s *Service) SetBudget(category string, ceiling domain.Money) error {
	if ceiling <= 0 {
		return ErrNonPositiveAmount
	}
	if category == "" {
		return ErrEmptyCategory
	}
	return s.store.SetBudget(domain.Budget{Category: domain.Category(category), Ceiling: ceiling})
}

// Expenses lists the month's entries, oldest first.
func (s *Service) Expenses(year int, month time.Month) ([]domain.Expense, error) {
	return s.store.ListExpenses(year, month)
}

// Summary aggregates one month: totals per category, budget standing, and
// the burn-rate projection. The projection uses elapsed days of the current
// month; for past months it degenerates to total/days-in-month.
func (s *Service) Summary(year int, month time.Month) (MonthOverview, error) {
	expenses, err := s.store.ListExpenses(year, month)
	if err != nil {
		return MonthOverview{}, err
	}
	budgets, err := s.store.Budgets()
	if err != nil {
		return MonthOverview{}, err
	}

	ov := MonthOverview{Year: year, Month: month}
	byCat := map[string]domain.Money{}
	for _, e := range expenses {
		ov.Total += e.Amount
		byCat[e.Category.String()] += e.Amount
	}
	for name, amount := range byCat {
		ov.ByCategory = append(ov.ByCategory, CategoryAmount{Name: name, Amount: amount})
	}
	sort.Slice(ov.ByCategory, func(i, j int) bool {
		if ov.ByCategory[i].Amount != ov.ByCategory[j].Amount {
			return ov.ByCategory[i].Amount > ov.ByCategory[j].Amount
		}
		return ov.ByCategory[i].Name < ov.ByCategory[j].Name
	})

	for _, b := range budgets {
		spent := byCat[b.Category.String()]
		ov.Budgets = append(ov.Budgets, BudgetStatus{
			Category:  b.Category,
			Ceiling:   b.Ceiling,
			Spent:     spent,
			Remaining: b.Ceiling - spent,
		})
	}

	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	daysInMonth := first.AddDate(0, 1, -1).Day()
	elapsed := daysInMonth
	now := s.now().UTC()
	if now.Year() == year && now.Month() == month {
		elapsed = now.Day()
		ov.DaysRemaining = daysInMonth - now.Day()
	}
	if elapsed > 0 {
		ov.DailyBurnRate = ov.Total.Dollars() / float64(elapsed)
		ov.ProjectedMonthly = ov.DailyBurnRate * float64(daysInMonth)
	}
	return ov, nil
}
