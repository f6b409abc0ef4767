package domain

import "time"

// ExpenseStore persists ledger entries and budget ceilings.
type ExpenseStore interface {
	AddExpense(e Expense) error
	ListExpenses(year int, month time.Month) ([]Expense, error)
	SetBudget(b Budget) error
	Budgets() ([]Budget, error)
	Close() error
}

// TaxStore persists tax records encrypted under a passphrase.
type TaxStore interface {
	AddRecord(passphrase string, r TaxRecord) error
	ListRecords(passphrase string, year int) ([]TaxRecord, error)
}

// InventoryStore persists the buy/sell inventory.
type InventoryStore interface {
	LoadInventory() ([]InventoryItem, error)
	SaveInventory(items []InventoryItem) error
}

// PlannerStore persists day-plan entries, chores, and food votes.
type PlannerStore interface {
	LoadPlans() ([]PlanEntry, error)
	SavePlans(entries []PlanEntry) error
	LoadChores() ([]Chore, error)
	SaveChores(chores []Chore) error
	LoadFoodVotes() ([]FoodVote, error)
	SaveFoodVotes(votes []FoodVote) error
}

// BusStore persists school-bus routes and rosters.
type BusStore interface {
	LoadRoutes() ([]BusRoute, error)
	SaveRoutes(routes []BusRoute) error
}

// SeatStore persists the theater seat map between runs.
type SeatStore interface {
	LoadSeats() (SeatMap, bool, error)
	SaveSeats(m SeatMap) error
}
