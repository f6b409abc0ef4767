package domain

import "time"

// Money is an amount in integer cents. Ledger math never touches floats.
type Money int64

// Dollars returns the amount as a float for display.
func (m Money) Dollars() float64 { return float64(m) / 100 }

// Category labels an expense or budget line.
type Category string

// String returns the string form of the category.
func (c Category) String() string { return string(c) }

// Expense is one ledger entry.
type Expense struct {
	ID       string    `json:"id"`
	At       time.Time `json:"at"`
	Category Category  `json:"category"`
	Amount   Money     `json:"amount"`
	Note     string    `json:"note"`
}

// Budget is a monthly spending ceiling for one category. The ledger keeps
// at most one ceiling per category and requires a non-empty name.
type Budget struct {
	Category Category `json:"category"`
	Ceiling  Money    `json:"ceiling"`
}

// TaxRecord is one entry in the encrypted tax vault.
type TaxRecord struct {
	ID        string    `json:"id"`
	Year      int       `json:"year"`
	Kind      string    `json:"kind"` // "income", "deduction", "payment"
	Amount    Money     `json:"amount"`
	Reference string    `json:"reference"`
	AddedAt   time.Time `json:"added_at"`
}

// InventoryItem tracks stock and cost basis for the buy/sell toy.
type InventoryItem struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
	UnitCost Money  `json:"unit_cost"` // average cost of current stock
	Realized Money  `json:"realized"`  // profit realized by sales so far
}

// PlanEntry is one timed item in the day planner.
type PlanEntry struct {
	ID    string    `json:"id"`
	Date  string    `json:"date"` // YYYY-MM-DD
	At    string    `json:"at"`   // HH:MM
	Title string    `json:"title"`
	Done  bool      `json:"done"`
	Added time.Time `json:"added"`
}

// Chore is a recurring cleaning task with a cadence in days.
type Chore struct {
	Name     string    `json:"name"`
	EveryDay int       `json:"every_days"`
	LastDone time.Time `json:"last_done"`
}

// FoodVote tallies likes and dislikes for one food.
type FoodVote struct {
	Food     string `json:"food"`
	Likes    int    `json:"likes"`
	Dislikes int    `json:"dislikes"`
}

// BusRoute is a school-bus record: the route, its bus, and who rides it.
type BusRoute struct {
	Route  string   `json:"route"`
	Bus    string   `json:"bus"`
	Driver string   `json:"driver"`
	Riders []string `json:"riders"`
}

// SeatMap is the persisted state of the theater seating demo.
// Rows are strings of '.' (free) and 'x' (reserved) so the JSON stays legible.
type SeatMap struct {
	Rows []string `json:"rows"`
}
