package store

import (
	"path/filepath"
	"sync"

	"toybox/internal/domain"
)

const (
	plansFile     = "plans.json"
	choresFile    = "chores.json"
	foodsFile     = "foods.json"
	busFile       = "bus_routes.json"
	inventoryFile = "inventory.json"
	seatsFile     = "seats.json"
)

// FileStore keeps tracker data as JSON files in one directory.
type FileStore struct {
	dir string
	mu  sync.Mutex
}

// NewFileStore returns a store rooted at dir. The directory must exist.
func NewFileStore(dir string) *FileStore { return &FileStore{dir: dir} }

// ---------- Day plans ----------

func (s *FileStore) LoadPlans() ([]domain.PlanEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var entries []domain.PlanEntry
	if err := readJSON(filepath.Join(s.dir, plansFile), &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

func (s *FileStore) SavePlans(entries []domain.PlanEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return writeJSON(filepath.Join(s.dir, plansFile), entries, 0o600)
}

// ---------- Chores ----------

func (s *FileStore) LoadChores() ([]domain.Chore, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var chores []domain.Chore
	if err := readJSON(filepath.Join(s.dir, choresFile), &chores); err != nil {
		return nil, err
	}
	return chores, nil
}

func (s *FileStore) SaveChores(chores []domain.Chore) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return writeJSON(filepath.Join(s.dir, choresFile), chores, 0o600)
}

// ---------- Food votes ----------

func (s *FileStore) LoadFoodVotes() ([]domain.FoodVote, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var votes []domain.FoodVote
	if err := readJSON(filepath.Join(s.dir, foodsFile), &votes); err != nil {
		return nil, err
	}
	return votes, nil
}

func (s *FileStore) SaveFoodVotes(votes []domain.FoodVote) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return writeJSON(filepath.Join(s.dir, foodsFile), votes, 0o600)
}

// ---------- Bus routes ----------

func (s *FileStore) LoadRoutes() ([]domain.BusRoute, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var routes []domain.BusRoute
	if err := readJSON(filepath.Join(s.dir, busFile), &routes); err != nil {
		return nil, err
	}
	return routes, nil
}

func (s *FileStore) SaveRoutes(routes []domain.BusRoute) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return writeJSON(filepath.Join(s.dir, busFile), routes, 0o600)
}

// ---------- Inventory ----------

func (s *FileStore) LoadInventory() ([]domain.InventoryItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var items []domain.InventoryItem
	if err := readJSON(filepath.Join(s.dir, inventoryFile), &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (s *FileStore) SaveInventory(items []domain.InventoryItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return writeJSON(filepath.Join(s.dir, inventoryFile), items, 0o600)
}

// ---------- Theater seats ----------

func (s *FileStore) LoadSeats() (domain.SeatMap, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var m domain.SeatMap
	if err := readJSON(filepath.Join(s.dir, seatsFile), &m); err != nil {
		return domain.SeatMap{}, false, err
	}
	if len(m.Rows) == 0 {
		return domain.SeatMap{}, false, nil
	}
	return m, true, nil
}

func (s *FileStore) SaveSeats(m domain.SeatMap) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return writeJSON(filepath.Join(s.dir, seatsFile), m, 0o600)
}

// Compile-time assertions that FileStore implements the tracker interfaces.
var (
	_ domain.PlannerStore   = (*FileStore)(nil)
	_ domain.BusStore       = (*FileStore)(nil)
	_ domain.InventoryStore = (*FileStore)(nil)
	_ domain.SeatStore      = (*FileStore)(nil)
)
