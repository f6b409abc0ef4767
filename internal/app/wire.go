package app

import (
	"path/filepath"

	"toybox/internal/config"
	"toybox/internal/domain"
	"toybox/internal/ledger"
	"toybox/internal/logging"
	"toybox/internal/planner"
	"toybox/internal/school"
	"toybox/internal/store"
)

// Wire also exposes the raw stores for the toys that use them directly.
type Wire struct {
	App   *App
	Files *store.FileStore
	Vault *store.Vault
	Seats domain.SeatStore
}

// NewWire constructs the dependency graph rooted at home. The directory
// must already exist.
func NewWire(home string) (*Wire, error) {
	cfg, err := config.Load(home)
	if err != nil {
		return nil, err
	}

	log, err := logging.New(home, cfg.Logging.Debug)
	if err != nil {
		return nil, err
	}

	files := store.NewFileStore(home)
	vault := store.NewVault(home)
	ledgerStore, err := store.NewLedgerStore(filepath.Join(home, "ledger.db"))
	if err != nil {
		return nil, err
	}

	a := &App{
		Cfg:       cfg,
		Log:       log,
		Ledger:    ledger.New(ledgerStore),
		Inventory: ledger.NewInventory(files),
		Taxes:     ledger.NewTaxKeeper(vault),
		Planner:   planner.New(files),
		Chores:    planner.NewChores(files),
		Foods:     planner.NewFoods(files),
		Buses:     school.NewBusBook(files),
		close:     ledgerStore.Close,
	}

	return &Wire{App: a, Files: files, Vault: vault, Seats: files}, nil
}
