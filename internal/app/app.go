package app

import (
	"go.uber.org/zap"

	"toybox/internal/config"
	"toybox/internal/ledger"
	"toybox/internal/planner"
	"toybox/internal/school"
)

// App bundles the services the subcommands use.
type App struct {
	Cfg       config.Config
	Log       *zap.Logger
	Ledger    *ledger.Service
	Inventory *ledger.Inventory
	Taxes     *ledger.TaxKeeper
	Planner   *planner.Service
	Chores    *planner.Chores
	Foods     *planner.Foods
	Buses     *school.BusBook

	close func() error
}

// Close releases store handles and flushes the logger.
func (a *App) Close() error {
	if a.Log != nil {
		_ = a.Log.Sync()
	}
	if a.close != nil {
		return a.close()
	}
	return nil
}
