package school

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"toybox/internal/domain"
)

// ErrNoSuchRoute indicates an unknown bus route.
var ErrNoSuchRoute = errors.New("no such route")

// ErrDuplicateRider indicates a rider already on the roster.
var ErrDuplicateRider = errors.New("rider already on this route")

// BusBook manages bus routes and their rider rosters.
type BusBook struct {
	store domain.BusStore
}

// NewBusBook returns a record keeper backed by the given store.
func NewBusBook(s domain.BusStore) *BusBook { return &BusBook{store: s} }

// AddRoute registers a route. Re-adding an existing route updates its bus
// and driver but keeps the roster.
func (b *BusBook) AddRoute(route, bus, driver string) error {
	if route == "" {
		return errors.New("route name is required")
	}

	routes, err := b.store.LoadRoutes()
	if err != nil {
		return err
	}
	for i := range routes {
		if routes[i].Route == route {
			routes[i].Bus = bus
			routes[i].Driver = driver
			return b.store.SaveRoutes(routes)
		}
	}
	routes = append(routes, domain.BusRoute{Route: route, Bus: bus, Driver: driver})
	return b.store.SaveRoutes(routes)
}

// AddRider puts a student on a route's roster.
func (b *BusBook) AddRider(route, rider string) error {
	rider = strings.TrimSpace(rider)
	if rider == "" {
		return errors.New("rider name is required")
	}

	routes, err := b.store.LoadRoutes()
	if err != nil {
		return err
	}
	for i := range routes {
		if routes[i].Route != route {
			continue
		}
		for _, r := range routes[i].Riders {
			if strings.EqualFold(r, rider) {
				return fmt.Errorf("%w: %q", ErrDuplicateRider, rider)
			}
		}
		routes[i].Riders = append(routes[i].Riders, rider)
		sort.Strings(routes[i].Riders)
		return b.store.SaveRoutes(routes)
	}
	return fmt.Errorf("%w: %q", ErrNoSuchRoute, route)
}

// Routes lists every route sorted by name.
func (b *BusBook) Routes() ([]domain.BusRoute, error) {
	routes, err := b.store.LoadRoutes()
	if err != nil {
		return nil, err
	}
	sort.Slice(routes, func(i, j int) bool { return routes[i].Route < routes[j].Route })
	return routes, nil
}
