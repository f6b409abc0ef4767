package sim

import (
	"errors"
	"fmt"
	"sort"
)

// ErrUnknownPort indicates a ship routed through a port that does not exist.
var ErrUnknownPort = errors.New("unknown port")

// ErrBadCapacity indicates a ship with no cargo capacity.
var ErrBadCapacity = errors.New("ship capacity must be positive")

// Port holds cargo waiting to ship and cargo delivered to it.
type Port struct {
	Name      string
	Stock     int // units waiting for pickup
	Delivered int // units delivered here
}

// Ship ferries cargo between two ports on a fixed loop.
type Ship struct {
	Name     string
	From, To string
	Capacity int
	Transit  int // ticks for one leg

	cargo    int
	position string // current port name, or "" while at sea
	eta      int    // ticks until arrival when at sea
	outbound bool   // true when heading to To
}

// Fleet is the whole toy: ports, ships, and a tick counter.
type Fleet struct {
	ports map[string]*Port
	ships []*Ship
	ticks int
}

// NewFleet validates the network and returns a fleet ready to tick.
// Ships start docked at their origin port.
func NewFleet(ports []Port, ships []Ship) (*Fleet, error) {
	f := &Fleet{ports: make(map[string]*Port, len(ports))}
	for _, p := range ports {
		cp := p
		f.ports[p.Name] = &cp
	}
	for _, s := range ships {
		if s.Capacity <= 0 {
			return nil, fmt.Errorf("%w: ship %q", ErrBadCapacity, s.Name)
		}
		if _, ok := f.ports[s.From]; !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownPort, s.From)
		}
		if _, ok := f.ports[s.To]; !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownPort, s.To)
		}
		cs := s
		if cs.Transit < 1 {
			cs.Transit = 1
		}
		cs.position = cs.From
		cs.outbound = true
		f.ships = append(f.ships, &cs)
	}
	return f, nil
}

// Tick advances the simulation one step: docked ships load or unload, ships
// at sea get one tick closer. Port stock never goes negative; a ship loads
// at most what is available.
func (f *Fleet) Tick() {
	f.ticks++
	for _, s := range f.ships {
		if s.position == "" {
			s.eta--
			if s.eta <= 0 {
				if s.outbound {
					s.position = s.To
				} else {
					s.position = s.From
				}
			}
			continue
		}

		port := f.ports[s.position]
		if s.position == s.From {
			// Load and depart.
			load := s.Capacity - s.cargo
			if load > port.Stock {
				load = port.Stock
			}
			port.Stock -= load
			s.cargo += load
			s.position = ""
			s.eta = s.Transit
			s.outbound = true
		} else {
			// Unload and head home.
			port.Delivered += s.cargo
			s.cargo = 0
			s.position = ""
			s.eta = s.Transit
			s.outbound = false
		}
	}
}

// Run ticks the fleet n times.
func (f *Fleet) Run(n int) {
	for i := 0; i < n; i++ {
		f.Tick()
	}
}

// Ticks reports how many ticks have elapsed.
func (f *Fleet) Ticks() int { return f.ticks }

// Ports returns a snapshot of every port, sorted by name.
func (f *Fleet) Ports() []Port {
	names := make([]string, 0, len(f.ports))
	for n := range f.ports {
		names = append(names, n)
	}
	sort.Strings(names)
	out := make([]Port, 0, len(names))
	for _, n := range names {
		out = append(out, *f.ports[n])
	}
	return out
}

// TotalDelivered sums deliveries across all ports.
func (f *Fleet) TotalDelivered() int {
	total := 0
	for _, p := range f.ports {
		total += p.Delivered
	}
	return total
}
