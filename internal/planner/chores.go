package planner

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"toybox/internal/domain"
)

// ErrBadCadence indicates a chore cadence under one day.
var ErrBadCadence = errors.New("cadence must be at least 1 day")

// ErrNoSuchChore indicates an unknown chore name.
var ErrNoSuchChore = errors.New("no such chore")

// DueChore is a chore with its schedule position.
type DueChore struct {
	domain.Chore
	OverdueDays int // 0 when due today, never negative
}

// Chores manages the cleaning routine.
type Chores struct {
	store domain.PlannerStore
	now   func() time.Time
}

// NewChores returns a chore tracker backed by the given store.
func NewChores(s domain.PlannerStore) *Chores { return &Chores{store: s, now: time.Now} }

// Add registers a chore. A chore added fresh counts as never done, so it is
// immediately due.
func (c *Chores) Add(name string, everyDays int) error {
	if name == "" {
		return ErrEmptyTitle
	}
	if everyDays < 1 {
		return ErrBadCadence
	}

	chores, err := c.store.LoadChores()
	if err != nil {
		return err
	}
	for _, ch := range chores {
		if ch.Name == name {
			return fmt.Errorf("chore %q already exists", name)
		}
	}
	chores = append(chores, domain.Chore{Name: name, EveryDay: everyDays})
	return c.store.SaveChores(chores)
}

// MarkDone stamps a chore with the current time.
func (c *Chores) MarkDone(name string) error {
	chores, err := c.store.LoadChores()
	if err != nil {
		return err
	}
	for i := range chores {
		if chores[i].Name == name {
			chores[i].LastDone = c.now().UTC()
			return c.store.SaveChores(chores)
		}
	}
	return fmt.Errorf("%w: %q", ErrNoSuchChore, name)
}

// Due lists chores at or past their cadence, most overdue first.
func (c *Chores) Due() ([]DueChore, error) {
	chores, err := c.store.LoadChores()
	if err != nil {
		return nil, err
	}

	now := c.now().UTC()
	var out []DueChore
	for _, ch := range chores {
		var sinceDays int
		if ch.LastDone.IsZero() {
			sinceDays = ch.EveryDay // never done: due today
		} else {
			sinceDays = int(now.Sub(ch.LastDone).Hours() / 24)
		}
		if over := sinceDays - ch.EveryDay; over >= 0 {
			out = append(out, DueChore{Chore: ch, OverdueDays: over})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].OverdueDays > out[j].OverdueDays })
	return out, nil
}
