package planner

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"toybox/internal/domain"
)

// ErrBadDate indicates a date not in YYYY-MM-DD form.
var ErrBadDate = errors.New("date must be YYYY-MM-DD")

// ErrBadTime indicates a time not in HH:MM form.
var ErrBadTime = errors.New("time must be HH:MM")

// ErrEmptyTitle indicates a plan entry with no title.
var ErrEmptyTitle = errors.New("title is required")

// ErrNoSuchEntry indicates a complete request for an unknown entry.
var ErrNoSuchEntry = errors.New("no such plan entry")

// Service is the day planner.
type Service struct {
	store domain.PlannerStore
	now   func() time.Time
}

// New returns a planner backed by the given store.
func New(s domain.PlannerStore) *Service { return &Service{store: s, now: time.Now} }

// Add validates and stores one plan entry.
func (s *Service) Add(date, at, title string) (domain.PlanEntry, error) {
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return domain.PlanEntry{}, fmt.Errorf("%w: %q", ErrBadDate, date)
	}
	if _, err := time.Parse("15:04", at); err != nil {
		return domain.PlanEntry{}, fmt.Errorf("%w: %q", ErrBadTime, at)
	}
	if title == "" {
		return domain.PlanEntry{}, ErrEmptyTitle
	}

	entries, err := s.store.LoadPlans()
	if err != nil {
		return domain.PlanEntry{}, err
	}
	e := domain.PlanEntry{
		ID:    uuid.NewString(),
		Date:  date,
		At:    at,
		Title: title,
		Added: s.now().UTC(),
	}
	entries = append(entries, e)
	if err := s.store.SavePlans(entries); err != nil {
		return domain.PlanEntry{}, err
	}
	return e, nil
}

// Day lists the entries for one date, earliest first.
func (s *Service) Day(date string) ([]domain.PlanEntry, error) {
	entries, err := s.store.LoadPlans()
	if err != nil {
		return nil, err
	}
	var out []domain.PlanEntry
	for _, e := range entries {
		if e.Date == date {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].At < out[j].At })
	return out, nil
}

// Complete marks an entry done. The id may be a unique prefix.
func (s *Service) Complete(id string) (domain.PlanEntry, error) {
	entries, err := s.store.LoadPlans()
	if err != nil {
		return domain.PlanEntry{}, err
	}

	idx := -1
	for i, e := range entries {
		if e.ID == id || (len(id) >= 4 && len(e.ID) >= len(id) && e.ID[:len(id)] == id) {
			if idx != -1 {
				return domain.PlanEntry{}, fmt.Errorf("%w: ambiguous id %q", ErrNoSuchEntry, id)
			}
			idx = i
		}
	}
	if idx == -1 {
		return domain.PlanEntry{}, fmt.Errorf("%w: %q", ErrNoSuchEntry, id)
	}

	entries[idx].Done = true
	if err := s.store.SavePlans(entries); err != nil {
		return domain.PlanEntry{}, err
	}
	return entries[idx], nil
}
