package planner_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"toybox/internal/planner"
	"toybox/internal/store"
)

func TestPlannerAddDayComplete(t *testing.T) {
	svc := planner.New(store.NewFileStore(t.TempDir()))

	_, err := svc.Add("2026-08-31", "09:00", "standup")
	require.NoError(t, err)
	late, err := svc.Add("2026-08-31", "17:30", "gym")
	require.NoError(t, err)
	_, err = svc.Add("2026-09-01", "08:00", "dentist")
	require.NoError(t, err)

	day, err := svc.Day("2026-08-31")
	require.NoError(t, err)
	require.Len(t, day, 2)
	assert.Equal(t, "standup", day[0].Title)
	assert.Equal(t, "gym", day[1].Title)

	done, err := svc.Complete(late.ID)
	require.NoError(t, err)
	assert.True(t, done.Done)

	day, err = svc.Day("2026-08-31")
	require.NoError(t, err)
	assert.True(t, day[1].Done)
}

func TestPlannerValidates(t *testing.T) {
	svc := planner.New(store.NewFileStore(t.TempDir()))

	_, err := svc.Add("31/08/2026", "09:00", "x")
	assert.ErrorIs(t, err, planner.ErrBadDate)

	_, err = svc.Add("2026-08-31", "9am", "x")
	assert.ErrorIs(t, err, planner.ErrBadTime)

	_, err = svc.Add("2026-08-31", "09:00", "")
	assert.ErrorIs(t, err, planner.ErrEmptyTitle)

	_, err = svc.Complete("missing")
	assert.ErrorIs(t, err, planner.ErrNoSuchEntry)
}

func TestChoresDueOrdering(t *testing.T) {
	c := planner.NewChores(store.NewFileStore(t.TempDir()))

	require.NoError(t, c.Add("vacuum", 7))
	require.NoError(t, c.Add("dishes", 1))
	assert.ErrorIs(t, c.Add("mop", 0), planner.ErrBadCadence)

	// Fresh chores are immediately due.
	due, err := c.Due()
	require.NoError(t, err)
	require.Len(t, due, 2)
	for _, d := range due {
		assert.GreaterOrEqual(t, d.OverdueDays, 0)
	}

	require.NoError(t, c.MarkDone("vacuum"))
	due, err = c.Due()
	require.NoError(t, err)
	require.Len(t, due, 1)
	assert.Equal(t, "dishes", due[0].Name)

	assert.ErrorIs(t, c.MarkDone("mop"), planner.ErrNoSuchChore)
}

func TestFoodsRanking(t *testing.T) {
	f := planner.NewFoods(store.NewFileStore(t.TempDir()))

	_, err := f.Vote("Pizza", true)
	require.NoError(t, err)
	_, err = f.Vote("pizza", true)
	require.NoError(t, err)
	_, err = f.Vote("kale", false)
	require.NoError(t, err)
	_, err = f.Vote("tacos", true)
	require.NoError(t, err)

	ranked, err := f.Ranking()
	require.NoError(t, err)
	require.Len(t, ranked, 3)
	assert.Equal(t, "pizza", ranked[0].Food)
	assert.Equal(t, 2, ranked[0].Likes)
	assert.Equal(t, "tacos", ranked[1].Food)
	assert.Equal(t, "kale", ranked[2].Food)
}
