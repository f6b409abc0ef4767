package school_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"toybox/internal/school"
	"toybox/internal/store"
)

func TestGradeScoreBands(t *testing.T) {
	tcs := []struct {
		score  float64
		letter string
		passed bool
	}{
		{95, "A", true},
		{85, "B", true},
		{75, "C", true},
		{65, "D", true},
		{50, "E", true},
		{49.9, "F", false},
		{0, "F", false},
	}
	for _, tc := range tcs {
		g, err := school.GradeScore(tc.score, school.DefaultPassMark)
		require.NoError(t, err, "score %.1f", tc.score)
		assert.Equal(t, tc.letter, g.Letter, "score %.1f", tc.score)
		assert.Equal(t, tc.passed, g.Passed, "score %.1f", tc.score)
	}
}

func TestGradeScoreRejectsOutOfRange(t *testing.T) {
	_, err := school.GradeScore(-1, school.DefaultPassMark)
	assert.ErrorIs(t, err, school.ErrScoreOutOfRange)
	_, err = school.GradeScore(101, school.DefaultPassMark)
	assert.ErrorIs(t, err, school.ErrScoreOutOfRange)
}

func TestGradeClassAverages(t *testing.T) {
	report, err := school.GradeClass([]float64{40, 60, 80}, school.DefaultPassMark)
	require.NoError(t, err)
	assert.InDelta(t, 60, report.Average, 1e-12)
	assert.Equal(t, 2, report.Passed)
	assert.Equal(t, 1, report.Failed)

	_, err = school.GradeClass(nil, school.DefaultPassMark)
	assert.ErrorIs(t, err, school.ErrNoScores)
}

func TestBusBookRoster(t *testing.T) {
	book := school.NewBusBook(store.NewFileStore(t.TempDir()))

	require.NoError(t, book.AddRoute("North Loop", "Bus 12", "Pat"))
	require.NoError(t, book.AddRider("North Loop", "Zoe"))
	require.NoError(t, book.AddRider("North Loop", "Ada"))

	assert.ErrorIs(t, book.AddRider("North Loop", "zoe"), school.ErrDuplicateRider)
	assert.ErrorIs(t, book.AddRider("South Loop", "Max"), school.ErrNoSuchRoute)

	routes, err := book.Routes()
	require.NoError(t, err)
	require.Len(t, routes, 1)
	assert.Equal(t, []string{"Ada", "Zoe"}, routes[0].Riders)

	// Re-adding a route updates the bus but keeps the roster.
	require.NoError(t, book.AddRoute("North Loop", "Bus 7", "Sam"))
	routes, _ = book.Routes()
	assert.Equal(t, "Bus 7", routes[0].Bus)
	assert.Len(t, routes[0].Riders, 2)
}
