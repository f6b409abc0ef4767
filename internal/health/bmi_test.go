package health

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssessFormula(t *testing.T) {
	// 180cm, 81kg: BMI = 81 / 1.8² = 25.0 exactly.
	r, err := Assess(180, 81, 30, Male)
	require.NoError(t, err)
	assert.InDelta(t, 25.0, r.BMI, 1e-12)
	assert.Equal(t, "overweight", r.Category) // 25 is the first overweight value

	// Mifflin-St Jeor: 10·81 + 6.25·180 - 5·30 + 5 = 1790.
	assert.InDelta(t, 1790, r.BMR, 1e-9)

	rf, err := Assess(180, 81, 30, Female)
	require.NoError(t, err)
	assert.InDelta(t, 1624, rf.BMR, 1e-9)
}

func TestAssessCategories(t *testing.T) {
	tcs := []struct {
		weight   float64
		category string
	}{
		{50, "underweight"}, // BMI 15.4
		{70, "normal"},      // BMI 21.6
		{85, "overweight"},  // BMI 26.2
		{100, "obese"},      // BMI 30.9
	}
	for _, tc := range tcs {
		r, err := Assess(180, tc.weight, 30, Male)
		require.NoError(t, err)
		assert.Equal(t, tc.category, r.Category, "weight %.0f", tc.weight)
	}
}

func TestAssessRejectsBadInput(t *testing.T) {
	_, err := Assess(0, 70, 30, Male)
	assert.ErrorIs(t, err, ErrBadMeasurement)
	_, err = Assess(180, -1, 30, Male)
	assert.ErrorIs(t, err, ErrBadMeasurement)
	_, err = Assess(180, 70, 0, Male)
	assert.ErrorIs(t, err, ErrBadAge)
}
