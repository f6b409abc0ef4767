package forecast

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFitGrowthRecoversExactExponential(t *testing.T) {
	// cases(t) = 100 · e^(0.1·t): the fit should recover rate and intercept.
	counts := make([]float64, 20)
	for i := range counts {
		counts[i] = 100 * math.Exp(0.1*float64(i))
	}

	fit, err := FitGrowth(counts)
	require.NoError(t, err)
	assert.InDelta(t, 0.1, fit.Rate, 1e-9)
	assert.InDelta(t, math.Log(100), fit.Intercept, 1e-9)
	assert.InDelta(t, 1.0, fit.R2, 1e-9)
	assert.InDelta(t, math.Ln2/0.1, fit.DoublingDays, 1e-6)
}

func TestProjectContinuesTheCurve(t *testing.T) {
	counts := make([]float64, 10)
	for i := range counts {
		counts[i] = 50 * math.Exp(0.2*float64(i))
	}

	fc, err := Project(counts, 3)
	require.NoError(t, err)
	require.Len(t, fc.Projected, 3)
	for d, want := range []float64{
		50 * math.Exp(0.2*10),
		50 * math.Exp(0.2*11),
		50 * math.Exp(0.2*12),
	} {
		assert.InDelta(t, want, fc.Projected[d], want*1e-6)
	}
}

func TestFitGrowthRejectsBadInput(t *testing.T) {
	_, err := FitGrowth([]float64{1, 2})
	assert.ErrorIs(t, err, ErrTooFewObservations)

	_, err = FitGrowth([]float64{1, 0, 2})
	assert.ErrorIs(t, err, ErrNonPositiveCount)
}

func TestFitGrowthFlatSeries(t *testing.T) {
	fit, err := FitGrowth([]float64{100, 100, 100, 100})
	require.NoError(t, err)
	assert.InDelta(t, 0, fit.Rate, 1e-12)
	assert.True(t, math.IsInf(fit.DoublingDays, 1))
}

func TestAnalyzeRental(t *testing.T) {
	a, err := AnalyzeRental(Property{
		Price:       200_000,
		DownPayment: 50_000,
		AnnualRent:  24_000,
		Expenses:    6_000,
		Vacancy:     0.05,
	})
	require.NoError(t, err)

	assert.InDelta(t, 22_800, a.EffectiveRent, 1e-9)
	assert.InDelta(t, 16_800, a.NOI, 1e-9)
	assert.InDelta(t, 0.084, a.CapRate, 1e-9)
	assert.InDelta(t, 0.12, a.GrossYield, 1e-9)
	assert.InDelta(t, 0.336, a.CashOnCash, 1e-9)
}

func TestAnalyzeRentalAllCash(t *testing.T) {
	a, err := AnalyzeRental(Property{Price: 100_000, AnnualRent: 12_000})
	require.NoError(t, err)
	assert.InDelta(t, a.CapRate, a.CashOnCash, 1e-12)
}

func TestAnalyzeRentalRejectsBadInput(t *testing.T) {
	_, err := AnalyzeRental(Property{Price: 0, AnnualRent: 1})
	assert.ErrorIs(t, err, ErrBadProperty)

	_, err = AnalyzeRental(Property{Price: 1, AnnualRent: 1, Vacancy: 1})
	assert.ErrorIs(t, err, ErrBadVacancy)
}
