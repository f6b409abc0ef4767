package forecast

import (
	"errors"
	"math"
)

// ErrTooFewObservations indicates fewer than three data points.
var ErrTooFewObservations = errors.New("need at least 3 observations")

// ErrNonPositiveCount indicates a zero or negative case count, which the
// log-linear fit cannot accept.
var ErrNonPositiveCount = errors.New("case counts must be positive")

// ErrNoGrowth indicates a flat or shrinking series, for which a doubling
// time is undefined.
var ErrNoGrowth = errors.New("series is not growing; doubling time undefined")

// GrowthFit is an exponential fit cases(t) = exp(intercept + rate·t).
type GrowthFit struct {
	Rate         float64 // daily log growth rate
	Intercept    float64
	R2           float64
	DoublingDays float64 // ln 2 / Rate; +Inf when Rate <= 0
}

// Forecast is a projection h days past the series end.
type Forecast struct {
	Fit       GrowthFit
	Projected []float64 // length h, day by day
}

// FitGrowth fits log(counts) against the day index by ordinary least squares.
func FitGrowth(counts []float64) (GrowthFit, error) {
	if len(counts) < 3 {
		return GrowthFit{}, ErrTooFewObservations
	}

	logs := make([]float64, len(counts))
	for i, c := range counts {
		if c <= 0 {
			return GrowthFit{}, ErrNonPositiveCount
		}
		logs[i] = math.Log(c)
	}

	n := float64(len(logs))
	var sumX, sumY, sumXY, sumXX float64
	for i, y := range logs {
		x := float64(i)
		sumX += x
		sumY += y
		sumXY += x * y
		sumXX += x * x
	}
	denom := n*sumXX - sumX*sumX
	rate := (n*sumXY - sumX*sumY) / denom
	intercept := (sumY - rate*sumX) / n

	// R² against the mean of the log series.
	meanY := sumY / n
	var ssRes, ssTot float64
	for i, y := range logs {
		fit := intercept + rate*float64(i)
		ssRes += (y - fit) * (y - fit)
		ssTot += (y - meanY) * (y - meanY)
	}
	r2 := 1.0
	if ssTot > 0 {
		r2 = 1 - ssRes/ssTot
	}

	doubling := math.Inf(1)
	if rate > 0 {
		doubling = math.Ln2 / rate
	}

	return GrowthFit{Rate: rate, Intercept: intercept, R2: r2, DoublingDays: doubling}, nil
}

// Project extends the fitted curve h days beyond the last observation.
func Project(counts []float64, h int) (Forecast, error) {
	fit, err := FitGrowth(counts)
	if err != nil {
		return Forecast{}, err
	}
	if h < 0 {
		h = 0
	}

	out := make([]float64, h)
	last := len(counts) - 1
	for d := 1; d <= h; d++ {
		out[d-1] = math.Exp(fit.Intercept + fit.Rate*float64(last+d))
	}
	return Forecast{Fit: fit, Projected: out}, nil
}
