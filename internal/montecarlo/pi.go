package montecarlo

import (
	"errors"
	"math"
	"math/rand"
)

// ErrNoSamples indicates an estimate request with no samples.
var ErrNoSamples = errors.New("sample count must be positive")

// Estimate is the result of one π estimation run.
type Estimate struct {
	Samples  int
	Inside   int
	Pi       float64
	AbsError float64 // |Pi - math.Pi|
	CI95     float64 // half-width of the 95% confidence interval
}

// EstimatePi draws n uniform points in [0,1)² and counts the fraction that
// land inside the quarter circle. Deterministic for a given seed: the
// estimate is a pure function of (seed, n).
func EstimatePi(n int, seed int64) (Estimate, error) {
	if n <= 0 {
		return Estimate{}, ErrNoSamples
	}

	rng := rand.New(rand.NewSource(seed))
	inside := 0
	for i := 0; i < n; i++ {
		x, y := rng.Float64(), rng.Float64()
		if x*x+y*y <= 1 {
			inside++
		}
	}

	p := float64(inside) / float64(n)
	pi := 4 * p

	// Binomial proportion interval, scaled by 4 like the estimate itself.
	half := 4 * 1.96 * math.Sqrt(p*(1-p)/float64(n))

	return Estimate{
		Samples:  n,
		Inside:   inside,
		Pi:       pi,
		AbsError: math.Abs(pi - math.Pi),
		CI95:     half,
	}, nil
}
