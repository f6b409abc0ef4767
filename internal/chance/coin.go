package chance

import (
	"errors"
	"math/rand"
)

// Side is one face of a coin.
type Side int

const (
	Heads Side = iota
	Tails
)

func (s Side) String() string {
	if s == Heads {
		return "heads"
	}
	return "tails"
}

// ErrNoFlips indicates a flip request for zero or negative coins.
var ErrNoFlips = errors.New("flip count must be positive")

// CoinResult captures a sequence of coin flips and its tally.
type CoinResult struct {
	Flips []Side
	Heads int
	Tails int
}

// FlipCoins flips n fair coins. The result is deterministic for a given seed.
func FlipCoins(n int, seed int64) (CoinResult, error) {
	if n <= 0 {
		return CoinResult{}, ErrNoFlips
	}

	rng := rand.New(rand.NewSource(seed))
	res := CoinResult{Flips: make([]Side, n)}
	for i := 0; i < n; i++ {
		side := Side(rng.Intn(2))
		res.Flips[i] = side
		if side == Heads {
			res.Heads++
		} else {
			res.Tails++
		}
	}
	return res, nil
}
