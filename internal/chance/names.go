package chance

import (
	"errors"
	"math/rand"
)

var firstNames = []string{
	"Avery", "Blake", "Casey", "Dana", "Elliot", "Frankie", "Gray", "Harper",
	"Indigo", "Jordan", "Kai", "Logan", "Morgan", "Noel", "Oakley", "Parker",
	"Quinn", "Riley", "Sage", "Taylor", "Uma", "Val", "Wren", "Xen", "Yuri", "Zion",
}

var lastNames = []string{
	"Adler", "Barnes", "Castillo", "Dietrich", "Emerson", "Flores", "Grady",
	"Hayashi", "Iqbal", "Jensen", "Kowalski", "Lindqvist", "Moreau", "Nakamura",
	"Okafor", "Petrov", "Quispe", "Rossi", "Svensson", "Tanaka", "Ueda",
	"Vargas", "Whitfield", "Xu", "Yilmaz", "Zhou",
}

// ErrNoNames indicates a request for zero or negative names.
var ErrNoNames = errors.New("name count must be positive")

// RandomNames returns n "First Last" names drawn from the built-in pools.
// Deterministic for a given seed; repeats are possible, as in any raffle.
func RandomNames(n int, seed int64) ([]string, error) {
	if n <= 0 {
		return nil, ErrNoNames
	}

	rng := rand.New(rand.NewSource(seed))
	out := make([]string, n)
	for i := range out {
		out[i] = firstNames[rng.Intn(len(firstNames))] + " " + lastNames[rng.Intn(len(lastNames))]
	}
	return out, nil
}
