package chance

import (
	"errors"
	"math/rand"
)

// ErrEmptyPlaylist indicates a shuffle of an empty playlist.
var ErrEmptyPlaylist = errors.New("playlist is empty")

// ErrRangeInverted indicates lo > hi in a random integer request.
var ErrRangeInverted = errors.New("lower bound exceeds upper bound")

// ShufflePlaylist returns songs in a shuffled order without mutating the
// input. Deterministic for a given seed.
func ShufflePlaylist(songs []string, seed int64) ([]string, error) {
	if len(songs) == 0 {
		return nil, ErrEmptyPlaylist
	}

	out := append([]string(nil), songs...)
	rng := rand.New(rand.NewSource(seed))
	rng.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out, nil
}

// RandomInt returns a uniform integer in [lo, hi], inclusive on both ends
// the way the widget it replaces behaved. Deterministic for a given seed.
func RandomInt(lo, hi int, seed int64) (int, error) {
	if lo > hi {
		return 0, ErrRangeInverted
	}

	rng := rand.New(rand.NewSource(seed))
	return lo + rng.Intn(hi-lo+1), nil
}
