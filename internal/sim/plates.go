package sim

import (
	"errors"
	"math/rand"
	"sort"
	"strings"
)

// ErrNoPlates indicates a scan over zero or negative plates.
var ErrNoPlates = errors.New("plate count must be positive")

const (
	plateLetters = "ABCDEFGHJKLMNPRSTUVWXYZ" // no I, O, Q: too close to digits
	plateDigits  = "0123456789"
)

// RandomPlate draws one plate in LLL-DDD format from rng.
func RandomPlate(rng *rand.Rand) string {
	var b strings.Builder
	for i := 0; i < 3; i++ {
		b.WriteByte(plateLetters[rng.Intn(len(plateLetters))])
	}
	b.WriteByte('-')
	for i := 0; i < 3; i++ {
		b.WriteByte(plateDigits[rng.Intn(len(plateDigits))])
	}
	return b.String()
}

// Detection is one camera hit on a watchlisted plate.
type Detection struct {
	Index int    // position in the traffic stream
	Plate string // what actually passed
	Read  string // what the camera reported
}

// ScanReport summarises a detector run.
type ScanReport struct {
	Passed     int
	Watched    int // watchlisted plates that passed
	Detections []Detection
	HitRate    float64 // detections / watched; 1.0 when nothing watched passed
}

// Detector matches simulated traffic against a watchlist with an imperfect
// camera. Accuracy is the per-plate probability of a clean read.
type Detector struct {
	watchlist map[string]bool
	accuracy  float64
}

// NewDetector builds a detector. Accuracy outside (0, 1] is clamped to 1.
func NewDetector(watchlist []string, accuracy float64) *Detector {
	if accuracy <= 0 || accuracy > 1 {
		accuracy = 1
	}
	wl := make(map[string]bool, len(watchlist))
	for _, p := range watchlist {
		wl[strings.ToUpper(strings.TrimSpace(p))] = true
	}
	return &Detector{watchlist: wl, accuracy: accuracy}
}

// Scan simulates n plates passing the camera. Every fifth plate is forced
// onto the watchlist when one exists, so short runs still exercise matches.
// Deterministic for a given seed.
func (d *Detector) Scan(n int, seed int64) (ScanReport, error) {
	if n <= 0 {
		return ScanReport{}, ErrNoPlates
	}

	rng := rand.New(rand.NewSource(seed))
	watched := make([]string, 0, len(d.watchlist))
	for p := range d.watchlist {
		watched = append(watched, p)
	}
	// Map iteration order is random; sort for replayability.
	sort.Strings(watched)

	report := ScanReport{Passed: n}
	for i := 0; i < n; i++ {
		plate := RandomPlate(rng)
		if len(watched) > 0 && i%5 == 4 {
			plate = watched[rng.Intn(len(watched))]
		}

		read := plate
		if rng.Float64() > d.accuracy {
			read = garble(plate, rng)
		}

		if d.watchlist[plate] {
			report.Watched++
			if d.watchlist[read] {
				report.Detections = append(report.Detections, Detection{Index: i, Plate: plate, Read: read})
			}
		}
	}

	report.HitRate = 1
	if report.Watched > 0 {
		report.HitRate = float64(len(report.Detections)) / float64(report.Watched)
	}
	return report, nil
}

// garble swaps one character for a neighbour in its class.
func garble(plate string, rng *rand.Rand) string {
	b := []byte(plate)
	i := rng.Intn(len(b))
	if b[i] == '-' {
		i = 0
	}
	if b[i] >= '0' && b[i] <= '9' {
		b[i] = plateDigits[rng.Intn(len(plateDigits))]
	} else {
		b[i] = plateLetters[rng.Intn(len(plateLetters))]
	}
	return string(b)
}
