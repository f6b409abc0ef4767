package sim

import "errors"

// Doneness is how far along the egg is.
type Doneness int

const (
	Raw Doneness = iota
	Runny
	OverEasy
	WellDone
	Burnt
)

func (d Doneness) String() string {
	switch d {
	case Raw:
		return "raw"
	case Runny:
		return "runny"
	case OverEasy:
		return "over easy"
	case WellDone:
		return "well done"
	default:
		return "burnt"
	}
}

// ErrUnknownDoneness indicates an unrecognised doneness name.
var ErrUnknownDoneness = errors.New(`doneness must be "runny", "over-easy", or "well-done"`)

// ParseDoneness maps a flag value to a cookable target.
func ParseDoneness(s string) (Doneness, error) {
	switch s {
	case "runny":
		return Runny, nil
	case "over-easy":
		return OverEasy, nil
	case "well-done":
		return WellDone, nil
	default:
		return Raw, ErrUnknownDoneness
	}
}

// Doneness thresholds in cumulative pan seconds.
const (
	runnyAt    = 30
	overEasyAt = 60
	wellDoneAt = 120
	burntAt    = 180
)

// ErrNegativeHeat indicates stepping the pan backwards.
var ErrNegativeHeat = errors.New("cannot un-fry an egg")

// Pan fries one egg. Zero value is a cold pan with a raw egg.
type Pan struct {
	seconds int
	flipped bool
}

// Step advances the pan clock and returns the current doneness.
func (p *Pan) Step(seconds int) (Doneness, error) {
	if seconds < 0 {
		return p.Doneness(), ErrNegativeHeat
	}
	p.seconds += seconds
	return p.Doneness(), nil
}

// Flip turns the egg. An egg never flipped tops out at runny no matter how
// long the underside cooks, until it burns outright.
func (p *Pan) Flip() { p.flipped = true }

// Seconds reports total time on the heat.
func (p *Pan) Seconds() int { return p.seconds }

// Flipped reports whether the egg has been turned over.
func (p *Pan) Flipped() bool { return p.flipped }

// Doneness maps cumulative seconds to a stage.
func (p *Pan) Doneness() Doneness {
	switch {
	case p.seconds < runnyAt:
		return Raw
	case p.seconds < overEasyAt:
		return Runny
	case !p.flipped:
		if p.seconds >= burntAt {
			return Burnt
		}
		return Runny
	case p.seconds < wellDoneAt:
		return OverEasy
	case p.seconds < burntAt:
		return WellDone
	default:
		return Burnt
	}
}
