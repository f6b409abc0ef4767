package chance

import (
	"errors"
	"fmt"
	"math/rand"
	"strconv"
	"strings"
)

// ErrMissingDice indicates a roll request had no dice specified.
var ErrMissingDice = errors.New("at least one die must be provided")

// ErrInvalidDiceSpec indicates a die specification has invalid fields.
var ErrInvalidDiceSpec = errors.New("dice must have positive sides and count")

// DiceSpec describes a die to roll and how many times to roll it.
type DiceSpec struct {
	Sides int
	Count int
}

// ParseSpec parses a dice expression like "2d6" or "d20".
func ParseSpec(expr string) (DiceSpec, error) {
	count, sides, found := strings.Cut(strings.ToLower(expr), "d")
	if !found {
		return DiceSpec{}, fmt.Errorf("%w: %q", ErrInvalidDiceSpec, expr)
	}
	spec := DiceSpec{Count: 1}
	if count != "" {
		n, err := strconv.Atoi(count)
		if err != nil {
			return DiceSpec{}, fmt.Errorf("%w: %q", ErrInvalidDiceSpec, expr)
		}
		spec.Count = n
	}
	n, err := strconv.Atoi(sides)
	if err != nil {
		return DiceSpec{}, fmt.Errorf("%w: %q", ErrInvalidDiceSpec, expr)
	}
	spec.Sides = n
	if spec.Sides <= 0 || spec.Count <= 0 {
		return DiceSpec{}, fmt.Errorf("%w: %q", ErrInvalidDiceSpec, expr)
	}
	return spec, nil
}

// DieRoll captures the results for a single dice spec.
type DieRoll struct {
	Sides   int
	Results []int
	Total   int
}

// RollResult captures the results from rolling multiple dice.
type RollResult struct {
	Rolls []DieRoll
	Total int
}

// RollDice rolls every spec in order and aggregates per-spec and grand
// totals. Rolls are deterministic with respect to seed: the same seed and
// the same specs (including order) always produce the same result.
func RollDice(specs []DiceSpec, seed int64) (RollResult, error) {
	if len(specs) == 0 {
		return RollResult{}, ErrMissingDice
	}

	rng := rand.New(rand.NewSource(seed))
	rolls := make([]DieRoll, 0, len(specs))
	total := 0

	for _, spec := range specs {
		if spec.Sides <= 0 || spec.Count <= 0 {
			return RollResult{}, ErrInvalidDiceSpec
		}

		results := make([]int, spec.Count)
		rollTotal := 0
		for i := 0; i < spec.Count; i++ {
			value := rng.Intn(spec.Sides) + 1
			results[i] = value
			rollTotal += value
		}

		rolls = append(rolls, DieRoll{Sides: spec.Sides, Results: results, Total: rollTotal})
		total += rollTotal
	}

	return RollResult{Rolls: rolls, Total: total}, nil
}
