package chance

import (
	"errors"
	"math/rand"
)

// ErrEmptyTable indicates a loot roll against a table with no positive weights.
var ErrEmptyTable = errors.New("loot table must have at least one positive weight")

// Drop is one loot table entry. Weight is relative, not a percentage.
type Drop struct {
	Name   string
	Rarity string
	Weight int
}

// LootTable is a weighted collection of drops.
type LootTable []Drop

// DefaultLootTable mirrors the usual toy distribution: commons dominate,
// one legendary at the tail.
func DefaultLootTable() LootTable {
	return LootTable{
		{Name: "Copper Coin", Rarity: "common", Weight: 50},
		{Name: "Health Potion", Rarity: "common", Weight: 25},
		{Name: "Steel Sword", Rarity: "uncommon", Weight: 12},
		{Name: "Elven Bow", Rarity: "rare", Weight: 8},
		{Name: "Wizard Staff", Rarity: "epic", Weight: 4},
		{Name: "Dragon Scale", Rarity: "legendary", Weight: 1},
	}
}

// Roll draws n items from the table, weighted by Drop.Weight.
// Deterministic for a given seed.
func (t LootTable) Roll(n int, seed int64) ([]Drop, error) {
	total := 0
	for _, d := range t {
		if d.Weight > 0 {
			total += d.Weight
		}
	}
	if total == 0 {
		return nil, ErrEmptyTable
	}
	if n <= 0 {
		return nil, nil
	}

	rng := rand.New(rand.NewSource(seed))
	out := make([]Drop, 0, n)
	for i := 0; i < n; i++ {
		roll := rng.Intn(total)
		for _, d := range t {
			if d.Weight <= 0 {
				continue
			}
			if roll < d.Weight {
				out = append(out, d)
				break
			}
			roll -= d.Weight
		}
	}
	return out, nil
}
