package planner

import (
	"sort"
	"strings"

	"toybox/internal/domain"
)

// Foods tallies like/dislike votes per food.
type Foods struct {
	store domain.PlannerStore
}

// NewFoods returns a food-preference tracker backed by the given store.
func NewFoods(s domain.PlannerStore) *Foods { return &Foods{store: s} }

// Vote records one like or dislike. Food names are case-insensitive.
func (f *Foods) Vote(food string, like bool) (domain.FoodVote, error) {
	food = strings.ToLower(strings.TrimSpace(food))
	if food == "" {
		return domain.FoodVote{}, ErrEmptyTitle
	}

	votes, err := f.store.LoadFoodVotes()
	if err != nil {
		return domain.FoodVote{}, err
	}

	idx := -1
	for i := range votes {
		if votes[i].Food == food {
			idx = i
			break
		}
	}
	if idx == -1 {
		votes = append(votes, domain.FoodVote{Food: food})
		idx = len(votes) - 1
	}
	if like {
		votes[idx].Likes++
	} else {
		votes[idx].Dislikes++
	}
	if err := f.store.SaveFoodVotes(votes); err != nil {
		return domain.FoodVote{}, err
	}
	return votes[idx], nil
}

// Ranking lists foods by net score (likes minus dislikes), best first.
// Ties break alphabetically.
func (f *Foods) Ranking() ([]domain.FoodVote, error) {
	votes, err := f.store.LoadFoodVotes()
	if err != nil {
		return nil, err
	}
	sort.Slice(votes, func(i, j int) bool {
		si := votes[i].Likes - votes[i].Dislikes
		sj := votes[j].Likes - votes[j].Dislikes
		if si != sj {
			return si > sj
		}
		return votes[i].Food < votes[j].Food
	})
	return votes, nil
}
