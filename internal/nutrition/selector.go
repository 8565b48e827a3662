package nutrition

import (
	"errors"
	"math"
)

// inRangeBonus outweighs any calorie distance a real plan can have, so a plan
// designed for the user's weight always beats one that is not.
const inRangeBonus = 1000

// fallbackIndex is the plan returned when filtering leaves no candidates.
const fallbackIndex = 1

// ErrCatalogTooSmall is returned by NewSelector when the catalog cannot hold
// the fallback record.
var ErrCatalogTooSmall = errors.New("nutrition: catalog needs at least two plans")

// Selector picks the best-fit plan from a fixed catalog.
type Selector struct {
	plans []DietPlan
}

// NewSelector builds a selector over plans. The slice is copied; order is
// significant for tie-breaking and for the fallback at index 1.
func NewSelector(plans []DietPlan) (*Selector, error) {
	if len(plans) <= fallbackIndex {
		return nil, ErrCatalogTooSmall
	}
	cp := make([]DietPlan, len(plans))
	for i, p := range plans {
		cp[i] = p.Clone()
	}
	return &Selector{plans: cp}, nil
}

var defaultSelector = &Selector{plans: catalog}

// SelectPlan picks the best-fit plan from the built-in catalog.
func SelectPlan(weightKG float64, diet DietType, targetCalories int) DietPlan {
	return defaultSelector.Select(weightKG, diet, targetCalories)
}

// matches reports whether a plan is a candidate for the requested diet type.
// Any and unrecognised values accept every plan.
func matches(diet DietType, plan DietPlan) bool {
	switch diet {
	case Vegetarian, NonVegetarian:
		return plan.DietType == diet
	default:
		return true
	}
}

// Score rates a plan for a user: a bonus when their weight falls inside the
// plan's band, minus the distance between calorie targets.
func Score(plan DietPlan, weightKG float64, targetCalories int) int {
	score := 0
	if plan.WeightRange.Contains(weightKG) {
		score += inRangeBonus
	}
	diff := plan.TargetCalories - targetCalories
	if diff < 0 {
		diff = -diff
	}
	return score - diff
}

// Select returns the highest scoring candidate. Ties keep the earliest plan in
// catalog order. When no plan matches the diet type the record at index 1 of
// the unfiltered catalog is returned.
func (s *Selector) Select(weightKG float64, diet DietType, targetCalories int) DietPlan {
	best := -1
	bestScore := math.MinInt
	for i, plan := range s.plans {
		if !matches(diet, plan) {
			continue
		}
		if score := Score(plan, weightKG, targetCalories); best < 0 || score > bestScore {
			best, bestScore = i, score
		}
	}
	if best < 0 {
		best = fallbackIndex
	}
	return s.plans[best].Clone()
}
