// Package nutrition implements the rule-based diet recommendation engine:
// BMR/TDEE derivation, goal-adjusted calorie targets, safety clamping, macro
// split and best-fit diet plan selection.
package nutrition

import "math"

// Gender selects the Mifflin-St Jeor constant. Anything other than Male takes
// the female constant.
type Gender string

const (
	Male   Gender = "Male"
	Female Gender = "Female"
)

// ActivityLevel is the wire string for an activity multiplier.
type ActivityLevel string

const (
	Sedentary  ActivityLevel = "Sedentary"
	Light      ActivityLevel = "Light"
	Moderate   ActivityLevel = "Moderate"
	Active     ActivityLevel = "Active"
	VeryActive ActivityLevel = "Very Active"
)

// ActivityLevels lists the known levels from least to most active.
var ActivityLevels = []ActivityLevel{Sedentary, Light, Moderate, Active, VeryActive}

// Goal is the user's weight goal.
type Goal string

const (
	Maintain          Goal = "Maintain"
	WeightLoss        Goal = "Weight Loss"
	ExtremeWeightLoss Goal = "Extreme Weight Loss"
	WeightGain        Goal = "Weight Gain"
)

// DietType restricts plan selection. Any matches every plan.
type DietType string

const (
	Vegetarian    DietType = "Vegetarian"
	NonVegetarian DietType = "Non-Vegetarian"
	AnyDiet       DietType = "Any"
)

// Macros holds daily macronutrient targets in grams.
type Macros struct {
	Protein int `json:"protein"`
	Carbs   int `json:"carbs"`
	Fats    int `json:"fats"`
}

// Energy density in kcal per gram.
const (
	kcalPerGramProtein = 4
	kcalPerGramCarbs   = 4
	kcalPerGramFat     = 9
)

// BMR estimates basal metabolic rate with the Mifflin-St Jeor equation.
// Inputs are assumed validated; no bounds checking happens here.
func BMR(weightKG, heightCM float64, age int, gender Gender) float64 {
	base := 10*weightKG + 6.25*heightCM - 5*float64(age)
	if gender == Male {
		return base + 5
	}
	return base - 161
}

// Multiplier returns the TDEE factor for the level. Unknown levels fall back
// to the sedentary factor instead of failing.
func (a ActivityLevel) Multiplier() float64 {
	switch a {
	case Light:
		return 1.375
	case Moderate:
		return 1.55
	case Active:
		return 1.725
	case VeryActive:
		return 1.9
	default:
		return 1.2
	}
}

// TDEE scales bmr by the activity multiplier and rounds to whole kcal.
func TDEE(bmr float64, level ActivityLevel) int {
	return int(math.Round(bmr * level.Multiplier()))
}

// IsLoss reports whether the goal is one of the deficit goals.
func (g Goal) IsLoss() bool {
	return g == WeightLoss || g == ExtremeWeightLoss
}

// IsGain reports whether the goal is a surplus goal.
func (g Goal) IsGain() bool {
	return g == WeightGain
}

// Adjust applies the goal's daily calorie offset to tdee. Maintain and
// unrecognised goals leave it unchanged.
func (g Goal) Adjust(tdee int) int {
	switch g {
	case WeightLoss:
		return tdee - 500
	case ExtremeWeightLoss:
		return tdee - 1000
	case WeightGain:
		return tdee + 500
	default:
		return tdee
	}
}

// macroRatios returns the (protein, carbs, fats) calorie shares for a goal.
// Each triple sums to 1.0.
func macroRatios(goal Goal) (protein, carbs, fats float64) {
	switch {
	case goal.IsLoss():
		return 0.35, 0.35, 0.30
	case goal.IsGain():
		return 0.25, 0.45, 0.30
	default:
		return 0.30, 0.40, 0.30
	}
}

// MacroSplit converts a daily calorie budget to gram targets for the goal.
func MacroSplit(calories int, goal Goal) Macros {
	p, c, f := macroRatios(goal)
	return GramsFromRatios(calories, p, c, f)
}

// GramsFromRatios converts calorie shares to grams at 4/4/9 kcal per gram.
func GramsFromRatios(calories int, protein, carbs, fats float64) Macros {
	cal := float64(calories)
	return Macros{
		Protein: int(math.Round(cal * protein / kcalPerGramProtein)),
		Carbs:   int(math.Round(cal * carbs / kcalPerGramCarbs)),
		Fats:    int(math.Round(cal * fats / kcalPerGramFat)),
	}
}

// Calories returns the energy the gram targets add up to.
func (m Macros) Calories() int {
	return m.Protein*kcalPerGramProtein + m.Carbs*kcalPerGramCarbs + m.Fats*kcalPerGramFat
}
