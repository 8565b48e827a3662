package calc

import (
	"strings"

	"fitcalc/internal/nutrition"
)

// MacroPreset names a macro distribution.
type MacroPreset string

const (
	Balanced MacroPreset = "balanced"
	Zone     MacroPreset = "zone"
	Keto     MacroPreset = "keto"
	LowCarb  MacroPreset = "lowcarb"
	HighPro  MacroPreset = "highpro"
)

// MacroShares are calorie fractions per macronutrient.
type MacroShares struct {
	Protein float64 `json:"protein"`
	Carbs   float64 `json:"carbs"`
	Fats    float64 `json:"fats"`
}

// Shares returns the distribution for a preset. Zone, balanced and anything
// unrecognised get 30/40/30.
func (p MacroPreset) Shares() MacroShares {
	switch MacroPreset(strings.ToLower(string(p))) {
	case Keto:
		return MacroShares{0.25, 0.05, 0.70}
	case LowCarb:
		return MacroShares{0.40, 0.20, 0.40}
	case HighPro:
		return MacroShares{0.45, 0.35, 0.20}
	default:
		return MacroShares{0.30, 0.40, 0.30}
	}
}

// MacroResult is a preset split in percent and grams.
type MacroResult struct {
	Preset   MacroPreset      `json:"preset"`
	Calories int              `json:"calories"`
	Percent  MacroShares      `json:"percent"`
	Grams    nutrition.Macros `json:"grams"`
}

// Macros splits calories by a preset distribution.
func Macros(calories int, preset MacroPreset) (MacroResult, error) {
	if calories <= 0 {
		return MacroResult{}, invalid("calories must be a positive number")
	}
	s := preset.Shares()
	return MacroResult{
		Preset:   preset,
		Calories: calories,
		Percent:  MacroShares{round(s.Protein*100, 0), round(s.Carbs*100, 0), round(s.Fats*100, 0)},
		Grams:    nutrition.GramsFromRatios(calories, s.Protein, s.Carbs, s.Fats),
	}, nil
}
