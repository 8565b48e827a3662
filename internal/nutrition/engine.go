package nutrition

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
)

// Profile is the input to ComputePlan. TrackerData is optional; when it holds
// at least three samples the calorie target is recalibrated from the trend.
type Profile struct {
	Age           int            `json:"age"`
	Weight        float64        `json:"weight"` // kg
	Height        float64        `json:"height"` // cm
	Gender        Gender         `json:"gender"`
	ActivityLevel ActivityLevel  `json:"activityLevel"`
	Goal          Goal           `json:"goal"`
	DietType      DietType       `json:"dietType"`
	TrackerData   []WeightSample `json:"trackerData,omitempty"`
}

// Step is one entry of the explanation trace.
type Step struct {
	Step   string `json:"step"`
	Value  string `json:"value"`
	Detail string `json:"detail"`
}

// Result is the outcome of ComputePlan. A failed result carries only Error.
type Result struct {
	Success        bool     `json:"success"`
	Error          string   `json:"error,omitempty"`
	BMR            int      `json:"bmr"`
	TDEE           int      `json:"tdee"`
	TargetCalories int      `json:"targetCalories"`
	Macros         Macros   `json:"macros"`
	Plan           DietPlan `json:"plan"`
	Warning        *string  `json:"warning"`
	Explanation    []Step   `json:"explanation"`
	Recalibration  string   `json:"recalibration,omitempty"`
}

// MarshalJSON emits {success:false, error} for failures and the full shape
// otherwise.
func (r Result) MarshalJSON() ([]byte, error) {
	if !r.Success {
		return json.Marshal(struct {
			Success bool   `json:"success"`
			Error   string `json:"error"`
		}{false, r.Error})
	}
	type full Result
	return json.Marshal(full(r))
}

/* ─── Validation ─────────────────────────────────────────────────────── */

// ValidationError reports the first out-of-range profile field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// Profile bounds, inclusive.
const (
	minAge, maxAge       = 10, 100
	minWeight, maxWeight = 20.0, 300.0
	minHeight, maxHeight = 100.0, 250.0
)

// inRange is written so that NaN fails.
func inRange(v, lo, hi float64) bool {
	return v >= lo && v <= hi
}

// Validate checks age, weight and height in that order and returns a
// *ValidationError for the first failure.
func Validate(p Profile) error {
	if !inRange(float64(p.Age), minAge, maxAge) {
		return &ValidationError{Field: "age", Message: "Age must be between 10-100 years"}
	}
	if !inRange(p.Weight, minWeight, maxWeight) {
		return &ValidationError{Field: "weight", Message: "Weight must be between 20-300 kg"}
	}
	if !inRange(p.Height, minHeight, maxHeight) {
		return &ValidationError{Field: "height", Message: "Height must be between 100-250 cm"}
	}
	return nil
}

/* ─── Orchestration ──────────────────────────────────────────────────── */

const (
	underweightBMI = 18.5
	overweightBMI  = 30

	underweightWarning = "Your BMI suggests you may be underweight. Consult a healthcare professional."
	overweightWarning  = "Your BMI suggests you may be overweight. This is educational only - consult a professional."
)

// bmiWarning returns the advisory for a BMI outside the healthy band, or nil.
func bmiWarning(weightKG, heightCM float64) *string {
	heightM := heightCM / 100
	bmi := weightKG / (heightM * heightM)
	var w string
	switch {
	case bmi < underweightBMI:
		w = underweightWarning
	case bmi > overweightBMI:
		w = overweightWarning
	default:
		return nil
	}
	return &w
}

// formatNumber renders a float the shortest way, so 70 prints as "70".
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// ComputePlan runs the full pipeline for one profile. It never mutates shared
// state, so concurrent calls are safe and identical profiles yield identical
// results.
func ComputePlan(p Profile) Result {
	return defaultSelector.ComputePlan(p)
}

// ComputePlan runs the pipeline choosing plans from s's catalog.
func (s *Selector) ComputePlan(p Profile) Result {
	if err := Validate(p); err != nil {
		return Result{Success: false, Error: err.Error()}
	}

	bmr := BMR(p.Weight, p.Height, p.Age, p.Gender)
	tdee := TDEE(bmr, p.ActivityLevel)
	target, note := Recalibrate(p.Goal.Adjust(tdee), p.Goal, p.TrackerData)
	safe := Clamp(target, p.Age, p.Weight, p.Gender)
	macros := MacroSplit(safe, p.Goal)
	plan := s.Select(p.Weight, p.DietType, safe)

	roundedBMR := int(math.Round(bmr))
	return Result{
		Success:        true,
		BMR:            roundedBMR,
		TDEE:           tdee,
		TargetCalories: safe,
		Macros:         macros,
		Plan:           plan,
		Warning:        bmiWarning(p.Weight, p.Height),
		Recalibration:  note,
		Explanation: []Step{
			{
				Step:   "BMR",
				Value:  fmt.Sprintf("%d kcal/day", roundedBMR),
				Detail: fmt.Sprintf("Mifflin-St Jeor for %s, %dy, %skg, %scm", p.Gender, p.Age, formatNumber(p.Weight), formatNumber(p.Height)),
			},
			{
				Step:   "TDEE",
				Value:  fmt.Sprintf("%d kcal/day", tdee),
				Detail: fmt.Sprintf("Activity: %s", p.ActivityLevel),
			},
			{
				Step:   "Goal",
				Value:  string(p.Goal),
				Detail: fmt.Sprintf("Target: %d kcal/day", safe),
			},
			{
				Step:   "Plan",
				Value:  plan.Name,
				Detail: fmt.Sprintf("%s, %d kcal base", p.DietType, plan.TargetCalories),
			},
		},
	}
}
