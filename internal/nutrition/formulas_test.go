package nutrition

import (
	"math"
	"testing"
)

/* ─── BMR tests ──────────────────────────────────────────────────────── */

// TestBMR_KnownValues checks the Mifflin-St Jeor equation against hand-worked
// inputs for both constants.
func TestBMR_KnownValues(t *testing.T) {
	cases := []struct {
		name   string
		weight float64
		height float64
		age    int
		gender Gender
		want   float64
	}{
		// 700 + 1093.75 - 150 + 5
		{"male 70kg 175cm 30y", 70, 175, 30, Male, 1648.75},
		// 700 + 1031.25 - 150 - 161
		{"female 70kg 165cm 30y", 70, 165, 30, Female, 1420.25},
		// Unknown genders take the female constant.
		{"unknown gender", 70, 165, 30, Gender("other"), 1420.25},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := BMR(tc.weight, tc.height, tc.age, tc.gender); got != tc.want {
				t.Errorf("BMR = %v, want %v", got, tc.want)
			}
		})
	}
}

// TestBMR_MaleFemaleGap verifies the male constant is always 166 kcal above the
// female one for identical body measurements.
func TestBMR_MaleFemaleGap(t *testing.T) {
	for age := 10; age <= 100; age += 9 {
		for weight := 20.0; weight <= 300; weight += 37.5 {
			for height := 100.0; height <= 250; height += 25 {
				gap := BMR(weight, height, age, Male) - BMR(weight, height, age, Female)
				if math.Abs(gap-166) > 1e-9 {
					t.Fatalf("gap = %v for %vkg %vcm %dy, want 166", gap, weight, height, age)
				}
			}
		}
	}
}

/* ─── TDEE tests ─────────────────────────────────────────────────────── */

// TestTDEE_Multipliers verifies each activity factor with a fixed BMR.
func TestTDEE_Multipliers(t *testing.T) {
	cases := []struct {
		level ActivityLevel
		want  int
	}{
		{Sedentary, 1704},
		{Light, 1953},
		{Moderate, 2201},
		{Active, 2450},
		{VeryActive, 2698},
	}
	for _, tc := range cases {
		t.Run(string(tc.level), func(t *testing.T) {
			if got := TDEE(1420.25, tc.level); got != tc.want {
				t.Errorf("TDEE(%s) = %d, want %d", tc.level, got, tc.want)
			}
		})
	}
}

// TestTDEE_UnknownLevelFallsBack verifies that an unrecognised activity level
// uses the sedentary factor rather than failing.
func TestTDEE_UnknownLevelFallsBack(t *testing.T) {
	if got, want := TDEE(1500, ActivityLevel("couch")), TDEE(1500, Sedentary); got != want {
		t.Errorf("TDEE(unknown) = %d, want sedentary value %d", got, want)
	}
	if got := TDEE(1500, ""); got != 1800 {
		t.Errorf("TDEE(empty) = %d, want 1800", got)
	}
}

// TestTDEE_Monotonic verifies TDEE never decreases as activity increases.
func TestTDEE_Monotonic(t *testing.T) {
	for bmr := 800.0; bmr <= 3000; bmr += 123.4 {
		prev := 0
		for _, level := range ActivityLevels {
			got := TDEE(bmr, level)
			if got < prev {
				t.Fatalf("TDEE(%v, %s) = %d is below previous level %d", bmr, level, got, prev)
			}
			prev = got
		}
	}
}

/* ─── Goal and macro tests ───────────────────────────────────────────── */

func TestGoalAdjust(t *testing.T) {
	cases := []struct {
		goal Goal
		want int
	}{
		{Maintain, 2500},
		{WeightLoss, 2000},
		{ExtremeWeightLoss, 1500},
		{WeightGain, 3000},
		{Goal("Bulk"), 2500},
	}
	for _, tc := range cases {
		if got := tc.goal.Adjust(2500); got != tc.want {
			t.Errorf("%q.Adjust(2500) = %d, want %d", tc.goal, got, tc.want)
		}
	}
}

// TestMacroSplit_Ratios checks gram conversion for each goal family.
func TestMacroSplit_Ratios(t *testing.T) {
	cases := []struct {
		name     string
		calories int
		goal     Goal
		want     Macros
	}{
		// 2556*0.30/4=191.7, 2556*0.40/4=255.6, 2556*0.30/9=85.2
		{"maintain", 2556, Maintain, Macros{Protein: 192, Carbs: 256, Fats: 85}},
		// 2000*0.35/4=175, 2000*0.30/9=66.7
		{"weight loss", 2000, WeightLoss, Macros{Protein: 175, Carbs: 175, Fats: 67}},
		{"extreme loss", 2000, ExtremeWeightLoss, Macros{Protein: 175, Carbs: 175, Fats: 67}},
		// 3000*0.25/4=187.5, 3000*0.45/4=337.5, 3000*0.30/9=100
		{"weight gain", 3000, WeightGain, Macros{Protein: 188, Carbs: 338, Fats: 100}},
		{"unknown goal", 2556, Goal("?"), Macros{Protein: 192, Carbs: 256, Fats: 85}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := MacroSplit(tc.calories, tc.goal); got != tc.want {
				t.Errorf("MacroSplit(%d, %q) = %+v, want %+v", tc.calories, tc.goal, got, tc.want)
			}
		})
	}
}

// TestMacroSplit_EnergyBalance verifies the grams convert back to the input
// calories within the worst-case rounding error (0.5g each: 2+2+4.5 kcal).
func TestMacroSplit_EnergyBalance(t *testing.T) {
	for _, goal := range []Goal{Maintain, WeightLoss, ExtremeWeightLoss, WeightGain} {
		for cal := 1200; cal <= 4000; cal += 13 {
			got := MacroSplit(cal, goal).Calories()
			if diff := math.Abs(float64(got - cal)); diff > 8.5 {
				t.Fatalf("MacroSplit(%d, %q) energy = %d, off by %v", cal, goal, got, diff)
			}
		}
	}
}
