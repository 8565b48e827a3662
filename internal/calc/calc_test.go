package calc

import (
	"errors"
	"testing"
)

/* ─── BMI tests ──────────────────────────────────────────────────────── */

func TestBMI(t *testing.T) {
	cases := []struct {
		name     string
		heightCM float64
		weightKG float64
		want     float64
		category string
	}{
		{"normal", 175, 70, 22.9, "Normal Weight"},
		{"underweight", 175, 45, 14.7, "Underweight"},
		{"overweight", 180, 85, 26.2, "Overweight"},
		{"obese", 175, 110, 35.9, "Obese"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := BMI(tc.heightCM, tc.weightKG)
			if err != nil {
				t.Fatalf("BMI: %v", err)
			}
			if got.BMI != tc.want || got.Category != tc.category {
				t.Errorf("BMI = %+v, want %v %q", got, tc.want, tc.category)
			}
		})
	}
}

// TestBMICategory_Edges pins the band edges, including 24.9 counting as
// overweight.
func TestBMICategory_Edges(t *testing.T) {
	cases := map[float64]string{
		18.4: "Underweight",
		18.5: "Normal Weight",
		24.8: "Normal Weight",
		24.9: "Overweight",
		29.9: "Obese",
	}
	for bmi, want := range cases {
		if got := BMICategory(bmi); got != want {
			t.Errorf("BMICategory(%v) = %q, want %q", bmi, got, want)
		}
	}
}

func TestBMI_Invalid(t *testing.T) {
	for _, in := range [][2]float64{{0, 70}, {175, -1}} {
		if _, err := BMI(in[0], in[1]); !errors.Is(err, ErrInvalidInput) {
			t.Errorf("BMI(%v) err = %v, want ErrInvalidInput", in, err)
		}
	}
}

/* ─── Body fat tests ─────────────────────────────────────────────────── */

func TestBodyFat(t *testing.T) {
	male, err := BodyFat(BodyFatInput{Sex: Male, HeightCM: 178, NeckCM: 38, WaistCM: 85})
	if err != nil {
		t.Fatalf("male: %v", err)
	}
	if male.Percent != 16.4 || male.Category != "Fitness" {
		t.Errorf("male = %+v, want 16.4 Fitness", male)
	}

	female, err := BodyFat(BodyFatInput{Sex: Female, HeightCM: 165, NeckCM: 33, WaistCM: 75, HipCM: 100})
	if err != nil {
		t.Fatalf("female: %v", err)
	}
	if female.Percent != 29.4 || female.Category != "Average" {
		t.Errorf("female = %+v, want 29.4 Average", female)
	}
}

func TestBodyFat_Invalid(t *testing.T) {
	cases := []struct {
		name string
		in   BodyFatInput
	}{
		{"neck larger than waist", BodyFatInput{Sex: Male, HeightCM: 178, NeckCM: 90, WaistCM: 85}},
		{"female without hip", BodyFatInput{Sex: Female, HeightCM: 165, NeckCM: 33, WaistCM: 75}},
		{"missing height", BodyFatInput{Sex: Male, NeckCM: 38, WaistCM: 85}},
		{"unknown sex", BodyFatInput{Sex: "x", HeightCM: 178, NeckCM: 38, WaistCM: 85}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := BodyFat(tc.in); !errors.Is(err, ErrInvalidInput) {
				t.Errorf("err = %v, want ErrInvalidInput", err)
			}
		})
	}
}

func TestBodyFatCategory(t *testing.T) {
	if got := BodyFatCategory(Male, 5.9); got != "Essential Fat" {
		t.Errorf("male 5.9 = %q", got)
	}
	if got := BodyFatCategory(Female, 20.9); got != "Athlete" {
		t.Errorf("female 20.9 = %q", got)
	}
	if got := BodyFatCategory(Female, 32); got != "Obese" {
		t.Errorf("female 32 = %q", got)
	}
}

/* ─── Water, ideal weight, macros ────────────────────────────────────── */

func TestWaterIntake(t *testing.T) {
	got, err := WaterIntake(70, 30)
	if err != nil {
		t.Fatalf("WaterIntake: %v", err)
	}
	if got.Milliliters != 2750 || got.Liters != 2.75 || got.Cups != 11.7 {
		t.Errorf("WaterIntake = %+v, want 2750ml 2.75L 11.7 cups", got)
	}
	if _, err := WaterIntake(70, -5); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("negative exercise err = %v", err)
	}
}

func TestIdealWeight(t *testing.T) {
	male, err := IdealWeight(Male, 180)
	if err != nil {
		t.Fatalf("male: %v", err)
	}
	if want := (IdealWeightResult{72.6, 71.5, 75.0, 77.3}); male != want {
		t.Errorf("male = %+v, want %+v", male, want)
	}
	female, err := IdealWeight(Female, 165)
	if err != nil {
		t.Fatalf("female: %v", err)
	}
	if want := (IdealWeightResult{57.4, 59.8, 56.9, 56.4}); female != want {
		t.Errorf("female = %+v, want %+v", female, want)
	}
	// Under five feet the formulas extrapolate downward.
	short, _ := IdealWeight(Male, 150)
	if short.Robinson >= 52 {
		t.Errorf("short Robinson = %v, want below base 52", short.Robinson)
	}
}

func TestMacros_Presets(t *testing.T) {
	cases := []struct {
		preset MacroPreset
		want   [3]int
	}{
		// 2000*0.25/4, 2000*0.05/4, 2000*0.70/9
		{Keto, [3]int{125, 25, 156}},
		{LowCarb, [3]int{200, 100, 89}},
		{HighPro, [3]int{225, 175, 44}},
		{Balanced, [3]int{150, 200, 67}},
		{MacroPreset("unknown"), [3]int{150, 200, 67}},
	}
	for _, tc := range cases {
		t.Run(string(tc.preset), func(t *testing.T) {
			got, err := Macros(2000, tc.preset)
			if err != nil {
				t.Fatalf("Macros: %v", err)
			}
			g := got.Grams
			if [3]int{g.Protein, g.Carbs, g.Fats} != tc.want {
				t.Errorf("grams = %+v, want %v", g, tc.want)
			}
		})
	}
}

func TestParseSex(t *testing.T) {
	if s, err := ParseSex(" Female "); err != nil || s != Female {
		t.Errorf("ParseSex(Female) = %q, %v", s, err)
	}
	if _, err := ParseSex("robot"); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("ParseSex(robot) err = %v", err)
	}
}

func TestToMetric(t *testing.T) {
	kg, cm := ToMetric(Imperial, 220.462, 6)
	if kg < 99.999 || kg > 100.001 || cm != 182.88 {
		t.Errorf("ToMetric(imperial) = %v, %v", kg, cm)
	}
	if kg, cm := ToMetric(Metric, 70, 175); kg != 70 || cm != 175 {
		t.Errorf("ToMetric(metric) = %v, %v", kg, cm)
	}
}
