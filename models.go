package main

import (
	"fitcalc/internal/calc"
)

/* ─── Calculator requests ────────────────────────────────────────────── */

// Weight and height are read in the request's units: kg/cm for metric (the
// default), lbs and decimal feet for imperial.

// bmiRequest is the request body for POST /api/calc/bmi.
type bmiRequest struct {
	Units  calc.Units `json:"units"`
	Weight float64    `json:"weight"`
	Height float64    `json:"height"`
}

// bodyFatRequest is the request body for POST /api/calc/body-fat.
// Circumferences are always centimeters.
type bodyFatRequest struct {
	Sex      string  `json:"sex"`
	HeightCM float64 `json:"height_cm"`
	NeckCM   float64 `json:"neck_cm"`
	WaistCM  float64 `json:"waist_cm"`
	HipCM    float64 `json:"hip_cm"`
}

// waterRequest is the request body for POST /api/calc/water.
type waterRequest struct {
	Units           calc.Units `json:"units"`
	Weight          float64    `json:"weight"`
	ExerciseMinutes float64    `json:"exercise_minutes"`
}

// idealWeightRequest is the request body for POST /api/calc/ideal-weight.
type idealWeightRequest struct {
	Sex    string     `json:"sex"`
	Units  calc.Units `json:"units"`
	Height float64    `json:"height"`
}

// macrosRequest is the request body for POST /api/calc/macros.
type macrosRequest struct {
	Calories int              `json:"calories"`
	Preset   calc.MacroPreset `json:"preset"`
}

// projectionRequest is the request body for POST /api/calc/projection.
// GoalWeight uses the same unit as Weight.
type projectionRequest struct {
	Sex           string     `json:"sex"`
	Age           int        `json:"age"`
	Units         calc.Units `json:"units"`
	Weight        float64    `json:"weight"`
	Height        float64    `json:"height"`
	GoalWeight    float64    `json:"goal_weight"`
	ActivityLevel string     `json:"activity_level"`
}

/* ─── Weight log requests ────────────────────────────────────────────── */

// createWeightEntryRequest is the request body for POST /api/weight-log.
type createWeightEntryRequest struct {
	Date     string  `json:"date"`
	WeightKG float64 `json:"weight_kg"`
}
