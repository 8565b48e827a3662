package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fitcalc/internal/calc"
	"fitcalc/internal/nutrition"
)

// bindCalc binds the JSON body into req, writing a 400 on failure.
func bindCalc(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		apiError(c, http.StatusBadRequest, "invalid request body")
		return false
	}
	return true
}

// respondCalc writes a calculator result or its error.
func respondCalc(c *gin.Context, fn string, result any, err error) {
	if err != nil {
		failWith(c, fn, err, "calculation failed")
		return
	}
	c.JSON(http.StatusOK, result)
}

// calcBMI computes body mass index.
// POST /api/calc/bmi. Body: { "units"?, "weight", "height" }.
func (h *Handler) calcBMI(c *gin.Context) {
	var req bmiRequest
	if !bindCalc(c, &req) {
		return
	}
	kg, cm := calc.ToMetric(req.Units, req.Weight, req.Height)
	result, err := calc.BMI(cm, kg)
	respondCalc(c, "calcBMI", result, err)
}

// calcBodyFat estimates body fat with the US Navy method.
// POST /api/calc/body-fat. Body: { "sex", "height_cm", "neck_cm", "waist_cm", "hip_cm"? }.
func (h *Handler) calcBodyFat(c *gin.Context) {
	var req bodyFatRequest
	if !bindCalc(c, &req) {
		return
	}
	sex, err := calc.ParseSex(req.Sex)
	if err != nil {
		failWith(c, "calcBodyFat", err, "calculation failed")
		return
	}
	result, err := calc.BodyFat(calc.BodyFatInput{
		Sex: sex, HeightCM: req.HeightCM, NeckCM: req.NeckCM, WaistCM: req.WaistCM, HipCM: req.HipCM,
	})
	respondCalc(c, "calcBodyFat", result, err)
}

// calcWater recommends daily water intake.
// POST /api/calc/water. Body: { "units"?, "weight", "exercise_minutes"? }.
func (h *Handler) calcWater(c *gin.Context) {
	var req waterRequest
	if !bindCalc(c, &req) {
		return
	}
	kg, _ := calc.ToMetric(req.Units, req.Weight, 0)
	result, err := calc.WaterIntake(kg, req.ExerciseMinutes)
	respondCalc(c, "calcWater", result, err)
}

// calcIdealWeight returns the four ideal body weight estimates in kg.
// POST /api/calc/ideal-weight. Body: { "sex", "units"?, "height" }.
func (h *Handler) calcIdealWeight(c *gin.Context) {
	var req idealWeightRequest
	if !bindCalc(c, &req) {
		return
	}
	sex, err := calc.ParseSex(req.Sex)
	if err != nil {
		failWith(c, "calcIdealWeight", err, "calculation failed")
		return
	}
	_, cm := calc.ToMetric(req.Units, 0, req.Height)
	result, err := calc.IdealWeight(sex, cm)
	respondCalc(c, "calcIdealWeight", result, err)
}

// calcMacros splits calories by a named preset.
// POST /api/calc/macros. Body: { "calories", "preset"? }.
func (h *Handler) calcMacros(c *gin.Context) {
	var req macrosRequest
	if !bindCalc(c, &req) {
		return
	}
	if req.Preset == "" {
		req.Preset = calc.Balanced
	}
	result, err := calc.Macros(req.Calories, req.Preset)
	respondCalc(c, "calcMacros", result, err)
}

// calcProjection lists pace options toward a goal weight, dated from today.
// POST /api/calc/projection. Body: { "sex", "age", "units"?, "weight", "height",
// "goal_weight", "activity_level" }.
func (h *Handler) calcProjection(c *gin.Context) {
	var req projectionRequest
	if !bindCalc(c, &req) {
		return
	}
	sex, err := calc.ParseSex(req.Sex)
	if err != nil {
		failWith(c, "calcProjection", err, "calculation failed")
		return
	}
	kg, cm := calc.ToMetric(req.Units, req.Weight, req.Height)
	goalKG, _ := calc.ToMetric(req.Units, req.GoalWeight, 0)
	result, err := calc.Project(calc.ProjectionInput{
		Sex: sex, Age: req.Age, WeightKG: kg, HeightCM: cm, GoalWeightKG: goalKG,
		ActivityLevel: nutrition.ActivityLevel(req.ActivityLevel),
	}, h.now())
	respondCalc(c, "calcProjection", result, err)
}
