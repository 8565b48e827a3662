package calc

const (
	waterMLPerKG          = 35
	waterMLPerExerciseMin = 10
	mlPerCup              = 236
)

// WaterResult is a recommended daily water intake.
type WaterResult struct {
	Milliliters float64 `json:"milliliters"`
	Liters      float64 `json:"liters"`
	Cups        float64 `json:"cups"`
}

// WaterIntake recommends 35 ml per kg of body weight plus 10 ml per minute of
// exercise. Liters are rounded to two decimals and cups to one.
func WaterIntake(weightKG, exerciseMinutes float64) (WaterResult, error) {
	if !positive(weightKG) {
		return WaterResult{}, invalid("weight must be a positive number")
	}
	if exerciseMinutes < 0 {
		return WaterResult{}, invalid("exercise minutes cannot be negative")
	}
	ml := weightKG*waterMLPerKG + exerciseMinutes*waterMLPerExerciseMin
	return WaterResult{
		Milliliters: round(ml, 0),
		Liters:      round(ml/1000, 2),
		Cups:        round(ml/mlPerCup, 1),
	}, nil
}
