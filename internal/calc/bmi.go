package calc

// BMIResult is a body mass index with its category.
type BMIResult struct {
	BMI      float64 `json:"bmi"`
	Category string  `json:"category"`
	Message  string  `json:"message"`
}

// BMI computes weight / height² (kg/m²) rounded to one decimal. The category
// is taken from the rounded value.
func BMI(heightCM, weightKG float64) (BMIResult, error) {
	if !positive(heightCM, weightKG) {
		return BMIResult{}, invalid("height and weight must be positive numbers")
	}
	heightM := heightCM / 100
	bmi := round(weightKG/(heightM*heightM), 1)
	return BMIResult{
		BMI:      bmi,
		Category: BMICategory(bmi),
		Message:  "A healthy BMI range is 18.5 to 24.9.",
	}, nil
}

// BMICategory names the band a BMI value falls in.
func BMICategory(bmi float64) string {
	switch {
	case bmi < 18.5:
		return "Underweight"
	case bmi < 24.9:
		return "Normal Weight"
	case bmi < 29.9:
		return "Overweight"
	default:
		return "Obese"
	}
}
