package calc

import "math"

// BodyFatInput holds tape measurements in centimeters. Hip is only used for
// females.
type BodyFatInput struct {
	Sex      Sex     `json:"sex"`
	HeightCM float64 `json:"height_cm"`
	NeckCM   float64 `json:"neck_cm"`
	WaistCM  float64 `json:"waist_cm"`
	HipCM    float64 `json:"hip_cm"`
}

// BodyFatResult is an estimated body fat percentage and its ACE category.
type BodyFatResult struct {
	Percent  float64 `json:"percent"`
	Category string  `json:"category"`
}

// BodyFat estimates body fat with the US Navy circumference method (metric).
func BodyFat(in BodyFatInput) (BodyFatResult, error) {
	if !positive(in.HeightCM, in.NeckCM, in.WaistCM) {
		return BodyFatResult{}, invalid("height, neck and waist must be positive numbers")
	}

	var pct float64
	switch in.Sex {
	case Male:
		girth := in.WaistCM - in.NeckCM
		if girth <= 0 {
			return BodyFatResult{}, invalid("waist must be larger than neck")
		}
		pct = 495/(1.0324-0.19077*math.Log10(girth)+0.15456*math.Log10(in.HeightCM)) - 450
	case Female:
		if !positive(in.HipCM) {
			return BodyFatResult{}, invalid("hip is required for females")
		}
		girth := in.WaistCM + in.HipCM - in.NeckCM
		if girth <= 0 {
			return BodyFatResult{}, invalid("waist plus hip must be larger than neck")
		}
		pct = 495/(1.29579-0.35004*math.Log10(girth)+0.22100*math.Log10(in.HeightCM)) - 450
	default:
		return BodyFatResult{}, invalid("sex must be male or female")
	}

	pct = round(pct, 1)
	return BodyFatResult{Percent: pct, Category: BodyFatCategory(in.Sex, pct)}, nil
}

// BodyFatCategory maps a percentage to the ACE bands for the given sex.
func BodyFatCategory(sex Sex, pct float64) string {
	// Upper bounds (exclusive) for essential, athlete, fitness, average.
	bounds := [4]float64{6, 14, 18, 25}
	if sex == Female {
		bounds = [4]float64{14, 21, 25, 32}
	}
	switch {
	case pct < bounds[0]:
		return "Essential Fat"
	case pct < bounds[1]:
		return "Athlete"
	case pct < bounds[2]:
		return "Fitness"
	case pct < bounds[3]:
		return "Average"
	default:
		return "Obese"
	}
}
