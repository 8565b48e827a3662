package nutrition

// Daily calorie bounds enforced on every recommendation.
const (
	defaultMinCalories       = 1200
	minorMinCalories         = 1400
	lightFemaleMinCalories   = 1300
	lightMaleMinCalories     = 1500
	maxCalories              = 4000
	minorAgeLimit            = 18
	lightFemaleWeightLimitKG = 50
	lightMaleWeightLimitKG   = 60
)

// MinCalories returns the calorie floor for a person. The rules overwrite one
// another in order (age first, then the gender/weight floors) so the last
// applicable rule wins. An under-18 female under 50kg gets 1300, not 1400.
func MinCalories(age int, weightKG float64, gender Gender) int {
	floor := defaultMinCalories
	if age < minorAgeLimit {
		floor = minorMinCalories
	}
	if gender == Female && weightKG < lightFemaleWeightLimitKG {
		floor = lightFemaleMinCalories
	}
	if gender == Male && weightKG < lightMaleWeightLimitKG {
		floor = lightMaleMinCalories
	}
	return floor
}

// Clamp bounds a calorie target to [MinCalories, 4000].
func Clamp(target, age int, weightKG float64, gender Gender) int {
	floor := MinCalories(age, weightKG, gender)
	if target < floor {
		return floor
	}
	if target > maxCalories {
		return maxCalories
	}
	return target
}
