package calc

// Conversion factors.
const (
	lbsPerKG = 2.20462
	cmPerFt  = 30.48
	cmPerIn  = 2.54
)

// Units is a request-scoped measurement system.
type Units string

const (
	Metric   Units = "metric"
	Imperial Units = "imperial"
)

// LbsToKG converts pounds to kilograms.
func LbsToKG(lbs float64) float64 { return lbs / lbsPerKG }

// KGToLbs converts kilograms to pounds.
func KGToLbs(kg float64) float64 { return kg * lbsPerKG }

// FeetToCM converts decimal feet (5.9 means 5.9 ft, not 5'9") to centimeters.
func FeetToCM(ft float64) float64 { return ft * cmPerFt }

// ToMetric converts weight and height entered in u to kilograms and
// centimeters. Imperial input is pounds and decimal feet; metric input is
// returned unchanged.
func ToMetric(u Units, weight, height float64) (weightKG, heightCM float64) {
	if u == Imperial {
		return LbsToKG(weight), FeetToCM(height)
	}
	return weight, height
}
