package calc

// fiveFeetCM is the reference height the ideal weight formulas start from.
const fiveFeetCM = 152.4

// IdealWeightResult holds the four classic ideal body weight estimates in kg,
// rounded to one decimal.
type IdealWeightResult struct {
	Robinson float64 `json:"robinson"`
	Miller   float64 `json:"miller"`
	Devine   float64 `json:"devine"`
	Hamwi    float64 `json:"hamwi"`
}

// ibwFormula is base kg plus kg per inch over five feet.
type ibwFormula struct{ base, perInch float64 }

func (f ibwFormula) at(inches float64) float64 {
	return round(f.base+f.perInch*inches, 1)
}

var ibwFormulas = map[Sex][4]ibwFormula{
	Male:   {{52, 1.9}, {56.2, 1.41}, {50, 2.3}, {48, 2.7}},
	Female: {{49, 1.7}, {53.1, 1.36}, {45.5, 2.3}, {45.5, 2.2}},
}

// IdealWeight applies the Robinson, Miller, Devine and Hamwi formulas. Heights
// under five feet extrapolate with a negative inch count.
func IdealWeight(sex Sex, heightCM float64) (IdealWeightResult, error) {
	if !positive(heightCM) {
		return IdealWeightResult{}, invalid("height must be a positive number")
	}
	f, ok := ibwFormulas[sex]
	if !ok {
		return IdealWeightResult{}, invalid("sex must be male or female")
	}
	inches := (heightCM - fiveFeetCM) / cmPerIn
	return IdealWeightResult{
		Robinson: f[0].at(inches),
		Miller:   f[1].at(inches),
		Devine:   f[2].at(inches),
		Hamwi:    f[3].at(inches),
	}, nil
}
