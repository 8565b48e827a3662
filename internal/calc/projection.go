package calc

import (
	"math"
	"time"

	"fitcalc/internal/nutrition"
)

// ProjectionInput describes a person and the weight they want to reach.
type ProjectionInput struct {
	Sex           Sex                     `json:"sex"`
	Age           int                     `json:"age"`
	WeightKG      float64                 `json:"weight_kg"`
	HeightCM      float64                 `json:"height_cm"`
	GoalWeightKG  float64                 `json:"goal_weight_kg"`
	ActivityLevel nutrition.ActivityLevel `json:"activity_level"`
}

// ProjectionOption is one pace choice with its daily calories and ETA.
type ProjectionOption struct {
	Label         string  `json:"label"`
	PaceKGPerWeek float64 `json:"pace_kg_per_week"`
	Calories      int     `json:"calories"`
	ETA           string  `json:"eta"` // YYYY-MM-DD, "Reached" or "Never"
	HealthFloor   bool    `json:"health_floor"`
}

// ZigZagDay is one day of a calorie cycling week.
type ZigZagDay struct {
	Day      string `json:"day"`
	Type     string `json:"type"` // Low or High
	Calories int    `json:"calories"`
}

// ZigZag is a weekly calorie cycle with two high days.
type ZigZag struct {
	Low      int         `json:"low"`
	High     int         `json:"high"`
	Schedule []ZigZagDay `json:"schedule"`
}

// Projection is the set of pace options toward a goal weight.
type Projection struct {
	BMR            int                `json:"bmr"`
	TDEE           int                `json:"tdee"`
	Type           string             `json:"type"` // loss or gain
	MinCalories    int                `json:"min_calories"`
	MedicalWarning bool               `json:"medical_warning"`
	Options        []ProjectionOption `json:"options"`
	ZigZag         ZigZag             `json:"zigzag"`
}

// Sex-specific calorie floors for deficit options.
const (
	maleFloorCalories   = 1500
	femaleFloorCalories = 1200
	// maxDeficitShare caps the extreme option's deficit at 35% of TDEE.
	maxDeficitShare = 0.35
	zigzagHighShare = 1.15
)

var weekdays = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

// highDays are the refeed days of the zig-zag week.
var highDays = map[string]bool{"Wednesday": true, "Sunday": true}

// Project builds loss or gain options toward the goal weight, dated from now,
// plus a zig-zag week around the standard (0.5 kg/week) option.
func Project(in ProjectionInput, now time.Time) (Projection, error) {
	if !positive(in.WeightKG, in.HeightCM, in.GoalWeightKG) || in.Age <= 0 {
		return Projection{}, invalid("age, weight, height and goal weight are required")
	}
	var gender nutrition.Gender
	floor := femaleFloorCalories
	switch in.Sex {
	case Male:
		gender, floor = nutrition.Male, maleFloorCalories
	case Female:
		gender = nutrition.Female
	default:
		return Projection{}, invalid("sex must be male or female")
	}

	bmr := nutrition.BMR(in.WeightKG, in.HeightCM, in.Age, gender)
	tdee := nutrition.TDEE(bmr, in.ActivityLevel)
	out := Projection{BMR: int(math.Round(bmr)), TDEE: tdee, MinCalories: floor}

	eta := func(diffKG, pace float64) string {
		switch {
		case diffKG < 0:
			return "Reached"
		case pace <= 0:
			return "Never"
		}
		days := int(diffKG / pace * 7)
		return now.AddDate(0, 0, days).Format("2006-01-02")
	}

	diff := in.WeightKG - in.GoalWeightKG
	if diff > 0 {
		out.Type = "loss"
		extreme := math.Min(1000, float64(tdee)*maxDeficitShare)
		for _, o := range []struct {
			label   string
			pace    float64
			deficit float64
		}{
			{"Mild Weight Loss", 0.25, 250},
			{"Weight Loss", 0.5, 500},
			{"Extreme Weight Loss", 1.0, extreme},
		} {
			cals := int(math.Round(float64(tdee) - o.deficit))
			floored := cals < floor
			if floored {
				cals = floor
				out.MedicalWarning = true
			}
			out.Options = append(out.Options, ProjectionOption{
				Label: o.label, PaceKGPerWeek: o.pace, Calories: cals,
				ETA: eta(diff, o.pace), HealthFloor: floored,
			})
		}
	} else {
		out.Type = "gain"
		for _, o := range []struct {
			label   string
			pace    float64
			surplus int
		}{
			{"Mild Weight Gain", 0.25, 250},
			{"Weight Gain", 0.5, 500},
			{"Fast Weight Gain", 1.0, 1000},
		} {
			out.Options = append(out.Options, ProjectionOption{
				Label: o.label, PaceKGPerWeek: o.pace, Calories: tdee + o.surplus,
				ETA: eta(-diff, o.pace),
			})
		}
	}

	out.ZigZag = BuildZigZag(out.Options[1].Calories, tdee, out.Type == "loss")
	return out, nil
}

// BuildZigZag spreads base*7 calories over a week with two high days at 115%
// of base. For a deficit the high day is capped at maintenance.
func BuildZigZag(base, tdee int, deficit bool) ZigZag {
	high := int(math.Round(float64(base) * zigzagHighShare))
	if deficit && high > tdee {
		high = tdee
	}
	low := int(math.Round(float64(base*7-2*high) / 5))

	z := ZigZag{Low: low, High: high}
	for _, day := range weekdays {
		d := ZigZagDay{Day: day, Type: "Low", Calories: low}
		if highDays[day] {
			d.Type, d.Calories = "High", high
		}
		z.Schedule = append(z.Schedule, d)
	}
	return z
}
