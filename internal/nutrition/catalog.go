package nutrition

import "fmt"

// MealItem is one food in a meal slot.
type MealItem struct {
	Food     string `json:"food"`
	Portion  string `json:"portion"`
	Calories int    `json:"calories"`
}

// MealSlot names a meal of the day.
type MealSlot string

const (
	Breakfast MealSlot = "breakfast"
	Lunch     MealSlot = "lunch"
	Snack     MealSlot = "snack"
	Dinner    MealSlot = "dinner"
)

// MealSlots is the display order of a day's meals.
var MealSlots = []MealSlot{Breakfast, Lunch, Snack, Dinner}

// Meals maps each slot to its ordered items. A struct (rather than a map)
// keeps the JSON layout and iteration order fixed.
type Meals struct {
	Breakfast []MealItem `json:"breakfast"`
	Lunch     []MealItem `json:"lunch"`
	Snack     []MealItem `json:"snack"`
	Dinner    []MealItem `json:"dinner"`
}

// Slot returns the items for a slot, or nil for an unknown slot.
func (m Meals) Slot(s MealSlot) []MealItem {
	switch s {
	case Breakfast:
		return m.Breakfast
	case Lunch:
		return m.Lunch
	case Snack:
		return m.Snack
	case Dinner:
		return m.Dinner
	}
	return nil
}

// Calories sums every item of the day.
func (m Meals) Calories() int {
	total := 0
	for _, s := range MealSlots {
		for _, item := range m.Slot(s) {
			total += item.Calories
		}
	}
	return total
}

func (m Meals) clone() Meals {
	return Meals{
		Breakfast: append([]MealItem(nil), m.Breakfast...),
		Lunch:     append([]MealItem(nil), m.Lunch...),
		Snack:     append([]MealItem(nil), m.Snack...),
		Dinner:    append([]MealItem(nil), m.Dinner...),
	}
}

// WeightRange is a closed interval in kilograms, serialized as [low, high].
type WeightRange [2]float64

// Contains reports whether kg lies inside the range, bounds included.
func (r WeightRange) Contains(kg float64) bool {
	return kg >= r[0] && kg <= r[1]
}

// DietPlan is a pre-authored meal plan from the catalog.
type DietPlan struct {
	ID             string      `json:"id"`
	Name           string      `json:"name"`
	DietType       DietType    `json:"dietType"`
	TargetCalories int         `json:"targetCalories"`
	WeightRange    WeightRange `json:"weightRange"`
	Meals          Meals       `json:"meals"`
}

// Clone returns a deep copy so callers can never reach the catalog's slices.
func (p DietPlan) Clone() DietPlan {
	p.Meals = p.Meals.clone()
	return p
}

/* ─── Static catalog ─────────────────────────────────────────────────── */

// catalog is fixed at process start and never mutated. Order matters: ties
// in plan selection keep the earlier record, and index 1 is the fallback.
var catalog = []DietPlan{
	{
		ID:             "veg-light",
		Name:           "Light Vegetarian Plan",
		DietType:       Vegetarian,
		TargetCalories: 1500,
		WeightRange:    WeightRange{40, 60},
		Meals: Meals{
			Breakfast: []MealItem{
				{"Poha (flattened rice)", "1 cup", 200},
				{"Milk", "200ml", 130},
			},
			Lunch: []MealItem{
				{"Roti (whole wheat)", "2 pieces", 160},
				{"Dal (lentils)", "1 cup", 180},
				{"Mixed vegetables", "1 cup", 100},
			},
			Snack: []MealItem{
				{"Fruit (apple/banana)", "1 medium", 100},
				{"Nuts", "10-12 pieces", 80},
			},
			Dinner: []MealItem{
				{"Roti", "2 pieces", 160},
				{"Paneer curry", "100g", 200},
				{"Salad", "1 bowl", 50},
			},
		},
	},
	{
		ID:             "veg-standard",
		Name:           "Standard Vegetarian Plan",
		DietType:       Vegetarian,
		TargetCalories: 2000,
		WeightRange:    WeightRange{60, 80},
		Meals: Meals{
			Breakfast: []MealItem{
				{"Paratha (stuffed)", "2 pieces", 300},
				{"Curd", "1 cup", 100},
				{"Milk", "200ml", 130},
			},
			Lunch: []MealItem{
				{"Rice", "1.5 cups", 300},
				{"Dal", "1 cup", 180},
				{"Mixed vegetables", "1 cup", 100},
				{"Roti", "1 piece", 80},
			},
			Snack: []MealItem{
				{"Samosa", "1 piece", 150},
				{"Tea", "1 cup", 40},
			},
			Dinner: []MealItem{
				{"Roti", "3 pieces", 240},
				{"Paneer curry", "150g", 280},
				{"Salad", "1 bowl", 50},
			},
		},
	},
	{
		ID:             "nonveg-standard",
		Name:           "Standard Non-Vegetarian Plan",
		DietType:       NonVegetarian,
		TargetCalories: 2000,
		WeightRange:    WeightRange{60, 80},
		Meals: Meals{
			Breakfast: []MealItem{
				{"Egg omelette (2 eggs)", "1 serving", 200},
				{"Bread (whole wheat)", "2 slices", 160},
				{"Milk", "200ml", 130},
			},
			Lunch: []MealItem{
				{"Rice", "1.5 cups", 300},
				{"Chicken curry", "150g", 250},
				{"Dal", "1 cup", 180},
				{"Salad", "1 bowl", 50},
			},
			Snack: []MealItem{
				{"Fruit", "1 medium", 100},
				{"Boiled egg", "1", 70},
			},
			Dinner: []MealItem{
				{"Roti", "3 pieces", 240},
				{"Fish curry", "150g", 200},
				{"Vegetables", "1 cup", 100},
			},
		},
	},
	{
		ID:             "veg-heavy",
		Name:           "High Calorie Vegetarian Plan",
		DietType:       Vegetarian,
		TargetCalories: 2500,
		WeightRange:    WeightRange{80, 120},
		Meals: Meals{
			Breakfast: []MealItem{
				{"Paratha", "3 pieces", 450},
				{"Curd", "1 cup", 100},
				{"Milk", "250ml", 160},
			},
			Lunch: []MealItem{
				{"Rice", "2 cups", 400},
				{"Dal", "1.5 cups", 270},
				{"Paneer curry", "150g", 280},
				{"Roti", "2 pieces", 160},
			},
			Snack: []MealItem{
				{"Pakora", "4-5 pieces", 200},
				{"Tea with biscuits", "1 cup + 2", 100},
			},
			Dinner: []MealItem{
				{"Roti", "4 pieces", 320},
				{"Mixed dal", "1 cup", 180},
				{"Vegetables", "1.5 cups", 150},
			},
		},
	},
	{
		ID:             "nonveg-heavy",
		Name:           "High Calorie Non-Vegetarian Plan",
		DietType:       NonVegetarian,
		TargetCalories: 2500,
		WeightRange:    WeightRange{80, 120},
		Meals: Meals{
			Breakfast: []MealItem{
				{"Egg omelette (3 eggs)", "1 serving", 300},
				{"Bread", "3 slices", 240},
				{"Milk", "250ml", 160},
			},
			Lunch: []MealItem{
				{"Rice", "2 cups", 400},
				{"Chicken curry", "200g", 350},
				{"Dal", "1 cup", 180},
				{"Roti", "2 pieces", 160},
			},
			Snack: []MealItem{
				{"Chicken sandwich", "1", 250},
				{"Fruit juice", "200ml", 100},
			},
			Dinner: []MealItem{
				{"Roti", "3 pieces", 240},
				{"Mutton curry", "150g", 300},
				{"Vegetables", "1 cup", 100},
			},
		},
	},
}

// catalogIndex maps plan id to its position in catalog.
var catalogIndex = indexPlans(catalog)

func indexPlans(plans []DietPlan) map[string]int {
	idx := make(map[string]int, len(plans))
	for i, p := range plans {
		if _, dup := idx[p.ID]; dup {
			panic(fmt.Sprintf("nutrition: duplicate plan id %q", p.ID))
		}
		idx[p.ID] = i
	}
	return idx
}

// Catalog returns a deep copy of every plan in catalog order.
func Catalog() []DietPlan {
	out := make([]DietPlan, len(catalog))
	for i, p := range catalog {
		out[i] = p.Clone()
	}
	return out
}

// PlanByID looks up a catalog plan. ok is false for an unknown id.
func PlanByID(id string) (DietPlan, bool) {
	i, ok := catalogIndex[id]
	if !ok {
		return DietPlan{}, false
	}
	return catalog[i].Clone(), true
}
