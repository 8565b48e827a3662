package nutrition

import "strings"

// TemplateGoal keys the fixed goal templates.
type TemplateGoal string

const (
	TemplateLoss     TemplateGoal = "loss"
	TemplateMaintain TemplateGoal = "maintain"
	TemplateGain     TemplateGoal = "gain"
)

// TemplateMeal is one meal of a goal template.
type TemplateMeal struct {
	Name    string `json:"name"`
	Food    string `json:"food"`
	Portion string `json:"portion"`
}

// GoalTemplate is a simple four-meal day for a broad goal. Unlike DietPlan it
// carries no calorie figures and is not weight-banded.
type GoalTemplate struct {
	Goal        TemplateGoal   `json:"goal"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Meals       []TemplateMeal `json:"meals"`
}

var goalTemplates = []GoalTemplate{
	{
		Goal:        TemplateLoss,
		Title:       "Weight Loss Plan",
		Description: "High protein, lower carbs to keep you full while in a deficit.",
		Meals: []TemplateMeal{
			{"Breakfast", "Oatmeal with protein powder & berries", "1/2 cup oats, 1 scoop protein"},
			{"Lunch", "Grilled Chicken Salad", "150g Chicken, Big bowl greens, Light dressing"},
			{"Snack", "Greek Yogurt or Apple", "1 cup yogurt or 1 medium apple"},
			{"Dinner", "Lean Fish/Tofu with Steamed Veggies", "150g Protein, 2 cups veggies"},
		},
	},
	{
		Goal:        TemplateMaintain,
		Title:       "Maintenance Plan",
		Description: "Balanced macros to keep your energy high and weight stable.",
		Meals: []TemplateMeal{
			{"Breakfast", "Eggs on Toast with Avocado", "2 Eggs, 2 slices whole grain toast, 1/4 avocado"},
			{"Lunch", "Turkey Sandwich & Fruit", "Whole grain bread, 150g turkey, lettuce/tomato"},
			{"Snack", "Handful of Almonds & Cheese Stick", "30g nuts, 1 cheese stick"},
			{"Dinner", "Pasta with Meat Sauce/Lentils", "1.5 cups pasta, tomato sauce, lean beef/lentils"},
		},
	},
	{
		Goal:        TemplateGain,
		Title:       "Muscle Gain Plan",
		Description: "High calorie, protein-rich meals to fuel muscle growth.",
		Meals: []TemplateMeal{
			{"Breakfast", "Big Omelet with Cheese & Toast", "3 Eggs, Cheese, 2 slices toast, 1 banana"},
			{"Lunch", "Chicken Rice Bowl", "200g Chicken, 1.5 cups rice, veggies, avocado"},
			{"Snack", "Protein Shake + Peanut Butter Toast", "1 scoop protein, 2 tbsp PB on toast"},
			{"Dinner", "Steak/Salmon with Potatoes", "200g meat, large potato, veggies"},
		},
	},
}

func (t GoalTemplate) clone() GoalTemplate {
	t.Meals = append([]TemplateMeal(nil), t.Meals...)
	return t
}

// GoalTemplates returns copies of every template in loss, maintain, gain order.
func GoalTemplates() []GoalTemplate {
	out := make([]GoalTemplate, len(goalTemplates))
	for i, t := range goalTemplates {
		out[i] = t.clone()
	}
	return out
}

// TemplateFor looks up a template by goal key, case-insensitively. An empty
// key means maintain; unknown keys report ok=false.
func TemplateFor(goal string) (GoalTemplate, bool) {
	key := TemplateGoal(strings.ToLower(strings.TrimSpace(goal)))
	if key == "" {
		key = TemplateMaintain
	}
	for _, t := range goalTemplates {
		if t.Goal == key {
			return t.clone(), true
		}
	}
	return GoalTemplate{}, false
}
