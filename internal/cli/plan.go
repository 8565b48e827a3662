package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"fitcalc/internal/nutrition"
	"fitcalc/internal/tracker"
)

func newPlanCmd(opts *options) *cobra.Command {
	var (
		p    nutrition.Profile
		sync bool
	)
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Compute calorie target, macros and a diet plan for a profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			if sync {
				if err := syncProfile(cmd, opts, &p); err != nil {
					return err
				}
			}
			result := nutrition.ComputePlan(p)
			if err := opts.write(cmd.OutOrStdout(), result, func(w io.Writer) { printResult(w, result) }); err != nil {
				return err
			}
			if !result.Success {
				return errors.New(result.Error)
			}
			return nil
		},
	}

	f := cmd.Flags()
	f.IntVar(&p.Age, "age", 0, "Age in years (10-100)")
	f.Float64Var(&p.Weight, "weight", 0, "Weight in kg (20-300)")
	f.Float64Var(&p.Height, "height", 0, "Height in cm (100-250)")
	f.StringVar((*string)(&p.Gender), "gender", string(nutrition.Male), "Male or Female")
	f.StringVar((*string)(&p.ActivityLevel), "activity", string(nutrition.Sedentary), "Sedentary, Light, Moderate, Active or Very Active")
	f.StringVar((*string)(&p.Goal), "goal", string(nutrition.Maintain), "Maintain, Weight Loss, Extreme Weight Loss or Weight Gain")
	f.StringVar((*string)(&p.DietType), "diet", string(nutrition.AnyDiet), "Vegetarian, Non-Vegetarian or Any")
	f.BoolVar(&sync, "sync", false, "Use the latest logged weight and recent trend from the weight log")
	return cmd
}

// syncProfile replaces the profile weight with the latest weigh-in and loads
// the last four weeks as trend samples.
func syncProfile(cmd *cobra.Command, opts *options, p *nutrition.Profile) error {
	s, err := opts.openStore()
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer s.Close()

	start := opts.now().AddDate(0, 0, -28).Format("2006-01-02")
	entries, err := s.List(cmd.Context(), start, "")
	if err != nil {
		return fmt.Errorf("list weights: %w", err)
	}
	if len(entries) > 0 {
		p.Weight = entries[len(entries)-1].WeightKG
		p.TrackerData = tracker.Samples(entries)
	}
	return nil
}

func printResult(w io.Writer, r nutrition.Result) {
	if !r.Success {
		fmt.Fprintf(w, "error: %s\n", r.Error)
		return
	}
	for _, s := range r.Explanation {
		fmt.Fprintf(w, "%-5s %-28s %s\n", s.Step, s.Value, s.Detail)
	}
	fmt.Fprintf(w, "Macros: %dg protein, %dg carbs, %dg fats\n", r.Macros.Protein, r.Macros.Carbs, r.Macros.Fats)
	if r.Recalibration != "" {
		fmt.Fprintln(w, r.Recalibration)
	}
	if r.Warning != nil {
		fmt.Fprintf(w, "Warning: %s\n", *r.Warning)
	}
	for _, slot := range nutrition.MealSlots {
		fmt.Fprintf(w, "%s:\n", slot)
		for _, item := range r.Plan.Meals.Slot(slot) {
			fmt.Fprintf(w, "  %s (%s) %d kcal\n", item.Food, item.Portion, item.Calories)
		}
	}
}

func newPlansCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "plans [id]",
		Short: "List the diet catalog or show one plan",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				plan, ok := nutrition.PlanByID(args[0])
				if !ok {
					return fmt.Errorf("plan %q not found", args[0])
				}
				return opts.write(cmd.OutOrStdout(), plan, func(w io.Writer) { printPlanLine(w, plan) })
			}
			plans := nutrition.Catalog()
			return opts.write(cmd.OutOrStdout(), plans, func(w io.Writer) {
				for _, p := range plans {
					printPlanLine(w, p)
				}
			})
		},
	}
}

func printPlanLine(w io.Writer, p nutrition.DietPlan) {
	fmt.Fprintf(w, "%-16s %-34s %-15s %5d kcal  %g-%gkg\n",
		p.ID, p.Name, p.DietType, p.TargetCalories, p.WeightRange[0], p.WeightRange[1])
}
