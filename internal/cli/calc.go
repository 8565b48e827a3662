package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"fitcalc/internal/calc"
	"fitcalc/internal/nutrition"
)

func newBMICmd(opts *options) *cobra.Command {
	var weight, height float64
	var units string
	cmd := &cobra.Command{
		Use:   "bmi",
		Short: "Body mass index",
		RunE: func(cmd *cobra.Command, args []string) error {
			kg, cm := calc.ToMetric(calc.Units(units), weight, height)
			r, err := calc.BMI(cm, kg)
			if err != nil {
				return err
			}
			return opts.write(cmd.OutOrStdout(), r, func(w io.Writer) {
				fmt.Fprintf(w, "BMI %.1f (%s). %s\n", r.BMI, r.Category, r.Message)
			})
		},
	}
	cmd.Flags().Float64Var(&weight, "weight", 0, "Weight (kg, or lbs with --units imperial)")
	cmd.Flags().Float64Var(&height, "height", 0, "Height (cm, or decimal feet with --units imperial)")
	cmd.Flags().StringVar(&units, "units", string(calc.Metric), "metric or imperial")
	return cmd
}

func newBodyFatCmd(opts *options) *cobra.Command {
	var in calc.BodyFatInput
	var sex string
	cmd := &cobra.Command{
		Use:   "body-fat",
		Short: "US Navy body fat estimate (centimeters)",
		RunE: func(cmd *cobra.Command, args []string) error {
			var err error
			if in.Sex, err = calc.ParseSex(sex); err != nil {
				return err
			}
			r, err := calc.BodyFat(in)
			if err != nil {
				return err
			}
			return opts.write(cmd.OutOrStdout(), r, func(w io.Writer) {
				fmt.Fprintf(w, "Body fat %.1f%% (%s)\n", r.Percent, r.Category)
			})
		},
	}
	cmd.Flags().StringVar(&sex, "sex", "", "male or female")
	cmd.Flags().Float64Var(&in.HeightCM, "height", 0, "Height in cm")
	cmd.Flags().Float64Var(&in.NeckCM, "neck", 0, "Neck circumference in cm")
	cmd.Flags().Float64Var(&in.WaistCM, "waist", 0, "Waist circumference in cm")
	cmd.Flags().Float64Var(&in.HipCM, "hip", 0, "Hip circumference in cm (female only)")
	cmd.MarkFlagRequired("sex")
	return cmd
}

func newWaterCmd(opts *options) *cobra.Command {
	var weight, exercise float64
	var units string
	cmd := &cobra.Command{
		Use:   "water",
		Short: "Daily water intake",
		RunE: func(cmd *cobra.Command, args []string) error {
			kg, _ := calc.ToMetric(calc.Units(units), weight, 0)
			r, err := calc.WaterIntake(kg, exercise)
			if err != nil {
				return err
			}
			return opts.write(cmd.OutOrStdout(), r, func(w io.Writer) {
				fmt.Fprintf(w, "%.2f L/day (%.1f cups)\n", r.Liters, r.Cups)
			})
		},
	}
	cmd.Flags().Float64Var(&weight, "weight", 0, "Weight (kg, or lbs with --units imperial)")
	cmd.Flags().Float64Var(&exercise, "exercise", 0, "Exercise minutes per day")
	cmd.Flags().StringVar(&units, "units", string(calc.Metric), "metric or imperial")
	return cmd
}

func newIdealWeightCmd(opts *options) *cobra.Command {
	var sex, units string
	var height float64
	cmd := &cobra.Command{
		Use:   "ideal-weight",
		Short: "Ideal body weight by four formulas",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := calc.ParseSex(sex)
			if err != nil {
				return err
			}
			_, cm := calc.ToMetric(calc.Units(units), 0, height)
			r, err := calc.IdealWeight(s, cm)
			if err != nil {
				return err
			}
			return opts.write(cmd.OutOrStdout(), r, func(w io.Writer) {
				fmt.Fprintf(w, "Robinson %.1f kg\nMiller   %.1f kg\nDevine   %.1f kg\nHamwi    %.1f kg\n",
					r.Robinson, r.Miller, r.Devine, r.Hamwi)
			})
		},
	}
	cmd.Flags().StringVar(&sex, "sex", "", "male or female")
	cmd.Flags().Float64Var(&height, "height", 0, "Height (cm, or decimal feet with --units imperial)")
	cmd.Flags().StringVar(&units, "units", string(calc.Metric), "metric or imperial")
	cmd.MarkFlagRequired("sex")
	return cmd
}

func newMacrosCmd(opts *options) *cobra.Command {
	var calories int
	var preset string
	cmd := &cobra.Command{
		Use:   "macros",
		Short: "Split calories by a macro preset",
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := calc.Macros(calories, calc.MacroPreset(preset))
			if err != nil {
				return err
			}
			return opts.write(cmd.OutOrStdout(), r, func(w io.Writer) {
				fmt.Fprintf(w, "%s @ %d kcal: %dg protein, %dg carbs, %dg fats\n",
					r.Preset, r.Calories, r.Grams.Protein, r.Grams.Carbs, r.Grams.Fats)
			})
		},
	}
	cmd.Flags().IntVar(&calories, "calories", 0, "Daily calories")
	cmd.Flags().StringVar(&preset, "preset", string(calc.Balanced), "balanced, zone, keto, lowcarb or highpro")
	return cmd
}

func newProjectCmd(opts *options) *cobra.Command {
	var sex, units, activity string
	var age int
	var weight, height, goal float64
	cmd := &cobra.Command{
		Use:   "project",
		Short: "Pace options and a zig-zag week toward a goal weight",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := calc.ParseSex(sex)
			if err != nil {
				return err
			}
			kg, cm := calc.ToMetric(calc.Units(units), weight, height)
			goalKG, _ := calc.ToMetric(calc.Units(units), goal, 0)
			r, err := calc.Project(calc.ProjectionInput{
				Sex: s, Age: age, WeightKG: kg, HeightCM: cm, GoalWeightKG: goalKG,
				ActivityLevel: nutrition.ActivityLevel(activity),
			}, opts.now())
			if err != nil {
				return err
			}
			return opts.write(cmd.OutOrStdout(), r, func(w io.Writer) { printProjection(w, r) })
		},
	}
	f := cmd.Flags()
	f.StringVar(&sex, "sex", "", "male or female")
	f.IntVar(&age, "age", 0, "Age in years")
	f.Float64Var(&weight, "weight", 0, "Current weight (kg, or lbs with --units imperial)")
	f.Float64Var(&height, "height", 0, "Height (cm, or decimal feet with --units imperial)")
	f.Float64Var(&goal, "goal", 0, "Goal weight, same unit as --weight")
	f.StringVar(&activity, "activity", string(nutrition.Sedentary), "Sedentary, Light, Moderate, Active or Very Active")
	f.StringVar(&units, "units", string(calc.Metric), "metric or imperial")
	cmd.MarkFlagRequired("sex")
	return cmd
}

func printProjection(w io.Writer, p calc.Projection) {
	fmt.Fprintf(w, "BMR %d, TDEE %d (%s)\n", p.BMR, p.TDEE, p.Type)
	for _, o := range p.Options {
		floor := ""
		if o.HealthFloor {
			floor = " [floor]"
		}
		fmt.Fprintf(w, "  %-20s %4d kcal  %.2f kg/wk  %s%s\n", o.Label, o.Calories, o.PaceKGPerWeek, o.ETA, floor)
	}
	if p.MedicalWarning {
		fmt.Fprintf(w, "Some options were raised to the %d kcal minimum.\n", p.MinCalories)
	}
	fmt.Fprintf(w, "Zig-zag: %d low / %d high\n", p.ZigZag.Low, p.ZigZag.High)
}
