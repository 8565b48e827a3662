package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"fitcalc/internal/nutrition"
)

func newTemplateCmd(opts *options) *cobra.Command {
	var all bool
	cmd := &cobra.Command{
		Use:   "template [loss|maintain|gain]",
		Short: "Show a simple four-meal day for a goal (default maintain)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if all {
				tmpls := nutrition.GoalTemplates()
				return opts.write(cmd.OutOrStdout(), tmpls, func(w io.Writer) {
					for _, t := range tmpls {
						printTemplate(w, t)
					}
				})
			}
			goal := ""
			if len(args) == 1 {
				goal = args[0]
			}
			tmpl, ok := nutrition.TemplateFor(goal)
			if !ok {
				return fmt.Errorf("no template for goal %q (want loss, maintain or gain)", goal)
			}
			return opts.write(cmd.OutOrStdout(), tmpl, func(w io.Writer) { printTemplate(w, tmpl) })
		},
	}
	cmd.Flags().BoolVar(&all, "all", false, "Show every template")
	return cmd
}

func printTemplate(w io.Writer, t nutrition.GoalTemplate) {
	fmt.Fprintf(w, "%s\n%s\n", t.Title, t.Description)
	for _, m := range t.Meals {
		fmt.Fprintf(w, "  %-10s %s (%s)\n", m.Name+":", m.Food, m.Portion)
	}
}
