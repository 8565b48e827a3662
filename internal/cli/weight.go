package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"fitcalc/internal/tracker"
)

func newWeightCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "weight",
		Short: "Manage the local weight log",
	}
	cmd.AddCommand(
		newWeightAddCmd(opts),
		newWeightListCmd(opts),
		newWeightRmCmd(opts),
		newWeightClearCmd(opts),
	)
	return cmd
}

func newWeightAddCmd(opts *options) *cobra.Command {
	var date string
	var kg float64
	var overwrite bool
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Log a weight (defaults to today)",
		RunE: func(cmd *cobra.Command, args []string) error {
			if date == "" {
				date = opts.now().Format("2006-01-02")
			}
			s, err := opts.openStore()
			if err != nil {
				return fmt.Errorf("open store: %w", err)
			}
			defer s.Close()

			e, err := s.Put(cmd.Context(), tracker.PutParams{Date: date, WeightKG: kg, Overwrite: overwrite})
			if errors.Is(err, tracker.ErrEntryExists) {
				return fmt.Errorf("%w (use --overwrite to replace it)", err)
			}
			if err != nil {
				return err
			}
			return opts.write(cmd.OutOrStdout(), e, func(w io.Writer) { printEntry(w, *e) })
		},
	}
	cmd.Flags().StringVar(&date, "date", "", "Date YYYY-MM-DD (default today)")
	cmd.Flags().Float64Var(&kg, "kg", 0, "Weight in kg")
	cmd.Flags().BoolVar(&overwrite, "overwrite", false, "Replace an existing entry for the date")
	cmd.MarkFlagRequired("kg")
	return cmd
}

func newWeightListCmd(opts *options) *cobra.Command {
	var start, end string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List logged weights, oldest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opts.openStore()
			if err != nil {
				return fmt.Errorf("open store: %w", err)
			}
			defer s.Close()

			entries, err := s.List(cmd.Context(), start, end)
			if err != nil {
				return err
			}
			return opts.write(cmd.OutOrStdout(), entries, func(w io.Writer) {
				for _, e := range entries {
					printEntry(w, e)
				}
			})
		},
	}
	cmd.Flags().StringVar(&start, "start", "", "First date YYYY-MM-DD")
	cmd.Flags().StringVar(&end, "end", "", "Last date YYYY-MM-DD")
	return cmd
}

func newWeightRmCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a weight entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opts.openStore()
			if err != nil {
				return fmt.Errorf("open store: %w", err)
			}
			defer s.Close()

			if err := s.Delete(cmd.Context(), args[0]); err != nil {
				return err
			}
			res := deleteResult{OK: true, ID: args[0]}
			return opts.write(cmd.OutOrStdout(), res, func(w io.Writer) {
				fmt.Fprintf(w, "deleted %s\n", res.ID)
			})
		},
	}
}

func newWeightClearCmd(opts *options) *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete every weight entry",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				return errors.New("refusing to clear the weight log without --yes")
			}
			s, err := opts.openStore()
			if err != nil {
				return fmt.Errorf("open store: %w", err)
			}
			defer s.Close()

			n, err := s.Clear(cmd.Context())
			if err != nil {
				return err
			}
			res := deleteResult{OK: true, Deleted: &n}
			return opts.write(cmd.OutOrStdout(), res, func(w io.Writer) {
				fmt.Fprintf(w, "deleted %d entries\n", n)
			})
		},
	}
	cmd.Flags().BoolVar(&yes, "yes", false, "Confirm deletion")
	return cmd
}

// deleteResult is the output of weight rm and weight clear.
type deleteResult struct {
	OK      bool   `json:"ok"`
	ID      string `json:"id,omitempty"`
	Deleted *int64 `json:"deleted,omitempty"`
}

func printEntry(w io.Writer, e tracker.Entry) {
	fmt.Fprintf(w, "%s  %6.1f kg  %s\n", e.Date, e.WeightKG, e.ID)
}
