// Package cli implements the fitcalc CLI commands.
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"fitcalc/internal/tracker"
)

// options holds the persistent flags shared by every command.
type options struct {
	dbPath string
	format string
	now    func() time.Time
}

// NewRootCmd builds the top-level command with all subcommands attached.
func NewRootCmd() *cobra.Command {
	return newRootCmd(time.Now)
}

func newRootCmd(now func() time.Time) *cobra.Command {
	opts := &options{now: now}
	root := &cobra.Command{
		Use:   "fitcalc",
		Short: "Calorie targets, diet plans and body calculators",
		Long: "Computes BMR, TDEE and a calorie target for a profile, picks a diet plan, " +
			"runs body calculators and keeps a local weight log.",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if opts.format != "json" && opts.format != "text" {
				return fmt.Errorf("--format must be json or text, got %q", opts.format)
			}
			return nil
		},
	}
	root.PersistentFlags().StringVarP(&opts.dbPath, "db", "d", "", "Database path (default: $FITCALC_DB or ~/.fitcalc/weights.db)")
	root.PersistentFlags().StringVarP(&opts.format, "format", "f", "json", "Output format: json or text")

	root.AddCommand(
		newPlanCmd(opts),
		newPlansCmd(opts),
		newTemplateCmd(opts),
		newBMICmd(opts),
		newBodyFatCmd(opts),
		newWaterCmd(opts),
		newIdealWeightCmd(opts),
		newMacrosCmd(opts),
		newProjectCmd(opts),
		newWeightCmd(opts),
	)
	return root
}

func (o *options) getDBPath() string {
	if o.dbPath != "" {
		return o.dbPath
	}
	return tracker.DefaultPath()
}

func (o *options) openStore() (*tracker.SQLiteStore, error) {
	return tracker.NewSQLiteStore(o.getDBPath())
}

// write renders v as indented JSON, or through text when --format=text.
func (o *options) write(w io.Writer, v any, text func(io.Writer)) error {
	if o.format == "text" && text != nil {
		text(w)
		return nil
	}
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(b))
	return err
}
