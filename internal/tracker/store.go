// Package tracker persists daily body weight entries and feeds them back into
// plan recalibration.
package tracker

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/oklog/ulid/v2"

	"fitcalc/internal/nutrition"
)

const (
	dateLayout = "2006-01-02"
	// MaxWeightKG is the largest weight the tracker accepts.
	MaxWeightKG = 500
)

var (
	ErrNotFound     = errors.New("weight entry not found")
	ErrEntryExists  = errors.New("weight entry already exists for date")
	ErrInvalidEntry = errors.New("invalid weight entry")
)

// Entry is one weigh-in. Dates are unique across the log.
type Entry struct {
	ID        string    `json:"id" db:"id"`
	Date      string    `json:"date" db:"date"`
	WeightKG  float64   `json:"weight_kg" db:"weight_kg"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// PutParams holds parameters for logging a weight.
type PutParams struct {
	Date     string
	WeightKG float64
	// Overwrite replaces the weight of an existing entry on the same date
	// instead of failing with ErrEntryExists.
	Overwrite bool
}

// UpdateParams holds a partial update. Nil fields keep their current values.
type UpdateParams struct {
	Date     *string  `json:"date"`
	WeightKG *float64 `json:"weight_kg"`
}

// Store defines the weight log storage interface.
type Store interface {
	// Put logs a weight for a date and returns the stored entry.
	Put(ctx context.Context, p PutParams) (*Entry, error)

	// List returns entries with start <= date <= end, oldest first. An empty
	// bound is open.
	List(ctx context.Context, start, end string) ([]Entry, error)

	// Latest returns the most recent entry by date.
	Latest(ctx context.Context) (*Entry, error)

	// Update changes the date and/or weight of an entry.
	Update(ctx context.Context, id string, p UpdateParams) (*Entry, error)

	// Delete removes an entry by ID.
	Delete(ctx context.Context, id string) error

	// Clear removes every entry and reports how many were removed.
	Clear(ctx context.Context) (int64, error)

	// Close closes the store.
	Close() error
}

func newID() string {
	return ulid.MustNew(ulid.Timestamp(time.Now()), ulid.DefaultEntropy()).String()
}

// ValidateDate checks a YYYY-MM-DD date string.
func ValidateDate(date string) error {
	if _, err := time.Parse(dateLayout, date); err != nil {
		return fmt.Errorf("%w: date must be YYYY-MM-DD, got %q", ErrInvalidEntry, date)
	}
	return nil
}

// ValidateWeight checks a weight is in (0, MaxWeightKG].
func ValidateWeight(kg float64) error {
	if !(kg > 0 && kg <= MaxWeightKG) {
		return fmt.Errorf("%w: weight_kg must be between 0 and %d", ErrInvalidEntry, MaxWeightKG)
	}
	return nil
}

func (p PutParams) validate() error {
	if err := ValidateDate(p.Date); err != nil {
		return err
	}
	return ValidateWeight(p.WeightKG)
}

func (p UpdateParams) validate() error {
	if p.Date != nil {
		if err := ValidateDate(*p.Date); err != nil {
			return err
		}
	}
	if p.WeightKG != nil {
		return ValidateWeight(*p.WeightKG)
	}
	return nil
}

func validateRange(start, end string) error {
	for _, d := range []string{start, end} {
		if d == "" {
			continue
		}
		if err := ValidateDate(d); err != nil {
			return err
		}
	}
	if start != "" && end != "" && start > end {
		return fmt.Errorf("%w: start must not be after end", ErrInvalidEntry)
	}
	return nil
}

// Samples converts entries into recalibration samples.
func Samples(entries []Entry) []nutrition.WeightSample {
	out := make([]nutrition.WeightSample, len(entries))
	for i, e := range entries {
		out[i] = nutrition.WeightSample{Date: e.Date, Weight: e.WeightKG}
	}
	return out
}

// DefaultPath returns $FITCALC_DB, or ~/.fitcalc/weights.db when unset.
func DefaultPath() string {
	if p := os.Getenv("FITCALC_DB"); p != "" {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".fitcalc", "weights.db")
	}
	return filepath.Join(home, ".fitcalc", "weights.db")
}

// Open returns a PGStore when dbURL is set and a SQLiteStore at sqlitePath
// otherwise.
func Open(ctx context.Context, dbURL, sqlitePath string) (Store, error) {
	if dbURL != "" {
		return NewPGStore(ctx, dbURL)
	}
	return NewSQLiteStore(sqlitePath)
}
