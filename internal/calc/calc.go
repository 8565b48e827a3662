// Package calc holds the standalone body and nutrition calculators: BMI, body
// fat, water intake, ideal body weight, macro presets and goal projections.
package calc

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// ErrInvalidInput wraps every argument error returned by this package.
var ErrInvalidInput = errors.New("invalid input")

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}

// Sex selects sex-specific constants.
type Sex string

const (
	Male   Sex = "male"
	Female Sex = "female"
)

// ParseSex accepts "male" or "female" in any case.
func ParseSex(s string) (Sex, error) {
	switch Sex(strings.ToLower(strings.TrimSpace(s))) {
	case Male:
		return Male, nil
	case Female:
		return Female, nil
	}
	return "", invalid("sex must be male or female, got %q", s)
}

// round rounds v to the given number of decimal places.
func round(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}

// positive reports whether every value is a finite number above zero.
func positive(vals ...float64) bool {
	for _, v := range vals {
		if !(v > 0) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
