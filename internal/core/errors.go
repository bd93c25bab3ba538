package core

import (
	"errors"
	"fmt"
)

// MaxPeriod is the largest period any method accepts. Large enough for
// any realistic timeframe, small enough that seeding a window never
// becomes a problem.
const MaxPeriod = 1 << 20

// ErrWrongConfig is returned by IndicatorConfig.Init when the config
// fails validation. No instance is ever constructed in that case.
var ErrWrongConfig = errors.New("invalid indicator configuration")

// ErrInvalidPeriod is returned by method constructors when a period is
// out of the [1, MaxPeriod] range. Constructors wrap it with the method
// name, so match with errors.Is.
var ErrInvalidPeriod = errors.New("period out of range")

// ParameterParseError is returned by IndicatorConfig.Set when a value
// string cannot be parsed into the named field, or the name is unknown.
// It carries both so callers can report exactly what was rejected.
type ParameterParseError struct {
	Name  string
	Value string
}

func (e *ParameterParseError) Error() string {
	return fmt.Sprintf("cannot parse parameter %q from %q", e.Name, e.Value)
}

// ValidatePeriod checks the shared period constraint for method
// constructors and wraps ErrInvalidPeriod with the method name.
func ValidatePeriod(method string, period int) error {
	if period < 1 || period > MaxPeriod {
		return fmt.Errorf("%s: %w: %d", method, ErrInvalidPeriod, period)
	}
	return nil
}
