package insights

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyAggregate is returned when an aggregate query finds no valid values.
	ErrEmptyAggregate = errors.New("no valid values to aggregate")

	// ErrInvalidSalaryData is returned when a job's salary range or the
	// target salary cannot be used for a range check.
	ErrInvalidSalaryData = errors.New("invalid salary data")
)

// SalaryDataError describes why salary data was rejected.
// It matches ErrInvalidSalaryData with errors.Is.
type SalaryDataError struct {
	Field  string // Column or argument name
	Value  string // Offending value, empty when missing
	Reason string
}

func (e *SalaryDataError) Error() string {
	if e.Value != "" {
		return fmt.Sprintf("%s: %s %q: %s", ErrInvalidSalaryData, e.Field, e.Value, e.Reason)
	}
	return fmt.Sprintf("%s: %s: %s", ErrInvalidSalaryData, e.Field, e.Reason)
}

func (e *SalaryDataError) Unwrap() error {
	return ErrInvalidSalaryData
}
