package insights

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/fr4nk3nst1ner/jobinsights/internal/models"
	"github.com/fr4nk3nst1ner/jobinsights/internal/utils"
)

// SalaryInput is a target salary given as a number or a numeric string.
type SalaryInput interface {
	int | int64 | string
}

// SalaryRange is an inclusive salary interval. Min <= Max always holds
// for ranges returned by this package.
type SalaryRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// Contains reports whether salary lies within the range, bounds included
func (r SalaryRange) Contains(salary int) bool {
	return r.Min <= salary && salary <= r.Max
}

// MaxSalary returns the highest max_salary in the dataset at path.
// Rows whose max_salary is not a non-negative integer are ignored.
func (in *Insights) MaxSalary(path string) (int, error) {
	jobs, err := in.Jobs(path)
	if err != nil {
		return 0, err
	}
	salaries := collectSalaries(jobs, func(j models.Job) models.Field { return j.MaxSalary })
	if len(salaries) == 0 {
		return 0, fmt.Errorf("%s: %w", models.ColumnMaxSalary, ErrEmptyAggregate)
	}
	return extreme(salaries, func(a, b int) bool { return a > b }), nil
}

// MinSalary returns the lowest min_salary in the dataset at path.
// Rows whose min_salary is not a non-negative integer are ignored.
func (in *Insights) MinSalary(path string) (int, error) {
	jobs, err := in.Jobs(path)
	if err != nil {
		return 0, err
	}
	salaries := collectSalaries(jobs, func(j models.Job) models.Field { return j.MinSalary })
	if len(salaries) == 0 {
		return 0, fmt.Errorf("%s: %w", models.ColumnMinSalary, ErrEmptyAggregate)
	}
	return extreme(salaries, func(a, b int) bool { return a < b }), nil
}

// SalaryBounds returns the lowest min_salary and highest max_salary of the
// dataset at path from a single read.
func (in *Insights) SalaryBounds(path string) (SalaryRange, error) {
	jobs, err := in.Jobs(path)
	if err != nil {
		return SalaryRange{}, err
	}

	mins := collectSalaries(jobs, func(j models.Job) models.Field { return j.MinSalary })
	if len(mins) == 0 {
		return SalaryRange{}, fmt.Errorf("%s: %w", models.ColumnMinSalary, ErrEmptyAggregate)
	}
	maxs := collectSalaries(jobs, func(j models.Job) models.Field { return j.MaxSalary })
	if len(maxs) == 0 {
		return SalaryRange{}, fmt.Errorf("%s: %w", models.ColumnMaxSalary, ErrEmptyAggregate)
	}

	return SalaryRange{
		Min: extreme(mins, func(a, b int) bool { return a < b }),
		Max: extreme(maxs, func(a, b int) bool { return a > b }),
	}, nil
}

// collectSalaries gathers the distinct digit-only values of one salary column.
func collectSalaries(jobs []models.Job, field func(models.Job) models.Field) map[int]struct{} {
	salaries := make(map[int]struct{})
	for _, job := range jobs {
		f := field(job)
		if !f.Valid {
			continue
		}
		if v, ok := utils.SalaryAmount(f.Value); ok {
			salaries[v] = struct{}{}
		}
	}
	return salaries
}

// extreme returns the element x of a non-empty set for which better(x, y)
// holds against every other element y.
func extreme(set map[int]struct{}, better func(a, b int) bool) int {
	first := true
	var best int
	for v := range set {
		if first || better(v, best) {
			best = v
			first = false
		}
	}
	return best
}

// ParseSalaryRange validates a job's min_salary and max_salary.
func ParseSalaryRange(job models.Job) (SalaryRange, error) {
	if !job.MinSalary.Valid {
		return SalaryRange{}, &SalaryDataError{Field: models.ColumnMinSalary, Reason: "missing"}
	}
	if !job.MaxSalary.Valid {
		return SalaryRange{}, &SalaryDataError{Field: models.ColumnMaxSalary, Reason: "missing"}
	}

	maxSalary, err := parseInt(models.ColumnMaxSalary, job.MaxSalary.Value)
	if err != nil {
		return SalaryRange{}, err
	}
	minSalary, err := parseInt(models.ColumnMinSalary, job.MinSalary.Value)
	if err != nil {
		return SalaryRange{}, err
	}

	if minSalary > maxSalary {
		return SalaryRange{}, &SalaryDataError{
			Field:  models.ColumnMinSalary,
			Value:  job.MinSalary.Value,
			Reason: "greater than " + models.ColumnMaxSalary + " " + job.MaxSalary.Value,
		}
	}

	return SalaryRange{Min: minSalary, Max: maxSalary}, nil
}

// ParseSalary converts a target salary to an int.
func ParseSalary[S SalaryInput](salary S) (int, error) {
	switch v := any(salary).(type) {
	case int:
		return v, nil
	case int64:
		if int64(int(v)) != v {
			return 0, &SalaryDataError{Field: "salary", Value: strconv.FormatInt(v, 10), Reason: "out of range"}
		}
		return int(v), nil
	case string:
		return parseInt("salary", v)
	}
	// unreachable: S is constrained to the cases above
	return 0, &SalaryDataError{Field: "salary", Reason: "unsupported type"}
}

// parseInt accepts an optionally signed base-10 integer surrounded by
// whitespace. Digits may be grouped with single underscores, as in "1_000".
func parseInt(field, s string) (int, error) {
	digits, ok := stripDigitGroups(strings.TrimSpace(s))
	if !ok {
		return 0, &SalaryDataError{Field: field, Value: s, Reason: "not an integer"}
	}
	v, err := strconv.Atoi(digits)
	if err != nil {
		reason := "not an integer"
		if errors.Is(err, strconv.ErrRange) {
			reason = "out of range"
		}
		return 0, &SalaryDataError{Field: field, Value: s, Reason: reason}
	}
	return v, nil
}

// stripDigitGroups removes underscores that sit between two digits. ok is
// false when any underscore is leading, trailing, doubled or next to a sign.
func stripDigitGroups(s string) (string, bool) {
	if !strings.Contains(s, "_") {
		return s, true
	}
	isDigit := func(c byte) bool { return c >= '0' && c <= '9' }

	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] != '_' {
			b.WriteByte(s[i])
			continue
		}
		if i == 0 || i == len(s)-1 || !isDigit(s[i-1]) || !isDigit(s[i+1]) {
			return "", false
		}
	}
	return b.String(), true
}

// MatchesSalaryRange reports whether salary lies within job's
// [min_salary, max_salary] range, bounds included.
//
// The error wraps ErrInvalidSalaryData when either bound is missing or not
// an integer, when min_salary exceeds max_salary, or when salary is not an
// integer.
func MatchesSalaryRange[S SalaryInput](job models.Job, salary S) (bool, error) {
	r, err := ParseSalaryRange(job)
	if err != nil {
		return false, err
	}
	target, err := ParseSalary(salary)
	if err != nil {
		return false, err
	}
	return r.Contains(target), nil
}

// FilterBySalaryRange returns the jobs whose salary range contains salary,
// in input order. Jobs with invalid salary data are skipped.
func FilterBySalaryRange[S SalaryInput](jobs []models.Job, salary S) []models.Job {
	filtered := make([]models.Job, 0)
	for i, job := range jobs {
		ok, err := MatchesSalaryRange(job, salary)
		if err != nil {
			slog.Debug("skipping job with invalid salary data", "index", i, "error", err)
			continue
		}
		if ok {
			filtered = append(filtered, job)
		}
	}
	return filtered
}
