package utils

import (
	"fmt"
	"strconv"

	"github.com/dustin/go-humanize"
)

// NotAvailable is shown in place of a salary that is missing or unparseable
const NotAvailable = "Not Available"

// IsDigits reports whether s is a non-empty run of ASCII digits.
// Signs, whitespace and separators are rejected.
func IsDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// SalaryAmount returns the value of a digits-only salary string. ok is
// false for anything IsDigits rejects or that overflows an int.
func SalaryAmount(s string) (amount int, ok bool) {
	if !IsDigits(s) {
		return 0, false
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return v, true
}

// FormatSalary formats a digits-only salary with a dollar sign and comma
// separators. Any other input is returned unchanged.
func FormatSalary(salary string) string {
	amount, ok := SalaryAmount(salary)
	if !ok {
		return salary
	}
	return FormatAmount(amount)
}

// FormatAmount formats an integer salary, e.g. 120000 -> "$120,000"
func FormatAmount(amount int) string {
	return fmt.Sprintf("$%s", humanize.Comma(int64(amount)))
}

// FormatRange formats a job's salary range for display, or NotAvailable
// when either bound is not a plain amount.
func FormatRange(minSalary, maxSalary string) string {
	if _, ok := SalaryAmount(minSalary); !ok {
		return NotAvailable
	}
	if _, ok := SalaryAmount(maxSalary); !ok {
		return NotAvailable
	}
	return FormatSalary(minSalary) + " - " + FormatSalary(maxSalary)
}
