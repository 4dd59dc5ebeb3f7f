package utils

import "testing"

func TestIsDigits(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"", false},
		{"0", true},
		{"150000", true},
		{"-10", false},
		{"+10", false},
		{" 10", false},
		{"1,000", false},
		{"12.5", false},
		{"abc", false},
	}

	for _, tt := range tests {
		if got := IsDigits(tt.in); got != tt.want {
			t.Errorf("IsDigits(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestSalaryAmount(t *testing.T) {
	tests := []struct {
		in     string
		want   int
		wantOK bool
	}{
		{"120000", 120000, true},
		{"007", 7, true},
		{"$120,000", 0, false},
		{"100K", 0, false},
		{" 42 ", 0, false},
		{"abc", 0, false},
		{"", 0, false},
		{"99999999999999999999999", 0, false},
	}

	for _, tt := range tests {
		got, ok := SalaryAmount(tt.in)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("SalaryAmount(%q) = (%d, %v), want (%d, %v)", tt.in, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestFormatSalary(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{NotAvailable, NotAvailable},
		{"1234567", "$1,234,567"},
		{"0", "$0"},
		{"90K", "90K"},
		{"n/a", "n/a"},
	}

	for _, tt := range tests {
		if got := FormatSalary(tt.in); got != tt.want {
			t.Errorf("FormatSalary(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatRange(t *testing.T) {
	if got := FormatRange("1000", "2000"); got != "$1,000 - $2,000" {
		t.Errorf("FormatRange() = %q", got)
	}
	if got := FormatRange("", "2000"); got != NotAvailable {
		t.Errorf("FormatRange() with missing min = %q, want %q", got, NotAvailable)
	}
	if got := FormatRange("1000", "2k"); got != NotAvailable {
		t.Errorf("FormatRange() with non-numeric max = %q, want %q", got, NotAvailable)
	}
}
