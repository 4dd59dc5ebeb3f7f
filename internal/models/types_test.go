package models

import (
	"reflect"
	"testing"
)

func TestJobFromRow(t *testing.T) {
	row := map[string]string{
		" Industry ": "Finance",
		"min_salary": "10",
		"company":    "",
		"location":   "Remote",
	}

	job := JobFromRow(row)

	if job.Industry != NewField("Finance") {
		t.Errorf("Industry = %+v", job.Industry)
	}
	if job.MinSalary != NewField("10") {
		t.Errorf("MinSalary = %+v", job.MinSalary)
	}
	if job.MaxSalary.Valid {
		t.Errorf("MaxSalary should be absent, got %+v", job.MaxSalary)
	}
	if !job.Company.Valid || !job.Company.Empty() {
		t.Errorf("Company should be present and empty, got %+v", job.Company)
	}
	if !reflect.DeepEqual(job.Row(), row) {
		t.Errorf("Row() = %v, want %v", job.Row(), row)
	}
}

func TestJob_RowWithoutRaw(t *testing.T) {
	job := Job{Industry: NewField("Tech"), MaxSalary: NewField("5")}

	want := map[string]string{ColumnIndustry: "Tech", ColumnMaxSalary: "5"}
	if got := job.Row(); !reflect.DeepEqual(got, want) {
		t.Errorf("Row() = %v, want %v", got, want)
	}
}

func TestField_Empty(t *testing.T) {
	tests := []struct {
		f    Field
		want bool
	}{
		{Field{}, true},
		{NewField(""), true},
		{NewField("  "), true},
		{NewField("x"), false},
	}
	for _, tt := range tests {
		if got := tt.f.Empty(); got != tt.want {
			t.Errorf("%+v.Empty() = %v, want %v", tt.f, got, tt.want)
		}
	}
}
