package models

import "strings"

// Column names used by job listing datasets
const (
	ColumnTitle     = "job_title"
	ColumnCompany   = "company"
	ColumnIndustry  = "industry"
	ColumnMinSalary = "min_salary"
	ColumnMaxSalary = "max_salary"
)

// Field is an optional string value read from a dataset row.
// Valid is false when the column was not present in the row.
type Field struct {
	Value string `json:"value"`
	Valid bool   `json:"valid"`
}

// NewField returns a present field holding s
func NewField(s string) Field {
	return Field{Value: s, Valid: true}
}

// Empty reports whether the field is absent or blank
func (f Field) Empty() bool {
	return !f.Valid || strings.TrimSpace(f.Value) == ""
}

// Job represents one job listing from a dataset
type Job struct {
	Title     Field `json:"job_title"`
	Company   Field `json:"company"`
	Industry  Field `json:"industry"`
	MinSalary Field `json:"min_salary"`
	MaxSalary Field `json:"max_salary"`

	// Raw keeps every column of the source row, including the ones above.
	Raw map[string]string `json:"-"`
}

// JobFromRow builds a Job from a header-keyed row. Column lookup is
// case-insensitive and ignores surrounding whitespace in the header.
func JobFromRow(row map[string]string) Job {
	normalized := make(map[string]string, len(row))
	for k, v := range row {
		normalized[strings.ToLower(strings.TrimSpace(k))] = v
	}

	lookup := func(col string) Field {
		if v, ok := normalized[col]; ok {
			return NewField(v)
		}
		return Field{}
	}

	return Job{
		Title:     lookup(ColumnTitle),
		Company:   lookup(ColumnCompany),
		Industry:  lookup(ColumnIndustry),
		MinSalary: lookup(ColumnMinSalary),
		MaxSalary: lookup(ColumnMaxSalary),
		Raw:       row,
	}
}

// Row returns the job as a column-keyed map. Raw columns are returned as-is
// when the job was read from a dataset.
func (j Job) Row() map[string]string {
	if j.Raw != nil {
		out := make(map[string]string, len(j.Raw))
		for k, v := range j.Raw {
			out[k] = v
		}
		return out
	}

	out := make(map[string]string, 5)
	for col, f := range map[string]Field{
		ColumnTitle:     j.Title,
		ColumnCompany:   j.Company,
		ColumnIndustry:  j.Industry,
		ColumnMinSalary: j.MinSalary,
		ColumnMaxSalary: j.MaxSalary,
	} {
		if f.Valid {
			out[col] = f.Value
		}
	}
	return out
}
