package insights

import (
	"sort"

	"github.com/fr4nk3nst1ner/jobinsights/internal/models"
)

// IndustrySet is a set of distinct, non-empty industry names.
type IndustrySet map[string]struct{}

// Sorted returns the industries in lexical order.
func (s IndustrySet) Sorted() []string {
	out := make([]string, 0, len(s))
	for industry := range s {
		out = append(out, industry)
	}
	sort.Strings(out)
	return out
}

// UniqueIndustries returns every distinct non-empty industry in the dataset at path.
func (in *Insights) UniqueIndustries(path string) (IndustrySet, error) {
	jobs, err := in.Jobs(path)
	if err != nil {
		return nil, err
	}

	industries := make(IndustrySet)
	for _, job := range jobs {
		if job.Industry.Valid && job.Industry.Value != "" {
			industries[job.Industry.Value] = struct{}{}
		}
	}
	return industries, nil
}

// FilterByIndustry returns the jobs whose industry equals industry exactly,
// in input order.
func FilterByIndustry(jobs []models.Job, industry string) []models.Job {
	filtered := make([]models.Job, 0)
	for _, job := range jobs {
		if job.Industry.Valid && job.Industry.Value == industry {
			filtered = append(filtered, job)
		}
	}
	return filtered
}
