package api

import (
	"net/http"

	"github.com/fr4nk3nst1ner/jobinsights/internal/insights"
	"github.com/fr4nk3nst1ner/jobinsights/internal/models"
)

func (s *Server) handleIndustries(w http.ResponseWriter, r *http.Request) {
	industries, err := s.insights.UniqueIndustries(s.dataset)
	if err != nil {
		respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string][]string{"industries": industries.Sorted()})
}

func (s *Server) handleSalaries(w http.ResponseWriter, r *http.Request) {
	bounds, err := s.insights.SalaryBounds(s.dataset)
	if err != nil {
		respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, bounds)
}

// handleJobs lists jobs, narrowed by the optional industry and salary parameters.
func (s *Server) handleJobs(w http.ResponseWriter, r *http.Request) {
	jobs, err := s.insights.Jobs(s.dataset)
	if err != nil {
		respondError(w, r, err)
		return
	}

	q := r.URL.Query()
	if q.Has("industry") {
		jobs = insights.FilterByIndustry(jobs, q.Get("industry"))
	}
	if q.Has("salary") {
		salary, err := insights.ParseSalary(q.Get("salary"))
		if err != nil {
			respondError(w, r, err)
			return
		}
		jobs = insights.FilterBySalaryRange(jobs, salary)
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"count": len(jobs),
		"jobs":  rowsOf(jobs),
	})
}

// handleMatch checks one ad-hoc range given as min_salary and max_salary.
// Omitted parameters are treated as missing fields.
func (s *Server) handleMatch(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	row := make(map[string]string, 2)
	for _, col := range []string{models.ColumnMinSalary, models.ColumnMaxSalary} {
		if q.Has(col) {
			row[col] = q.Get(col)
		}
	}

	ok, err := insights.MatchesSalaryRange(models.JobFromRow(row), q.Get("salary"))
	if err != nil {
		respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"matches": ok})
}

// handleCount counts case-insensitive occurrences of the word parameter in
// the dataset file.
func (s *Server) handleCount(w http.ResponseWriter, r *http.Request) {
	word := r.URL.Query().Get("word")
	n, err := s.insights.CountOccurrences(s.dataset, word)
	if err != nil {
		respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"word": word, "count": n})
}
