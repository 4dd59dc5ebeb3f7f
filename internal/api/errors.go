package api

import (
	"errors"
	"net/http"

	"github.com/fr4nk3nst1ner/jobinsights/internal/insights"
	"github.com/fr4nk3nst1ner/jobinsights/internal/logging"
)

// Error codes returned in ErrorResponse.Code
const (
	CodeEmptyAggregate    = "EMPTY_AGGREGATE"
	CodeInvalidSalaryData = "INVALID_SALARY_DATA"
	CodeDatasetError      = "DATASET_ERROR"
	CodeInvalidWord       = "INVALID_WORD"
)

// ErrorResponse is the JSON body of every API error.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// respondError maps query errors to status codes and logs the technical details.
func respondError(w http.ResponseWriter, r *http.Request, err error) {
	status, code := http.StatusInternalServerError, CodeDatasetError
	switch {
	case errors.Is(err, insights.ErrEmptyAggregate):
		status, code = http.StatusUnprocessableEntity, CodeEmptyAggregate
	case errors.Is(err, insights.ErrInvalidSalaryData):
		status, code = http.StatusUnprocessableEntity, CodeInvalidSalaryData
	case errors.Is(err, insights.ErrEmptyWord):
		status, code = http.StatusBadRequest, CodeInvalidWord
	}

	logging.FromContext(r.Context()).Error("request error",
		"path", r.URL.Path,
		"status", status,
		"code", code,
		"error", err.Error(),
	)
	writeJSON(w, status, ErrorResponse{Error: err.Error(), Code: code})
}
