// Package insights answers aggregate and filter queries over job listings:
// distinct industries, salary extremes, and salary range matching.
//
// Aggregate queries take a dataset path and load rows through a ReadFunc.
// Filter queries operate on jobs already in memory and never re-read.
package insights

import (
	"fmt"
	"log/slog"

	"github.com/fr4nk3nst1ner/jobinsights/internal/models"
	"github.com/fr4nk3nst1ner/jobinsights/internal/reader"
)

// ReadFunc loads every job of the dataset at path.
type ReadFunc func(path string) ([]models.Job, error)

// RawReadFunc returns the unparsed contents of the dataset at path.
type RawReadFunc func(path string) ([]byte, error)

// Option configures an Insights
type Option func(*Insights)

// WithRawReader sets how CountOccurrences loads file contents
func WithRawReader(readRaw RawReadFunc) Option {
	return func(in *Insights) {
		in.readRaw = readRaw
	}
}

// Insights runs aggregate queries against datasets loaded by its ReadFunc.
// It holds no mutable state and is safe for concurrent use.
type Insights struct {
	read    ReadFunc
	readRaw RawReadFunc
}

// New returns an Insights that loads datasets with read. A nil read, or a
// missing raw reader, falls back to the reader package defaults.
func New(read ReadFunc, opts ...Option) *Insights {
	in := &Insights{read: read}
	for _, opt := range opts {
		opt(in)
	}
	if in.read == nil {
		in.read = reader.Read
	}
	if in.readRaw == nil {
		in.readRaw = reader.ReadRaw
	}
	return in
}

// Jobs loads the dataset at path.
func (in *Insights) Jobs(path string) ([]models.Job, error) {
	jobs, err := in.read(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	slog.Debug("dataset loaded", "path", path, "rows", len(jobs))
	return jobs, nil
}
