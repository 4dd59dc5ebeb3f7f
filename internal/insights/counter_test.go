package insights

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestCountOccurrences(t *testing.T) {
	content := "job_title,description\n" +
		"Python Developer,Write python and PYTHON tooling\n" +
		"Frontend Engineer,Javascript; some JavaScript\n"

	var paths []string
	readRaw := func(path string) ([]byte, error) {
		paths = append(paths, path)
		return []byte(content), nil
	}
	in := New(nil, WithRawReader(readRaw))

	tests := []struct {
		word string
		want int
	}{
		{"Python", 3},
		{"python", 3},
		{"PYTHON", 3},
		{"javascript", 2},
		{"Javascript", 2},
		{"Rust", 0},
		{"developer,write", 1},
	}

	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			got, err := in.CountOccurrences("jobs.csv", tt.word)
			if err != nil {
				t.Fatalf("CountOccurrences() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("CountOccurrences(%q) = %d, want %d", tt.word, got, tt.want)
			}
		})
	}

	for _, p := range paths {
		if p != "jobs.csv" {
			t.Errorf("raw read called with %q, want jobs.csv", p)
		}
	}
}

func TestCountOccurrences_Errors(t *testing.T) {
	readErr := errors.New("gone")
	in := New(nil, WithRawReader(func(string) ([]byte, error) { return nil, readErr }))

	if _, err := in.CountOccurrences("jobs.csv", ""); !errors.Is(err, ErrEmptyWord) {
		t.Errorf("CountOccurrences(\"\") error = %v, want %v", err, ErrEmptyWord)
	}
	if _, err := in.CountOccurrences("jobs.csv", "python"); !errors.Is(err, readErr) {
		t.Errorf("CountOccurrences() error = %v, want %v", err, readErr)
	}
}

func TestCountOccurrences_FromDisk(t *testing.T) {
	path := filepath.Join(t.TempDir(), "jobs.csv")
	if err := os.WriteFile(path, []byte("industry\nTech\ntech\nFinTech\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := New(nil).CountOccurrences(path, "TECH")
	if err != nil {
		t.Fatalf("CountOccurrences() error = %v", err)
	}
	if got != 3 {
		t.Errorf("CountOccurrences() = %d, want 3", got)
	}
}
