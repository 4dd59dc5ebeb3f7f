package insights

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
)

// ErrEmptyWord is returned when CountOccurrences is asked to count nothing.
var ErrEmptyWord = errors.New("word to count must not be empty")

// CountOccurrences counts case-insensitive, non-overlapping occurrences of
// word anywhere in the file at path, headers and every column included.
func (in *Insights) CountOccurrences(path, word string) (int, error) {
	if word == "" {
		return 0, ErrEmptyWord
	}

	data, err := in.readRaw(path)
	if err != nil {
		return 0, fmt.Errorf("reading %s: %w", path, err)
	}

	count := strings.Count(strings.ToLower(string(data)), strings.ToLower(word))
	slog.Debug("occurrences counted", "path", path, "word", word, "count", count)
	return count, nil
}
