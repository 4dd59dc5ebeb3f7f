package reader

import (
	"encoding/csv"
	"errors"
	"io"
	"strings"
)

// parseCSV reads header-keyed rows. Short rows leave their trailing columns
// absent; extra cells without a header are dropped.
func parseCSV(r io.Reader) ([]map[string]string, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\ufeff")
	}

	var rows []map[string]string
	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		rows = append(rows, zipRow(header, record))
	}
	return rows, nil
}

// zipRow pairs header names with cell values.
func zipRow(header, cells []string) map[string]string {
	row := make(map[string]string, len(header))
	for i, name := range header {
		if i >= len(cells) {
			break
		}
		row[name] = cells[i]
	}
	return row
}
