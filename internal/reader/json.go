package reader

import (
	"encoding/json"
	"fmt"
	"io"
)

// parseJSON reads an array of objects. Numbers keep their literal text,
// null values are treated as absent columns.
func parseJSON(r io.Reader) ([]map[string]string, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	var objects []map[string]any
	if err := dec.Decode(&objects); err != nil {
		return nil, err
	}

	rows := make([]map[string]string, 0, len(objects))
	for _, obj := range objects {
		row := make(map[string]string, len(obj))
		for k, v := range obj {
			switch val := v.(type) {
			case nil:
				continue
			case string:
				row[k] = val
			case json.Number:
				row[k] = val.String()
			default:
				row[k] = fmt.Sprint(val)
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}
