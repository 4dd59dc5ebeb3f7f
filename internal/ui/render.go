package ui

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/pterm/pterm"

	"github.com/fr4nk3nst1ner/jobinsights/internal/models"
	"github.com/fr4nk3nst1ner/jobinsights/internal/utils"
)

// Output formats
const (
	FormatTable = "table"
	FormatCSV   = "csv"
	FormatJSON  = "json"
)

// maxCellWidth caps table cells so long titles do not wrap the terminal
const maxCellWidth = 40

// ColumnSalaryRange is the display column appended to csv job output
const ColumnSalaryRange = "salary_range"

// blankCell stands in for a missing or blank table value
const blankCell = "-"

// RenderJobs writes jobs in the given format. Table output shows the
// title, company, industry and salary range. csv keeps every column and
// appends a formatted salary_range; json keeps every column as read.
func RenderJobs(w io.Writer, jobs []models.Job, format string) error {
	switch strings.ToLower(format) {
	case FormatCSV:
		return writeCSV(w, jobs)
	case FormatJSON:
		rows := make([]map[string]string, 0, len(jobs))
		for _, job := range jobs {
			rows = append(rows, job.Row())
		}
		return writeJSON(w, rows)
	case FormatTable, "":
		data := pterm.TableData{{"Job Title", "Company", "Industry", "Salary Range"}}
		for _, job := range jobs {
			data = append(data, []string{
				truncateString(job.Title.Value, maxCellWidth),
				truncateString(job.Company.Value, maxCellWidth),
				cell(job.Industry),
				ColorizeRange(job.MinSalary.Value, job.MaxSalary.Value),
			})
		}
		out, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
		if err != nil {
			return err
		}
		fmt.Fprintln(w, out)
		fmt.Fprintf(w, "\nShowing %d jobs\n", len(jobs))
		return nil
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

// RenderIndustries writes industry names in the given format.
func RenderIndustries(w io.Writer, industries []string, format string) error {
	switch strings.ToLower(format) {
	case FormatCSV:
		cw := csv.NewWriter(w)
		if err := cw.Write([]string{models.ColumnIndustry}); err != nil {
			return err
		}
		for _, industry := range industries {
			if err := cw.Write([]string{industry}); err != nil {
				return err
			}
		}
		cw.Flush()
		return cw.Error()
	case FormatJSON:
		return writeJSON(w, map[string][]string{"industries": industries})
	case FormatTable, "":
		items := make([]pterm.BulletListItem, 0, len(industries))
		for _, industry := range industries {
			items = append(items, pterm.BulletListItem{Level: 0, Text: industry})
		}
		out, err := pterm.DefaultBulletList.WithItems(items).Srender()
		if err != nil {
			return err
		}
		fmt.Fprint(w, out)
		fmt.Fprintf(w, "\n%d unique industries\n", len(industries))
		return nil
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

// RenderSalaries writes labelled salary figures, e.g. {"min": 10, "max": 20}.
func RenderSalaries(w io.Writer, salaries map[string]int, format string) error {
	labels := make([]string, 0, len(salaries))
	for label := range salaries {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	switch strings.ToLower(format) {
	case FormatCSV:
		cw := csv.NewWriter(w)
		if err := cw.Write(labels); err != nil {
			return err
		}
		record := make([]string, len(labels))
		for i, label := range labels {
			record[i] = fmt.Sprintf("%d", salaries[label])
		}
		if err := cw.Write(record); err != nil {
			return err
		}
		cw.Flush()
		return cw.Error()
	case FormatJSON:
		return writeJSON(w, salaries)
	case FormatTable, "":
		for _, label := range labels {
			fmt.Fprintf(w, "%-12s %s\n", label+":", ColorizeSalary(salaries[label]))
		}
		return nil
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

func cell(f models.Field) string {
	if f.Empty() {
		return blankCell
	}
	return truncateString(f.Value, maxCellWidth)
}

// RenderCount writes how many times word occurs in a dataset.
func RenderCount(w io.Writer, word string, count int, format string) error {
	switch strings.ToLower(format) {
	case FormatCSV:
		cw := csv.NewWriter(w)
		if err := cw.Write([]string{"word", "count"}); err != nil {
			return err
		}
		if err := cw.Write([]string{word, strconv.Itoa(count)}); err != nil {
			return err
		}
		cw.Flush()
		return cw.Error()
	case FormatJSON:
		return writeJSON(w, struct {
			Word  string `json:"word"`
			Count int    `json:"count"`
		}{word, count})
	case FormatTable, "":
		fmt.Fprintf(w, "%q appears %s times\n", word, pterm.Cyan(humanize.Comma(int64(count))))
		return nil
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

// writeCSV writes every column of jobs, header sorted for stable output,
// followed by the salary_range display column.
func writeCSV(w io.Writer, jobs []models.Job) error {
	columnSet := make(map[string]struct{})
	rows := make([]map[string]string, 0, len(jobs))
	for _, job := range jobs {
		row := job.Row()
		for col := range row {
			columnSet[col] = struct{}{}
		}
		rows = append(rows, row)
	}

	columns := make([]string, 0, len(columnSet))
	for col := range columnSet {
		columns = append(columns, col)
	}
	sort.Strings(columns)

	cw := csv.NewWriter(w)
	if len(rows) > 0 {
		if err := cw.Write(append(columns, ColumnSalaryRange)); err != nil {
			return err
		}
	}
	for i, row := range rows {
		record := make([]string, len(columns), len(columns)+1)
		for j, col := range columns {
			record[j] = row[col]
		}
		record = append(record, utils.FormatRange(jobs[i].MinSalary.Value, jobs[i].MaxSalary.Value))
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// truncateString truncates a string to the specified length and adds "..." if necessary
func truncateString(s string, length int) string {
	r := []rune(s)
	if len(r) <= length {
		return s
	}
	return string(r[:length-3]) + "..."
}
