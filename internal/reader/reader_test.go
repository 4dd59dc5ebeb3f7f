package reader

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	return path
}

func TestRead_CSV(t *testing.T) {
	path := writeFile(t, "jobs.csv", "\ufeffjob_title,company,industry,min_salary,max_salary\n"+
		"Engineer,Acme,Finance,1000,2000\n"+
		"\"Analyst, Senior\",Globex,,abc,3000\n"+
		"Intern,Initech,Tech\n")

	jobs, err := Read(path)
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if len(jobs) != 3 {
		t.Fatalf("Read() returned %d jobs, want 3", len(jobs))
	}

	if jobs[0].Title.Value != "Engineer" || jobs[0].MinSalary.Value != "1000" {
		t.Errorf("jobs[0] = %+v", jobs[0])
	}
	if jobs[1].Title.Value != "Analyst, Senior" {
		t.Errorf("quoted title = %q", jobs[1].Title.Value)
	}
	if !jobs[1].Industry.Valid || jobs[1].Industry.Value != "" {
		t.Errorf("empty industry should be present and blank, got %+v", jobs[1].Industry)
	}
	if jobs[2].MinSalary.Valid || jobs[2].MaxSalary.Valid {
		t.Errorf("short row should leave salary columns absent, got %+v", jobs[2])
	}
}

func TestRead_EmptyCSV(t *testing.T) {
	path := writeFile(t, "empty.csv", "")

	jobs, err := Read(path)
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if len(jobs) != 0 {
		t.Errorf("Read() returned %d jobs, want 0", len(jobs))
	}
}

func TestRead_HTML(t *testing.T) {
	path := writeFile(t, "jobs.html", `<html><body>
<table>
  <thead><tr><th>industry</th><th>min_salary</th><th>max_salary</th></tr></thead>
  <tbody>
    <tr><td> Finance </td><td>10</td><td>20</td></tr>
    <tr><td>Tech</td><td>30</td><td>40</td></tr>
  </tbody>
</table>
<table><tr><td>ignored</td></tr></table>
</body></html>`)

	jobs, err := Read(path)
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if len(jobs) != 2 {
		t.Fatalf("Read() returned %d jobs, want 2", len(jobs))
	}
	if jobs[0].Industry.Value != "Finance" {
		t.Errorf("Industry = %q, want %q", jobs[0].Industry.Value, "Finance")
	}
	if jobs[1].MaxSalary.Value != "40" {
		t.Errorf("MaxSalary = %q, want %q", jobs[1].MaxSalary.Value, "40")
	}
}

func TestRead_HTMLWithoutTable(t *testing.T) {
	path := writeFile(t, "jobs.html", "<html><body><p>nothing</p></body></html>")

	if _, err := Read(path); !errors.Is(err, errNoTable) {
		t.Errorf("Read() error = %v, want %v", err, errNoTable)
	}
}

func TestRead_JSON(t *testing.T) {
	path := writeFile(t, "jobs.json", `[
		{"industry": "Finance", "min_salary": 10, "max_salary": "20"},
		{"industry": null, "min_salary": "x"}
	]`)

	jobs, err := Read(path)
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if len(jobs) != 2 {
		t.Fatalf("Read() returned %d jobs, want 2", len(jobs))
	}
	if jobs[0].MinSalary.Value != "10" {
		t.Errorf("numeric min_salary = %q, want %q", jobs[0].MinSalary.Value, "10")
	}
	if jobs[1].Industry.Valid {
		t.Errorf("null industry should be absent")
	}
}

func TestRead_Errors(t *testing.T) {
	if _, err := Read(filepath.Join(t.TempDir(), "missing.csv")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Read() missing file error = %v, want os.ErrNotExist", err)
	}

	path := writeFile(t, "jobs.xlsx", "binary")
	if _, err := Read(path); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("Read() error = %v, want %v", err, ErrUnsupportedFormat)
	}

	path = writeFile(t, "bad.json", `{"not": "an array"}`)
	if _, err := Read(path); err == nil {
		t.Error("Read() expected error for non-array JSON")
	}
}

func TestReader_WithProgress(t *testing.T) {
	path := writeFile(t, "jobs.csv", "industry\nFinance\nTech\n")

	var buf bytes.Buffer
	jobs, err := New(WithProgress(&buf)).Read(path)
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if len(jobs) != 2 {
		t.Errorf("Read() returned %d jobs, want 2", len(jobs))
	}
	if buf.Len() == 0 {
		t.Error("progress bar wrote nothing")
	}
}

func TestRead_URL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/exports/jobs.csv" {
			http.NotFound(w, r)
			return
		}
		w.Write([]byte("industry,min_salary,max_salary\nTech,1,2\n"))
	}))
	defer srv.Close()

	jobs, err := New(WithHTTPClient(srv.Client())).Read(srv.URL + "/exports/jobs.csv?token=abc")
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if len(jobs) != 1 || jobs[0].Industry.Value != "Tech" {
		t.Errorf("Read() = %+v", jobs)
	}

	if _, err := Read(srv.URL + "/missing.csv"); err == nil {
		t.Error("Read() expected error for 404")
	}
}

func TestReadRaw(t *testing.T) {
	content := "industry\nTech\n"

	path := filepath.Join(t.TempDir(), "notes.txt")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	got, err := ReadRaw(path)
	if err != nil {
		t.Fatalf("ReadRaw() error = %v", err)
	}
	if string(got) != content {
		t.Errorf("ReadRaw() = %q, want %q", got, content)
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(content))
	}))
	defer srv.Close()

	got, err = New(WithHTTPClient(srv.Client())).ReadRaw(srv.URL + "/any")
	if err != nil {
		t.Fatalf("ReadRaw() URL error = %v", err)
	}
	if string(got) != content {
		t.Errorf("ReadRaw() URL = %q, want %q", got, content)
	}

	if _, err := ReadRaw(path + ".missing"); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("ReadRaw() missing file error = %v, want %v", err, os.ErrNotExist)
	}
}
