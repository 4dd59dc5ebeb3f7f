// Package reader loads job listing datasets into models.Job records.
//
// path is a local file or an http(s) URL. The format is chosen from the
// file extension:
//
//	.csv         comma separated, first record is the header
//	.html, .htm  first <table> of the document, header from <th> cells
//	.json        array of objects with string (or numeric) values
//
// Every row is converted with models.JobFromRow, so missing columns surface as
// invalid fields rather than errors.
package reader

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/cheggaaa/pb/v3"

	"github.com/fr4nk3nst1ner/jobinsights/internal/client"
	"github.com/fr4nk3nst1ner/jobinsights/internal/models"
)

// ErrUnsupportedFormat is returned for files whose extension has no parser.
var ErrUnsupportedFormat = errors.New("unsupported dataset format")

// Option configures a Reader
type Option func(*Reader)

// WithProgress shows a progress bar on w while rows are converted
func WithProgress(w io.Writer) Option {
	return func(r *Reader) {
		r.progress = w
	}
}

// WithHTTPClient sets the client used for http(s) datasets
func WithHTTPClient(c *http.Client) Option {
	return func(r *Reader) {
		r.httpClient = c
	}
}

// Reader loads datasets from disk or over HTTP.
type Reader struct {
	progress   io.Writer
	httpClient *http.Client
}

// New creates a Reader
func New(opts ...Option) *Reader {
	r := &Reader{}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

var defaultReader = New()

// Read loads every job of the dataset at path with default options.
func Read(path string) ([]models.Job, error) {
	return defaultReader.Read(path)
}

// ReadRaw returns the unparsed contents of the dataset at path with default options.
func ReadRaw(path string) ([]byte, error) {
	return defaultReader.ReadRaw(path)
}

// Read loads every job of the dataset at path.
func (r *Reader) Read(path string) ([]models.Job, error) {
	data, err := r.ReadRaw(path)
	if err != nil {
		return nil, err
	}
	name, ext := sourceName(path)
	return r.parse(bytes.NewReader(data), name, ext)
}

// ReadRaw returns the contents of path, downloading it first when path is
// an http(s) URL.
func (r *Reader) ReadRaw(path string) ([]byte, error) {
	if !isURL(path) {
		return os.ReadFile(path)
	}

	httpClient := r.httpClient
	if httpClient == nil {
		var err error
		if httpClient, err = client.CreateHTTPClient(""); err != nil {
			return nil, err
		}
	}

	body, err := client.Fetch(context.Background(), httpClient, path)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", path, err)
	}
	return body, nil
}

// sourceName returns the base name and extension used to pick a parser.
// Query strings of URLs are ignored.
func sourceName(src string) (string, string) {
	if isURL(src) {
		if u, err := url.Parse(src); err == nil {
			return path.Base(u.Path), path.Ext(u.Path)
		}
	}
	return filepath.Base(src), filepath.Ext(src)
}

func (r *Reader) parse(src io.Reader, name, ext string) ([]models.Job, error) {
	var rows []map[string]string
	var err error
	switch ext = strings.ToLower(ext); ext {
	case ".csv":
		rows, err = parseCSV(src)
	case ".html", ".htm":
		rows, err = parseHTML(src)
	case ".json":
		rows, err = parseJSON(src)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", name, err)
	}

	return r.convert(rows), nil
}

func isURL(src string) bool {
	return strings.HasPrefix(src, "http://") || strings.HasPrefix(src, "https://")
}

// convert turns raw rows into jobs, ticking the progress bar when enabled.
func (r *Reader) convert(rows []map[string]string) []models.Job {
	var bar *pb.ProgressBar
	if r.progress != nil {
		bar = pb.New(len(rows)).SetWriter(r.progress).Start()
		defer bar.Finish()
	}

	jobs := make([]models.Job, 0, len(rows))
	for _, row := range rows {
		jobs = append(jobs, models.JobFromRow(row))
		if bar != nil {
			bar.Increment()
		}
	}
	return jobs
}
