package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/fr4nk3nst1ner/jobinsights/internal/api"
	"github.com/fr4nk3nst1ner/jobinsights/internal/client"
	"github.com/fr4nk3nst1ner/jobinsights/internal/config"
	"github.com/fr4nk3nst1ner/jobinsights/internal/insights"
	"github.com/fr4nk3nst1ner/jobinsights/internal/logging"
	"github.com/fr4nk3nst1ner/jobinsights/internal/models"
	"github.com/fr4nk3nst1ner/jobinsights/internal/reader"
	"github.com/fr4nk3nst1ner/jobinsights/internal/ui"
)

// options holds the parsed command line
type options struct {
	configPath string
	file       string
	format     string

	industries bool
	maxSalary  bool
	minSalary  bool
	summary    bool
	industry   string
	salary     string
	count      string

	match    string
	rangeMin string
	rangeMax string
	serve    bool
	progress bool
	debug    bool
	silence  bool
	examples bool
	setFlags map[string]bool
}

// printExamples displays usage examples for the program
func printExamples(w io.Writer) {
	fmt.Fprintln(w, "\n📋 JobInsights Usage Examples 📋")
	fmt.Fprintln(w, "\n1. List every industry in a dataset:")
	fmt.Fprintln(w, "   jobinsights -file data/jobs.csv -industries")
	fmt.Fprintln(w, "\n2. Show the lowest and highest salaries:")
	fmt.Fprintln(w, "   jobinsights -file data/jobs.csv -summary")
	fmt.Fprintln(w, "\n3. Finance jobs whose range includes $85,000, as CSV:")
	fmt.Fprintln(w, "   jobinsights -file data/jobs.csv -industry Finance -salary 85000 -format csv")
	fmt.Fprintln(w, "\n4. Check a single range without a dataset:")
	fmt.Fprintln(w, "   jobinsights -match 85000 -min 60000 -max 90000")
	fmt.Fprintln(w, "\n5. Count how often a skill is mentioned:")
	fmt.Fprintln(w, "   jobinsights -file data/jobs.csv -count python")
	fmt.Fprintln(w, "\n6. Serve the queries over HTTP:")
	fmt.Fprintln(w, "   jobinsights -file data/jobs.html -serve")
}

func parseFlags(args []string) (*options, error) {
	fs := flag.NewFlagSet("jobinsights", flag.ContinueOnError)
	o := &options{}

	fs.StringVar(&o.configPath, "config", config.DefaultPath, "Path to the YAML config file")
	fs.StringVar(&o.file, "file", "", "Dataset to query (.csv, .html or .json)")
	fs.StringVar(&o.format, "format", "", "Output format: table, csv or json")

	fs.BoolVar(&o.industries, "industries", false, "List the unique industries")
	fs.BoolVar(&o.maxSalary, "max-salary", false, "Show the highest max_salary")
	fs.BoolVar(&o.minSalary, "min-salary", false, "Show the lowest min_salary")
	fs.BoolVar(&o.summary, "summary", false, "Show both salary extremes")
	fs.StringVar(&o.industry, "industry", "", "Only list jobs in this industry")
	fs.StringVar(&o.salary, "salary", "", "Only list jobs whose salary range contains this salary")
	fs.StringVar(&o.count, "count", "", "Count case-insensitive occurrences of a word in the dataset file")

	fs.StringVar(&o.match, "match", "", "Check whether this salary lies in the -min/-max range")
	fs.StringVar(&o.rangeMin, "min", "", "Range minimum for -match")
	fs.StringVar(&o.rangeMax, "max", "", "Range maximum for -match")

	fs.BoolVar(&o.serve, "serve", false, "Serve the queries over HTTP")
	fs.BoolVar(&o.progress, "progress", false, "Show a progress bar while loading the dataset")
	fs.BoolVar(&o.debug, "debug", false, "Enable debug logging")
	fs.BoolVar(&o.examples, "examples", false, "Show usage examples")

	// Banner control flags (two aliases for the same functionality)
	silence := fs.Bool("silence", false, "Silence the banner")
	noBanner := fs.Bool("nobanner", false, "Silence the banner (alias for -silence)")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	o.silence = *silence || *noBanner

	o.setFlags = make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { o.setFlags[f.Name] = true })

	if (o.setFlags["min"] || o.setFlags["max"]) && !o.setFlags["match"] {
		return nil, errors.New("-min and -max require -match")
	}
	if o.setFlags["count"] && o.count == "" {
		return nil, errors.New("-count requires a non-empty word")
	}
	return o, nil
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the command line and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	opts, err := parseFlags(args)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		fmt.Fprintln(stderr, err)
		return 2
	}

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	if opts.debug {
		cfg.Logging.Level = "debug"
	}
	logging.Setup(stderr, cfg.Logging.Level, cfg.Logging.Format)

	if opts.file != "" {
		cfg.Dataset.Path = opts.file
	}
	if opts.format != "" {
		cfg.Display.Format = opts.format
		if err := cfg.Validate(); err != nil {
			slog.Error("invalid options", "error", err)
			return 2
		}
	}

	ui.PrintBanner(stdout, opts.silence || !cfg.Display.Banner || cfg.Display.Format != ui.FormatTable)

	if opts.examples {
		printExamples(stdout)
		return 0
	}

	httpClient, err := client.CreateHTTPClient(cfg.Dataset.Proxy)
	if err != nil {
		slog.Error("creating HTTP client", "proxy", cfg.Dataset.Proxy, "error", err)
		return 1
	}
	readOpts := []reader.Option{reader.WithHTTPClient(httpClient)}
	if opts.progress {
		readOpts = append(readOpts, reader.WithProgress(stderr))
	}
	r := reader.New(readOpts...)
	in := insights.New(r.Read, insights.WithRawReader(r.ReadRaw))

	if err := execute(in, cfg, opts, stdout); err != nil {
		slog.Error("query failed", "dataset", cfg.Dataset.Path, "error", err)
		return 1
	}
	return 0
}

// execute runs the query selected by opts.
func execute(in *insights.Insights, cfg *config.Config, opts *options, w io.Writer) error {
	path, format := cfg.Dataset.Path, cfg.Display.Format

	switch {
	case opts.serve:
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return api.NewServer(in, path, cfg.Server.RequestTimeout).ListenAndServe(ctx, cfg.Server.Addr)

	case opts.setFlags["match"]:
		row := make(map[string]string, 2)
		if opts.setFlags["min"] {
			row[models.ColumnMinSalary] = opts.rangeMin
		}
		if opts.setFlags["max"] {
			row[models.ColumnMaxSalary] = opts.rangeMax
		}
		ok, err := insights.MatchesSalaryRange(models.JobFromRow(row), opts.match)
		if err != nil {
			return err
		}
		fmt.Fprintln(w, ok)
		return nil

	case opts.setFlags["count"]:
		n, err := in.CountOccurrences(path, opts.count)
		if err != nil {
			return err
		}
		return ui.RenderCount(w, opts.count, n, format)

	case opts.industries:
		industries, err := in.UniqueIndustries(path)
		if err != nil {
			return err
		}
		return ui.RenderIndustries(w, industries.Sorted(), format)

	case opts.summary, opts.maxSalary && opts.minSalary:
		bounds, err := in.SalaryBounds(path)
		if err != nil {
			return err
		}
		return ui.RenderSalaries(w, map[string]int{"min": bounds.Min, "max": bounds.Max}, format)

	case opts.maxSalary:
		v, err := in.MaxSalary(path)
		if err != nil {
			return err
		}
		return ui.RenderSalaries(w, map[string]int{"max": v}, format)

	case opts.minSalary:
		v, err := in.MinSalary(path)
		if err != nil {
			return err
		}
		return ui.RenderSalaries(w, map[string]int{"min": v}, format)

	default:
		jobs, err := in.Jobs(path)
		if err != nil {
			return err
		}
		if opts.setFlags["industry"] {
			jobs = insights.FilterByIndustry(jobs, opts.industry)
		}
		if opts.setFlags["salary"] {
			salary, err := insights.ParseSalary(opts.salary)
			if err != nil {
				return err
			}
			jobs = insights.FilterBySalaryRange(jobs, salary)
		}
		return ui.RenderJobs(w, jobs, format)
	}
}
