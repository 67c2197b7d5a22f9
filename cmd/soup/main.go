// Command soup runs the alphabet soup for one keyword from the terminal and
// prints the suggestions as CSV, JSON or a per-category report.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/pflag"

	"keyword-soup/config"
	"keyword-soup/internal/category"
	"keyword-soup/internal/keyword"
	"keyword-soup/internal/keyword/usecase"
	"keyword-soup/pkg/googlesuggest"
	"keyword-soup/pkg/log"
)

const (
	outputCSV    = "csv"
	outputJSON   = "json"
	outputReport = "report"
)

type options struct {
	output       string
	clientFormat string
	apiURL       string
	language     string
	categories   string
	concurrency  int
	timeout      time.Duration
	logLevel     string
}

func main() {
	opts := options{}
	fs := pflag.NewFlagSet("soup", pflag.ExitOnError)
	fs.StringVarP(&opts.output, "output", "o", outputReport, "output format: report, csv or json")
	fs.StringVar(&opts.clientFormat, "client", googlesuggest.FormatToolbar, "suggestion response format: toolbar or firefox")
	fs.StringVar(&opts.apiURL, "api-url", googlesuggest.DefaultAPIURL, "suggestion endpoint")
	fs.StringVar(&opts.language, "lang", "", "optional language hint sent as hl")
	fs.StringVar(&opts.categories, "categories", "", "YAML category table (default: built-in)")
	fs.IntVarP(&opts.concurrency, "concurrency", "c", 1, "queries in flight at once (1-27)")
	fs.DurationVar(&opts.timeout, "timeout", googlesuggest.DefaultTimeout, "per-request timeout")
	fs.StringVar(&opts.logLevel, "log-level", "warn", "log level written to stderr")
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: soup [flags] <keyword>\n\n")
		fs.PrintDefaults()
	}
	_ = fs.Parse(os.Args[1:])

	if fs.NArg() == 0 {
		fs.Usage()
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, opts, strings.Join(fs.Args(), " "), os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "soup:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, opts options, kw string, out io.Writer) error {
	if opts.output != outputCSV && opts.output != outputJSON && opts.output != outputReport {
		return fmt.Errorf("unknown output %q", opts.output)
	}

	logger := log.Init(log.ZapConfig{
		Level:    opts.logLevel,
		Mode:     log.ModeDevelopment,
		Encoding: log.EncodingConsole,
		Output:   os.Stderr,
	})

	table, err := config.BuildCategoryTable(config.CategoriesConfig{File: opts.categories})
	if err != nil {
		return err
	}

	fetcher, err := googlesuggest.New(googlesuggest.Config{
		APIURL:   opts.apiURL,
		Format:   opts.clientFormat,
		Language: opts.language,
		Timeout:  opts.timeout,
	})
	if err != nil {
		return err
	}

	concurrency := min(max(opts.concurrency, 1), 27)
	uc := usecase.New(logger, fetcher, category.New(table), nil, concurrency)

	res, err := uc.Analyze(ctx, keyword.AnalyzeInput{Keyword: kw})
	if err != nil {
		if errors.Is(err, keyword.ErrNoSuggestionsFound) {
			return fmt.Errorf("no suggestions found for %q", strings.TrimSpace(kw))
		}
		return err
	}

	switch opts.output {
	case outputCSV:
		csv, err := usecase.FormatCSV(res.Suggestions)
		if err != nil {
			return err
		}
		_, err = io.WriteString(out, csv)
		return err
	case outputJSON:
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(map[string]any{
			"keyword":     res.Keyword,
			"suggestions": res.Suggestions,
			"categories":  res.Categories,
			"metrics":     res.Metrics,
		})
	default:
		return writeReport(out, res, table)
	}
}

func writeReport(out io.Writer, res keyword.AnalyzeOutput, table category.Table) error {
	var b strings.Builder
	fmt.Fprintf(&b, "%d suggestions for %q\n", len(res.Suggestions), res.Keyword)

	for _, c := range table.Categories() {
		m, _ := res.Metrics.Get(c.Name)
		fmt.Fprintf(&b, "\n%s %s  %d (%.1f%%)\n", c.Icon, c.Name, m.Count, m.Percentage)
		items, _ := res.Categories.Get(c.Name)
		for _, s := range items {
			fmt.Fprintf(&b, "  - %s\n", s)
		}
	}

	_, err := io.WriteString(out, b.String())
	return err
}
