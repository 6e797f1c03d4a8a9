package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/tsawler/ae7q"
	"github.com/tsawler/ae7q/fetch"
	"github.com/tsawler/ae7q/format"
	"github.com/tsawler/ae7q/internal/config"
	"github.com/tsawler/ae7q/model"
	"github.com/tsawler/ae7q/xlsx"
)

// queryResult is the outcome of one command-line argument.
type queryResult struct {
	query    string
	data     ae7q.Data
	warnings []ae7q.Warning
}

func run(cmd *cobra.Command, opts *options, kind ae7q.Kind, args []string) error {
	logger := log.New(cmd.ErrOrStderr(), "ae7q: ", 0)

	cfg, err := loadConfig(opts.configPath)
	if err != nil {
		return err
	}

	outFormat, err := outputFormat(opts.formatName, opts.outputPath)
	if err != nil {
		return err
	}
	if outFormat.Binary() && opts.outputPath == "" {
		return fmt.Errorf("%s output needs --output", outFormat)
	}

	results := make([]queryResult, len(args))
	client := fetch.New(cfg)

	g, ctx := errgroup.WithContext(cmd.Context())
	if opts.parallel > 0 {
		g.SetLimit(opts.parallel)
	}
	for i, arg := range args {
		i, arg := i, arg
		g.Go(func() error {
			var (
				res queryResult
				err error
			)
			if opts.files {
				res, err = readFile(cfg, kind, arg)
			} else {
				if opts.verbose {
					logRequest(logger, client, kind, arg)
				}
				res, err = fetchQuery(ctx, client, cfg, kind, arg)
			}
			if err != nil {
				return fmt.Errorf("%s %s: %w", kind, arg, err)
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for _, res := range results {
		for _, w := range res.warnings {
			logger.Printf("%s %s: %s", kind, res.query, w)
		}
	}

	if opts.outputPath == "" {
		return render(cmd.OutOrStdout(), outFormat, results)
	}

	f, err := os.Create(opts.outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output: %w", err)
	}
	if err := render(f, outFormat, results); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// logRequest logs the address about to be fetched, or why it cannot be
// built.
func logRequest(logger *log.Logger, client *fetch.Client, kind ae7q.Kind, query string) {
	u, err := client.URL(kind, query)
	if err != nil {
		logger.Printf("%s %s: %v", kind, query, err)
		return
	}
	logger.Printf("GET %s", u)
}

// loadConfig reads the config file named by path or $AE7Q_CONFIG, then
// applies environment overrides.
func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		path = os.Getenv(config.EnvConfig)
	}
	cfg, err := config.LoadConfig(path)
	if err != nil {
		return nil, err
	}
	if err := cfg.ApplyEnv(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

// outputFormat picks the format named on the command line, else the one
// implied by the output file, else aligned text.
func outputFormat(name, outputPath string) (format.Format, error) {
	if name != "" {
		return format.Parse(name)
	}
	if f := format.Detect(outputPath); f != format.Unknown {
		return f, nil
	}
	return format.PrettyCSV, nil
}

func extractor(ext *ae7q.Extractor, cfg *config.Config, kind ae7q.Kind, query string) *ae7q.Extractor {
	ext = ext.Kind(kind).Query(query)
	if len(cfg.CanadianPrefixes) > 0 {
		ext = ext.CanadianPrefixes(cfg.CanadianPrefixes)
	}
	return ext
}

func fetchQuery(ctx context.Context, client *fetch.Client, cfg *config.Config, kind ae7q.Kind, query string) (queryResult, error) {
	doc, err := client.Fetch(ctx, kind, query)
	if err != nil {
		return queryResult{}, err
	}
	defer doc.Close()

	data, warnings, err := extractor(ae7q.FromDocument(doc), cfg, kind, query).Data()
	if err != nil {
		return queryResult{}, err
	}
	return queryResult{query: query, data: data, warnings: warnings}, nil
}

// readFile reads a saved page. The query is the file name without its
// extension, so "va2shf.html" is read as a Canadian callsign.
func readFile(cfg *config.Config, kind ae7q.Kind, path string) (queryResult, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return queryResult{}, err
	}
	if !format.IsHTML(content) {
		return queryResult{}, fmt.Errorf("%s is not an HTML page", path)
	}

	query := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	ext := ae7q.FromReader(bytes.NewReader(content)).TableClass(cfg.TableClass)

	data, warnings, err := extractor(ext, cfg, kind, query).Data()
	if err != nil {
		return queryResult{}, err
	}
	return queryResult{query: query, data: data, warnings: warnings}, nil
}

// tablesOf returns the classified tables behind data, skipping tables
// that failed to build.
func tablesOf(data ae7q.Data) []*model.Table {
	var results []ae7q.TableResult
	switch d := data.(type) {
	case *ae7q.CallData:
		results = d.Tables
	case *ae7q.CanadianCallData:
		results = d.Tables
	case *ae7q.FrnData:
		results = d.Tables
	case *ae7q.LicenseeData:
		results = d.Tables
	case *ae7q.ApplicationData:
		results = d.Tables
	}

	var out []*model.Table
	for _, r := range results {
		if r.Table != nil {
			out = append(out, r.Table)
		}
	}
	return out
}

func render(w io.Writer, f format.Format, results []queryResult) error {
	switch f {
	case format.JSON:
		return renderJSON(w, results)
	case format.XLSX:
		var all []*model.Table
		for _, res := range results {
			all = append(all, tablesOf(res.data)...)
		}
		return xlsx.Write(w, all)
	case format.CSV, format.PrettyCSV:
		return renderText(w, f, results)
	}
	return fmt.Errorf("unsupported format: %s", f)
}

// renderJSON writes a single object for one query and an array for more.
func renderJSON(w io.Writer, results []queryResult) error {
	var v any
	if len(results) == 1 {
		v = results[0].data
	} else {
		all := make([]ae7q.Data, len(results))
		for i, res := range results {
			all[i] = res.data
		}
		v = all
	}

	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}
	_, err = fmt.Fprintln(w, string(out))
	return err
}

// renderText writes every table under a "# query schema" heading, with a
// blank line between tables.
func renderText(w io.Writer, f format.Format, results []queryResult) error {
	first := true
	for _, res := range results {
		for _, t := range tablesOf(res.data) {
			if !first {
				if _, err := fmt.Fprintln(w); err != nil {
					return err
				}
			}
			first = false

			body := t.CSV()
			if f == format.PrettyCSV {
				body = t.PrettyCSV()
			}
			if _, err := fmt.Fprintf(w, "# %s %s\n%s\n", res.query, t.Schema, body); err != nil {
				return err
			}
		}
	}
	return nil
}
