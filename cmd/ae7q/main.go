// Package main provides the CLI entry point for ae7q.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/tsawler/ae7q"
	"github.com/tsawler/ae7q/internal/config"
)

// flags shared by every query command
type options struct {
	configPath string
	formatName string
	outputPath string
	files      bool
	parallel   int
	verbose    bool
}

func main() {
	// A missing .env file is not an error; the environment is used as is.
	_ = godotenv.Load()

	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "ae7q",
		Short: "Read callsign, FRN, licensee and application pages from ae7q.com",
		Long: `ae7q fetches query pages from ae7q.com, rebuilds their tables and
prints them as CSV, aligned text, JSON or an Excel workbook.

Example: ae7q call kn8u w1w --format json`,
		SilenceUsage: true,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&opts.configPath, "config", "c", "", "YAML config file (default: $"+config.EnvConfig+")")
	flags.StringVarP(&opts.formatName, "format", "f", "", "Output format: csv, pretty, json, xlsx (default: from --output, else pretty)")
	flags.StringVarP(&opts.outputPath, "output", "o", "", "Output file path (default: stdout)")
	flags.BoolVar(&opts.files, "file", false, "Read saved HTML pages; arguments are file paths")
	flags.IntVarP(&opts.parallel, "parallel", "p", 4, "Maximum concurrent requests")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "Log each request")

	rootCmd.AddCommand(
		newQueryCmd(opts, ae7q.CallQuery, "call [callsign...]", "Show the history of callsigns"),
		newQueryCmd(opts, ae7q.FrnQuery, "frn [frn...]", "Show the history of FCC Registration Numbers"),
		newQueryCmd(opts, ae7q.LicenseeQuery, "licensee [id...]", "Show the history of licensee IDs"),
		newQueryCmd(opts, ae7q.ApplicationQuery, "app [file-number...]", "Show the details of ULS applications"),
	)

	return rootCmd
}

func newQueryCmd(opts *options, kind ae7q.Kind, use, short string) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts, kind, args)
		},
	}
}
