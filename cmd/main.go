// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/term"

	"lien-scan/internal/config"
	"lien-scan/internal/core"
	"lien-scan/internal/extractors/address"
	"lien-scan/internal/extractors/currency"
	"lien-scan/internal/extractors/party"
	"lien-scan/internal/extractors/phone"
	"lien-scan/internal/help"
	"lien-scan/internal/observability"
	"lien-scan/internal/version"

	"lien-scan/internal/formatters"
	_ "lien-scan/internal/formatters/csv"
	_ "lien-scan/internal/formatters/json"
	_ "lien-scan/internal/formatters/text"
	_ "lien-scan/internal/formatters/xlsx"
	_ "lien-scan/internal/formatters/yaml"
)

// errUsage marks errors caused by invalid flags.
var errUsage = errors.New("usage error")

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// cliFlags holds the parsed command line.
type cliFlags struct {
	input          string
	rows           string
	format         string
	output         string
	configFile     string
	profile        string
	fields         string
	window         int
	clauseWindow   int
	appendOutput   bool
	noNER          bool
	debug          bool
	verbose        bool
	noColor        bool
	listExtractors bool
	listProfiles   bool
	showVersion    bool
	set            map[string]bool
}

func parseFlags(args []string, stderr io.Writer) (*cliFlags, error) {
	fs := flag.NewFlagSet("lien-scan", flag.ContinueOnError)
	fs.SetOutput(stderr)

	f := &cliFlags{set: make(map[string]bool)}
	fs.StringVar(&f.input, "input", "", "Path to a document (.json layout, .pdf, .txt) or a directory of documents")
	fs.StringVar(&f.rows, "rows", "", "Path to the records table (.csv or .xlsx) whose File column names the documents")
	fs.StringVar(&f.format, "format", "", "Output format: "+strings.Join(formatters.List(), ", ")+" (default: csv)")
	fs.StringVar(&f.output, "output", "", "Path to output file (if not specified, output to stdout)")
	fs.StringVar(&f.configFile, "config", "", "Path to configuration file (YAML)")
	fs.StringVar(&f.profile, "profile", "", "Profile name to use from config file")
	fs.StringVar(&f.fields, "fields", "", "Fields to extract, e.g. 'CLAIMANT,OWNER' (default: all)")
	fs.IntVar(&f.window, "window", 0, "Words read after a party or property anchor (default: 49)")
	fs.IntVar(&f.clauseWindow, "clause-window", 0, "Words read around a 'claims ... against' clause (default: 49)")
	fs.BoolVar(&f.appendOutput, "append", false, "Append records to an existing output file without repeating the header")
	fs.BoolVar(&f.noNER, "no-ner", false, "Disable the entity model and recognize person names by pattern only")
	fs.BoolVar(&f.debug, "debug", false, "Enable debug logging of every extraction step")
	fs.BoolVar(&f.verbose, "verbose", false, "Display every field of each record in text output and report progress")
	fs.BoolVar(&f.noColor, "no-color", false, "Disable colored output")
	fs.BoolVar(&f.listExtractors, "list-extractors", false, "List extracted fields with their strategies and exit")
	fs.BoolVar(&f.listProfiles, "list-profiles", false, "List available profiles in config file")
	fs.BoolVar(&f.showVersion, "version", false, "Show version information")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", errUsage, err)
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("%w: unexpected arguments: %s", errUsage, strings.Join(fs.Args(), " "))
	}
	fs.Visit(func(fl *flag.Flag) { f.set[fl.Name] = true })
	return f, nil
}

// resolveSettings layers flags over the profile over the config file.
func resolveSettings(cfg *config.Config, f *cliFlags) (config.Settings, error) {
	s, err := cfg.Resolve(f.profile)
	if err != nil {
		return s, err
	}
	if f.format != "" {
		s.Defaults.Format = f.format
	}
	if f.set["append"] {
		s.Defaults.Append = f.appendOutput
	}
	if f.set["verbose"] {
		s.Defaults.Verbose = f.verbose
	}
	if f.set["debug"] {
		s.Defaults.Debug = f.debug
	}
	if f.set["no-color"] {
		s.Defaults.NoColor = f.noColor
	}
	if f.set["no-ner"] {
		s.Extraction.EnableNER = !f.noNER
	}
	if f.window > 0 {
		s.Extraction.WindowWords = f.window
	}
	if f.clauseWindow > 0 {
		s.Extraction.ClauseWords = f.clauseWindow
	}
	if f.fields != "" {
		s.Extraction.Fields = f.fields
	}

	if s.Defaults.Format == "" {
		s.Defaults.Format = "csv"
	}
	if _, ok := formatters.Get(s.Defaults.Format); !ok {
		return s, fmt.Errorf("%w: unsupported format '%s'. Available formats: %s", errUsage, s.Defaults.Format, strings.Join(formatters.List(), ", "))
	}
	if unknown := core.UnknownFields(strings.Split(s.Extraction.Fields, ",")); len(unknown) > 0 {
		return s, fmt.Errorf("%w: unknown field type '%s'", errUsage, strings.Join(unknown, ", "))
	}
	if f.window < 0 || f.clauseWindow < 0 {
		return s, fmt.Errorf("%w: window sizes must be positive", errUsage)
	}
	return s, nil
}

func run(args []string, stdout, stderr io.Writer) int {
	f, err := parseFlags(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	if f.showVersion {
		fmt.Fprintln(stdout, version.Info())
		return 0
	}

	cfg, err := config.LoadConfigOrDefault(f.configFile)
	if err != nil {
		if f.configFile != "" {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return 1
		}
		fmt.Fprintf(stderr, "Warning: Error loading config file: %v\n", err)
		fmt.Fprintf(stderr, "Using default configuration\n")
	}

	if f.listProfiles {
		for _, name := range cfg.ListProfiles() {
			fmt.Fprintf(stdout, "  %s\t%s\n", name, cfg.Profiles[name].Description)
		}
		return 0
	}

	settings, err := resolveSettings(cfg, f)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	// Auto-detect non-interactive environment
	noColor := settings.Defaults.NoColor || !isTerminal(stderr) || os.Getenv("NO_COLOR") != ""

	if f.listExtractors {
		ex := settings.Extraction
		h := help.NewSystem(stdout, noColor || !isTerminal(stdout))
		h.ShowFieldsHelp(help.Catalogue(
			party.NewExtractor(party.NewCompanyRecognizer(ex.CompanySuffixes), nil),
			address.NewExtractor(nil),
			currency.NewExtractor(),
			phone.NewExtractor(phone.NewGrammarMatcher(ex.PhoneRegion)),
		))
		h.ShowFormatsHelp(formatters.GetSupportedFormats())
		return 0
	}

	if f.input == "" {
		fmt.Fprintln(stderr, "Error: -input is required")
		fmt.Fprintln(stderr, "Usage: lien-scan -input <dir|file> [-rows table.csv] [-format csv|xlsx|json|yaml|text] [-output path]")
		return 1
	}
	if settings.Defaults.Append && f.output == "" {
		fmt.Fprintln(stderr, "Error: -append requires -output")
		return 1
	}

	observer := observability.NewObserver(settings.Defaults.Debug, stderr)
	if d := observer.DebugObserver; d != nil {
		d.LogDetail("main", fmt.Sprintf("run %s format=%s window=%d clause_window=%d ner=%t",
			observer.RunID(), settings.Defaults.Format, settings.Extraction.WindowWords,
			settings.Extraction.ClauseWords, settings.Extraction.EnableNER))
	}

	writer, err := formatters.NewRecordWriter(formatters.WriterConfig{
		Format: settings.Defaults.Format,
		Path:   f.output,
		Append: settings.Defaults.Append,
		Stdout: stdout,
		Options: formatters.FormatterOptions{
			Verbose: settings.Defaults.Verbose,
			NoColor: noColor || f.output != "" || !isTerminal(stdout),
		},
	})
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	var progress func(completed, total int, current string)
	if settings.Defaults.Verbose && f.output != "" {
		progress = func(completed, total int, current string) {
			fmt.Fprintf(stderr, "[%d/%d] %s\n", completed, total, current)
		}
	}

	result, scanErr := core.Scan(core.ScanConfig{
		InputPath: filepath.Clean(f.input),
		RowsPath:  f.rows,
		Settings:  settings,
		Observer:  observer,
	}, writer, progress)

	if err := writer.Close(); err != nil && scanErr == nil {
		scanErr = fmt.Errorf("failed to write output: %w", err)
	}
	if scanErr != nil {
		fmt.Fprintf(stderr, "Error: %v\n", scanErr)
		return 1
	}

	printSummary(stderr, result, noColor)
	return 0
}

// printSummary reports processed and failed counts.
func printSummary(w io.Writer, result *core.ScanResult, noColor bool) {
	green := color.New(color.FgGreen, color.Bold)
	red := color.New(color.FgRed, color.Bold)
	if noColor {
		green.DisableColor()
		red.DisableColor()
	} else {
		green.EnableColor()
		red.EnableColor()
	}

	fmt.Fprintf(w, "Processed %s records (%d documents", green.Sprint(result.Stats.Total), result.Documents)
	if result.Rows > 0 {
		fmt.Fprintf(w, ", %d table rows", result.Rows)
	}
	fmt.Fprint(w, "), ")
	if result.Stats.Failed > 0 {
		fmt.Fprintf(w, "%s failed\n", red.Sprint(result.Stats.Failed))
	} else {
		fmt.Fprintf(w, "%d failed\n", result.Stats.Failed)
	}
}

// isTerminal checks if the writer is a terminal
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
