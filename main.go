// imgembed: rewrite HTML documents so every locally-referenced image is
// embedded as a base64 data URI, producing self-contained files.
//
// Usage:
//
//	imgembed [options] <file-or-dir> [<file-or-dir>...]
//
// Each output is written beside its input with an "_ok" suffix; a JSON
// report of inlined and failed images goes to stdout.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	flag "github.com/spf13/pflag"
)

// logOut is the writer for informational/progress output.
// In silent mode it is set to io.Discard so only errors reach the user.
var logOut io.Writer = os.Stderr

// reportOut is the writer for the machine-readable report.
var reportOut io.Writer = os.Stdout

// errNoInputFiles distinguishes "nothing to do" from real failures;
// it maps to exit code 2.
var errNoInputFiles = errors.New("no HTML files found in the specified paths")

// cliConfig holds the effective options after merging command-line
// flags with the optional config file.
type cliConfig struct {
	reportPath string
	suffix     string
	verbose    bool
	args       []string
}

// run executes one batch: discover inputs, process each sequentially,
// then emit the report.
func run(cfg cliConfig) error {
	files := findHTMLFiles(cfg.args)
	if len(files) == 0 {
		return errNoInputFiles
	}
	fmt.Fprintf(logOut, "Found %d HTML file(s) to process\n", len(files))

	rep := NewReport()
	succeeded := 0
	for i, f := range files {
		if cfg.verbose {
			fmt.Fprintf(logOut, "[%d/%d] %s\n", i+1, len(files), f)
		}
		out, err := processFile(f, cfg.suffix, rep)
		if err != nil {
			fmt.Fprintf(logOut, "✗ Failed to process %s: %v\n", shortPath(f), err)
			continue
		}
		succeeded++
		fmt.Fprintf(logOut, "✓ %s -> %s\n", shortPath(f), filepath.Base(out))
	}

	if err := rep.WriteJSON(reportOut); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	if cfg.verbose {
		rep.WriteText(logOut)
	}
	if cfg.reportPath != "" {
		if err := rep.SaveToFile(cfg.reportPath); err != nil {
			fmt.Fprintf(logOut, "Warning: could not save report: %v\n", err)
		} else {
			fmt.Fprintf(logOut, "Report saved to: %s\n", cfg.reportPath)
		}
	}

	fmt.Fprintf(logOut, "Processing complete: %d/%d successful\n", succeeded, len(files))
	return nil
}

func main() {
	reportPath := flag.StringP("report", "r", "", "Save the JSON report to this path")
	configPath := flag.StringP("config", "c", "", "YAML file with option defaults")
	suffix := flag.String("suffix", defaultSuffix, "Suffix appended to output filenames")
	verbose := flag.BoolP("verbose", "v", false, "Log per-file progress detail")
	silent := flag.BoolP("silent", "s", false, "Suppress progress output (report still goes to stdout)")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: imgembed [options] <file-or-dir> [<file-or-dir>...]\n\n")
		fmt.Fprintf(os.Stderr, "Rewrite HTML files so local images are embedded as base64 data URIs.\n")
		fmt.Fprintf(os.Stderr, "Each output is written beside its input with a %q suffix.\n\n", defaultSuffix)
		flag.PrintDefaults()
	}
	flag.Parse()

	cfg := cliConfig{
		reportPath: *reportPath,
		suffix:     *suffix,
		verbose:    *verbose,
		args:       flag.Args(),
	}
	silentMode := *silent

	if *configPath != "" {
		fc, err := loadConfig(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		if fc.Report != "" && !flag.CommandLine.Changed("report") {
			cfg.reportPath = fc.Report
		}
		if fc.Suffix != "" && !flag.CommandLine.Changed("suffix") {
			cfg.suffix = fc.Suffix
		}
		if !flag.CommandLine.Changed("verbose") && fc.Verbose {
			cfg.verbose = true
		}
		if !flag.CommandLine.Changed("silent") && fc.Silent {
			silentMode = true
		}
	}

	if silentMode {
		logOut = io.Discard
	}
	if len(cfg.args) == 0 {
		flag.Usage()
		os.Exit(2)
	}

	if err := run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		if errors.Is(err, errNoInputFiles) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}
