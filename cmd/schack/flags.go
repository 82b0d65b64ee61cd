// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/lgbarn/schackmotor-go/internal/chess"
	"github.com/lgbarn/schackmotor-go/internal/config"
	"github.com/lgbarn/schackmotor-go/internal/errors"
)

// options holds the parsed command line.
type options struct {
	// Position setup
	layoutFile string
	fen        string
	base       string
	black      bool

	// Rules
	strict    bool
	keepGoing bool

	// Output options
	jsonOutput bool
	noBoard    bool
	svgFile    string
	outputFile string

	// Logging
	logFile   string
	verbosity int

	// Performance options
	workers    int
	cpuProfile string

	// Other options
	help    bool
	version bool
}

// newFlagSet binds every flag to opts.
func newFlagSet(opts *options, stderr io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet("schack", flag.ContinueOnError)
	fs.SetOutput(stderr)

	fs.StringVar(&opts.layoutFile, "layout", "", "File with the initial layout (default: standard)")
	fs.StringVar(&opts.fen, "fen", "", "Start from this FEN position (overrides -layout and -black)")
	fs.StringVar(&opts.base, "base", string(rune(chess.DefaultBaseLetter)), "Letter naming the first file")
	fs.BoolVar(&opts.black, "black", false, "Black moves first")

	fs.BoolVar(&opts.strict, "strict", false, "Reject any move that leaves the mover's king in check")
	fs.BoolVar(&opts.keepGoing, "k", false, "Keep replaying a script after a rejected move")

	fs.BoolVar(&opts.jsonOutput, "J", false, "Output in JSON format")
	fs.BoolVar(&opts.noBoard, "noboard", false, "Don't print the final board")
	fs.StringVar(&opts.svgFile, "svg", "", "Write the final board as SVG to this file")
	fs.StringVar(&opts.outputFile, "o", "", "Output file (default: stdout)")

	fs.StringVar(&opts.logFile, "l", "", "Write diagnostics to log file (default: stderr)")
	fs.IntVar(&opts.verbosity, "v", 0, "Verbosity: 0=silent, 1=summary, 2=every move")

	fs.IntVar(&opts.workers, "j", 1, "Number of scripts replayed concurrently")
	fs.StringVar(&opts.cpuProfile, "cpuprofile", "", "Write a CPU profile into this directory")

	fs.BoolVar(&opts.help, "h", false, "Show help")
	fs.BoolVar(&opts.version, "version", false, "Show version")

	fs.Usage = func() { usage(fs) }
	return fs
}

// parseFlags parses args and returns the options and remaining file names.
func parseFlags(args []string, stderr io.Writer) (*options, []string, error) {
	opts := &options{}
	fs := newFlagSet(opts, stderr)
	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	return opts, fs.Args(), nil
}

// applyFlags applies command-line options to the configuration.
func applyFlags(opts *options, cfg *config.Config) error {
	if err := applyRulesFlags(opts, cfg); err != nil {
		return err
	}
	applyOutputFlags(opts, cfg)

	cfg.Verbosity = opts.verbosity
	cfg.Workers = opts.workers
	cfg.CPUProfileDir = opts.cpuProfile
	cfg.KeepGoing = opts.keepGoing
	return nil
}

// applyRulesFlags configures the start position and rule options.
func applyRulesFlags(opts *options, cfg *config.Config) error {
	if len(opts.base) != 1 {
		return fmt.Errorf("-base %q must be a single letter: %w", opts.base, errors.ErrInvalidConfig)
	}
	cfg.Rules.BaseLetter = opts.base[0]
	cfg.Rules.VerifySelfCheck = opts.strict
	cfg.Rules.FEN = opts.fen

	if opts.black {
		cfg.Rules.StartingSide = chess.Black
	}

	if opts.layoutFile != "" {
		content, err := os.ReadFile(opts.layoutFile) //nolint:gosec // G304: CLI tool opens user-specified files
		if err != nil {
			return errors.Wrapf(err, "reading layout file %s", opts.layoutFile)
		}
		cfg.Rules.Layout = string(content)
	}
	return nil
}

// applyOutputFlags configures result output settings.
func applyOutputFlags(opts *options, cfg *config.Config) {
	cfg.Output.JSONFormat = opts.jsonOutput
	cfg.Output.ShowBoard = !opts.noBoard
	cfg.Output.SVGFile = opts.svgFile
	cfg.Output.Filename = opts.outputFile
}

func usage(fs *flag.FlagSet) {
	w := fs.Output()
	fmt.Fprintf(w, "Usage: schack [options] [script-files...]\n\n")
	fmt.Fprintf(w, "Replays move scripts and reports whether each move is legal.\n")
	fmt.Fprintf(w, "Scripts are read from stdin when no files are given.\n\n")
	fmt.Fprintf(w, "Options:\n")
	fs.PrintDefaults()
	fmt.Fprintf(w, "\nScript format:\n")
	fmt.Fprintf(w, "  [FEN \"...\"] or [Layout \"...\"]  set up the position for one script\n")
	fmt.Fprintf(w, "  1. e4 e5 2. Nf3               moves; move numbers are ignored\n")
	fmt.Fprintf(w, "  ; comment   {comment}         comments\n")
	fmt.Fprintf(w, "  1-0 0-1 1/2-1/2 *             end the current script\n")
}
