// schack replays chess move scripts and reports whether each move is legal.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/pkg/profile"
	"github.com/rs/zerolog"

	"github.com/lgbarn/schackmotor-go/internal/config"
	"github.com/lgbarn/schackmotor-go/internal/errors"
	"github.com/lgbarn/schackmotor-go/internal/output"
	"github.com/lgbarn/schackmotor-go/internal/worker"
)

const programVersion = "0.1.0"

// Exit codes.
const (
	exitOK       = 0
	exitRejected = 1
	exitUsage    = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run is the whole program; it returns the exit code.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	opts, files, err := parseFlags(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}

	if opts.help {
		usage(newFlagSet(&options{}, stderr))
		return exitOK
	}
	if opts.version {
		fmt.Fprintf(stdout, "schack version %s\n", programVersion)
		return exitOK
	}

	cfg := config.NewConfig()
	cfg.SetOutput(stdout)
	cfg.SetLog(stderr)
	if err := applyFlags(opts, cfg); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitUsage
	}

	closeFiles, err := setupFiles(cfg, opts)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitUsage
	}
	defer closeFiles()

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitUsage
	}

	if cfg.CPUProfileDir != "" {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(cfg.CPUProfileDir), profile.Quiet, profile.NoShutdownHook).Stop()
	}

	if cfg.Workers > 1 {
		cfg.LogFile = zerolog.SyncWriter(cfg.LogFile)
	}
	log := cfg.Logger()

	scripts, err := loadScripts(files, stdin)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitUsage
	}
	log.Info().Int("scripts", len(scripts)).Int("workers", cfg.Workers).Msg("scripts loaded")

	r := &replayer{cfg: cfg, log: log}
	results := worker.Run(scripts, r.process, worker.WithWorkers(cfg.Workers))

	code, err := writeResults(cfg, results, log)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitUsage
	}
	return code
}

// setupFiles opens the -o and -l files. The returned function closes them.
func setupFiles(cfg *config.Config, opts *options) (func(), error) {
	var files []*os.File
	closeAll := func() {
		for _, f := range files {
			f.Close() //nolint:errcheck,gosec // G104: cleanup on exit
		}
	}

	if opts.logFile != "" {
		file, err := os.Create(opts.logFile)
		if err != nil {
			return closeAll, fmt.Errorf("creating log file %s: %w", opts.logFile, err)
		}
		files = append(files, file)
		cfg.SetLog(file)
	}

	if cfg.Output.Filename != "" {
		file, err := os.Create(cfg.Output.Filename)
		if err != nil {
			return closeAll, fmt.Errorf("creating output file %s: %w", cfg.Output.Filename, err)
		}
		files = append(files, file)
		cfg.SetOutput(file)
	}

	return closeAll, nil
}

// writeResults prints every result in input order and renders the SVG
// board. The exit code is exitRejected if any move or script failed.
func writeResults(cfg *config.Config, results []worker.ProcessResult, log zerolog.Logger) (int, error) {
	w := output.NewResultWriter(cfg.OutputFile, cfg)

	code := exitOK
	applied, rejected := 0, 0
	var last *output.ScriptResult
	for _, r := range results {
		if r.Error != nil || r.Result.Rejected > 0 {
			code = exitRejected
		}
		applied += r.Result.Applied
		rejected += r.Result.Rejected
		if r.Result.Board != nil {
			last = r.Result
		}
		if err := w.WriteScript(r.Result); err != nil {
			return exitUsage, err
		}
	}
	if err := w.Close(); err != nil {
		return exitUsage, err
	}

	if cfg.Output.SVGFile != "" && last != nil {
		if err := writeSVGFile(cfg.Output.SVGFile, last, cfg.Rules.BaseLetter); err != nil {
			return exitUsage, err
		}
	}

	log.Info().
		Int("scripts", len(results)).
		Int("applied", applied).
		Int("rejected", rejected).
		Msg("replay finished")
	return code, nil
}

// writeSVGFile renders the final board of res into path.
func writeSVGFile(path string, res *output.ScriptResult, base byte) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating SVG file %s: %w", path, err)
	}
	if err := output.WriteSVG(file, res.Board, base); err != nil {
		file.Close() //nolint:errcheck,gosec // G104: already failing
		return err
	}
	return file.Close()
}
