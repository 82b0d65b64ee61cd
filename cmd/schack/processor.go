// processor.go - Script loading and replay
package main

import (
	"io"
	"os"

	"github.com/rs/zerolog"

	"github.com/lgbarn/schackmotor-go/internal/config"
	"github.com/lgbarn/schackmotor-go/internal/engine"
	"github.com/lgbarn/schackmotor-go/internal/output"
	"github.com/lgbarn/schackmotor-go/internal/parser"
	"github.com/lgbarn/schackmotor-go/internal/worker"
)

// Script tags that set up the start position.
const (
	fenTag    = "FEN"
	layoutTag = "Layout"
)

// loadScripts reads every script from the named files, or from stdin when
// there are none.
func loadScripts(paths []string, stdin io.Reader) ([]*parser.Script, error) {
	if len(paths) == 0 {
		return parser.NewParser(stdin, "stdin").ParseAllScripts()
	}

	var scripts []*parser.Script
	for _, path := range paths {
		file, err := os.Open(path) //nolint:gosec // G304: CLI tool opens user-specified files
		if err != nil {
			return scripts, err
		}
		found, err := parser.NewParser(file, path).ParseAllScripts()
		file.Close() //nolint:errcheck,gosec // G104: read-only file
		scripts = append(scripts, found...)
		if err != nil {
			return scripts, err
		}
	}
	return scripts, nil
}

// scriptConfig returns the configuration for one script. A FEN or Layout
// tag in the script replaces the position given on the command line.
func scriptConfig(base *config.Config, s *parser.Script) *config.Config {
	cfg := *base
	if fen := s.Tag(fenTag); fen != "" {
		cfg.Rules.FEN = fen
	} else if layout := s.Tag(layoutTag); layout != "" {
		cfg.Rules.FEN = ""
		cfg.Rules.Layout = layout
	}
	return &cfg
}

// replayer replays scripts on behalf of the worker pool.
type replayer struct {
	cfg *config.Config
	log zerolog.Logger
}

// process replays one script against a fresh game.
func (r *replayer) process(item worker.WorkItem) worker.ProcessResult {
	s := item.Script
	res := &output.ScriptResult{Name: s.Name, Number: s.Number}

	game, err := engine.NewGameState(scriptConfig(r.cfg, s))
	if err != nil {
		res.Error = err.Error()
		r.log.Error().Str("script", s.Name).Int("number", s.Number).Err(err).Msg("script setup failed")
		return worker.ProcessResult{Index: item.Index, Result: res, Error: err}
	}

	res.StartFEN = game.FEN()
	replay(game, s, r.cfg.KeepGoing, res)
	res.FinalFEN = game.FEN()
	res.Board = game.Board()

	r.log.Info().
		Str("script", s.Name).
		Int("number", s.Number).
		Int("applied", res.Applied).
		Int("rejected", res.Rejected).
		Msg("script replayed")

	return worker.ProcessResult{Index: item.Index, Result: res}
}

// replay submits the script's moves in order, stopping at the first
// rejection unless keepGoing is set.
func replay(game *engine.GameState, s *parser.Script, keepGoing bool, res *output.ScriptResult) {
	for _, mv := range s.Moves {
		side := game.ToMove().String()
		ply := game.Ply() + 1
		err := game.Apply(mv.Text)

		m := output.MoveResult{
			Ply:    ply,
			Side:   side,
			Move:   mv.Text,
			Status: output.Status(err),
			FEN:    game.FEN(),
			Line:   mv.Line,
		}
		if err != nil {
			m.Error = err.Error()
		}
		res.Add(m)

		if err != nil && !keepGoing {
			return
		}
	}
}
