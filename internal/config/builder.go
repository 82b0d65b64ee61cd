package config

import (
	"io"

	"github.com/lgbarn/schackmotor-go/internal/chess"
)

// ConfigBuilder provides a fluent API for building Config instances.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: NewConfig(),
	}
}

// Build returns the built Config.
func (b *ConfigBuilder) Build() *Config {
	return b.cfg
}

// WithBaseLetter sets the file letter addressing file 1.
func (b *ConfigBuilder) WithBaseLetter(c byte) *ConfigBuilder {
	b.cfg.Rules.BaseLetter = c
	return b
}

// WithStartingSide sets the side that moves first.
func (b *ConfigBuilder) WithStartingSide(side chess.Colour) *ConfigBuilder {
	b.cfg.Rules.StartingSide = side
	return b
}

// WithSelfCheckVerification enables self-check simulation on every move.
func (b *ConfigBuilder) WithSelfCheckVerification(enabled bool) *ConfigBuilder {
	b.cfg.Rules.VerifySelfCheck = enabled
	return b
}

// WithLayout sets the initial layout text.
func (b *ConfigBuilder) WithLayout(layout string) *ConfigBuilder {
	b.cfg.Rules.Layout = layout
	return b
}

// WithFEN sets a starting position.
func (b *ConfigBuilder) WithFEN(fen string) *ConfigBuilder {
	b.cfg.Rules.FEN = fen
	return b
}

// WithJSONOutput enables JSON output.
func (b *ConfigBuilder) WithJSONOutput(enabled bool) *ConfigBuilder {
	b.cfg.Output.JSONFormat = enabled
	return b
}

// WithSVGFile sets the SVG board destination.
func (b *ConfigBuilder) WithSVGFile(path string) *ConfigBuilder {
	b.cfg.Output.SVGFile = path
	return b
}

// WithWorkers sets the number of concurrent replays.
func (b *ConfigBuilder) WithWorkers(n int) *ConfigBuilder {
	b.cfg.Workers = n
	return b
}

// WithKeepGoing continues scripts past rejected moves.
func (b *ConfigBuilder) WithKeepGoing(enabled bool) *ConfigBuilder {
	b.cfg.KeepGoing = enabled
	return b
}

// WithOutput sets the output writer.
func (b *ConfigBuilder) WithOutput(w io.Writer) *ConfigBuilder {
	b.cfg.OutputFile = w
	return b
}

// WithLog sets the log writer.
func (b *ConfigBuilder) WithLog(w io.Writer) *ConfigBuilder {
	b.cfg.LogFile = w
	return b
}

// WithVerbosity sets the verbosity level.
func (b *ConfigBuilder) WithVerbosity(level int) *ConfigBuilder {
	b.cfg.Verbosity = level
	return b
}
