// Package config provides configuration for the move legality engine and
// the schack driver.
package config

import (
	"fmt"
	"io"
	"os"

	"github.com/lgbarn/schackmotor-go/internal/errors"
)

// Config holds all program configuration.
type Config struct {
	Verbosity int // 0=silent, 1=summary, 2=every move

	// Rules controls how moves are read and validated.
	Rules RulesConfig

	// Output controls result formatting.
	Output OutputConfig

	// Workers is the number of scripts replayed concurrently.
	Workers int

	// KeepGoing continues a script past a rejected move.
	KeepGoing bool

	// CPUProfileDir enables CPU profiling into the directory when set.
	CPUProfileDir string

	// Output streams
	OutputFile io.Writer
	LogFile    io.Writer
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Rules:      *NewRulesConfig(),
		Output:     *NewOutputConfig(),
		Workers:    1,
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// SetOutput sets the result output stream.
func (c *Config) SetOutput(w io.Writer) {
	c.OutputFile = w
}

// SetLog sets the log output stream.
func (c *Config) SetLog(w io.Writer) {
	c.LogFile = w
}

// Validate checks every section of the configuration.
func (c *Config) Validate() error {
	if c.Verbosity < 0 {
		return fmt.Errorf("verbosity %d is negative: %w", c.Verbosity, errors.ErrInvalidConfig)
	}
	if c.Workers < 1 {
		return fmt.Errorf("worker count %d must be positive: %w", c.Workers, errors.ErrInvalidConfig)
	}
	return c.Rules.Validate()
}
