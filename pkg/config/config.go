// Package config holds the CLI configuration and its validation.
package config

import (
	"fmt"

	"github.com/wificard/wificard/pkg/posture"
)

// Output formats recognized by the CLI.
const (
	FormatConsole = "console"
	FormatText    = "text"
	FormatJSON    = "json"
)

// Config holds all CLI options for a one-shot evaluation.
type Config struct {
	// InputFile is the snapshot to evaluate (YAML or JSON).
	InputFile string

	// OutputFormat selects console (styled), text (raw card), or json.
	OutputFormat string

	// OutputFile writes output to a file instead of stdout.
	OutputFile string

	// FailOn is a severity threshold for CI gating; empty disables
	// the gate.
	FailOn string

	// NoColor disables styled output.
	NoColor bool

	// Silent suppresses everything but the card itself.
	Silent bool
}

// Default returns the default CLI configuration.
func Default() *Config {
	return &Config{
		OutputFormat: FormatConsole,
	}
}

// Validate checks the configuration, wrapping the sentinel errors so
// callers can errors.Is() on them.
func (c *Config) Validate() error {
	if c.InputFile == "" {
		return fmt.Errorf("%w: -input", ErrMissingRequired)
	}
	switch c.OutputFormat {
	case FormatConsole, FormatText, FormatJSON:
	default:
		return fmt.Errorf("%w: unknown format %q", ErrInvalidConfig, c.OutputFormat)
	}
	if c.FailOn != "" {
		level, ok := posture.ParseSeverity(c.FailOn)
		if !ok {
			return fmt.Errorf("%w: unknown severity %q (use Low, Medium, High, or Critical)", ErrInvalidConfig, c.FailOn)
		}
		c.FailOn = string(level)
	}
	return nil
}

// GateTripped reports whether the assessed severity meets or exceeds
// the -fail-on threshold.
func (c *Config) GateTripped(severity posture.Severity) bool {
	if c.FailOn == "" {
		return false
	}
	threshold, ok := posture.ParseSeverity(c.FailOn)
	if !ok {
		return false
	}
	return severity.Score() >= threshold.Score()
}
