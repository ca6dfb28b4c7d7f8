// Package config provides configuration management for tsh.
// It handles loading and validating the YAML configuration file and
// mapping its values onto the Config struct.
package config

import (
	"strings"

	"go.uber.org/zap"
)

// Config holds all shell configuration.
type Config struct {
	// Prompt is printed before every line.
	Prompt string `yaml:"prompt"`

	// CaptureRemainder makes unknown trailing tokens parameters of the
	// deepest matching command instead of a lookup failure.
	CaptureRemainder bool `yaml:"capture_remainder"`

	// ReprintPromptOnTab prints the prompt and line again after every tab.
	ReprintPromptOnTab bool `yaml:"reprint_prompt_on_tab"`

	// HistoryLimit bounds the session history; 0 keeps every line.
	HistoryLimit int `yaml:"history_limit"`

	// LogLevel controls logging verbosity (debug, info, warn, error).
	LogLevel string `yaml:"log_level"`

	// Journal records dispatched commands for the stats command.
	Journal bool `yaml:"journal"`

	// Commands are scripted commands added to the command tree.
	Commands []ScriptedCommand `yaml:"commands"`
}

// ScriptedCommand is a command whose action is a shell script.
type ScriptedCommand struct {
	// Path is the space separated command path, e.g. "git st".
	Path string `yaml:"path"`

	// Run is the script. Parameters are available as $1..$n and "$@".
	Run string `yaml:"run"`

	// Description is shown by help.
	Description string `yaml:"description"`

	// Variadic passes trailing tokens to the script even when
	// capture_remainder is off.
	Variadic bool `yaml:"variadic"`
}

// Tokens returns the command path split into tokens.
func (c ScriptedCommand) Tokens() []string {
	return strings.Fields(c.Path)
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Prompt:           "> ",
		CaptureRemainder: true,
		HistoryLimit:     1000,
		LogLevel:         "info",
		Journal:          true,
		Commands:         []ScriptedCommand{},
	}
}

// Level returns the configured log level, falling back to info.
func (c *Config) Level() zap.AtomicLevel {
	level, err := zap.ParseAtomicLevel(c.LogLevel)
	if err != nil {
		return zap.NewAtomicLevelAt(zap.InfoLevel)
	}
	return level
}
