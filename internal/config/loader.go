package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// Loader handles loading and validating configuration files.
type Loader struct {
	logger *zap.Logger
}

// NewLoader creates a new configuration loader.
func NewLoader(logger *zap.Logger) *Loader {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Loader{
		logger: logger,
	}
}

// LoadResult contains the result of loading a configuration file.
type LoadResult struct {
	Config *Config
	Errors []error
}

// LoadFromFile loads configuration from a YAML file.
// Returns the configuration and any non-fatal errors encountered.
// If the file doesn't exist, returns default configuration with no error.
func (l *Loader) LoadFromFile(path string) (*LoadResult, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			l.logger.Debug("no config file, using defaults", zap.String("path", path))
			return &LoadResult{Config: DefaultConfig(), Errors: []error{}}, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	return l.LoadFromString(string(content))
}

// LoadFromString loads configuration from a YAML document.
// Values that fail validation are reset to their defaults and reported in
// LoadResult.Errors.
func (l *Loader) LoadFromString(source string) (*LoadResult, error) {
	result := &LoadResult{
		Config: DefaultConfig(),
		Errors: []error{},
	}

	decoder := yaml.NewDecoder(bytes.NewBufferString(source))
	decoder.KnownFields(true)
	if err := decoder.Decode(result.Config); err != nil && !errors.Is(err, io.EOF) {
		result.Errors = append(result.Errors, fmt.Errorf("parse error: %w", err))
		// Continue with defaults on parse errors
		result.Config = DefaultConfig()
		return result, nil
	}

	l.validate(result)
	return result, nil
}

func (l *Loader) validate(result *LoadResult) {
	cfg := result.Config
	defaults := DefaultConfig()

	if cfg.Prompt == "" {
		cfg.Prompt = defaults.Prompt
	}

	if cfg.HistoryLimit < 0 {
		result.Errors = append(result.Errors, fmt.Errorf("history_limit must not be negative, got %d", cfg.HistoryLimit))
		cfg.HistoryLimit = defaults.HistoryLimit
	}

	if _, err := zap.ParseAtomicLevel(cfg.LogLevel); err != nil {
		result.Errors = append(result.Errors, fmt.Errorf("invalid log_level %q: %w", cfg.LogLevel, err))
		cfg.LogLevel = defaults.LogLevel
	}

	commands := make([]ScriptedCommand, 0, len(cfg.Commands))
	for i, command := range cfg.Commands {
		switch {
		case len(command.Tokens()) == 0:
			result.Errors = append(result.Errors, fmt.Errorf("commands[%d]: path is required", i))
		case command.Run == "":
			result.Errors = append(result.Errors, fmt.Errorf("commands[%d] (%s): run is required", i, command.Path))
		default:
			commands = append(commands, command)
		}
	}
	cfg.Commands = commands

	for _, err := range result.Errors {
		l.logger.Warn("invalid configuration value", zap.Error(err))
	}
}
