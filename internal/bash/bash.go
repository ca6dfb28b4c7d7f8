// Package bash runs the shell scripts behind config-defined commands.
package bash

import (
	"context"
	"fmt"
	"io"
	"strings"

	"mvdan.cc/sh/v3/interp"
	"mvdan.cc/sh/v3/syntax"
)

// Script is a parsed script that can be run any number of times.
type Script struct {
	name string
	file *syntax.File
}

// Parse parses source as a bash script. name is used in error messages.
func Parse(name, source string) (*Script, error) {
	file, err := syntax.NewParser().Parse(strings.NewReader(source), name)
	if err != nil {
		return nil, fmt.Errorf("failed to parse bash script: %w", err)
	}
	return &Script{name: name, file: file}, nil
}

// Name returns the name the script was parsed with.
func (s *Script) Name() string {
	return s.name
}

// Run executes the script in a fresh runner with params as the positional
// parameters ($1..$n). Standard input is empty. Returns the exit code and
// any execution error. A non-zero exit code is NOT treated as an error.
func (s *Script) Run(ctx context.Context, stdout, stderr io.Writer, params []string) (int, error) {
	runner, err := interp.New(
		interp.StdIO(nil, stdout, stderr),
		interp.Params(append([]string{"--"}, params...)...),
	)
	if err != nil {
		return 1, fmt.Errorf("failed to create bash runner: %w", err)
	}

	err = runner.Run(ctx, s.file)
	if err != nil {
		if status, ok := interp.IsExitStatus(err); ok {
			return int(status), nil
		}
		return 1, err
	}

	return 0, nil
}
