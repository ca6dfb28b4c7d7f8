package commands

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	"github.com/atinylittleshell/tsh/internal/bash"
	"github.com/atinylittleshell/tsh/internal/config"
)

const defaultScriptDescription = "Scripted command."

// RegisterScripts installs the scripted commands from the configuration.
// Commands whose script fails to parse are skipped and reported in the
// returned errors.
func (d *Dispatcher) RegisterScripts(commands []config.ScriptedCommand) []error {
	var errs []error
	for _, cmd := range commands {
		script, err := bash.Parse(cmd.Path, cmd.Run)
		if err != nil {
			errs = append(errs, fmt.Errorf("command %q: %w", cmd.Path, err))
			continue
		}

		description := cmd.Description
		if description == "" {
			description = defaultScriptDescription
		}

		action := &scriptAction{dispatcher: d, script: script}
		if cmd.Variadic {
			d.RegisterVariadic(cmd.Tokens(), description, action)
		} else {
			d.Register(cmd.Tokens(), description, action)
		}
		d.logger.Debug("registered scripted command", zap.String("path", cmd.Path))
	}
	return errs
}

type scriptAction struct {
	dispatcher *Dispatcher
	script     *bash.Script
}

func (a *scriptAction) Invoke(params []string) {
	a.InvokeContext(context.Background(), params)
}

func (a *scriptAction) InvokeContext(ctx context.Context, params []string) {
	d := a.dispatcher

	var output bytes.Buffer
	code, err := a.script.Run(ctx, &output, &output, params)

	var lines []string
	if text := strings.TrimRight(output.String(), "\n"); text != "" {
		lines = append(lines, text)
	}
	switch {
	case err != nil:
		d.logger.Warn("scripted command failed", zap.String("path", a.script.Name()), zap.Error(err))
		lines = append(lines, d.styles.Error(a.script.Name()+": "+err.Error()))
	case code != 0:
		lines = append(lines, d.styles.Hint(fmt.Sprintf("exit status %d", code)))
	}

	io.WriteString(d.out, strings.Join(lines, "\n"))
}
