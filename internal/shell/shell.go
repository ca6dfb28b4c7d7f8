// Package shell composes the line editor with tab completion and session
// history. Commands are run by a Submitter supplied by the application.
package shell

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/atinylittleshell/tsh/internal/lineeditor"
	"go.uber.org/zap"
)

// Terminal is the byte stream the session runs on. Restore puts the
// terminal back into the mode it had before the session started.
type Terminal interface {
	io.Reader
	io.Writer
	Restore() error
}

// Submitter receives every line the user enters.
type Submitter interface {
	Submit(ctx context.Context, line string)
}

// SubmitFunc adapts a function to the Submitter interface.
type SubmitFunc func(ctx context.Context, line string)

// Submit calls f(ctx, line).
func (f SubmitFunc) Submit(ctx context.Context, line string) {
	f(ctx, line)
}

// Completer suggests completions for the word being typed.
type Completer interface {
	Complete(line string) []string
}

// CompleteFunc adapts a function to the Completer interface.
type CompleteFunc func(line string) []string

// Complete calls f(line).
func (f CompleteFunc) Complete(line string) []string {
	return f(line)
}

// Config holds configuration for creating a new Shell.
type Config struct {
	// Terminal is required.
	Terminal Terminal

	// Prompt is the prompt string. If empty, lineeditor.DefaultPrompt is used.
	Prompt string

	// Submitter runs entered lines. If nil, lines are only recorded in history.
	Submitter Submitter

	// Completer provides tab completion. If nil, tab does nothing.
	Completer Completer

	// ReprintPromptOnTab prints the prompt and line on a new line after every tab.
	ReprintPromptOnTab bool

	// History is shared with the application, e.g. for a history command.
	// If nil, an unbounded history is created.
	History *History

	// Logger for debug output. If nil, a no-op logger is used.
	Logger *zap.Logger
}

// Shell is an interactive session with completion and history.
type Shell struct {
	term      Terminal
	prompt    string
	submitter Submitter
	completer Completer
	history   *History

	reprintPromptOnTab bool

	logger *zap.Logger
}

// New creates a new Shell with the given configuration.
func New(cfg Config) (*Shell, error) {
	if cfg.Terminal == nil {
		return nil, errors.New("shell: terminal is required")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	history := cfg.History
	if history == nil {
		history = NewHistory(0)
	}

	return &Shell{
		term:               cfg.Terminal,
		prompt:             cfg.Prompt,
		submitter:          cfg.Submitter,
		completer:          cfg.Completer,
		history:            history,
		reprintPromptOnTab: cfg.ReprintPromptOnTab,
		logger:             logger,
	}, nil
}

// History returns the session history.
func (s *Shell) History() *History {
	return s.history
}

// Run reads and dispatches lines until the input ends, the user presses
// Ctrl+D, or ctx is canceled. The terminal is restored before Run returns,
// including when a submit handler panics.
func (s *Shell) Run(ctx context.Context) (err error) {
	defer func() {
		if restoreErr := s.term.Restore(); restoreErr != nil {
			s.logger.Warn("failed to restore terminal", zap.Error(restoreErr))
			if err == nil {
				err = restoreErr
			}
		}
	}()

	editor := lineeditor.New(lineeditor.Config{
		Input:              s.term,
		Output:             s.term,
		Handler:            &session{shell: s, ctx: ctx},
		Prompt:             s.prompt,
		ReprintPromptOnTab: s.reprintPromptOnTab,
		Logger:             s.logger,
	})

	s.logger.Debug("session started")
	exit, err := editor.Run(ctx)
	if err != nil {
		return fmt.Errorf("session ended with error: %w", err)
	}
	s.logger.Debug("session ended", zap.Stringer("exit", exit))
	return nil
}

// session binds the editor events of one Run to the shell.
type session struct {
	shell *Shell
	ctx   context.Context
}

func (s *session) HandleTab(e *lineeditor.Editor) {
	if s.shell.completer == nil {
		return
	}

	suggestions := s.shell.completer.Complete(e.Buffer().Text())
	switch {
	case len(suggestions) == 1:
		e.Buffer().ReplaceLastWord(suggestions[0] + " ")
		e.Redraw()

	case len(suggestions) > 1:
		var b strings.Builder
		b.WriteString("\n")
		for _, suggestion := range suggestions {
			b.WriteString(suggestion)
			b.WriteString(" ")
		}
		b.WriteString("\n")
		b.WriteString(e.Prompt())
		b.WriteString(e.Buffer().Text())
		io.WriteString(e, b.String())
	}
}

func (s *session) HandleArrow(e *lineeditor.Editor, key lineeditor.Arrow) {
	history := s.shell.history
	if history.Len() == 0 {
		return
	}

	switch key {
	case lineeditor.ArrowUp:
		e.Buffer().SetText(history.Up())
	case lineeditor.ArrowDown:
		e.Buffer().SetText(history.Down())
	default:
		return
	}
	e.Redraw()
}

func (s *session) HandleEnter(e *lineeditor.Editor) {
	line := e.Buffer().Text()
	if s.shell.submitter != nil {
		s.shell.submitter.Submit(s.ctx, line)
	}
	s.shell.history.Add(line)
}

func (s *session) HandleCtrlD(e *lineeditor.Editor) {
	s.shell.logger.Debug("ctrl+d pressed", zap.String("line", e.Buffer().Text()))
}
