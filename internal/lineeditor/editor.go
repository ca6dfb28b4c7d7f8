// Package lineeditor turns a raw terminal byte stream into key events while
// maintaining and echoing the line being typed. It knows nothing about
// history or completion; those are layered on through a Handler.
package lineeditor

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"
)

// DefaultPrompt is printed before every line.
const DefaultPrompt = "> "

// clearLine moves to column 0 and erases to the end of the line.
const clearLine = "\r\x1b[K"

// Handler receives the key events the editor does not handle itself.
// Handlers may modify the editor's buffer and write to the editor.
type Handler interface {
	HandleTab(e *Editor)
	HandleEnter(e *Editor)
	HandleArrow(e *Editor, key Arrow)
	HandleCtrlD(e *Editor)
}

// NopHandler ignores every event. Embed it to implement only some methods.
type NopHandler struct{}

func (NopHandler) HandleTab(*Editor)          {}
func (NopHandler) HandleEnter(*Editor)        {}
func (NopHandler) HandleArrow(*Editor, Arrow) {}
func (NopHandler) HandleCtrlD(*Editor)        {}

// Exit tells why Run returned.
type Exit int

const (
	// ExitEOF means the input stream ended.
	ExitEOF Exit = iota
	// ExitCtrlD means the user pressed Ctrl+D.
	ExitCtrlD
	// ExitCanceled means the context was canceled between keystrokes.
	ExitCanceled
)

// String returns the string representation of an Exit.
func (x Exit) String() string {
	switch x {
	case ExitEOF:
		return "EOF"
	case ExitCtrlD:
		return "CtrlD"
	case ExitCanceled:
		return "Canceled"
	default:
		return "Unknown"
	}
}

// Config holds configuration for creating a new Editor.
type Config struct {
	// Input is read one byte at a time.
	Input io.Reader

	// Output receives the echo. It is flushed after every event.
	Output io.Writer

	// Handler receives tab, enter, arrow and Ctrl+D events. If nil, NopHandler is used.
	Handler Handler

	// Prompt is printed before every line. If empty, DefaultPrompt is used.
	Prompt string

	// ReprintPromptOnTab prints the prompt and the line again after a tab event.
	ReprintPromptOnTab bool

	// Logger for debug output. If nil, a no-op logger is used.
	Logger *zap.Logger
}

// Editor is a synchronous line editor. It is not safe for concurrent use.
type Editor struct {
	in      io.Reader
	out     *bufio.Writer
	handler Handler
	prompt  string

	reprintPromptOnTab bool

	buffer *Buffer
	one    [1]byte

	logger *zap.Logger
}

// New creates a new Editor with the given configuration.
func New(cfg Config) *Editor {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	handler := cfg.Handler
	if handler == nil {
		handler = NopHandler{}
	}

	prompt := cfg.Prompt
	if prompt == "" {
		prompt = DefaultPrompt
	}

	return &Editor{
		in:                 cfg.Input,
		out:                bufio.NewWriter(cfg.Output),
		handler:            handler,
		prompt:             prompt,
		reprintPromptOnTab: cfg.ReprintPromptOnTab,
		buffer:             NewBuffer(),
		logger:             logger,
	}
}

// Buffer returns the line being edited.
func (e *Editor) Buffer() *Buffer {
	return e.buffer
}

// Prompt returns the prompt string.
func (e *Editor) Prompt() string {
	return e.prompt
}

// Write writes to the editor's output. The data is flushed at the end of the
// current event.
func (e *Editor) Write(p []byte) (int, error) {
	return e.out.Write(p)
}

// Redraw clears the current terminal line and prints the prompt and buffer.
func (e *Editor) Redraw() {
	e.out.WriteString(clearLine)
	e.out.WriteString(e.prompt)
	e.out.WriteString(e.buffer.Text())
}

// Run prints the prompt and processes input until the stream ends, the user
// presses Ctrl+D, or ctx is canceled. Cancellation is only noticed between
// keystrokes; a blocked read is not interrupted. An error is returned only
// when the output cannot be written.
func (e *Editor) Run(ctx context.Context) (Exit, error) {
	e.out.WriteString(e.prompt)
	if err := e.flush(); err != nil {
		return ExitEOF, err
	}

	for {
		if ctx.Err() != nil {
			return ExitCanceled, nil
		}

		c, ok := e.readByte()
		if !ok {
			return ExitEOF, nil
		}

		if e.step(c) {
			return ExitCtrlD, e.flush()
		}
		if err := e.flush(); err != nil {
			return ExitEOF, err
		}
	}
}

// step handles one input byte and reports whether the loop should stop.
func (e *Editor) step(c byte) bool {
	switch Classify(c) {
	case EventEscape:
		first, ok := e.readByte()
		if !ok {
			return false
		}
		second, ok := e.readByte()
		if !ok {
			return false
		}
		if first == '[' {
			e.handler.HandleArrow(e, Arrow(second))
		}

	case EventCtrlD:
		e.handler.HandleCtrlD(e)
		e.out.WriteString("\n")
		e.buffer.Clear()
		return true

	case EventTab:
		e.handler.HandleTab(e)
		if e.reprintPromptOnTab {
			e.out.WriteString("\n")
			e.out.WriteString(e.prompt)
			e.out.WriteString(e.buffer.Text())
		}

	case EventEnter:
		e.handler.HandleEnter(e)
		e.buffer.Clear()
		e.out.WriteString("\n")
		e.out.WriteString(e.prompt)

	case EventBackspace:
		if e.buffer.DeleteLast() {
			e.out.WriteString("\b \b")
		}

	default:
		e.buffer.Append(c)
		e.out.WriteByte(c)
	}
	return false
}

// readByte blocks for the next input byte. It returns false when the read
// produced nothing, which callers treat as the end of the input.
func (e *Editor) readByte() (byte, bool) {
	n, err := e.in.Read(e.one[:])
	if n == 1 {
		return e.one[0], true
	}
	if err != nil && !errors.Is(err, io.EOF) {
		e.logger.Debug("terminal read failed", zap.Error(err))
	}
	return 0, false
}

func (e *Editor) flush() error {
	if err := e.out.Flush(); err != nil {
		return fmt.Errorf("failed to write to terminal: %w", err)
	}
	return nil
}
