// Package commands connects the command tree to the shell: it runs
// submitted lines, reports unknown commands, provides tab completion and
// hosts the built-in, demo and scripted commands.
package commands

import (
	"context"
	"io"
	"strings"
	"time"

	"github.com/sahilm/fuzzy"
	"go.uber.org/zap"

	"github.com/atinylittleshell/tsh/internal/commandtree"
	"github.com/atinylittleshell/tsh/internal/journal"
	"github.com/atinylittleshell/tsh/internal/shell"
	"github.com/atinylittleshell/tsh/internal/styles"
)

const (
	defaultWidth   = 80
	maxSuggestions = 3
)

// Journal records dispatched lines. *journal.Journal implements it.
type Journal interface {
	Record(line string, command []string, params []string, outcome journal.Outcome) (*journal.Entry, error)
	TopCommands(limit int) ([]journal.CommandStat, error)
	RecentEntries(limit int) ([]journal.Entry, error)
	Reset() error
}

// ContextAction is an action that also wants the context of the line being
// dispatched. The dispatcher calls InvokeContext instead of Invoke.
type ContextAction interface {
	commandtree.Action
	InvokeContext(ctx context.Context, params []string)
}

// Config holds configuration for creating a new Dispatcher.
type Config struct {
	// Out receives command output and error messages. Required.
	Out io.Writer

	// CaptureRemainder passes unknown trailing tokens to the deepest
	// matching command instead of failing the lookup.
	CaptureRemainder bool

	// History is listed by the history command. May be nil.
	History *shell.History

	// Journal records every dispatched line. May be nil.
	Journal Journal

	// Width is used to wrap help output. If 0, 80 columns are assumed.
	Width int

	// Styles colours messages. If nil, colour support is detected from Out.
	Styles *styles.Styles

	// Logger for debug output. If nil, a no-op logger is used.
	Logger *zap.Logger
}

// Dispatcher runs submitted lines against a command tree.
// It implements shell.Submitter and shell.Completer.
type Dispatcher struct {
	tree    *commandtree.Tree
	out     io.Writer
	styles  *styles.Styles
	history *shell.History
	journal Journal
	width   int

	descriptions map[string]string

	logger *zap.Logger
	now    func() time.Time
}

// NewDispatcher creates a Dispatcher with an empty command tree.
func NewDispatcher(cfg Config) *Dispatcher {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	width := cfg.Width
	if width <= 0 {
		width = defaultWidth
	}

	st := cfg.Styles
	if st == nil {
		st = styles.New(cfg.Out)
	}

	return &Dispatcher{
		tree:         commandtree.New(cfg.CaptureRemainder),
		out:          cfg.Out,
		styles:       st,
		history:      cfg.History,
		journal:      cfg.Journal,
		width:        width,
		descriptions: make(map[string]string),
		logger:       logger,
		now:          time.Now,
	}
}

// Tree returns the command tree.
func (d *Dispatcher) Tree() *commandtree.Tree {
	return d.tree
}

// Register installs action at path. description is shown by help.
func (d *Dispatcher) Register(path []string, description string, action commandtree.Action) {
	d.tree.Insert(path, action)
	d.descriptions[strings.Join(path, " ")] = description
}

// RegisterVariadic is like Register but always passes trailing tokens to
// action as parameters.
func (d *Dispatcher) RegisterVariadic(path []string, description string, action commandtree.Action) {
	d.tree.InsertVariadic(path, action)
	d.descriptions[strings.Join(path, " ")] = description
}

// Unregister removes the command at path.
func (d *Dispatcher) Unregister(path []string) {
	d.tree.Remove(path)
	delete(d.descriptions, strings.Join(path, " "))
}

// Description returns the help text of the command at path.
func (d *Dispatcher) Description(path []string) string {
	return d.descriptions[strings.Join(path, " ")]
}

// Submit runs line. Empty lines are ignored. Output starts on a new line
// and does not end with one; the editor prints the next prompt.
func (d *Dispatcher) Submit(ctx context.Context, line string) {
	tokens := commandtree.Fields(line)
	if len(tokens) == 0 {
		return
	}

	io.WriteString(d.out, "\n")

	node, depth := d.resolve(tokens)
	outcome := journal.OutcomeNotFound

	match, found := d.tree.Find(tokens)
	switch {
	case found && execute(ctx, match):
		outcome = journal.OutcomeExecuted
	case found && depth == len(tokens):
		outcome = journal.OutcomeNoAction
		d.reportIncomplete(tokens, node)
	default:
		d.reportUnknown(tokens, node, depth)
	}

	d.logger.Debug("dispatched line",
		zap.String("line", line),
		zap.Strings("command", tokens[:depth]),
		zap.String("outcome", string(outcome)),
	)
	d.record(line, tokens[:depth], tokens[depth:], outcome)
}

// execute runs the matched action, handing ctx to a ContextAction.
func execute(ctx context.Context, match commandtree.Match) bool {
	if action, ok := match.Node.Action().(ContextAction); ok {
		params := match.Params
		if params == nil {
			params = []string{}
		}
		action.InvokeContext(ctx, params)
		return true
	}
	return match.Execute()
}

// Complete suggests tokens for the word being typed. A line ending in a
// space completes the next token.
func (d *Dispatcher) Complete(line string) []string {
	tokens := commandtree.Fields(line)
	if len(tokens) == 0 || strings.HasSuffix(line, " ") {
		return d.tree.Complete(tokens, "")
	}

	last := len(tokens) - 1
	if _, depth := d.resolve(tokens[:last]); depth < last {
		return []string{}
	}
	return d.tree.Complete(tokens[:last], tokens[last])
}

// resolve walks tokens down the tree and returns the deepest node reached
// and how many tokens matched.
func (d *Dispatcher) resolve(tokens []string) (*commandtree.Node, int) {
	node := d.tree.Root()
	for i, token := range tokens {
		child := node.Child(token)
		if child == nil {
			return node, i
		}
		node = child
	}
	return node, len(tokens)
}

func (d *Dispatcher) reportUnknown(tokens []string, node *commandtree.Node, depth int) {
	lines := []string{
		d.styles.Error("unknown command: " + strings.Join(tokens[:depth+1], " ")),
	}

	suggestions := suggestSimilar(tokens[depth], node.Keys())
	if len(suggestions) > 0 {
		prefix := strings.Join(tokens[:depth], " ")
		for i, suggestion := range suggestions {
			suggestions[i] = strings.TrimSpace(prefix + " " + suggestion)
		}
		lines = append(lines, d.styles.Hint("did you mean: "+strings.Join(suggestions, ", ")))
	}

	keys := node.Keys()
	if depth > 0 && len(keys) > 0 {
		lines = append(lines, d.styles.Hint("available: "+strings.Join(keys, " ")))
	} else if depth == 0 && len(suggestions) == 0 {
		lines = append(lines, d.styles.Hint("run help to list commands"))
	}

	io.WriteString(d.out, strings.Join(lines, "\n"))
}

func (d *Dispatcher) reportIncomplete(tokens []string, node *commandtree.Node) {
	lines := []string{
		d.styles.Error("incomplete command: " + strings.Join(tokens, " ")),
		d.styles.Hint("available: " + strings.Join(node.Keys(), " ")),
	}
	io.WriteString(d.out, strings.Join(lines, "\n"))
}

// errorf prints an error message for a failed command.
func (d *Dispatcher) errorf(msg string, err error) {
	io.WriteString(d.out, d.styles.Error(msg+": "+err.Error()))
}

func (d *Dispatcher) record(line string, command, params []string, outcome journal.Outcome) {
	if d.journal == nil {
		return
	}
	if _, err := d.journal.Record(line, command, params, outcome); err != nil {
		d.logger.Warn("failed to record command in journal", zap.Error(err))
	}
}

// suggestSimilar finds similar tokens using fuzzy matching.
// Returns up to 3 most similar tokens.
func suggestSimilar(token string, candidates []string) []string {
	if token == "" || len(candidates) == 0 {
		return nil
	}

	matches := fuzzy.Find(token, candidates)
	if len(matches) > maxSuggestions {
		matches = matches[:maxSuggestions]
	}

	suggestions := make([]string, 0, len(matches))
	for _, match := range matches {
		suggestions = append(suggestions, candidates[match.Index])
	}
	return suggestions
}
