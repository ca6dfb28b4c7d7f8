package commands

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/dustin/go-humanize/english"
	"github.com/muesli/reflow/indent"
	"github.com/muesli/reflow/wordwrap"
	"go.uber.org/zap"

	"github.com/atinylittleshell/tsh/internal/commandtree"
)

const (
	statsLimit   = 10
	journalLimit = 20
	minHelpWidth = 20
)

// RegisterBuiltins installs help, history, journal, stats and stats reset.
func (d *Dispatcher) RegisterBuiltins() {
	d.RegisterVariadic([]string{"help"},
		"List the available commands. With a path, only commands under that path are listed.",
		commandtree.ActionFunc(d.help))
	d.Register([]string{"history"},
		"Show the lines entered in this session.",
		commandtree.ActionFunc(d.showHistory))
	d.Register([]string{"stats"},
		"Show the most used commands recorded in the journal.",
		commandtree.ActionFunc(d.showStats))
	d.Register([]string{"stats", "reset"},
		"Delete every command recorded in the journal.",
		commandtree.ActionFunc(d.resetStats))
	d.Register([]string{"journal"},
		"Show the most recent lines recorded in the journal, across sessions.",
		commandtree.ActionFunc(d.showJournal))
}

func (d *Dispatcher) help(params []string) {
	var paths []string
	d.tree.Walk(func(path []string, _ *commandtree.Node) {
		if len(path) >= len(params) && slices.Equal(path[:len(params)], params) {
			paths = append(paths, strings.Join(path, " "))
		}
	})

	if len(paths) == 0 {
		io.WriteString(d.out, d.styles.Error("help: no commands under "+strings.Join(params, " ")))
		return
	}

	nameWidth := 0
	for _, path := range paths {
		nameWidth = max(nameWidth, len(path))
	}
	column := nameWidth + 4
	descWidth := max(d.width-column, minHelpWidth)

	lines := []string{d.styles.Heading("Commands:")}
	for _, path := range paths {
		line := "  " + d.styles.Command(path) + strings.Repeat(" ", nameWidth-len(path)+2)

		wrapped := strings.Split(wordwrap.String(d.descriptions[path], descWidth), "\n")
		line += wrapped[0]
		if len(wrapped) > 1 {
			line += "\n" + indent.String(strings.Join(wrapped[1:], "\n"), uint(column))
		}
		lines = append(lines, line)
	}

	io.WriteString(d.out, strings.Join(lines, "\n"))
}

func (d *Dispatcher) showHistory([]string) {
	if d.history == nil || d.history.Len() == 0 {
		io.WriteString(d.out, d.styles.Hint("history is empty"))
		return
	}

	entries := d.history.Entries()
	lines := make([]string, 0, len(entries))
	for i, entry := range entries {
		lines = append(lines, fmt.Sprintf("%4d  %s", i+1, entry))
	}
	io.WriteString(d.out, strings.Join(lines, "\n"))
}

func (d *Dispatcher) showStats([]string) {
	if d.journal == nil {
		io.WriteString(d.out, d.styles.Hint("journal is disabled"))
		return
	}

	stats, err := d.journal.TopCommands(statsLimit)
	if err != nil {
		d.logger.Warn("failed to read journal", zap.Error(err))
		d.errorf("stats", err)
		return
	}
	if len(stats) == 0 {
		io.WriteString(d.out, d.styles.Hint("no commands recorded yet"))
		return
	}

	nameWidth := 0
	for _, stat := range stats {
		nameWidth = max(nameWidth, len(stat.Command))
	}

	lines := []string{d.styles.Heading("Most used commands:")}
	for _, stat := range stats {
		line := "  " + d.styles.Command(stat.Command) + strings.Repeat(" ", nameWidth-len(stat.Command)+2) +
			humanize.Comma(stat.Count) + " " + english.PluralWord(int(stat.Count), "run", "")
		if !stat.LastUsed.IsZero() {
			line += ", last " + humanize.RelTime(stat.LastUsed, d.now(), "ago", "from now")
		}
		lines = append(lines, line)
	}
	io.WriteString(d.out, strings.Join(lines, "\n"))
}

func (d *Dispatcher) resetStats([]string) {
	if d.journal == nil {
		io.WriteString(d.out, d.styles.Hint("journal is disabled"))
		return
	}

	if err := d.journal.Reset(); err != nil {
		d.logger.Warn("failed to reset journal", zap.Error(err))
		d.errorf("stats reset", err)
		return
	}
	io.WriteString(d.out, d.styles.Hint("journal cleared"))
}

func (d *Dispatcher) showJournal([]string) {
	if d.journal == nil {
		io.WriteString(d.out, d.styles.Hint("journal is disabled"))
		return
	}

	entries, err := d.journal.RecentEntries(journalLimit)
	if err != nil {
		d.logger.Warn("failed to read journal", zap.Error(err))
		d.errorf("journal", err)
		return
	}
	if len(entries) == 0 {
		io.WriteString(d.out, d.styles.Hint("no commands recorded yet"))
		return
	}

	lineWidth := 0
	for _, entry := range entries {
		lineWidth = max(lineWidth, len(entry.Line))
	}

	lines := []string{d.styles.Heading("Recent commands:")}
	for _, entry := range entries {
		lines = append(lines, fmt.Sprintf("%4d  %-*s  %s", entry.ID, lineWidth, entry.Line, entry.Outcome))
	}
	io.WriteString(d.out, strings.Join(lines, "\n"))
}
