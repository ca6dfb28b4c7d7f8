package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/atinylittleshell/tsh/internal/commands"
	"github.com/atinylittleshell/tsh/internal/config"
	"github.com/atinylittleshell/tsh/internal/core"
	"github.com/atinylittleshell/tsh/internal/journal"
	"github.com/atinylittleshell/tsh/internal/shell"
	"github.com/atinylittleshell/tsh/internal/styles"
	"github.com/atinylittleshell/tsh/internal/terminal"
)

// options are the command line overrides for the config file.
type options struct {
	configPath string
	logLevel   string
	noJournal  bool
	prompt     string
}

func runShell(ctx context.Context, opts options, stdin, stdout *os.File) error {
	cfg, configErrs, err := loadConfig(opts)
	if err != nil {
		return err
	}

	logger, err := initializeLogger(cfg, opts.logLevel != "")
	if err != nil {
		return err
	}
	defer logger.Sync() // Flush any buffered log entries

	logger.Info("-------- new tsh session --------", zap.Any("args", os.Args))

	st := styles.New(stdout)
	for _, err := range configErrs {
		logger.Warn("config error", zap.Error(err))
		fmt.Fprintln(stdout, st.Error("config: "+err.Error()))
	}

	var commandJournal commands.Journal
	var closers []func() error
	if cfg.Journal {
		j, err := journal.Open(core.JournalFile())
		if err != nil {
			logger.Warn("failed to open journal", zap.Error(err))
			fmt.Fprintln(stdout, st.Error("journal: "+err.Error()))
		} else {
			defer j.Close()
			commandJournal = j
			closers = append(closers, j.Close)
		}
	}

	tty, err := terminal.Open(stdin, stdout)
	if errors.Is(err, terminal.ErrNotTerminal) {
		logger.Debug("input is not a terminal, reading lines as they come")
		tty = terminal.Passthrough(stdin, stdout)
	} else if err != nil {
		return err
	}
	stopWatching := watchSignals(logger, append([]func() error{tty.Restore}, closers...)...)
	defer stopWatching()

	history := shell.NewHistory(cfg.HistoryLimit)

	dispatcher := commands.NewDispatcher(commands.Config{
		Out:              tty,
		CaptureRemainder: cfg.CaptureRemainder,
		History:          history,
		Journal:          commandJournal,
		Width:            terminalWidth(stdout),
		Styles:           st,
		Logger:           logger,
	})
	dispatcher.RegisterBuiltins()
	dispatcher.RegisterDemo()
	for _, err := range dispatcher.RegisterScripts(cfg.Commands) {
		logger.Warn("failed to register scripted command", zap.Error(err))
		fmt.Fprintln(stdout, st.Error("config: "+err.Error()))
	}

	sh, err := shell.New(shell.Config{
		Terminal:           tty,
		Prompt:             cfg.Prompt,
		Submitter:          dispatcher,
		Completer:          dispatcher,
		ReprintPromptOnTab: cfg.ReprintPromptOnTab,
		History:            history,
		Logger:             logger,
	})
	if err != nil {
		_ = tty.Restore()
		return err
	}

	return sh.Run(ctx)
}

// loadConfig reads the config file and applies the command line overrides.
// Invalid values are returned as non-fatal errors.
func loadConfig(opts options) (*config.Config, []error, error) {
	path := opts.configPath
	if path == "" {
		path = core.ConfigFile()
	}

	result, err := config.NewLoader(nil).LoadFromFile(path)
	if err != nil {
		return nil, nil, err
	}

	cfg := result.Config
	if opts.prompt != "" {
		cfg.Prompt = opts.prompt
	}
	if opts.logLevel != "" {
		cfg.LogLevel = opts.logLevel
	}
	if opts.noJournal {
		cfg.Journal = false
	}
	return cfg, result.Errors, nil
}

func initializeLogger(cfg *config.Config, levelFromFlag bool) (*zap.Logger, error) {
	logLevel := cfg.Level()
	if BUILD_VERSION == "dev" && !levelFromFlag {
		logLevel = zap.NewAtomicLevelAt(zap.DebugLevel)
	}

	loggerConfig := zap.NewProductionConfig()
	loggerConfig.Level = logLevel
	loggerConfig.OutputPaths = []string{
		core.LogFile(),
	}

	// Logs only go to the file; the terminal belongs to the line editor.
	// Use `tail -f ~/.tsh/tsh.log` to monitor logs in real-time.
	return loggerConfig.Build()
}

// exit is replaced in tests.
var exit = os.Exit

// watchSignals runs cleanups in order and exits when the process is told to
// stop. The first cleanup restores the terminal. The returned function stops
// watching.
func watchSignals(logger *zap.Logger, cleanups ...func() error) func() {
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)

	done := make(chan struct{})
	go func() {
		select {
		case sig := <-signals:
			logger.Info("received signal, cleaning up", zap.Stringer("signal", sig))
			for _, cleanup := range cleanups {
				if err := cleanup(); err != nil {
					logger.Warn("cleanup failed", zap.Error(err))
				}
			}
			logger.Sync()
			code := 1
			if s, ok := sig.(syscall.Signal); ok {
				code = 128 + int(s)
			}
			exit(code)
		case <-done:
		}
	}()

	return func() {
		signal.Stop(signals)
		close(done)
	}
}

func terminalWidth(f *os.File) int {
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil {
		return 0
	}
	return width
}
