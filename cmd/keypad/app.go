package main

import (
	"fmt"
	"io"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/young1lin/keygrid/internal/config"
	"github.com/young1lin/keygrid/internal/logger"
	"github.com/young1lin/keygrid/tui"
)

// ProgramSender is an interface for sending messages to a Bubbletea program
type ProgramSender interface {
	Send(msg tea.Msg)
}

// Options holds the command line settings
type Options struct {
	ConfigPath string
	ProjectDir string
	LogLevel   string
	LogFormat  string
	LogFile    string
	NoWatch    bool
}

// AppDependencies contains the dependencies for the main application
type AppDependencies struct {
	Options        Options
	ConfigLoader   func(projectDir string) (*config.Config, string, error)
	FileLoader     func(path string) (*config.Config, error)
	WatcherCreator func(string) (config.ChangeSource, error)
	LogOpener      func(string) (io.WriteCloser, error)
	ProgramRunner  func(*tea.Program) error
}

func run(deps *AppDependencies) error {
	opts := deps.Options

	// The TUI owns the terminal, so logs only go to a file
	var logOut io.Writer
	if opts.LogFile != "" {
		f, err := deps.LogOpener(opts.LogFile)
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		defer f.Close()
		logOut = f
	}
	log := logger.New(opts.LogLevel, opts.LogFormat, logOut)

	cfg, path, err := loadConfig(deps)
	if err != nil {
		return err
	}
	log.Info("keypad config loaded", "path", path, "rows", len(cfg.Rows))

	model := tui.NewModel(cfg, path, log)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())

	// Only a file on disk can be watched
	if path != "" && !opts.NoWatch {
		watcher, err := deps.WatcherCreator(path)
		if err != nil {
			return fmt.Errorf("failed to start config watcher: %w", err)
		}
		defer watcher.Close()

		go runWatchLoop(p, watcher, path, log)
	}

	return deps.ProgramRunner(p)
}

// loadConfig loads the explicit --config file, or falls back to the
// project/global lookup
func loadConfig(deps *AppDependencies) (*config.Config, string, error) {
	if path := deps.Options.ConfigPath; path != "" {
		cfg, err := deps.FileLoader(path)
		if err != nil {
			return nil, "", fmt.Errorf("failed to load %s: %w", path, err)
		}
		return cfg, path, nil
	}

	cfg, path, err := deps.ConfigLoader(deps.Options.ProjectDir)
	if err != nil {
		return nil, "", fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, path, nil
}

// runWatchLoop forwards config reloads to the program until the watcher
// closes
func runWatchLoop(sender ProgramSender, watcher config.ChangeSource, path string, log *slog.Logger) {
	sender.Send(tui.WatcherStartedMsg{Path: path})

	changes, errs := watcher.Changes(), watcher.Errors()
	for changes != nil || errs != nil {
		select {
		case cfg, ok := <-changes:
			if !ok {
				changes = nil
				continue
			}
			log.Info("keypad config reloaded", "path", path, "rows", len(cfg.Rows))
			sender.Send(tui.ConfigReloadedMsg{Config: cfg})

		case err, ok := <-errs:
			if !ok {
				errs = nil
				continue
			}
			log.Warn("keypad config reload failed", "path", path, "error", err)
			sender.Send(tui.ConfigErrorMsg{Err: fmt.Errorf("reload %s: %w", path, err)})
		}
	}
}
