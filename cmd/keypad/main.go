package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/young1lin/keygrid/internal/config"
)

// exitFunc is the function to call for exiting (can be mocked for testing)
var exitFunc = os.Exit

func main() {
	opts, err := parseFlags(os.Args[1:], os.Stderr)
	if err != nil {
		logAndExit(err)
		return
	}

	if err := run(&AppDependencies{
		Options:      opts,
		ConfigLoader: config.Load,
		FileLoader:   config.LoadFile,
		WatcherCreator: func(path string) (config.ChangeSource, error) {
			return config.NewWatcher(path)
		},
		LogOpener: func(path string) (io.WriteCloser, error) {
			return os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		},
		ProgramRunner: func(p *tea.Program) error {
			_, err := p.Run()
			return err
		},
	}); err != nil {
		logAndExit(err)
	}
}

// parseFlags reads the command line
func parseFlags(args []string, errOut io.Writer) (Options, error) {
	var opts Options

	fs := flag.NewFlagSet("keypad", flag.ContinueOnError)
	fs.SetOutput(errOut)
	fs.StringVar(&opts.ConfigPath, "config", "", "keypad file to load instead of the project/global lookup")
	fs.StringVar(&opts.ProjectDir, "project", ".", "directory searched for .keygrid/keypad.yaml")
	fs.StringVar(&opts.LogLevel, "log-level", "info", "log level: debug, info, warn, error")
	fs.StringVar(&opts.LogFormat, "log-format", "text", "log format: text or json")
	fs.StringVar(&opts.LogFile, "log-file", "", "write logs to this file (logs are discarded when empty)")
	fs.BoolVar(&opts.NoWatch, "no-watch", false, "do not reload the keypad file when it changes")

	if err := fs.Parse(args); err != nil {
		return Options{}, err
	}
	if fs.NArg() > 0 {
		return Options{}, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}
	return opts, nil
}

func logAndExit(err error) {
	// This is a separate function to allow testing of error handling
	if err != nil {
		fmt.Fprintf(os.Stderr, "keypad: %v\n", err)
		exitFunc(1)
	}
}
