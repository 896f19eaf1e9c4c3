package main

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/young1lin/keygrid/internal/config"
	"github.com/young1lin/keygrid/internal/logger"
	"github.com/young1lin/keygrid/tui"
)

// MockProgramSender is a mock ProgramSender for testing
type MockProgramSender struct {
	messages []tea.Msg
}

func (m *MockProgramSender) Send(msg tea.Msg) {
	m.messages = append(m.messages, msg)
}

func (m *MockProgramSender) GetMessages() []tea.Msg {
	return m.messages
}

// MockProgramRunner is a mock ProgramRunner for testing
type MockProgramRunner struct {
	runCalled bool
	runError  error
}

func (m *MockProgramRunner) Run(p *tea.Program) error {
	m.runCalled = true
	return m.runError
}

// MockChangeSource is a config.ChangeSource fed by the test
type MockChangeSource struct {
	changes chan *config.Config
	errors  chan error
	closed  bool
}

func NewMockChangeSource() *MockChangeSource {
	return &MockChangeSource{
		changes: make(chan *config.Config, 4),
		errors:  make(chan error, 4),
	}
}

func (m *MockChangeSource) Changes() <-chan *config.Config { return m.changes }
func (m *MockChangeSource) Errors() <-chan error           { return m.errors }

func (m *MockChangeSource) Close() error {
	m.closed = true
	return nil
}

// nopWriteCloser records log output
type nopWriteCloser struct {
	bytes.Buffer
	closed bool
}

func (n *nopWriteCloser) Close() error {
	n.closed = true
	return nil
}

func baseDeps(runner *MockProgramRunner) *AppDependencies {
	return &AppDependencies{
		Options: Options{ProjectDir: "."},
		ConfigLoader: func(string) (*config.Config, string, error) {
			return config.DefaultConfig(), "", nil
		},
		FileLoader: func(string) (*config.Config, error) {
			return config.DefaultConfig(), nil
		},
		WatcherCreator: func(string) (config.ChangeSource, error) {
			return nil, errors.New("watcher should not be created")
		},
		ProgramRunner: runner.Run,
	}
}

// TestRunDefaultConfig tests the built-in layout path, which has nothing to watch
func TestRunDefaultConfig(t *testing.T) {
	runner := &MockProgramRunner{}

	if err := run(baseDeps(runner)); err != nil {
		t.Fatalf("run() error = %v", err)
	}

	if !runner.runCalled {
		t.Error("ProgramRunner should be called")
	}
}

// TestRunConfigLoaderError tests that a broken keypad file stops startup
func TestRunConfigLoaderError(t *testing.T) {
	runner := &MockProgramRunner{}
	deps := baseDeps(runner)
	deps.ConfigLoader = func(string) (*config.Config, string, error) {
		return nil, "", config.ErrEmptyLayout
	}

	err := run(deps)
	if !errors.Is(err, config.ErrEmptyLayout) {
		t.Errorf("run() error = %v, want %v", err, config.ErrEmptyLayout)
	}

	if runner.runCalled {
		t.Error("ProgramRunner should not be called")
	}
}

// TestRunExplicitConfig tests that --config bypasses the lookup
func TestRunExplicitConfig(t *testing.T) {
	runner := &MockProgramRunner{}
	deps := baseDeps(runner)
	deps.Options.ConfigPath = "/tmp/custom.yaml"
	deps.Options.NoWatch = true
	deps.ConfigLoader = func(string) (*config.Config, string, error) {
		t.Error("ConfigLoader should not be called with --config")
		return nil, "", nil
	}

	var loaded string
	deps.FileLoader = func(path string) (*config.Config, error) {
		loaded = path
		return config.DefaultConfig(), nil
	}

	if err := run(deps); err != nil {
		t.Fatalf("run() error = %v", err)
	}

	if loaded != "/tmp/custom.yaml" {
		t.Errorf("FileLoader path = %q, want /tmp/custom.yaml", loaded)
	}
}

// TestRunExplicitConfigError tests that a bad --config file is reported with its path
func TestRunExplicitConfigError(t *testing.T) {
	runner := &MockProgramRunner{}
	deps := baseDeps(runner)
	deps.Options.ConfigPath = "/tmp/missing.yaml"
	deps.FileLoader = func(string) (*config.Config, error) {
		return nil, os.ErrNotExist
	}

	err := run(deps)
	if err == nil {
		t.Fatal("Expected error for a missing --config file")
	}

	if !strings.Contains(err.Error(), "/tmp/missing.yaml") {
		t.Errorf("run() error = %v, should name the file", err)
	}
}

// TestRunWatcherError tests error case when watcher creation fails
func TestRunWatcherError(t *testing.T) {
	runner := &MockProgramRunner{}
	deps := baseDeps(runner)
	deps.ConfigLoader = func(string) (*config.Config, string, error) {
		return config.DefaultConfig(), "/tmp/keypad.yaml", nil
	}

	err := run(deps)
	if err == nil {
		t.Fatal("Expected error when watcher creation fails")
	}

	if runner.runCalled {
		t.Error("ProgramRunner should not be called")
	}
}

// TestRunNoWatch tests that --no-watch skips the watcher for a loaded file
func TestRunNoWatch(t *testing.T) {
	runner := &MockProgramRunner{}
	deps := baseDeps(runner)
	deps.Options.NoWatch = true
	deps.ConfigLoader = func(string) (*config.Config, string, error) {
		return config.DefaultConfig(), "/tmp/keypad.yaml", nil
	}

	if err := run(deps); err != nil {
		t.Fatalf("run() error = %v", err)
	}
}

// TestRunProgramError tests that the program's error is returned
func TestRunProgramError(t *testing.T) {
	runner := &MockProgramRunner{runError: errors.New("tty lost")}

	if err := run(baseDeps(runner)); err == nil || err.Error() != "tty lost" {
		t.Errorf("run() error = %v, want tty lost", err)
	}
}

// TestRunLogFile tests that logs go to the opened file, which is closed on exit
func TestRunLogFile(t *testing.T) {
	runner := &MockProgramRunner{}
	deps := baseDeps(runner)
	deps.Options.LogFile = "keypad.log"
	deps.Options.LogFormat = "json"

	out := &nopWriteCloser{}
	deps.LogOpener = func(path string) (io.WriteCloser, error) {
		if path != "keypad.log" {
			t.Errorf("LogOpener path = %q, want keypad.log", path)
		}
		return out, nil
	}

	if err := run(deps); err != nil {
		t.Fatalf("run() error = %v", err)
	}

	if !strings.Contains(out.String(), `"msg":"keypad config loaded"`) {
		t.Errorf("log output = %q, want a json load record", out.String())
	}

	if !out.closed {
		t.Error("log file should be closed")
	}
}

// TestRunLogFileError tests that an unopenable log file stops startup
func TestRunLogFileError(t *testing.T) {
	runner := &MockProgramRunner{}
	deps := baseDeps(runner)
	deps.Options.LogFile = "/nonexistent/dir/keypad.log"
	deps.LogOpener = func(string) (io.WriteCloser, error) {
		return nil, os.ErrPermission
	}

	if err := run(deps); !errors.Is(err, os.ErrPermission) {
		t.Errorf("run() error = %v, want %v", err, os.ErrPermission)
	}
}

// TestRunWatchLoop tests that reloads and errors reach the program in order
func TestRunWatchLoop(t *testing.T) {
	sender := &MockProgramSender{}
	watcher := NewMockChangeSource()

	reloaded := &config.Config{Rows: [][]string{{"a"}}}
	watcher.changes <- reloaded
	close(watcher.changes)
	watcher.errors <- errors.New("parse failed")
	close(watcher.errors)

	done := make(chan struct{})
	go func() {
		runWatchLoop(sender, watcher, "/tmp/keypad.yaml", logger.New("debug", "text", nil))
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("runWatchLoop should return once both channels close")
	}

	msgs := sender.GetMessages()
	if len(msgs) != 3 {
		t.Fatalf("sent %d messages, want 3", len(msgs))
	}

	if started, ok := msgs[0].(tui.WatcherStartedMsg); !ok || started.Path != "/tmp/keypad.yaml" {
		t.Errorf("first message = %#v, want WatcherStartedMsg", msgs[0])
	}

	var gotReload, gotError bool
	for _, msg := range msgs[1:] {
		switch m := msg.(type) {
		case tui.ConfigReloadedMsg:
			gotReload = m.Config == reloaded
		case tui.ConfigErrorMsg:
			gotError = strings.Contains(m.Err.Error(), "parse failed")
		}
	}

	if !gotReload {
		t.Error("runWatchLoop should forward the reloaded config")
	}

	if !gotError {
		t.Error("runWatchLoop should forward the reload error")
	}
}

// TestRunWatchLoopRealWatcher tests the loop against a file on disk
func TestRunWatchLoopRealWatcher(t *testing.T) {
	path := filepath.Join(t.TempDir(), "keypad.yaml")
	if err := os.WriteFile(path, []byte("rows: [[a]]\n"), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	watcher, err := config.NewWatcher(path)
	if err != nil {
		t.Fatalf("NewWatcher() error = %v", err)
	}

	received := make(chan tea.Msg, 8)
	go runWatchLoop(chanSender(received), watcher, path, logger.New("", "", nil))
	defer watcher.Close()

	if err := os.WriteFile(path, []byte("rows: [[x, y]]\n"), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	// An editor may be seen mid-write; wait for the complete layout
	deadline := time.After(3 * time.Second)
	for {
		select {
		case msg := <-received:
			if m, ok := msg.(tui.ConfigReloadedMsg); ok && len(m.Config.Rows[0]) == 2 {
				return
			}
		case <-deadline:
			t.Fatal("no ConfigReloadedMsg after writing the file")
		}
	}
}

// chanSender forwards sent messages to a channel
type chanSender chan tea.Msg

func (c chanSender) Send(msg tea.Msg) {
	c <- msg
}
