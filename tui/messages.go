package tui

import (
	"github.com/young1lin/keygrid/internal/config"
)

// ConfigReloadedMsg is sent when the keypad file changed and parsed cleanly
type ConfigReloadedMsg struct {
	Config *config.Config
}

// ConfigErrorMsg is sent when the keypad file could not be reloaded
type ConfigErrorMsg struct {
	Err error
}

// WatcherStartedMsg is sent when the config watcher starts
type WatcherStartedMsg struct {
	Path string
}
