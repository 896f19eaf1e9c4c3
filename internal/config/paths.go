package config

import (
	"os"
	"path/filepath"
	"runtime"
)

const (
	appName  = "keygrid"
	fileName = "keypad.yaml"
)

// Env is the part of the process environment the config lookup depends on
type Env interface {
	// OS returns the operating system name ("windows", "darwin", "linux")
	OS() string

	// Getenv returns the value of an environment variable
	Getenv(key string) string

	// HomeDir returns the current user's home directory
	HomeDir() (string, error)
}

// hostEnv reads the real process environment
type hostEnv struct{}

func (hostEnv) OS() string               { return runtime.GOOS }
func (hostEnv) Getenv(key string) string { return os.Getenv(key) }
func (hostEnv) HomeDir() (string, error) { return os.UserHomeDir() }

// DefaultEnv is the environment used by GlobalDir and Load (can be
// overridden for tests)
var DefaultEnv Env = hostEnv{}

// GlobalDir returns the per-user keygrid configuration directory
func GlobalDir() string {
	return GlobalDirIn(DefaultEnv)
}

// GlobalDirIn resolves the per-user configuration directory in env. It
// returns "" when env has no usable location.
func GlobalDirIn(env Env) string {
	switch env.OS() {
	case "windows":
		// %APPDATA%\keygrid\
		appData := env.Getenv("APPDATA")
		if appData == "" {
			return ""
		}
		return filepath.Join(appData, appName)
	case "darwin":
		// ~/Library/Application Support/keygrid/
		home, err := env.HomeDir()
		if err != nil {
			return ""
		}
		return filepath.Join(home, "Library", "Application Support", appName)
	default:
		// $XDG_CONFIG_HOME/keygrid/ or ~/.config/keygrid/
		if xdg := env.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, appName)
		}
		home, err := env.HomeDir()
		if err != nil {
			return ""
		}
		return filepath.Join(home, ".config", appName)
	}
}

// GlobalPath returns the per-user keypad file, or "" if no home is known
func GlobalPath() string {
	dir := GlobalDir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, fileName)
}

// ProjectPath returns the project-level keypad file under projectDir
func ProjectPath(projectDir string) string {
	return filepath.Join(projectDir, "."+appName, fileName)
}
