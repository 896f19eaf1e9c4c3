package tui

import (
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/young1lin/keygrid/grid"
	"github.com/young1lin/keygrid/internal/config"
)

// Rows taken by the header (title, entry) and the footer (help)
const (
	headerHeight = 2
	footerHeight = 1
)

// Model represents the application state
type Model struct {
	grid   *grid.Grid
	keypad *Keypad

	// Terminal size
	width  int
	height int

	// State
	ready      bool
	quitting   bool
	configPath string
	watching   bool
	reloads    int

	// Error state; reload errors are shown but not fatal
	err error

	// Styles
	styles Styles
}

// Styles contains the Lipgloss styles for the UI
type Styles struct {
	Title  lipgloss.Style
	Entry  lipgloss.Style
	Muted  lipgloss.Style
	Error  lipgloss.Style
	Footer lipgloss.Style
}

// DefaultStyles returns the default UI styles
func DefaultStyles() Styles {
	var styles Styles

	// Color palette
	primaryColor := lipgloss.Color("86")    // Green
	secondaryColor := lipgloss.Color("239") // Grey
	errorColor := lipgloss.Color("196")     // Red

	styles.Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(primaryColor)

	styles.Entry = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("255"))

	styles.Muted = lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))

	styles.Error = lipgloss.NewStyle().
		Foreground(errorColor).
		Bold(true)

	styles.Footer = lipgloss.NewStyle().
		Foreground(secondaryColor)

	return styles
}

// NewModel creates a Model showing cfg's keypad. configPath is displayed in
// the header; empty means the built-in layout.
func NewModel(cfg *config.Config, configPath string, logger *slog.Logger) Model {
	keypad := NewKeypad(cfg)
	g := grid.New(0, 0, grid.WithLogger(logger))
	g.SetDataSource(keypad)
	g.SetDelegate(keypad)

	return Model{
		grid:       g,
		keypad:     keypad,
		configPath: configPath,
		styles:     DefaultStyles(),
	}
}

// Grid returns the hosted grid
func (m Model) Grid() *grid.Grid {
	return m.grid
}

// Keypad returns the keypad backing the grid
func (m Model) Keypad() *Keypad {
	return m.keypad
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return nil
}

// gridBounds returns the space left for the grid below the header
func (m Model) gridBounds() (width, height int) {
	return m.width, max(m.height-headerHeight-footerHeight, 0)
}
