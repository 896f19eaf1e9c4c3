package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/young1lin/keygrid/button"
	"github.com/young1lin/keygrid/grid"
	"github.com/young1lin/keygrid/internal/config"
)

// Keys with an editing meaning; everything else is appended to the entry
const (
	keyBackspace = "⌫"
	keyClear     = "clear"
)

// Keypad supplies the grid's keys from a configuration and collects what
// the user taps. It is both the grid's content provider and its observer.
type Keypad struct {
	rows      [][]string
	columns   grid.Columns
	style     lipgloss.Style
	minHeight int

	buttons map[grid.Position]*button.Label
	entry   []string
	last    string
	taps    int
}

// NewKeypad creates a keypad for cfg
func NewKeypad(cfg *config.Config) *Keypad {
	k := &Keypad{}
	k.SetConfig(cfg)
	return k
}

// SetConfig replaces the layout and style. Buttons are rebuilt on the next
// bind; the entered text is kept.
func (k *Keypad) SetConfig(cfg *config.Config) {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	k.rows = cfg.Rows
	k.columns = cfg.Columns()
	k.style = KeyStyle(cfg.Style)
	k.minHeight = cfg.MinCellHeight
	k.buttons = make(map[grid.Position]*button.Label)
}

// RowCount implements grid.ContentProvider
func (k *Keypad) RowCount() int {
	return k.columns.RowCount()
}

// ColumnCount implements grid.ContentProvider
func (k *Keypad) ColumnCount(row int) int {
	return k.columns.ColumnCount(row)
}

// ButtonFor implements grid.ContentProvider. Each position keeps its label
// across rebinds so press counts survive scrolling.
func (k *Keypad) ButtonFor(pos grid.Position) grid.Button {
	if b, ok := k.buttons[pos]; ok {
		return b
	}
	b := button.NewLabel(k.rows[pos.Row][pos.Column], k.style)
	k.buttons[pos] = b
	return b
}

// SizeFor implements grid.LayoutObserver. Cells keep the equal-share size
// unless that would make them shorter than the configured minimum.
func (k *Keypad) SizeFor(pos grid.Position, defaultSize grid.Size) grid.Size {
	if defaultSize.Height < float64(k.minHeight) {
		defaultSize.Height = float64(k.minHeight)
	}
	return defaultSize
}

// ButtonTapped implements grid.LayoutObserver
func (k *Keypad) ButtonTapped(pos grid.Position) {
	key := k.rows[pos.Row][pos.Column]
	k.taps++
	k.last = key

	switch key {
	case keyBackspace:
		if len(k.entry) > 0 {
			k.entry = k.entry[:len(k.entry)-1]
		}
	case keyClear:
		k.entry = nil
	default:
		k.entry = append(k.entry, key)
	}
}

// Entry returns the text entered so far
func (k *Keypad) Entry() string {
	return strings.Join(k.entry, "")
}

// Last returns the most recently tapped key
func (k *Keypad) Last() string {
	return k.last
}

// Taps returns how many taps the keypad has received
func (k *Keypad) Taps() int {
	return k.taps
}

// Clear empties the entry
func (k *Keypad) Clear() {
	k.entry = nil
}

// KeyStyle builds the lipgloss style for keys from the style configuration
func KeyStyle(sc config.StyleConfig) lipgloss.Style {
	st := lipgloss.NewStyle().Bold(true)

	if sc.Foreground != "" {
		st = st.Foreground(lipgloss.Color(sc.Foreground))
	}
	if sc.Background != "" {
		st = st.Background(lipgloss.Color(sc.Background))
	}

	var border lipgloss.Border
	switch sc.Border {
	case "none":
		return st
	case "normal":
		border = lipgloss.NormalBorder()
	case "thick":
		border = lipgloss.ThickBorder()
	case "double":
		border = lipgloss.DoubleBorder()
	case "hidden":
		border = lipgloss.HiddenBorder()
	default:
		border = lipgloss.RoundedBorder()
	}
	st = st.Border(border)
	if sc.Accent != "" {
		st = st.BorderForeground(lipgloss.Color(sc.Accent))
	}
	return st
}
