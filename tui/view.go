package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// View renders the UI
func (m Model) View() string {
	if m.quitting {
		return "Goodbye!\n"
	}

	// Wait for the first size before laying out the grid
	if !m.ready {
		return "Loading...\n"
	}

	sections := []string{
		m.renderHeader(),
		m.renderEntry(),
	}
	if _, h := m.gridBounds(); h > 0 {
		sections = append(sections, m.grid.View())
	}
	sections = append(sections, m.renderFooter())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderHeader renders the title line
func (m Model) renderHeader() string {
	source := "built-in layout"
	if m.configPath != "" {
		source = m.configPath
		if m.watching {
			source += " (watching)"
		}
	}

	title := m.styles.Title.Render("keygrid")
	room := m.width - lipgloss.Width(title) - 1
	if room <= 0 {
		return title
	}
	return title + " " + m.styles.Muted.Render(runewidth.Truncate(source, room, "…"))
}

// renderEntry renders the entered text
func (m Model) renderEntry() string {
	entry := m.keypad.Entry()
	if entry == "" {
		return m.styles.Muted.Render("tap a key")
	}
	if m.width > 2 && runewidth.StringWidth(entry) > m.width-2 {
		// Keep the most recent input in view
		entry = "…" + runewidth.TruncateLeft(entry, runewidth.StringWidth(entry)-m.width+3, "")
	}
	return m.styles.Entry.Render("> " + entry)
}

// renderFooter renders the help line, or the last reload error
func (m Model) renderFooter() string {
	if m.err != nil {
		return m.styles.Error.Render(m.fit(fmt.Sprintf("Error: %v", m.err)))
	}
	help := fmt.Sprintf("taps %d · click keys · c clear · ↑/↓ scroll · q quit", m.keypad.Taps())
	return m.styles.Footer.Render(m.fit(help))
}

// fit truncates a plain line to the terminal width
func (m Model) fit(s string) string {
	if m.width <= 0 {
		return s
	}
	return runewidth.Truncate(s, m.width, "…")
}
