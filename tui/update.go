package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Update handles incoming messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.MouseMsg:
		return m.handleMouseMsg(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.grid.SetBounds(m.gridBounds())
		m.ready = true
		return m, nil

	case WatcherStartedMsg:
		m.watching = true
		m.configPath = msg.Path
		return m, nil

	case ConfigReloadedMsg:
		m.keypad.SetConfig(msg.Config)
		// Shape may have changed; bindings are stale
		m.grid.ReloadData()
		m.reloads++
		m.err = nil
		return m, nil

	case ConfigErrorMsg:
		m.err = msg.Err
		return m, nil
	}

	return m, nil
}

// handleKeyMsg handles keyboard input
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		m.quitting = true
		return m, tea.Quit
	case "c":
		m.keypad.Clear()
	case "up", "k":
		m.grid.ScrollBy(-1)
	case "down", "j":
		m.grid.ScrollBy(1)
	case "pgup":
		_, h := m.gridBounds()
		m.grid.ScrollBy(-h)
	case "pgdown":
		_, h := m.gridBounds()
		m.grid.ScrollBy(h)
	}

	return m, nil
}

// handleMouseMsg turns clicks into button presses and wheel motion into
// scrolling
func (m Model) handleMouseMsg(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		m.grid.ScrollBy(-1)
	case tea.MouseButtonWheelDown:
		m.grid.ScrollBy(1)
	case tea.MouseButtonLeft:
		if msg.Action == tea.MouseActionPress {
			m.grid.PressAt(msg.X, msg.Y-headerHeight)
		}
	}

	return m, nil
}
