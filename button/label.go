package button

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// Label is a button that shows a line of text centered in its block.
type Label struct {
	Text  string
	Style lipgloss.Style

	tap     Signal
	presses int
}

// NewLabel creates a label button drawn with style.
func NewLabel(text string, style lipgloss.Style) *Label {
	return &Label{Text: text, Style: style}
}

// View renders the label into a width x height block. Text that does not fit
// is truncated with an ellipsis.
func (l *Label) View(width, height int) string {
	st := l.Style
	innerW := width - st.GetHorizontalBorderSize() - st.GetHorizontalMargins()
	innerH := height - st.GetVerticalBorderSize() - st.GetVerticalMargins()
	if innerW <= 0 || innerH <= 0 {
		return ""
	}

	textW := innerW - st.GetHorizontalPadding()
	text := l.Text
	if textW <= 0 {
		text = ""
	} else if runewidth.StringWidth(text) > textW {
		text = runewidth.Truncate(text, textW, "…")
	}

	return st.
		Width(innerW).
		Height(innerH).
		MaxHeight(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(text)
}

// OnTap registers fn to run on every press.
func (l *Label) OnTap(fn func()) (remove func()) {
	return l.tap.Connect(fn)
}

// Press records a press and notifies the tap handlers.
func (l *Label) Press() {
	l.presses++
	l.tap.Emit()
}

// Presses returns how many times the label was pressed.
func (l *Label) Presses() int {
	return l.presses
}

// Listeners returns the number of registered tap handlers.
func (l *Label) Listeners() int {
	return l.tap.Len()
}
