package grid

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/young1lin/keygrid/internal/surface"
)

// cellInset is the margin kept between a cell's edge and its button.
const cellInset = 1

// tapTarget receives taps forwarded by a cell.
type tapTarget interface {
	cellTapped(c *buttonCell)
}

// buttonHost is the capability a pooled container must have to serve as a
// grid cell.
type buttonHost interface {
	surface.Cell
	host(b Button)
	hosted() Button
	setTarget(t tapTarget)
}

// buttonCell hosts one button at a time. Its forwarder is created once with
// the cell; binding a new button only subscribes that forwarder, and the
// subscription is dropped as soon as the button is replaced.
type buttonCell struct {
	button      Button
	unsubscribe func()
	generation  int
	forward     func()
	target      tapTarget
}

var _ buttonHost = (*buttonCell)(nil)

func newButtonCell() *buttonCell {
	c := &buttonCell{}
	c.forward = func() {
		if c.target != nil {
			c.target.cellTapped(c)
		}
	}
	return c
}

func (c *buttonCell) host(b Button) {
	c.detach()
	if b == nil {
		return
	}
	c.button = b
	gen := c.generation
	remove := b.OnTap(func() {
		// A button that ignores removal still cannot reach a rebound cell.
		if c.generation == gen {
			c.forward()
		}
	})
	if remove == nil {
		remove = func() {}
	}
	c.unsubscribe = remove
}

func (c *buttonCell) detach() {
	if c.unsubscribe != nil {
		c.unsubscribe()
		c.unsubscribe = nil
	}
	c.button = nil
	c.generation++
}

func (c *buttonCell) hosted() Button {
	return c.button
}

func (c *buttonCell) setTarget(t tapTarget) {
	c.target = t
}

// PrepareForReuse implements surface.Cell.
func (c *buttonCell) PrepareForReuse() {
	c.detach()
}

// View implements surface.Cell. The button fills the cell less the inset on
// every side.
func (c *buttonCell) View(width, height int) string {
	innerW, innerH := width-2*cellInset, height-2*cellInset
	if c.button == nil || innerW <= 0 || innerH <= 0 {
		return ""
	}
	inner := surface.Fit(c.button.View(innerW, innerH), innerW, innerH)
	return lipgloss.NewStyle().
		Padding(cellInset).
		Render(lipgloss.JoinVertical(lipgloss.Left, inner...))
}
