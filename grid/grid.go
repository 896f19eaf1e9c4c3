// Package grid implements a jagged grid of caller-supplied buttons on top of
// a virtualized, cell-pooling surface.
//
// The grid pulls its shape and buttons from a ContentProvider and pushes taps
// to a LayoutObserver, which may also override cell sizes. Both collaborators
// are optional. All methods must be called from the UI goroutine.
package grid

import (
	"fmt"
	"log/slog"

	"github.com/young1lin/keygrid/internal/surface"
)

// ReuseID is the reuse identifier of the grid's button cells.
const ReuseID = "keygrid.button-cell"

// PoolContractError reports that the surface handed out a container that
// cannot host a button. It is raised as a panic: it means the grid and its
// surface are wired incorrectly.
type PoolContractError struct {
	ReuseID string
	Err     error
}

func (e *PoolContractError) Error() string {
	return fmt.Sprintf("grid: cell pool for %q: %v", e.ReuseID, e.Err)
}

func (e *PoolContractError) Unwrap() error {
	return e.Err
}

// Grid lays out buttons in rows of varying length.
type Grid struct {
	view       *surface.View
	dataSource func() ContentProvider
	delegate   func() LayoutObserver
	logger     *slog.Logger
}

// Option configures a Grid.
type Option func(*Grid)

// WithLogger sets the logger used for debug output.
func WithLogger(logger *slog.Logger) Option {
	return func(g *Grid) {
		if logger != nil {
			g.logger = logger
		}
	}
}

// New creates an empty grid that fills a width x height surface.
func New(width, height int, opts ...Option) *Grid {
	g := &Grid{
		view:   surface.New(width, height),
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(g)
	}

	g.view.Register(ReuseID, func() surface.Cell { return newButtonCell() })
	a := adapter{g}
	g.view.SetDataSource(a)
	g.view.SetDelegate(a)
	return g
}

// SetDataSource sets the content provider and reloads. The grid keeps p
// reachable until it is replaced; use WeakDataSource to avoid that. A nil p
// empties the grid.
func (g *Grid) SetDataSource(p ContentProvider) {
	if p == nil {
		g.dataSource = nil
	} else {
		g.dataSource = func() ContentProvider { return p }
	}
	g.ReloadData()
}

// SetDelegate sets the layout observer and invalidates layout. A nil o
// restores default sizing and drops taps.
func (g *Grid) SetDelegate(o LayoutObserver) {
	if o == nil {
		g.delegate = nil
	} else {
		g.delegate = func() LayoutObserver { return o }
	}
	g.view.InvalidateLayout()
}

func (g *Grid) provider() ContentProvider {
	if g.dataSource == nil {
		return nil
	}
	return g.dataSource()
}

func (g *Grid) observer() LayoutObserver {
	if g.delegate == nil {
		return nil
	}
	return g.delegate()
}

// RowCount returns the provider's row count, or 0 without a provider.
func (g *Grid) RowCount() int {
	if p := g.provider(); p != nil {
		return max(p.RowCount(), 0)
	}
	return 0
}

// ColumnCount returns the provider's column count for row, or 0 without a
// provider.
func (g *Grid) ColumnCount(row int) int {
	if p := g.provider(); p != nil {
		return max(p.ColumnCount(row), 0)
	}
	return 0
}

// Bounds returns the surface size.
func (g *Grid) Bounds() (width, height int) {
	return g.view.Bounds()
}

// SetBounds resizes the grid. Any change forces a full layout pass.
func (g *Grid) SetBounds(width, height int) {
	g.view.SetBounds(width, height)
	g.logger.Debug("grid bounds changed", "width", width, "height", height)
}

// ReloadData discards every bound cell; the next layout pass re-queries the
// shape and pulls a fresh button for each visible position. Call it after
// the provider's shape or content changes.
func (g *Grid) ReloadData() {
	g.view.ReloadData()
}

// InvalidateLayout schedules a layout pass that keeps current bindings.
func (g *Grid) InvalidateLayout() {
	g.view.InvalidateLayout()
}

// LayoutIfNeeded runs a pending layout pass now.
func (g *Grid) LayoutIfNeeded() {
	g.view.LayoutIfNeeded()
}

// ScrollBy moves the viewport by dy rows of terminal cells.
func (g *Grid) ScrollBy(dy int) {
	g.view.ScrollBy(dy)
}

// View renders the realized cells into a block of the grid's bounds.
func (g *Grid) View() string {
	return g.view.Render()
}

// DefaultSize returns the equal-share size of the cell at pos: the width
// split across the row's columns and the height split across all rows. ok
// is false when the row or the grid is empty, or pos.Row is outside the
// grid.
func (g *Grid) DefaultSize(pos Position) (size Size, ok bool) {
	p := g.provider()
	if p == nil {
		return Size{}, false
	}
	rows := p.RowCount()
	if pos.Row < 0 || pos.Row >= rows {
		return Size{}, false
	}
	cols := p.ColumnCount(pos.Row)
	if cols <= 0 {
		return Size{}, false
	}
	w, h := g.view.Bounds()
	return Size{
		Width:  float64(w) / float64(cols),
		Height: float64(h) / float64(rows),
	}, true
}

// SizeFor returns the size the cell at pos is laid out with: the default
// size, as adjusted by the layout observer.
func (g *Grid) SizeFor(pos Position) Size {
	def, ok := g.DefaultSize(pos)
	if !ok {
		return Size{}
	}
	if o := g.observer(); o != nil {
		return o.SizeFor(pos, def)
	}
	return def
}

// IndexForPosition returns the flat index of pos in the provider's shape.
// pos must lie inside that shape.
func (g *Grid) IndexForPosition(pos Position) int {
	var shape Shape = Columns(nil)
	if p := g.provider(); p != nil {
		shape = p
	}
	return FlatIndex(pos, shape)
}

// ButtonForPosition returns the button bound at pos if its cell is
// realized. Cells outside the viewport have no button.
func (g *Grid) ButtonForPosition(pos Position) (Button, bool) {
	c, ok := g.view.CellForItem(pathFromPosition(pos))
	if !ok {
		return nil, false
	}
	h, ok := c.(buttonHost)
	if !ok || h.hosted() == nil {
		return nil, false
	}
	return h.hosted(), true
}

// VisiblePositions returns the positions of realized cells in row-major
// order.
func (g *Grid) VisiblePositions() []Position {
	paths := g.view.IndexPathsForVisibleItems()
	out := make([]Position, len(paths))
	for i, p := range paths {
		out[i] = positionFromPath(p)
	}
	return out
}

// PressAt presses the button under surface point (x, y). It reports whether
// a realized cell was hit.
func (g *Grid) PressAt(x, y int) bool {
	c, path, ok := g.view.HitTest(x, y)
	if !ok {
		return false
	}
	h, ok := c.(buttonHost)
	if !ok || h.hosted() == nil {
		return false
	}
	g.logger.Debug("pressing button", "row", path.Section, "column", path.Item)
	h.hosted().Press()
	return true
}

// cellTapped resolves a tapped cell to its current position and notifies the
// observer.
func (g *Grid) cellTapped(c *buttonCell) {
	path, ok := g.view.IndexPathForCell(c)
	if !ok {
		g.logger.Debug("tap from unrealized cell dropped")
		return
	}
	pos := positionFromPath(path)
	o := g.observer()
	if o == nil {
		g.logger.Debug("tap dropped, no observer", "row", pos.Row, "column", pos.Column)
		return
	}
	o.ButtonTapped(pos)
}

// bind fills a pooled cell with the provider's button for path.
func (g *Grid) bind(v *surface.View, path surface.IndexPath) surface.Cell {
	c, err := v.DequeueReusableCell(ReuseID, path)
	if err != nil {
		panic(&PoolContractError{ReuseID: ReuseID, Err: err})
	}
	h, ok := c.(buttonHost)
	if !ok {
		panic(&PoolContractError{
			ReuseID: ReuseID,
			Err:     fmt.Errorf("container %T cannot host a button", c),
		})
	}

	pos := positionFromPath(path)
	var b Button = placeholder{}
	if p := g.provider(); p != nil {
		if pb := p.ButtonFor(pos); pb != nil {
			b = pb
		}
	}
	h.host(b)
	h.setTarget(g)
	g.logger.Debug("bound cell", "row", pos.Row, "column", pos.Column)
	return h
}

// adapter answers the surface's queries on behalf of the grid so those
// methods stay off the grid's public API.
type adapter struct {
	g *Grid
}

func (a adapter) NumberOfSections(*surface.View) int {
	return a.g.RowCount()
}

func (a adapter) NumberOfItems(_ *surface.View, section int) int {
	return a.g.ColumnCount(section)
}

func (a adapter) CellForItem(v *surface.View, path surface.IndexPath) surface.Cell {
	return a.g.bind(v, path)
}

func (a adapter) SizeForItem(_ *surface.View, path surface.IndexPath) surface.Size {
	s := a.g.SizeFor(positionFromPath(path))
	return surface.Size{Width: s.Width, Height: s.Height}
}
