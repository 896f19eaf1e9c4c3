package surface

import "sort"

// realized is an item that currently has a bound cell.
type realized struct {
	cell  Cell
	frame Rect
}

// View is a virtualized collection of sectioned items. It is not safe for
// concurrent use; all calls are expected on the UI goroutine.
type View struct {
	width  int
	height int
	offset int

	dataSource DataSource
	delegate   Delegate

	pool     *pool
	reuseIDs map[Cell]string

	visible map[IndexPath]*realized
	byCell  map[Cell]IndexPath

	contentHeight int
	dirty         bool
	reload        bool
	passes        int
}

// New creates a view with the given bounds.
func New(width, height int) *View {
	return &View{
		width:    max(width, 0),
		height:   max(height, 0),
		pool:     newPool(),
		reuseIDs: make(map[Cell]string),
		visible:  make(map[IndexPath]*realized),
		byCell:   make(map[Cell]IndexPath),
		dirty:    true,
	}
}

// SetDataSource sets the data source and schedules a reload.
func (v *View) SetDataSource(ds DataSource) {
	v.dataSource = ds
	v.ReloadData()
}

// SetDelegate sets the sizing delegate and invalidates layout.
func (v *View) SetDelegate(d Delegate) {
	v.delegate = d
	v.InvalidateLayout()
}

// Register binds a reuse identifier to a cell factory. Registering again
// replaces the factory and drops pooled cells made by the old one.
func (v *View) Register(reuseID string, factory func() Cell) {
	v.pool.register(reuseID, factory)
}

// DequeueReusableCell returns a recycled cell for reuseID, or a new one from
// the registered factory.
func (v *View) DequeueReusableCell(reuseID string, path IndexPath) (Cell, error) {
	c, err := v.pool.dequeue(reuseID)
	if err != nil {
		return nil, err
	}
	v.reuseIDs[c] = reuseID
	return c, nil
}

// CreatedCells reports how many cells the factory for reuseID has produced.
func (v *View) CreatedCells(reuseID string) int {
	return v.pool.created[reuseID]
}

// Bounds returns the viewport size.
func (v *View) Bounds() (width, height int) {
	return v.width, v.height
}

// SetBounds resizes the viewport. A change of either dimension invalidates
// the whole layout.
func (v *View) SetBounds(width, height int) {
	width, height = max(width, 0), max(height, 0)
	if width == v.width && height == v.height {
		return
	}
	v.width, v.height = width, height
	v.InvalidateLayout()
}

// InvalidateLayout schedules a layout pass. Bound cells are kept for items
// that stay visible.
func (v *View) InvalidateLayout() {
	v.dirty = true
}

// ReloadData schedules a layout pass that rebinds every visible item.
func (v *View) ReloadData() {
	v.reload = true
	v.dirty = true
}

// LayoutPasses reports how many layout passes have run.
func (v *View) LayoutPasses() int {
	return v.passes
}

// LayoutIfNeeded runs a pending layout pass.
func (v *View) LayoutIfNeeded() {
	if v.dirty {
		v.layout()
	}
}

// ScrollOffset returns the first visible content row.
func (v *View) ScrollOffset() int {
	return v.offset
}

// ScrollBy moves the viewport by dy content rows, clamped to the content.
func (v *View) ScrollBy(dy int) {
	v.LayoutIfNeeded()
	next := clamp(v.offset+dy, 0, max(0, v.contentHeight-v.height))
	if next != v.offset {
		v.offset = next
		v.InvalidateLayout()
	}
}

// ContentHeight returns the laid out height of all sections.
func (v *View) ContentHeight() int {
	v.LayoutIfNeeded()
	return v.contentHeight
}

// CellForItem returns the bound cell at path if it is realized.
func (v *View) CellForItem(path IndexPath) (Cell, bool) {
	v.LayoutIfNeeded()
	r, ok := v.visible[path]
	if !ok {
		return nil, false
	}
	return r.cell, true
}

// IndexPathForCell returns the path a realized cell is currently bound to.
// It does not trigger layout: a tap must resolve against the cells the user
// actually sees.
func (v *View) IndexPathForCell(c Cell) (IndexPath, bool) {
	if c == nil {
		return IndexPath{}, false
	}
	path, ok := v.byCell[c]
	return path, ok
}

// FrameForItem returns the frame of a realized item in viewport coordinates.
func (v *View) FrameForItem(path IndexPath) (Rect, bool) {
	v.LayoutIfNeeded()
	r, ok := v.visible[path]
	if !ok {
		return Rect{}, false
	}
	f := r.frame
	f.Y -= v.offset
	return f, true
}

// IndexPathsForVisibleItems returns the realized paths in section, item order.
func (v *View) IndexPathsForVisibleItems() []IndexPath {
	v.LayoutIfNeeded()
	paths := make([]IndexPath, 0, len(v.visible))
	for p := range v.visible {
		paths = append(paths, p)
	}
	sort.Slice(paths, func(i, j int) bool {
		if paths[i].Section != paths[j].Section {
			return paths[i].Section < paths[j].Section
		}
		return paths[i].Item < paths[j].Item
	})
	return paths
}

// HitTest returns the realized cell under viewport point (x, y).
func (v *View) HitTest(x, y int) (Cell, IndexPath, bool) {
	v.LayoutIfNeeded()
	if x < 0 || y < 0 || x >= v.width || y >= v.height {
		return nil, IndexPath{}, false
	}
	cy := y + v.offset
	for path, r := range v.visible {
		if r.frame.Contains(x, cy) {
			return r.cell, path, true
		}
	}
	return nil, IndexPath{}, false
}

func clamp(n, lo, hi int) int {
	if n < lo {
		return lo
	}
	if n > hi {
		return hi
	}
	return n
}
