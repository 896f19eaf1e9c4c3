// Package surface provides a virtualized, cell-pooling rendering substrate for
// terminal widgets. It lays out sections of items as horizontal bands, realizes
// only the items that intersect the viewport, and recycles the containers of
// items that scroll out of view.
package surface

// IndexPath addresses an item by section and item number.
type IndexPath struct {
	Section int
	Item    int
}

// Size is an item extent in terminal cells. Fractions are resolved when
// frames are laid out.
type Size struct {
	Width  float64
	Height float64
}

// Rect is a laid out frame in content coordinates.
type Rect struct {
	X      int
	Y      int
	Width  int
	Height int
}

// Contains reports whether (x, y) falls inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// Empty reports whether r covers no cells.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Cell is a reusable container owned by the view's pool. Implementations must
// be pointer types: the view keys its bookkeeping by cell identity.
type Cell interface {
	// PrepareForReuse is called when the cell leaves the screen and returns
	// to the pool.
	PrepareForReuse()

	// View renders the cell into a width x height block.
	View(width, height int) string
}

// DataSource answers shape queries and supplies bound cells.
type DataSource interface {
	NumberOfSections(v *View) int
	NumberOfItems(v *View, section int) int
	CellForItem(v *View, path IndexPath) Cell
}

// Delegate sizes items. Without a delegate every item is zero sized and
// nothing is realized.
type Delegate interface {
	SizeForItem(v *View, path IndexPath) Size
}
