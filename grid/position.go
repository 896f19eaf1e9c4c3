package grid

import "github.com/young1lin/keygrid/internal/surface"

// Position identifies a cell by row and column. It is recomputed on every
// query and never used as the identity of a pooled cell.
type Position struct {
	Row    int
	Column int
}

// Size is a cell extent in terminal cells.
type Size struct {
	Width  float64
	Height float64
}

// Shape describes a jagged grid: a row count and a column count per row.
type Shape interface {
	RowCount() int
	ColumnCount(row int) int
}

// Columns is a fixed Shape given as the column count of each row.
type Columns []int

// RowCount implements Shape.
func (c Columns) RowCount() int { return len(c) }

// ColumnCount implements Shape. Rows outside c have no columns.
func (c Columns) ColumnCount(row int) int {
	if row < 0 || row >= len(c) {
		return 0
	}
	return c[row]
}

// PositionFromAddress maps a substrate address to a Position: sections are
// rows and items are columns. Bounds are not checked.
func PositionFromAddress(section, item int) Position {
	return Position{Row: section, Column: item}
}

// AddressFromPosition is the inverse of PositionFromAddress.
func AddressFromPosition(p Position) (section, item int) {
	return p.Row, p.Column
}

// FlatIndex returns the linear index of p: the number of cells in all rows
// before p.Row plus p.Column.
//
// p must lie inside s. A column beyond its row's count, or a row beyond the
// row count, yields an unspecified index.
func FlatIndex(p Position, s Shape) int {
	index := p.Column
	for r := 0; r < p.Row; r++ {
		index += s.ColumnCount(r)
	}
	return index
}

func positionFromPath(path surface.IndexPath) Position {
	return PositionFromAddress(path.Section, path.Item)
}

func pathFromPosition(p Position) surface.IndexPath {
	section, item := AddressFromPosition(p)
	return surface.IndexPath{Section: section, Item: item}
}
