package grid

// Button is the interactive element hosted by a grid cell. The grid never
// interprets a button; it only places it and listens for its taps.
type Button interface {
	// View renders the button into a width x height block.
	View(width, height int) string

	// OnTap registers fn to run on every tap and returns a function that
	// removes the registration.
	OnTap(fn func()) (remove func())

	// Press delivers a user tap to the button.
	Press()
}

// ContentProvider supplies the grid's shape and the button for each cell.
//
// ColumnCount is only called for rows below RowCount. ButtonFor is called
// once per bind, each time a cell is realized or reused at pos.
type ContentProvider interface {
	RowCount() int
	ColumnCount(row int) int
	ButtonFor(pos Position) Button
}

// LayoutObserver overrides cell sizes and is told about taps.
type LayoutObserver interface {
	// SizeFor is called once per layout pass for every cell in the shape,
	// including cells outside the viewport. Returning defaultSize unchanged
	// is the common case.
	SizeFor(pos Position, defaultSize Size) Size

	// ButtonTapped is called once per tap, after the tapped cell has been
	// resolved back to its current position.
	ButtonTapped(pos Position)
}

// ObserverFuncs adapts plain functions to LayoutObserver. A nil Size keeps
// the default size; a nil Tapped drops taps.
type ObserverFuncs struct {
	Size   func(pos Position, defaultSize Size) Size
	Tapped func(pos Position)
}

// SizeFor implements LayoutObserver.
func (o ObserverFuncs) SizeFor(pos Position, defaultSize Size) Size {
	if o.Size == nil {
		return defaultSize
	}
	return o.Size(pos, defaultSize)
}

// ButtonTapped implements LayoutObserver.
func (o ObserverFuncs) ButtonTapped(pos Position) {
	if o.Tapped != nil {
		o.Tapped(pos)
	}
}

// placeholder stands in for a button when no provider is reachable at bind
// time. It renders blank and never taps.
type placeholder struct{}

func (placeholder) View(width, height int) string { return "" }
func (placeholder) OnTap(func()) func()           { return func() {} }
func (placeholder) Press()                        {}
