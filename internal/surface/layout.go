package surface

import "math"

// placed is an item frame produced by a layout pass, in content coordinates.
type placed struct {
	path  IndexPath
	frame Rect
}

// layout queries the shape and sizes, culls against the viewport, recycles
// cells that left it and binds cells for items that entered it. Shape queries
// for the pass all happen before the first bind.
func (v *View) layout() {
	v.dirty = false
	v.passes++

	frames := v.computeFrames()
	v.offset = clamp(v.offset, 0, max(0, v.contentHeight-v.height))

	wanted := make(map[IndexPath]Rect, len(frames))
	for _, p := range frames {
		if v.intersectsViewport(p.frame) {
			wanted[p.path] = p.frame
		}
	}

	if v.reload {
		v.reload = false
		for path := range v.visible {
			v.recycle(path)
		}
	}
	for path := range v.visible {
		if _, ok := wanted[path]; !ok {
			v.recycle(path)
		}
	}

	for _, p := range frames {
		frame, ok := wanted[p.path]
		if !ok {
			continue
		}
		if r, ok := v.visible[p.path]; ok {
			r.frame = frame
			continue
		}
		if v.dataSource == nil {
			continue
		}
		c := v.dataSource.CellForItem(v, p.path)
		if c == nil {
			continue
		}
		v.visible[p.path] = &realized{cell: c, frame: frame}
		v.byCell[c] = p.path
	}
}

// computeFrames lays sections out as bands stacked top to bottom. Items in a
// band are placed left to right; fractional extents accumulate before
// rounding so the bands tile the bounds without drift.
func (v *View) computeFrames() []placed {
	v.contentHeight = 0
	if v.dataSource == nil {
		return nil
	}

	var frames []placed
	sections := v.dataSource.NumberOfSections(v)
	y := 0.0
	for s := 0; s < sections; s++ {
		items := v.dataSource.NumberOfItems(v, s)
		top := int(math.Round(y))
		x := 0.0
		band := 0.0
		for i := 0; i < items; i++ {
			path := IndexPath{Section: s, Item: i}
			size := v.sizeFor(path)

			left := int(math.Round(x))
			x += size.Width
			right := int(math.Round(x))
			bottom := int(math.Round(y + size.Height))

			frames = append(frames, placed{
				path:  path,
				frame: Rect{X: left, Y: top, Width: right - left, Height: bottom - top},
			})
			band = math.Max(band, size.Height)
		}
		y += band
	}
	v.contentHeight = int(math.Round(y))
	return frames
}

func (v *View) sizeFor(path IndexPath) Size {
	if v.delegate == nil {
		return Size{}
	}
	s := v.delegate.SizeForItem(v, path)
	if math.IsNaN(s.Width) || s.Width < 0 {
		s.Width = 0
	}
	if math.IsNaN(s.Height) || s.Height < 0 {
		s.Height = 0
	}
	return s
}

func (v *View) intersectsViewport(r Rect) bool {
	if r.Empty() {
		return false
	}
	return r.Y < v.offset+v.height && r.Y+r.Height > v.offset && r.X < v.width
}

// recycle returns the cell at path to its pool.
func (v *View) recycle(path IndexPath) {
	r, ok := v.visible[path]
	if !ok {
		return
	}
	delete(v.visible, path)
	delete(v.byCell, r.cell)

	reuseID, ok := v.reuseIDs[r.cell]
	if !ok {
		// Not dequeued from this view; nothing to return it to.
		r.cell.PrepareForReuse()
		return
	}
	v.pool.enqueue(reuseID, r.cell)
}
