package surface

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Render lays out if needed and draws the realized cells into a block of
// exactly the viewport size. A cell is never drawn taller than the viewport:
// one that is cut by an edge is rendered at most viewport-high and cropped
// to its visible rows.
func (v *View) Render() string {
	v.LayoutIfNeeded()
	if v.width == 0 || v.height == 0 {
		return ""
	}

	rows := make([]strings.Builder, v.height)
	cursors := make([]int, v.height)

	// Row-major order keeps items left to right within each screen row.
	for _, path := range v.IndexPathsForVisibleItems() {
		r := v.visible[path]
		f := r.frame
		if f.X >= v.width {
			continue
		}
		top := max(f.Y, v.offset)
		bottom := min(f.Y+f.Height, v.offset+v.height)
		n := bottom - top
		if n <= 0 {
			continue
		}

		w := min(f.Width, v.width-f.X)
		h := min(f.Height, v.height)
		block := Fit(r.cell.View(w, h), w, h)

		// Cut at the top: show the block's last rows
		start := 0
		if f.Y < v.offset {
			start = h - n
		}
		for i := 0; i < n; i++ {
			row := top - v.offset + i
			if f.X < cursors[row] {
				continue
			}
			rows[row].WriteString(strings.Repeat(" ", f.X-cursors[row]))
			rows[row].WriteString(block[start+i])
			cursors[row] = f.X + w
		}
	}

	lines := make([]string, v.height)
	for i := range rows {
		lines[i] = rows[i].String() + strings.Repeat(" ", v.width-cursors[i])
	}
	return strings.Join(lines, "\n")
}

// Fit crops or pads s to exactly width x height terminal cells, keeping ANSI
// sequences intact.
func Fit(s string, width, height int) []string {
	if width <= 0 || height <= 0 {
		return nil
	}
	src := strings.Split(s, "\n")
	out := make([]string, height)
	for i := range out {
		line := ""
		if i < len(src) {
			line = src[i]
		}
		if ansi.StringWidth(line) > width {
			line = ansi.Truncate(line, width, "")
		}
		if pad := width - ansi.StringWidth(line); pad > 0 {
			line += strings.Repeat(" ", pad)
		}
		out[i] = line
	}
	return out
}
