package tui

import "math"

// Viewport maps terminal cells onto the fixed world rectangle.
type Viewport struct {
	Cols, Rows     int
	WorldW, WorldH float64
}

func (v Viewport) cellSize() (float64, float64) {
	cols, rows := v.Cols, v.Rows
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}
	return v.WorldW / float64(cols), v.WorldH / float64(rows)
}

// ToWorld returns the world point at the centre of a cell.
func (v Viewport) ToWorld(col, row int) (float64, float64) {
	cw, ch := v.cellSize()
	return (float64(col) + 0.5) * cw, (float64(row) + 0.5) * ch
}

// ToCell returns the cell containing a world point, clamped to the screen.
func (v Viewport) ToCell(x, y float64) (int, int) {
	cw, ch := v.cellSize()
	col := clamp(int(math.Floor(x/cw)), 0, v.Cols-1)
	row := clamp(int(math.Floor(y/ch)), 0, v.Rows-1)
	return col, row
}

// DiskCells lists the cells whose centres lie inside a world circle. The
// cell under the centre is always included so tiny enemies stay visible.
func (v Viewport) DiskCells(x, y, radius float64) [][2]int {
	cw, ch := v.cellSize()
	ccol, crow := v.ToCell(x, y)
	cells := [][2]int{{ccol, crow}}

	spanC := int(math.Ceil(radius/cw)) + 1
	spanR := int(math.Ceil(radius/ch)) + 1
	for row := crow - spanR; row <= crow+spanR; row++ {
		if row < 0 || row >= v.Rows {
			continue
		}
		for col := ccol - spanC; col <= ccol+spanC; col++ {
			if col < 0 || col >= v.Cols || (col == ccol && row == crow) {
				continue
			}
			wx, wy := v.ToWorld(col, row)
			if math.Hypot(wx-x, wy-y) <= radius {
				cells = append(cells, [2]int{col, row})
			}
		}
	}
	return cells
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
