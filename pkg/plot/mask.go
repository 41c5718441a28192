// Coarse occupancy grid used to steer labels away from drawn geometry.

package plot

import (
	"image"
	"math"

	"github.com/bits-and-blooms/bitset"
)

// DefaultMaskCells is the grid resolution per axis used by a Plot.
const DefaultMaskCells = 40

// Mask is a coarse 2D grid of weights covering a pixel rectangle.
// Weights only grow between resets. A Mask is owned by a single paint
// pass and is not safe for concurrent use.
type Mask struct {
	bounds       image.Rectangle
	cols, rows   int
	cellW, cellH float64
	weights      []float64
	dirty        *bitset.BitSet // cells with non-zero weight
}

// NewMask creates a mask of cols x rows cells over bounds.
// Non-positive cell counts fall back to DefaultMaskCells.
func NewMask(bounds image.Rectangle, cols, rows int) *Mask {
	if cols <= 0 {
		cols = DefaultMaskCells
	}
	if rows <= 0 {
		rows = DefaultMaskCells
	}
	m := &Mask{cols: cols, rows: rows}
	m.SetBounds(bounds)
	return m
}

// SetBounds re-grids the mask over a new pixel rectangle, clearing it.
func (m *Mask) SetBounds(bounds image.Rectangle) {
	m.bounds = bounds.Canon()
	m.cellW = float64(m.bounds.Dx()) / float64(m.cols)
	m.cellH = float64(m.bounds.Dy()) / float64(m.rows)
	m.weights = make([]float64, m.cols*m.rows)
	m.dirty = bitset.New(uint(m.cols * m.rows))
}

// Bounds returns the covered pixel rectangle.
func (m *Mask) Bounds() image.Rectangle { return m.bounds }

// Cells returns the grid dimensions.
func (m *Mask) Cells() (cols, rows int) { return m.cols, m.rows }

// Weight returns the weight of one cell, or 0 outside the grid.
func (m *Mask) Weight(col, row int) float64 {
	if col < 0 || col >= m.cols || row < 0 || row >= m.rows {
		return 0
	}
	return m.weights[row*m.cols+col]
}

// Occupied returns the number of cells carrying weight.
func (m *Mask) Occupied() int {
	return int(m.dirty.Count())
}

// Reset zeroes every weight.
func (m *Mask) Reset() {
	for i, ok := m.dirty.NextSet(0); ok; i, ok = m.dirty.NextSet(i + 1) {
		m.weights[i] = 0
	}
	m.dirty.ClearAll()
}

// cellSpan returns the inclusive cell range overlapped by r, clipped to
// the grid. ok is false when r misses the grid entirely.
func (m *Mask) cellSpan(r Rect) (c0, r0, c1, r1 int, ok bool) {
	if m.cellW <= 0 || m.cellH <= 0 {
		return 0, 0, 0, 0, false
	}
	r = r.Normalized()
	bx, by := float64(m.bounds.Min.X), float64(m.bounds.Min.Y)

	c0 = int(math.Floor((r.X - bx) / m.cellW))
	r0 = int(math.Floor((r.Y - by) / m.cellH))
	c1 = int(math.Ceil((r.Right()-bx)/m.cellW)) - 1
	r1 = int(math.Ceil((r.Bottom()-by)/m.cellH)) - 1
	// A degenerate rect still touches the cell containing it.
	if c1 < c0 {
		c1 = c0
	}
	if r1 < r0 {
		r1 = r0
	}

	if c1 < 0 || r1 < 0 || c0 >= m.cols || r0 >= m.rows {
		return 0, 0, 0, 0, false
	}
	c0 = max(c0, 0)
	r0 = max(r0, 0)
	c1 = min(c1, m.cols-1)
	r1 = min(r1, m.rows-1)
	return c0, r0, c1, r1, true
}

func (m *Mask) add(col, row int, weight float64) {
	i := row*m.cols + col
	m.weights[i] += weight
	m.dirty.Set(uint(i))
}

// StampRect adds weight to every cell overlapping r. Partially covered
// cells receive the full weight. Non-positive weights are ignored.
func (m *Mask) StampRect(r Rect, weight float64) {
	if !(weight > 0) {
		return
	}
	c0, r0, c1, r1, ok := m.cellSpan(r)
	if !ok {
		return
	}
	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			m.add(col, row, weight)
		}
	}
}

// Cost returns the summed weight of every cell overlapping r.
func (m *Mask) Cost(r Rect) float64 {
	c0, r0, c1, r1, ok := m.cellSpan(r)
	if !ok {
		return 0
	}
	cost := 0.0
	for row := r0; row <= r1; row++ {
		base := row * m.cols
		for col := c0; col <= c1; col++ {
			cost += m.weights[base+col]
		}
	}
	return cost
}

// StampLine adds weight to every cell the segment p1-p2 passes through.
// Each cell is stamped once per call.
func (m *Mask) StampLine(p1, p2 Point, weight float64) {
	if !(weight > 0) || m.cellW <= 0 || m.cellH <= 0 {
		return
	}

	// Work in grid units: cell (c, r) spans [c, c+1) x [r, r+1).
	bx, by := float64(m.bounds.Min.X), float64(m.bounds.Min.Y)
	x0, y0 := (p1.X-bx)/m.cellW, (p1.Y-by)/m.cellH
	x1, y1 := (p2.X-bx)/m.cellW, (p2.Y-by)/m.cellH

	x0, y0, x1, y1, ok := clipSegment(x0, y0, x1, y1, float64(m.cols), float64(m.rows))
	if !ok {
		return
	}

	col := clampCell(x0, m.cols)
	row := clampCell(y0, m.rows)
	endCol := clampCell(x1, m.cols)
	endRow := clampCell(y1, m.rows)

	// Amanatides-Woo traversal.
	dx, dy := x1-x0, y1-y0
	stepC, stepR := 0, 0
	tMaxX, tMaxY := math.Inf(1), math.Inf(1)
	tDeltaX, tDeltaY := math.Inf(1), math.Inf(1)
	if dx > 0 {
		stepC = 1
		tDeltaX = 1 / dx
		tMaxX = (float64(col+1) - x0) / dx
	} else if dx < 0 {
		stepC = -1
		tDeltaX = -1 / dx
		tMaxX = (float64(col) - x0) / dx
	}
	if dy > 0 {
		stepR = 1
		tDeltaY = 1 / dy
		tMaxY = (float64(row+1) - y0) / dy
	} else if dy < 0 {
		stepR = -1
		tDeltaY = -1 / dy
		tMaxY = (float64(row) - y0) / dy
	}

	// Every step moves one axis toward the end cell and never past it,
	// so the walk ends on (endCol, endRow) whatever the rounding.
	m.add(col, row, weight)
	for col != endCol || row != endRow {
		if row == endRow || (col != endCol && tMaxX < tMaxY) {
			col += stepC
			tMaxX += tDeltaX
		} else {
			row += stepR
			tMaxY += tDeltaY
		}
		m.add(col, row, weight)
	}
}

func clampCell(v float64, n int) int {
	return min(max(int(math.Floor(v)), 0), n-1)
}

// clipSegment clips a segment to [0,w] x [0,h] (Liang-Barsky).
func clipSegment(x0, y0, x1, y1, w, h float64) (float64, float64, float64, float64, bool) {
	dx, dy := x1-x0, y1-y0
	t0, t1 := 0.0, 1.0
	edges := [4][2]float64{
		{-dx, x0},
		{dx, w - x0},
		{-dy, y0},
		{dy, h - y0},
	}
	for _, e := range edges {
		p, q := e[0], e[1]
		if p == 0 {
			if q < 0 {
				return 0, 0, 0, 0, false
			}
			continue
		}
		r := q / p
		if p < 0 {
			if r > t1 {
				return 0, 0, 0, 0, false
			}
			t0 = math.Max(t0, r)
		} else {
			if r < t0 {
				return 0, 0, 0, 0, false
			}
			t1 = math.Min(t1, r)
		}
	}
	return x0 + t0*dx, y0 + t0*dy, x0 + t1*dx, y0 + t1*dy, true
}
