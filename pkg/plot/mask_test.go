package plot

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
)

// newTestMask returns a 40x40 mask of 10px cells.
func newTestMask() *Mask {
	return NewMask(image.Rect(0, 0, 400, 400), 40, 40)
}

func TestMaskDefaults(t *testing.T) {
	m := NewMask(image.Rect(0, 0, 100, 50), 0, -3)
	cols, rows := m.Cells()
	assert.Equal(t, DefaultMaskCells, cols)
	assert.Equal(t, DefaultMaskCells, rows)
	assert.Equal(t, image.Rect(0, 0, 100, 50), m.Bounds())
	assert.Zero(t, m.Occupied())
}

func TestMaskStampRect(t *testing.T) {
	m := newTestMask()

	m.StampRect(Rect{5, 5, 2, 2}, 1)
	assert.Equal(t, 1.0, m.Weight(0, 0))
	assert.Equal(t, 1, m.Occupied())
	assert.Equal(t, 1.0, m.Cost(Rect{0, 0, 10, 10}))
	assert.Equal(t, 1.0, m.Cost(Rect{8, 8, 4, 4}))
	assert.Zero(t, m.Cost(Rect{10, 10, 10, 10}))

	// Partial overlap still stamps whole cells.
	m.StampRect(Rect{15, 15, 10, 10}, 2)
	for _, c := range [][2]int{{1, 1}, {2, 1}, {1, 2}, {2, 2}} {
		assert.Equal(t, 2.0, m.Weight(c[0], c[1]), "cell %v", c)
	}
	assert.Equal(t, 5, m.Occupied())

	// Outside the grid nothing happens.
	m.StampRect(Rect{-50, -50, 10, 10}, 3)
	m.StampRect(Rect{500, 0, 10, 10}, 3)
	assert.Equal(t, 5, m.Occupied())
}

func TestMaskIgnoresNonPositiveWeights(t *testing.T) {
	m := newTestMask()
	m.StampRect(Rect{0, 0, 100, 100}, 0)
	m.StampRect(Rect{0, 0, 100, 100}, -1)
	m.StampLine(Point{0, 0}, Point{400, 400}, -2)
	assert.Zero(t, m.Occupied())
	assert.Zero(t, m.Cost(Rect{0, 0, 400, 400}))
}

func TestMaskResetClearsEverything(t *testing.T) {
	m := newTestMask()
	m.StampRect(Rect{0, 0, 400, 400}, 1)
	m.StampLine(Point{0, 0}, Point{400, 400}, 1)
	assert.Equal(t, 1600, m.Occupied())

	m.Reset()
	assert.Zero(t, m.Occupied())
	for _, r := range []Rect{{0, 0, 400, 400}, {123, 45, 6, 7}, {-10, -10, 1000, 1000}} {
		assert.Zero(t, m.Cost(r))
	}
}

func TestMaskStampMonotonic(t *testing.T) {
	m := newTestMask()
	regions := []Rect{
		{0, 0, 400, 400},
		{95, 95, 20, 20},
		{100, 100, 5, 5},
		{300, 300, 50, 50},
	}
	stamps := []Rect{{90, 90, 30, 30}, {100, 100, 1, 1}, {0, 0, 400, 1}, {250, 250, 100, 100}}

	for _, s := range stamps {
		before := make([]float64, len(regions))
		for i, p := range regions {
			before[i] = m.Cost(p)
		}
		stampedBefore := m.Cost(s)

		m.StampRect(s, 0.5)

		assert.Greater(t, m.Cost(s), stampedBefore, "stamped region %v", s)
		for i, p := range regions {
			after := m.Cost(p)
			assert.GreaterOrEqual(t, after, before[i], "region %v after stamping %v", p, s)
			if p.Overlap(s) > 0 {
				assert.Greater(t, after, before[i], "overlapping region %v after stamping %v", p, s)
			}
		}
	}
}

func TestMaskStampLineHorizontal(t *testing.T) {
	m := newTestMask()
	m.StampLine(Point{0, 5}, Point{400, 5}, 1)
	assert.Equal(t, 40, m.Occupied())
	for col := 0; col < 40; col++ {
		assert.Equal(t, 1.0, m.Weight(col, 0), "col %d", col)
	}
	assert.Zero(t, m.Weight(0, 1))
}

func TestMaskStampLineDiagonal(t *testing.T) {
	m := newTestMask()
	m.StampLine(Point{0, 0}, Point{400, 400}, 1)
	for i := 0; i < 40; i++ {
		// Each cell is stamped once per call.
		assert.Equal(t, 1.0, m.Weight(i, i), "cell %d", i)
	}
	assert.Zero(t, m.Weight(39, 0))
	assert.Zero(t, m.Weight(0, 39))
}

func TestMaskStampLineReversed(t *testing.T) {
	a, b := newTestMask(), newTestMask()
	a.StampLine(Point{12, 370}, Point{391, 33}, 1)
	b.StampLine(Point{391, 33}, Point{12, 370}, 1)
	assert.Equal(t, a.Cost(Rect{0, 0, 400, 400}), b.Cost(Rect{0, 0, 400, 400}))
	assert.Equal(t, a.Occupied(), b.Occupied())
	for _, m := range []*Mask{a, b} {
		assert.Equal(t, 1.0, m.Weight(1, 37))
		assert.Equal(t, 1.0, m.Weight(39, 3))
	}
}

func TestMaskStampLineReachesEndCell(t *testing.T) {
	segs := [][2]Point{
		{{12, 370}, {391, 33}},
		{{391, 33}, {12, 370}},
		{{0.3, 399.7}, {399.7, 0.3}},
		{{7, 3}, {393, 211}},
		{{250, 10}, {251, 390}},
	}
	for _, s := range segs {
		m := newTestMask()
		m.StampLine(s[0], s[1], 1)
		for _, p := range s {
			col, row := int(p.X/10), int(p.Y/10)
			assert.Equal(t, 1.0, m.Weight(col, row), "segment %v cell (%d,%d)", s, col, row)
		}
		// A 4-connected walk touches exactly |dcol|+|drow|+1 cells.
		dc := int(s[1].X/10) - int(s[0].X/10)
		dr := int(s[1].Y/10) - int(s[0].Y/10)
		assert.Equal(t, abs(dc)+abs(dr)+1, m.Occupied(), "segment %v", s)
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

func TestMaskStampLineClipped(t *testing.T) {
	m := newTestMask()
	m.StampLine(Point{-10, -10}, Point{-5, -50}, 1)
	assert.Zero(t, m.Occupied())

	m.StampLine(Point{-100, 5}, Point{45, 5}, 1)
	for col := 0; col <= 4; col++ {
		assert.Equal(t, 1.0, m.Weight(col, 0), "col %d", col)
	}
	assert.Zero(t, m.Weight(5, 0))

	// A point-like segment touches the cell containing it.
	m.Reset()
	m.StampLine(Point{155, 155}, Point{155, 155}, 1)
	assert.Equal(t, 1, m.Occupied())
	assert.Equal(t, 1.0, m.Weight(15, 15))
}

func TestMaskEmptyBounds(t *testing.T) {
	m := NewMask(image.Rectangle{}, 10, 10)
	m.StampRect(Rect{0, 0, 10, 10}, 1)
	m.StampLine(Point{0, 0}, Point{10, 10}, 1)
	assert.Zero(t, m.Occupied())
	assert.Zero(t, m.Cost(Rect{0, 0, 10, 10}))

	m.SetBounds(image.Rect(0, 0, 100, 100))
	m.StampRect(Rect{0, 0, 10, 10}, 1)
	assert.Equal(t, 1, m.Occupied())
}
