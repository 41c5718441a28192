package plot

import (
	"image"
	"math"
)

// Mapper converts between data space and canvas pixel space. The
// transform is affine per axis with the vertical axis inverted, so
// larger data Y maps to smaller pixel Y. The zero Mapper is unusable;
// create one with NewMapper.
type Mapper struct {
	data Rect
	pix  image.Rectangle

	// pixel = data*scale + offset, per axis
	sx, ox float64
	sy, oy float64
}

// NewMapper returns a mapper from the data rectangle onto the pixel
// rectangle. It panics with *InvariantError if either has zero extent
// or the data rectangle is not finite.
func NewMapper(data Rect, pix image.Rectangle) Mapper {
	var m Mapper
	m.Configure(data, pix)
	return m
}

// Configure recomputes the cached transform.
func (m *Mapper) Configure(data Rect, pix image.Rectangle) {
	if pix.Dx() <= 0 || pix.Dy() <= 0 {
		invariant("Mapper.Configure", "empty pixel rect %v", pix)
	}
	if data.W == 0 || data.H == 0 {
		invariant("Mapper.Configure", "zero-extent data rect %+v", data)
	}
	if !finiteRect(data) {
		invariant("Mapper.Configure", "non-finite data rect %+v", data)
	}
	m.data = data
	m.pix = pix

	m.sx = float64(pix.Dx()) / data.W
	m.ox = float64(pix.Min.X) - data.X*m.sx

	// data.Y maps to the bottom pixel row, data.Y+data.H to the top.
	m.sy = -float64(pix.Dy()) / data.H
	m.oy = float64(pix.Max.Y) - data.Y*m.sy
}

// DataRect returns the configured data rectangle.
func (m Mapper) DataRect() Rect { return m.data }

// PixRect returns the configured pixel rectangle.
func (m Mapper) PixRect() image.Rectangle { return m.pix }

// ToPixel maps a data-space point to pixel space.
func (m Mapper) ToPixel(p Point) Point {
	return Point{p.X*m.sx + m.ox, p.Y*m.sy + m.oy}
}

// ToData maps a pixel-space point back to data space.
func (m Mapper) ToData(p Point) Point {
	return Point{(p.X - m.ox) / m.sx, (p.Y - m.oy) / m.sy}
}

// ScaleX returns pixels per data unit horizontally.
func (m Mapper) ScaleX() float64 { return m.sx }

// ScaleY returns pixels per data unit vertically (negative: Y is inverted).
func (m Mapper) ScaleY() float64 { return m.sy }

// finiteRect reports whether every field of r is finite.
func finiteRect(r Rect) bool {
	for _, v := range [4]float64{r.X, r.Y, r.W, r.H} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
