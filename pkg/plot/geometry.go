// Geometric primitives shared by the mapper, the occlusion mask and label placement.

package plot

import (
	"image"
	"math"
)

// Point represents a 2D coordinate, in data or pixel units depending on context.
type Point struct {
	X, Y float64
}

// Size is a width/height pair in pixels.
type Size struct {
	W, H float64
}

// Rect represents an axis-aligned rectangle.
type Rect struct {
	X, Y float64 // Top-left corner (pixel space) or minimum corner (data space)
	W, H float64 // Full width and height
}

// RectFromCenter returns the rectangle of the given size centred on c.
func RectFromCenter(c Point, s Size) Rect {
	return Rect{c.X - s.W/2, c.Y - s.H/2, s.W, s.H}
}

// RectFromImage converts an integer pixel rectangle.
func RectFromImage(r image.Rectangle) Rect {
	return Rect{float64(r.Min.X), float64(r.Min.Y), float64(r.Dx()), float64(r.Dy())}
}

// Right returns the maximum X edge.
func (r Rect) Right() float64 { return r.X + r.W }

// Bottom returns the maximum Y edge.
func (r Rect) Bottom() float64 { return r.Y + r.H }

// Center returns the centre point.
func (r Rect) Center() Point { return Point{r.X + r.W/2, r.Y + r.H/2} }

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool { return r.W <= 0 || r.H <= 0 }

// Normalized returns r with non-negative width and height.
func (r Rect) Normalized() Rect {
	if r.W < 0 {
		r.X += r.W
		r.W = -r.W
	}
	if r.H < 0 {
		r.Y += r.H
		r.H = -r.H
	}
	return r
}

// Contains reports whether p lies inside r (edges inclusive).
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X <= r.Right() && p.Y >= r.Y && p.Y <= r.Bottom()
}

// ContainsRect reports whether o lies entirely inside r.
func (r Rect) ContainsRect(o Rect) bool {
	return o.X >= r.X && o.Right() <= r.Right() && o.Y >= r.Y && o.Bottom() <= r.Bottom()
}

// Overlap returns the overlap area between two rectangles.
// Returns 0 if they don't overlap.
func (r Rect) Overlap(o Rect) float64 {
	overlapX := math.Min(r.Right(), o.Right()) - math.Max(r.X, o.X)
	overlapY := math.Min(r.Bottom(), o.Bottom()) - math.Max(r.Y, o.Y)

	if overlapX <= 0 || overlapY <= 0 {
		return 0
	}
	return overlapX * overlapY
}

// Grow returns r expanded by d on every side.
func (r Rect) Grow(d float64) Rect {
	return Rect{r.X - d, r.Y - d, r.W + 2*d, r.H + 2*d}
}

func distance(a, b Point) float64 {
	dx := b.X - a.X
	dy := b.Y - a.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// distanceToRect returns the distance from p to the nearest point of r (0 if inside).
func distanceToRect(p Point, r Rect) float64 {
	nx := math.Max(r.X, math.Min(p.X, r.Right()))
	ny := math.Max(r.Y, math.Min(p.Y, r.Bottom()))
	return distance(p, Point{nx, ny})
}
