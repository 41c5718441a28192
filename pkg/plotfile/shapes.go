package plotfile

import (
	"math"

	"github.com/ha1tch/plot-toolkit/pkg/plot"
)

// regularPolygon returns the n vertices of a regular polygon of radius r
// centred on (cx, cy), the first vertex pointing up.
func regularPolygon(n int, cx, cy, r float64) []plot.Point {
	pts := make([]plot.Point, n)
	for i := range pts {
		a := -math.Pi/2 + 2*math.Pi*float64(i)/float64(n)
		pts[i] = plot.Point{X: cx + r*math.Cos(a), Y: cy + r*math.Sin(a)}
	}
	return pts
}

func circlePoints(cx, cy, r float64, n int) []plot.Point {
	return regularPolygon(n, cx, cy, r)
}

// starPoints returns a five-pointed star with inner radius r*0.4.
func starPoints(cx, cy, r float64) []plot.Point {
	pts := make([]plot.Point, 10)
	for i := range pts {
		rr := r
		if i%2 == 1 {
			rr = r * 0.4
		}
		a := -math.Pi/2 + math.Pi*float64(i)/5
		pts[i] = plot.Point{X: cx + rr*math.Cos(a), Y: cy + rr*math.Sin(a)}
	}
	return pts
}

// markerPolygon returns the outline of a polygonal marker, or nil for
// styles that are not polygons.
func markerPolygon(style plot.PointStyle, cx, cy, r float64) []plot.Point {
	switch style {
	case plot.Triangle:
		return regularPolygon(3, cx, cy, r)
	case plot.Square:
		return []plot.Point{{X: cx - r, Y: cy - r}, {X: cx + r, Y: cy - r}, {X: cx + r, Y: cy + r}, {X: cx - r, Y: cy + r}}
	case plot.Pentagon:
		return regularPolygon(5, cx, cy, r)
	case plot.Hexagon:
		return regularPolygon(6, cx, cy, r)
	case plot.Star:
		return starPoints(cx, cy, r)
	case plot.Circle:
		return circlePoints(cx, cy, r, 48)
	}
	return nil
}

// asteriskSegments returns the three strokes of an asterisk marker.
func asteriskSegments(cx, cy, r float64) [3][2]plot.Point {
	var segs [3][2]plot.Point
	for i := range segs {
		a := math.Pi/2 + float64(i)*math.Pi/3
		dx, dy := r*math.Cos(a), r*math.Sin(a)
		segs[i] = [2]plot.Point{{X: cx - dx, Y: cy - dy}, {X: cx + dx, Y: cy + dy}}
	}
	return segs
}

// insidePolygon reports whether (x, y) lies inside pts (even-odd rule).
func insidePolygon(pts []plot.Point, x, y float64) bool {
	in := false
	for i, j := 0, len(pts)-1; i < len(pts); j, i = i, i+1 {
		a, b := pts[i], pts[j]
		if (a.Y > y) != (b.Y > y) && x < (b.X-a.X)*(y-a.Y)/(b.Y-a.Y)+a.X {
			in = !in
		}
	}
	return in
}
