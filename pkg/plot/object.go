// Plotted data sets and their points.

package plot

import (
	"fmt"
	"image/color"
	"strings"
)

// PlotType is a set of ways a data set is drawn. Values combine with |.
type PlotType uint8

const (
	Points PlotType = 1 << iota // each point drawn as a marker
	Lines                       // consecutive points joined by lines
	Bars                        // each point drawn as a vertical bar from y=0

	UnknownType PlotType = 0
)

// Has reports whether every flag in t2 is set.
func (t PlotType) Has(t2 PlotType) bool { return t&t2 == t2 && t2 != 0 }

// With returns t with the flags of t2 set or cleared.
func (t PlotType) With(t2 PlotType, on bool) PlotType {
	if on {
		return t | t2
	}
	return t &^ t2
}

func (t PlotType) String() string {
	var parts []string
	if t.Has(Points) {
		parts = append(parts, "points")
	}
	if t.Has(Lines) {
		parts = append(parts, "lines")
	}
	if t.Has(Bars) {
		parts = append(parts, "bars")
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, "|")
}

// ParsePlotType parses a single type name.
func ParsePlotType(s string) (PlotType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "points", "point":
		return Points, nil
	case "lines", "line":
		return Lines, nil
	case "bars", "bar":
		return Bars, nil
	}
	return UnknownType, fmt.Errorf("unknown plot type %q", s)
}

// PointStyle is the marker shape used for plotted points.
type PointStyle int

const (
	NoPoints PointStyle = iota
	Circle
	Letter
	Triangle
	Square
	Pentagon
	Hexagon
	Asterisk
	Star
)

var pointStyleNames = [...]string{"none", "circle", "letter", "triangle", "square", "pentagon", "hexagon", "asterisk", "star"}

func (s PointStyle) String() string {
	if s < 0 || int(s) >= len(pointStyleNames) {
		return "unknown"
	}
	return pointStyleNames[s]
}

// ParsePointStyle parses a marker name as produced by String.
func ParsePointStyle(s string) (PointStyle, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, name := range pointStyleNames {
		if name == s {
			return PointStyle(i), nil
		}
	}
	return NoPoints, fmt.Errorf("unknown point style %q", s)
}

// Pen describes stroke styling. It is passed through to the Canvas.
type Pen struct {
	Color color.Color
	Width float64
}

// Brush describes fill styling. It is passed through to the Canvas.
type Brush struct {
	Color color.Color
}

// PlotPoint is one data point with an optional label and bar width.
// A zero BarWidth means "distance to the neighbouring point".
type PlotPoint struct {
	Pos      Point
	Label    string
	BarWidth float64
}

// NewPlotPoint creates a point at (x, y).
func NewPlotPoint(x, y float64, label string, barWidth float64) PlotPoint {
	return PlotPoint{Pos: Point{x, y}, Label: label, BarWidth: barWidth}
}

// X returns the horizontal data coordinate.
func (p PlotPoint) X() float64 { return p.Pos.X }

// Y returns the vertical data coordinate.
func (p PlotPoint) Y() float64 { return p.Pos.Y }

// Object is a data set drawn as a group: its points plus how they are
// drawn. The object owns its points; Points returns a copy, and
// removing or clearing points invalidates previously used indices.
type Object struct {
	types    PlotType
	size     float64
	style    PointStyle
	pen      Pen
	linePen  Pen
	barPen   Pen
	labelPen Pen
	brush    Brush
	barBrush Brush
	points   []PlotPoint
}

// NewObject creates an object drawn in c. Every pen and brush starts
// from c; size is the marker size in pixels.
func NewObject(c color.Color, types PlotType, size float64, style PointStyle) *Object {
	if c == nil {
		c = color.White
	}
	pen := Pen{Color: c, Width: 1}
	brush := Brush{Color: c}
	return &Object{
		types:    types,
		size:     size,
		style:    style,
		pen:      pen,
		linePen:  pen,
		barPen:   pen,
		labelPen: pen,
		brush:    brush,
		barBrush: brush,
	}
}

// PlotTypes returns the drawing flags.
func (o *Object) PlotTypes() PlotType { return o.types }

// SetShowPoints toggles point markers.
func (o *Object) SetShowPoints(b bool) { o.types = o.types.With(Points, b) }

// SetShowLines toggles connecting lines.
func (o *Object) SetShowLines(b bool) { o.types = o.types.With(Lines, b) }

// SetShowBars toggles bars.
func (o *Object) SetShowBars(b bool) { o.types = o.types.With(Bars, b) }

// Size returns the marker size in pixels.
func (o *Object) Size() float64 { return o.size }

// SetSize sets the marker size in pixels.
func (o *Object) SetSize(s float64) { o.size = s }

// PointStyle returns the marker shape.
func (o *Object) PointStyle() PointStyle { return o.style }

// SetPointStyle sets the marker shape.
func (o *Object) SetPointStyle(s PointStyle) { o.style = s }

func (o *Object) Pen() Pen            { return o.pen }
func (o *Object) SetPen(p Pen)        { o.pen = p }
func (o *Object) LinePen() Pen        { return o.linePen }
func (o *Object) SetLinePen(p Pen)    { o.linePen = p }
func (o *Object) BarPen() Pen         { return o.barPen }
func (o *Object) SetBarPen(p Pen)     { o.barPen = p }
func (o *Object) LabelPen() Pen       { return o.labelPen }
func (o *Object) SetLabelPen(p Pen)   { o.labelPen = p }
func (o *Object) Brush() Brush        { return o.brush }
func (o *Object) SetBrush(b Brush)    { o.brush = b }
func (o *Object) BarBrush() Brush     { return o.barBrush }
func (o *Object) SetBarBrush(b Brush) { o.barBrush = b }

// Points returns a copy of the object's points.
func (o *Object) Points() []PlotPoint {
	out := make([]PlotPoint, len(o.points))
	copy(out, o.points)
	return out
}

// Len returns the number of points.
func (o *Object) Len() int { return len(o.points) }

// At returns the point at index i.
func (o *Object) At(i int) (PlotPoint, error) {
	if i < 0 || i >= len(o.points) {
		return PlotPoint{}, fmt.Errorf("point %d of %d: %w", i, len(o.points), ErrIndexOutOfRange)
	}
	return o.points[i], nil
}

// SetPoint replaces the point at index i.
func (o *Object) SetPoint(i int, p PlotPoint) error {
	if i < 0 || i >= len(o.points) {
		return fmt.Errorf("point %d of %d: %w", i, len(o.points), ErrIndexOutOfRange)
	}
	o.points[i] = p
	return nil
}

// AddPoint appends p.
func (o *Object) AddPoint(p PlotPoint) {
	o.points = append(o.points, p)
}

// AddXY appends a point built from its parts.
func (o *Object) AddXY(x, y float64, label string, barWidth float64) {
	o.AddPoint(NewPlotPoint(x, y, label, barWidth))
}

// RemovePoint deletes the point at index i, shifting later points down.
func (o *Object) RemovePoint(i int) error {
	if i < 0 || i >= len(o.points) {
		return fmt.Errorf("point %d of %d: %w", i, len(o.points), ErrIndexOutOfRange)
	}
	o.points = append(o.points[:i], o.points[i+1:]...)
	return nil
}

// ClearPoints removes every point.
func (o *Object) ClearPoints() {
	o.points = nil
}

// barWidthAt resolves the bar width of point i in data units.
func (o *Object) barWidthAt(i int) float64 {
	p := o.points[i]
	if p.BarWidth != 0 {
		return p.BarWidth
	}
	switch {
	case i < len(o.points)-1:
		return o.points[i+1].Pos.X - p.Pos.X
	case i > 0:
		return p.Pos.X - o.points[i-1].Pos.X
	}
	return 0.5
}
