// Package plot is a 2D plotting surface: it plans axis ticks for the
// visible data limits and places point labels so they avoid each other
// and the drawn data. Rendering goes through the Canvas interface.
package plot

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/sirupsen/logrus"
)

// AxisID identifies one of the four plot axes.
type AxisID int

const (
	LeftAxis AxisID = iota
	BottomAxis
	RightAxis
	TopAxis
)

var axisNames = [...]string{"left", "bottom", "right", "top"}

func (a AxisID) String() string {
	if a < 0 || int(a) >= len(axisNames) {
		return "unknown"
	}
	return axisNames[a]
}

// AutoPadding requests a padding derived from the axis decorations.
const AutoPadding = -1

const (
	basePadding = 20 // pixels per padding unit

	defaultMajorTick = 10
	defaultMinorTick = 4
)

// PointRef identifies a point of a plotted object.
type PointRef struct {
	Object int
	Index  int
	Point  PlotPoint
}

// Plot is a drawing surface holding data limits, axes, plotted objects
// and the label occlusion mask. A Plot is not safe for concurrent use;
// each Draw call is one complete paint pass.
type Plot struct {
	width, height int

	dataRect  Rect
	secondary *Rect

	padLeft, padRight, padTop, padBottom int
	pixRect                              image.Rectangle

	axes    [4]*Axis
	objects []*Object

	showGrid     bool
	showToolTips bool
	antialias    bool

	background color.Color
	foreground color.Color
	gridColor  color.Color

	majorTick, minorTick float64

	mapper   Mapper
	mapperOK bool
	mask     *Mask
	placer   *LabelPlacer
}

// New creates a plot surface of the given size in pixels.
func New(width, height int) *Plot {
	p := &Plot{
		width:        width,
		height:       height,
		padLeft:      AutoPadding,
		padRight:     AutoPadding,
		padTop:       AutoPadding,
		padBottom:    AutoPadding,
		showToolTips: true,
		background:   color.Black,
		foreground:   color.White,
		gridColor:    color.Gray{Y: 128},
		majorTick:    defaultMajorTick,
		minorTick:    defaultMinorTick,
	}
	for i := range p.axes {
		p.axes[i] = NewAxis("")
	}
	p.axes[LeftAxis].SetTickLabelsShown(true)
	p.axes[BottomAxis].SetTickLabelsShown(true)

	p.mask = NewMask(image.Rectangle{}, DefaultMaskCells, DefaultMaskCells)
	p.placer = NewLabelPlacer(image.Rectangle{})
	p.SetLimits(0, 1, 0, 1)
	return p
}

// Size returns the surface size in pixels.
func (p *Plot) Size() (width, height int) { return p.width, p.height }

// Resize changes the surface size and recomputes the pixel rectangle.
func (p *Plot) Resize(width, height int) {
	p.width, p.height = width, height
	p.updateGeometry()
}

// orderLimits returns a and b in increasing order, widening equal limits.
func orderLimits(name string, a, b float64) (float64, float64) {
	if a == b {
		d := 0.5
		if a-d == a+d {
			d = math.Abs(a) * 1e-9 // 0.5 is below float64 resolution here
		}
		Logger().WithFields(logrus.Fields{"axis": name, "value": a, "by": d}).
			Warn("equal limits; widening on each side")
		return a - d, a + d
	}
	if a > b {
		return b, a
	}
	return a, b
}

// SetLimits sets the data-space limits and replans every axis.
func (p *Plot) SetLimits(x1, x2, y1, y2 float64) {
	x1, x2 = orderLimits("x", x1, x2)
	y1, y2 = orderLimits("y", y1, y2)
	p.dataRect = Rect{x1, y1, x2 - x1, y2 - y1}
	if !finiteRect(p.dataRect) {
		Logger().WithField("limits", p.dataRect).Error("non-finite limits; nothing will be painted")
	}

	p.axes[BottomAxis].SetTickMarks(x1, x2-x1)
	p.axes[LeftAxis].SetTickMarks(y1, y2-y1)
	if p.secondary == nil {
		p.axes[TopAxis].SetTickMarks(x1, x2-x1)
		p.axes[RightAxis].SetTickMarks(y1, y2-y1)
	}
	p.updateGeometry()
}

// SetSecondaryLimits sets alternative limits shown on the top and right
// axes. Data is always plotted against the primary limits.
func (p *Plot) SetSecondaryLimits(x1, x2, y1, y2 float64) {
	x1, x2 = orderLimits("x2", x1, x2)
	y1, y2 = orderLimits("y2", y1, y2)
	p.secondary = &Rect{x1, y1, x2 - x1, y2 - y1}

	p.axes[TopAxis].SetTickMarks(x1, x2-x1)
	p.axes[RightAxis].SetTickMarks(y1, y2-y1)
}

// ClearSecondaryLimits makes the top and right axes mirror the primary ones.
func (p *Plot) ClearSecondaryLimits() {
	p.secondary = nil
	d := p.dataRect
	p.axes[TopAxis].SetTickMarks(d.X, d.W)
	p.axes[RightAxis].SetTickMarks(d.Y, d.H)
}

// DataRect returns the primary limits in data units.
func (p *Plot) DataRect() Rect { return p.dataRect }

// SecondaryDataRect returns the secondary limits, or the primary ones if unset.
func (p *Plot) SecondaryDataRect() Rect {
	if p.secondary != nil {
		return *p.secondary
	}
	return p.dataRect
}

// HasSecondaryLimits reports whether secondary limits are set.
func (p *Plot) HasSecondaryLimits() bool { return p.secondary != nil }

// PixRect returns the plot area in pixels. It is empty when the
// paddings leave no room.
func (p *Plot) PixRect() image.Rectangle {
	p.updateGeometry()
	return p.pixRect
}

// Axis returns the requested axis, or nil for an unknown id.
func (p *Plot) Axis(id AxisID) *Axis {
	if id < 0 || int(id) >= len(p.axes) {
		return nil
	}
	return p.axes[id]
}

func (p *Plot) autoPadding(set int, id AxisID) int {
	if set >= 0 {
		return set
	}
	a := p.axes[id]
	if a.Visible() && a.TickLabelsShown() {
		if a.Label() != "" {
			return 3 * basePadding
		}
		return 2 * basePadding
	}
	return basePadding
}

// LeftPadding returns the pixels left of the plot area.
func (p *Plot) LeftPadding() int { return p.autoPadding(p.padLeft, LeftAxis) }

// RightPadding returns the pixels right of the plot area.
func (p *Plot) RightPadding() int { return p.autoPadding(p.padRight, RightAxis) }

// TopPadding returns the pixels above the plot area.
func (p *Plot) TopPadding() int { return p.autoPadding(p.padTop, TopAxis) }

// BottomPadding returns the pixels below the plot area.
func (p *Plot) BottomPadding() int { return p.autoPadding(p.padBottom, BottomAxis) }

// SetLeftPadding sets the left padding; AutoPadding restores the default.
func (p *Plot) SetLeftPadding(n int) {
	p.padLeft = n
	p.updateGeometry()
}

// SetRightPadding sets the right padding; AutoPadding restores the default.
func (p *Plot) SetRightPadding(n int) {
	p.padRight = n
	p.updateGeometry()
}

// SetTopPadding sets the top padding; AutoPadding restores the default.
func (p *Plot) SetTopPadding(n int) {
	p.padTop = n
	p.updateGeometry()
}

// SetBottomPadding sets the bottom padding; AutoPadding restores the default.
func (p *Plot) SetBottomPadding(n int) {
	p.padBottom = n
	p.updateGeometry()
}

// SetDefaultPaddings reverts all paddings to automatic.
func (p *Plot) SetDefaultPaddings() {
	p.padLeft, p.padRight, p.padTop, p.padBottom = AutoPadding, AutoPadding, AutoPadding, AutoPadding
	p.updateGeometry()
}

// SetTickSizes sets the length of major and minor tick marks in pixels.
func (p *Plot) SetTickSizes(major, minor float64) {
	p.majorTick, p.minorTick = major, minor
}

// updateGeometry recomputes the pixel rectangle, mapper, mask and placer
// bounds. Axis titles and tick label visibility feed the automatic
// paddings, so it runs again at the start of every paint pass.
func (p *Plot) updateGeometry() {
	// image.Rect would swap reversed corners; oversized paddings must
	// yield an empty area instead.
	r := image.Rectangle{
		Min: image.Pt(p.LeftPadding(), p.TopPadding()),
		Max: image.Pt(p.width-p.RightPadding(), p.height-p.BottomPadding()),
	}
	if r.Dx() <= 0 || r.Dy() <= 0 {
		r = image.Rectangle{}
	}
	if r != p.pixRect {
		p.pixRect = r
		p.mask.SetBounds(r)
		p.placer.Bounds = r
		Logger().WithField("pixrect", r).Debug("plot area changed")
	}

	p.mapperOK = !r.Empty() && finiteRect(p.dataRect)
	if p.mapperOK {
		p.mapper.Configure(p.dataRect, r)
	}
}

// Mapper returns the current data-to-pixel mapper. It panics with
// *InvariantError when the plot area is empty or the limits are not finite.
func (p *Plot) Mapper() Mapper {
	p.updateGeometry()
	if !finiteRect(p.dataRect) {
		invariant("Plot.Mapper", "non-finite limits %+v", p.dataRect)
	}
	if !p.mapperOK {
		invariant("Plot.Mapper", "plot area is empty (%dx%d surface)", p.width, p.height)
	}
	return p.mapper
}

// MapToPixel maps a data point to pixel space.
func (p *Plot) MapToPixel(pt Point) Point {
	return p.Mapper().ToPixel(pt)
}

// Mask returns the occlusion mask of the current paint pass.
func (p *Plot) Mask() *Mask { return p.mask }

// ResetMask clears the occlusion mask.
func (p *Plot) ResetMask() { p.mask.Reset() }

// Placer returns the label placer so its tuning can be changed.
func (p *Plot) Placer() *LabelPlacer { return p.placer }

// AddObject appends an object to be plotted. nil is ignored.
func (p *Plot) AddObject(o *Object) {
	if o != nil {
		p.objects = append(p.objects, o)
	}
}

// AddObjects appends several objects in order.
func (p *Plot) AddObjects(objs ...*Object) {
	for _, o := range objs {
		p.AddObject(o)
	}
}

// Objects returns the plotted objects in insertion order.
func (p *Plot) Objects() []*Object {
	out := make([]*Object, len(p.objects))
	copy(out, p.objects)
	return out
}

// ReplaceObject replaces the object at index i.
func (p *Plot) ReplaceObject(i int, o *Object) error {
	if i < 0 || i >= len(p.objects) {
		return fmt.Errorf("object %d of %d: %w", i, len(p.objects), ErrIndexOutOfRange)
	}
	if o == nil {
		return fmt.Errorf("object %d: nil replacement", i)
	}
	p.objects[i] = o
	return nil
}

// RemoveAllObjects removes every plotted object.
func (p *Plot) RemoveAllObjects() {
	p.objects = nil
}

// ResetPlot removes all objects, resets the limits to the unit square
// and clears axis titles and formats.
func (p *Plot) ResetPlot() {
	p.RemoveAllObjects()
	p.secondary = nil
	for i, a := range p.axes {
		a.SetLabel("")
		a.SetVisible(true)
		a.SetTickLabelFormat(DefaultLabelFormat.Style, DefaultLabelFormat.Width, DefaultLabelFormat.Precision)
		a.SetTickLabelsShown(AxisID(i) == LeftAxis || AxisID(i) == BottomAxis)
	}
	p.SetLimits(0, 1, 0, 1)
}

// ShowGrid reports whether grid lines are drawn at major ticks.
func (p *Plot) ShowGrid() bool { return p.showGrid }

// SetShowGrid toggles grid lines.
func (p *Plot) SetShowGrid(b bool) { p.showGrid = b }

// ObjectToolTipShown reports whether viewers should describe points under the cursor.
func (p *Plot) ObjectToolTipShown() bool { return p.showToolTips }

// SetObjectToolTipShown toggles point descriptions in viewers.
func (p *Plot) SetObjectToolTipShown(b bool) { p.showToolTips = b }

// Antialiasing reports whether canvases should smooth their output.
func (p *Plot) Antialiasing() bool { return p.antialias }

// SetAntialiasing toggles smoothing.
func (p *Plot) SetAntialiasing(b bool) { p.antialias = b }

func (p *Plot) BackgroundColor() color.Color     { return p.background }
func (p *Plot) SetBackgroundColor(c color.Color) { p.background = c }
func (p *Plot) ForegroundColor() color.Color     { return p.foreground }
func (p *Plot) SetForegroundColor(c color.Color) { p.foreground = c }
func (p *Plot) GridColor() color.Color           { return p.gridColor }
func (p *Plot) SetGridColor(c color.Color)       { p.gridColor = c }

// PointsNear returns the points drawn within radius pixels of pix.
func (p *Plot) PointsNear(pix Point, radius float64) []PointRef {
	p.updateGeometry()
	if !p.mapperOK {
		return nil
	}
	var out []PointRef
	for oi, o := range p.objects {
		for i, pt := range o.points {
			if distance(p.mapper.ToPixel(pt.Pos), pix) <= radius {
				out = append(out, PointRef{Object: oi, Index: i, Point: pt})
			}
		}
	}
	return out
}
