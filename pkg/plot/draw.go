// The paint pass: background, axes and data first, then labels.

package plot

import (
	"image/color"

	"github.com/sirupsen/logrus"
)

// Weights stamped into the occlusion mask. Labels are steered hardest
// away from points and lines, less from bars, and barely from grid lines.
const (
	gridWeight  = 0.1
	frameWeight = 0.5
	barWeight   = 0.25
	lineWeight  = 1
	pointWeight = 1
)

// tickLabelGap separates tick labels from the frame, in pixels.
const tickLabelGap = 3

// Draw performs one complete paint pass onto c. The mask is reset first,
// so labels from previous passes never influence this one. Labels are
// placed only after every other element has been drawn and stamped.
func (p *Plot) Draw(c Canvas) {
	p.updateGeometry()
	p.mask.Reset()
	c.FillRect(Rect{0, 0, float64(p.width), float64(p.height)}, Brush{Color: colorOrDefault(p.background, color.Black)})

	if !p.mapperOK {
		Logger().WithFields(logrus.Fields{"width": p.width, "height": p.height, "limits": p.dataRect}).
			Debug("plot area is empty or limits are not finite; skipping paint")
		return
	}

	if p.showGrid {
		p.drawGrid(c)
	}
	for _, o := range p.objects {
		p.drawObject(c, o)
	}
	p.drawAxes(c)

	placed := 0
	for _, o := range p.objects {
		placed += p.drawLabels(c, o)
	}
	Logger().WithFields(logrus.Fields{
		"objects":  len(p.objects),
		"labels":   placed,
		"occupied": p.mask.Occupied(),
	}).Debug("plot painted")
}

func (p *Plot) pixArea() Rect { return RectFromImage(p.pixRect) }

// axisPixelX maps a data x value onto the plot area using limits d.
func (p *Plot) axisPixelX(v float64, d Rect) float64 {
	pr := p.pixArea()
	return pr.X + pr.W*(v-d.X)/d.W
}

// axisPixelY maps a data y value onto the plot area using limits d.
func (p *Plot) axisPixelY(v float64, d Rect) float64 {
	pr := p.pixArea()
	return pr.Bottom() - pr.H*(v-d.Y)/d.H
}

func (p *Plot) drawGrid(c Canvas) {
	pr := p.pixArea()
	pen := Pen{Color: colorOrDefault(p.gridColor, color.Gray{Y: 128}), Width: 1}
	for _, v := range p.axes[BottomAxis].MajorTickMarks() {
		x := p.axisPixelX(v, p.dataRect)
		a, b := Point{x, pr.Y}, Point{x, pr.Bottom()}
		c.DrawLine(a, b, pen)
		p.mask.StampLine(a, b, gridWeight)
	}
	for _, v := range p.axes[LeftAxis].MajorTickMarks() {
		y := p.axisPixelY(v, p.dataRect)
		a, b := Point{pr.X, y}, Point{pr.Right(), y}
		c.DrawLine(a, b, pen)
		p.mask.StampLine(a, b, gridWeight)
	}
}

func (p *Plot) drawObject(c Canvas, o *Object) {
	if len(o.points) == 0 {
		return
	}
	pr := p.pixArea()

	if o.types.Has(Bars) {
		for i, pt := range o.points {
			w := o.barWidthAt(i)
			a := p.mapper.ToPixel(Point{pt.Pos.X - w/2, 0})
			b := p.mapper.ToPixel(Point{pt.Pos.X + w/2, pt.Pos.Y})
			bar, ok := intersect(Rect{a.X, a.Y, b.X - a.X, b.Y - a.Y}.Normalized(), pr)
			if !ok {
				continue
			}
			c.FillRect(bar, o.barBrush)
			c.StrokeRect(bar, o.barPen)
			p.mask.StampRect(bar, barWeight)
		}
	}

	if o.types.Has(Lines) {
		prev := p.mapper.ToPixel(o.points[0].Pos)
		for _, pt := range o.points[1:] {
			cur := p.mapper.ToPixel(pt.Pos)
			if a, b, ok := clipToRect(prev, cur, pr); ok {
				c.DrawLine(a, b, o.linePen)
				p.mask.StampLine(a, b, lineWeight)
			}
			prev = cur
		}
	}

	if o.types.Has(Points) && o.style != NoPoints {
		for _, pt := range o.points {
			at := p.mapper.ToPixel(pt.Pos)
			if !pr.Contains(at) {
				continue
			}
			if o.style == Letter {
				if r := []rune(pt.Label); len(r) > 0 {
					c.DrawText(string(r[0]), at, TextStyle{Color: o.labelPen.Color, AnchorX: 0.5, AnchorY: 0.5})
				}
			} else {
				c.DrawMarker(at, o.style, o.size, o.pen, o.brush)
			}
			p.mask.StampRect(RectFromCenter(at, Size{o.size, o.size}), pointWeight)
		}
	}
}

// drawLabels places and draws the labels of o's points, returning how many were drawn.
func (p *Plot) drawLabels(c Canvas, o *Object) int {
	pr := p.pixArea()
	n := 0
	for _, pt := range o.points {
		if pt.Label == "" {
			continue
		}
		// Letter markers already show the label's first character.
		if o.types.Has(Points) && o.style == Letter {
			continue
		}
		at := p.mapper.ToPixel(pt.Pos)
		if !pr.Contains(at) {
			continue
		}
		pl := p.placer.Place(at, c.TextSize(pt.Label), p.mask)
		if pl.Leader {
			c.DrawLine(at, nearestOnRect(at, pl.Rect), o.labelPen)
		}
		c.DrawText(pt.Label, pl.Rect.Center(), TextStyle{Color: o.labelPen.Color, AnchorX: 0.5, AnchorY: 0.5})
		n++
	}
	return n
}

func (p *Plot) drawAxes(c Canvas) {
	pr := p.pixArea()
	fg := colorOrDefault(p.foreground, color.White)
	pen := Pen{Color: fg, Width: 1}

	c.StrokeRect(pr, pen)
	corners := [4]Point{{pr.X, pr.Y}, {pr.Right(), pr.Y}, {pr.Right(), pr.Bottom()}, {pr.X, pr.Bottom()}}
	for i := range corners {
		p.mask.StampLine(corners[i], corners[(i+1)%4], frameWeight)
	}

	if a := p.axes[BottomAxis]; a.Visible() {
		p.drawHorizontalAxis(c, a, p.dataRect, pr.Bottom(), -1, pen)
		if a.Label() != "" {
			at := Point{pr.X + pr.W/2, float64(p.height) - tickLabelGap}
			c.DrawText(a.Label(), at, TextStyle{Color: fg, AnchorX: 0.5, AnchorY: 1})
		}
	}
	if a := p.axes[TopAxis]; a.Visible() {
		p.drawHorizontalAxis(c, a, p.SecondaryDataRect(), pr.Y, 1, pen)
		if a.Label() != "" {
			at := Point{pr.X + pr.W/2, tickLabelGap}
			c.DrawText(a.Label(), at, TextStyle{Color: fg, AnchorX: 0.5, AnchorY: 0})
		}
	}
	if a := p.axes[LeftAxis]; a.Visible() {
		p.drawVerticalAxis(c, a, p.dataRect, pr.X, 1, pen)
		if a.Label() != "" {
			at := Point{tickLabelGap, pr.Y + pr.H/2}
			c.DrawText(a.Label(), at, TextStyle{Color: fg, AnchorX: 0, AnchorY: 0.5, Vertical: true})
		}
	}
	if a := p.axes[RightAxis]; a.Visible() {
		p.drawVerticalAxis(c, a, p.SecondaryDataRect(), pr.Right(), -1, pen)
		if a.Label() != "" {
			at := Point{float64(p.width) - tickLabelGap, pr.Y + pr.H/2}
			c.DrawText(a.Label(), at, TextStyle{Color: fg, AnchorX: 1, AnchorY: 0.5, Vertical: true})
		}
	}
}

// drawHorizontalAxis draws ticks along the edge at y. dir is +1 when ticks
// point down into the plot area (top edge) and -1 when they point up.
func (p *Plot) drawHorizontalAxis(c Canvas, a *Axis, d Rect, y, dir float64, pen Pen) {
	pr := p.pixArea()
	inside := func(x float64) bool { return x >= pr.X && x <= pr.Right() }

	for _, v := range a.MajorTickMarks() {
		x := p.axisPixelX(v, d)
		if !inside(x) {
			continue
		}
		c.DrawLine(Point{x, y}, Point{x, y + dir*p.majorTick}, pen)
		if a.TickLabelsShown() {
			st := TextStyle{Color: pen.Color, AnchorX: 0.5}
			at := Point{x, y - dir*tickLabelGap}
			if dir > 0 {
				st.AnchorY = 1
			}
			c.DrawText(a.TickLabel(v), at, st)
		}
	}
	for _, v := range a.MinorTickMarks() {
		x := p.axisPixelX(v, d)
		if inside(x) {
			c.DrawLine(Point{x, y}, Point{x, y + dir*p.minorTick}, pen)
		}
	}
}

// drawVerticalAxis draws ticks along the edge at x. dir is +1 when ticks
// point right into the plot area (left edge) and -1 when they point left.
func (p *Plot) drawVerticalAxis(c Canvas, a *Axis, d Rect, x, dir float64, pen Pen) {
	pr := p.pixArea()
	inside := func(y float64) bool { return y >= pr.Y && y <= pr.Bottom() }

	for _, v := range a.MajorTickMarks() {
		y := p.axisPixelY(v, d)
		if !inside(y) {
			continue
		}
		c.DrawLine(Point{x, y}, Point{x + dir*p.majorTick, y}, pen)
		if a.TickLabelsShown() {
			st := TextStyle{Color: pen.Color, AnchorY: 0.5}
			at := Point{x - dir*tickLabelGap, y}
			if dir > 0 {
				st.AnchorX = 1
			}
			c.DrawText(a.TickLabel(v), at, st)
		}
	}
	for _, v := range a.MinorTickMarks() {
		y := p.axisPixelY(v, d)
		if inside(y) {
			c.DrawLine(Point{x, y}, Point{x + dir*p.minorTick, y}, pen)
		}
	}
}

// intersect returns the overlap of a and b, if any.
func intersect(a, b Rect) (Rect, bool) {
	x0 := max(a.X, b.X)
	y0 := max(a.Y, b.Y)
	x1 := min(a.Right(), b.Right())
	y1 := min(a.Bottom(), b.Bottom())
	if x1 < x0 || y1 < y0 {
		return Rect{}, false
	}
	return Rect{x0, y0, x1 - x0, y1 - y0}, true
}

// clipToRect clips the segment a-b to r.
func clipToRect(a, b Point, r Rect) (Point, Point, bool) {
	x0, y0, x1, y1, ok := clipSegment(a.X-r.X, a.Y-r.Y, b.X-r.X, b.Y-r.Y, r.W, r.H)
	if !ok {
		return Point{}, Point{}, false
	}
	return Point{x0 + r.X, y0 + r.Y}, Point{x1 + r.X, y1 + r.Y}, true
}

// nearestOnRect returns the point of r closest to p.
func nearestOnRect(p Point, r Rect) Point {
	return Point{max(r.X, min(p.X, r.Right())), max(r.Y, min(p.Y, r.Bottom()))}
}

// colorOrDefault returns c, or fallback when c is nil.
func colorOrDefault(c, fallback color.Color) color.Color {
	if c == nil {
		return fallback
	}
	return c
}
