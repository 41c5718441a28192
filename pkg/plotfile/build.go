package plotfile

import (
	"image/color"
	"math"

	"github.com/ha1tch/plot-toolkit/pkg/plot"
)

// Size returns the surface size, applying defaults for unset fields.
func (d *Document) Size() (width, height int) {
	width, height = d.Width, d.Height
	if width == 0 {
		width = DefaultWidth
	}
	if height == 0 {
		height = DefaultHeight
	}
	return width, height
}

// Build validates the document and constructs the plot it describes.
func (d *Document) Build() (*plot.Plot, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}

	p := plot.New(d.Size())
	p.SetShowGrid(d.Grid)
	p.SetAntialiasing(d.Antialias)

	if d.Colors.Background != "" {
		p.SetBackgroundColor(mustColor(d.Colors.Background))
	}
	if d.Colors.Foreground != "" {
		p.SetForegroundColor(mustColor(d.Colors.Foreground))
	}
	if d.Colors.Grid != "" {
		p.SetGridColor(mustColor(d.Colors.Grid))
	}

	applyAxis(p.Axis(plot.LeftAxis), d.Axes.Left)
	applyAxis(p.Axis(plot.BottomAxis), d.Axes.Bottom)
	applyAxis(p.Axis(plot.RightAxis), d.Axes.Right)
	applyAxis(p.Axis(plot.TopAxis), d.Axes.Top)

	if d.Padding.Left != nil {
		p.SetLeftPadding(*d.Padding.Left)
	}
	if d.Padding.Right != nil {
		p.SetRightPadding(*d.Padding.Right)
	}
	if d.Padding.Top != nil {
		p.SetTopPadding(*d.Padding.Top)
	}
	if d.Padding.Bottom != nil {
		p.SetBottomPadding(*d.Padding.Bottom)
	}

	for i, s := range d.Series {
		p.AddObject(buildSeries(i, s))
	}

	l := d.Limits
	if l == nil {
		l = d.AutoLimits()
		if !finite(l.X1, l.X2, l.Y1, l.Y2) {
			return nil, &FieldError{Field: "limits", Msg: "data range overflows; set limits explicitly"}
		}
	}
	p.SetLimits(l.X1, l.X2, l.Y1, l.Y2)
	if s := d.Secondary; s != nil {
		p.SetSecondaryLimits(s.X1, s.X2, s.Y1, s.Y2)
	}
	return p, nil
}

// mustColor parses a colour already accepted by Validate.
func mustColor(s string) color.Color {
	c, err := ParseColor(s)
	if err != nil {
		panic(err)
	}
	return c
}

func applyAxis(a *plot.Axis, doc *AxisDoc) {
	if doc == nil {
		return
	}
	a.SetLabel(doc.Label)
	if doc.Visible != nil {
		a.SetVisible(*doc.Visible)
	}
	if doc.TickLabels != nil {
		a.SetTickLabelsShown(*doc.TickLabels)
	}
	f := plot.DefaultLabelFormat
	if doc.Format != "" {
		f.Style = doc.Format[0]
	}
	f.Width = doc.Width
	if doc.Precision != nil {
		f.Precision = *doc.Precision
	}
	a.SetTickLabelFormat(f.Style, f.Width, f.Precision)
}

func buildSeries(i int, s Series) *plot.Object {
	var types plot.PlotType
	for _, t := range s.Type {
		pt, _ := plot.ParsePlotType(t)
		types |= pt
	}
	style := plot.Circle
	if s.Style != "" {
		style, _ = plot.ParsePointStyle(s.Style)
	}
	size := s.Size
	if size == 0 {
		size = 4
	}

	c := PaletteColor(i)
	if s.Color != "" {
		c = mustColor(s.Color)
	}
	o := plot.NewObject(c, types, size, style)

	lineWidth := s.LineWidth
	if lineWidth == 0 {
		lineWidth = 1
	}
	linePen := plot.Pen{Color: c, Width: lineWidth}
	if s.LineColor != "" {
		linePen.Color = mustColor(s.LineColor)
	}
	o.SetLinePen(linePen)
	if s.BarColor != "" {
		o.SetBarBrush(plot.Brush{Color: mustColor(s.BarColor)})
	}
	if s.LabelColor != "" {
		o.SetLabelPen(plot.Pen{Color: mustColor(s.LabelColor), Width: 1})
	}

	for _, pt := range s.Points {
		o.AddXY(pt.X, pt.Y, pt.Label, pt.BarWidth)
	}
	return o
}

// AutoLimits derives limits from the data with a margin on every side.
// Series drawn as bars always include y = 0. Without data the unit
// square is returned.
func (d *Document) AutoLimits() *Limits {
	x1, x2 := math.Inf(1), math.Inf(-1)
	y1, y2 := math.Inf(1), math.Inf(-1)
	for _, s := range d.Series {
		bars := false
		for _, t := range s.Type {
			if pt, err := plot.ParsePlotType(t); err == nil && pt == plot.Bars {
				bars = true
			}
		}
		for i, p := range s.Points {
			halfBar := 0.0
			if bars {
				y1, y2 = math.Min(y1, 0), math.Max(y2, 0)
				halfBar = math.Abs(docBarWidth(s.Points, i)) / 2
			}
			x1, x2 = math.Min(x1, p.X-halfBar), math.Max(x2, p.X+halfBar)
			y1, y2 = math.Min(y1, p.Y), math.Max(y2, p.Y)
		}
	}
	if x1 > x2 {
		return &Limits{0, 1, 0, 1}
	}
	mx := (x2 - x1) * autoMargin
	my := (y2 - y1) * autoMargin
	return &Limits{x1 - mx, x2 + mx, y1 - my, y2 + my}
}

// docBarWidth mirrors the plot's bar width rule for document points.
func docBarWidth(pts []PointDoc, i int) float64 {
	if w := pts[i].BarWidth; w != 0 {
		return w
	}
	switch {
	case i < len(pts)-1:
		return pts[i+1].X - pts[i].X
	case i > 0:
		return pts[i].X - pts[i-1].X
	}
	return 0.5
}
