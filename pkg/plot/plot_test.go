package plot

import (
	"image"
	"image/color"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// op is one recorded canvas call.
type op struct {
	kind string
	text string
	at   Point
	rect Rect
}

// recorder is a Canvas that records calls in order.
type recorder struct {
	ops []op
}

func (r *recorder) FillRect(rc Rect, b Brush) { r.ops = append(r.ops, op{kind: "fill", rect: rc}) }
func (r *recorder) StrokeRect(rc Rect, p Pen) { r.ops = append(r.ops, op{kind: "stroke", rect: rc}) }
func (r *recorder) DrawLine(p1, p2 Point, p Pen) {
	r.ops = append(r.ops, op{kind: "line", at: p1, rect: Rect{p1.X, p1.Y, p2.X - p1.X, p2.Y - p1.Y}})
}
func (r *recorder) DrawMarker(at Point, style PointStyle, size float64, p Pen, b Brush) {
	r.ops = append(r.ops, op{kind: "marker", at: at})
}
func (r *recorder) DrawText(s string, at Point, st TextStyle) {
	r.ops = append(r.ops, op{kind: "text", text: s, at: at})
}
func (r *recorder) TextSize(s string) Size { return Size{W: 6 * float64(len(s)), H: 10} }

func (r *recorder) count(kind string) int {
	n := 0
	for _, o := range r.ops {
		if o.kind == kind {
			n++
		}
	}
	return n
}

func (r *recorder) texts() map[string]int {
	idx := make(map[string]int)
	for i, o := range r.ops {
		if o.kind == "text" {
			idx[o.text] = i
		}
	}
	return idx
}

func TestPlotDefaults(t *testing.T) {
	p := New(400, 300)
	assert.Equal(t, 40, p.LeftPadding())
	assert.Equal(t, 40, p.BottomPadding())
	assert.Equal(t, 20, p.RightPadding())
	assert.Equal(t, 20, p.TopPadding())
	assert.Equal(t, image.Rect(40, 20, 380, 260), p.PixRect())
	assert.Equal(t, Rect{0, 0, 1, 1}, p.DataRect())
	assert.False(t, p.HasSecondaryLimits())
	assert.True(t, p.ObjectToolTipShown())
	assert.False(t, p.ShowGrid())
}

func TestPlotPaddings(t *testing.T) {
	p := New(400, 300)
	p.Axis(BottomAxis).SetLabel("x")
	assert.Equal(t, 60, p.BottomPadding())
	assert.Equal(t, image.Rect(40, 20, 380, 240), p.PixRect())

	p.SetLeftPadding(10)
	p.SetTopPadding(0)
	assert.Equal(t, image.Rect(10, 0, 380, 240), p.PixRect())

	p.SetDefaultPaddings()
	assert.Equal(t, image.Rect(40, 20, 380, 240), p.PixRect())

	p.Resize(600, 500)
	assert.Equal(t, image.Rect(40, 20, 580, 440), p.PixRect())
}

func TestPlotLimits(t *testing.T) {
	p := New(400, 300)

	p.SetLimits(10, -10, 5, 0)
	assert.Equal(t, Rect{-10, 0, 20, 5}, p.DataRect())
	assert.Equal(t, []float64{-10, -5, 0, 5, 10}, p.Axis(BottomAxis).MajorTickMarks())

	p.SetLimits(3, 3, 0, 1)
	assert.Equal(t, Rect{2.5, 0, 1, 1}, p.DataRect())

	// Beyond 2^53 a half-unit widening is lost; the width must stay positive.
	p.SetLimits(1e17, 1e17, 0, 1)
	assert.Greater(t, p.DataRect().W, 0.0)
	assert.NotPanics(t, func() { p.Mapper() })

	p.SetSecondaryLimits(0, 12, 0, 120)
	assert.True(t, p.HasSecondaryLimits())
	assert.Equal(t, []float64{0, 4, 8, 12}, p.Axis(TopAxis).MajorTickMarks())
	assert.Equal(t, []float64{0, 40, 80, 120}, p.Axis(RightAxis).MajorTickMarks())

	// Primary changes leave the secondary axes alone.
	p.SetLimits(0, 1, 0, 1)
	assert.Equal(t, []float64{0, 4, 8, 12}, p.Axis(TopAxis).MajorTickMarks())

	p.ClearSecondaryLimits()
	assert.Equal(t, p.Axis(BottomAxis).MajorTickMarks(), p.Axis(TopAxis).MajorTickMarks())
	assert.Equal(t, p.DataRect(), p.SecondaryDataRect())
}

func TestPlotObjects(t *testing.T) {
	p := New(400, 300)
	a := NewObject(color.White, Points, 4, Circle)
	b := NewObject(color.White, Lines, 1, NoPoints)
	p.AddObjects(a, nil, b)
	require.Len(t, p.Objects(), 2)

	c := NewObject(color.White, Bars, 0, NoPoints)
	require.NoError(t, p.ReplaceObject(1, c))
	assert.Same(t, c, p.Objects()[1])
	assert.ErrorIs(t, p.ReplaceObject(2, c), ErrIndexOutOfRange)
	assert.Error(t, p.ReplaceObject(0, nil))

	p.RemoveAllObjects()
	assert.Empty(t, p.Objects())
}

func TestPlotResetPlot(t *testing.T) {
	p := New(400, 300)
	p.AddObject(NewObject(nil, Points, 4, Circle))
	p.SetLimits(-5, 5, -5, 5)
	p.SetSecondaryLimits(0, 1, 0, 1)
	p.Axis(LeftAxis).SetLabel("y")
	p.Axis(LeftAxis).SetTickLabelFormat('f', 0, 1)

	p.ResetPlot()
	assert.Empty(t, p.Objects())
	assert.Equal(t, Rect{0, 0, 1, 1}, p.DataRect())
	assert.False(t, p.HasSecondaryLimits())
	assert.Empty(t, p.Axis(LeftAxis).Label())
	assert.Equal(t, DefaultLabelFormat, p.Axis(LeftAxis).Format())
}

func TestPlotMapToPixel(t *testing.T) {
	p := New(400, 300)
	p.SetLimits(0, 10, 0, 10)
	assert.Equal(t, Point{40, 260}, p.MapToPixel(Point{0, 0}))
	assert.Equal(t, Point{380, 20}, p.MapToPixel(Point{10, 10}))

	tiny := New(30, 30)
	assert.True(t, tiny.PixRect().Empty())
	ie := catchInvariant(func() { tiny.MapToPixel(Point{0, 0}) })
	require.NotNil(t, ie)
	assert.Equal(t, "Plot.Mapper", ie.Op)

	// Paddings wider than the surface leave no plot area, even when
	// the opposite corners would still span a rectangle.
	narrow := New(400, 300)
	narrow.SetLeftPadding(300)
	narrow.SetRightPadding(300)
	assert.True(t, narrow.PixRect().Empty())
	assert.Nil(t, narrow.PointsNear(Point{200, 150}, 10))
	require.NotNil(t, catchInvariant(func() { narrow.Mapper() }))
}

func TestPlotNonFiniteLimits(t *testing.T) {
	tests := []struct {
		name           string
		x1, x2, y1, y2 float64
	}{
		{"infinite", 0, math.Inf(1), 0, 10},
		{"nan", math.NaN(), 1, 0, 10},
		{"overflowing extent", -math.MaxFloat64, math.MaxFloat64, 0, 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := New(400, 300)
			o := NewObject(nil, Points, 4, Circle)
			o.AddXY(5, 5, "x", 0)
			p.AddObject(o)
			p.SetLimits(tt.x1, tt.x2, tt.y1, tt.y2)

			ie := catchInvariant(func() { p.MapToPixel(Point{5, 5}) })
			require.NotNil(t, ie)
			assert.Equal(t, "Plot.Mapper", ie.Op)
			assert.Contains(t, ie.Error(), "non-finite limits")

			rec := &recorder{}
			assert.NotPanics(t, func() { p.Draw(rec) })
			assert.Len(t, rec.ops, 1)
			assert.Nil(t, p.PointsNear(Point{40, 140}, 10))

			p.SetLimits(0, 10, 0, 10)
			assert.NotPanics(t, func() { p.MapToPixel(Point{5, 5}) })
		})
	}
}

func TestPlotPointsNear(t *testing.T) {
	p := New(400, 300)
	p.SetLimits(0, 10, 0, 10)
	o := NewObject(nil, Points, 4, Circle)
	o.AddXY(0, 0, "origin", 0)
	o.AddXY(5, 5, "mid", 0)
	p.AddObject(o)

	near := p.PointsNear(Point{42, 258}, 5)
	require.Len(t, near, 1)
	assert.Equal(t, 0, near[0].Object)
	assert.Equal(t, 0, near[0].Index)
	assert.Equal(t, "origin", near[0].Point.Label)

	assert.Empty(t, p.PointsNear(Point{300, 100}, 5))
}

func TestDrawLabelsComeLast(t *testing.T) {
	p := New(400, 300)
	p.SetLimits(0, 10, 0, 10)
	p.SetShowGrid(true)

	pts := NewObject(nil, Points|Lines, 6, Square)
	pts.AddXY(1, 1, "alpha", 0)
	pts.AddXY(5, 8, "beta", 0)
	bars := NewObject(nil, Bars, 0, NoPoints)
	bars.AddXY(7, 3, "gamma", 1)
	p.AddObjects(pts, bars)

	rec := &recorder{}
	p.Draw(rec)

	assert.Equal(t, "fill", rec.ops[0].kind)
	assert.Equal(t, 2, rec.count("marker"))

	idx := rec.texts()
	lastGeometry := 0
	for i, o := range rec.ops {
		if o.kind == "marker" || o.kind == "stroke" || (o.kind == "fill" && i > 0) {
			lastGeometry = i
		}
	}
	for _, label := range []string{"alpha", "beta", "gamma"} {
		i, ok := idx[label]
		require.True(t, ok, "label %q drawn", label)
		assert.Greater(t, i, lastGeometry, "label %q drawn before geometry", label)
	}
	// Series order, then point order.
	assert.Less(t, idx["alpha"], idx["beta"])
	assert.Less(t, idx["beta"], idx["gamma"])
	assert.Greater(t, p.Mask().Occupied(), 0)
}

func TestDrawIsRepeatable(t *testing.T) {
	p := New(400, 300)
	p.SetLimits(0, 10, 0, 10)
	o := NewObject(nil, Points, 6, Circle)
	for i := 0; i < 10; i++ {
		o.AddXY(float64(i), float64(i%3)+4, "pt", 0)
	}
	p.AddObject(o)

	first, second := &recorder{}, &recorder{}
	p.Draw(first)
	p.Draw(second)
	assert.Equal(t, first.ops, second.ops)
}

func TestDrawSkipsLabelsOutsidePlotArea(t *testing.T) {
	p := New(400, 300)
	p.SetLimits(0, 1, 0, 1)
	o := NewObject(nil, Points, 4, Circle)
	o.AddXY(5, 5, "outside", 0)
	o.AddXY(0.5, 0.5, "inside", 0)
	p.AddObject(o)

	rec := &recorder{}
	p.Draw(rec)
	idx := rec.texts()
	assert.Contains(t, idx, "inside")
	assert.NotContains(t, idx, "outside")
	assert.Equal(t, 1, rec.count("marker"))
}

func TestDrawEmptyPlotArea(t *testing.T) {
	p := New(30, 30)
	o := NewObject(nil, Points, 4, Circle)
	o.AddXY(0.5, 0.5, "x", 0)
	p.AddObject(o)

	rec := &recorder{}
	assert.NotPanics(t, func() { p.Draw(rec) })
	require.Len(t, rec.ops, 1)
	assert.Equal(t, "fill", rec.ops[0].kind)
}

func TestDrawLetterMarkers(t *testing.T) {
	p := New(400, 300)
	o := NewObject(nil, Points, 8, Letter)
	o.AddXY(0.5, 0.5, "Quux", 0)
	p.AddObject(o)

	rec := &recorder{}
	p.Draw(rec)
	idx := rec.texts()
	assert.Contains(t, idx, "Q")
	assert.NotContains(t, idx, "Quux")
	assert.Zero(t, rec.count("marker"))
}
