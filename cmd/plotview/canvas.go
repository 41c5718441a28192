package main

import (
	"image/color"
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/ha1tch/plot-toolkit/pkg/plot"
)

// cellCanvas paints a plot onto terminal cells, one cell per plot pixel.
// Cells keep their background when something is drawn over them.
type cellCanvas struct {
	screen tcell.Screen
	w, h   int
}

var _ plot.Canvas = (*cellCanvas)(nil)

func newCellCanvas(s tcell.Screen, w, h int) *cellCanvas {
	return &cellCanvas{screen: s, w: w, h: h}
}

// Marker runes by point style.
var markerRunes = map[plot.PointStyle]rune{
	plot.Circle:   '●',
	plot.Triangle: '▲',
	plot.Square:   '■',
	plot.Pentagon: '⬟',
	plot.Hexagon:  '⬢',
	plot.Asterisk: '*',
	plot.Star:     '★',
}

func cellColor(c color.Color) tcell.Color {
	if c == nil {
		return tcell.ColorDefault
	}
	return tcell.FromImageColor(c)
}

func (cc *cellCanvas) inside(x, y int) bool {
	return x >= 0 && y >= 0 && x < cc.w && y < cc.h
}

// set draws r at (x, y) in fg, keeping the cell's background.
func (cc *cellCanvas) set(x, y int, r rune, fg tcell.Color) {
	if !cc.inside(x, y) {
		return
	}
	_, _, st, _ := cc.screen.GetContent(x, y)
	_, bg, _ := st.Decompose()
	cc.screen.SetContent(x, y, r, nil, tcell.StyleDefault.Foreground(fg).Background(bg))
}

// FillRect implements plot.Canvas.
func (cc *cellCanvas) FillRect(r plot.Rect, b plot.Brush) {
	if b.Color == nil {
		return
	}
	r = r.Normalized()
	st := tcell.StyleDefault.Background(cellColor(b.Color))
	x0, y0 := int(math.Round(r.X)), int(math.Round(r.Y))
	x1, y1 := int(math.Round(r.Right())), int(math.Round(r.Bottom()))
	for y := y0; y < max(y1, y0+1); y++ {
		for x := x0; x < max(x1, x0+1); x++ {
			if cc.inside(x, y) {
				cc.screen.SetContent(x, y, ' ', nil, st)
			}
		}
	}
}

// StrokeRect implements plot.Canvas.
func (cc *cellCanvas) StrokeRect(r plot.Rect, p plot.Pen) {
	if p.Color == nil {
		return
	}
	r = r.Normalized()
	fg := cellColor(p.Color)
	x0, y0 := int(math.Round(r.X)), int(math.Round(r.Y))
	x1, y1 := int(math.Round(r.Right())), int(math.Round(r.Bottom()))
	if x1 <= x0 || y1 <= y0 {
		cc.DrawLine(plot.Point{X: r.X, Y: r.Y}, plot.Point{X: r.Right(), Y: r.Bottom()}, p)
		return
	}
	for x := x0 + 1; x < x1; x++ {
		cc.set(x, y0, '─', fg)
		cc.set(x, y1, '─', fg)
	}
	for y := y0 + 1; y < y1; y++ {
		cc.set(x0, y, '│', fg)
		cc.set(x1, y, '│', fg)
	}
	cc.set(x0, y0, '┌', fg)
	cc.set(x1, y0, '┐', fg)
	cc.set(x0, y1, '└', fg)
	cc.set(x1, y1, '┘', fg)
}

// lineRune picks a box-drawing rune matching the direction of a segment.
func lineRune(dx, dy float64) rune {
	adx, ady := math.Abs(dx), math.Abs(dy)
	switch {
	case ady <= adx/3:
		return '─'
	case adx <= ady/3:
		return '│'
	case (dx > 0) == (dy > 0):
		return '╲'
	}
	return '╱'
}

// DrawLine implements plot.Canvas. Zero-length segments draw nothing, so
// zero-sized ticks leave the frame intact.
func (cc *cellCanvas) DrawLine(p1, p2 plot.Point, p plot.Pen) {
	if p.Color == nil {
		return
	}
	fg := cellColor(p.Color)
	dx, dy := p2.X-p1.X, p2.Y-p1.Y
	r := lineRune(dx, dy)
	steps := int(math.Ceil(math.Max(math.Abs(dx), math.Abs(dy))))
	if steps == 0 {
		return // shorter than a cell
	}
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		cc.set(int(math.Round(p1.X+dx*t)), int(math.Round(p1.Y+dy*t)), r, fg)
	}
}

// DrawMarker implements plot.Canvas.
func (cc *cellCanvas) DrawMarker(at plot.Point, style plot.PointStyle, size float64, p plot.Pen, b plot.Brush) {
	r, ok := markerRunes[style]
	if !ok {
		return
	}
	c := b.Color
	if c == nil {
		c = p.Color
	}
	cc.set(int(math.Round(at.X)), int(math.Round(at.Y)), r, cellColor(c))
}

// DrawText implements plot.Canvas. Vertical text runs top to bottom, one
// rune per row.
func (cc *cellCanvas) DrawText(s string, at plot.Point, st plot.TextStyle) {
	if s == "" || st.Color == nil {
		return
	}
	fg := cellColor(st.Color)
	sz := cc.TextSize(s)
	if st.Vertical {
		runes := []rune(s)
		x := int(math.Round(at.X - st.AnchorX*sz.H))
		y := int(math.Round(at.Y - st.AnchorY*float64(len(runes))))
		for i, r := range runes {
			cc.set(x, y+i, r, fg)
		}
		return
	}
	x := int(math.Round(at.X - st.AnchorX*sz.W))
	y := int(math.Round(at.Y - st.AnchorY*sz.H))
	for _, r := range s {
		cc.set(x, y, r, fg)
		x += runewidth.RuneWidth(r)
	}
}

// TextSize implements plot.Canvas.
func (cc *cellCanvas) TextSize(s string) plot.Size {
	return plot.Size{W: float64(runewidth.StringWidth(s)), H: 1}
}
