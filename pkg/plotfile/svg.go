// Native SVG rendering of plots without external tools.

package plotfile

import (
	"fmt"
	"html"
	"image/color"
	"io"
	"math"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/ha1tch/plot-toolkit/pkg/plot"
)

// SVGOptions controls native SVG rendering.
type SVGOptions struct {
	FontSize   float64 // base font size in pixels
	FontFamily string
}

// DefaultSVGOptions returns sensible defaults.
func DefaultSVGOptions() SVGOptions {
	return SVGOptions{
		FontSize:   11,
		FontFamily: "sans-serif",
	}
}

var _ plot.Canvas = (*SVGCanvas)(nil)

// SVGCanvas collects drawing operations as SVG elements. Text is measured
// with a fixed per-cell advance since no font is loaded.
type SVGCanvas struct {
	sb     strings.Builder
	width  int
	height int
	opts   SVGOptions
}

// NewSVGCanvas creates an empty width x height document.
func NewSVGCanvas(width, height int, opts SVGOptions) *SVGCanvas {
	if opts.FontSize <= 0 {
		opts.FontSize = 11
	}
	if opts.FontFamily == "" {
		opts.FontFamily = "sans-serif"
	}
	return &SVGCanvas{width: width, height: height, opts: opts}
}

// String returns the complete SVG document.
func (sc *SVGCanvas) String() string {
	var out strings.Builder
	out.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<style>
  text { font-family: %s; font-size: %.1fpx; }
</style>
`, sc.width, sc.height, sc.width, sc.height, html.EscapeString(sc.opts.FontFamily), sc.opts.FontSize))
	out.WriteString(sc.sb.String())
	out.WriteString("</svg>\n")
	return out.String()
}

// GenerateSVG paints p and returns it as an SVG document.
func GenerateSVG(p *plot.Plot, opts SVGOptions) string {
	width, height := p.Size()
	sc := NewSVGCanvas(width, height, opts)
	p.Draw(sc)
	return sc.String()
}

// RenderSVG paints p and writes it as SVG.
func RenderSVG(p *plot.Plot, w io.Writer, opts SVGOptions) error {
	_, err := io.WriteString(w, GenerateSVG(p, opts))
	return err
}

// paint formats c as an SVG paint attribute, with opacity when c is not opaque.
func paint(attr string, c color.Color) string {
	if c == nil {
		return attr + `="none"`
	}
	s := fmt.Sprintf(`%s="%s"`, attr, FormatColor(c))
	if _, _, _, a := c.RGBA(); a < 0xffff {
		s += fmt.Sprintf(` %s-opacity="%.3f"`, attr, float64(a)/0xffff)
	}
	return s
}

func strokeWidth(p plot.Pen) float64 {
	return math.Max(p.Width, 1)
}

// FillRect implements plot.Canvas.
func (sc *SVGCanvas) FillRect(r plot.Rect, b plot.Brush) {
	if b.Color == nil {
		return
	}
	r = r.Normalized()
	sc.sb.WriteString(fmt.Sprintf(`<rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" %s/>
`, r.X, r.Y, r.W, r.H, paint("fill", b.Color)))
}

// StrokeRect implements plot.Canvas.
func (sc *SVGCanvas) StrokeRect(r plot.Rect, p plot.Pen) {
	if p.Color == nil {
		return
	}
	r = r.Normalized()
	sc.sb.WriteString(fmt.Sprintf(`<rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="none" %s stroke-width="%.1f"/>
`, r.X, r.Y, r.W, r.H, paint("stroke", p.Color), strokeWidth(p)))
}

// DrawLine implements plot.Canvas.
func (sc *SVGCanvas) DrawLine(p1, p2 plot.Point, p plot.Pen) {
	if p.Color == nil {
		return
	}
	sc.sb.WriteString(fmt.Sprintf(`<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" %s stroke-width="%.1f"/>
`, p1.X, p1.Y, p2.X, p2.Y, paint("stroke", p.Color), strokeWidth(p)))
}

// DrawMarker implements plot.Canvas.
func (sc *SVGCanvas) DrawMarker(at plot.Point, style plot.PointStyle, size float64, p plot.Pen, b plot.Brush) {
	r := size / 2
	switch style {
	case plot.Asterisk:
		for _, seg := range asteriskSegments(at.X, at.Y, r) {
			sc.DrawLine(seg[0], seg[1], p)
		}
	case plot.Circle:
		sc.sb.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="%.1f" %s %s stroke-width="%.1f"/>
`, at.X, at.Y, r, paint("fill", b.Color), paint("stroke", p.Color), strokeWidth(p)))
	default:
		pts := markerPolygon(style, at.X, at.Y, r)
		if pts == nil {
			return
		}
		var coords []string
		for _, pt := range pts {
			coords = append(coords, fmt.Sprintf("%.1f,%.1f", pt.X, pt.Y))
		}
		sc.sb.WriteString(fmt.Sprintf(`<polygon points="%s" %s %s stroke-width="%.1f"/>
`, strings.Join(coords, " "), paint("fill", b.Color), paint("stroke", p.Color), strokeWidth(p)))
	}
}

// DrawText implements plot.Canvas.
func (sc *SVGCanvas) DrawText(s string, at plot.Point, st plot.TextStyle) {
	if s == "" || st.Color == nil {
		return
	}
	sz := sc.TextSize(s)
	baseline := sc.opts.FontSize * 0.9

	if !st.Vertical {
		left := at.X - st.AnchorX*sz.W
		top := at.Y - st.AnchorY*sz.H
		sc.sb.WriteString(fmt.Sprintf(`<text x="%.1f" y="%.1f" %s>%s</text>
`, left, top+baseline, paint("fill", st.Color), html.EscapeString(s)))
		return
	}

	// The rotated box is sz.H wide and sz.W tall; text runs bottom to top.
	left := at.X - st.AnchorX*sz.H
	top := at.Y - st.AnchorY*sz.W
	sc.sb.WriteString(fmt.Sprintf(`<text transform="translate(%.1f,%.1f) rotate(-90)" x="0" y="%.1f" %s>%s</text>
`, left, top+sz.W, baseline, paint("fill", st.Color), html.EscapeString(s)))
}

// TextSize implements plot.Canvas.
func (sc *SVGCanvas) TextSize(s string) plot.Size {
	return plot.Size{
		W: float64(runewidth.StringWidth(s)) * sc.opts.FontSize * 0.6,
		H: sc.opts.FontSize * 1.2,
	}
}
