// Anti-aliased PNG rendering through the gg 2D graphics library.

package plotfile

import (
	"image"
	"io"
	"math"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/ha1tch/plot-toolkit/pkg/plot"
)

var _ plot.Canvas = (*VectorCanvas)(nil)

// VectorCanvas draws onto a gg.Context. Shapes are rasterised with
// gg's analytic anti-aliasing, so no supersampling is needed.
type VectorCanvas struct {
	dc   *gg.Context
	face text.Face
}

// NewVectorCanvas creates a width x height canvas. Close releases it.
func NewVectorCanvas(width, height int, fontSize float64) (*VectorCanvas, error) {
	src, err := text.NewFontSource(goregular.TTF)
	if err != nil {
		return nil, err
	}
	face := src.Face(fontSize)
	dc := gg.NewContext(width, height)
	dc.SetFont(face)
	return &VectorCanvas{dc: dc, face: face}, nil
}

// Close releases the underlying context.
func (vc *VectorCanvas) Close() error { return vc.dc.Close() }

// Image returns the rendered image.
func (vc *VectorCanvas) Image() image.Image { return vc.dc.Image() }

// EncodePNG writes the rendered image as PNG.
func (vc *VectorCanvas) EncodePNG(w io.Writer) error { return vc.dc.EncodePNG(w) }

// RenderVectorPNG paints p with the gg engine and encodes it as PNG.
func RenderVectorPNG(p *plot.Plot, w io.Writer, fontSize float64) error {
	width, height := p.Size()
	vc, err := NewVectorCanvas(width, height, fontSize)
	if err != nil {
		return err
	}
	defer vc.Close()

	p.Draw(vc)
	return vc.EncodePNG(w)
}

// FillRect implements plot.Canvas.
func (vc *VectorCanvas) FillRect(r plot.Rect, b plot.Brush) {
	if b.Color == nil {
		return
	}
	r = r.Normalized()
	vc.dc.SetColor(b.Color)
	vc.dc.DrawRectangle(r.X, r.Y, r.W, r.H)
	_ = vc.dc.Fill()
}

// StrokeRect implements plot.Canvas.
func (vc *VectorCanvas) StrokeRect(r plot.Rect, p plot.Pen) {
	if !vc.setPen(p) {
		return
	}
	r = r.Normalized()
	vc.dc.DrawRectangle(r.X, r.Y, r.W, r.H)
	_ = vc.dc.Stroke()
}

func (vc *VectorCanvas) setPen(p plot.Pen) bool {
	if p.Color == nil {
		return false
	}
	vc.dc.SetColor(p.Color)
	vc.dc.SetLineWidth(math.Max(p.Width, 1))
	return true
}

// DrawLine implements plot.Canvas.
func (vc *VectorCanvas) DrawLine(p1, p2 plot.Point, p plot.Pen) {
	if !vc.setPen(p) {
		return
	}
	vc.dc.DrawLine(p1.X, p1.Y, p2.X, p2.Y)
	_ = vc.dc.Stroke()
}

// DrawMarker implements plot.Canvas.
func (vc *VectorCanvas) DrawMarker(at plot.Point, style plot.PointStyle, size float64, p plot.Pen, b plot.Brush) {
	r := size / 2
	if style == plot.Asterisk {
		if !vc.setPen(p) {
			return
		}
		for _, seg := range asteriskSegments(at.X, at.Y, r) {
			vc.dc.DrawLine(seg[0].X, seg[0].Y, seg[1].X, seg[1].Y)
		}
		_ = vc.dc.Stroke()
		return
	}

	tracePath := func() bool {
		switch style {
		case plot.Circle:
			vc.dc.DrawCircle(at.X, at.Y, r)
		case plot.Triangle:
			vc.dc.DrawRegularPolygon(3, at.X, at.Y, r, -math.Pi/2)
		case plot.Pentagon:
			vc.dc.DrawRegularPolygon(5, at.X, at.Y, r, -math.Pi/2)
		case plot.Hexagon:
			vc.dc.DrawRegularPolygon(6, at.X, at.Y, r, -math.Pi/2)
		default:
			pts := markerPolygon(style, at.X, at.Y, r)
			if pts == nil {
				return false
			}
			vc.dc.MoveTo(pts[0].X, pts[0].Y)
			for _, pt := range pts[1:] {
				vc.dc.LineTo(pt.X, pt.Y)
			}
			vc.dc.ClosePath()
		}
		return true
	}

	if b.Color != nil && tracePath() {
		vc.dc.SetColor(b.Color)
		_ = vc.dc.Fill()
	}
	if vc.setPen(p) && tracePath() {
		_ = vc.dc.Stroke()
	}
}

// DrawText implements plot.Canvas.
func (vc *VectorCanvas) DrawText(s string, at plot.Point, st plot.TextStyle) {
	if s == "" || st.Color == nil {
		return
	}
	w, h := vc.dc.MeasureString(s)
	ascent := vc.face.Metrics().Ascent

	if !st.Vertical {
		vc.dc.SetColor(st.Color)
		left := at.X - st.AnchorX*w
		top := at.Y - st.AnchorY*h
		vc.dc.DrawString(s, left, top+ascent)
		return
	}

	// Render horizontally, then rotate into place.
	tmp := image.NewRGBA(image.Rect(0, 0, int(math.Ceil(w)), int(math.Ceil(h))))
	text.Draw(tmp, s, vc.face, 0, ascent, st.Color)
	rot := rotateCCW(tmp)
	left := at.X - st.AnchorX*h
	top := at.Y - st.AnchorY*w
	vc.dc.DrawImage(gg.ImageBufFromImage(rot), math.Round(left), math.Round(top))
}

// TextSize implements plot.Canvas.
func (vc *VectorCanvas) TextSize(s string) plot.Size {
	w, h := vc.dc.MeasureString(s)
	return plot.Size{W: w, H: h}
}
