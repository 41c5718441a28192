// Native PNG rendering of plots using Go's image packages.

package plotfile

import (
	"image"
	"image/color"
	"image/png"
	"io"
	"math"
	"sync"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/ha1tch/plot-toolkit/pkg/plot"
)

// RasterOptions configures PNG rendering.
type RasterOptions struct {
	FontSize    float64 // points, at 72 DPI
	Supersample int     // render scale when antialiasing; 1 disables it
}

// DefaultRasterOptions returns sensible defaults for PNG rendering.
func DefaultRasterOptions() RasterOptions {
	return RasterOptions{
		FontSize:    11,
		Supersample: 4,
	}
}

var goRegular = sync.OnceValues(func() (*opentype.Font, error) {
	return opentype.Parse(goregular.TTF)
})

var _ plot.Canvas = (*RasterCanvas)(nil)

// RasterCanvas draws onto an RGBA image. Coordinates passed in are plot
// pixels; the canvas scales them by its supersampling factor.
type RasterCanvas struct {
	img   *image.RGBA
	scale float64
	face  font.Face
}

// NewRasterCanvas creates a canvas for a width x height plot rendered
// at scale times the size.
func NewRasterCanvas(width, height, scale int, fontSize float64) (*RasterCanvas, error) {
	if scale < 1 {
		scale = 1
	}
	fnt, err := goRegular()
	if err != nil {
		return nil, err
	}
	face, err := opentype.NewFace(fnt, &opentype.FaceOptions{
		Size:    fontSize * float64(scale),
		DPI:     72,
		Hinting: font.HintingNone, // supersampling smooths instead
	})
	if err != nil {
		return nil, err
	}
	return &RasterCanvas{
		img:   image.NewRGBA(image.Rect(0, 0, width*scale, height*scale)),
		scale: float64(scale),
		face:  face,
	}, nil
}

// Image returns the full-resolution image.
func (rc *RasterCanvas) Image() *image.RGBA { return rc.img }

// RenderPNG paints p and encodes it as PNG. Antialiased plots are drawn
// at Supersample times the size and downsampled.
func RenderPNG(p *plot.Plot, w io.Writer, opts RasterOptions) error {
	img, err := RenderImage(p, opts)
	if err != nil {
		return err
	}
	return png.Encode(w, img)
}

// RenderImage paints p into a new image of the plot's size.
func RenderImage(p *plot.Plot, opts RasterOptions) (*image.RGBA, error) {
	width, height := p.Size()
	scale := 1
	if p.Antialiasing() && opts.Supersample > 1 {
		scale = opts.Supersample
	}
	rc, err := NewRasterCanvas(width, height, scale, opts.FontSize)
	if err != nil {
		return nil, err
	}
	p.Draw(rc)
	if scale == 1 {
		return rc.img, nil
	}

	// Downsample to target size using high-quality interpolation
	final := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(final, final.Bounds(), rc.img, rc.img.Bounds(), draw.Over, nil)
	return final, nil
}

func (rc *RasterCanvas) scaled(r plot.Rect) image.Rectangle {
	s := rc.scale
	return image.Rect(
		int(math.Round(r.X*s)), int(math.Round(r.Y*s)),
		int(math.Round(r.Right()*s)), int(math.Round(r.Bottom()*s)),
	)
}

// FillRect implements plot.Canvas.
func (rc *RasterCanvas) FillRect(r plot.Rect, b plot.Brush) {
	if b.Color == nil {
		return
	}
	draw.Draw(rc.img, rc.scaled(r.Normalized()), image.NewUniform(b.Color), image.Point{}, draw.Over)
}

// StrokeRect implements plot.Canvas.
func (rc *RasterCanvas) StrokeRect(r plot.Rect, p plot.Pen) {
	r = r.Normalized()
	tl, tr := plot.Point{X: r.X, Y: r.Y}, plot.Point{X: r.Right(), Y: r.Y}
	br, bl := plot.Point{X: r.Right(), Y: r.Bottom()}, plot.Point{X: r.X, Y: r.Bottom()}
	rc.DrawLine(tl, tr, p)
	rc.DrawLine(tr, br, p)
	rc.DrawLine(br, bl, p)
	rc.DrawLine(bl, tl, p)
}

// DrawLine implements plot.Canvas.
func (rc *RasterCanvas) DrawLine(p1, p2 plot.Point, p plot.Pen) {
	if p.Color == nil {
		return
	}
	width := p.Width
	if width <= 0 {
		width = 1
	}
	s := rc.scale
	rc.line(p1.X*s, p1.Y*s, p2.X*s, p2.Y*s, width*s, p.Color)
}

// line draws a thick line by stamping perpendicular offsets along it.
func (rc *RasterCanvas) line(x1, y1, x2, y2, thickness float64, c color.Color) {
	img := rc.img
	dx := x2 - x1
	dy := y2 - y1
	steps := math.Max(math.Abs(dx), math.Abs(dy))
	if steps < 1 {
		steps = 1
	}

	halfThick := thickness / 2

	dist := math.Sqrt(dx*dx + dy*dy)
	if dist < 1 {
		for ty := -halfThick; ty <= halfThick; ty++ {
			for tx := -halfThick; tx <= halfThick; tx++ {
				img.Set(int(x1+tx), int(y1+ty), c)
			}
		}
		return
	}

	perpX := -dy / dist
	perpY := dx / dist

	for i := 0.0; i <= steps; i++ {
		t := i / steps
		cx := x1 + dx*t
		cy := y1 + dy*t

		for offset := -halfThick; offset <= halfThick; offset += 0.5 {
			img.Set(int(cx+perpX*offset), int(cy+perpY*offset), c)
		}
	}
}

// DrawMarker implements plot.Canvas.
func (rc *RasterCanvas) DrawMarker(at plot.Point, style plot.PointStyle, size float64, p plot.Pen, b plot.Brush) {
	s := rc.scale
	cx, cy, r := at.X*s, at.Y*s, size*s/2
	thick := math.Max(p.Width, 1) * s

	if style == plot.Asterisk {
		for _, seg := range asteriskSegments(cx, cy, r) {
			rc.line(seg[0].X, seg[0].Y, seg[1].X, seg[1].Y, thick, p.Color)
		}
		return
	}
	pts := markerPolygon(style, cx, cy, r)
	if pts == nil {
		return
	}
	rc.fillPolygon(pts, b.Color)
	rc.strokePolygon(pts, thick, p.Color)
}

func (rc *RasterCanvas) strokePolygon(pts []plot.Point, thickness float64, c color.Color) {
	if c == nil {
		return
	}
	for i := range pts {
		a, b := pts[i], pts[(i+1)%len(pts)]
		rc.line(a.X, a.Y, b.X, b.Y, thickness, c)
	}
}

// fillPolygon fills pts (image coordinates) using the even-odd rule,
// sampling pixel centres.
func (rc *RasterCanvas) fillPolygon(pts []plot.Point, c color.Color) {
	if c == nil || len(pts) < 3 {
		return
	}
	minX, minY, maxX, maxY := pts[0].X, pts[0].Y, pts[0].X, pts[0].Y
	for _, p := range pts[1:] {
		minX, maxX = math.Min(minX, p.X), math.Max(maxX, p.X)
		minY, maxY = math.Min(minY, p.Y), math.Max(maxY, p.Y)
	}
	for y := int(math.Floor(minY)); y <= int(math.Ceil(maxY)); y++ {
		for x := int(math.Floor(minX)); x <= int(math.Ceil(maxX)); x++ {
			if insidePolygon(pts, float64(x)+0.5, float64(y)+0.5) {
				rc.img.Set(x, y, c)
			}
		}
	}
}

// DrawText implements plot.Canvas.
func (rc *RasterCanvas) DrawText(s string, at plot.Point, st plot.TextStyle) {
	if s == "" || st.Color == nil {
		return
	}
	width := font.MeasureString(rc.face, s).Ceil()
	metrics := rc.face.Metrics()
	ascent, height := metrics.Ascent.Ceil(), metrics.Height.Ceil()

	x, y := at.X*rc.scale, at.Y*rc.scale
	if !st.Vertical {
		left := int(math.Round(x - st.AnchorX*float64(width)))
		top := int(math.Round(y - st.AnchorY*float64(height)))
		d := &font.Drawer{
			Dst:  rc.img,
			Src:  image.NewUniform(st.Color),
			Face: rc.face,
			Dot:  fixed.Point26_6{X: fixed.I(left), Y: fixed.I(top + ascent)},
		}
		d.DrawString(s)
		return
	}

	// Render horizontally, then rotate into place.
	tmp := image.NewRGBA(image.Rect(0, 0, width, height))
	d := &font.Drawer{
		Dst:  tmp,
		Src:  image.NewUniform(st.Color),
		Face: rc.face,
		Dot:  fixed.Point26_6{X: 0, Y: fixed.I(ascent)},
	}
	d.DrawString(s)
	rot := rotateCCW(tmp)
	left := int(math.Round(x - st.AnchorX*float64(height)))
	top := int(math.Round(y - st.AnchorY*float64(width)))
	draw.Draw(rc.img, rot.Bounds().Add(image.Pt(left, top)), rot, image.Point{}, draw.Over)
}

// TextSize implements plot.Canvas.
func (rc *RasterCanvas) TextSize(s string) plot.Size {
	w := font.MeasureString(rc.face, s)
	h := rc.face.Metrics().Height
	return plot.Size{W: float64(w.Ceil()) / rc.scale, H: float64(h.Ceil()) / rc.scale}
}

// rotateCCW returns src rotated 90 degrees counter-clockwise.
func rotateCCW(src *image.RGBA) *image.RGBA {
	b := src.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dy(), b.Dx()))
	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			dst.SetRGBA(y, b.Dx()-1-x, src.RGBAAt(b.Min.X+x, b.Min.Y+y))
		}
	}
	return dst
}
