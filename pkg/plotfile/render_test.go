package plotfile

import (
	"bytes"
	"image/color"
	"image/png"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ha1tch/plot-toolkit/pkg/plot"
)

func demoPlot(t *testing.T, n int) *plot.Plot {
	t.Helper()
	doc, err := Demo(n)
	require.NoError(t, err)
	doc.Width, doc.Height = 200, 160
	p, err := doc.Build()
	require.NoError(t, err)
	return p
}

func TestRenderPNG(t *testing.T) {
	for _, aa := range []bool{false, true} {
		p := demoPlot(t, 6)
		p.SetAntialiasing(aa)

		var buf bytes.Buffer
		require.NoError(t, RenderPNG(p, &buf, DefaultRasterOptions()))

		img, err := png.Decode(&buf)
		require.NoError(t, err)
		assert.Equal(t, 200, img.Bounds().Dx())
		assert.Equal(t, 160, img.Bounds().Dy())
	}
}

func TestRenderImageBackground(t *testing.T) {
	p := plot.New(80, 60)
	p.SetBackgroundColor(color.RGBA{0, 0, 255, 255})

	img, err := RenderImage(p, RasterOptions{FontSize: 9, Supersample: 1})
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{0, 0, 255, 255}, img.RGBAAt(1, 1))
}

func TestRasterCanvasPrimitives(t *testing.T) {
	rc, err := NewRasterCanvas(40, 40, 1, 9)
	require.NoError(t, err)
	red := color.RGBA{255, 0, 0, 255}

	rc.FillRect(plot.Rect{X: 0, Y: 0, W: 10, H: 10}, plot.Brush{Color: red})
	assert.Equal(t, red, rc.Image().RGBAAt(5, 5))
	assert.Equal(t, color.RGBA{}, rc.Image().RGBAAt(15, 15))

	rc.DrawMarker(plot.Point{X: 30, Y: 30}, plot.Square, 6, plot.Pen{Color: red, Width: 1}, plot.Brush{Color: red})
	assert.Equal(t, red, rc.Image().RGBAAt(30, 30))

	sz := rc.TextSize("hello")
	assert.Greater(t, sz.W, 0.0)
	assert.Greater(t, sz.H, 0.0)
	assert.Greater(t, rc.TextSize("hello world").W, sz.W)
}

func TestRotateCCW(t *testing.T) {
	rc, err := NewRasterCanvas(3, 2, 1, 9)
	require.NoError(t, err)
	mark := color.RGBA{1, 2, 3, 255}
	rc.Image().SetRGBA(2, 0, mark) // top-right

	rot := rotateCCW(rc.Image())
	assert.Equal(t, 2, rot.Bounds().Dx())
	assert.Equal(t, 3, rot.Bounds().Dy())
	assert.Equal(t, mark, rot.RGBAAt(0, 0)) // top-left after rotation
}

func TestRenderVectorPNG(t *testing.T) {
	p := demoPlot(t, 4)

	var buf bytes.Buffer
	require.NoError(t, RenderVectorPNG(p, &buf, 10))

	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 200, img.Bounds().Dx())
	assert.Equal(t, 160, img.Bounds().Dy())
}

func TestGenerateSVG(t *testing.T) {
	p := demoPlot(t, 6)
	p.Axis(plot.LeftAxis).SetLabel("y <value>")

	svg := GenerateSVG(p, DefaultSVGOptions())
	assert.True(t, strings.HasPrefix(svg, "<?xml"))
	assert.True(t, strings.HasSuffix(svg, "</svg>\n"))
	assert.Contains(t, svg, `width="200" height="160"`)
	assert.Contains(t, svg, "<polygon")
	assert.Contains(t, svg, ">H</text>")
	assert.Contains(t, svg, "rotate(-90)")
	assert.Contains(t, svg, "y &lt;value&gt;")

	var buf bytes.Buffer
	require.NoError(t, RenderSVG(p, &buf, SVGOptions{}))
	assert.Contains(t, buf.String(), "font-size: 11.0px")
}

func TestSVGPaint(t *testing.T) {
	assert.Equal(t, `fill="none"`, paint("fill", nil))
	assert.Equal(t, `stroke="#ff0000"`, paint("stroke", color.RGBA{255, 0, 0, 255}))
	assert.Contains(t, paint("fill", color.NRGBA{255, 0, 0, 128}), `fill-opacity="0.502"`)
}

func TestMarkerShapes(t *testing.T) {
	assert.Len(t, markerPolygon(plot.Triangle, 0, 0, 1), 3)
	assert.Len(t, markerPolygon(plot.Square, 0, 0, 1), 4)
	assert.Len(t, markerPolygon(plot.Pentagon, 0, 0, 1), 5)
	assert.Len(t, markerPolygon(plot.Hexagon, 0, 0, 1), 6)
	assert.Len(t, markerPolygon(plot.Star, 0, 0, 1), 10)
	assert.Nil(t, markerPolygon(plot.Asterisk, 0, 0, 1))
	assert.Nil(t, markerPolygon(plot.NoPoints, 0, 0, 1))

	tri := markerPolygon(plot.Triangle, 0, 0, 1)
	assert.InDelta(t, -1.0, tri[0].Y, 1e-9, "first vertex points up")

	sq := markerPolygon(plot.Square, 0, 0, 1)
	assert.True(t, insidePolygon(sq, 0, 0))
	assert.False(t, insidePolygon(sq, 2, 0))
}
