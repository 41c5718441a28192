// Built-in example plots.

package plotfile

import (
	"fmt"
	"math"
)

// demo builds one example document.
type demo struct {
	title string
	build func() *Document
}

var demos = []demo{
	{"Points plot", pointsDemo},
	{"Lines plot", linesDemo},
	{"Bars plot", barsDemo},
	{"Points plot with labels", labelledPointsDemo},
	{"Points, lines and bars", func() *Document { return mixedDemo(false) }},
	{"Points, lines and bars with labels", func() *Document { return mixedDemo(true) }},
}

// NumDemos is the number of built-in example plots.
var NumDemos = len(demos)

// DemoTitle returns the title of example n (1-based).
func DemoTitle(n int) string {
	if n < 1 || n > len(demos) {
		return ""
	}
	return demos[n-1].title
}

// Demo returns example plot n (1-based) as a document.
func Demo(n int) (*Document, error) {
	if n < 1 || n > len(demos) {
		return nil, fmt.Errorf("demo %d: valid demos are 1 to %d", n, len(demos))
	}
	doc := demos[n-1].build()
	doc.Title = demos[n-1].title
	doc.Antialias = true
	return doc, nil
}

func boolPtr(b bool) *bool { return &b }

func pointsDemo() *Document {
	squares := Series{Name: "x squared", Type: []string{"points"}, Color: "white", Size: 4, Style: "asterisk"}
	linear := Series{Name: "50 - 5x", Type: []string{"points"}, Color: "green", Size: 4, Style: "triangle"}
	for x := -5.0; x <= 10; x++ {
		squares.Points = append(squares.Points, PointDoc{X: x, Y: x * x})
		linear.Points = append(linear.Points, PointDoc{X: x, Y: 50 - 5*x})
	}
	return &Document{
		Limits: &Limits{-6, 11, -10, 110},
		Series: []Series{squares, linear},
	}
}

func linesDemo() *Document {
	sin := Series{Name: "sin", Type: []string{"lines"}, Color: "red", Size: 2, LineWidth: 2}
	cos := Series{Name: "cos", Type: []string{"lines"}, Color: "cyan", Size: 2, LineWidth: 2}
	for i := 0; i <= 157; i++ {
		t := float64(i) * 0.04
		sin.Points = append(sin.Points, PointDoc{X: t, Y: math.Sin(t)})
		cos.Points = append(cos.Points, PointDoc{X: t, Y: math.Cos(t)})
	}
	return &Document{
		Limits:    &Limits{-0.1, 6.38, -1.1, 1.1},
		Secondary: &Limits{-5.73, 365.55, -1.1, 1.1},
		Axes: Axes{
			Bottom: &AxisDoc{Label: "Angle [radians]"},
			Top:    &AxisDoc{Label: "Angle [degrees]", TickLabels: boolPtr(true)},
		},
		Series: []Series{sin, cos},
	}
}

func barsDemo() *Document {
	gauss := Series{Name: "gaussian", Type: []string{"bars"}, Color: "white", Size: 2, BarColor: "darkgreen"}
	for i := 0; i <= 26; i++ {
		x := -6.5 + 0.5*float64(i)
		gauss.Points = append(gauss.Points, PointDoc{X: x, Y: 100 * math.Exp(-0.5*x*x), BarWidth: 0.5})
	}
	return &Document{
		Limits: &Limits{-7, 7, -5, 105},
		Series: []Series{gauss},
	}
}

func labelledPointsDemo() *Document {
	compass := Series{
		Name: "compass", Type: []string{"points"}, Color: "yellow", Size: 10, Style: "star",
		LabelColor: "green",
		Points: []PointDoc{
			{X: 0, Y: 0.8, Label: "North"},
			{X: 0.57, Y: 0.57, Label: "Northeast"},
			{X: 0.8, Y: 0, Label: "East"},
			{X: 0.57, Y: -0.57, Label: "Southeast"},
			{X: 0, Y: -0.8, Label: "South"},
			{X: -0.57, Y: -0.57, Label: "Southwest"},
			{X: -0.8, Y: 0, Label: "West"},
			{X: -0.57, Y: 0.57, Label: "Northwest"},
		},
	}
	return &Document{
		Limits: &Limits{-1.1, 1.1, -1.1, 1.1},
		Series: []Series{compass},
	}
}

func mixedDemo(labels bool) *Document {
	s := Series{
		Name: "mixed", Type: []string{"points", "lines", "bars"}, Color: "white", Size: 10, Style: "pentagon",
		LabelColor: "#aa8800", LineColor: "red", LineWidth: 3, BarColor: "blue",
	}
	xs := []float64{-1.75, -1.25, -0.75, -0.25, 0.25, 0.75, 1.25, 1.75}
	ys := []float64{0.5, 1.0, 1.25, 1.5, 2.5, 3.0, 1.5, 1.75}
	for i := range xs {
		pt := PointDoc{X: xs[i], Y: ys[i]}
		if labels {
			pt.Label = string(rune('A' + i))
		}
		s.Points = append(s.Points, pt)
	}
	return &Document{
		Limits: &Limits{-2.1, 2.1, -0.1, 4.1},
		Series: []Series{s},
	}
}
