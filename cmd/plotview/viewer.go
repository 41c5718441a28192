package main

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/ha1tch/plot-toolkit/pkg/plot"
	"github.com/ha1tch/plot-toolkit/pkg/plotfile"
)

// Styles
var (
	styleStatus = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorNavy)
	styleHint   = tcell.StyleDefault.Foreground(tcell.ColorSilver).Background(tcell.ColorNavy)
	styleMsg    = tcell.StyleDefault.Foreground(tcell.ColorYellow).Background(tcell.ColorNavy).Bold(true)
)

const (
	panStep  = 0.1  // fraction of the visible range per arrow key
	zoomIn   = 0.8  // range scale per '+'
	zoomOut  = 1.25 // range scale per '-'
	hoverRad = 1    // cells around the mouse searched for points
)

const helpText = "q quit  g grid  t tips  arrows pan  +/- zoom  0 reset  1-6 demos"

// Viewer holds the interactive viewer state.
type Viewer struct {
	screen tcell.Screen
	plot   *plot.Plot
	title  string

	home      plot.Rect  // limits as loaded, restored by '0'
	homeSec   *plot.Rect // secondary limits as loaded
	message   string
	mouseX    int
	mouseY    int
	mouseSeen bool
}

func newViewer(s tcell.Screen) *Viewer {
	return &Viewer{screen: s}
}

// load shows the plot described by doc.
func (v *Viewer) load(doc *plotfile.Document, title string) error {
	p, err := doc.Build()
	if err != nil {
		return err
	}
	configureForCells(p)
	v.plot = p
	v.title = title
	v.home = p.DataRect()
	v.homeSec = nil
	if p.HasSecondaryLimits() {
		s := p.SecondaryDataRect()
		v.homeSec = &s
	}
	v.message = ""
	return nil
}

func (v *Viewer) loadDemo(n int) error {
	doc, err := plotfile.Demo(n)
	if err != nil {
		return err
	}
	return v.load(doc, fmt.Sprintf("%d: %s", n, plotfile.DemoTitle(n)))
}

// configureForCells adapts pixel-sized decorations to a grid of cells.
func configureForCells(p *plot.Plot) {
	p.SetLeftPadding(cellPadding(p.Axis(plot.LeftAxis), false))
	p.SetRightPadding(cellPadding(p.Axis(plot.RightAxis), false))
	p.SetTopPadding(cellPadding(p.Axis(plot.TopAxis), true))
	p.SetBottomPadding(cellPadding(p.Axis(plot.BottomAxis), true))
	p.SetTickSizes(1, 0)
	p.Placer().Gap = 0
	for _, o := range p.Objects() {
		o.SetSize(1)
	}
}

// cellPadding sizes the margin next to an axis: one cell for the frame,
// plus room for tick labels and the title.
func cellPadding(a *plot.Axis, horizontal bool) int {
	pad := 1
	if !a.Visible() {
		return pad
	}
	if a.TickLabelsShown() {
		if horizontal {
			pad++
		} else {
			pad += 6
		}
	}
	if a.Label() != "" {
		pad++
	}
	return pad
}

// rescale moves the limits to the fractions fx0..fx1, fy0..fy1 of the
// current ranges. Secondary limits follow by the same fractions.
func (v *Viewer) rescale(fx0, fx1, fy0, fy1 float64) {
	scale := func(r plot.Rect) (x1, x2, y1, y2 float64) {
		return r.X + fx0*r.W, r.X + fx1*r.W, r.Y + fy0*r.H, r.Y + fy1*r.H
	}
	if v.plot.HasSecondaryLimits() {
		v.plot.SetSecondaryLimits(scale(v.plot.SecondaryDataRect()))
	}
	v.plot.SetLimits(scale(v.plot.DataRect()))
}

func (v *Viewer) pan(dx, dy float64) {
	v.rescale(dx, 1+dx, dy, 1+dy)
}

func (v *Viewer) zoom(k float64) {
	lo := (1 - k) / 2
	v.rescale(lo, lo+k, lo, lo+k)
}

func (v *Viewer) reset() {
	h := v.home
	v.plot.SetLimits(h.X, h.Right(), h.Y, h.Bottom())
	if s := v.homeSec; s != nil {
		v.plot.SetSecondaryLimits(s.X, s.Right(), s.Y, s.Bottom())
	}
}

func (v *Viewer) run() {
	for {
		v.draw()
		v.screen.Show()

		switch ev := v.screen.PollEvent().(type) {
		case *tcell.EventResize:
			v.screen.Sync()
		case *tcell.EventKey:
			if v.handleKey(ev) {
				return
			}
		case *tcell.EventMouse:
			v.handleMouse(ev)
		case nil:
			return
		}
	}
}

// handleKey applies one key press and reports whether to quit.
func (v *Viewer) handleKey(ev *tcell.EventKey) bool {
	v.message = ""
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyLeft:
		v.pan(-panStep, 0)
	case tcell.KeyRight:
		v.pan(panStep, 0)
	case tcell.KeyUp:
		v.pan(0, panStep)
	case tcell.KeyDown:
		v.pan(0, -panStep)
	case tcell.KeyRune:
		switch r := ev.Rune(); r {
		case 'q', 'Q':
			return true
		case 'g', 'G':
			v.plot.SetShowGrid(!v.plot.ShowGrid())
		case 't', 'T':
			v.plot.SetObjectToolTipShown(!v.plot.ObjectToolTipShown())
		case '+', '=':
			v.zoom(zoomIn)
		case '-', '_':
			v.zoom(zoomOut)
		case '0':
			v.reset()
		default:
			if r >= '1' && r <= '9' {
				if err := v.loadDemo(int(r - '0')); err != nil {
					v.message = err.Error()
				}
			}
		}
	}
	return false
}

func (v *Viewer) handleMouse(ev *tcell.EventMouse) {
	v.mouseX, v.mouseY = ev.Position()
	v.mouseSeen = true
}

func (v *Viewer) draw() {
	v.screen.Clear()
	w, h := v.screen.Size()
	if w <= 0 || h <= 1 {
		return
	}
	v.plot.Resize(w, h-1)
	v.plot.Draw(newCellCanvas(v.screen, w, h-1))
	v.drawStatusBar(w, h)
}

// status returns the text shown on the left of the status bar.
func (v *Viewer) status() string {
	if v.message != "" {
		return v.message
	}
	if v.mouseSeen && v.plot.ObjectToolTipShown() {
		near := v.plot.PointsNear(plot.Point{X: float64(v.mouseX), Y: float64(v.mouseY)}, hoverRad)
		if len(near) > 0 {
			pt := near[0].Point
			if pt.Label != "" {
				return fmt.Sprintf("%s (%g, %g)", pt.Label, pt.X(), pt.Y())
			}
			return fmt.Sprintf("series %d point %d (%g, %g)", near[0].Object+1, near[0].Index+1, pt.X(), pt.Y())
		}
	}
	d := v.plot.DataRect()
	return fmt.Sprintf("%s  x [%.4g, %.4g]  y [%.4g, %.4g]", v.title, d.X, d.Right(), d.Y, d.Bottom())
}

func (v *Viewer) drawStatusBar(w, h int) {
	y := h - 1
	for x := 0; x < w; x++ {
		v.screen.SetContent(x, y, ' ', nil, styleStatus)
	}
	st := styleStatus
	if v.message != "" {
		st = styleMsg
	}
	left := v.status()
	v.drawString(1, y, left, st)

	used := runewidth.StringWidth(left) + 2
	if hw := runewidth.StringWidth(helpText); w-hw-1 > used {
		v.drawString(w-hw-1, y, helpText, styleHint)
	}
}

func (v *Viewer) drawString(x, y int, s string, st tcell.Style) {
	for _, r := range s {
		v.screen.SetContent(x, y, r, nil, st)
		x += runewidth.RuneWidth(r)
	}
}
