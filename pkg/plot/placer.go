package plot

import (
	"image"
	"math"

	"github.com/sirupsen/logrus"
)

// Side names the direction of a label relative to its anchor point.
type Side int

const (
	SideAbove Side = iota
	SideBelow
	SideRight
	SideLeft
	SideAboveRight
	SideAboveLeft
	SideBelowRight
	SideBelowLeft
)

var sideNames = [...]string{"above", "below", "right", "left", "above-right", "above-left", "below-right", "below-left"}

func (s Side) String() string {
	if s < 0 || int(s) >= len(sideNames) {
		return "unknown"
	}
	return sideNames[s]
}

// sidePreference lists sides in tie-break order.
var sidePreference = []Side{
	SideAbove, SideBelow, SideRight, SideLeft,
	SideAboveRight, SideAboveLeft, SideBelowRight, SideBelowLeft,
}

// Placement is the outcome of placing one label.
type Placement struct {
	Rect   Rect
	Side   Side
	Ring   int     // 0 for the nearest ring of candidates
	Cost   float64 // mask cost plus any off-canvas penalty
	Leader bool    // label sits away from its anchor; draw a connector
}

// LabelPlacer chooses label rectangles that avoid masked regions.
type LabelPlacer struct {
	Bounds           image.Rectangle // canvas region labels should stay within
	Gap              float64         // standoff between anchor and label, pixels
	OffCanvasPenalty float64         // added to candidates not inside Bounds
	LabelWeight      float64         // weight stamped over a placed label
	Rings            int             // candidate rings; ring n sits n label-sizes further out
}

// NewLabelPlacer returns a placer with default tuning over bounds.
func NewLabelPlacer(bounds image.Rectangle) *LabelPlacer {
	return &LabelPlacer{
		Bounds:           bounds,
		Gap:              4,
		OffCanvasPenalty: 25,
		LabelWeight:      2,
		Rings:            1,
	}
}

type candidate struct {
	rect Rect
	side Side
	ring int
}

// candidates returns label rectangles around anchor in preference order.
func (lp *LabelPlacer) candidates(anchor Point, size Size) []candidate {
	rings := max(lp.Rings, 1)
	out := make([]candidate, 0, rings*len(sidePreference))
	for ring := 0; ring < rings; ring++ {
		gx := lp.Gap + float64(ring)*size.W
		gy := lp.Gap + float64(ring)*size.H
		dx := size.W/2 + gx
		dy := size.H/2 + gy
		for _, side := range sidePreference {
			var c Point
			switch side {
			case SideAbove:
				c = Point{anchor.X, anchor.Y - dy}
			case SideBelow:
				c = Point{anchor.X, anchor.Y + dy}
			case SideRight:
				c = Point{anchor.X + dx, anchor.Y}
			case SideLeft:
				c = Point{anchor.X - dx, anchor.Y}
			case SideAboveRight:
				c = Point{anchor.X + dx, anchor.Y - dy}
			case SideAboveLeft:
				c = Point{anchor.X - dx, anchor.Y - dy}
			case SideBelowRight:
				c = Point{anchor.X + dx, anchor.Y + dy}
			case SideBelowLeft:
				c = Point{anchor.X - dx, anchor.Y + dy}
			}
			out = append(out, candidate{RectFromCenter(c, size), side, ring})
		}
	}
	return out
}

// Place picks the lowest-cost rectangle of the given size near anchor,
// stamps it into mask with LabelWeight and returns it. Placement never
// fails: when every candidate is off-canvas the least costly one is
// still returned.
func (lp *LabelPlacer) Place(anchor Point, size Size, mask *Mask) Placement {
	bounds := RectFromImage(lp.Bounds)

	best := Placement{Cost: math.Inf(1)}
	for _, c := range lp.candidates(anchor, size) {
		cost := mask.Cost(c.rect)
		if !bounds.ContainsRect(c.rect) {
			cost += lp.OffCanvasPenalty
		}
		// Strict comparison keeps the earlier, preferred candidate on ties.
		if cost < best.Cost {
			best = Placement{Rect: c.rect, Side: c.side, Ring: c.ring, Cost: cost}
		}
	}

	best.Leader = best.Ring > 0 && distanceToRect(anchor, best.Rect) > lp.Gap
	mask.StampRect(best.Rect, lp.LabelWeight)

	Logger().WithFields(logrus.Fields{
		"anchor": anchor,
		"side":   best.Side,
		"ring":   best.Ring,
		"cost":   best.Cost,
	}).Trace("label placed")
	return best
}
