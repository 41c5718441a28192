// Axis tick planning and tick label formatting.

package plot

import (
	"fmt"
	"math"
)

// TickSet holds the tick positions of one axis, in data units.
// Both slices are strictly increasing. Every minor lies strictly between
// the first and last major and never coincides with a major.
type TickSet struct {
	Major []float64
	Minor []float64
}

// Empty reports whether the set has no ticks at all.
func (ts TickSet) Empty() bool {
	return len(ts.Major) == 0 && len(ts.Minor) == 0
}

// stepRule maps a normalized interval length to a major step mantissa
// and the number of minor subdivisions per major step.
type stepRule struct {
	below    float64 // rule applies while t < below
	mantissa int64
	minorDiv int64
}

// With t in [3, 30) these give between 3 and 6 major ticks.
var stepRules = []stepRule{
	{6, 1, 5},
	{10, 2, 4},
	{20, 4, 4},
	{math.Inf(1), 5, 5},
}

// maxExactIndex bounds tick indices so that index*step stays exact in float64.
const maxExactIndex = 1 << 53

// tickEpsilon is the tolerance, in steps, for a tick lying on an interval edge.
const tickEpsilon = 1e-9

// PlanTicks computes major and minor tick positions for the interval
// [origin, origin+length]. It is a pure function of its arguments.
// A non-positive or non-finite length yields an empty TickSet.
func PlanTicks(origin, length float64) TickSet {
	if !(length > 0) || math.IsInf(length, 0) || math.IsNaN(origin) || math.IsInf(origin, 0) {
		return TickSet{}
	}

	// Normalize length = t * 10^exp with t in [1, 10), then stretch
	// to [3, 30) so there are never fewer than three majors.
	exp := int(math.Floor(math.Log10(length)))
	t := length / math.Pow10(exp)
	if t < 1 { // Log10 rounding just below a power of ten
		t *= 10
		exp--
	} else if t >= 10 {
		t /= 10
		exp++
	}
	if t < 3 {
		t *= 10
		exp--
	}

	rule := stepRules[len(stepRules)-1]
	for _, r := range stepRules {
		if t < r.below {
			rule = r
			break
		}
	}

	// The minor step is mantissa*10^exp / minorDiv. Express it as an
	// integer times a power of ten so every tick is computed exactly
	// from its index instead of by accumulation.
	minorMant, minorExp := rule.mantissa*10, exp-1
	if minorMant%rule.minorDiv == 0 {
		minorMant /= rule.minorDiv
	} else {
		minorMant = minorMant * 10 / rule.minorDiv
		minorExp--
	}
	minorStep := pow10Scaled(minorMant, minorExp)
	if !(minorStep > 0) || math.IsInf(minorStep, 0) {
		return TickSet{} // step underflows or overflows float64
	}

	end := origin + length
	lo := origin / minorStep
	hi := end / minorStep
	if math.Abs(lo) > maxExactIndex || math.Abs(hi) > maxExactIndex {
		return TickSet{}
	}

	div := rule.minorDiv
	first := int64(math.Ceil(lo/float64(div) - tickEpsilon))
	last := int64(math.Floor(hi/float64(div) + tickEpsilon))
	if first > last {
		return TickSet{}
	}

	var ts TickSet
	ts.Major = make([]float64, 0, last-first+1)
	for k := first; k <= last; k++ {
		ts.Major = append(ts.Major, pow10Scaled(k*div*minorMant, minorExp))
	}
	if last > first {
		ts.Minor = make([]float64, 0, (last-first)*(div-1))
		for j := first*div + 1; j < last*div; j++ {
			if j%div == 0 {
				continue
			}
			ts.Minor = append(ts.Minor, pow10Scaled(j*minorMant, minorExp))
		}
	}
	return ts
}

// pow10Scaled returns n * 10^exp, dividing for negative exponents so
// decimal steps such as 0.3 come out as the nearest float64.
func pow10Scaled(n int64, exp int) float64 {
	if exp >= 0 {
		return float64(n) * math.Pow10(exp)
	}
	return float64(n) / math.Pow10(-exp)
}

// LabelFormat controls how tick values are rendered as strings.
type LabelFormat struct {
	Style     byte // 'g', 'G', 'f', 'e', 'E', or 't' for clock time
	Width     int  // field width; negative left-aligns
	Precision int  // -1 selects the default of 6
}

// DefaultLabelFormat is the format of a new axis.
var DefaultLabelFormat = LabelFormat{Style: 'g', Width: 0, Precision: -1}

// Format renders v according to the format.
func (f LabelFormat) Format(v float64) string {
	switch f.Style {
	case 't':
		return clockLabel(v)
	case 'g', 'G', 'f', 'e', 'E':
	default:
		f.Style = 'g'
	}
	prec := f.Precision
	if prec < 0 {
		prec = 6
	}
	return fmt.Sprintf("%*.*"+string(f.Style), f.Width, prec, v)
}

// clockLabel interprets v as hours and renders it as hh:mm, modulo 24h.
func clockLabel(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return "--:--"
	}
	v = math.Mod(v, 24)
	if v < 0 {
		v += 24
	}
	if v >= 24 { // tiny negatives round up to exactly 24
		v = 0
	}
	h := int(v)
	m := int(60 * (v - float64(h)))
	return fmt.Sprintf("%02d:%02d", h, m)
}

// Axis holds the state of one plot axis: its title, visibility flags,
// tick label format and the most recently planned ticks.
type Axis struct {
	label           string
	visible         bool
	tickLabelsShown bool
	format          LabelFormat
	ticks           TickSet
}

// NewAxis creates a visible axis with tick labels hidden.
func NewAxis(label string) *Axis {
	return &Axis{
		label:   label,
		visible: true,
		format:  DefaultLabelFormat,
	}
}

// Label returns the axis title.
func (a *Axis) Label() string { return a.label }

// SetLabel sets the axis title; empty means no title.
func (a *Axis) SetLabel(label string) { a.label = label }

// Visible reports whether the axis is drawn.
func (a *Axis) Visible() bool { return a.visible }

// SetVisible toggles drawing of the axis.
func (a *Axis) SetVisible(v bool) { a.visible = v }

// TickLabelsShown reports whether tick labels are drawn.
func (a *Axis) TickLabelsShown() bool { return a.tickLabelsShown }

// SetTickLabelsShown toggles drawing of tick labels.
func (a *Axis) SetTickLabelsShown(v bool) { a.tickLabelsShown = v }

// SetTickMarks replans the ticks for [origin, origin+length].
func (a *Axis) SetTickMarks(origin, length float64) {
	a.ticks = PlanTicks(origin, length)
}

// Ticks returns the planned ticks.
func (a *Axis) Ticks() TickSet { return a.ticks }

// MajorTickMarks returns the planned major tick positions.
func (a *Axis) MajorTickMarks() []float64 { return a.ticks.Major }

// MinorTickMarks returns the planned minor tick positions.
func (a *Axis) MinorTickMarks() []float64 { return a.ticks.Minor }

// SetTickLabelFormat sets how tick labels are rendered.
func (a *Axis) SetTickLabelFormat(style byte, width, precision int) {
	a.format = LabelFormat{Style: style, Width: width, Precision: precision}
}

// TickLabelFormat returns the style character of the tick label format.
func (a *Axis) TickLabelFormat() byte { return a.format.Style }

// TickLabelWidth returns the field width of the tick label format.
func (a *Axis) TickLabelWidth() int { return a.format.Width }

// TickLabelPrecision returns the precision of the tick label format.
func (a *Axis) TickLabelPrecision() int { return a.format.Precision }

// Format returns the full tick label format.
func (a *Axis) Format() LabelFormat { return a.format }

// TickLabel renders v with the axis' tick label format.
func (a *Axis) TickLabel(v float64) string {
	return a.format.Format(v)
}
