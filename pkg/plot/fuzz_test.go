// Fuzz tests for the layout core.
// Run with: go test -fuzz=FuzzPlanTicks -fuzztime=30s ./pkg/plot/

package plot

import (
	"image"
	"math"
	"testing"
)

// FuzzPlanTicks checks the tick invariants on arbitrary intervals.
func FuzzPlanTicks(f *testing.F) {
	// Seed with the documented examples
	f.Add(0.0, 12.0)
	f.Add(0.0, 120.0)
	f.Add(4.0, 29.0)
	f.Add(0.0, 1.0)
	f.Add(-10.0, 20.0)

	// Seed with edge cases
	f.Add(0.0, 0.0)
	f.Add(5.0, -1.0)
	f.Add(1e-300, 1e-300)
	f.Add(-1e300, 1e300)
	f.Add(1e15, 1.0)
	f.Add(0.1, 0.30000000000000004)

	f.Fuzz(func(t *testing.T, origin, length float64) {
		ts := PlanTicks(origin, length)
		if !(length > 0) || math.IsInf(length, 0) || math.IsNaN(origin) || math.IsInf(origin, 0) {
			if !ts.Empty() {
				t.Fatalf("PlanTicks(%g, %g) = %v, want empty", origin, length, ts)
			}
			return
		}
		if ts.Empty() {
			return // index range not representable
		}

		end := origin + length
		if math.Abs(origin)+math.Abs(end) > length*1e12 {
			t.Skip() // steps below float64 resolution at this magnitude
		}
		slack := length * 1e-6
		for i, v := range ts.Major {
			if v < origin-slack || v > end+slack {
				t.Fatalf("major %g outside [%g, %g]", v, origin, end)
			}
			if i > 0 && v <= ts.Major[i-1] {
				t.Fatalf("majors not increasing: %v", ts.Major)
			}
		}
		for i, v := range ts.Minor {
			if v <= ts.Major[0] || v >= ts.Major[len(ts.Major)-1] {
				t.Fatalf("minor %g not strictly inside the majors %v", v, ts.Major)
			}
			if i > 0 && v <= ts.Minor[i-1] {
				t.Fatalf("minors not increasing: %v", ts.Minor)
			}
		}

		again := PlanTicks(origin, length)
		if len(again.Major) != len(ts.Major) || len(again.Minor) != len(ts.Minor) {
			t.Fatalf("PlanTicks(%g, %g) not repeatable", origin, length)
		}
	})
}

// FuzzMaskStamps checks that stamping never panics and never lowers a cost.
func FuzzMaskStamps(f *testing.F) {
	f.Add(0.0, 0.0, 400.0, 400.0, 1.0)
	f.Add(-50.0, 10.0, 450.0, 10.0, 0.5)
	f.Add(200.0, 200.0, 200.0, 200.0, 2.0)
	f.Add(399.9, 0.0, 0.0, 399.9, 0.1)
	f.Add(1e6, -1e6, -1e6, 1e6, 1.0)

	f.Fuzz(func(t *testing.T, x0, y0, x1, y1, w float64) {
		for _, v := range []float64{x0, y0, x1, y1, w} {
			if math.IsNaN(v) || math.Abs(v) > 1e9 {
				t.Skip()
			}
		}
		m := NewMask(image.Rect(0, 0, 400, 400), 40, 40)
		all := Rect{0, 0, 400, 400}

		before := m.Cost(all)
		m.StampLine(Point{x0, y0}, Point{x1, y1}, w)
		afterLine := m.Cost(all)
		if afterLine < before {
			t.Fatalf("StampLine lowered cost: %g -> %g", before, afterLine)
		}

		m.StampRect(Rect{x0, y0, x1 - x0, y1 - y0}, w)
		if c := m.Cost(all); c < afterLine {
			t.Fatalf("StampRect lowered cost: %g -> %g", afterLine, c)
		}
		if w <= 0 && m.Occupied() != 0 {
			t.Fatalf("non-positive weight %g stamped %d cells", w, m.Occupied())
		}

		m.Reset()
		if m.Occupied() != 0 || m.Cost(all) != 0 {
			t.Fatal("Reset left weight behind")
		}
	})
}

// FuzzPlace checks that placement always succeeds inside the candidate rings.
func FuzzPlace(f *testing.F) {
	f.Add(200.0, 200.0, 30.0, 10.0)
	f.Add(0.0, 0.0, 5.0, 5.0)
	f.Add(399.0, 399.0, 100.0, 20.0)
	f.Add(-20.0, 500.0, 0.0, 0.0)

	f.Fuzz(func(t *testing.T, x, y, w, h float64) {
		for _, v := range []float64{x, y, w, h} {
			if math.IsNaN(v) || math.IsInf(v, 0) || math.Abs(v) > 1e6 {
				t.Skip()
			}
		}
		if w < 0 || h < 0 {
			t.Skip()
		}
		bounds := image.Rect(0, 0, 400, 400)
		m := NewMask(bounds, 40, 40)
		lp := NewLabelPlacer(bounds)

		pl := lp.Place(Point{x, y}, Size{w, h}, m)
		if pl.Rect.W != w || pl.Rect.H != h {
			t.Fatalf("placed rect %v does not keep size %gx%g", pl.Rect, w, h)
		}
		if pl.Ring < 0 || pl.Ring > lp.Rings {
			t.Fatalf("ring %d outside 0..%d", pl.Ring, lp.Rings)
		}
		if pl.Cost < 0 {
			t.Fatalf("negative cost %g", pl.Cost)
		}
	})
}
