package flightpath

import (
	"math"
	"testing"
)

const eps = 1e-9

func near(a, b float64) bool {
	return math.Abs(a-b) < eps
}

func TestPositionAtEndpointsAndPeak(t *testing.T) {
	m := New(Config{XStart: 20, XRange: 60, YBase: 60, ArcHeight: 40})

	tests := []struct {
		p    float64
		want Point
	}{
		{0, Point{X: 20, Y: 60}},
		{0.5, Point{X: 50, Y: 20}},
		{1, Point{X: 80, Y: 60}},
	}
	for _, tt := range tests {
		got := m.PositionAt(tt.p)
		if !near(got.X, tt.want.X) || !near(got.Y, tt.want.Y) {
			t.Errorf("PositionAt(%v): expected %+v, got %+v", tt.p, tt.want, got)
		}
	}
}

func TestPositionAtQuarter(t *testing.T) {
	m := New(Config{XStart: 20, XRange: 60, YBase: 60, ArcHeight: 40})
	got := m.PositionAt(0.25)

	if !near(got.X, 35) {
		t.Errorf("expected x 35, got %v", got.X)
	}
	if math.Abs(got.Y-31.7157) > 1e-3 {
		t.Errorf("expected y about 31.72, got %v", got.Y)
	}
}

func TestPositionAtIsIdempotent(t *testing.T) {
	m := New(DefaultConfig())
	for _, p := range []float64{0, 0.1, 0.33, 0.7, 1} {
		if a, b := m.PositionAt(p), m.PositionAt(p); a != b {
			t.Errorf("PositionAt(%v) not stable: %+v vs %+v", p, a, b)
		}
	}
}

func TestPositionAtClampsProgress(t *testing.T) {
	m := New(DefaultConfig())
	if got, want := m.PositionAt(-1), m.PositionAt(0); got != want {
		t.Errorf("expected negative progress to clamp to start, got %+v", got)
	}
	if got, want := m.PositionAt(2), m.PositionAt(1); got != want {
		t.Errorf("expected progress above 1 to clamp to end, got %+v", got)
	}
	if got, want := m.PositionAt(math.NaN()), m.PositionAt(0); got != want {
		t.Errorf("expected NaN progress to clamp to start, got %+v", got)
	}
}

func TestRotationAtIsMonotonic(t *testing.T) {
	m := New(DefaultConfig())
	prev := m.RotationAt(0)
	for i := 1; i <= 100; i++ {
		cur := m.RotationAt(float64(i) / 100)
		if cur < prev {
			t.Fatalf("rotation decreased at step %d: %v < %v", i, cur, prev)
		}
		prev = cur
	}
	if !near(m.RotationAt(1), 360*3.6) {
		t.Errorf("expected full-traversal rotation %v, got %v", 360*3.6, m.RotationAt(1))
	}
	if m.RotationAt(0.25) >= m.RotationAt(0.75) {
		t.Error("expected strictly larger rotation later in the traversal")
	}
}

func TestPath(t *testing.T) {
	m := New(DefaultConfig())
	pts := m.Path(4)
	if len(pts) != 5 {
		t.Fatalf("expected 5 points, got %d", len(pts))
	}
	if pts[0] != m.PositionAt(0) || pts[4] != m.PositionAt(1) {
		t.Error("expected path to start and end on the arc endpoints")
	}
	if got := len(m.Path(0)); got != 2 {
		t.Errorf("expected degenerate sample count to yield 2 points, got %d", got)
	}
}
