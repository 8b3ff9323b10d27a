package scroll

import (
	"math"
	"testing"
	"time"
)

func TestElementProgress(t *testing.T) {
	tests := []struct {
		name    string
		viewTop float64
		want    float64
	}{
		{"below viewport", 0, 0},
		{"top meets bottom", 400, 0},
		{"halfway", 900, 0.5},
		{"bottom meets top", 1400, 1},
		{"past viewport", 2000, 1},
	}
	// viewport 600 tall, element at 1000 and 400 tall
	for _, tt := range tests {
		got := ElementProgress(tt.viewTop, 600, 1000, 400)
		if math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("%s: expected %v, got %v", tt.name, tt.want, got)
		}
	}
	if got := ElementProgress(0, 0, 0, 0); got != 0 {
		t.Errorf("expected degenerate span to yield 0, got %v", got)
	}
}

func TestPinnedProgress(t *testing.T) {
	if got := PinnedProgress(0, 0, 720); got != 0 {
		t.Errorf("expected 0 at top, got %v", got)
	}
	if got := PinnedProgress(360, 0, 720); got != 0.5 {
		t.Errorf("expected 0.5 halfway, got %v", got)
	}
	if got := PinnedProgress(5000, 0, 720); got != 1 {
		t.Errorf("expected 1 past the hero, got %v", got)
	}
}

func TestInView(t *testing.T) {
	if InView(0, 600, 550, 100, 100) {
		t.Error("expected element within the margin to be out of view")
	}
	if !InView(0, 600, 450, 100, 100) {
		t.Error("expected element inside the margin to be in view")
	}
	if InView(1000, 600, 0, 100, 0) {
		t.Error("expected element above the viewport to be out of view")
	}
}

func TestTransform(t *testing.T) {
	in := []float64{0, 0.5, 1}
	out := []float64{0, 100, 50}

	tests := []struct {
		v, want float64
	}{
		{-1, 0},
		{0, 0},
		{0.25, 50},
		{0.5, 100},
		{0.75, 75},
		{1, 50},
		{3, 50},
	}
	for _, tt := range tests {
		if got := Transform(tt.v, in, out); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("Transform(%v): expected %v, got %v", tt.v, tt.want, got)
		}
	}
	if got := Transform(0.5, []float64{0}, []float64{1, 2}); got != 0 {
		t.Errorf("expected mismatched stops to yield 0, got %v", got)
	}
}

func TestHeroParallax(t *testing.T) {
	p := HeroParallax(0)
	if p.BackgroundShift != 0 || p.TextShift != 0 || p.TextOpacity != 1 {
		t.Errorf("expected rest state at 0, got %+v", p)
	}
	p = HeroParallax(0.5)
	if math.Abs(p.BackgroundShift-0.15) > 1e-9 || math.Abs(p.TextShift-0.25) > 1e-9 || p.TextOpacity != 0 {
		t.Errorf("unexpected parallax at 0.5: %+v", p)
	}
	p = HeroParallax(1)
	if math.Abs(p.BackgroundShift-0.3) > 1e-9 || math.Abs(p.TextShift-0.5) > 1e-9 {
		t.Errorf("unexpected parallax at 1: %+v", p)
	}
}

func TestRevealOnce(t *testing.T) {
	r := NewReveal(Left, 60, 100*time.Millisecond, 600*time.Millisecond, 100)

	r.Observe(0, 600, 2000, 100)
	r.Advance(time.Second)
	if r.Triggered() || r.Progress() != 0 {
		t.Fatal("expected reveal to wait until in view")
	}
	if dx, dy, op := r.Offset(); dx != 60 || dy != 0 || op != 0 {
		t.Errorf("expected initial offset (60,0,0), got (%v,%v,%v)", dx, dy, op)
	}

	r.Observe(1700, 600, 2000, 100)
	if !r.Triggered() {
		t.Fatal("expected reveal to trigger in view")
	}

	r.Advance(50 * time.Millisecond)
	if r.Progress() != 0 {
		t.Errorf("expected no progress during delay, got %v", r.Progress())
	}
	r.Advance(350 * time.Millisecond)
	if p := r.Progress(); p <= 0 || p >= 1 {
		t.Errorf("expected partial progress, got %v", p)
	}
	r.Advance(time.Second)
	if r.Progress() != 1 {
		t.Errorf("expected completed reveal, got %v", r.Progress())
	}

	// Scrolling away does not hide it again.
	r.Observe(0, 600, 2000, 100)
	if dx, dy, op := r.Offset(); dx != 0 || dy != 0 || op != 1 {
		t.Errorf("expected settled block, got (%v,%v,%v)", dx, dy, op)
	}
}

func TestDirectionOffsets(t *testing.T) {
	tests := []struct {
		name   string
		dx, dy float64
	}{
		{"up", 0, 60},
		{"down", 0, -60},
		{"left", 60, 0},
		{"right", -60, 0},
		{"fade", 0, 0},
	}
	for _, tt := range tests {
		dx, dy := ParseDirection(tt.name).Offset(60)
		if dx != tt.dx || dy != tt.dy {
			t.Errorf("%s: expected (%v,%v), got (%v,%v)", tt.name, tt.dx, tt.dy, dx, dy)
		}
	}
}

func TestViewport(t *testing.T) {
	v := NewViewport(600, 2000, 0.5)
	if v.MaxScroll() != 1400 {
		t.Fatalf("expected max scroll 1400, got %v", v.MaxScroll())
	}

	v.ScrollBy(-50)
	if v.Target() != 0 {
		t.Errorf("expected target clamped to 0, got %v", v.Target())
	}
	v.ScrollBy(5000)
	if v.Target() != 1400 {
		t.Errorf("expected target clamped to 1400, got %v", v.Target())
	}

	v.Update()
	if v.Y() != 700 {
		t.Errorf("expected half-way ease to 700, got %v", v.Y())
	}
	for i := 0; i < 20; i++ {
		v.Update()
	}
	if v.Y() != 1400 {
		t.Errorf("expected viewport to settle on target, got %v", v.Y())
	}
	if !v.Scrolled(20) || v.PageProgress() != 1 {
		t.Error("expected scrolled state at the bottom")
	}

	v.Jump(10)
	if v.Y() != 10 || v.Scrolled(20) {
		t.Errorf("expected jump to 10 below nav threshold, got %v", v.Y())
	}

	short := NewViewport(600, 300, 0.2)
	short.ScrollBy(100)
	if short.Target() != 0 || short.PageProgress() != 0 {
		t.Error("expected short page to be unscrollable")
	}
}
