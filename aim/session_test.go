package aim

import (
	"testing"
	"time"
)

func TestTickerFiresPerPeriod(t *testing.T) {
	n := 0
	tk := NewTicker(2500*time.Millisecond, func() { n++ })

	if fired := tk.Advance(2499 * time.Millisecond); fired != 0 {
		t.Errorf("expected no tick before period, got %d", fired)
	}
	if fired := tk.Advance(time.Millisecond); fired != 1 {
		t.Errorf("expected one tick at period, got %d", fired)
	}
	if fired := tk.Advance(5 * time.Second); fired != 2 {
		t.Errorf("expected two ticks for two periods, got %d", fired)
	}
	if n != 3 {
		t.Errorf("expected callback to run 3 times, got %d", n)
	}
}

func TestTickerStop(t *testing.T) {
	n := 0
	tk := NewTicker(time.Second, func() { n++ })
	tk.Stop()
	tk.Stop()

	if fired := tk.Advance(10 * time.Second); fired != 0 || n != 0 {
		t.Errorf("expected stopped ticker to stay silent, fired %d calls %d", fired, n)
	}
	if !tk.Stopped() {
		t.Error("expected Stopped to report true")
	}
}

func TestTickerZeroPeriod(t *testing.T) {
	tk := NewTicker(0, func() { t.Fatal("zero period must not fire") })
	tk.Advance(time.Hour)
}

func TestSessionRelocatesOnTimer(t *testing.T) {
	cfg := DefaultConfig()
	e := NewEngine(cfg, WithRand(&Sequence{Values: []float64{0, 1}}))
	s := Mount(e)
	defer s.Stop()

	s.Advance(cfg.RelocatePeriod)
	if got := e.Target().Position; got != (Position{X: 20, Y: 70}) {
		t.Errorf("expected timer relocation to (20,70), got %+v", got)
	}
}

func TestSessionStopDetaches(t *testing.T) {
	cfg := DefaultConfig()
	cfg.InitialTarget = Position{X: 50, Y: 50}
	e := NewEngine(cfg, WithRand(&Sequence{Values: []float64{0.5}}))
	s := Mount(e)

	s.Stop()
	if s.Active() {
		t.Fatal("expected session to be inactive after Stop")
	}

	s.PointerMove(Position{X: 50, Y: 50})
	if got := e.Pointer().Position; got != cfg.InitialPointer {
		t.Errorf("expected pointer to stay at %+v, got %+v", cfg.InitialPointer, got)
	}
	s.Advance(time.Minute)
	if got := e.Target().Position; got != cfg.InitialTarget {
		t.Errorf("expected target to stay put after unmount, got %+v", got)
	}
	if _, ok := s.Click(); ok {
		t.Error("expected click after unmount to be ignored")
	}
	s.Stop()
}

func TestSessionClickReturnsEvent(t *testing.T) {
	now := time.Unix(1000, 0)
	cfg := DefaultConfig()
	cfg.InitialTarget = Position{X: 50, Y: 50}
	e := NewEngine(cfg,
		WithRand(&Sequence{Values: []float64{0.5}}),
		WithClock(func() time.Time { return now }),
	)
	s := Mount(e)
	defer s.Stop()

	if !s.Active() {
		t.Fatal("expected a mounted session to be active")
	}
	s.PointerMove(Position{X: 52, Y: 48})
	ev, ok := s.Click()
	if !ok {
		t.Fatal("expected hit")
	}
	if ev.Position != (Position{X: 50, Y: 50}) || !ev.At.Equal(now) {
		t.Errorf("expected event at the old target stamped %v, got %+v", now, ev)
	}
}
