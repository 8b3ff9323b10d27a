package aim

import "time"

// Ticker calls fn once per period of advanced time. It is driven by the
// host's update loop rather than a goroutine, so fn always runs on the
// caller's thread.
type Ticker struct {
	period  time.Duration
	elapsed time.Duration
	fn      func()
	stopped bool
}

// NewTicker returns a running ticker. A non-positive period never fires.
func NewTicker(period time.Duration, fn func()) *Ticker {
	return &Ticker{period: period, fn: fn}
}

// Advance moves the ticker forward by dt and returns how many times fn ran.
func (t *Ticker) Advance(dt time.Duration) int {
	if t.stopped || t.period <= 0 || dt <= 0 {
		return 0
	}
	t.elapsed += dt
	fired := 0
	for t.elapsed >= t.period && !t.stopped {
		t.elapsed -= t.period
		t.fn()
		fired++
	}
	return fired
}

// Stop cancels all future ticks. Safe to call more than once.
func (t *Ticker) Stop() {
	t.stopped = true
}

// Stopped reports whether Stop was called.
func (t *Ticker) Stopped() bool {
	return t.stopped
}

// Session is one mounted demo: an engine plus the relocation timer and
// pointer subscription scoped to the view that shows it. After Stop the
// engine no longer receives input or ticks.
type Session struct {
	engine *Engine
	ticker *Ticker
}

// Mount starts the relocation timer for e and attaches the pointer.
func Mount(e *Engine) *Session {
	s := &Session{engine: e}
	s.ticker = NewTicker(e.cfg.RelocatePeriod, e.OnTick)
	return s
}

// Engine returns the engine behind the session.
func (s *Session) Engine() *Engine {
	return s.engine
}

// Active reports whether the session is still mounted.
func (s *Session) Active() bool {
	return !s.ticker.Stopped()
}

// PointerMove forwards a pointer sample while mounted.
func (s *Session) PointerMove(p Position) {
	if !s.Active() {
		return
	}
	s.engine.OnPointerMove(p)
}

// Click forwards a click while mounted.
func (s *Session) Click() (HitEvent, bool) {
	if !s.Active() {
		return HitEvent{}, false
	}
	return s.engine.OnClick()
}

// Advance drives the relocation timer.
func (s *Session) Advance(dt time.Duration) {
	if !s.Active() {
		return
	}
	s.ticker.Advance(dt)
}

// Stop cancels the timer and detaches the pointer. Safe to call more than once.
func (s *Session) Stop() {
	s.ticker.Stop()
}
