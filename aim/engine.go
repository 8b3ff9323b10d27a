// Package aim implements the click-the-target demo: pointer tracking, target
// placement and hit detection in a normalized 0-100 coordinate space.
package aim

import (
	"math"
	"time"
)

// Position is a point in normalized container coordinates. Both axes are
// percentages of the container size in [0,100].
type Position struct {
	X, Y float64
}

// Distance returns the Euclidean distance between p and q.
func (p Position) Distance(q Position) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// Clamp limits both axes to [0,100].
func (p Position) Clamp() Position {
	return Position{X: clamp(p.X, 0, 100), Y: clamp(p.Y, 0, 100)}
}

// Bounds is the rectangle the target is placed in.
type Bounds struct {
	XMin, XMax float64
	YMin, YMax float64
}

// Contains reports whether p lies inside b, edges included.
func (b Bounds) Contains(p Position) bool {
	return p.X >= b.XMin && p.X <= b.XMax && p.Y >= b.YMin && p.Y <= b.YMax
}

// HitSpace selects the space the hit distance is measured in.
type HitSpace int

const (
	// HitSpaceNormalized measures distance directly in percentage space. On a
	// non-square container the hitbox is an ellipse in screen pixels.
	HitSpaceNormalized HitSpace = iota
	// HitSpacePixels scales both axes by the container size first, giving a
	// circular hitbox. HitRadius is then interpreted as a percentage of the
	// container width.
	HitSpacePixels
)

// Config holds the tunables of an Engine.
type Config struct {
	Bounds         Bounds
	HitRadius      float64
	RelocatePeriod time.Duration
	HitDisplay     time.Duration
	InitialTarget  Position
	InitialPointer Position
	HitSpace       HitSpace
	// ContainerW and ContainerH are only read in HitSpacePixels mode.
	ContainerW, ContainerH float64
}

// DefaultConfig returns the configuration of the demo on the technique page.
func DefaultConfig() Config {
	return Config{
		Bounds:         Bounds{XMin: 20, XMax: 80, YMin: 30, YMax: 70},
		HitRadius:      12,
		RelocatePeriod: 2500 * time.Millisecond,
		HitDisplay:     500 * time.Millisecond,
		InitialTarget:  Position{X: 20, Y: 60},
		InitialPointer: Position{X: 50, Y: 50},
	}
}

// TargetState is the current target position and the number of hits so far.
type TargetState struct {
	Position Position
	Score    int
}

// PointerState is the most recent pointer sample.
type PointerState struct {
	Position Position
}

// HitEvent is emitted once per successful click.
type HitEvent struct {
	Position Position
	At       time.Time
}

// Option configures an Engine.
type Option func(*Engine)

// WithRand injects the random source used for relocation.
func WithRand(r RandSource) Option {
	return func(e *Engine) { e.rng = r }
}

// WithClock injects the clock used to timestamp hit events.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// Engine owns the target, the pointer and the score of one demo instance.
// It is not safe for concurrent use; the host calls it from its update loop.
type Engine struct {
	cfg     Config
	rng     RandSource
	now     func() time.Time
	pointer Position
	target  TargetState
}

// NewEngine creates an engine with the target at cfg.InitialTarget.
func NewEngine(cfg Config, opts ...Option) *Engine {
	e := &Engine{
		cfg:     cfg,
		rng:     NewRand(),
		now:     time.Now,
		pointer: cfg.InitialPointer.Clamp(),
		target:  TargetState{Position: cfg.InitialTarget},
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Config returns the engine configuration.
func (e *Engine) Config() Config {
	return e.cfg
}

// Target returns the current target state.
func (e *Engine) Target() TargetState {
	return e.target
}

// Pointer returns the latest pointer sample.
func (e *Engine) Pointer() PointerState {
	return PointerState{Position: e.pointer}
}

// SetContainerSize updates the container size used by HitSpacePixels.
func (e *Engine) SetContainerSize(w, h float64) {
	e.cfg.ContainerW, e.cfg.ContainerH = w, h
}

// OnPointerMove records the latest pointer position. Samples with a NaN axis
// are dropped.
func (e *Engine) OnPointerMove(p Position) {
	if math.IsNaN(p.X) || math.IsNaN(p.Y) {
		return
	}
	e.pointer = p.Clamp()
}

// OnClick tests the pointer against the target. On a hit the score is
// incremented, the target is relocated and the returned event is valid.
func (e *Engine) OnClick() (HitEvent, bool) {
	if !(e.distance() < e.cfg.HitRadius) {
		return HitEvent{}, false
	}

	ev := HitEvent{Position: e.target.Position, At: e.now()}
	e.target.Score++
	e.relocate()
	return ev, true
}

// OnTick moves the target regardless of hits.
func (e *Engine) OnTick() {
	e.relocate()
}

func (e *Engine) distance() float64 {
	if e.cfg.HitSpace == HitSpacePixels && e.cfg.ContainerW > 0 && e.cfg.ContainerH > 0 {
		dx := (e.pointer.X - e.target.Position.X) * e.cfg.ContainerW / 100
		dy := (e.pointer.Y - e.target.Position.Y) * e.cfg.ContainerH / 100
		return math.Hypot(dx, dy) * 100 / e.cfg.ContainerW
	}
	return e.pointer.Distance(e.target.Position)
}

func (e *Engine) relocate() {
	b := e.cfg.Bounds
	e.target.Position = Position{
		X: b.XMin + unit(e.rng.Float64())*(b.XMax-b.XMin),
		Y: b.YMin + unit(e.rng.Float64())*(b.YMax-b.YMin),
	}
}

// unit keeps injected sources that misbehave from escaping the bounds.
func unit(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return clamp(v, 0, 1)
}

func clamp(v, lo, hi float64) float64 {
	if math.IsNaN(v) || v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
