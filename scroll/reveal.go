package scroll

import (
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Direction is the side a revealed block slides in from.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
	Fade
)

// ParseDirection maps content names to a Direction. Unknown names fade.
func ParseDirection(s string) Direction {
	switch s {
	case "up", "":
		return Up
	case "down":
		return Down
	case "left":
		return Left
	case "right":
		return Right
	}
	return Fade
}

// Offset is the starting displacement for d at the given distance.
func (d Direction) Offset(distance float64) (dx, dy float64) {
	switch d {
	case Up:
		return 0, distance
	case Down:
		return 0, -distance
	case Left:
		return distance, 0
	case Right:
		return -distance, 0
	}
	return 0, 0
}

// Reveal animates a block into place the first time it scrolls into view
// and then stays put.
type Reveal struct {
	Direction Direction
	Distance  float64
	Delay     time.Duration
	Duration  time.Duration
	Margin    float64

	triggered bool
	waited    time.Duration
	tween     *gween.Tween
	value     float64
}

// NewReveal returns a reveal that has not yet been seen.
func NewReveal(dir Direction, distance float64, delay, duration time.Duration, margin float64) *Reveal {
	return &Reveal{
		Direction: dir,
		Distance:  distance,
		Delay:     delay,
		Duration:  duration,
		Margin:    margin,
	}
}

// Observe latches the reveal once the block is inside the viewport.
func (r *Reveal) Observe(viewTop, viewHeight, elemTop, elemHeight float64) {
	if r.triggered {
		return
	}
	if InView(viewTop, viewHeight, elemTop, elemHeight, r.Margin) {
		r.triggered = true
		r.tween = gween.New(0, 1, float32(r.Duration.Seconds()), ease.OutCubic)
	}
}

// Triggered reports whether the block has been seen.
func (r *Reveal) Triggered() bool {
	return r.triggered
}

// Advance steps the animation by dt once triggered.
func (r *Reveal) Advance(dt time.Duration) {
	if !r.triggered || r.value >= 1 {
		return
	}
	if r.waited < r.Delay {
		r.waited += dt
		if r.waited < r.Delay {
			return
		}
		dt = r.waited - r.Delay
	}
	if r.Duration <= 0 {
		r.value = 1
		return
	}
	v, done := r.tween.Update(float32(dt.Seconds()))
	r.value = float64(v)
	if done {
		r.value = 1
	}
}

// Progress is the eased animation value in [0,1].
func (r *Reveal) Progress() float64 {
	return r.value
}

// Offset returns the current displacement and opacity of the block.
func (r *Reveal) Offset() (dx, dy, opacity float64) {
	dx, dy = r.Direction.Offset(r.Distance)
	remain := 1 - r.value
	return dx * remain, dy * remain, r.value
}
