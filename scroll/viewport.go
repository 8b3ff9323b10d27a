package scroll

import "math"

// Viewport is the visible window onto a page taller than the screen. The
// scroll position eases toward its target each update.
type Viewport struct {
	Height        float64
	ContentHeight float64
	Smoothing     float64 // fraction of the remaining distance covered per update

	y      float64
	target float64
}

// NewViewport returns a viewport scrolled to the top.
func NewViewport(height, contentHeight, smoothing float64) *Viewport {
	return &Viewport{Height: height, ContentHeight: contentHeight, Smoothing: smoothing}
}

// MaxScroll is the largest valid scroll position.
func (v *Viewport) MaxScroll() float64 {
	return math.Max(0, v.ContentHeight-v.Height)
}

// Y is the current scroll position.
func (v *Viewport) Y() float64 {
	return v.y
}

// Target is the position the viewport is easing toward.
func (v *Viewport) Target() float64 {
	return v.target
}

// ScrollBy moves the target by delta, clamped to the page.
func (v *Viewport) ScrollBy(delta float64) {
	v.ScrollTo(v.target + delta)
}

// ScrollTo sets the target position, clamped to the page.
func (v *Viewport) ScrollTo(y float64) {
	v.target = math.Max(0, math.Min(v.MaxScroll(), y))
}

// Jump moves both the position and the target immediately.
func (v *Viewport) Jump(y float64) {
	v.ScrollTo(y)
	v.y = v.target
}

// Update eases the position toward the target and snaps when close.
func (v *Viewport) Update() {
	s := v.Smoothing
	if s <= 0 || s > 1 {
		s = 1
	}
	v.y += (v.target - v.y) * s
	if math.Abs(v.target-v.y) < 0.5 {
		v.y = v.target
	}
}

// Scrolled reports whether the page has moved past threshold, which turns
// the navigation bar opaque.
func (v *Viewport) Scrolled(threshold float64) bool {
	return v.y > threshold
}

// PageProgress is the scroll position as a fraction of the scrollable range.
func (v *Viewport) PageProgress() float64 {
	m := v.MaxScroll()
	if m == 0 {
		return 0
	}
	return clamp01(v.y / m)
}
