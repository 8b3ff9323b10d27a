// Package scroll turns page scroll state into the normalized progress values
// the page animations are keyed on.
package scroll

// ElementProgress is how far an element has travelled through the viewport:
// 0 when its top meets the viewport bottom, 1 when its bottom meets the
// viewport top. Coordinates are page pixels.
func ElementProgress(viewTop, viewHeight, elemTop, elemHeight float64) float64 {
	span := viewHeight + elemHeight
	if span <= 0 {
		return 0
	}
	return clamp01((viewTop + viewHeight - elemTop) / span)
}

// PinnedProgress is how far an element has scrolled past the viewport top:
// 0 while its top is at or below the viewport top, 1 once its bottom has
// left the viewport. The home hero uses this.
func PinnedProgress(viewTop, elemTop, elemHeight float64) float64 {
	if elemHeight <= 0 {
		return 0
	}
	return clamp01((viewTop - elemTop) / elemHeight)
}

// InView reports whether an element overlaps the viewport shrunk by margin
// on both edges. A positive margin requires the element to be that far
// inside before it counts.
func InView(viewTop, viewHeight, elemTop, elemHeight, margin float64) bool {
	top := viewTop + margin
	bottom := viewTop + viewHeight - margin
	return elemTop < bottom && elemTop+elemHeight > top
}

func clamp01(v float64) float64 {
	if v != v || v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
