package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// ScreenShakeData tracks an active shake on a panel such as the aim demo
type ScreenShakeData struct {
	Intensity float64 // max offset in pixels
	Duration  int     // frames
	Elapsed   int     // frames elapsed (for oscillation)
	OffsetX   float64
	OffsetY   float64
}

var ScreenShake = donburi.NewComponentType[ScreenShakeData]()

// HitFlashData is the burst drawn where a clay was hit. X and Y are in the
// demo's percent space so the burst stays put while the page scrolls.
type HitFlashData struct {
	X, Y    float64
	Scale   float64
	Opacity float64

	ScaleTween   *gween.Tween
	OpacityTween *gween.Tween
}

var HitFlash = donburi.NewComponentType[HitFlashData]()

// AutoDestroyData marks entities that should be destroyed after a duration
type AutoDestroyData struct {
	FramesRemaining int
}

var AutoDestroy = donburi.NewComponentType[AutoDestroyData]()
