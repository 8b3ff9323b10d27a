package systems

import (
	"math"

	"github.com/automoto/trapschool/components"
	cfg "github.com/automoto/trapschool/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCamera moves the page viewport from wheel, keyboard and stick input
// and eases it toward its target.
func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)
	vp := camera.Viewport

	// the window may have been resized since the last tick
	vp.Height = float64(cfg.C.Height)
	if pageEntry, ok := components.Page.First(e.World); ok {
		vp.ContentHeight = components.Page.Get(pageEntry).ContentHeight
	}

	input := GetOrCreateInput(e)
	step := cfg.Scroll.KeyStep
	pageStep := vp.Height * cfg.Scroll.PageFraction

	if probe, ok := components.Pointer.First(e.World); ok {
		p := components.Pointer.Get(probe)
		if p.WheelY != 0 {
			vp.ScrollBy(-p.WheelY * cfg.Scroll.WheelStep)
		}
	}
	if Repeated(input, cfg.ActionScrollDown) {
		vp.ScrollBy(step)
	}
	if Repeated(input, cfg.ActionScrollUp) {
		vp.ScrollBy(-step)
	}
	if Repeated(input, cfg.ActionPageDown) {
		vp.ScrollBy(pageStep)
	}
	if Repeated(input, cfg.ActionPageUp) {
		vp.ScrollBy(-pageStep)
	}
	if GetAction(input, cfg.ActionTop).JustPressed {
		vp.ScrollTo(0)
	}
	if GetAction(input, cfg.ActionBottom).JustPressed {
		vp.ScrollTo(vp.MaxScroll())
	}
	if input.StickY != 0 {
		vp.ScrollBy(input.StickY * cfg.Scroll.StickSpeed)
	}

	// keep the target valid when the page or window shrank
	vp.ScrollTo(vp.Target())
	vp.Update()
}

// updateScreenShake advances a shake on entry and stores the decaying offset
// for its renderer.
func updateScreenShake(entry *donburi.Entry) {
	if !entry.HasComponent(components.ScreenShake) {
		return
	}

	shake := components.ScreenShake.Get(entry)
	shake.Elapsed++

	// Calculate decaying intensity
	progress := float64(shake.Duration-shake.Elapsed) / float64(shake.Duration)
	if progress < 0 {
		progress = 0
	}
	currentIntensity := shake.Intensity * progress

	// Apply oscillating offset using sine/cosine for smooth shake
	shake.OffsetX = math.Sin(float64(shake.Elapsed)*1.1) * currentIntensity
	shake.OffsetY = math.Cos(float64(shake.Elapsed)*1.3) * currentIntensity

	// Remove component when shake is complete
	if shake.Elapsed >= shake.Duration {
		entry.RemoveComponent(components.ScreenShake)
	}
}

// TriggerScreenShake starts a shake on entry, keeping a stronger one that is
// already running.
func TriggerScreenShake(entry *donburi.Entry, intensity float64, duration int) {
	if entry.HasComponent(components.ScreenShake) {
		shake := components.ScreenShake.Get(entry)
		if intensity > shake.Intensity {
			shake.Intensity = intensity
			shake.Duration = duration
			shake.Elapsed = 0
		}
		return
	}
	entry.AddComponent(components.ScreenShake)
	components.ScreenShake.Set(entry, &components.ScreenShakeData{
		Intensity: intensity,
		Duration:  duration,
	})
}

// ShakeOffset returns the current shake displacement of entry.
func ShakeOffset(entry *donburi.Entry) (float64, float64) {
	if !entry.HasComponent(components.ScreenShake) {
		return 0, 0
	}
	shake := components.ScreenShake.Get(entry)
	return shake.OffsetX, shake.OffsetY
}
