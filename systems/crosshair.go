package systems

import (
	"github.com/automoto/trapschool/assets"
	"github.com/automoto/trapschool/components"
	cfg "github.com/automoto/trapschool/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCrosshair feeds the pointer to the page crosshair and eases the drawn
// crosshair toward it. The system cursor is hidden wherever a crosshair
// replaces it.
func UpdateCrosshair(e *ecs.ECS) {
	probe, ok := components.Pointer.First(e.World)
	if !ok {
		return
	}
	pointer := components.Pointer.Get(probe)

	replaced := false
	if demoEntry, ok := components.AimDemo.First(e.World); ok {
		replaced = components.AimDemo.Get(demoEntry).Hovered
	}

	entry, ok := components.Crosshair.First(e.World)
	if !ok {
		setCursorHidden(replaced)
		return
	}
	c := components.Crosshair.Get(entry)
	wasVisible := c.Cursor.Visible()

	switch {
	case !pointer.Inside || pointer.OverNav:
		c.Cursor.Leave()
	case pointer.Moved:
		c.Cursor.Move(pointer.X, pointer.Y)
	case !pointer.WasInside:
		c.Cursor.Enter()
	}

	dt := float32(cfg.TickDuration().Seconds())
	if c.Retarget() {
		x, y := c.Cursor.Center()
		d := float32(cfg.Crosshair.Follow.Seconds())
		if !wasVisible {
			// appear under the pointer rather than sweeping in
			c.X, c.Y = x, y
		}
		c.FollowX = gween.New(float32(c.X), float32(x), d, ease.OutQuad)
		c.FollowY = gween.New(float32(c.Y), float32(y), d, ease.OutQuad)
	}
	if c.Cursor.Visible() != wasVisible {
		c.Fade = gween.New(float32(c.Alpha), float32(c.Cursor.Opacity()), float32(cfg.Crosshair.Fade.Seconds()), ease.Linear)
	}
	c.X = stepTween(&c.FollowX, c.X, dt)
	c.Y = stepTween(&c.FollowY, c.Y, dt)
	c.Alpha = stepTween(&c.Fade, c.Alpha, dt)

	setCursorHidden(replaced || c.Cursor.Visible())
}

func setCursorHidden(hidden bool) {
	mode := ebiten.CursorModeVisible
	if hidden {
		mode = ebiten.CursorModeHidden
	}
	if ebiten.CursorMode() != mode {
		ebiten.SetCursorMode(mode)
	}
}

// DrawCrosshair draws the page crosshair centered on its eased position.
func DrawCrosshair(e *ecs.ECS, screen *ebiten.Image) {
	entry, ok := components.Crosshair.First(e.World)
	if !ok {
		return
	}
	c := components.Crosshair.Get(entry)
	if c.Alpha <= 0 {
		return
	}
	img := assets.CrosshairImage(int(cfg.Crosshair.Size), cfg.Crosshair.Color)
	drawImageCentered(screen, img, c.X, c.Y, 0, 1, c.Alpha)
}
