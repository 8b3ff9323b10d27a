package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/trapschool/components"
	cfg "github.com/automoto/trapschool/config"
	"github.com/automoto/trapschool/fonts"
	"github.com/automoto/trapschool/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// DrawDebug outlines every pick object in the space and prints the scroll
// position. Toggled with F3.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.ShowHitAreas {
		return
	}

	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)
	scrollY := camera.Y()
	viewH := float64(screen.Bounds().Dy())

	spaceEntry, ok := components.Space.First(ecs.World)
	if ok {
		space := components.Space.Get(spaceEntry)

		for _, obj := range space.Objects() {
			// Cull objects outside viewport
			if obj.Y+obj.H < scrollY || obj.Y > scrollY+viewH {
				continue
			}
			x := obj.X
			y := obj.Y - scrollY

			// Determine color based on tags
			c := cfg.Debug.HitAreasColor
			if obj.HasTags(tags.ResolvButton) {
				c = color.RGBA{0, 0, 255, 255} // Blue
			} else if obj.HasTags(tags.ResolvDemo) {
				c = color.RGBA{255, 0, 0, 255} // Red
			} else if obj.HasTags(tags.ResolvPointer) {
				c = color.RGBA{0, 255, 0, 255} // Green
			}

			// Draw outline
			vector.FillRect(screen, float32(x), float32(y), float32(obj.W), 1, c, false)         // Top
			vector.FillRect(screen, float32(x), float32(y+obj.H-1), float32(obj.W), 1, c, false) // Bottom
			vector.FillRect(screen, float32(x), float32(y), 1, float32(obj.H), c, false)         // Left
			vector.FillRect(screen, float32(x+obj.W-1), float32(y), 1, float32(obj.H), c, false) // Right
		}
	}

	status := fmt.Sprintf("scroll %.0f / %.0f  (%.0f%%)  sfx %.0f%%", scrollY, camera.MaxScroll(), camera.PageProgress()*100, GetSFXVolume()*100)
	if Muted() {
		status += " muted"
	}
	drawText(screen, status, fonts.Small, 8, viewH-24, cfg.Debug.HitAreasColor)
}
