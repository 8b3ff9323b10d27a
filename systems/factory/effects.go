package factory

import (
	"math"

	"github.com/automoto/trapschool/aim"
	"github.com/automoto/trapschool/archetypes"
	"github.com/automoto/trapschool/components"
	cfg "github.com/automoto/trapschool/config"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SpawnHitFlash creates the burst shown where a clay was hit. It grows and
// fades over the engine's hit display time and then removes itself.
func SpawnHitFlash(ecs *ecs.ECS, ev aim.HitEvent, display float64) *donburi.Entry {
	entry := archetypes.HitFlash.Spawn(ecs)
	d := float32(display)
	components.HitFlash.Set(entry, &components.HitFlashData{
		X:            ev.Position.X,
		Y:            ev.Position.Y,
		Opacity:      1,
		ScaleTween:   gween.New(0, float32(cfg.AimDemo.FlashScale), d, ease.OutQuad),
		OpacityTween: gween.New(1, 0, d, ease.OutQuad),
	})
	components.AutoDestroy.Set(entry, &components.AutoDestroyData{
		FramesRemaining: int(math.Ceil(display*float64(cfg.C.TPS))) + 1,
	})
	return entry
}
