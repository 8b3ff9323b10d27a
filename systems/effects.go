package systems

import (
	"github.com/automoto/trapschool/components"
	cfg "github.com/automoto/trapschool/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateEffects processes visual effect components (hit flashes, auto-destroy)
func UpdateEffects(ecs *ecs.ECS) {
	updateHitFlashes(ecs)
	updateAutoDestroy(ecs)
}

// updateHitFlashes grows and fades each burst
func updateHitFlashes(ecs *ecs.ECS) {
	dt := float32(cfg.TickDuration().Seconds())
	components.HitFlash.Each(ecs.World, func(e *donburi.Entry) {
		flash := components.HitFlash.Get(e)
		flash.Scale = stepTween(&flash.ScaleTween, flash.Scale, dt)
		flash.Opacity = stepTween(&flash.OpacityTween, flash.Opacity, dt)
	})
}

// updateAutoDestroy removes entities whose frame countdown ran out
func updateAutoDestroy(ecs *ecs.ECS) {
	var toDestroy []*donburi.Entry

	components.AutoDestroy.Each(ecs.World, func(e *donburi.Entry) {
		ad := components.AutoDestroy.Get(e)
		if ad.FramesRemaining > 0 {
			ad.FramesRemaining--
			if ad.FramesRemaining <= 0 {
				toDestroy = append(toDestroy, e)
			}
		}
	})

	for _, e := range toDestroy {
		// Remove from picking space if it has an object
		if e.HasComponent(components.Object) {
			obj := components.Object.Get(e)
			if obj.Space != nil {
				obj.Space.Remove(obj.Object)
			}
		}
		e.Remove()
	}
}
