package systems

import (
	"math"
	"time"

	"github.com/automoto/trapschool/aim"
	"github.com/automoto/trapschool/components"
	cfg "github.com/automoto/trapschool/config"
	"github.com/automoto/trapschool/layout"
	"github.com/automoto/trapschool/scenery"
	"github.com/automoto/trapschool/systems/factory"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateAimDemo feeds pointer samples and clicks inside the demo panel to its
// session, drives the relocation timer and eases the drawn target and
// crosshair toward the engine state.
func UpdateAimDemo(e *ecs.ECS) {
	view, ok := newPageView(e)
	if !ok {
		return
	}
	probe, ok := components.Pointer.First(e.World)
	if !ok {
		return
	}
	pointer := components.Pointer.Get(probe)
	dt := cfg.TickDuration()

	components.AimDemo.Each(e.World, func(entry *donburi.Entry) {
		demo := components.AimDemo.Get(entry)
		if !demo.Session.Active() {
			return
		}
		rect, _, found := view.panel(demo.Section, layout.BlockDemo)
		if !found {
			return
		}
		demo.Rect = rect
		obj := components.Object.Get(entry)
		obj.X, obj.Y, obj.W, obj.H = rect.X, rect.Y+view.scrollY, rect.W, rect.H

		engine := demo.Session.Engine()
		engine.SetContainerSize(rect.W, rect.H)

		demo.Hovered = pointer.Inside && !pointer.OverNav &&
			pointer.X >= rect.X && pointer.X < rect.X+rect.W &&
			pointer.Y >= rect.Y && pointer.Y < rect.Y+rect.H
		if demo.Hovered {
			if pointer.Moved || !pointer.WasInside {
				demo.Session.PointerMove(ToPercent(rect, pointer.X, pointer.Y))
			}
			if pointer.JustClicked {
				shoot(e, entry, demo)
			}
		}

		demo.Session.Advance(dt)
		updateDemoMotion(demo, engine, dt)
		updateScreenShake(entry)
	})
}

// ToPercent maps a screen point into the 0-100 space of rect.
func ToPercent(rect scenery.Rect, x, y float64) aim.Position {
	if rect.W <= 0 || rect.H <= 0 {
		return aim.Position{}
	}
	return aim.Position{
		X: (x - rect.X) / rect.W * 100,
		Y: (y - rect.Y) / rect.H * 100,
	}.Clamp()
}

func shoot(e *ecs.ECS, entry *donburi.Entry, demo *components.AimDemoData) {
	ev, hit := demo.Session.Click()
	if !hit {
		PlaySFX(e, cfg.SoundShot)
		return
	}
	PlaySFX(e, cfg.SoundShatter)
	factory.SpawnHitFlash(e, ev, demo.Session.Engine().Config().HitDisplay.Seconds())
	TriggerScreenShake(entry, 4, 12)
}

// updateDemoMotion retargets the glide and follow tweens when the engine
// moved the target or saw a new pointer sample, then steps them.
func updateDemoMotion(demo *components.AimDemoData, engine *aim.Engine, dt time.Duration) {
	step := float32(dt.Seconds())

	if target := engine.Target().Position; target != demo.LastTarget {
		demo.LastTarget = target
		d := float32(cfg.AimDemo.GlideDuration.Seconds())
		demo.GlideX = gween.New(float32(demo.TargetX), float32(target.X), d, ease.OutCubic)
		demo.GlideY = gween.New(float32(demo.TargetY), float32(target.Y), d, ease.OutCubic)
	}
	demo.TargetX = stepTween(&demo.GlideX, demo.TargetX, step)
	demo.TargetY = stepTween(&demo.GlideY, demo.TargetY, step)

	if p := engine.Pointer().Position; p != demo.LastPointer {
		demo.LastPointer = p
		d := float32(cfg.AimDemo.CrosshairFollow.Seconds())
		demo.FollowX = gween.New(float32(demo.CrossX), float32(p.X), d, ease.OutQuad)
		demo.FollowY = gween.New(float32(demo.CrossY), float32(p.Y), d, ease.OutQuad)
	}
	demo.CrossX = stepTween(&demo.FollowX, demo.CrossX, step)
	demo.CrossY = stepTween(&demo.FollowY, demo.CrossY, step)

	if period := cfg.AimDemo.SpinPeriod.Seconds(); period > 0 {
		demo.Spin = math.Mod(demo.Spin+2*math.Pi*dt.Seconds()/period, 2*math.Pi)
	}
}

// stepTween advances *t and returns its value, dropping it once finished.
// Without a tween the current value is kept.
func stepTween(t **gween.Tween, current float64, dt float32) float64 {
	if *t == nil {
		return current
	}
	v, done := (*t).Update(dt)
	if done {
		*t = nil
	}
	return float64(v)
}
