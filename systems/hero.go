package systems

import (
	"math"

	"github.com/automoto/trapschool/components"
	cfg "github.com/automoto/trapschool/config"
	"github.com/automoto/trapschool/scroll"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Hero clay key frames, indexed by the frame value of the clay's tween.
var (
	clayFrames   = []float64{0, 1, 2}
	clayOffsetX  = []float64{-100, 0, 200}
	clayOffsetY  = []float64{100, 0, -50}
	clayOpacity  = []float64{0, 1, 0}
	clayRotation = []float64{0, math.Pi, 2 * math.Pi}
)

// UpdateHero derives the hero parallax from how far the hero has scrolled
// past the top of the viewport.
func UpdateHero(e *ecs.ECS) {
	heroEntry, ok := components.Hero.First(e.World)
	if !ok {
		return
	}
	hero := components.Hero.Get(heroEntry)

	pageEntry, ok := components.Page.First(e.World)
	cameraEntry, ok2 := components.Camera.First(e.World)
	if !ok || !ok2 {
		return
	}
	lp := components.Page.Get(pageEntry).Layout
	if hero.Section >= len(lp.Sections) {
		return
	}
	vp := components.Camera.Get(cameraEntry)

	hero.Progress = scroll.PinnedProgress(vp.Y(), lp.Tops[hero.Section], lp.Sections[hero.Section].Height)
	hero.Parallax = scroll.HeroParallax(hero.Progress)

	period := cfg.Hero.BouncePeriod.Seconds()
	if period > 0 {
		hero.Bounce = math.Mod(hero.Bounce+2*math.Pi*cfg.TickDuration().Seconds()/period, 2*math.Pi)
	}
}

// UpdateHeroClays plays each clay's key frame sequence and restarts it after
// the hold.
func UpdateHeroClays(e *ecs.ECS) {
	dt := float32(cfg.TickDuration().Seconds())

	components.HeroClay.Each(e.World, func(entry *donburi.Entry) {
		clay := components.HeroClay.Get(entry)
		sprite := components.Sprite.Get(entry)

		if clay.Elapsed < clay.Delay {
			clay.Elapsed += dt
			sprite.Hidden = true
			return
		}

		seq := components.Tween.Get(entry)
		frame, _, done := seq.Update(dt)
		if done {
			seq.Reset()
		}
		clay.Frame = float64(frame)
		applyClayFrame(clay, sprite)
	})
}

// applyClayFrame writes the interpolated key frame into the sprite. X and Y
// are offsets in pixels from the clay's resting spot.
func applyClayFrame(clay *components.HeroClayData, sprite *components.SpriteData) {
	sprite.X = scroll.Transform(clay.Frame, clayFrames, clayOffsetX)
	sprite.Y = scroll.Transform(clay.Frame, clayFrames, clayOffsetY)
	sprite.Alpha = scroll.Transform(clay.Frame, clayFrames, clayOpacity)
	sprite.Rotation = scroll.Transform(clay.Frame, clayFrames, clayRotation)
	sprite.Hidden = sprite.Alpha <= 0
}
