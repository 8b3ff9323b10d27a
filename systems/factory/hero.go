package factory

import (
	"time"

	"github.com/automoto/trapschool/archetypes"
	"github.com/automoto/trapschool/components"
	cfg "github.com/automoto/trapschool/config"
	"github.com/automoto/trapschool/scroll"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// heroClays are the resting spots and start delays of the decorative clays,
// as fractions of the hero box.
var heroClays = []struct {
	x, y  float64
	delay time.Duration
}{
	{0.18, 0.30, 0},
	{0.72, 0.22, 1200 * time.Millisecond},
	{0.40, 0.70, 2400 * time.Millisecond},
}

// CreateHero spawns the hero state for section and its flying clays.
func CreateHero(ecs *ecs.ECS, section int) *donburi.Entry {
	entry := archetypes.Hero.Spawn(ecs)
	components.Hero.Set(entry, &components.HeroData{
		Section:  section,
		Parallax: scroll.HeroParallax(0),
	})
	for _, c := range heroClays {
		CreateHeroClay(ecs, c.x, c.y, c.delay)
	}
	return entry
}

// CreateHeroClay spawns one clay looping through its three key frames:
// rise in, pass the resting spot, fly off. A hold frame adds the pause
// between flights.
func CreateHeroClay(ecs *ecs.ECS, baseX, baseY float64, delay time.Duration) *donburi.Entry {
	entry := archetypes.HeroClay.Spawn(ecs)
	half := float32(cfg.Hero.ClayFlight.Seconds() / 2)
	seq := gween.NewSequence(
		gween.New(0, 1, half, ease.OutQuad),
		gween.New(1, 2, half, ease.OutQuad),
		gween.New(2, 2, float32(cfg.Hero.ClayPause.Seconds()), ease.Linear),
	)
	components.Tween.Set(entry, seq)

	components.HeroClay.Set(entry, &components.HeroClayData{
		BaseX: baseX,
		BaseY: baseY,
		Delay: float32(delay.Seconds()),
	})
	components.Sprite.Set(entry, &components.SpriteData{
		Scale:  1,
		Hidden: true,
	})
	return entry
}
