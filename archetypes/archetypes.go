package archetypes

import (
	"github.com/automoto/trapschool/components"
	cfg "github.com/automoto/trapschool/config"
	"github.com/automoto/trapschool/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Space = newArchetype(
		components.Space,
	)
	Camera = newArchetype(
		components.Camera,
	)
	Page = newArchetype(
		components.Page,
	)
	Nav = newArchetype(
		components.Nav,
	)
	Section = newArchetype(
		components.Section,
	)
	Button = newArchetype(
		tags.Button,
		components.Object,
		components.Hover,
		components.Link,
	)
	Card = newArchetype(
		tags.Card,
		components.Object,
		components.Hover,
	)
	PointerProbe = newArchetype(
		tags.Pointer,
		components.Pointer,
		components.Object,
	)
	AimDemo = newArchetype(
		tags.DemoPanel,
		components.AimDemo,
		components.Object,
	)
	FlightDiagram = newArchetype(
		components.FlightDiagram,
	)
	HitFlash = newArchetype(
		components.HitFlash,
		components.AutoDestroy,
	)
	Hero = newArchetype(
		components.Hero,
	)
	HeroClay = newArchetype(
		tags.HeroClay,
		components.HeroClay,
		components.Sprite,
		components.Tween,
	)
	Crosshair = newArchetype(
		components.Crosshair,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
