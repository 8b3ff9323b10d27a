package factory

import (
	"github.com/automoto/trapschool/aim"
	"github.com/automoto/trapschool/archetypes"
	"github.com/automoto/trapschool/components"
	cfg "github.com/automoto/trapschool/config"
	"github.com/automoto/trapschool/flightpath"
	"github.com/automoto/trapschool/scenery"
	"github.com/automoto/trapschool/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateAimDemo mounts a fresh demo engine for the panel in section. The
// session runs until the page is torn down.
func CreateAimDemo(ecs *ecs.ECS, section int, stage *scenery.Stage, opts ...aim.Option) *donburi.Entry {
	entry := archetypes.AimDemo.Spawn(ecs)
	engine := aim.NewEngine(aim.DefaultConfig(), opts...)
	target := engine.Target().Position
	pointer := engine.Pointer().Position

	components.AimDemo.Set(entry, &components.AimDemoData{
		Session:     aim.Mount(engine),
		Section:     section,
		Stage:       stage,
		TargetX:     target.X,
		TargetY:     target.Y,
		LastTarget:  target,
		CrossX:      pointer.X,
		CrossY:      pointer.Y,
		LastPointer: pointer,
	})
	addObject(ecs, entry, 0, 0, 1, 1, tags.ResolvDemo)
	return entry
}

// CreateFlightDiagram spawns the scroll-driven diagram for section.
func CreateFlightDiagram(ecs *ecs.ECS, section int, stage *scenery.Stage) *donburi.Entry {
	entry := archetypes.FlightDiagram.Spawn(ecs)
	mapper := flightpath.New(flightpath.DefaultConfig())
	components.FlightDiagram.Set(entry, &components.FlightDiagramData{
		Mapper:   mapper,
		Section:  section,
		Stage:    stage,
		Path:     mapper.Path(cfg.FlightDiagram.PathSamples),
		Position: mapper.PositionAt(0),
	})
	return entry
}
