package factory

import (
	"github.com/automoto/trapschool/archetypes"
	"github.com/automoto/trapschool/components"
	cfg "github.com/automoto/trapschool/config"
	"github.com/automoto/trapschool/scroll"
	"github.com/automoto/trapschool/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateCamera creates the page viewport, starting at scrollY.
func CreateCamera(ecs *ecs.ECS, viewportHeight, contentHeight, scrollY float64) *donburi.Entry {
	camera := archetypes.Camera.Spawn(ecs)
	vp := scroll.NewViewport(viewportHeight, contentHeight, cfg.Scroll.Smoothing)
	vp.Jump(scrollY)
	components.Camera.Set(camera, &components.CameraData{Viewport: vp})
	return camera
}

// CreatePointerProbe creates the 1x1 picking object that follows the mouse.
func CreatePointerProbe(ecs *ecs.ECS) *donburi.Entry {
	probe := archetypes.PointerProbe.Spawn(ecs)
	addObject(ecs, probe, -1, -1, 1, 1, tags.ResolvPointer)
	return probe
}
