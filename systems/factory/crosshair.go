package factory

import (
	"github.com/automoto/trapschool/aim"
	"github.com/automoto/trapschool/archetypes"
	"github.com/automoto/trapschool/components"
	cfg "github.com/automoto/trapschool/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateCrosshair spawns the page-wide crosshair, hidden until the pointer
// moves.
func CreateCrosshair(ecs *ecs.ECS) *donburi.Entry {
	entry := archetypes.Crosshair.Spawn(ecs)
	components.Crosshair.Set(entry, &components.CrosshairData{
		Cursor: aim.NewCursor(cfg.Crosshair.Size),
	})
	return entry
}
