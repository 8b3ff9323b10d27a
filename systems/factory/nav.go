package factory

import (
	"github.com/automoto/trapschool/archetypes"
	"github.com/automoto/trapschool/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateNav creates the navigation bar state, carrying over prev when the
// page is rebuilt in place.
func CreateNav(ecs *ecs.ECS, prev *components.NavData) *donburi.Entry {
	entry := archetypes.Nav.Spawn(ecs)
	data := &components.NavData{}
	if prev != nil {
		*data = *prev
	}
	components.Nav.Set(entry, data)
	return entry
}
