package factory

import (
	"math"

	"github.com/automoto/trapschool/archetypes"
	"github.com/automoto/trapschool/components"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// pickCell is the edge of a picking grid cell in page pixels.
const pickCell = 32

// CreateSpace creates the page-space picking grid covering the whole page.
func CreateSpace(ecs *ecs.ECS, width, height float64) *donburi.Entry {
	space := archetypes.Space.Spawn(ecs)
	cols := int(math.Ceil(math.Max(width, 1)/pickCell)) * pickCell
	rows := int(math.Ceil(math.Max(height, 1)/pickCell)) * pickCell
	spaceData := resolv.NewSpace(cols, rows, pickCell, pickCell)
	components.Space.Set(space, spaceData)
	return space
}

// addObject registers a picking box for entry in the page space.
func addObject(ecs *ecs.ECS, entry *donburi.Entry, x, y, w, h float64, tags ...string) *resolv.Object {
	obj := resolv.NewObject(x, y, w, h, tags...)
	obj.Data = entry
	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}
	components.Object.Set(entry, &components.ObjectData{Object: obj})
	return obj
}
