package systems

import (
	"github.com/automoto/trapschool/components"
	"github.com/automoto/trapschool/layout"
	"github.com/automoto/trapschool/scroll"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateFlightDiagram maps the diagram's progress through the viewport onto
// the clay's arc.
func UpdateFlightDiagram(e *ecs.ECS) {
	view, ok := newPageView(e)
	if !ok {
		return
	}
	viewH := 0.0
	if cameraEntry, ok := components.Camera.First(e.World); ok {
		viewH = components.Camera.Get(cameraEntry).Height
	}

	components.FlightDiagram.Each(e.World, func(entry *donburi.Entry) {
		d := components.FlightDiagram.Get(entry)
		rect, _, found := view.panel(d.Section, layout.BlockDiagram)
		if !found {
			return
		}
		d.Rect = rect

		// progress follows the unrevealed position so the slide-in does not
		// move the clay
		pageTop := rect.Y + view.scrollY
		if sec := view.sections[d.Section]; sec != nil && sec.Reveal != nil {
			_, dy, _ := sec.Reveal.Offset()
			pageTop -= dy
		}
		d.Progress = scroll.ElementProgress(view.scrollY, viewH, pageTop, rect.H)
		d.Position = d.Mapper.PositionAt(d.Progress)
		d.Rotation = d.Mapper.RotationAt(d.Progress)
	})
}
