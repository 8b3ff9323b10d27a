package systems

import (
	"github.com/automoto/trapschool/components"
	cfg "github.com/automoto/trapschool/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateSections latches each section's reveal once it scrolls into view and
// advances the reveal animations.
func UpdateSections(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	vp := components.Camera.Get(cameraEntry).Viewport
	dt := cfg.TickDuration()

	components.Section.Each(e.World, func(entry *donburi.Entry) {
		s := components.Section.Get(entry)
		if s.Reveal != nil {
			s.Reveal.Observe(vp.Y(), vp.Height, s.Top, s.Height)
			s.Reveal.Advance(dt)
		}
		for _, r := range s.Items {
			r.Observe(vp.Y(), vp.Height, s.Top, s.Height)
			r.Advance(dt)
		}
	})
}
