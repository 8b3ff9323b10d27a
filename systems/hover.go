package systems

import (
	"log"

	"github.com/automoto/trapschool/components"
	cfg "github.com/automoto/trapschool/config"
	"github.com/automoto/trapschool/content"
	"github.com/automoto/trapschool/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/solarlune/resolv"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePickables moves every hover box and the pointer probe to where they
// are drawn this tick, in page space. UpdateObjects then re-buckets them.
func UpdatePickables(e *ecs.ECS) {
	view, ok := newPageView(e)
	if !ok {
		return
	}

	components.Hover.Each(e.World, func(entry *donburi.Entry) {
		h := components.Hover.Get(entry)
		if h.Section >= len(view.page.Layout.Sections) {
			return
		}
		blocks := view.page.Layout.Sections[h.Section].Blocks
		if h.Block >= len(blocks) {
			return
		}
		p := view.anchor(h.Section, blocks[h.Block])
		obj := components.Object.Get(entry)
		obj.X = p.X
		obj.Y = p.Y + view.scrollY
	})

	if probe, ok := components.Pointer.First(e.World); ok {
		p := components.Pointer.Get(probe)
		obj := components.Object.Get(probe)
		obj.X, obj.Y = p.X, p.Y+view.scrollY
		if !p.Inside || p.OverNav {
			// park the probe off the page
			obj.X, obj.Y = -10, -10
		}
	}
}

// UpdateHover picks the box under the pointer, animates hover lifts and
// turns clicks on links into navigation requests.
func UpdateHover(e *ecs.ECS) {
	probe, ok := tags.Pointer.First(e.World)
	if !ok {
		return
	}
	pointer := components.Pointer.Get(probe)
	probeObj := components.Object.Get(probe).Object

	hovered := pick(probeObj)
	dt := float32(cfg.TickDuration().Seconds())
	overLink := false

	components.Hover.Each(e.World, func(entry *donburi.Entry) {
		h := components.Hover.Get(entry)
		over := entry == hovered
		if over != h.Hovered {
			h.Hovered = over
			target := 0.0
			if over {
				target = h.Raise
			}
			h.LiftTween = gween.New(float32(h.Lift), float32(target), float32(cfg.Layout.HoverDuration.Seconds()), ease.OutQuad)
		}
		if h.LiftTween != nil {
			v, done := h.LiftTween.Update(dt)
			h.Lift = float64(v)
			if done {
				h.LiftTween = nil
			}
		}
		if over && entry.HasComponent(components.Link) {
			overLink = true
		}
	})

	if pointer.Inside && !pointer.OverNav {
		if overLink {
			ebiten.SetCursorShape(ebiten.CursorShapePointer)
		} else {
			ebiten.SetCursorShape(ebiten.CursorShapeDefault)
		}
	}

	if hovered == nil || !pointer.JustClicked || !hovered.HasComponent(components.Link) {
		return
	}
	Navigate(e, components.Link.Get(hovered).Link)
}

// pick returns the entry of the topmost box overlapping the probe. The
// space check is a cell broadphase, so boxes are confirmed by their bounds.
func pick(probe *resolv.Object) *donburi.Entry {
	check := probe.Check(0, 0, tags.ResolvButton, tags.ResolvCard)
	if check == nil {
		return nil
	}
	var best *donburi.Entry
	bestIsButton := false
	for _, obj := range check.Objects {
		if !contains(obj, probe.X, probe.Y) {
			continue
		}
		entry, ok := obj.Data.(*donburi.Entry)
		if !ok {
			continue
		}
		// buttons sit on top of cards
		isButton := obj.HasTags(tags.ResolvButton)
		if best == nil || (isButton && !bestIsButton) {
			best, bestIsButton = entry, isButton
		}
	}
	return best
}

func contains(obj *resolv.Object, x, y float64) bool {
	return x >= obj.X && x < obj.X+obj.W && y >= obj.Y && y < obj.Y+obj.H
}

// Navigate records link as this tick's navigation request. Page links are
// followed by the scene; external targets are reported.
func Navigate(e *ecs.ECS, link content.Link) {
	pageEntry, ok := components.Page.First(e.World)
	if !ok {
		return
	}
	if link.Page == "" {
		log.Printf("Open %s (%s)", link.Href, link.Label)
		return
	}
	PlaySFX(e, cfg.SoundNavigate)
	l := link
	components.Page.Get(pageEntry).Pending = &l
}
