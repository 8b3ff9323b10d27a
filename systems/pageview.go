package systems

import (
	"github.com/automoto/trapschool/components"
	"github.com/automoto/trapschool/layout"
	"github.com/automoto/trapschool/scenery"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// placement is where a block is drawn this tick, in screen pixels.
type placement struct {
	X, Y  float64
	Alpha float64
}

type liftKey struct {
	section, index int
}

// pageView gathers what is needed to place laid-out blocks on screen:
// scroll position, reveal offsets, hero parallax and hover lifts.
type pageView struct {
	page     *components.PageData
	sections []*components.SectionData
	hero     *components.HeroData
	scrollY  float64

	itemLift  map[liftKey]float64
	blockLift map[liftKey]float64
}

func newPageView(e *ecs.ECS) (*pageView, bool) {
	pageEntry, ok := components.Page.First(e.World)
	if !ok {
		return nil, false
	}
	v := &pageView{
		page:      components.Page.Get(pageEntry),
		itemLift:  make(map[liftKey]float64),
		blockLift: make(map[liftKey]float64),
	}
	v.sections = make([]*components.SectionData, len(v.page.Layout.Sections))

	components.Section.Each(e.World, func(entry *donburi.Entry) {
		s := components.Section.Get(entry)
		if s.Index >= 0 && s.Index < len(v.sections) {
			v.sections[s.Index] = s
		}
	})
	if heroEntry, ok := components.Hero.First(e.World); ok {
		v.hero = components.Hero.Get(heroEntry)
	}
	if cameraEntry, ok := components.Camera.First(e.World); ok {
		v.scrollY = components.Camera.Get(cameraEntry).Y()
	}

	components.Hover.Each(e.World, func(entry *donburi.Entry) {
		h := components.Hover.Get(entry)
		if h.Lift == 0 {
			return
		}
		if h.Item >= 0 && !entry.HasComponent(components.Link) {
			v.itemLift[liftKey{h.Section, h.Item}] = h.Lift
			return
		}
		v.blockLift[liftKey{h.Section, h.Block}] = h.Lift
	})
	return v, true
}

// top is the screen y of section i.
func (v *pageView) top(i int) float64 {
	return v.page.Layout.Tops[i] - v.scrollY
}

// anchor places block b of section si without hover lift.
func (v *pageView) anchor(si int, b layout.Block) placement {
	dx, dy, alpha := 0.0, 0.0, 1.0
	if sec := v.sections[si]; sec != nil {
		r := sec.Reveal
		if b.Item >= 0 && b.Item < len(sec.Items) {
			r = sec.Items[b.Item]
		}
		if r != nil {
			dx, dy, alpha = r.Offset()
		}
	}
	if b.Parallax && v.hero != nil && v.hero.Section == si {
		dy += v.hero.Parallax.TextShift * v.page.Layout.Sections[si].Height
		alpha *= v.hero.Parallax.TextOpacity
	}
	return placement{X: b.X + dx, Y: v.top(si) + b.Y + dy, Alpha: alpha}
}

// place is anchor raised by any hover lift on the block or its item.
func (v *pageView) place(si, bi int, b layout.Block) placement {
	p := v.anchor(si, b)
	if b.Item >= 0 {
		p.Y -= v.itemLift[liftKey{si, b.Item}]
	}
	p.Y -= v.blockLift[liftKey{si, bi}]
	return p
}

// panel finds the first block of kind in section si and returns its screen
// rectangle.
func (v *pageView) panel(si int, kind layout.BlockKind) (scenery.Rect, float64, bool) {
	if si < 0 || si >= len(v.page.Layout.Sections) {
		return scenery.Rect{}, 0, false
	}
	for _, b := range v.page.Layout.Sections[si].Blocks {
		if b.Kind == kind {
			p := v.anchor(si, b)
			return scenery.Rect{X: p.X, Y: p.Y, W: b.W, H: b.H}, p.Alpha, true
		}
	}
	return scenery.Rect{}, 0, false
}
