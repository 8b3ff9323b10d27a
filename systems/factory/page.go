package factory

import (
	"time"

	"github.com/automoto/trapschool/archetypes"
	"github.com/automoto/trapschool/components"
	cfg "github.com/automoto/trapschool/config"
	"github.com/automoto/trapschool/content"
	"github.com/automoto/trapschool/layout"
	"github.com/automoto/trapschool/scenery"
	"github.com/automoto/trapschool/scroll"
	"github.com/automoto/trapschool/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePage lays out page id for the given screen size and spawns the
// picking space and every entity the page needs.
func CreatePage(ecs *ecs.ECS, site *content.Site, id content.PageID, stages map[string]*scenery.Stage, width, viewportHeight float64) *donburi.Entry {
	page, _ := site.Page(id)
	lp := layout.LayoutPage(site, page, width, viewportHeight)
	if _, ok := components.Space.First(ecs.World); !ok {
		CreateSpace(ecs, width, lp.Height)
	}

	entry := archetypes.Page.Spawn(ecs)
	components.Page.Set(entry, &components.PageData{
		ID:            id,
		Page:          page,
		Site:          site,
		Stages:        stages,
		Layout:        lp,
		Width:         width,
		ContentHeight: lp.Height,
	})

	for i, ls := range lp.Sections {
		var sec content.Section
		if i < len(page.Sections) {
			sec = page.Sections[i]
		}
		CreateSection(ecs, i, sec, ls, lp.Tops[i])

		for bi, b := range ls.Blocks {
			switch {
			case b.Hoverable():
				CreateHoverBox(ecs, i, bi, b, lp.Tops[i])
			case b.Kind == layout.BlockDemo:
				CreateAimDemo(ecs, i, stages[scenery.Range])
			case b.Kind == layout.BlockDiagram:
				CreateFlightDiagram(ecs, i, stages[scenery.Diagram])
			}
		}
		if ls.Kind == content.KindHero {
			CreateHero(ecs, i)
		}
	}
	return entry
}

// CreateSection spawns the reveal state of one laid-out section. The hero
// and the footer are always shown.
func CreateSection(ecs *ecs.ECS, index int, sec content.Section, ls layout.Section, top float64) *donburi.Entry {
	entry := archetypes.Section.Spawn(ecs)
	data := &components.SectionData{
		Index:   index,
		Section: sec,
		Top:     top,
		Height:  ls.Height,
	}

	if ls.Kind != content.KindHero && ls.Kind != layout.KindFooter {
		dir := scroll.ParseDirection(sec.Direction)
		r := cfg.Reveal
		data.Reveal = scroll.NewReveal(dir, r.Distance, 0, r.Duration, r.Margin)
		for i := 0; i < ls.Items; i++ {
			delay := time.Duration(i) * r.Stagger
			data.Items = append(data.Items, scroll.NewReveal(dir, r.Distance, delay, r.Duration, r.Margin))
		}
	}

	components.Section.Set(entry, data)
	return entry
}

// CreateHoverBox spawns a pickable card or button. Buttons also carry their
// link.
func CreateHoverBox(ecs *ecs.ECS, section, block int, b layout.Block, top float64) *donburi.Entry {
	var entry *donburi.Entry
	tag := tags.ResolvCard
	raise := cfg.Layout.HoverLift
	if b.Kind == layout.BlockButton {
		entry = archetypes.Button.Spawn(ecs)
		tag = tags.ResolvButton
		raise = 2
		if b.Link != nil {
			components.Link.Set(entry, &components.LinkData{Link: *b.Link})
		}
	} else {
		entry = archetypes.Card.Spawn(ecs)
	}

	components.Hover.Set(entry, &components.HoverData{
		Section:  section,
		Block:    block,
		Item:     b.Item,
		LocalX:   b.X,
		LocalY:   b.Y,
		W:        b.W,
		H:        b.H,
		Parallax: b.Parallax,
		Raise:    raise,
	})
	addObject(ecs, entry, b.X, top+b.Y, b.W, b.H, tag)
	return entry
}
