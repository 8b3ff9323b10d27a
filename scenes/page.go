package scenes

import (
	"log"
	"sync"

	"github.com/automoto/trapschool/components"
	cfg "github.com/automoto/trapschool/config"
	"github.com/automoto/trapschool/content"
	"github.com/automoto/trapschool/scenery"
	"github.com/automoto/trapschool/systems"
	"github.com/automoto/trapschool/systems/factory"
	"github.com/automoto/trapschool/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SceneChanger switches the scene shown by the game.
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// PageScene shows one page of the site. It is rebuilt in place when the
// window width changes and replaced when a page link is followed.
type PageScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	site         *content.Site
	stages       map[string]*scenery.Stage
	id           content.PageID
	nav          *ui.NavUI
	width        int
	once         sync.Once
}

// NewPageScene creates the scene for page id.
func NewPageScene(sc SceneChanger, site *content.Site, stages map[string]*scenery.Stage, id content.PageID) *PageScene {
	return &PageScene{sceneChanger: sc, site: site, stages: stages, id: id}
}

func (ps *PageScene) Update() {
	ps.once.Do(ps.configure)

	if cfg.C.Width != ps.width {
		ps.rebuild()
	}

	ps.ecs.Update()

	pageEntry, ok := components.Page.First(ps.ecs.World)
	if !ok {
		return
	}
	page := components.Page.Get(pageEntry)
	if link := page.Pending; link != nil {
		page.Pending = nil
		if _, ok := ps.site.Page(link.Page); !ok {
			log.Printf("Unknown page %q", link.Page)
			return
		}
		ps.teardown()
		ps.sceneChanger.ChangeScene(NewPageScene(ps.sceneChanger, ps.site, ps.stages, link.Page))
	}
}

func (ps *PageScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(cfg.Background)

	if ps.ecs == nil {
		return
	}
	ps.ecs.DrawLayer(cfg.Default, screen)
	ps.nav.Draw(screen)
	ps.ecs.DrawLayer(cfg.Overlay, screen)
}

func (ps *PageScene) configure() {
	ps.build(0, nil)
	ps.nav = ui.NewNavUI(ps.site, ps.navData(), ps.id, func(link content.Link) {
		systems.Navigate(ps.ecs, link)
	})
}

// rebuild lays the page out again for the new width, keeping the scroll
// position and the navigation state.
func (ps *PageScene) rebuild() {
	scrollY := 0.0
	if cameraEntry, ok := components.Camera.First(ps.ecs.World); ok {
		scrollY = components.Camera.Get(cameraEntry).Y()
	}
	prev := ps.navData()
	ps.teardown()
	ps.build(scrollY, prev)
	ps.nav.Nav = ps.navData()
}

func (ps *PageScene) build(scrollY float64, nav *components.NavData) {
	world := ecs.NewECS(donburi.NewWorld())

	// Audio system (runs first)
	world.AddSystem(systems.UpdateAudio)

	world.AddSystem(systems.UpdateInput)
	world.AddSystem(func(e *ecs.ECS) {
		if ps.nav != nil {
			ps.nav.Update(e)
		}
	})
	world.AddSystem(systems.UpdateNavigationKeys)
	world.AddSystem(systems.UpdateCamera)
	world.AddSystem(systems.UpdateSections)
	world.AddSystem(systems.UpdateHero)
	world.AddSystem(systems.UpdateHeroClays)
	world.AddSystem(systems.UpdatePickables)
	world.AddSystem(systems.UpdateObjects)
	world.AddSystem(systems.UpdateHover)
	world.AddSystem(systems.UpdateAimDemo)
	world.AddSystem(systems.UpdateFlightDiagram)
	world.AddSystem(systems.UpdateCrosshair)
	world.AddSystem(systems.UpdateEffects)

	// Add renderers
	world.AddRenderer(cfg.Default, systems.DrawPage)
	world.AddRenderer(cfg.Default, systems.DrawAimDemo)
	world.AddRenderer(cfg.Default, systems.DrawFlightDiagram)
	world.AddRenderer(cfg.Overlay, systems.DrawCrosshair)
	world.AddRenderer(cfg.Overlay, systems.DrawDebug)

	ps.ecs = world
	ps.width = cfg.C.Width

	width, height := float64(cfg.C.Width), float64(cfg.C.Height)
	pageEntry := factory.CreatePage(ps.ecs, ps.site, ps.id, ps.stages, width, height)
	factory.CreateCamera(ps.ecs, height, components.Page.Get(pageEntry).ContentHeight, scrollY)
	factory.CreatePointerProbe(ps.ecs)
	factory.CreateNav(ps.ecs, nav)
	if ps.id == content.PageHome {
		factory.CreateCrosshair(ps.ecs)
	}
}

func (ps *PageScene) navData() *components.NavData {
	entry, ok := components.Nav.First(ps.ecs.World)
	if !ok {
		return nil
	}
	return components.Nav.Get(entry)
}

// teardown stops the demo sessions and hands the system cursor back.
func (ps *PageScene) teardown() {
	components.AimDemo.Each(ps.ecs.World, func(entry *donburi.Entry) {
		components.AimDemo.Get(entry).Session.Stop()
	})
	ebiten.SetCursorMode(ebiten.CursorModeVisible)
	ebiten.SetCursorShape(ebiten.CursorShapeDefault)
}
