package factory

import (
	"testing"

	"github.com/automoto/trapschool/aim"
	"github.com/automoto/trapschool/components"
	cfg "github.com/automoto/trapschool/config"
	"github.com/automoto/trapschool/content"
	"github.com/automoto/trapschool/fonts"
	"github.com/automoto/trapschool/layout"
	"github.com/automoto/trapschool/scenery"
	"github.com/automoto/trapschool/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/filter"
)

func mountPage(t *testing.T, id content.PageID) (*ecs.ECS, *components.PageData) {
	t.Helper()
	fonts.LoadDefaults()
	site, err := content.Default()
	if err != nil {
		t.Fatalf("expected site content, got %v", err)
	}
	e := ecs.NewECS(donburi.NewWorld())
	entry := CreatePage(e, site, id, scenery.MustLoadBuiltin(), 1280, 720)
	return e, components.Page.Get(entry)
}

func count(e *ecs.ECS, c donburi.IComponentType) int {
	n := 0
	donburi.NewQuery(filter.Contains(c)).Each(e.World, func(*donburi.Entry) { n++ })
	return n
}

func TestCreatePageSpawnsSections(t *testing.T) {
	e, page := mountPage(t, content.PageHome)

	if got := count(e, components.Section); got != len(page.Layout.Sections) {
		t.Errorf("expected %d sections, got %d", len(page.Layout.Sections), got)
	}
	if _, ok := components.Space.First(e.World); !ok {
		t.Fatal("expected the picking space")
	}
	if count(e, components.Hero) != 1 {
		t.Error("expected one hero on the home page")
	}
	if got := count(e, components.HeroClay); got != len(heroClays) {
		t.Errorf("expected %d hero clays, got %d", len(heroClays), got)
	}

	hoverable := 0
	for _, s := range page.Layout.Sections {
		for _, b := range s.Blocks {
			if b.Hoverable() {
				hoverable++
			}
		}
	}
	if got := count(e, components.Hover); got != hoverable {
		t.Errorf("expected %d hover boxes, got %d", hoverable, got)
	}
}

func TestHeroAndFooterSkipReveal(t *testing.T) {
	e, page := mountPage(t, content.PageHome)

	components.Section.Each(e.World, func(entry *donburi.Entry) {
		s := components.Section.Get(entry)
		kind := page.Layout.Sections[s.Index].Kind
		hidden := s.Reveal != nil
		if (kind == content.KindHero || kind == layout.KindFooter) && hidden {
			t.Errorf("expected section %d (%s) to be shown without a reveal", s.Index, kind)
		}
		if kind != content.KindHero && kind != layout.KindFooter && !hidden {
			t.Errorf("expected section %d (%s) to reveal on scroll", s.Index, kind)
		}
		if len(s.Items) != page.Layout.Sections[s.Index].Items && s.Reveal != nil {
			t.Errorf("expected %d item reveals in section %d, got %d", page.Layout.Sections[s.Index].Items, s.Index, len(s.Items))
		}
	})
}

func TestPanelsMountOnTheirPages(t *testing.T) {
	e, _ := mountPage(t, content.PageHowToAim)
	if count(e, components.AimDemo) != 1 {
		t.Error("expected one aim demo on the how-to-aim page")
	}
	entry, _ := components.AimDemo.First(e.World)
	demo := components.AimDemo.Get(entry)
	if !demo.Session.Active() {
		t.Error("expected the demo session to be mounted")
	}
	if demo.Stage == nil || demo.Stage.Name != scenery.Range {
		t.Error("expected the range backdrop")
	}
	if !components.Object.Get(entry).HasTags(tags.ResolvDemo) {
		t.Error("expected the demo to be pickable")
	}

	e, _ = mountPage(t, content.PageWhatIsTrap)
	entry, ok := components.FlightDiagram.First(e.World)
	if !ok {
		t.Fatal("expected the flight diagram on the what-is-trap page")
	}
	d := components.FlightDiagram.Get(entry)
	if len(d.Path) != cfg.FlightDiagram.PathSamples {
		t.Errorf("expected %d path samples, got %d", cfg.FlightDiagram.PathSamples, len(d.Path))
	}
}

func TestButtonsCarryLinks(t *testing.T) {
	e, _ := mountPage(t, content.PageClasses)
	buttons, links := 0, 0
	tags.Button.Each(e.World, func(entry *donburi.Entry) {
		buttons++
		if entry.HasComponent(components.Link) {
			links++
		}
		if h := components.Hover.Get(entry); h.Raise != 2 {
			t.Errorf("expected buttons to rise 2px, got %v", h.Raise)
		}
	})
	if buttons == 0 || links != buttons {
		t.Errorf("expected every button to carry a link, got %d of %d", links, buttons)
	}
}

func TestSpawnHitFlashExpires(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	entry := SpawnHitFlash(e, aim.HitEvent{Position: aim.Position{X: 40, Y: 50}}, 0.5)

	f := components.HitFlash.Get(entry)
	if f.X != 40 || f.Y != 50 || f.Opacity != 1 {
		t.Errorf("unexpected flash %+v", f)
	}
	if frames := components.AutoDestroy.Get(entry).FramesRemaining; frames != 31 {
		t.Errorf("expected 31 frames at 60 TPS, got %d", frames)
	}
}

func TestCreateNavCarriesState(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	entry := CreateNav(e, &components.NavData{Compact: true, MenuOpen: true})
	nav := components.Nav.Get(entry)
	if !nav.Compact || !nav.MenuOpen {
		t.Errorf("expected state carried over, got %+v", nav)
	}
	if nav := components.Nav.Get(CreateNav(e, nil)); nav.Compact || nav.MenuOpen {
		t.Errorf("expected fresh state, got %+v", nav)
	}
}

func TestCameraStartsAtScroll(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	vp := components.Camera.Get(CreateCamera(e, 720, 3000, 500))
	if vp.Y() != 500 {
		t.Errorf("expected scroll 500, got %v", vp.Y())
	}
	vp = components.Camera.Get(CreateCamera(e, 720, 1000, 5000))
	if vp.Y() != vp.MaxScroll() {
		t.Errorf("expected scroll clamped to %v, got %v", vp.MaxScroll(), vp.Y())
	}
}
