package systems

import (
	"math"
	"testing"

	"github.com/automoto/trapschool/aim"
	"github.com/automoto/trapschool/components"
	cfg "github.com/automoto/trapschool/config"
	"github.com/automoto/trapschool/content"
	"github.com/automoto/trapschool/fonts"
	"github.com/automoto/trapschool/scenery"
	"github.com/automoto/trapschool/systems/factory"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func loadSite(t *testing.T) *content.Site {
	t.Helper()
	fonts.LoadDefaults()
	site, err := content.Default()
	if err != nil {
		t.Fatalf("expected site content, got %v", err)
	}
	return site
}

// newPageWorld mounts page id the way the page scene does, minus rendering.
func newPageWorld(t *testing.T, id content.PageID) *ecs.ECS {
	t.Helper()
	site := loadSite(t)
	e := ecs.NewECS(donburi.NewWorld())
	width, height := float64(cfg.C.Width), float64(cfg.C.Height)
	page := factory.CreatePage(e, site, id, scenery.MustLoadBuiltin(), width, height)
	factory.CreateCamera(e, height, components.Page.Get(page).ContentHeight, 0)
	factory.CreatePointerProbe(e)
	return e
}

func TestAdjacentPage(t *testing.T) {
	site := loadSite(t)
	first, last := site.Nav[0].Page, site.Nav[len(site.Nav)-1].Page

	if next, ok := AdjacentPage(site, first, 1); !ok || next != site.Nav[1].Page {
		t.Errorf("expected %q after %q, got %q (%v)", site.Nav[1].Page, first, next, ok)
	}
	if _, ok := AdjacentPage(site, first, -1); ok {
		t.Error("expected no page before the first")
	}
	if _, ok := AdjacentPage(site, last, 1); ok {
		t.Error("expected no page after the last")
	}
	if _, ok := AdjacentPage(site, "missing", 1); ok {
		t.Error("expected unknown page to have no neighbour")
	}
}

func TestToPercent(t *testing.T) {
	rect := scenery.Rect{X: 100, Y: 200, W: 400, H: 200}
	tests := []struct {
		name string
		x, y float64
		want aim.Position
	}{
		{"top left", 100, 200, aim.Position{X: 0, Y: 0}},
		{"center", 300, 300, aim.Position{X: 50, Y: 50}},
		{"bottom right", 500, 400, aim.Position{X: 100, Y: 100}},
		{"clamped outside", 0, 1000, aim.Position{X: 0, Y: 100}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ToPercent(rect, tt.x, tt.y)
			if got != tt.want {
				t.Errorf("Expected %+v, got %+v", tt.want, got)
			}
		})
	}
	if got := ToPercent(scenery.Rect{}, 10, 10); got != (aim.Position{}) {
		t.Errorf("expected origin for an empty rect, got %+v", got)
	}
}

func TestRepeated(t *testing.T) {
	input := &components.InputData{}
	id := cfg.ActionScrollDown
	delay := cfg.Input.RepeatDelay

	fired := 0
	for tick := 1; tick <= delay+6; tick++ {
		input.HeldTicks[id] = tick
		if Repeated(input, id) {
			fired++
		}
	}
	// first press plus one repeat every other tick after the delay
	if fired != 4 {
		t.Errorf("expected 4 scroll steps, got %d", fired)
	}
	input.HeldTicks[id] = 0
	if Repeated(input, id) {
		t.Error("expected no step when released")
	}
}

func TestApplyDeadzone(t *testing.T) {
	tests := []struct {
		v, deadzone, want float64
	}{
		{0.1, 0.2, 0},
		{-0.2, 0.2, 0},
		{0.6, 0.2, 0.5},
		{-1, 0.2, -1},
		{0.5, 1, 0},
	}
	for _, tt := range tests {
		if got := applyDeadzone(tt.v, tt.deadzone); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("applyDeadzone(%v, %v) = %v, expected %v", tt.v, tt.deadzone, got, tt.want)
		}
	}
}

func TestApplyClayFrame(t *testing.T) {
	clay := &components.HeroClayData{}
	sprite := &components.SpriteData{}

	applyClayFrame(clay, sprite)
	if sprite.X != -100 || sprite.Y != 100 || !sprite.Hidden {
		t.Errorf("expected hidden clay at its entry point, got %+v", sprite)
	}

	clay.Frame = 1
	applyClayFrame(clay, sprite)
	if sprite.X != 0 || sprite.Y != 0 || sprite.Alpha != 1 || sprite.Hidden {
		t.Errorf("expected visible clay at rest, got %+v", sprite)
	}
	if math.Abs(sprite.Rotation-math.Pi) > 1e-9 {
		t.Errorf("expected half a turn, got %v", sprite.Rotation)
	}

	clay.Frame = 1.5
	applyClayFrame(clay, sprite)
	if sprite.X != 100 || sprite.Y != -25 || sprite.Alpha != 0.5 {
		t.Errorf("expected halfway through the exit, got %+v", sprite)
	}
}

func TestStepTween(t *testing.T) {
	var tw *gween.Tween
	if got := stepTween(&tw, 7, 0.1); got != 7 {
		t.Errorf("expected value kept without a tween, got %v", got)
	}

	tw = gween.New(0, 10, 1, ease.Linear)
	if got := stepTween(&tw, 0, 0.5); math.Abs(got-5) > 1e-4 {
		t.Errorf("expected halfway value, got %v", got)
	}
	if got := stepTween(&tw, 5, 1); got != 10 || tw != nil {
		t.Errorf("expected finished tween to be dropped at 10, got %v (%v)", got, tw)
	}
}

func TestPickPrefersButtons(t *testing.T) {
	e := newPageWorld(t, content.PageClasses)
	probe, _ := components.Pointer.First(e.World)
	probeObj := components.Object.Get(probe).Object

	// a booking button sits inside its pricing card
	var button *donburi.Entry
	components.Link.Each(e.World, func(entry *donburi.Entry) {
		h := components.Hover.Get(entry)
		if button == nil && h.Item >= 0 {
			button = entry
		}
	})
	if button == nil {
		t.Fatal("expected a button inside a card")
	}
	obj := components.Object.Get(button)
	probeObj.X, probeObj.Y = obj.X+obj.W/2, obj.Y+obj.H/2
	probeObj.Update()

	if got := pick(probeObj); got != button {
		t.Error("expected the button to win over its card")
	}

	probeObj.X, probeObj.Y = -10, -10
	probeObj.Update()
	if got := pick(probeObj); got != nil {
		t.Error("expected nothing under a parked probe")
	}
}

func TestUpdateHoverLiftsCard(t *testing.T) {
	e := newPageWorld(t, content.PageHome)
	probe, _ := components.Pointer.First(e.World)
	pointer := components.Pointer.Get(probe)

	var card *donburi.Entry
	components.Hover.Each(e.World, func(entry *donburi.Entry) {
		if card == nil && !entry.HasComponent(components.Link) {
			card = entry
		}
	})
	if card == nil {
		t.Fatal("expected a card on the home page")
	}

	UpdatePickables(e)
	obj := components.Object.Get(card)
	pointer.Inside = true
	pointer.X, pointer.Y = obj.X+obj.W/2, obj.Y+obj.H/2

	frames := int(cfg.Layout.HoverDuration.Seconds()*float64(cfg.C.TPS)) + 2
	for i := 0; i < frames; i++ {
		UpdatePickables(e)
		UpdateObjects(e)
		UpdateHover(e)
	}
	h := components.Hover.Get(card)
	if !h.Hovered || math.Abs(h.Lift-cfg.Layout.HoverLift) > 1e-3 {
		t.Errorf("expected card lifted by %v, got %v (hovered %v)", cfg.Layout.HoverLift, h.Lift, h.Hovered)
	}
}

func TestAimDemoClickScores(t *testing.T) {
	e := newPageWorld(t, content.PageHowToAim)
	probe, _ := components.Pointer.First(e.World)
	pointer := components.Pointer.Get(probe)

	UpdateAimDemo(e)
	entry, ok := components.AimDemo.First(e.World)
	if !ok {
		t.Fatal("expected the aim demo to be mounted")
	}
	demo := components.AimDemo.Get(entry)
	if demo.Rect.W <= 0 || demo.Rect.H <= 0 {
		t.Fatalf("expected a laid-out panel, got %+v", demo.Rect)
	}

	target := demo.Session.Engine().Target().Position
	pointer.Inside, pointer.Moved, pointer.JustClicked = true, true, true
	pointer.X = demo.Rect.X + target.X/100*demo.Rect.W
	pointer.Y = demo.Rect.Y + target.Y/100*demo.Rect.H
	UpdateAimDemo(e)

	if score := demo.Session.Engine().Target().Score; score != 1 {
		t.Errorf("expected one hit, got %d", score)
	}
	flashes := 0
	components.HitFlash.Each(e.World, func(*donburi.Entry) { flashes++ })
	if flashes != 1 {
		t.Errorf("expected one hit flash, got %d", flashes)
	}
	if dx, dy := ShakeOffset(entry); dx == 0 && dy == 0 && !entry.HasComponent(components.ScreenShake) {
		t.Error("expected the panel to shake")
	}
	sounds := GetOrCreateAudio(e).PendingSFX
	if len(sounds) != 1 || sounds[0] != cfg.SoundShatter {
		t.Errorf("expected the shatter sound, got %v", sounds)
	}
}

func TestAimDemoIgnoresClicksOutside(t *testing.T) {
	e := newPageWorld(t, content.PageHowToAim)
	probe, _ := components.Pointer.First(e.World)
	pointer := components.Pointer.Get(probe)

	UpdateAimDemo(e)
	entry, _ := components.AimDemo.First(e.World)
	demo := components.AimDemo.Get(entry)

	pointer.Inside, pointer.JustClicked = true, true
	pointer.X, pointer.Y = demo.Rect.X-20, demo.Rect.Y-20
	UpdateAimDemo(e)

	if demo.Hovered {
		t.Error("expected the panel not to be hovered")
	}
	if score := demo.Session.Engine().Target().Score; score != 0 {
		t.Errorf("expected no hit, got %d", score)
	}
}

func TestAimDemoSkipsStoppedSession(t *testing.T) {
	e := newPageWorld(t, content.PageHowToAim)
	probe, _ := components.Pointer.First(e.World)
	pointer := components.Pointer.Get(probe)

	UpdateAimDemo(e)
	entry, _ := components.AimDemo.First(e.World)
	demo := components.AimDemo.Get(entry)
	rect := demo.Rect
	target := demo.Session.Engine().Target().Position
	demo.Session.Stop()

	pointer.Inside, pointer.Moved, pointer.JustClicked = true, true, true
	pointer.X = rect.X + target.X/100*rect.W
	pointer.Y = rect.Y + target.Y/100*rect.H
	UpdateAimDemo(e)

	if demo.Hovered {
		t.Error("expected a stopped demo to ignore the pointer")
	}
	if score := demo.Session.Engine().Target().Score; score != 0 {
		t.Errorf("expected no hit after Stop, got %d", score)
	}
	if len(GetOrCreateAudio(e).PendingSFX) != 0 {
		t.Error("expected no sound from a stopped demo")
	}
}

func TestFlightDiagramFollowsScroll(t *testing.T) {
	e := newPageWorld(t, content.PageWhatIsTrap)
	entry, ok := components.FlightDiagram.First(e.World)
	if !ok {
		t.Fatal("expected the flight diagram to be mounted")
	}
	d := components.FlightDiagram.Get(entry)

	UpdateFlightDiagram(e)
	start := d.Progress

	cameraEntry, _ := components.Camera.First(e.World)
	vp := components.Camera.Get(cameraEntry)
	pageEntry, _ := components.Page.First(e.World)
	lp := components.Page.Get(pageEntry).Layout
	vp.Jump(lp.Tops[d.Section])

	UpdateFlightDiagram(e)
	if d.Progress <= start {
		t.Errorf("expected progress to grow with scrolling, got %v then %v", start, d.Progress)
	}
	if d.Position != d.Mapper.PositionAt(d.Progress) {
		t.Errorf("expected position mapped from progress, got %+v", d.Position)
	}
}

func TestNavigateQueuesPageLinks(t *testing.T) {
	e := newPageWorld(t, content.PageHome)
	Navigate(e, content.Link{Label: "Classes", Page: content.PageClasses})

	pageEntry, _ := components.Page.First(e.World)
	pending := components.Page.Get(pageEntry).Pending
	if pending == nil || pending.Page != content.PageClasses {
		t.Errorf("expected a pending navigation to classes, got %+v", pending)
	}

	components.Page.Get(pageEntry).Pending = nil
	Navigate(e, content.Link{Label: "Call", Href: "tel:+1234567890"})
	if components.Page.Get(pageEntry).Pending != nil {
		t.Error("expected external links not to navigate")
	}
}

func TestMuteAndVolume(t *testing.T) {
	vol, muted := GetSFXVolume(), Muted()
	defer func() {
		SetSFXVolume(vol)
		if Muted() != muted {
			ToggleMute()
		}
	}()

	SetSFXVolume(0.25)
	if GetSFXVolume() != 0.25 {
		t.Errorf("expected volume 0.25, got %v", GetSFXVolume())
	}
	ToggleMute()
	if Muted() == muted {
		t.Error("expected mute to toggle")
	}
}
