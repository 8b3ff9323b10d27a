package ui

import (
	"bytes"
	"image/color"

	"github.com/automoto/trapschool/components"
	cfg "github.com/automoto/trapschool/config"
	"github.com/automoto/trapschool/content"
	"github.com/automoto/trapschool/systems"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

// NavUI is the fixed navigation bar drawn over every page. Below the compact
// width its links fold into a toggled menu.
type NavUI struct {
	UI   *ebitenui.UI
	Site *content.Site
	Nav  *components.NavData

	// Callbacks
	OnNavigate func(content.Link)

	active content.PageID
	menu   *widget.Container
	width  int
	built  bool

	// Slide-in and background fade
	slide     *gween.Tween
	offset    float64
	fade      *gween.Tween
	backdrop  float64
	offscreen *ebiten.Image

	brandFace text.Face
	linkFace  text.Face
}

// NewNavUI creates the navigation bar for site with page marked active.
func NewNavUI(site *content.Site, nav *components.NavData, active content.PageID, onNavigate func(content.Link)) *NavUI {
	nui := &NavUI{
		Site:       site,
		Nav:        nav,
		OnNavigate: onNavigate,
		active:     active,
		offset:     -cfg.Nav.Height,
		slide:      gween.New(float32(-cfg.Nav.Height), 0, float32(cfg.Nav.SlideIn.Seconds()), ease.OutCubic),
	}
	nui.loadFonts()
	return nui
}

func (nui *NavUI) loadFonts() {
	regular, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic(err)
	}
	bold, err := text.NewGoTextFaceSource(bytes.NewReader(gobold.TTF))
	if err != nil {
		panic(err)
	}
	nui.brandFace = &text.GoTextFace{Source: bold, Size: 22}
	nui.linkFace = &text.GoTextFace{Source: regular, Size: 15}
}

// Height is how far down the bar, and the open menu below it, reaches.
func (nui *NavUI) Height() float64 {
	h := cfg.Nav.Height + nui.offset
	if nui.Nav.MenuOpen && nui.menu != nil {
		if bottom := float64(nui.menu.GetWidget().Rect.Max.Y) + nui.offset; bottom > h {
			h = bottom
		}
	}
	return h
}

// Update reacts to resizes, the menu toggle and scrolling, then lets the
// widgets handle the pointer.
func (nui *NavUI) Update(e *ecs.ECS) {
	input := systems.GetOrCreateInput(e)
	dt := float32(cfg.TickDuration().Seconds())

	compact := cfg.C.Width < cfg.Nav.CompactWidth
	menuOpen := nui.Nav.MenuOpen && compact
	if compact && systems.GetAction(input, cfg.ActionToggleMenu).JustPressed {
		menuOpen = !menuOpen
	}
	if !nui.built || compact != nui.Nav.Compact || menuOpen != nui.Nav.MenuOpen || cfg.C.Width != nui.width {
		nui.Nav.Compact, nui.Nav.MenuOpen, nui.width = compact, menuOpen, cfg.C.Width
		nui.buildUI()
	}

	if cameraEntry, ok := components.Camera.First(e.World); ok {
		scrolled := components.Camera.Get(cameraEntry).Scrolled(cfg.Nav.ScrolledThreshold)
		if scrolled != nui.Nav.Scrolled {
			nui.Nav.Scrolled = scrolled
			to := float32(0)
			if scrolled {
				to = 1
			}
			nui.fade = gween.New(float32(nui.backdrop), to, float32(cfg.Nav.ColorFade.Seconds()), ease.Linear)
		}
	}
	if nui.fade != nil {
		v, done := nui.fade.Update(dt)
		nui.backdrop = float64(v)
		if done {
			nui.fade = nil
		}
	}
	if nui.slide != nil {
		v, done := nui.slide.Update(dt)
		nui.offset = float64(v)
		if done {
			nui.slide = nil
		}
	}

	if probe, ok := components.Pointer.First(e.World); ok {
		p := components.Pointer.Get(probe)
		p.OverNav = p.Inside && p.Y < nui.Height()
	}

	nui.UI.Update()
}

// Draw paints the bar background and the widgets, shifted by the slide-in.
func (nui *NavUI) Draw(screen *ebiten.Image) {
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	if nui.offscreen == nil || nui.offscreen.Bounds().Dx() != w || nui.offscreen.Bounds().Dy() != h {
		if nui.offscreen != nil {
			nui.offscreen.Deallocate()
		}
		nui.offscreen = ebiten.NewImage(w, h)
	}
	nui.offscreen.Clear()

	bg := lerp(cfg.Nav.ClearColor, cfg.Nav.ScrolledColor, nui.backdrop)
	if nui.Nav.MenuOpen {
		bg = cfg.Nav.ScrolledColor
	}
	vector.DrawFilledRect(nui.offscreen, 0, 0, float32(w), float32(nui.Height()-nui.offset), bg, false)
	nui.UI.Draw(nui.offscreen)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(0, nui.offset)
	screen.DrawImage(nui.offscreen, op)
}

func lerp(a, b color.RGBA, t float64) color.RGBA {
	l := func(x, y uint8) uint8 { return uint8(float64(x) + (float64(y)-float64(x))*t) }
	return color.RGBA{R: l(a.R, b.R), G: l(a.G, b.G), B: l(a.B, b.B), A: l(a.A, b.A)}
}

func (nui *NavUI) buildUI() {
	// Root container with AnchorLayout over the whole screen, transparent so
	// the page shows through
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	column := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionStart,
				VerticalPosition:   widget.AnchorLayoutPositionStart,
				StretchHorizontal:  true,
			}),
		),
	)

	column.AddChild(nui.buildBar())
	nui.menu = nil
	if nui.Nav.Compact && nui.Nav.MenuOpen {
		nui.menu = nui.buildMenu()
		column.AddChild(nui.menu)
	}

	rootContainer.AddChild(column)

	nui.UI = &ebitenui.UI{
		Container: rootContainer,
	}
	nui.built = true
}

func (nui *NavUI) buildBar() *widget.Container {
	bar := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(0, int(cfg.Nav.Height)),
			widget.WidgetOpts.LayoutData(widget.RowLayoutData{
				Stretch: true,
			}),
		),
	)

	// Brand, clicking it goes home
	brandPadding := widget.Insets{Left: 24}
	brand := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Padding(&brandPadding),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionStart,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)
	brand.AddChild(nui.linkButton(nui.Site.Brand, &nui.brandFace, cfg.White, func() {
		if len(nui.Site.Nav) > 0 {
			nui.navigate(content.Link{Label: nui.Site.Nav[0].Name, Page: nui.Site.Nav[0].Page})
		}
	}))
	brand.AddChild(widget.NewLabel(
		widget.LabelOpts.Text(nui.Site.BrandAccent, &nui.brandFace, &widget.LabelColor{
			Idle: cfg.Orange,
		}),
	))
	bar.AddChild(brand)

	linksPadding := widget.Insets{Right: 24}
	links := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Padding(&linksPadding),
			widget.RowLayoutOpts.Spacing(8),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionEnd,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	if nui.Nav.Compact {
		label := "Menu"
		if nui.Nav.MenuOpen {
			label = "Close"
		}
		links.AddChild(nui.linkButton(label, &nui.linkFace, cfg.White, func() {
			nui.Nav.MenuOpen = !nui.Nav.MenuOpen
			nui.buildUI()
		}))
	} else {
		for _, item := range nui.Site.Nav {
			links.AddChild(nui.pageButton(item))
		}
		links.AddChild(nui.ctaButton())
	}
	bar.AddChild(links)

	return bar
}

func (nui *NavUI) buildMenu() *widget.Container {
	menu := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(16)),
			widget.RowLayoutOpts.Spacing(8),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.RowLayoutData{
				Stretch: true,
			}),
		),
	)
	for _, item := range nui.Site.Nav {
		menu.AddChild(nui.pageButton(item))
	}
	menu.AddChild(nui.ctaButton())
	return menu
}

func (nui *NavUI) pageButton(item content.NavItem) *widget.Button {
	clr := cfg.Fade(cfg.White, 0.85)
	if item.Page == nui.active {
		clr = cfg.Orange
	}
	link := content.Link{Label: item.Name, Page: item.Page}
	return nui.linkButton(item.Name, &nui.linkFace, clr, func() {
		nui.navigate(link)
	})
}

func (nui *NavUI) ctaButton() *widget.Button {
	cta := nui.Site.CTA
	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(120, 36),
		),
		widget.ButtonOpts.Image(ctaButtonImage()),
		widget.ButtonOpts.Text(cta.Label, &nui.linkFace, &widget.ButtonTextColor{
			Idle:    cfg.White,
			Hover:   cfg.White,
			Pressed: cfg.Cream,
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			nui.navigate(cta)
		}),
	)
}

func (nui *NavUI) linkButton(label string, face *text.Face, clr color.RGBA, onClick func()) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(0, 36),
		),
		widget.ButtonOpts.Image(linkButtonImage()),
		widget.ButtonOpts.Text(label, face, &widget.ButtonTextColor{
			Idle:    clr,
			Hover:   cfg.OrangeLight,
			Pressed: cfg.Orange,
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			onClick()
		}),
	)
}

func (nui *NavUI) navigate(link content.Link) {
	nui.Nav.MenuOpen = false
	if nui.OnNavigate != nil {
		nui.OnNavigate(link)
	}
}

func linkButtonImage() *widget.ButtonImage {
	clear := image.NewNineSliceColor(color.RGBA{})
	hover := image.NewNineSliceColor(cfg.Fade(cfg.White, 0.08))

	return &widget.ButtonImage{
		Idle:     clear,
		Hover:    hover,
		Pressed:  hover,
		Disabled: clear,
	}
}

func ctaButtonImage() *widget.ButtonImage {
	idle := image.NewNineSliceColor(cfg.Orange)
	hover := image.NewNineSliceColor(cfg.OrangeLight)
	pressed := image.NewNineSliceColor(color.RGBA{R: 0xD9, G: 0x5A, B: 0x00, A: 255})

	return &widget.ButtonImage{
		Idle:     idle,
		Hover:    hover,
		Pressed:  pressed,
		Disabled: idle,
	}
}
