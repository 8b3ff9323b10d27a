package systems

import (
	"math"

	"github.com/automoto/trapschool/assets"
	"github.com/automoto/trapschool/components"
	cfg "github.com/automoto/trapschool/config"
	"github.com/automoto/trapschool/fonts"
	"github.com/automoto/trapschool/layout"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DrawPage draws every section that intersects the viewport. Interactive
// panels are drawn by their own renderers.
func DrawPage(e *ecs.ECS, screen *ebiten.Image) {
	view, ok := newPageView(e)
	if !ok {
		return
	}
	width := float64(screen.Bounds().Dx())

	for si, sec := range view.page.Layout.Sections {
		top := view.top(si)
		if !visible(top, sec.Height) {
			continue
		}
		if view.hero != nil && view.hero.Section == si {
			drawHeroBackdrop(e, screen, view, top, width, sec.Height)
		} else {
			vector.DrawFilledRect(screen, 0, float32(top), float32(width), float32(sec.Height), sec.Background, false)
		}

		for bi, b := range sec.Blocks {
			p := view.place(si, bi, b)
			if p.Alpha <= 0 || !visible(p.Y, b.H) {
				continue
			}
			lift := view.anchor(si, b).Y - p.Y
			drawBlock(screen, view, b, p, lift)
		}
	}
}

func drawBlock(screen *ebiten.Image, view *pageView, b layout.Block, p placement, lift float64) {
	switch b.Kind {
	case layout.BlockText:
		drawText(screen, b.Text, b.Font, p.X, p.Y, cfg.Fade(b.Color, p.Alpha))

	case layout.BlockRect:
		fillRoundRect(screen, p.X, p.Y, b.W, b.H, b.Radius, cfg.Fade(b.Fill, p.Alpha))

	case layout.BlockCard:
		// the shadow spreads as the card rises
		spread := 4 + lift
		fillRoundRect(screen, p.X-spread/2, p.Y+spread/2, b.W+spread, b.H+spread, b.Radius+spread/2, cfg.Fade(cfg.CardShadow, p.Alpha))
		fillRoundRect(screen, p.X, p.Y, b.W, b.H, b.Radius, cfg.Fade(b.Fill, p.Alpha))
		if b.Highlight {
			vector.StrokeRect(screen, float32(p.X+b.Radius/2), float32(p.Y), float32(b.W-b.Radius), 3, 3, cfg.Fade(cfg.Orange, p.Alpha), false)
		}

	case layout.BlockButton:
		fill := b.Fill
		if lift > 0 && fill == cfg.Orange {
			fill = cfg.OrangeLight
		}
		fillRoundRect(screen, p.X, p.Y, b.W, b.H, b.Radius, cfg.Fade(fill, p.Alpha))
		drawCenteredText(screen, b.Text, b.Font, p.X, p.Y, b.W, b.H, cfg.Fade(b.Color, p.Alpha))

	case layout.BlockCircle:
		r := float32(b.W / 2)
		cx, cy := float32(p.X)+r, float32(p.Y)+r
		vector.DrawFilledCircle(screen, cx, cy, r, cfg.Fade(b.Fill, p.Alpha), true)
		if b.W >= 24 {
			// icon: a clay seen from above
			vector.StrokeCircle(screen, cx, cy, r*0.5, 3, cfg.Fade(b.Color, p.Alpha), true)
			vector.DrawFilledCircle(screen, cx, cy, r*0.15, cfg.Fade(b.Color, p.Alpha), true)
		}

	case layout.BlockCheck:
		r := float32(b.W / 2)
		cx, cy := float32(p.X)+r, float32(p.Y)+r
		vector.DrawFilledCircle(screen, cx, cy, r, cfg.Fade(b.Fill, p.Alpha), true)
		clr := cfg.Fade(b.Color, p.Alpha)
		vector.StrokeLine(screen, cx-r*0.45, cy, cx-r*0.1, cy+r*0.35, 2, clr, true)
		vector.StrokeLine(screen, cx-r*0.1, cy+r*0.35, cx+r*0.45, cy-r*0.35, 2, clr, true)

	case layout.BlockBadge:
		fillRoundRect(screen, p.X, p.Y, b.W, b.H, b.Radius, cfg.Fade(b.Fill, p.Alpha))
		drawCenteredText(screen, b.Text, b.Font, p.X, p.Y, b.W, b.H, cfg.Fade(b.Color, p.Alpha))

	case layout.BlockIndicator:
		drawIndicator(screen, view, b, p)
	}
}

// drawIndicator draws the bouncing scroll hint at the bottom of the hero.
func drawIndicator(screen *ebiten.Image, view *pageView, b layout.Block, p placement) {
	bounce := 0.0
	alpha := p.Alpha
	if view.hero != nil {
		bounce = (1 - math.Cos(view.hero.Bounce)) / 2 * cfg.Hero.BounceHeight
		alpha *= view.hero.Parallax.TextOpacity
	}
	clr := cfg.Fade(b.Color, alpha)

	face := b.Font.Get()
	tw := float64(fonts.Measure(face, b.Text))
	drawText(screen, b.Text, b.Font, p.X+b.W/2-tw/2, p.Y-layout.LineHeight(b.Font), clr)

	cx := float32(p.X + b.W/2)
	y := float32(p.Y + b.H/2 + bounce)
	vector.StrokeLine(screen, cx-8, y-4, cx, y+4, 2, clr, true)
	vector.StrokeLine(screen, cx, y+4, cx+8, y-4, 2, clr, true)
}

// drawHeroBackdrop draws the hero gradient, its rings and the flying clays,
// all shifted by the background parallax.
func drawHeroBackdrop(e *ecs.ECS, screen *ebiten.Image, view *pageView, top, width, height float64) {
	shift := view.hero.Parallax.BackgroundShift * height
	vector.DrawFilledRect(screen, 0, float32(top), float32(width), float32(height), cfg.TrapGreen, false)
	fillGradient(screen, 0, top+shift, width, height, cfg.TrapGreen, cfg.TrapGreenSoft, 1)

	ring := cfg.Fade(cfg.Cream, 0.08)
	for i, r := range []float64{0.35, 0.55, 0.75} {
		vector.StrokeCircle(screen, float32(width*0.5), float32(top+shift+height*0.5), float32(height*r), float32(2-float64(i)*0.5), ring, true)
	}

	size := int(cfg.Hero.ClaySize)
	components.HeroClay.Each(e.World, func(entry *donburi.Entry) {
		sprite := components.Sprite.Get(entry)
		if sprite.Hidden {
			return
		}
		if sprite.Image == nil {
			sprite.Image = assets.ClayImage(size)
		}
		clay := components.HeroClay.Get(entry)
		cx := clay.BaseX*width + sprite.X
		cy := top + shift + clay.BaseY*height + sprite.Y
		drawImageCentered(screen, sprite.Image, cx, cy, sprite.Rotation, sprite.Scale, sprite.Alpha)
	})
}
