package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/trapschool/assets"
	"github.com/automoto/trapschool/components"
	cfg "github.com/automoto/trapschool/config"
	"github.com/automoto/trapschool/fonts"
	"github.com/automoto/trapschool/layout"
	"github.com/automoto/trapschool/scenery"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	treeColor   = color.RGBA{R: 0x2F, G: 0x4F, B: 0x2F, A: 255}
	groundColor = color.RGBA{R: 0x6B, G: 0x8E, B: 0x4E, A: 255}
)

// DrawAimDemo draws the shooting range panel: backdrop, clay, hit bursts,
// crosshair and score. Everything is clipped to the panel.
func DrawAimDemo(e *ecs.ECS, screen *ebiten.Image) {
	view, ok := newPageView(e)
	if !ok {
		return
	}

	components.AimDemo.Each(e.World, func(entry *donburi.Entry) {
		demo := components.AimDemo.Get(entry)
		rect, alpha, found := view.panel(demo.Section, layout.BlockDemo)
		if !found || alpha <= 0 || !visible(rect.Y, rect.H) {
			return
		}
		sx, sy := ShakeOffset(entry)
		r := scenery.Rect{X: rect.X + sx, Y: rect.Y + sy, W: rect.W, H: rect.H}
		dst := clip(screen, rect)

		fillGradient(dst, r.X, r.Y, r.W, r.H, cfg.SkyTop, cfg.SkyBottom, alpha)
		if st := demo.Stage; st != nil {
			for _, g := range st.Ground {
				g = g.Scale(st.Width, st.Height, r.X, r.Y, r.W, r.H)
				vector.DrawFilledRect(dst, float32(g.X), float32(g.Y), float32(g.W), float32(g.H), cfg.Fade(groundColor, alpha), false)
			}
			for _, t := range st.Trees {
				drawTree(dst, t.Scale(st.Width, st.Height, r.X, r.Y, r.W, r.H), alpha)
			}
		}

		// clay
		size := cfg.AimDemo.TargetSize
		clay := assets.ClayImage(int(size))
		drawImageCentered(dst, clay, r.X+demo.TargetX/100*r.W, r.Y+demo.TargetY/100*r.H, demo.Spin, 1, alpha)

		// hit bursts
		components.HitFlash.Each(e.World, func(fe *donburi.Entry) {
			f := components.HitFlash.Get(fe)
			if f.Opacity <= 0 || f.Scale <= 0 {
				return
			}
			cx := float32(r.X + f.X/100*r.W)
			cy := float32(r.Y + f.Y/100*r.H)
			radius := float32(cfg.AimDemo.FlashRadius * f.Scale / cfg.AimDemo.FlashScale)
			vector.DrawFilledCircle(dst, cx, cy, radius, cfg.Fade(cfg.OrangeLight, 0.5*f.Opacity*alpha), true)
			vector.StrokeCircle(dst, cx, cy, radius, 3, cfg.Fade(cfg.Orange, f.Opacity*alpha), true)
		})

		if demo.Hovered {
			cross := assets.CrosshairImage(int(cfg.AimDemo.CrosshairSize), cfg.Orange)
			drawImageCentered(dst, cross, r.X+demo.CrossX/100*r.W, r.Y+demo.CrossY/100*r.H, 0, 1, alpha)
		}

		if st := demo.Stage; st != nil {
			drawScore(dst, st, r, demo.Session.Engine().Target().Score, alpha)
			if hint, ok := st.Label("hint"); ok {
				h := hint.Scale(st.Width, st.Height, r.X, r.Y, r.W, r.H)
				drawCenteredText(dst, hint.Text, fonts.BodyBold, h.X, h.Y, h.W, h.H, cfg.Fade(cfg.White, alpha))
			}
		}
	})
}

func drawTree(dst *ebiten.Image, t scenery.Rect, alpha float64) {
	clr := cfg.Fade(treeColor, alpha)
	trunkW := t.W * 0.2
	vector.DrawFilledRect(dst, float32(t.X+(t.W-trunkW)/2), float32(t.Y+t.H*0.6), float32(trunkW), float32(t.H*0.4), cfg.Fade(cfg.Traphouse, alpha), false)
	vector.DrawFilledCircle(dst, float32(t.X+t.W/2), float32(t.Y+t.H*0.4), float32(t.W/2), clr, true)
}

func drawScore(dst *ebiten.Image, st *scenery.Stage, r scenery.Rect, score int, alpha float64) {
	label, ok := st.Label("score")
	if !ok {
		return
	}
	box := label.Scale(st.Width, st.Height, r.X, r.Y, r.W, r.H)
	fillRoundRect(dst, box.X, box.Y, box.W, box.H, box.H/2, cfg.Fade(cfg.White, 0.9*alpha))
	drawCenteredText(dst, fmt.Sprintf("%s: %d", label.Text, score), fonts.BodyBold, box.X, box.Y, box.W, box.H, cfg.Fade(cfg.TrapGreen, alpha))
}
