package systems

import (
	"math"
	"strconv"

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

// DrawFlightDiagram draws the traphouse, the shooter stations, the dashed
// flight arc and the clay at its current progress.
func DrawFlightDiagram(e *ecs.ECS, screen *ebiten.Image) {
	view, ok := newPageView(e)
	if !ok {
		return
	}

	components.FlightDiagram.Each(e.World, func(entry *donburi.Entry) {
		d := components.FlightDiagram.Get(entry)
		r, alpha, found := view.panel(d.Section, layout.BlockDiagram)
		if !found || alpha <= 0 || !visible(r.Y, r.H) {
			return
		}
		dst := clip(screen, r)
		st := d.Stage

		fillGradient(dst, r.X, r.Y, r.W, r.H, cfg.SkyTop, cfg.SkyBottom, alpha)
		if st != nil {
			for _, g := range st.Ground {
				g = g.Scale(st.Width, st.Height, r.X, r.Y, r.W, r.H)
				vector.DrawFilledRect(dst, float32(g.X), float32(g.Y), float32(g.W), float32(g.H), cfg.Fade(groundColor, alpha), false)
			}
			if house, ok := st.Label("traphouse"); ok {
				h := house.Scale(st.Width, st.Height, r.X, r.Y, r.W, r.H)
				fillRoundRect(dst, h.X, h.Y, h.W, h.H, 4, cfg.Fade(cfg.Traphouse, alpha))
				drawCenteredText(dst, house.Text, fonts.Small, h.X, h.Y, h.W, h.H, cfg.Fade(cfg.White, alpha))
			}
			for _, s := range st.Stations {
				b := s.Scale(st.Width, st.Height, r.X, r.Y, r.W, r.H)
				radius := math.Min(b.W, b.H) / 2
				cx, cy := b.X+b.W/2, b.Y+b.H/2
				vector.DrawFilledCircle(dst, float32(cx), float32(cy), float32(radius), cfg.Fade(cfg.Charcoal, alpha), true)
				drawCenteredText(dst, strconv.Itoa(s.Number), fonts.Small, cx-radius, cy-radius, 2*radius, 2*radius, cfg.Fade(cfg.White, alpha))
			}
		}

		drawDashedPath(dst, d, r, alpha)

		clay := assets.ClayImage(int(cfg.FlightDiagram.ClaySize))
		drawImageCentered(dst, clay, r.X+d.Position.X/100*r.W, r.Y+d.Position.Y/100*r.H, d.Rotation*math.Pi/180, 1, alpha)

		if st != nil {
			if legend, ok := st.Label("legend"); ok {
				l := legend.Scale(st.Width, st.Height, r.X, r.Y, r.W, r.H)
				fillRoundRect(dst, l.X, l.Y, l.W, l.H, l.H/2, cfg.Fade(cfg.White, 0.9*alpha))
				dot := l.H * 0.3
				vector.DrawFilledCircle(dst, float32(l.X+l.H/2), float32(l.Y+l.H/2), float32(dot), cfg.Fade(cfg.Orange, alpha), true)
				drawCenteredText(dst, legend.Text, fonts.Small, l.X+l.H/2, l.Y, l.W-l.H/2, l.H, cfg.Fade(cfg.Charcoal, alpha))
			}
		}
	})
}

// drawDashedPath strokes every other segment of the sampled arc.
func drawDashedPath(dst *ebiten.Image, d *components.FlightDiagramData, r scenery.Rect, alpha float64) {
	clr := cfg.Fade(cfg.Orange, 0.6*alpha)
	for i := 1; i < len(d.Path); i += 2 {
		a, b := d.Path[i-1], d.Path[i]
		vector.StrokeLine(dst,
			float32(r.X+a.X/100*r.W), float32(r.Y+a.Y/100*r.H),
			float32(r.X+b.X/100*r.W), float32(r.Y+b.Y/100*r.H),
			2, clr, true)
	}
}
