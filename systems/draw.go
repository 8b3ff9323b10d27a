package systems

import (
	"image"
	"image/color"
	"math"

	"github.com/automoto/trapschool/assets"
	cfg "github.com/automoto/trapschool/config"
	"github.com/automoto/trapschool/fonts"
	"github.com/automoto/trapschool/layout"
	"github.com/automoto/trapschool/scenery"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var drawOp = &ebiten.DrawImageOptions{}

// fillRoundRect fills a rectangle with corners of radius r. Translucent
// colors darken slightly where the corner discs overlap the body.
func fillRoundRect(dst *ebiten.Image, x, y, w, h, r float64, clr color.RGBA) {
	if w <= 0 || h <= 0 || clr.A == 0 {
		return
	}
	r = math.Min(r, math.Min(w, h)/2)
	fx, fy, fw, fh, fr := float32(x), float32(y), float32(w), float32(h), float32(r)
	if r < 1 {
		vector.DrawFilledRect(dst, fx, fy, fw, fh, clr, false)
		return
	}
	vector.DrawFilledRect(dst, fx+fr, fy, fw-2*fr, fh, clr, false)
	vector.DrawFilledRect(dst, fx, fy+fr, fr, fh-2*fr, clr, false)
	vector.DrawFilledRect(dst, fx+fw-fr, fy+fr, fr, fh-2*fr, clr, false)
	vector.DrawFilledCircle(dst, fx+fr, fy+fr, fr, clr, true)
	vector.DrawFilledCircle(dst, fx+fw-fr, fy+fr, fr, clr, true)
	vector.DrawFilledCircle(dst, fx+fr, fy+fh-fr, fr, clr, true)
	vector.DrawFilledCircle(dst, fx+fw-fr, fy+fh-fr, fr, clr, true)
}

// drawText draws s with its line box starting at (x,y).
func drawText(dst *ebiten.Image, s string, name fonts.FontName, x, y float64, clr color.RGBA) {
	if s == "" || clr.A == 0 {
		return
	}
	face := name.Get()
	lh := layout.LineHeight(name)
	pad := (lh - float64(fonts.LineHeight(face))) / 2
	baseline := y + pad + float64(fonts.Ascent(face))
	text.Draw(dst, s, face, int(math.Round(x)), int(math.Round(baseline)), clr)
}

// drawCenteredText centers s inside the box.
func drawCenteredText(dst *ebiten.Image, s string, name fonts.FontName, x, y, w, h float64, clr color.RGBA) {
	tw := float64(fonts.Measure(name.Get(), s))
	lh := layout.LineHeight(name)
	drawText(dst, s, name, x+(w-tw)/2, y+(h-lh)/2, clr)
}

// fillGradient fills a box with a vertical gradient, through the gradient
// shader when it compiled and in bands otherwise.
func fillGradient(dst *ebiten.Image, x, y, w, h float64, top, bottom color.RGBA, alpha float64) {
	if w <= 0 || h <= 0 || alpha <= 0 {
		return
	}
	top, bottom = cfg.Fade(top, alpha), cfg.Fade(bottom, alpha)

	if assets.GradientShader != nil {
		op := &ebiten.DrawRectShaderOptions{}
		op.GeoM.Translate(x, y)
		op.Uniforms = map[string]any{
			"TopColor":    colorVec(top),
			"BottomColor": colorVec(bottom),
			"Top":         float32(y),
			"Height":      float32(h),
		}
		dst.DrawRectShader(int(math.Ceil(w)), int(math.Ceil(h)), assets.GradientShader, op)
		return
	}

	const bands = 24
	bh := h / bands
	for i := 0; i < bands; i++ {
		t := (float64(i) + 0.5) / bands
		vector.DrawFilledRect(dst, float32(x), float32(y+float64(i)*bh), float32(w), float32(bh+1), lerpColor(top, bottom, t), false)
	}
}

func colorVec(c color.RGBA) []float32 {
	return []float32{float32(c.R) / 255, float32(c.G) / 255, float32(c.B) / 255, float32(c.A) / 255}
}

func lerpColor(a, b color.RGBA, t float64) color.RGBA {
	l := func(x, y uint8) uint8 { return uint8(float64(x) + (float64(y)-float64(x))*t) }
	return color.RGBA{R: l(a.R, b.R), G: l(a.G, b.G), B: l(a.B, b.B), A: l(a.A, b.A)}
}

// drawImageCentered draws img centered on (cx,cy), rotated and scaled around
// its middle.
func drawImageCentered(dst, img *ebiten.Image, cx, cy, rotation, scale, alpha float64) {
	if img == nil || alpha <= 0 {
		return
	}
	w, h := img.Bounds().Dx(), img.Bounds().Dy()
	drawOp.GeoM.Reset()
	drawOp.ColorScale.Reset()
	drawOp.GeoM.Translate(-float64(w)/2, -float64(h)/2)
	drawOp.GeoM.Scale(scale, scale)
	drawOp.GeoM.Rotate(rotation)
	drawOp.GeoM.Translate(cx, cy)
	drawOp.ColorScale.ScaleAlpha(float32(alpha))
	drawOp.Filter = ebiten.FilterLinear
	dst.DrawImage(img, drawOp)
}

// clip returns the part of dst inside r, so drawing cannot spill out of a
// panel. Coordinates stay in screen space.
func clip(dst *ebiten.Image, r scenery.Rect) *ebiten.Image {
	rect := image.Rect(int(r.X), int(r.Y), int(math.Ceil(r.X+r.W)), int(math.Ceil(r.Y+r.H)))
	return dst.SubImage(rect.Intersect(dst.Bounds())).(*ebiten.Image)
}

// visible reports whether a box of height h at screen y can be seen.
func visible(y, h float64) bool {
	return y+h >= 0 && y <= float64(cfg.C.Height)
}
