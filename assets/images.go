package assets

import (
	"image/color"
	"math"

	cfg "github.com/automoto/trapschool/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

type imageKey struct {
	kind string
	size int
	clr  color.RGBA
}

var imageCache = make(map[imageKey]*ebiten.Image)

// ClayImage returns a size x size clay target seen slightly from the side:
// an orange disc with a highlight and a center ring.
func ClayImage(size int) *ebiten.Image {
	key := imageKey{kind: "clay", size: size}
	if img, ok := imageCache[key]; ok {
		return img
	}

	img := ebiten.NewImage(size, size)
	s := float32(size) / 50
	drawEllipse(img, 25*s, 25*s, 24*s, 10*s, cfg.Charcoal)
	drawEllipse(img, 25*s, 25*s, 23*s, 9*s, cfg.Orange)
	drawEllipse(img, 25*s, 22*s, 18*s, 6*s, cfg.Fade(cfg.OrangeLight, 0.6))
	drawEllipse(img, 25*s, 25*s, 8*s, 3*s, cfg.Fade(cfg.Charcoal, 0.5))
	drawEllipse(img, 25*s, 25*s, 7*s, 2*s, cfg.Orange)

	imageCache[key] = img
	return img
}

// drawEllipse scales a filled circle into an axis-aligned ellipse.
func drawEllipse(dst *ebiten.Image, cx, cy, rx, ry float32, clr color.RGBA) {
	if rx <= 0 || ry <= 0 {
		return
	}
	r := int(math.Ceil(float64(rx)))
	disc := ebiten.NewImage(2*r, 2*r)
	vector.DrawFilledCircle(disc, float32(r), float32(r), float32(r), clr, true)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-float64(r), -float64(r))
	op.GeoM.Scale(float64(rx)/float64(r), float64(ry)/float64(r))
	op.GeoM.Translate(float64(cx), float64(cy))
	op.Filter = ebiten.FilterLinear
	dst.DrawImage(disc, op)
	disc.Deallocate()
}

// CrosshairImage returns a crosshair of the given size and color: two rings,
// four ticks and a center dot.
func CrosshairImage(size int, clr color.RGBA) *ebiten.Image {
	key := imageKey{kind: "crosshair", size: size, clr: clr}
	if img, ok := imageCache[key]; ok {
		return img
	}

	img := ebiten.NewImage(size, size)
	c := float32(size) / 2
	stroke := float32(math.Max(1.5, float64(size)/30))
	vector.StrokeCircle(img, c, c, c*0.8, stroke, clr, true)
	vector.StrokeCircle(img, c, c, c*0.27, stroke, clr, true)
	vector.StrokeLine(img, c, 0, c, c*0.4, stroke, clr, true)
	vector.StrokeLine(img, c, c*1.6, c, float32(size), stroke, clr, true)
	vector.StrokeLine(img, 0, c, c*0.4, c, stroke, clr, true)
	vector.StrokeLine(img, c*1.6, c, float32(size), c, stroke, clr, true)
	vector.DrawFilledCircle(img, c, c, stroke, clr, true)

	imageCache[key] = img
	return img
}
