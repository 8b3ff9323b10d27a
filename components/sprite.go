package components

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

// SpriteData is a free-floating image. For hero clays X and Y are offsets in
// pixels from the clay's resting spot.
type SpriteData struct {
	Image    *ebiten.Image
	X, Y     float64
	Rotation float64 // radians
	Scale    float64
	Alpha    float64
	Hidden   bool
}

var Sprite = donburi.NewComponentType[SpriteData]()
