package components

import (
	"github.com/automoto/trapschool/content"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// HoverData marks a pickable box on the page. The box is stored relative to
// its section so it can follow reveal and parallax offsets.
type HoverData struct {
	Section   int
	Block     int // index into the laid-out section's blocks
	Item      int // index into the section's item reveals, -1 for none
	LocalX    float64
	LocalY    float64
	W, H      float64
	Parallax  bool
	Hovered   bool
	Raise     float64 // lift while hovered
	Lift      float64
	LiftTween *gween.Tween
}

var Hover = donburi.NewComponentType[HoverData]()

// LinkData makes a hovered box clickable.
type LinkData struct {
	Link content.Link
}

var Link = donburi.NewComponentType[LinkData]()
