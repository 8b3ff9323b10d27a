package components

import (
	"github.com/automoto/trapschool/scroll"
	"github.com/yohamta/donburi"
)

// HeroData is the home page hero's scroll-linked state.
type HeroData struct {
	Section  int
	Progress float64
	Parallax scroll.Parallax
	Bounce   float64 // scroll indicator phase in radians
}

var Hero = donburi.NewComponentType[HeroData]()

// HeroClayData is one decorative clay crossing the hero. Frame values come
// from its Tween sequence: 0 → 1 → 2 over the flight, then a hold.
type HeroClayData struct {
	BaseX, BaseY float64 // fraction of the hero box
	Delay        float32 // seconds before the first flight
	Elapsed      float32
	Frame        float64
}

var HeroClay = donburi.NewComponentType[HeroClayData]()
