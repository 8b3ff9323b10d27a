package components

import "github.com/yohamta/donburi"

// NavData is the navigation bar state (singleton component).
type NavData struct {
	Compact  bool // links are folded into the menu toggle
	MenuOpen bool
	Scrolled bool
}

var Nav = donburi.NewComponentType[NavData]()
