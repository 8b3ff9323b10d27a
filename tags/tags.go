package tags

import "github.com/yohamta/donburi"

var (
	Button    = donburi.NewTag().SetName("Button")
	Card      = donburi.NewTag().SetName("Card")
	HeroClay  = donburi.NewTag().SetName("HeroClay")
	DemoPanel = donburi.NewTag().SetName("DemoPanel")
	Pointer   = donburi.NewTag().SetName("Pointer")
)

// Resolv tags for pointer picking
const (
	ResolvPointer = "pointer"
	ResolvButton  = "button"
	ResolvCard    = "card"
	ResolvDemo    = "demo"
)
