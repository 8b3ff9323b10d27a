package components

import (
	"github.com/automoto/trapschool/scroll"
	"github.com/yohamta/donburi"
)

// CameraData is the vertical window onto the current page.
type CameraData struct {
	*scroll.Viewport
}

var Camera = donburi.NewComponentType[CameraData]()
