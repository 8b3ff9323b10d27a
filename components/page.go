package components

import (
	"github.com/automoto/trapschool/content"
	"github.com/automoto/trapschool/layout"
	"github.com/automoto/trapschool/scenery"
	"github.com/yohamta/donburi"
)

// PageData is the page mounted in the current scene (singleton component).
type PageData struct {
	ID            content.PageID
	Page          content.Page
	Site          *content.Site
	Stages        map[string]*scenery.Stage
	Layout        layout.Page
	Width         float64 // screen width the sections were laid out for
	ContentHeight float64

	// Navigation requested this tick, consumed by the scene.
	Pending *content.Link
}

var Page = donburi.NewComponentType[PageData]()
