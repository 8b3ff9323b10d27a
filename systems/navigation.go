package systems

import (
	"github.com/automoto/trapschool/components"
	cfg "github.com/automoto/trapschool/config"
	"github.com/automoto/trapschool/content"
	"github.com/yohamta/donburi/ecs"
)

// UpdateNavigationKeys steps through the navigation order with the
// next/previous page actions and toggles the debug overlay.
func UpdateNavigationKeys(e *ecs.ECS) {
	input := GetOrCreateInput(e)
	if GetAction(input, cfg.ActionDebug).JustPressed {
		cfg.Debug.ShowHitAreas = !cfg.Debug.ShowHitAreas
	}

	pageEntry, ok := components.Page.First(e.World)
	if !ok {
		return
	}
	page := components.Page.Get(pageEntry)

	step := 0
	if GetAction(input, cfg.ActionNextPage).JustPressed {
		step++
	}
	if GetAction(input, cfg.ActionPrevPage).JustPressed {
		step--
	}
	if step == 0 {
		return
	}
	if next, ok := AdjacentPage(page.Site, page.ID, step); ok {
		Navigate(e, content.Link{Label: string(next), Page: next})
	}
}

// AdjacentPage returns the page step places away from id in the navigation
// order. It does not wrap.
func AdjacentPage(site *content.Site, id content.PageID, step int) (content.PageID, bool) {
	for i, item := range site.Nav {
		if item.Page != id {
			continue
		}
		j := i + step
		if j < 0 || j >= len(site.Nav) {
			return "", false
		}
		return site.Nav[j].Page, true
	}
	return "", false
}
