package components

import (
	"github.com/automoto/trapschool/aim"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// CrosshairData is the page-wide crosshair that trails the pointer.
type CrosshairData struct {
	Cursor  *aim.Cursor
	X, Y    float64
	Alpha   float64
	FollowX *gween.Tween
	FollowY *gween.Tween
	Fade    *gween.Tween
	targetX float64
	targetY float64
}

// Retarget reports whether the cursor center moved since the last call.
func (c *CrosshairData) Retarget() bool {
	x, y := c.Cursor.Center()
	if x == c.targetX && y == c.targetY {
		return false
	}
	c.targetX, c.targetY = x, y
	return true
}

var Crosshair = donburi.NewComponentType[CrosshairData]()
