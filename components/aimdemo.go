package components

import (
	"github.com/automoto/trapschool/aim"
	"github.com/automoto/trapschool/scenery"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// AimDemoData is the mounted aiming demo. Display positions are in the
// engine's percent space and trail the engine state through tweens.
type AimDemoData struct {
	Session *aim.Session
	Section int
	Stage   *scenery.Stage
	Rect    scenery.Rect // screen space, refreshed every tick

	TargetX, TargetY float64
	GlideX, GlideY   *gween.Tween
	LastTarget       aim.Position

	CrossX, CrossY float64
	FollowX        *gween.Tween
	FollowY        *gween.Tween
	LastPointer    aim.Position

	Spin    float64 // radians
	Hovered bool
}

var AimDemo = donburi.NewComponentType[AimDemoData]()
