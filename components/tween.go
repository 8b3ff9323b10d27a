package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// Tween drives looping keyframe animations such as the hero clays.
var Tween = donburi.NewComponentType[gween.Sequence]()
