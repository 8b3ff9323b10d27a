package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

type ObjectData struct {
	*resolv.Object
}

var Object = donburi.NewComponentType[ObjectData]()

// Space is the page-space resolv grid used for pointer picking.
var Space = donburi.NewComponentType[resolv.Space]()
