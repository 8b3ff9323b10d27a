package components

import (
	"github.com/automoto/trapschool/flightpath"
	"github.com/automoto/trapschool/scenery"
	"github.com/yohamta/donburi"
)

// FlightDiagramData is the scroll-driven clay flight diagram.
type FlightDiagramData struct {
	Mapper   flightpath.Mapper
	Section  int
	Stage    *scenery.Stage
	Path     []flightpath.Point
	Rect     scenery.Rect // screen space, refreshed every tick
	Progress float64
	Position flightpath.Point
	Rotation float64 // degrees
}

var FlightDiagram = donburi.NewComponentType[FlightDiagramData]()
