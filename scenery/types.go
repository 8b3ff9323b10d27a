// Package scenery loads the static backdrops of the flight diagram and the
// aiming range from Tiled maps. It holds plain data only.
package scenery

// Rect is an axis-aligned box in stage units.
type Rect struct {
	X, Y, W, H float64
}

// Scale maps r from a stage of size (sw,sh) onto a panel of size (pw,ph)
// placed at (px,py).
func (r Rect) Scale(sw, sh, px, py, pw, ph float64) Rect {
	if sw <= 0 || sh <= 0 {
		return Rect{}
	}
	kx, ky := pw/sw, ph/sh
	return Rect{X: px + r.X*kx, Y: py + r.Y*ky, W: r.W * kx, H: r.H * ky}
}

// Label is a captioned box such as the traphouse or the score badge.
type Label struct {
	Rect
	Name string
	Text string
}

// Station is one numbered shooter position.
type Station struct {
	Rect
	Number int
}

// Stage is one backdrop parsed from a map.
type Stage struct {
	Name     string
	Width    float64
	Height   float64
	Ground   []Rect
	Trees    []Rect
	Stations []Station
	Labels   []Label
}

// Label returns the first label with the given object name.
func (s *Stage) Label(name string) (Label, bool) {
	for _, l := range s.Labels {
		if l.Name == name {
			return l, true
		}
	}
	return Label{}, false
}
