// Package flightpath maps scroll progress onto the idealized arc a clay
// target follows in the explainer diagram.
package flightpath

import "math"

// Point is a position in normalized diagram coordinates (percent of the
// diagram's width and height).
type Point struct {
	X, Y float64
}

// Config describes the arc. Y grows downward, so the peak sits at
// YBase - ArcHeight.
type Config struct {
	XStart     float64
	XRange     float64
	YBase      float64
	ArcHeight  float64
	SpinFactor float64 // degrees are progress * 360 * SpinFactor
}

// DefaultConfig matches the diagram on the explainer page.
func DefaultConfig() Config {
	return Config{
		XStart:     10,
		XRange:     70,
		YBase:      60,
		ArcHeight:  40,
		SpinFactor: 3.6,
	}
}

// Mapper is a pure function of progress. The zero value maps everything to
// the origin; use New or DefaultConfig.
type Mapper struct {
	cfg Config
}

// New returns a mapper for cfg.
func New(cfg Config) Mapper {
	return Mapper{cfg: cfg}
}

// Config returns the arc parameters.
func (m Mapper) Config() Config {
	return m.cfg
}

// PositionAt returns the point on the arc at progress p. X moves linearly,
// Y follows a single sine hump that starts and ends at YBase.
func (m Mapper) PositionAt(p float64) Point {
	p = Clamp(p)
	return Point{
		X: m.cfg.XStart + p*m.cfg.XRange,
		Y: m.cfg.YBase - math.Sin(p*math.Pi)*m.cfg.ArcHeight,
	}
}

// RotationAt returns the decorative spin in degrees at progress p.
func (m Mapper) RotationAt(p float64) float64 {
	return Clamp(p) * 360 * m.cfg.SpinFactor
}

// Path samples n+1 evenly spaced points along the arc, for drawing the
// dashed guide line.
func (m Mapper) Path(n int) []Point {
	if n < 1 {
		n = 1
	}
	pts := make([]Point, 0, n+1)
	for i := 0; i <= n; i++ {
		pts = append(pts, m.PositionAt(float64(i)/float64(n)))
	}
	return pts
}

// Clamp limits progress to [0,1]. NaN maps to 0.
func Clamp(p float64) float64 {
	if math.IsNaN(p) || p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}
