package scroll

// Transform maps v through the piecewise-linear function defined by the
// stops in and out. Values outside the input range clamp to the first or
// last output. in must be ascending and the same length as out.
func Transform(v float64, in, out []float64) float64 {
	n := len(in)
	if n == 0 || n != len(out) {
		return 0
	}
	if n == 1 || v <= in[0] {
		return out[0]
	}
	if v >= in[n-1] {
		return out[n-1]
	}
	for i := 1; i < n; i++ {
		if v <= in[i] {
			span := in[i] - in[i-1]
			if span == 0 {
				return out[i]
			}
			t := (v - in[i-1]) / span
			return out[i-1] + t*(out[i]-out[i-1])
		}
	}
	return out[n-1]
}

// Parallax holds the hero layer offsets and fade for a given progress.
type Parallax struct {
	BackgroundShift float64 // fraction of hero height
	TextShift       float64 // fraction of hero height
	TextOpacity     float64
}

// HeroParallax reproduces the home hero: the background drifts 30% and the
// text 50% of the hero height while the text fades out over the first half.
func HeroParallax(progress float64) Parallax {
	return Parallax{
		BackgroundShift: Transform(progress, []float64{0, 1}, []float64{0, 0.3}),
		TextShift:       Transform(progress, []float64{0, 1}, []float64{0, 0.5}),
		TextOpacity:     Transform(progress, []float64{0, 0.5}, []float64{1, 0}),
	}
}
