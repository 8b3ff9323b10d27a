package aim

// Cursor is the page-wide crosshair decoration. Coordinates are in screen
// pixels, unlike the demo engine.
type Cursor struct {
	Size    float64
	x, y    float64
	visible bool
}

// NewCursor returns a hidden cursor of the given size.
func NewCursor(size float64) *Cursor {
	return &Cursor{Size: size}
}

// Move records the pointer and makes the cursor visible.
func (c *Cursor) Move(x, y float64) {
	c.x, c.y = x, y
	c.visible = true
}

// Leave hides the cursor when the pointer exits the window.
func (c *Cursor) Leave() {
	c.visible = false
}

// Enter shows the cursor again without moving it.
func (c *Cursor) Enter() {
	c.visible = true
}

// Visible reports whether the cursor should be drawn.
func (c *Cursor) Visible() bool {
	return c.visible
}

// Center returns the pointer position.
func (c *Cursor) Center() (float64, float64) {
	return c.x, c.y
}

// Origin returns the top-left corner the crosshair sprite is drawn at.
func (c *Cursor) Origin() (float64, float64) {
	return c.x - c.Size/2, c.y - c.Size/2
}

// Opacity is 1 while visible and 0 otherwise.
func (c *Cursor) Opacity() float64 {
	if c.visible {
		return 1
	}
	return 0
}
