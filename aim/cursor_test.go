package aim

import "testing"

func TestCursorVisibility(t *testing.T) {
	c := NewCursor(60)
	if c.Visible() {
		t.Fatal("expected new cursor to be hidden")
	}

	c.Move(100, 40)
	if !c.Visible() || c.Opacity() != 1 {
		t.Error("expected cursor to show after move")
	}
	if x, y := c.Origin(); x != 70 || y != 10 {
		t.Errorf("expected origin (70,10), got (%v,%v)", x, y)
	}

	c.Leave()
	if c.Visible() || c.Opacity() != 0 {
		t.Error("expected cursor to hide on leave")
	}
	c.Enter()
	if !c.Visible() {
		t.Error("expected cursor to show on enter")
	}
	if x, y := c.Center(); x != 100 || y != 40 {
		t.Errorf("expected enter to keep position, got (%v,%v)", x, y)
	}
}
