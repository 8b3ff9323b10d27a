package fonts

import (
	"strings"
	"testing"
)

func TestWrap(t *testing.T) {
	LoadDefaults()
	face := Body.Get()

	text := "Master the art of clay target shooting with expert guidance from your first shot"
	width := Measure(face, "Master the art of clay")
	lines := Wrap(face, text, width)
	if len(lines) < 3 {
		t.Fatalf("expected several lines, got %d: %q", len(lines), lines)
	}
	for _, l := range lines {
		if Measure(face, l) > width && strings.Contains(l, " ") {
			t.Errorf("expected line %q to fit in %d, got %d", l, width, Measure(face, l))
		}
	}
	if got := strings.Join(lines, " "); got != text {
		t.Errorf("expected wrapping to keep every word, got %q", got)
	}
}

func TestWrapEdges(t *testing.T) {
	LoadDefaults()
	face := Small.Get()

	if lines := Wrap(face, "   ", 100); lines != nil {
		t.Errorf("expected no lines for blank text, got %q", lines)
	}
	lines := Wrap(face, "unbreakable", 1)
	if len(lines) != 1 || lines[0] != "unbreakable" {
		t.Errorf("expected long word kept whole, got %q", lines)
	}
}

func TestMetrics(t *testing.T) {
	LoadDefaults()
	if LineHeight(Title.Get()) <= LineHeight(Body.Get()) {
		t.Error("expected title lines taller than body lines")
	}
	if Ascent(Body.Get()) <= 0 {
		t.Error("expected positive ascent")
	}
}

func TestMissingFontPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for unknown font")
		}
	}()
	FontName("nope").Get()
}
