package scenery

import (
	"testing"
	"testing/fstest"
)

func TestBuiltinStages(t *testing.T) {
	stages := MustLoadBuiltin()

	diagram, ok := stages[Diagram]
	if !ok {
		t.Fatal("expected diagram stage")
	}
	if diagram.Width != 1000 || diagram.Height != 400 {
		t.Errorf("expected 1000x400 stage, got %vx%v", diagram.Width, diagram.Height)
	}
	if len(diagram.Stations) != 5 {
		t.Fatalf("expected 5 stations, got %d", len(diagram.Stations))
	}
	for i, s := range diagram.Stations {
		if s.Number != i+1 {
			t.Errorf("expected station %d at index %d, got %d", i+1, i, s.Number)
		}
	}
	house, ok := diagram.Label("traphouse")
	if !ok || house.Text != "Traphouse" {
		t.Errorf("expected traphouse label, got %+v", house)
	}

	rng, ok := stages[Range]
	if !ok {
		t.Fatal("expected range stage")
	}
	if len(rng.Trees) == 0 || len(rng.Ground) != 1 {
		t.Errorf("expected trees and one ground strip, got %d trees %d ground", len(rng.Trees), len(rng.Ground))
	}
	for i := 1; i < len(rng.Trees); i++ {
		if rng.Trees[i].X < rng.Trees[i-1].X {
			t.Error("expected trees sorted left to right")
		}
	}
}

func TestLoadStageMissing(t *testing.T) {
	if _, err := LoadStage(fstest.MapFS{}, "maps/none.tmx"); err == nil {
		t.Error("expected error for missing map")
	}
	if _, err := LoadAll(fstest.MapFS{}, "maps"); err == nil {
		t.Error("expected error for empty directory")
	}
}

func TestRectScale(t *testing.T) {
	r := Rect{X: 100, Y: 300, W: 200, H: 100}
	got := r.Scale(1000, 400, 50, 20, 500, 200)
	want := Rect{X: 100, Y: 170, W: 100, H: 50}
	if got != want {
		t.Errorf("expected %+v, got %+v", want, got)
	}
	if (Rect{X: 1}).Scale(0, 0, 0, 0, 10, 10) != (Rect{}) {
		t.Error("expected zero rect for empty stage")
	}
}
