package components

import (
	cfg "github.com/automoto/trapschool/config"
	"github.com/yohamta/donburi"
)

// InputMethod represents the type of input device being used
type InputMethod int

const (
	InputKeyboard InputMethod = iota
	InputMouse
	InputXbox
	InputPlayStation
)

// ActionState represents the temporal state of an action
type ActionState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this frame
	JustReleased bool // Released this frame
}

// InputData stores the current and previous frame's pressed state for all actions.
// JustPressed/JustReleased are computed on-demand by comparing frames.
type InputData struct {
	Current         [cfg.ActionCount]bool // Current frame's Pressed state
	Previous        [cfg.ActionCount]bool // Previous frame's Pressed state
	HeldTicks       [cfg.ActionCount]int  // Consecutive ticks an action has been held
	LastInputMethod InputMethod           // Most recently used input method
	StickY          float64               // Left stick vertical deflection past the deadzone
}

var Input = donburi.NewComponentType[InputData]()

// PointerData is the mouse state in screen pixels for the current tick.
type PointerData struct {
	X, Y        float64
	PrevX       float64
	PrevY       float64
	Inside      bool // cursor is within the window
	WasInside   bool
	Moved       bool
	JustClicked bool
	WheelY      float64
	OverNav     bool // the navigation bar owns the pointer this tick
}

var Pointer = donburi.NewComponentType[PointerData]()
