package systems

import (
	"math"
	"strings"

	"github.com/automoto/trapschool/components"
	cfg "github.com/automoto/trapschool/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi/ecs"
)

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

// Cache controller types to avoid string allocation every frame
var controllerTypeCache = make(map[ebiten.GamepadID]components.InputMethod)

// UpdateInput polls keyboard, gamepad and mouse state into the Input and
// Pointer components. Must run before every system that reads them.
func UpdateInput(ecs *ecs.ECS) {
	input := GetOrCreateInput(ecs)

	// Swap buffers: current becomes previous, then zero out current
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}

	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	var keyboardUsed, gamepadUsed bool
	var activeGamepadID ebiten.GamepadID

	for actionID, binding := range cfg.Input.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				input.Current[actionID] = true
				keyboardUsed = true
			}
		}

		for _, gpID := range gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					input.Current[actionID] = true
					gamepadUsed = true
					activeGamepadID = gpID
				}
			}
		}
	}

	stick, stickGpID := getStickY(gamepadIDs)
	input.StickY = stick
	if stick != 0 {
		gamepadUsed = true
		activeGamepadID = stickGpID
	}

	for id := range input.Current {
		if input.Current[id] {
			input.HeldTicks[id]++
		} else {
			input.HeldTicks[id] = 0
		}
	}

	pointer := updatePointer(ecs)

	// Update last input method - gamepad takes priority if both used
	switch {
	case gamepadUsed:
		input.LastInputMethod = getControllerType(activeGamepadID)
	case keyboardUsed:
		input.LastInputMethod = components.InputKeyboard
	case pointer != nil && (pointer.Moved || pointer.JustClicked || pointer.WheelY != 0):
		input.LastInputMethod = components.InputMouse
	}
}

// updatePointer samples the mouse in screen pixels.
func updatePointer(ecs *ecs.ECS) *components.PointerData {
	probe, ok := components.Pointer.First(ecs.World)
	if !ok {
		return nil
	}
	p := components.Pointer.Get(probe)

	x, y := ebiten.CursorPosition()
	p.PrevX, p.PrevY = p.X, p.Y
	p.X, p.Y = float64(x), float64(y)
	p.WasInside = p.Inside
	p.Inside = ebiten.IsFocused() &&
		x >= 0 && y >= 0 && x < cfg.C.Width && y < cfg.C.Height
	p.Moved = p.X != p.PrevX || p.Y != p.PrevY
	p.JustClicked = p.Inside && inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	_, wheelY := ebiten.Wheel()
	p.WheelY = wheelY
	p.OverNav = false // the nav bar claims it again during its update
	return p
}

// getControllerType returns cached controller type, detecting on first access
func getControllerType(gpID ebiten.GamepadID) components.InputMethod {
	if method, ok := controllerTypeCache[gpID]; ok {
		return method
	}

	name := strings.ToLower(ebiten.GamepadName(gpID))
	var method components.InputMethod
	if strings.Contains(name, "ps4") || strings.Contains(name, "ps5") ||
		strings.Contains(name, "playstation") || strings.Contains(name, "dualshock") ||
		strings.Contains(name, "dualsense") {
		method = components.InputPlayStation
	} else {
		// Default gamepad to Xbox-style
		method = components.InputXbox
	}

	controllerTypeCache[gpID] = method
	return method
}

// getStickY reads the strongest left stick vertical deflection past the
// deadzone, rescaled so the deadzone edge maps to 0.
func getStickY(gamepads []ebiten.GamepadID) (float64, ebiten.GamepadID) {
	deadzone := cfg.Input.AnalogDeadzone
	best := 0.0
	var bestID ebiten.GamepadID

	for _, gpID := range gamepads {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}
		v := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickVertical)
		if math.Abs(v) > math.Abs(best) {
			best = v
			bestID = gpID
		}
	}
	return applyDeadzone(best, deadzone), bestID
}

func applyDeadzone(v, deadzone float64) float64 {
	if math.Abs(v) <= deadzone || deadzone >= 1 {
		return 0
	}
	return math.Copysign((math.Abs(v)-deadzone)/(1-deadzone), v)
}

// GetOrCreateInput returns the singleton Input component, creating if needed
func GetOrCreateInput(ecs *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Input))
	}
	return components.Input.Get(entry)
}

// GetAction returns the full ActionState for an action ID.
// JustPressed/JustReleased are derived from current vs previous frame.
func GetAction(input *components.InputData, id cfg.ActionID) components.ActionState {
	curr := input.Current[id]
	prev := input.Previous[id]
	return components.ActionState{
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
	}
}

// Repeated reports a press on the first tick and then every other tick once
// the action has been held past the repeat delay.
func Repeated(input *components.InputData, id cfg.ActionID) bool {
	held := input.HeldTicks[id]
	if held == 1 {
		return true
	}
	return held > cfg.Input.RepeatDelay && (held-cfg.Input.RepeatDelay)%2 == 0
}
