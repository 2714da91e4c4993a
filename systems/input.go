package systems

import (
	"github.com/automoto/groundwork/components"
	cfg "github.com/automoto/groundwork/config"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

// UpdateInput polls raw input into the global Input component and every
// player's PlayerInput. Must run BEFORE the player systems.
func UpdateInput(e *ecs.ECS) {
	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	input := getOrCreateInput(e)
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}
	pollActions(&input.Current, gamepadIDs)

	components.PlayerInput.Each(e.World, func(entry *donburi.Entry) {
		pi := components.PlayerInput.Get(entry)
		pi.Previous = pi.Current
		pi.Current = [cfg.ActionCount]bool{}
		pollActions(&pi.Current, gamepadIDs)
		pi.Move = pollMoveAxis(gamepadIDs)
	})
}

// pollActions sets the Pressed state of every bound action.
func pollActions(current *[cfg.ActionCount]bool, gamepads []ebiten.GamepadID) {
	for actionID, binding := range cfg.Input.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				current[actionID] = true
			}
		}
		for _, gpID := range gamepads {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					current[actionID] = true
				}
			}
		}
	}
}

// pollMoveAxis merges the movement keys and the left stick into one axis.
// X is strafe (right positive), Y is forward (up positive).
func pollMoveAxis(gamepads []ebiten.GamepadID) mgl64.Vec2 {
	var axis mgl64.Vec2
	if anyKeyPressed(cfg.Input.Move.Right) {
		axis[0]++
	}
	if anyKeyPressed(cfg.Input.Move.Left) {
		axis[0]--
	}
	if anyKeyPressed(cfg.Input.Move.Forward) {
		axis[1]++
	}
	if anyKeyPressed(cfg.Input.Move.Back) {
		axis[1]--
	}

	deadzone := cfg.Input.AnalogDeadzone
	for _, gpID := range gamepads {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}
		h := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickHorizontal)
		v := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickVertical)
		if h < -deadzone || h > deadzone {
			axis[0] += h
		}
		// Stick up is negative
		if v < -deadzone || v > deadzone {
			axis[1] -= v
		}
	}

	axis[0] = mgl64.Clamp(axis[0], -1, 1)
	axis[1] = mgl64.Clamp(axis[1], -1, 1)
	return axis
}

func anyKeyPressed(keys []ebiten.Key) bool {
	for _, k := range keys {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	return false
}

// getOrCreateInput returns the singleton Input component, creating if needed
func getOrCreateInput(e *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Input))
		// Zero-value InputData is correct (all bools false)
	}
	return components.Input.Get(entry)
}

// GetAction returns the full ActionState for a global action.
// JustPressed/JustReleased are derived from current vs previous frame.
func GetAction(input *components.InputData, id cfg.ActionID) components.ActionState {
	return actionState(input.Current[id], input.Previous[id])
}

// GetPlayerAction returns the ActionState for a player's action.
func GetPlayerAction(input *components.PlayerInputData, id cfg.ActionID) components.ActionState {
	return actionState(input.Current[id], input.Previous[id])
}

func actionState(curr, prev bool) components.ActionState {
	return components.ActionState{
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
	}
}
