package config

import "github.com/hajimehoshi/ebiten/v2"

// ActionID represents a logical game action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionJump
	ActionRun
	ActionCrouch
	ActionUse

	// Global actions, not bound to a player
	ActionPause
	ActionDebugDamage
	ActionDebugHeal
	ActionDebugOverlay

	ActionCount // Must be last - used for array sizing
)

// InputBinding maps an action to physical inputs
type InputBinding struct {
	Keys                   []ebiten.Key
	StandardGamepadButtons []ebiten.StandardGamepadButton
}

// MoveBinding maps the move axis to keys. Each direction is a list of
// alternatives.
type MoveBinding struct {
	Forward, Back, Left, Right []ebiten.Key
}

// InputConfig holds all input bindings and settings
type InputConfig struct {
	Bindings map[ActionID]InputBinding
	Move     MoveBinding

	// Deadzone for analog stick input (0.0 to 1.0)
	AnalogDeadzone float64

	// Damage and heal amounts for the debug keys
	DebugDamage float64
	DebugHeal   float64
}

// Input is the global input configuration
var Input InputConfig

func init() {
	Input = InputConfig{
		Bindings: map[ActionID]InputBinding{
			ActionJump: {
				Keys:                   []ebiten.Key{ebiten.KeySpace},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightBottom},
			},
			ActionRun: {
				Keys:                   []ebiten.Key{ebiten.KeyShiftLeft, ebiten.KeyShiftRight},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftStick},
			},
			ActionCrouch: {
				Keys:                   []ebiten.Key{ebiten.KeyControlLeft, ebiten.KeyC},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightRight},
			},
			ActionUse: {
				Keys:                   []ebiten.Key{ebiten.KeyE},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightLeft},
			},
			ActionPause: {
				Keys:                   []ebiten.Key{ebiten.KeyEscape, ebiten.KeyP},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonCenterRight},
			},
			ActionDebugDamage: {
				Keys: []ebiten.Key{ebiten.KeyH},
			},
			ActionDebugHeal: {
				Keys: []ebiten.Key{ebiten.KeyJ},
			},
			ActionDebugOverlay: {
				Keys: []ebiten.Key{ebiten.KeyF1},
			},
		},
		Move: MoveBinding{
			Forward: []ebiten.Key{ebiten.KeyW, ebiten.KeyArrowUp},
			Back:    []ebiten.Key{ebiten.KeyS, ebiten.KeyArrowDown},
			Left:    []ebiten.Key{ebiten.KeyA, ebiten.KeyArrowLeft},
			Right:   []ebiten.Key{ebiten.KeyD, ebiten.KeyArrowRight},
		},
		AnalogDeadzone: 0.25,
		DebugDamage:    10,
		DebugHeal:      10,
	}
}
