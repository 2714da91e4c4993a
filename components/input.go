package components

import (
	cfg "github.com/automoto/groundwork/config"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

// ActionState represents the temporal state of an action
type ActionState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this frame
	JustReleased bool // Released this frame
}

// InputData stores the current and previous frame's pressed state for the
// global actions (pause and debug keys).
type InputData struct {
	Current  [cfg.ActionCount]bool
	Previous [cfg.ActionCount]bool
}

var Input = donburi.NewComponentType[InputData]()

// PlayerInputData stores per-player input state.
// Move is the 2D move axis: X is strafe, Y is forward.
type PlayerInputData struct {
	Move     mgl64.Vec2
	Current  [cfg.ActionCount]bool
	Previous [cfg.ActionCount]bool
}

var PlayerInput = donburi.NewComponentType[PlayerInputData]()
