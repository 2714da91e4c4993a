package components

import (
	cfg "github.com/automoto/groundwork/config"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

// PlayerControllerData is a first-person style character controller.
// Settings are the tunables the controller was spawned with; a tunables
// reload replaces them without touching the state below.
type PlayerControllerData struct {
	Settings cfg.PlayerConfig

	// Displacement applied on the next fixed step, in units per step
	Velocity mgl64.Vec3

	IsJumping   bool
	IsRunning   bool
	IsCrouching bool

	// Last entity hit by Use
	LastUseTarget *donburi.Entry
}

var PlayerController = donburi.NewComponentType[PlayerControllerData]()

// InteractableData marks an entity the player can use.
type InteractableData struct {
	Uses int
}

var Interactable = donburi.NewComponentType[InteractableData]()

// NameData is a display name for logs and the HUD.
type NameData struct {
	Name string
}

var Name = donburi.NewComponentType[NameData]()
