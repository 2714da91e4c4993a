package systems

import (
	"github.com/automoto/groundwork/components"
	cfg "github.com/automoto/groundwork/config"
	"github.com/automoto/groundwork/shared/gamemath"
	"github.com/automoto/groundwork/tags"
	"github.com/rs/zerolog/log"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// crouchOffset is subtracted from CrouchScale to get the drop applied to
// the body when crouching.
const crouchOffset = 0.1

// UpdatePlayer handles player input once per frame: use, crouch, jump, run
// and the velocity for the next fixed step.
func UpdatePlayer(e *ecs.ECS) {
	tags.Player.Each(e.World, func(playerEntry *donburi.Entry) {
		if playerEntry.HasComponent(tags.Disabled) {
			return
		}
		handlePlayerInput(e, playerEntry)
	})
}

func handlePlayerInput(e *ecs.ECS, playerEntry *donburi.Entry) {
	input := components.PlayerInput.Get(playerEntry)
	player := components.PlayerController.Get(playerEntry)
	settings := &player.Settings

	useAction := GetPlayerAction(input, cfg.ActionUse)
	crouchAction := GetPlayerAction(input, cfg.ActionCrouch)
	jumpAction := GetPlayerAction(input, cfg.ActionJump)
	runAction := GetPlayerAction(input, cfg.ActionRun)

	if useAction.JustPressed && settings.CanUse {
		Use(e, playerEntry)
	}
	if crouchAction.JustPressed && settings.CanCrouch {
		Crouch(playerEntry)
	}
	if jumpAction.Pressed && settings.CanJump {
		Jump(e, playerEntry)
	}

	player.IsRunning = runAction.Pressed && settings.CanRun
	player.Velocity = gamemath.PlanarDirection(input.Move).Mul(currentSpeed(player) * DeltaTime(e))
}

// currentSpeed picks the movement speed. Crouching wins over running.
func currentSpeed(player *components.PlayerControllerData) float64 {
	s := &player.Settings
	speed := s.WalkSpeed
	if s.CanRun && player.IsRunning {
		speed = s.RunSpeed
	}
	if s.CanCrouch && player.IsCrouching {
		speed = s.CrouchSpeed
	}
	return speed
}

// UpdatePlayerPhysics is the player's fixed step: clear the jump once back
// on the ground, then apply the velocity computed from input.
func UpdatePlayerPhysics(e *ecs.ECS) {
	tags.Player.Each(e.World, func(playerEntry *donburi.Entry) {
		if playerEntry.HasComponent(tags.Disabled) {
			return
		}
		player := components.PlayerController.Get(playerEntry)
		if IsGrounded(e, playerEntry) {
			player.IsJumping = false
		}
		if player.Velocity.Len() > 0 {
			Move(e, playerEntry)
		}
	})
}

// Move displaces the player by its velocity, stopping at colliders, and
// turns it toward the direction of travel.
func Move(e *ecs.ECS, playerEntry *donburi.Entry) {
	player := components.PlayerController.Get(playerEntry)
	t := components.Transform.Get(playerEntry)
	c := components.Collider.Get(playerEntry)

	for _, axis := range [...]int{0, 2} {
		if player.Velocity[axis] == 0 {
			continue
		}
		moved, _ := sweepAxis(e, playerEntry, c.Bounds(t), axis, player.Velocity[axis])
		t.Position[axis] += moved
	}

	if !player.Settings.LookInNewDirection {
		return
	}
	target := gamemath.LookRotation(player.Velocity)
	if player.Settings.SnapToNewDirection {
		t.Rotation = target
		return
	}
	t.Rotation = gamemath.SlerpClamped(t.Rotation, target, player.Settings.TurningSpeed*DeltaTime(e))
}

// Jump applies the jump impulse when the player is on the ground and not
// already jumping.
func Jump(e *ecs.ECS, playerEntry *donburi.Entry) {
	player := components.PlayerController.Get(playerEntry)
	if !player.Settings.CanJump || player.IsJumping {
		log.Debug().Str("entity", EntityName(playerEntry)).Msg("can't jump")
		return
	}
	if !IsGrounded(e, playerEntry) {
		return
	}
	AddImpulse(playerEntry, player.Settings.JumpForce)
	player.IsJumping = true
	log.Debug().Str("entity", EntityName(playerEntry)).Msg("jump")
}

// Crouch toggles crouching by squashing the body vertically. Standing up
// restores the scale but leaves the position to the physics step.
func Crouch(playerEntry *donburi.Entry) {
	player := components.PlayerController.Get(playerEntry)
	if !player.Settings.CanCrouch {
		log.Debug().Str("entity", EntityName(playerEntry)).Msg("can't crouch")
		return
	}

	t := components.Transform.Get(playerEntry)
	scale := player.Settings.CrouchScale
	if player.IsCrouching {
		t.Scale[1] /= scale
	} else {
		t.Scale[1] *= scale
		t.Position[1] -= scale - crouchOffset
	}
	player.IsCrouching = !player.IsCrouching
	log.Debug().Str("entity", EntityName(playerEntry)).Bool("crouching", player.IsCrouching).Msg("crouch")
}

// Use casts forward from the player and interacts with the first thing hit.
func Use(e *ecs.ECS, playerEntry *donburi.Entry) {
	player := components.PlayerController.Get(playerEntry)
	name := EntityName(playerEntry)
	if !player.Settings.CanUse {
		log.Debug().Str("entity", name).Msg("can't use")
		return
	}

	t := components.Transform.Get(playerEntry)
	hit, ok := Raycast(e, t.Position, gamemath.FacingDirection(t.Rotation), player.Settings.UseRaycastLength, playerEntry)
	if !ok {
		log.Debug().Str("entity", name).Msg("use: nothing hit")
		return
	}

	log.Debug().
		Str("entity", name).
		Str("target", EntityName(hit.Entry)).
		Float64("distance", hit.Distance).
		Msg("using / interacting")
	player.LastUseTarget = hit.Entry
	if hit.Entry.HasComponent(components.Interactable) {
		components.Interactable.Get(hit.Entry).Uses++
	}
}

// IsGrounded casts straight down from the player's centre.
func IsGrounded(e *ecs.ECS, playerEntry *donburi.Entry) bool {
	player := components.PlayerController.Get(playerEntry)
	t := components.Transform.Get(playerEntry)
	_, ok := Raycast(e, t.Position, gamemath.Down, player.Settings.GroundRaycastLength, playerEntry)
	return ok
}

// UseTarget returns the entity the player last used, if it is still active.
func UseTarget(playerEntry *donburi.Entry) (*donburi.Entry, bool) {
	player := components.PlayerController.Get(playerEntry)
	if !IsActive(player.LastUseTarget) {
		return nil, false
	}
	return player.LastUseTarget, true
}

// ApplyPlayerSettings replaces the tunables of every live controller and
// leaves their state alone. Mass and half extents are copied onto the body.
func ApplyPlayerSettings(e *ecs.ECS, settings cfg.PlayerConfig) {
	tags.Player.Each(e.World, func(playerEntry *donburi.Entry) {
		player := components.PlayerController.Get(playerEntry)
		old := player.Settings
		player.Settings = settings

		if playerEntry.HasComponent(components.Rigidbody) {
			components.Rigidbody.Get(playerEntry).Mass = settings.Mass
		}
		if playerEntry.HasComponent(components.Collider) {
			components.Collider.Get(playerEntry).HalfExtents = settings.HalfExtents
		}

		// Rescale a crouched body so standing up with the new scale
		// restores its standing height.
		if player.IsCrouching && old.CrouchScale > 0 {
			t := components.Transform.Get(playerEntry)
			t.Scale[1] *= settings.CrouchScale / old.CrouchScale
		}
	})
}
