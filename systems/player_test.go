package systems_test

import (
	"math"
	"testing"

	"github.com/automoto/groundwork/components"
	cfg "github.com/automoto/groundwork/config"
	"github.com/automoto/groundwork/shared/gamemath"
	"github.com/automoto/groundwork/systems"
	"github.com/automoto/groundwork/systems/factory"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCrouchTwiceRestoresScale(t *testing.T) {
	e := newArena(t)
	p := spawnPlayer(e, 10, 10)
	tr := components.Transform.Get(p)
	pc := components.PlayerController.Get(p)

	systems.Crouch(p)
	assert.True(t, pc.IsCrouching)
	assert.InDelta(t, 0.45, tr.Scale.Y(), 1e-9)
	assert.InDelta(t, 1-(0.45-0.1), tr.Position.Y(), 1e-9)

	systems.Crouch(p)
	assert.False(t, pc.IsCrouching)
	assert.InDelta(t, 1.0, tr.Scale.Y(), 1e-9)
	assert.InDelta(t, 0.65, tr.Position.Y(), 1e-9, "standing up does not move the body")
}

func TestCrouchRefused(t *testing.T) {
	e := newArena(t)
	p := spawnPlayer(e, 10, 10)
	components.PlayerController.Get(p).Settings.CanCrouch = false

	systems.Crouch(p)
	assert.False(t, components.PlayerController.Get(p).IsCrouching)
	assert.Equal(t, 1.0, components.Transform.Get(p).Scale.Y())
}

func TestStandingUpLiftsBodyOutOfFloor(t *testing.T) {
	e := newArena(t)
	p := spawnPlayer(e, 10, 10)

	systems.Crouch(p)
	tick(e, 60)
	assert.InDelta(t, 0.45, components.Transform.Get(p).Position.Y(), 1e-6)

	systems.Crouch(p)
	tick(e, 2)
	assert.InDelta(t, 1.0, components.Transform.Get(p).Position.Y(), 1e-6)
	assert.True(t, components.Rigidbody.Get(p).OnGround)
}

func TestJumpCannotRetriggerUntilGrounded(t *testing.T) {
	e := newArena(t)
	p := spawnPlayer(e, 10, 10)
	pc := components.PlayerController.Get(p)
	body := components.Rigidbody.Get(p)

	require.True(t, systems.IsGrounded(e, p))
	systems.Jump(e, p)
	assert.True(t, pc.IsJumping)
	assert.Equal(t, 2.0, body.Velocity.Y())

	systems.Jump(e, p)
	assert.Equal(t, 2.0, body.Velocity.Y(), "second jump is refused while jumping")

	// Lift the body out of ground range; the jump flag must hold.
	components.Transform.Get(p).Position[1] = 5
	body.Velocity = mgl64.Vec3{}
	systems.UpdatePlayerPhysics(e)
	assert.True(t, pc.IsJumping)
	systems.Jump(e, p)
	assert.Equal(t, 0.0, body.Velocity.Y())

	tick(e, 120)
	assert.InDelta(t, 1.0, components.Transform.Get(p).Position.Y(), 1e-6)
	assert.False(t, pc.IsJumping, "landing clears the jump")

	systems.Jump(e, p)
	assert.True(t, pc.IsJumping)
	assert.Equal(t, 2.0, body.Velocity.Y())
}

// The ground probe is longer than the body's half height, so a held jump
// lands two more impulses while the body is still close to the floor.
func TestHeldJumpStacksWhileNearGround(t *testing.T) {
	e := newArena(t)
	logs := captureLogs(t)
	p := spawnPlayer(e, 10, 10)
	pc := components.PlayerController.Get(p)
	body := components.Rigidbody.Get(p)
	components.PlayerInput.Get(p).Current[cfg.ActionJump] = true

	gravityStep := -cfg.Physics.Gravity * cfg.C.DeltaTime()

	tick(e, 1)
	assert.InDelta(t, 2.0, body.Velocity.Y(), 1e-9)
	assert.True(t, pc.IsJumping)

	tick(e, 2)
	assert.InDelta(t, 6.0-2*gravityStep, body.Velocity.Y(), 1e-9)
	assert.True(t, pc.IsJumping)
	assert.Equal(t, 3, countMessages(logs, "jump"))

	tick(e, 1)
	assert.InDelta(t, 6.0-3*gravityStep, body.Velocity.Y(), 1e-9)
	assert.False(t, pc.IsJumping, "cleared inside the probe, then too high to jump")
	assert.Greater(t, components.Transform.Get(p).Position.Y(), 1.1)
	assert.Equal(t, 3, countMessages(logs, "jump"))
}

func TestJumpNeedsGround(t *testing.T) {
	e := newArena(t)
	p := spawnPlayer(e, 10, 10)
	components.Transform.Get(p).Position[1] = 5

	assert.False(t, systems.IsGrounded(e, p))
	systems.Jump(e, p)
	assert.False(t, components.PlayerController.Get(p).IsJumping)
	assert.Equal(t, 0.0, components.Rigidbody.Get(p).Velocity.Y())
}

func TestJumpImpulseScalesWithMass(t *testing.T) {
	e := newArena(t)
	p := spawnPlayer(e, 10, 10)
	components.Rigidbody.Get(p).Mass = 4

	systems.Jump(e, p)
	assert.Equal(t, 0.5, components.Rigidbody.Get(p).Velocity.Y())
}

func TestHandleInputVelocity(t *testing.T) {
	dt := cfg.C.DeltaTime()
	tests := []struct {
		name   string
		move   mgl64.Vec2
		run    bool
		crouch bool
		speed  float64
	}{
		{"idle", mgl64.Vec2{}, false, false, 0},
		{"walk", mgl64.Vec2{0, 1}, false, false, 80},
		{"run", mgl64.Vec2{0, 1}, true, false, 120},
		{"crouch wins over run", mgl64.Vec2{0, 1}, true, true, 8},
		{"diagonal is normalized", mgl64.Vec2{1, 1}, false, false, 80},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newArena(t)
			p := spawnPlayer(e, 10, 10)
			pc := components.PlayerController.Get(p)
			pc.IsCrouching = tt.crouch

			input := components.PlayerInput.Get(p)
			input.Move = tt.move
			input.Current[cfg.ActionRun] = tt.run

			systems.UpdatePlayer(e)
			assert.InDelta(t, tt.speed*dt, pc.Velocity.Len(), 1e-9)
			assert.Equal(t, tt.run, pc.IsRunning)
			assert.Zero(t, pc.Velocity.Y())
		})
	}
}

func TestRunRequiresCanRun(t *testing.T) {
	e := newArena(t)
	p := spawnPlayer(e, 10, 10)
	pc := components.PlayerController.Get(p)
	pc.Settings.CanRun = false

	input := components.PlayerInput.Get(p)
	input.Move = mgl64.Vec2{1, 0}
	input.Current[cfg.ActionRun] = true

	systems.UpdatePlayer(e)
	assert.False(t, pc.IsRunning)
	assert.InDelta(t, 80*cfg.C.DeltaTime(), pc.Velocity.Len(), 1e-9)
}

func TestHandleInputEdges(t *testing.T) {
	e := newArena(t)
	p := spawnPlayer(e, 10, 10)
	pc := components.PlayerController.Get(p)
	input := components.PlayerInput.Get(p)

	// Crouch toggles on the press, not while held.
	input.Current[cfg.ActionCrouch] = true
	systems.UpdatePlayer(e)
	assert.True(t, pc.IsCrouching)

	input.Previous = input.Current
	systems.UpdatePlayer(e)
	assert.True(t, pc.IsCrouching)

	input.Previous = input.Current
	input.Current[cfg.ActionCrouch] = false
	systems.UpdatePlayer(e)
	input.Previous = input.Current
	input.Current[cfg.ActionCrouch] = true
	systems.UpdatePlayer(e)
	assert.False(t, pc.IsCrouching)

	// Jump fires while held.
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}
	input.Current[cfg.ActionJump] = true
	input.Previous[cfg.ActionJump] = true
	systems.UpdatePlayer(e)
	assert.True(t, pc.IsJumping)
}

func TestMoveStopsAtWalls(t *testing.T) {
	e := newArena(t)
	factory.CreateSolid(e, "wall", box(12, 0, 0, 13, 3, 40))
	p := spawnPlayer(e, 10, 10)
	pc := components.PlayerController.Get(p)
	pc.Settings.SnapToNewDirection = true
	pc.Velocity = mgl64.Vec3{5, 0, 0}

	systems.Move(e, p)
	tr := components.Transform.Get(p)
	assert.InDelta(t, 11.5, tr.Position.X(), 1e-9)
	assert.InDelta(t, 10.0, tr.Position.Z(), 1e-9)
	assert.InDelta(t, math.Pi/2, gamemath.Yaw(tr.Rotation), 1e-9)
}

func TestMoveSlerpsTowardDirection(t *testing.T) {
	e := newArena(t)
	p := spawnPlayer(e, 10, 10)
	pc := components.PlayerController.Get(p)
	pc.Velocity = mgl64.Vec3{0.1, 0, 0}

	systems.Move(e, p)
	yaw := gamemath.Yaw(components.Transform.Get(p).Rotation)
	assert.Greater(t, yaw, 0.0)
	assert.Less(t, yaw, math.Pi/2)

	pc.Settings.LookInNewDirection = false
	before := components.Transform.Get(p).Rotation
	systems.Move(e, p)
	assert.Equal(t, before, components.Transform.Get(p).Rotation)
}

func TestUseInteractsWithTargetAhead(t *testing.T) {
	logs := captureLogs(t)
	e := newArena(t)
	p := spawnPlayer(e, 10, 10)
	crate := spawnTarget(e, "crate", box(9.5, 0, 11, 10.5, 1.5, 12), cfg.DefaultHealth())

	systems.Use(e, p)
	require.True(t, components.PlayerController.Get(p).LastUseTarget == crate)
	assert.Equal(t, 1, components.Interactable.Get(crate).Uses)
	assert.Equal(t, 1, countMessages(logs, "using / interacting"))

	// Facing away hits nothing.
	components.Transform.Get(p).Rotation = gamemath.LookRotation(mgl64.Vec3{0, 0, -1})
	systems.Use(e, p)
	assert.Equal(t, 1, components.Interactable.Get(crate).Uses)
	assert.Equal(t, 1, countMessages(logs, "use: nothing hit"))

	components.PlayerController.Get(p).Settings.CanUse = false
	systems.Use(e, p)
	assert.Equal(t, 1, countMessages(logs, "can't use"))
}

func TestUseOutOfRange(t *testing.T) {
	e := newArena(t)
	p := spawnPlayer(e, 10, 10)
	crate := spawnTarget(e, "crate", box(9.5, 0, 12.5, 10.5, 1.5, 13), cfg.DefaultHealth())

	systems.Use(e, p)
	assert.Nil(t, components.PlayerController.Get(p).LastUseTarget)
	assert.Equal(t, 0, components.Interactable.Get(crate).Uses)
}

func TestApplyPlayerSettingsKeepsState(t *testing.T) {
	e := newArena(t)
	p := spawnPlayer(e, 10, 10)
	pc := components.PlayerController.Get(p)
	pc.IsJumping = true

	settings := cfg.DefaultPlayer()
	settings.WalkSpeed = 12
	systems.ApplyPlayerSettings(e, settings)

	assert.Equal(t, 12.0, pc.Settings.WalkSpeed)
	assert.True(t, pc.IsJumping)
}

func TestApplyPlayerSettingsUpdatesBody(t *testing.T) {
	e := newArena(t)
	p := spawnPlayer(e, 10, 10)

	settings := cfg.DefaultPlayer()
	settings.Mass = 3
	settings.HalfExtents = mgl64.Vec3{0.4, 1, 0.4}
	systems.ApplyPlayerSettings(e, settings)

	assert.Equal(t, 3.0, components.Rigidbody.Get(p).Mass)
	assert.Equal(t, mgl64.Vec3{0.4, 1, 0.4}, components.Collider.Get(p).HalfExtents)
}

func TestApplyPlayerSettingsRescalesCrouchedBody(t *testing.T) {
	e := newArena(t)
	p := spawnPlayer(e, 10, 10)
	tr := components.Transform.Get(p)
	tr.Scale[1] = 2

	systems.Crouch(p)
	assert.InDelta(t, 0.9, tr.Scale.Y(), 1e-9)

	settings := cfg.DefaultPlayer()
	settings.CrouchScale = 0.5
	systems.ApplyPlayerSettings(e, settings)
	assert.InDelta(t, 1.0, tr.Scale.Y(), 1e-9)

	systems.Crouch(p)
	assert.False(t, components.PlayerController.Get(p).IsCrouching)
	assert.InDelta(t, 2.0, tr.Scale.Y(), 1e-9)
}
