package systems_test

import (
	"testing"

	"github.com/automoto/groundwork/components"
	cfg "github.com/automoto/groundwork/config"
	"github.com/automoto/groundwork/systems"
	"github.com/automoto/groundwork/systems/factory"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
)

func TestBodyFallsAndLands(t *testing.T) {
	e := newArena(t)
	p := factory.CreatePlayer(e, mgl64.Vec3{10, 5, 10}, cfg.DefaultPlayer())
	body := components.Rigidbody.Get(p)
	pos := &components.Transform.Get(p).Position

	tick(e, 10)
	assert.Less(t, pos.Y(), 5.0)
	assert.Less(t, body.Velocity.Y(), 0.0)
	assert.False(t, body.OnGround)
	assert.False(t, systems.IsGrounded(e, p))

	tick(e, 120)
	assert.InDelta(t, 1.0, pos.Y(), 1e-9)
	assert.Equal(t, 0.0, body.Velocity.Y())
	assert.True(t, body.OnGround)
	assert.True(t, systems.IsGrounded(e, p))
}

func TestBodyStopsUnderCeiling(t *testing.T) {
	e := newArena(t)
	factory.CreateSolid(e, "ceiling", box(0, 2.5, 0, 40, 3, 40))
	p := spawnPlayer(e, 10, 10)
	body := components.Rigidbody.Get(p)

	systems.AddImpulse(p, mgl64.Vec3{0, 60, 0})
	tick(e, 1)
	assert.InDelta(t, 1.5, components.Transform.Get(p).Position.Y(), 1e-9)
	assert.Equal(t, 0.0, body.Velocity.Y())
	assert.False(t, body.OnGround)
}

func TestBodySlidesAlongWall(t *testing.T) {
	e := newArena(t)
	factory.CreateSolid(e, "wall", box(12, 0, 0, 13, 3, 40))
	p := spawnPlayer(e, 11, 10)
	body := components.Rigidbody.Get(p)

	body.Velocity = mgl64.Vec3{60, 0, 60}
	tick(e, 1)
	pos := components.Transform.Get(p).Position
	assert.InDelta(t, 11.5, pos.X(), 1e-9)
	assert.InDelta(t, 11.0, pos.Z(), 1e-9)
	assert.Equal(t, 0.0, body.Velocity.X())
	assert.Equal(t, 60.0, body.Velocity.Z())
}

func TestMaxFallSpeed(t *testing.T) {
	e := newArena(t)
	p := factory.CreatePlayer(e, mgl64.Vec3{10, 30, 10}, cfg.DefaultPlayer())
	body := components.Rigidbody.Get(p)
	body.Velocity = mgl64.Vec3{0, -cfg.Physics.MaxFallSpeed - 10, 0}

	systems.UpdateClock(e)
	systems.UpdatePhysics(e)
	assert.Equal(t, -cfg.Physics.MaxFallSpeed, body.Velocity.Y())
}
