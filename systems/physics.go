package systems

import (
	"github.com/automoto/groundwork/components"
	cfg "github.com/automoto/groundwork/config"
	"github.com/automoto/groundwork/shared/gamemath"
	"github.com/automoto/groundwork/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePhysics integrates every rigidbody for one fixed step: gravity,
// depenetration, then per-axis movement blocked by colliders.
func UpdatePhysics(e *ecs.ECS) {
	dt := DeltaTime(e)
	components.Rigidbody.Each(e.World, func(entry *donburi.Entry) {
		if entry.HasComponent(tags.Disabled) {
			return
		}
		stepBody(e, entry, dt)
	})
}

func stepBody(e *ecs.ECS, entry *donburi.Entry, dt float64) {
	body := components.Rigidbody.Get(entry)
	t := components.Transform.Get(entry)
	c := components.Collider.Get(entry)

	if body.UseGravity {
		body.Velocity = gamemath.ApplyGravity(body.Velocity, cfg.Physics.Gravity, cfg.Physics.MaxFallSpeed, dt)
	}

	// Scale changes (standing up from a crouch) can leave the body inside
	// the floor.
	if push := depenetrate(e, entry, c.Bounds(t)); push.Len() > 0 {
		t.Position = t.Position.Add(push)
	}

	// Horizontal first so a landing this step does not clip a ledge.
	for _, axis := range [...]int{0, 2, 1} {
		amount := body.Velocity[axis] * dt
		if amount == 0 {
			if axis == 1 {
				body.OnGround = false
			}
			continue
		}
		moved, blocked := sweepAxis(e, entry, c.Bounds(t), axis, amount)
		t.Position[axis] += moved
		if !blocked {
			if axis == 1 {
				body.OnGround = false
			}
			continue
		}
		if axis == 1 {
			body.OnGround = amount < 0
		}
		body.Velocity[axis] = 0
	}
}

// AddImpulse changes a body's velocity by force / mass.
func AddImpulse(entry *donburi.Entry, force mgl64.Vec3) {
	body := components.Rigidbody.Get(entry)
	body.Velocity = body.Velocity.Add(gamemath.Impulse(force, body.Mass))
}
