package components

import (
	"github.com/automoto/groundwork/shared/gamemath"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

// RigidbodyData marks a dynamic body moved by the physics step.
type RigidbodyData struct {
	Mass       float64
	Velocity   mgl64.Vec3 // units per second
	UseGravity bool
	OnGround   bool // resting on a solid after the last physics step
}

var Rigidbody = donburi.NewComponentType[RigidbodyData]()

// ColliderData is a box collider centred on the transform position.
// HalfExtents are before the transform's scale is applied.
type ColliderData struct {
	HalfExtents mgl64.Vec3
}

// Bounds returns the collider's world box for the given transform.
func (c *ColliderData) Bounds(t *TransformData) gamemath.AABB {
	return gamemath.BoxAt(t.Position, c.HalfExtents, t.Scale)
}

var Collider = donburi.NewComponentType[ColliderData]()
