// Package gamemath holds the pure math shared by the gameplay systems:
// direction and rotation helpers on mgl64 types and axis-aligned box queries.
// It has no dependencies on ebitengine, donburi, or resolv.
package gamemath

import "github.com/go-gl/mathgl/mgl64"

// ApplyGravity returns velocity after one step of gravity, clamping the
// fall speed to maxFall (a positive magnitude).
func ApplyGravity(velocity mgl64.Vec3, gravity, maxFall, dt float64) mgl64.Vec3 {
	velocity[1] += gravity * dt
	if maxFall > 0 && velocity[1] < -maxFall {
		velocity[1] = -maxFall
	}
	return velocity
}

// Impulse returns the velocity change an impulse causes on a body of the
// given mass. A non-positive mass is treated as 1.
func Impulse(force mgl64.Vec3, mass float64) mgl64.Vec3 {
	if mass <= 0 {
		mass = 1
	}
	return force.Mul(1 / mass)
}
