package gamemath

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// normalizeEpsilon is the length below which a vector is treated as zero.
const normalizeEpsilon = 1e-5

var (
	Up      = mgl64.Vec3{0, 1, 0}
	Down    = mgl64.Vec3{0, -1, 0}
	Forward = mgl64.Vec3{0, 0, 1}
)

// SafeNormalize returns v scaled to unit length, or the zero vector when v
// is too short to have a direction.
func SafeNormalize(v mgl64.Vec3) mgl64.Vec3 {
	l := v.Len()
	if l < normalizeEpsilon {
		return mgl64.Vec3{}
	}
	return v.Mul(1 / l)
}

// PlanarDirection maps a 2D move axis onto the XZ plane (x stays x,
// y becomes z) and normalizes it.
func PlanarDirection(axis mgl64.Vec2) mgl64.Vec3 {
	return SafeNormalize(mgl64.Vec3{axis.X(), 0, axis.Y()})
}

// LookRotation returns the rotation that turns Forward (+Z) toward dir while
// keeping Up. Only the horizontal part of dir is used; a purely vertical or
// zero dir returns the identity.
func LookRotation(dir mgl64.Vec3) mgl64.Quat {
	if math.Abs(dir.X()) < normalizeEpsilon && math.Abs(dir.Z()) < normalizeEpsilon {
		return mgl64.QuatIdent()
	}
	yaw := math.Atan2(dir.X(), dir.Z())
	return mgl64.QuatRotate(yaw, Up)
}

// Yaw returns the heading of q around Up, in radians, measured from +Z
// toward +X.
func Yaw(q mgl64.Quat) float64 {
	f := q.Rotate(Forward)
	return math.Atan2(f.X(), f.Z())
}

// FacingDirection returns the world-space forward vector for rotation q.
func FacingDirection(q mgl64.Quat) mgl64.Vec3 {
	return SafeNormalize(q.Rotate(Forward))
}

// SlerpClamped interpolates from a toward b with t clamped to [0, 1].
func SlerpClamped(a, b mgl64.Quat, t float64) mgl64.Quat {
	t = mgl64.Clamp(t, 0, 1)
	if t == 0 {
		return a
	}
	if t == 1 {
		return b
	}
	return mgl64.QuatSlerp(a, b, t)
}
