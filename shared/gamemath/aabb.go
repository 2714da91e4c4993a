package gamemath

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// AABB is an axis-aligned box in world space.
type AABB struct {
	Min, Max mgl64.Vec3
}

// BoxAt builds the box centred on center with the given half extents,
// scaled component-wise by scale.
func BoxAt(center, halfExtents, scale mgl64.Vec3) AABB {
	h := mgl64.Vec3{
		math.Abs(halfExtents[0] * scale[0]),
		math.Abs(halfExtents[1] * scale[1]),
		math.Abs(halfExtents[2] * scale[2]),
	}
	return AABB{Min: center.Sub(h), Max: center.Add(h)}
}

// Overlaps reports whether the boxes share volume. Touching faces do not
// count as overlap.
func (b AABB) Overlaps(o AABB) bool {
	for i := 0; i < 3; i++ {
		if b.Max[i] <= o.Min[i] || b.Min[i] >= o.Max[i] {
			return false
		}
	}
	return true
}

// Contains reports whether p lies inside the box (boundary included).
func (b AABB) Contains(p mgl64.Vec3) bool {
	for i := 0; i < 3; i++ {
		if p[i] < b.Min[i] || p[i] > b.Max[i] {
			return false
		}
	}
	return true
}

// Translate returns the box moved by d.
func (b AABB) Translate(d mgl64.Vec3) AABB {
	return AABB{Min: b.Min.Add(d), Max: b.Max.Add(d)}
}

// RayAABB intersects the ray origin + t*dir (dir unit length) with box for
// t in [0, maxDist]. Rays that start inside the box report no hit.
func RayAABB(origin, dir mgl64.Vec3, maxDist float64, box AABB) (float64, bool) {
	if box.Contains(origin) {
		return 0, false
	}

	tmin, tmax := 0.0, maxDist
	for i := 0; i < 3; i++ {
		if math.Abs(dir[i]) < 1e-12 {
			if origin[i] < box.Min[i] || origin[i] > box.Max[i] {
				return 0, false
			}
			continue
		}
		inv := 1 / dir[i]
		t1 := (box.Min[i] - origin[i]) * inv
		t2 := (box.Max[i] - origin[i]) * inv
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tmin = math.Max(tmin, t1)
		tmax = math.Min(tmax, t2)
		if tmin > tmax {
			return 0, false
		}
	}
	return tmin, true
}
