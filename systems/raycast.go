package systems

import (
	"math"

	"github.com/automoto/groundwork/shared/gamemath"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// RaycastHit is the nearest collider along a ray.
type RaycastHit struct {
	Entry    *donburi.Entry
	Distance float64
	Point    mgl64.Vec3
}

// Raycast casts from origin along dir for at most maxDist world units and
// returns the nearest enabled collider, skipping ignore. Colliders that
// contain the origin are not hit.
func Raycast(e *ecs.ECS, origin, dir mgl64.Vec3, maxDist float64, ignore *donburi.Entry) (RaycastHit, bool) {
	dir = gamemath.SafeNormalize(dir)
	if dir.Len() == 0 || maxDist <= 0 {
		return RaycastHit{}, false
	}

	end := origin.Add(dir.Mul(maxDist))
	area := gamemath.AABB{
		Min: mgl64.Vec3{math.Min(origin.X(), end.X()), math.Min(origin.Y(), end.Y()), math.Min(origin.Z(), end.Z())},
		Max: mgl64.Vec3{math.Max(origin.X(), end.X()), math.Max(origin.Y(), end.Y()), math.Max(origin.Z(), end.Z())},
	}

	var best RaycastHit
	found := false
	for _, c := range queryFootprint(e, area, ignore) {
		dist, ok := gamemath.RayAABB(origin, dir, maxDist, c.box)
		if !ok {
			continue
		}
		if !found || dist < best.Distance {
			best = RaycastHit{Entry: c.entry, Distance: dist}
			found = true
		}
	}
	if found {
		best.Point = origin.Add(dir.Mul(best.Distance))
	}
	return best, found
}
