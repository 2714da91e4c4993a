package systems

import (
	"math"

	"github.com/automoto/groundwork/components"
	"github.com/automoto/groundwork/shared/gamemath"
	"github.com/automoto/groundwork/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// contactTolerance is the overlap treated as touching, so bodies resting
// on a surface are not counted as inside it after rounding.
const contactTolerance = 1e-6

// collider is a candidate returned by the broadphase with its world box.
type collider struct {
	entry *donburi.Entry
	box   gamemath.AABB
}

// queryFootprint returns the enabled colliders whose resolv cells touch the
// XZ extent of area. ignore is left out of the result.
func queryFootprint(e *ecs.ECS, area gamemath.AABB, ignore *donburi.Entry) []collider {
	space, ok := GetSpace(e)
	if !ok {
		return nil
	}
	ppu := space.PixelsPerUnit

	w := math.Max((area.Max.X()-area.Min.X())*ppu, 1)
	h := math.Max((area.Max.Z()-area.Min.Z())*ppu, 1)
	probe := resolv.NewObject(area.Min.X()*ppu, area.Min.Z()*ppu, w, h, tags.ResolvProbe)
	space.Add(probe)
	defer space.Remove(probe)

	check := probe.Check(0, 0)
	if check == nil {
		return nil
	}

	var out []collider
	for _, obj := range check.Objects {
		entry, ok := obj.Data.(*donburi.Entry)
		if !ok || !IsActive(entry) {
			continue
		}
		if ignore != nil && entry.Entity() == ignore.Entity() {
			continue
		}
		if !entry.HasComponent(components.Transform) || !entry.HasComponent(components.Collider) {
			continue
		}
		box := components.Collider.Get(entry).Bounds(components.Transform.Get(entry))
		out = append(out, collider{entry: entry, box: box})
	}
	return out
}

// sweepAxis moves box by amount along axis (0 X, 1 Y, 2 Z) and returns how
// far it can travel before touching a collider. Colliders the box is already
// inside along that axis do not block it.
func sweepAxis(e *ecs.ECS, self *donburi.Entry, box gamemath.AABB, axis int, amount float64) (float64, bool) {
	if amount == 0 {
		return 0, false
	}

	var d mgl64.Vec3
	d[axis] = amount
	moved := box.Translate(d)
	swept := box
	if amount > 0 {
		swept.Max = moved.Max
	} else {
		swept.Min = moved.Min
	}

	allowed := amount
	blocked := false
	for _, c := range queryFootprint(e, swept, self) {
		if !overlapsOtherAxes(c.box, box, axis) {
			continue
		}
		if amount > 0 && c.box.Min[axis] >= box.Max[axis]-contactTolerance {
			if gap := math.Max(c.box.Min[axis]-box.Max[axis], 0); gap < allowed {
				allowed = gap
				blocked = true
			}
		}
		if amount < 0 && c.box.Max[axis] <= box.Min[axis]+contactTolerance {
			if gap := math.Min(c.box.Max[axis]-box.Min[axis], 0); gap > allowed {
				allowed = gap
				blocked = true
			}
		}
	}
	return allowed, blocked
}

// depenetrate returns the smallest push that moves box out of the
// colliders it overlaps. Upward pushes win ties so bodies stand on floors.
func depenetrate(e *ecs.ECS, self *donburi.Entry, box gamemath.AABB) mgl64.Vec3 {
	var push mgl64.Vec3
	for _, c := range queryFootprint(e, box, self) {
		if !overlapsOtherAxes(c.box, box, -1) {
			continue
		}
		best, bestAxis := c.box.Max[1]-box.Min[1], 1
		for axis := 0; axis < 3; axis++ {
			if axis == 1 {
				continue
			}
			if up := c.box.Max[axis] - box.Min[axis]; up < math.Abs(best) {
				best, bestAxis = up, axis
			}
			if down := c.box.Min[axis] - box.Max[axis]; -down < math.Abs(best) {
				best, bestAxis = down, axis
			}
		}
		var step mgl64.Vec3
		step[bestAxis] = best
		push = push.Add(step)
		box = box.Translate(step)
	}
	return push
}

// overlapsOtherAxes reports whether a and b overlap by more than the
// contact tolerance on every axis except skip. Pass -1 to test all three.
func overlapsOtherAxes(a, b gamemath.AABB, skip int) bool {
	for i := 0; i < 3; i++ {
		if i == skip {
			continue
		}
		if a.Max[i] <= b.Min[i]+contactTolerance || a.Min[i] >= b.Max[i]-contactTolerance {
			return false
		}
	}
	return true
}
