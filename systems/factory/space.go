package factory

import (
	"math"

	"github.com/automoto/groundwork/archetypes"
	"github.com/automoto/groundwork/components"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateSpace creates the collision space covering a width x depth arena
// floor. Sizes are in world units; ppu resolv units make one world unit.
func CreateSpace(ecs *ecs.ECS, width, depth, ppu float64, cellSize int) *donburi.Entry {
	space := archetypes.Space.Spawn(ecs)
	w := int(math.Ceil(width * ppu))
	h := int(math.Ceil(depth * ppu))
	components.Space.SetValue(space, components.SpaceData{
		Space:         resolv.NewSpace(w, h, cellSize, cellSize),
		PixelsPerUnit: ppu,
	})
	return space
}

// addFootprint creates entry's resolv object, links it back to the entry and
// adds it to the space when there is one.
func addFootprint(ecs *ecs.ECS, entry *donburi.Entry, resolvTags ...string) *resolv.Object {
	t := components.Transform.Get(entry)
	c := components.Collider.Get(entry)

	obj := resolv.NewObject(0, 0, 1, 1, resolvTags...)
	obj.Data = entry // Link for O(1) lookup
	components.Object.SetValue(entry, components.ObjectData{Object: obj})

	ppu := 1.0
	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		space := components.Space.Get(spaceEntry)
		space.Add(obj)
		ppu = space.PixelsPerUnit
	}
	components.Object.Get(entry).SyncFootprint(c.Bounds(t), ppu)
	return obj
}
