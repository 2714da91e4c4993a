package systems

import (
	"fmt"

	"github.com/automoto/groundwork/components"
	"github.com/automoto/groundwork/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateObjects moves every enabled footprint to its entity's collider.
// Runs last in the frame so raycasts next frame see current positions.
func UpdateObjects(e *ecs.ECS) {
	ppu := pixelsPerUnit(e)
	for entry := range components.Object.Iter(e.World) {
		if entry.HasComponent(tags.Disabled) {
			continue
		}
		syncFootprint(entry, ppu)
	}
}

func syncFootprint(entry *donburi.Entry, ppu float64) {
	if !entry.HasComponent(components.Transform) || !entry.HasComponent(components.Collider) {
		return
	}
	t := components.Transform.Get(entry)
	c := components.Collider.Get(entry)
	components.Object.Get(entry).SyncFootprint(c.Bounds(t), ppu)
}

// GetSpace returns the collision space singleton, if the scene created one.
func GetSpace(e *ecs.ECS) (*components.SpaceData, bool) {
	entry, ok := components.Space.First(e.World)
	if !ok {
		return nil, false
	}
	return components.Space.Get(entry), true
}

func pixelsPerUnit(e *ecs.ECS) float64 {
	if space, ok := GetSpace(e); ok && space.PixelsPerUnit > 0 {
		return space.PixelsPerUnit
	}
	return 1
}

// IsActive reports whether entry is still in the world and not disabled.
func IsActive(entry *donburi.Entry) bool {
	return entry != nil && entry.Valid() && !entry.HasComponent(tags.Disabled)
}

// EntityName names an entity for logs.
func EntityName(entry *donburi.Entry) string {
	if entry.HasComponent(components.Name) {
		if n := components.Name.Get(entry).Name; n != "" {
			return n
		}
	}
	if entry.HasComponent(tags.Player) {
		return "player"
	}
	return fmt.Sprintf("entity-%v", entry.Entity())
}
