package systems

import (
	"github.com/automoto/groundwork/components"
	"github.com/automoto/groundwork/config"
	"github.com/automoto/groundwork/tags"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCamera follows the player across the arena floor with some
// smoothing. The camera works in world units; rendering scales by
// ViewScale.
func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	playerEntry, ok := tags.Player.First(e.World)
	if !ok || !IsActive(playerEntry) {
		return // no player, skip camera update
	}
	pos := components.Transform.Get(playerEntry).Position

	targetX, targetY := pos.X(), pos.Z()

	// Keep the arena filling the view where it is large enough.
	if arenaEntry, ok := components.Arena.First(e.World); ok {
		if arena := components.Arena.Get(arenaEntry).Arena; arena != nil {
			halfW := float64(config.C.Width) / 2 / config.UI.ViewScale
			halfH := float64(config.C.Height) / 2 / config.UI.ViewScale
			targetX = clampView(targetX, halfW, arena.Width)
			targetY = clampView(targetY, halfH, arena.Depth)
		}
	}

	camera.Position.X += (targetX - camera.Position.X) * config.Camera.FollowSmoothing
	camera.Position.Y += (targetY - camera.Position.Y) * config.Camera.FollowSmoothing
}

// clampView keeps a view of half-size half inside [0, size], or centres it
// when the arena is smaller than the view.
func clampView(v, half, size float64) float64 {
	if size <= 2*half {
		return size / 2
	}
	if v < half {
		return half
	}
	if v > size-half {
		return size - half
	}
	return v
}
