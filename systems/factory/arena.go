package factory

import (
	"fmt"

	"github.com/automoto/groundwork/archetypes"
	"github.com/automoto/groundwork/components"
	cfg "github.com/automoto/groundwork/config"
	"github.com/automoto/groundwork/shared/leveldata"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateArena builds a loaded arena into the world: the collision space,
// solids, targets, the player at the first spawn, and the camera. It
// returns the player entry.
func CreateArena(ecs *ecs.ECS, arena *leveldata.Arena) (*donburi.Entry, error) {
	if len(arena.Spawns) == 0 {
		return nil, fmt.Errorf("arena %q: no player spawn", arena.Name)
	}

	entry := archetypes.Arena.Spawn(ecs)
	components.Arena.SetValue(entry, components.ArenaData{Arena: arena})

	CreateSpace(ecs, arena.Width, arena.Depth, cfg.Physics.PixelsPerUnit, cfg.Physics.CellSize)

	for _, s := range arena.Solids {
		CreateSolid(ecs, s.Name, s.Box)
	}
	for _, t := range arena.Targets {
		if _, err := CreateTargetFromArena(ecs, t, cfg.Health); err != nil {
			return nil, fmt.Errorf("arena %q: %w", arena.Name, err)
		}
	}

	spawn := arena.Spawns[0]
	player := CreatePlayer(ecs, mgl64.Vec3{spawn.X, spawn.Y, spawn.Z}, cfg.Player)
	CreateCamera(ecs, spawn.X, spawn.Z)

	return player, nil
}
