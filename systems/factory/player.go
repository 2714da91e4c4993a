package factory

import (
	"github.com/automoto/groundwork/archetypes"
	"github.com/automoto/groundwork/components"
	cfg "github.com/automoto/groundwork/config"
	"github.com/automoto/groundwork/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePlayer spawns a player controller with the given tunables, its
// centre at position.
func CreatePlayer(ecs *ecs.ECS, position mgl64.Vec3, settings cfg.PlayerConfig) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	components.PlayerController.SetValue(player, components.PlayerControllerData{
		Settings: settings,
	})
	components.Transform.SetValue(player, components.NewTransform(position))
	components.Collider.SetValue(player, components.ColliderData{
		HalfExtents: settings.HalfExtents,
	})
	components.Rigidbody.SetValue(player, components.RigidbodyData{
		Mass:       settings.Mass,
		UseGravity: true,
	})
	addFootprint(ecs, player, tags.ResolvPlayer)

	return player
}
