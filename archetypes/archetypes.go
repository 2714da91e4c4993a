package archetypes

import (
	"github.com/automoto/groundwork/components"
	cfg "github.com/automoto/groundwork/config"
	"github.com/automoto/groundwork/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Player = newArchetype(
		tags.Player,
		components.PlayerController,
		components.PlayerInput,
		components.Transform,
		components.Collider,
		components.Rigidbody,
		components.Object,
	)
	Solid = newArchetype(
		tags.Solid,
		components.Name,
		components.Transform,
		components.Collider,
		components.Object,
	)
	Target = newArchetype(
		tags.Target,
		components.Name,
		components.Transform,
		components.Collider,
		components.Object,
		components.Health,
		components.HealthBar,
	)
	Space = newArchetype(
		components.Space,
	)
	Arena = newArchetype(
		components.Arena,
	)
	Camera = newArchetype(
		components.Camera,
	)
	Clock = newArchetype(
		components.Clock,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
