package factory

import (
	"fmt"

	"github.com/automoto/groundwork/archetypes"
	"github.com/automoto/groundwork/components"
	cfg "github.com/automoto/groundwork/config"
	"github.com/automoto/groundwork/shared/gamemath"
	"github.com/automoto/groundwork/shared/leveldata"
	"github.com/automoto/groundwork/systems"
	"github.com/automoto/groundwork/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateTarget spawns a health-bearing object filling box.
func CreateTarget(ecs *ecs.ECS, name string, box gamemath.AABB, health cfg.HealthConfig, interactable bool) *donburi.Entry {
	target := archetypes.Target.Spawn(ecs)

	center := box.Min.Add(box.Max).Mul(0.5)
	components.Name.SetValue(target, components.NameData{Name: name})
	components.Transform.SetValue(target, components.NewTransform(center))
	components.Collider.SetValue(target, components.ColliderData{
		HalfExtents: box.Max.Sub(box.Min).Mul(0.5),
	})
	systems.AttachHealth(ecs, target, health)
	if interactable {
		donburi.Add(target, components.Interactable, &components.InteractableData{})
	}
	addFootprint(ecs, target, tags.ResolvTarget)

	return target
}

// CreateTargetFromArena spawns an arena target, layering its map
// properties over the default health settings.
func CreateTargetFromArena(ecs *ecs.ECS, t leveldata.Target, defaults cfg.HealthConfig) (*donburi.Entry, error) {
	health, err := defaults.WithOverrides(t.Properties)
	if err != nil {
		return nil, fmt.Errorf("target %q: %w", t.Name, err)
	}
	return CreateTarget(ecs, t.Name, t.Box, health, t.Interactable), nil
}
