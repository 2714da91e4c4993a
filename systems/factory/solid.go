package factory

import (
	"github.com/automoto/groundwork/archetypes"
	"github.com/automoto/groundwork/components"
	"github.com/automoto/groundwork/shared/gamemath"
	"github.com/automoto/groundwork/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateSolid creates static geometry filling box.
func CreateSolid(ecs *ecs.ECS, name string, box gamemath.AABB) *donburi.Entry {
	solid := archetypes.Solid.Spawn(ecs)

	center := box.Min.Add(box.Max).Mul(0.5)
	components.Name.SetValue(solid, components.NameData{Name: name})
	components.Transform.SetValue(solid, components.NewTransform(center))
	components.Collider.SetValue(solid, components.ColliderData{
		HalfExtents: box.Max.Sub(box.Min).Mul(0.5),
	})
	addFootprint(ecs, solid, tags.ResolvSolid)

	return solid
}
