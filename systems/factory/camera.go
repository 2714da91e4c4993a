package factory

import (
	"github.com/automoto/groundwork/archetypes"
	"github.com/automoto/groundwork/components"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// CreateCamera creates the view centred on x/z.
func CreateCamera(ecs *ecs.ECS, x, z float64) {
	camera := archetypes.Camera.Spawn(ecs)
	components.Camera.Set(camera, &components.CameraData{
		Position: math.Vec2{X: x, Y: z},
	})
}
