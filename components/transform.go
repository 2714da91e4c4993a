package components

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

// TransformData places an entity in the 3D world. Position is the centre of
// the entity's collider.
type TransformData struct {
	Position mgl64.Vec3
	Rotation mgl64.Quat
	Scale    mgl64.Vec3
}

// NewTransform returns a transform at position with identity rotation and
// unit scale.
func NewTransform(position mgl64.Vec3) TransformData {
	return TransformData{
		Position: position,
		Rotation: mgl64.QuatIdent(),
		Scale:    mgl64.Vec3{1, 1, 1},
	}
}

var Transform = donburi.NewComponentType[TransformData]()
