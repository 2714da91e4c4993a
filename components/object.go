package components

import (
	"github.com/automoto/groundwork/shared/gamemath"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// ObjectData is an entity's footprint on the XZ plane inside the resolv
// space. resolv X is world X and resolv Y is world Z, both scaled by the
// space's pixels-per-unit.
type ObjectData struct {
	*resolv.Object
}

// SyncFootprint moves the footprint to cover box.
func (o *ObjectData) SyncFootprint(box gamemath.AABB, ppu float64) {
	o.X = box.Min.X() * ppu
	o.Y = box.Min.Z() * ppu
	o.W = (box.Max.X() - box.Min.X()) * ppu
	o.H = (box.Max.Z() - box.Min.Z()) * ppu
	o.Update()
}

var Object = donburi.NewComponentType[ObjectData]()

// SpaceData is the collision space singleton.
type SpaceData struct {
	*resolv.Space
	PixelsPerUnit float64
}

var Space = donburi.NewComponentType[SpaceData]()
