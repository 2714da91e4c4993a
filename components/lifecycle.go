package components

import "github.com/yohamta/donburi"

// DestroyAtData schedules removal of the entity at Time (clock seconds).
type DestroyAtData struct {
	Time float64
}

var DestroyAt = donburi.NewComponentType[DestroyAtData]()
