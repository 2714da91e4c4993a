package tags

import "github.com/yohamta/donburi"

var (
	Player   = donburi.NewTag().SetName("Player")
	Solid    = donburi.NewTag().SetName("Solid")
	Target   = donburi.NewTag().SetName("Target")
	Disabled = donburi.NewTag().SetName("Disabled")
)

// Resolv tags for the collision footprints
const (
	ResolvSolid  = "solid"
	ResolvPlayer = "Player"
	ResolvTarget = "target"
	ResolvProbe  = "probe"
)
