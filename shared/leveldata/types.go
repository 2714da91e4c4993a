// Package leveldata provides TMX arena parsing.
// It has no dependencies on ebitengine, donburi, or resolv. Pure data only.
//
// Arenas are drawn top-down in Tiled: the map's X axis is world X and the
// map's Y axis is world Z. Heights (world Y) come from object properties.
package leveldata

import "github.com/automoto/groundwork/shared/gamemath"

// Arena holds everything parsed from a TMX arena file, in world units.
type Arena struct {
	Name          string
	Width         float64 // world X extent
	Depth         float64 // world Z extent
	PixelsPerUnit float64 // Tiled pixels per world unit (the map tile width)
	Solids        []Solid
	Spawns        []SpawnPoint
	Targets       []Target
}

// Solid is static level geometry.
type Solid struct {
	Name string
	Box  gamemath.AABB
}

// SpawnPoint is a player start position.
type SpawnPoint struct {
	X, Y, Z float64
	Index   int
}

// Target is a health-bearing object. Properties carries the raw Tiled
// properties so health overrides can be applied on top of the defaults.
type Target struct {
	Name         string
	Box          gamemath.AABB
	Interactable bool
	Properties   map[string]string
}
