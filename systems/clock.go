package systems

import (
	"github.com/automoto/groundwork/components"
	cfg "github.com/automoto/groundwork/config"
	"github.com/yohamta/donburi/ecs"
)

// UpdateClock advances the game clock by one tick.
// Must run first in the system order.
func UpdateClock(e *ecs.ECS) {
	clock := GetOrCreateClock(e)
	clock.DeltaTime = cfg.C.DeltaTime()
	clock.Time += clock.DeltaTime
	clock.Frame++
}

// GetOrCreateClock returns the singleton Clock component, creating if needed.
func GetOrCreateClock(e *ecs.ECS) *components.ClockData {
	entry, ok := components.Clock.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Clock))
		components.Clock.SetValue(entry, components.ClockData{
			DeltaTime: cfg.C.DeltaTime(),
		})
	}
	return components.Clock.Get(entry)
}

// Now returns the game time in seconds.
func Now(e *ecs.ECS) float64 {
	return GetOrCreateClock(e).Time
}

// DeltaTime returns the length of the current tick in seconds.
func DeltaTime(e *ecs.ECS) float64 {
	return GetOrCreateClock(e).DeltaTime
}
