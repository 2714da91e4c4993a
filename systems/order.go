package systems

import "github.com/yohamta/donburi/ecs"

// Gameplay returns the gameplay systems in the order they run each tick,
// after input has been polled. The fixed-step systems come before the
// per-frame ones, so a death latched during a frame is dispatched on the
// next tick.
func Gameplay() []ecs.System {
	return []ecs.System{
		UpdateClock,

		// Fixed step
		UpdatePlayerPhysics,
		UpdatePhysics,
		UpdateHealthDeaths,

		// Frame
		UpdatePlayer,
		UpdateHealth,
		UpdateCombat,
		UpdateScheduledDestroys,
		UpdateObjects,
		UpdateHealthBars,
	}
}
