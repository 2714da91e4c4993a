package components

import "github.com/yohamta/donburi"

// DamageEventData is queued damage, applied by the combat system through
// the normal TakeDamage path.
type DamageEventData struct {
	Amount float64
}

var DamageEvent = donburi.NewComponentType[DamageEventData]()

// HealEventData is queued healing, kept apart by kind since each kind has
// its own overheal rule.
type HealEventData struct {
	External float64
	Self     float64
}

var HealEvent = donburi.NewComponentType[HealEventData]()
