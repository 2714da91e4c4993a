package systems

import (
	"github.com/automoto/groundwork/components"
	cfg "github.com/automoto/groundwork/config"
	"github.com/automoto/groundwork/shared/gamemath"
	"github.com/automoto/groundwork/tags"
	"github.com/rs/zerolog/log"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// QueueDamage adds damage to the entity's pending DamageEvent.
func QueueDamage(entry *donburi.Entry, amount float64) {
	if !entry.HasComponent(components.Health) {
		return
	}
	if entry.HasComponent(components.DamageEvent) {
		components.DamageEvent.Get(entry).Amount += amount
		return
	}
	donburi.Add(entry, components.DamageEvent, &components.DamageEventData{Amount: amount})
}

// QueueHeal queues healing for the entity. Pending heals of the same kind
// are merged.
func QueueHeal(entry *donburi.Entry, amount float64, external bool) {
	if !entry.HasComponent(components.Health) {
		return
	}
	if !entry.HasComponent(components.HealEvent) {
		donburi.Add(entry, components.HealEvent, &components.HealEventData{})
	}
	ev := components.HealEvent.Get(entry)
	if external {
		ev.External += amount
	} else {
		ev.Self += amount
	}
}

// UpdateCombat applies queued damage and heal events through TakeDamage
// and RecoverHealth.
func UpdateCombat(e *ecs.ECS) {
	var damaged []*donburi.Entry
	for entry := range components.DamageEvent.Iter(e.World) {
		damaged = append(damaged, entry)
	}
	for _, entry := range damaged {
		dmg := components.DamageEvent.Get(entry)
		if IsActive(entry) {
			TakeDamage(e, entry, dmg.Amount)
		}
		// Remove the damage event component so it is processed only once.
		donburi.Remove[components.DamageEventData](entry, components.DamageEvent)
	}

	var healed []*donburi.Entry
	for entry := range components.HealEvent.Iter(e.World) {
		healed = append(healed, entry)
	}
	for _, entry := range healed {
		heal := components.HealEvent.Get(entry)
		if IsActive(entry) {
			// External heals apply first.
			if heal.External != 0 {
				RecoverHealth(e, entry, heal.External, true)
			}
			if heal.Self != 0 {
				RecoverHealth(e, entry, heal.Self, false)
			}
		}
		donburi.Remove[components.HealEventData](entry, components.HealEvent)
	}
}

// UpdateDebugKeys handles the debug actions: damage or heal the targets in
// front of the player, and toggle the collision overlay.
func UpdateDebugKeys(e *ecs.ECS) {
	input := getOrCreateInput(e)

	if GetAction(input, cfg.ActionDebugOverlay).JustPressed {
		settings := GetOrCreateSettings(e)
		settings.Overlay = !settings.Overlay
		settings.Dirty = true
		log.Debug().Bool("overlay", settings.Overlay).Msg("overlay toggled")
	}

	damage := GetAction(input, cfg.ActionDebugDamage).JustPressed
	heal := GetAction(input, cfg.ActionDebugHeal).JustPressed
	if !damage && !heal {
		return
	}
	for _, target := range debugTargets(e) {
		if damage {
			QueueDamage(target, cfg.Input.DebugDamage)
		}
		if heal {
			QueueHeal(target, cfg.Input.DebugHeal, true)
		}
	}
}

// debugTargets returns the health entity the player is facing, or every
// active target when the use probe hits nothing with health.
func debugTargets(e *ecs.ECS) []*donburi.Entry {
	if playerEntry, ok := tags.Player.First(e.World); ok && IsActive(playerEntry) {
		player := components.PlayerController.Get(playerEntry)
		t := components.Transform.Get(playerEntry)
		dir := gamemath.FacingDirection(t.Rotation)
		if hit, ok := Raycast(e, t.Position, dir, player.Settings.UseRaycastLength, playerEntry); ok &&
			hit.Entry.HasComponent(components.Health) {
			return []*donburi.Entry{hit.Entry}
		}
	}

	var targets []*donburi.Entry
	tags.Target.Each(e.World, func(entry *donburi.Entry) {
		if IsActive(entry) {
			targets = append(targets, entry)
		}
	})
	return targets
}
