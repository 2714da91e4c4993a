package systems

import (
	"github.com/automoto/groundwork/components"
	cfg "github.com/automoto/groundwork/config"
	"github.com/rs/zerolog/log"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// AttachHealth gives entry a health pool built from hc and schedules the
// first passive recovery.
func AttachHealth(e *ecs.ECS, entry *donburi.Entry, hc cfg.HealthConfig) {
	if !entry.HasComponent(components.Health) {
		entry.AddComponent(components.Health)
	}
	components.Health.SetValue(entry, components.HealthData{
		HealthConfig:    hc,
		NextRecoverTime: Now(e) + hc.RecoveryInterval,
	})

	if entry.HasComponent(components.HealthBar) {
		ratio := healthRatio(components.Health.Get(entry))
		components.HealthBar.SetValue(entry, components.HealthBarData{Displayed: ratio, Target: ratio})
	}
}

// TakeDamage subtracts amount from the entity's health. A hit pushes the
// next passive recovery back by NoHitTime when NoHitBeforeHealing is set.
func TakeDamage(e *ecs.ECS, entry *donburi.Entry, amount float64) {
	h := components.Health.Get(entry)
	if !h.CanTakeDamage {
		log.Debug().Str("entity", EntityName(entry)).Msg("can't take damage")
		return
	}

	h.CurrentHealth -= amount
	if h.NoHitBeforeHealing {
		h.NextRecoverTime = Now(e) + h.NoHitTime + h.RecoveryInterval
	}
	log.Debug().
		Str("entity", EntityName(entry)).
		Float64("amount", amount).
		Float64("health", h.CurrentHealth).
		Msg("took damage")
}

// RecoverHealth adds amount to the entity's health. The result is capped at
// MaxHealth unless the overheal flag for this kind of heal is set. Heals
// from outside the entity are external.
func RecoverHealth(e *ecs.ECS, entry *donburi.Entry, amount float64, external bool) {
	h := components.Health.Get(entry)

	h.CurrentHealth += amount
	canOverheal := h.CanSelfOverheal
	if external {
		canOverheal = h.CanOverhealExternally
	}
	if !canOverheal && h.CurrentHealth > h.MaxHealth {
		h.CurrentHealth = h.MaxHealth
	}
	h.NextRecoverTime = Now(e) + h.RecoveryInterval

	log.Debug().
		Str("entity", EntityName(entry)).
		Float64("amount", amount).
		Bool("external", external).
		Float64("health", h.CurrentHealth).
		Msg("recovered health")
}

// UpdateHealth runs once per frame: fire a due delayed disable, latch death
// at or below MinHealth, and apply passive recovery.
func UpdateHealth(e *ecs.ECS) {
	now := Now(e)
	for _, entry := range activeHealthEntries(e) {
		h := components.Health.Get(entry)

		if h.ShouldDisable && h.DisableTime <= now {
			h.ShouldDisable = false
			Disable(e, entry)
			continue
		}

		if h.CurrentHealth <= h.MinHealth {
			if h.CanDie {
				h.ShouldDie = true
			}
		} else {
			// Back above the threshold: the next crossing dies again.
			h.ShouldDie = false
			h.Dead = false
		}

		if h.CanRecoverHealth && h.NextRecoverTime <= now {
			RecoverHealth(e, entry, h.RecoveryAmount, false)
		}
	}
}

// UpdateHealthDeaths runs once per fixed step and dispatches the death
// action for entities latched to die. Each threshold crossing dies once.
func UpdateHealthDeaths(e *ecs.ECS) {
	for _, entry := range activeHealthEntries(e) {
		h := components.Health.Get(entry)
		if !h.ShouldDie || !h.CanDie || h.Dead {
			continue
		}
		h.Dead = true
		Die(e, entry)
	}
}

// Die carries out the entity's DestroyOption.
func Die(e *ecs.ECS, entry *donburi.Entry) {
	h := components.Health.Get(entry)
	name := EntityName(entry)
	log.Debug().Str("entity", name).Stringer("option", h.DestroyOption).Msg("died")

	switch h.DestroyOption {
	case cfg.DestroyNone:
	case cfg.DestroyOnDeath:
		if !h.CanBeDestroyed {
			log.Warn().Str("entity", name).Msg("destroy on death requested but entity can't be destroyed")
			return
		}
		Destroy(e, entry)
	case cfg.DelayedDestroyOnDeath:
		if !h.CanBeDestroyed {
			log.Warn().Str("entity", name).Msg("delayed destroy on death requested but entity can't be destroyed")
			return
		}
		ScheduleDestroy(e, entry, Now(e)+h.DieDelay)
	case cfg.DisableOnDeath:
		Disable(e, entry)
	case cfg.DelayedDisableOnDeath:
		if !h.ShouldDisable {
			h.DisableTime = Now(e) + h.DieDelay
			h.ShouldDisable = true
		}
	default:
		log.Error().Str("entity", name).Stringer("option", h.DestroyOption).Msg("unknown destroy option")
	}
}

// activeHealthEntries collects the enabled health entities so systems can
// destroy or disable them while walking the list.
func activeHealthEntries(e *ecs.ECS) []*donburi.Entry {
	var entries []*donburi.Entry
	components.Health.Each(e.World, func(entry *donburi.Entry) {
		if IsActive(entry) {
			entries = append(entries, entry)
		}
	})
	return entries
}

func healthRatio(h *components.HealthData) float32 {
	span := h.MaxHealth - h.MinHealth
	if span <= 0 {
		return 0
	}
	r := (h.CurrentHealth - h.MinHealth) / span
	if r < 0 {
		r = 0
	}
	if r > 1 {
		r = 1
	}
	return float32(r)
}
