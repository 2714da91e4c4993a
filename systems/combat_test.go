package systems_test

import (
	"testing"

	"github.com/automoto/groundwork/components"
	cfg "github.com/automoto/groundwork/config"
	"github.com/automoto/groundwork/systems"
	"github.com/stretchr/testify/assert"
)

func TestQueuedDamageGoesThroughTakeDamage(t *testing.T) {
	e := newArena(t)
	crate := spawnTarget(e, "crate", box(6, 0, 9, 7, 2, 11), cfg.DefaultHealth())

	systems.QueueDamage(crate, 10)
	systems.QueueDamage(crate, 5)
	assert.Equal(t, 15.0, components.DamageEvent.Get(crate).Amount)

	systems.UpdateCombat(e)
	assert.Equal(t, 85.0, health(crate).CurrentHealth)
	assert.False(t, crate.HasComponent(components.DamageEvent))

	health(crate).CanTakeDamage = false
	systems.QueueDamage(crate, 10)
	systems.UpdateCombat(e)
	assert.Equal(t, 85.0, health(crate).CurrentHealth)
}

func TestQueuedHealUsesExternalRule(t *testing.T) {
	e := newArena(t)
	hc := cfg.DefaultHealth()
	hc.CurrentHealth = 90
	hc.CanSelfOverheal = true
	crate := spawnTarget(e, "crate", box(6, 0, 9, 7, 2, 11), hc)

	systems.QueueHeal(crate, 20, true)
	systems.UpdateCombat(e)
	assert.Equal(t, 100.0, health(crate).CurrentHealth)
	assert.False(t, crate.HasComponent(components.HealEvent))
}

func TestQueuedHealsOfBothKindsAreKept(t *testing.T) {
	e := newArena(t)
	hc := cfg.DefaultHealth()
	hc.CurrentHealth = 50
	crate := spawnTarget(e, "crate", box(6, 0, 9, 7, 2, 11), hc)

	systems.QueueHeal(crate, 10, true)
	systems.QueueHeal(crate, 5, false)
	ev := components.HealEvent.Get(crate)
	assert.Equal(t, 10.0, ev.External)
	assert.Equal(t, 5.0, ev.Self)

	systems.UpdateCombat(e)
	assert.Equal(t, 65.0, health(crate).CurrentHealth)
	assert.False(t, crate.HasComponent(components.HealEvent))
}

func TestQueuedHealKindsKeepTheirOverhealRules(t *testing.T) {
	e := newArena(t)
	hc := cfg.DefaultHealth()
	hc.CurrentHealth = 95
	hc.CanSelfOverheal = true
	crate := spawnTarget(e, "crate", box(6, 0, 9, 7, 2, 11), hc)

	systems.QueueHeal(crate, 20, true)
	systems.QueueHeal(crate, 7, false)
	systems.UpdateCombat(e)
	assert.Equal(t, 107.0, health(crate).CurrentHealth)
}

func TestQueueIgnoresEntitiesWithoutHealth(t *testing.T) {
	e := newArena(t)
	p := spawnPlayer(e, 10, 10)

	systems.QueueDamage(p, 10)
	systems.QueueHeal(p, 10, true)
	assert.False(t, p.HasComponent(components.DamageEvent))
	assert.False(t, p.HasComponent(components.HealEvent))
}

func TestHealthBarEasesTowardHealth(t *testing.T) {
	e := newArena(t)
	crate := spawnTarget(e, "crate", box(6, 0, 9, 7, 2, 11), cfg.DefaultHealth())
	bar := components.HealthBar.Get(crate)
	assert.Equal(t, float32(1), bar.Displayed)

	systems.TakeDamage(e, crate, 50)
	tick(e, 1)
	assert.Equal(t, float32(0.5), bar.Target)
	assert.Less(t, bar.Displayed, float32(1))
	assert.Greater(t, bar.Displayed, float32(0.5))

	tick(e, 60)
	assert.Equal(t, float32(0.5), bar.Displayed)
	assert.Nil(t, bar.Tween)
}
