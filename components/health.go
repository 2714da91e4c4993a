package components

import (
	cfg "github.com/automoto/groundwork/config"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// HealthData is a damageable, recoverable health pool. The embedded config
// holds the options and CurrentHealth; the fields below are runtime state.
type HealthData struct {
	cfg.HealthConfig

	// Set when health reaches MinHealth, cleared when it rises above it
	ShouldDie bool
	// Set once the death action has been dispatched for this crossing
	Dead bool

	ShouldDisable bool
	DisableTime   float64

	NextRecoverTime float64
}

var Health = donburi.NewComponentType[HealthData]()

// HealthBarData eases the displayed health toward the real value.
type HealthBarData struct {
	Displayed float32
	Target    float32
	Tween     *gween.Tween
}

var HealthBar = donburi.NewComponentType[HealthBarData]()
