package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Tunables is the on-disk override file for the gameplay defaults.
// Sections or fields missing from the file keep their current values.
type Tunables struct {
	Player  PlayerConfig  `yaml:"player"`
	Health  HealthConfig  `yaml:"health"`
	Physics PhysicsConfig `yaml:"physics"`
}

// CurrentTunables snapshots the active gameplay configuration.
func CurrentTunables() Tunables {
	return Tunables{
		Player:  Player,
		Health:  Health,
		Physics: Physics,
	}
}

// ParseTunables decodes YAML over base and validates the result.
func ParseTunables(data []byte, base Tunables) (Tunables, error) {
	t := base
	if err := yaml.Unmarshal(data, &t); err != nil {
		return base, fmt.Errorf("tunables: unmarshal: %w", err)
	}
	if err := t.Validate(); err != nil {
		return base, err
	}
	return t, nil
}

// LoadTunables reads path and decodes it over base.
func LoadTunables(path string, base Tunables) (Tunables, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return base, fmt.Errorf("tunables: load %s: %w", path, err)
	}
	t, err := ParseTunables(data, base)
	if err != nil {
		return base, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

// Validate rejects values the controllers cannot work with.
func (t Tunables) Validate() error {
	if t.Player.CrouchScale <= 0 {
		return fmt.Errorf("tunables: player.crouch_scale must be positive, got %v", t.Player.CrouchScale)
	}
	if t.Player.Mass <= 0 {
		return fmt.Errorf("tunables: player.mass must be positive, got %v", t.Player.Mass)
	}
	if t.Health.MaxHealth < t.Health.MinHealth {
		return fmt.Errorf("tunables: health.max_health %v is below min_health %v", t.Health.MaxHealth, t.Health.MinHealth)
	}
	if t.Physics.PixelsPerUnit <= 0 || t.Physics.CellSize <= 0 {
		return fmt.Errorf("tunables: physics.pixels_per_unit and physics.cell_size must be positive")
	}
	return nil
}

// Apply installs t as the active gameplay configuration.
func (t Tunables) Apply() {
	Player = t.Player
	Health = t.Health
	Physics = t.Physics
}
