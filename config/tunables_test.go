package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultTunables() Tunables {
	return Tunables{
		Player:  DefaultPlayer(),
		Health:  DefaultHealth(),
		Physics: DefaultPhysics(),
	}
}

func TestParseTunablesOverlaysDefaults(t *testing.T) {
	data := []byte(`
player:
  walk_speed: 12
  jump_force: [0, 6, 0]
  snap_to_new_direction: true
health:
  max_health: 250
  destroy_option: delayed_disable
`)
	got, err := ParseTunables(data, defaultTunables())
	require.NoError(t, err)

	assert.Equal(t, 12.0, got.Player.WalkSpeed)
	assert.Equal(t, mgl64.Vec3{0, 6, 0}, got.Player.JumpForce)
	assert.True(t, got.Player.SnapToNewDirection)
	assert.Equal(t, 250.0, got.Health.MaxHealth)
	assert.Equal(t, DelayedDisableOnDeath, got.Health.DestroyOption)

	// untouched fields keep their defaults
	assert.Equal(t, 120.0, got.Player.RunSpeed)
	assert.Equal(t, 0.45, got.Player.CrouchScale)
	assert.Equal(t, 5.0, got.Health.DieDelay)
	assert.Equal(t, -9.81, got.Physics.Gravity)
}

func TestParseTunablesRejectsBadValues(t *testing.T) {
	base := defaultTunables()

	_, err := ParseTunables([]byte("player:\n  crouch_scale: 0\n"), base)
	require.Error(t, err)

	_, err = ParseTunables([]byte("health:\n  max_health: -1\n"), base)
	require.Error(t, err)

	_, err = ParseTunables([]byte("health:\n  destroy_option: explode\n"), base)
	require.Error(t, err)

	got, err := ParseTunables([]byte("player: [1, 2"), base)
	require.Error(t, err)
	assert.Equal(t, base, got)
}

func TestLoadTunables(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tunables.yaml")
	require.NoError(t, os.WriteFile(path, []byte("physics:\n  gravity: -20\n"), 0644))

	got, err := LoadTunables(path, defaultTunables())
	require.NoError(t, err)
	assert.Equal(t, -20.0, got.Physics.Gravity)

	_, err = LoadTunables(filepath.Join(dir, "missing.yaml"), defaultTunables())
	require.Error(t, err)
}

func TestDestroyOptionText(t *testing.T) {
	for _, name := range []string{"none", "destroy", "delayed_destroy", "disable", "delayed_disable"} {
		opt, err := ParseDestroyOption(name)
		require.NoError(t, err, name)
		assert.Equal(t, name, opt.String())
	}

	_, err := ParseDestroyOption("vanish")
	require.Error(t, err)
	assert.Equal(t, "DestroyOption(42)", DestroyOption(42).String())
}

func TestIsTunablesFile(t *testing.T) {
	assert.True(t, IsTunablesFile("a/b/tunables.yaml"))
	assert.True(t, IsTunablesFile("X.YML"))
	assert.False(t, IsTunablesFile("arena.tmx"))
}

func TestHealthWithOverrides(t *testing.T) {
	base := DefaultHealth()

	got, err := base.WithOverrides(map[string]string{
		"max_health":         "250",
		"current_health":     "12.5",
		"destroy_option":     "delayed_destroy",
		"can_recover_health": "true",
		"height":             "3",
	})
	require.NoError(t, err)
	assert.Equal(t, 250.0, got.MaxHealth)
	assert.Equal(t, 12.5, got.CurrentHealth)
	assert.Equal(t, DelayedDestroyOnDeath, got.DestroyOption)
	assert.True(t, got.CanRecoverHealth)
	assert.Equal(t, base.DieDelay, got.DieDelay)

	same, err := base.WithOverrides(nil)
	require.NoError(t, err)
	assert.Equal(t, base, same)

	_, err = base.WithOverrides(map[string]string{"destroy_option": "explode"})
	require.Error(t, err)

	_, err = base.WithOverrides(map[string]string{"max_health": "-5"})
	require.Error(t, err)
}
