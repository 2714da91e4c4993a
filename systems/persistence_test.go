package systems

import (
	"testing"

	cfg "github.com/automoto/groundwork/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func TestDecodeSettings(t *testing.T) {
	s, err := decodeSettings(nil)
	require.NoError(t, err)
	assert.Nil(t, s)

	s, err = decodeSettings([]byte(`{"overlay":true}`))
	require.NoError(t, err)
	require.NotNil(t, s)
	assert.True(t, s.Overlay)

	_, err = decodeSettings([]byte(`{"overlay":`))
	require.Error(t, err)
}

func TestSettingsRoundTripThroughSingleton(t *testing.T) {
	prev := cfg.Debug.Overlay
	t.Cleanup(func() { cfg.Debug.Overlay = prev })

	e := ecs.NewECS(donburi.NewWorld())
	ApplySavedSettings(e, nil)
	assert.Equal(t, prev, GetOrCreateSettings(e).Overlay)

	ApplySavedSettings(e, &SavedSettings{Overlay: true})
	assert.True(t, GetOrCreateSettings(e).Overlay)
	assert.True(t, cfg.Debug.Overlay)

	settings := GetOrCreateSettings(e)
	settings.Overlay = false
	settings.Dirty = true
	UpdatePersistence(e)
	assert.False(t, settings.Dirty)
	assert.False(t, cfg.Debug.Overlay)
}

func TestClampView(t *testing.T) {
	assert.Equal(t, 5.0, clampView(1, 5, 40))
	assert.Equal(t, 35.0, clampView(39, 5, 40))
	assert.Equal(t, 12.0, clampView(12, 5, 40))
	assert.Equal(t, 4.0, clampView(1, 5, 8), "small arenas are centred")
}
