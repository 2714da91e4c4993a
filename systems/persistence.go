package systems

import (
	"encoding/json"
	"fmt"

	"github.com/automoto/groundwork/components"
	cfg "github.com/automoto/groundwork/config"
	"github.com/quasilyte/gdata"
	"github.com/rs/zerolog/log"
	"github.com/yohamta/donburi/ecs"
)

const settingsKey = "settings"

// SavedSettings represents the settings data stored on disk
type SavedSettings struct {
	Overlay bool `json:"overlay"`
}

var gdataManager *gdata.Manager

// InitPersistence initializes the gdata manager for settings storage
func InitPersistence(appName string) error {
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		return fmt.Errorf("persistence: open: %w", err)
	}
	gdataManager = m
	return nil
}

// LoadSettings loads settings from disk. It returns nil when persistence
// is unavailable or nothing has been saved yet.
func LoadSettings() (*SavedSettings, error) {
	if gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem(settingsKey)
	if err != nil {
		return nil, fmt.Errorf("persistence: load settings: %w", err)
	}
	return decodeSettings(data)
}

func decodeSettings(data []byte) (*SavedSettings, error) {
	if len(data) == 0 {
		return nil, nil
	}
	var settings SavedSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("persistence: parse settings: %w", err)
	}
	return &settings, nil
}

// SaveSettings saves settings to disk
func SaveSettings(s *SavedSettings) error {
	if gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("persistence: encode settings: %w", err)
	}
	if err := gdataManager.SaveItem(settingsKey, data); err != nil {
		return fmt.Errorf("persistence: save settings: %w", err)
	}
	return nil
}

// ApplySavedSettings copies loaded settings into the Settings singleton.
func ApplySavedSettings(e *ecs.ECS, saved *SavedSettings) {
	if saved == nil {
		return
	}
	settings := GetOrCreateSettings(e)
	settings.Overlay = saved.Overlay
	cfg.Debug.Overlay = saved.Overlay
}

// UpdatePersistence writes the settings back whenever they change.
func UpdatePersistence(e *ecs.ECS) {
	settings := GetOrCreateSettings(e)
	if !settings.Dirty {
		return
	}
	settings.Dirty = false
	cfg.Debug.Overlay = settings.Overlay
	if err := SaveSettings(&SavedSettings{Overlay: settings.Overlay}); err != nil {
		log.Warn().Err(err).Msg("could not save settings")
	}
}

// GetOrCreateSettings returns the singleton Settings component, creating
// it from the current config if needed.
func GetOrCreateSettings(e *ecs.ECS) *components.SettingsData {
	entry, ok := components.Settings.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Settings))
		components.Settings.SetValue(entry, components.SettingsData{
			Overlay: cfg.Debug.Overlay,
		})
	}
	return components.Settings.Get(entry)
}
