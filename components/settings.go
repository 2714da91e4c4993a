package components

import "github.com/yohamta/donburi"

// SettingsData holds the player settings persisted across runs.
type SettingsData struct {
	Overlay bool `json:"overlay"`
	Dirty   bool `json:"-"`
}

var Settings = donburi.NewComponentType[SettingsData]()
