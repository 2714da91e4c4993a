package systems

import (
	"path/filepath"

	cfg "github.com/automoto/groundwork/config"
	"github.com/rs/zerolog/log"
	"github.com/yohamta/donburi/ecs"
)

// NewTunablesReloader returns a system that drains file change events and
// reloads path when it changes. Player settings go live at once; health and
// physics defaults apply to everything spawned afterwards and to the
// physics step.
func NewTunablesReloader(path string, events <-chan string) ecs.System {
	want := filepath.Clean(path)
	return func(e *ecs.ECS) {
		for {
			select {
			case changed := <-events:
				if filepath.Clean(changed) != want {
					continue
				}
				ReloadTunables(e, path)
			default:
				return
			}
		}
	}
}

// ReloadTunables loads path over the active configuration and applies it.
// A bad file is logged and the current values stay in place.
func ReloadTunables(e *ecs.ECS, path string) {
	t, err := cfg.LoadTunables(path, cfg.CurrentTunables())
	if err != nil {
		log.Warn().Err(err).Str("path", path).Msg("tunables reload failed")
		return
	}
	t.Apply()
	ApplyPlayerSettings(e, t.Player)
	log.Info().Str("path", path).Msg("tunables reloaded")
}
