package scenes

import (
	"image/color"
	"sync"

	cfg "github.com/automoto/groundwork/config"
	"github.com/automoto/groundwork/shared/leveldata"
	"github.com/automoto/groundwork/systems"
	"github.com/automoto/groundwork/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// ArenaOptions configures an arena scene.
type ArenaOptions struct {
	// TunablesPath is reloaded whenever its name arrives on TunablesEvents.
	TunablesPath   string
	TunablesEvents <-chan string

	Saved *systems.SavedSettings
}

type ArenaScene struct {
	ecs   *ecs.ECS
	arena *leveldata.Arena
	opts  ArenaOptions
	once  sync.Once
}

func NewArenaScene(arena *leveldata.Arena, opts ArenaOptions) *ArenaScene {
	return &ArenaScene{arena: arena, opts: opts}
}

func (as *ArenaScene) Update() {
	as.once.Do(as.configure)
	as.ecs.Update()
}

func (as *ArenaScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if as.ecs == nil {
		return
	}
	as.ecs.Draw(screen)
}

func (as *ArenaScene) configure() {
	ecs := ecs.NewECS(donburi.NewWorld())

	// Systems that always run
	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdatePause)
	ecs.AddSystem(systems.UpdateDebugKeys)
	if as.opts.TunablesEvents != nil {
		ecs.AddSystem(systems.NewTunablesReloader(as.opts.TunablesPath, as.opts.TunablesEvents))
	}

	// Game systems wrapped with the pause check
	for _, system := range systems.Gameplay() {
		ecs.AddSystem(systems.WithGameplayChecks(system))
	}

	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateCamera))
	ecs.AddSystem(systems.UpdatePersistence)

	// Add renderers
	ecs.AddRenderer(cfg.Default, systems.DrawArena)
	ecs.AddRenderer(cfg.Default, systems.DrawDebug)
	ecs.AddRenderer(cfg.HUD, systems.DrawHUD)

	as.ecs = ecs

	if _, err := factory.CreateArena(as.ecs, as.arena); err != nil {
		panic("failed to build arena: " + err.Error())
	}
	systems.ApplySavedSettings(as.ecs, as.opts.Saved)
}
