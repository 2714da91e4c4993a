package main

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"time"

	"github.com/alecthomas/kong"
	"github.com/automoto/groundwork/assets"
	"github.com/automoto/groundwork/config"
	"github.com/automoto/groundwork/fonts"
	"github.com/automoto/groundwork/scenes"
	"github.com/automoto/groundwork/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var CLI struct {
	Debug    bool   `help:"Whether to enable debug logging."`
	Arena    string `help:"Arena to load: an embedded arena name or a path to a .tmx file." default:"${default_arena}"`
	Tunables string `help:"YAML file overriding the player, health and physics defaults." type:"path"`
	Watch    bool   `help:"Reload the tunables file when it changes."`
	TPS      int    `help:"Ticks per second." default:"60" name:"tps"`
}

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func writeError(err error) {
	fmt.Fprintf(os.Stderr, "%s\n", err)
	os.Exit(1)
}

func main() {
	consoleWriter := zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
	log.Logger = log.Output(consoleWriter)
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	kong.Parse(&CLI,
		kong.Name("groundwork"),
		kong.Description("a top-down sandbox for a character controller and health components"),
		kong.UsageOnError(),
		kong.Vars{"default_arena": assets.DefaultArena},
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
			Summary: true,
		}))

	if CLI.Debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
		log.Warn().Msg("debug logging enabled")
	}
	if CLI.TPS > 0 {
		config.C.TPS = CLI.TPS
	}

	if err := run(); err != nil {
		writeError(err)
	}
}

func run() error {
	opts := scenes.ArenaOptions{}

	if CLI.Tunables != "" {
		t, err := config.LoadTunables(CLI.Tunables, config.CurrentTunables())
		if err != nil {
			return err
		}
		t.Apply()
		log.Info().Str("path", CLI.Tunables).Msg("tunables loaded")

		if CLI.Watch {
			watcher, err := config.NewWatcher(filepath.Dir(CLI.Tunables))
			if err != nil {
				return fmt.Errorf("watch %s: %w", CLI.Tunables, err)
			}
			defer watcher.Close()
			go func() {
				for err := range watcher.Errors {
					log.Warn().Err(err).Msg("tunables watcher")
				}
			}()
			opts.TunablesPath = CLI.Tunables
			opts.TunablesEvents = watcher.Events
		}
	}

	arena, err := assets.LoadArena(CLI.Arena)
	if err != nil {
		return err
	}

	if err := fonts.LoadDefaults(config.UI.HUDFontSize, config.UI.DebugFontSize); err != nil {
		return err
	}

	// Initialize persistence and load saved settings
	if err := systems.InitPersistence(config.C.Title); err != nil {
		log.Warn().Err(err).Msg("could not initialize persistence")
	}
	saved, err := systems.LoadSettings()
	if err != nil {
		log.Warn().Err(err).Msg("could not load settings")
	}
	opts.Saved = saved

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetTPS(config.C.TPS)

	log.Info().Str("arena", arena.Name).Int("tps", config.C.TPS).Msg("starting")
	return ebiten.RunGame(&Game{scene: scenes.NewArenaScene(arena, opts)})
}
