package assets

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/automoto/groundwork/shared/leveldata"
)

const arenaDir = "arenas"

var (
	//go:embed all:arenas
	assetFS embed.FS
)

// LoadArenas loads every embedded arena, sorted by name.
func LoadArenas() ([]*leveldata.Arena, error) {
	return leveldata.LoadAllArenas(assetFS, arenaDir)
}

// LoadArena loads an arena by name from the embedded set, or from disk when
// name is a path to a .tmx file.
func LoadArena(name string) (*leveldata.Arena, error) {
	if filepath.Ext(name) == ".tmx" {
		if _, err := os.Stat(name); err == nil {
			return leveldata.LoadArena(os.DirFS(filepath.Dir(name)), filepath.Base(name))
		}
	}

	path := filepath.ToSlash(filepath.Join(arenaDir, name+".tmx"))
	if _, err := fs.Stat(assetFS, path); err != nil {
		return nil, fmt.Errorf("arena %q not found: %w", name, err)
	}
	return leveldata.LoadArena(assetFS, path)
}

// MustLoadArena is LoadArena for scene setup, where a missing arena is fatal.
func MustLoadArena(name string) *leveldata.Arena {
	arena, err := LoadArena(name)
	if err != nil {
		panic(fmt.Sprintf("Failed to load arena %s: %v", name, err))
	}
	return arena
}

// DefaultArena is the arena loaded when none is requested.
const DefaultArena = "proving_ground"
