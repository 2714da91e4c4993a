package leveldata

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/automoto/groundwork/shared/gamemath"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/lafriks/go-tiled"
)

// Object group names recognised in arena maps.
const (
	GroupSolids      = "Solids"
	GroupPlayerSpawn = "PlayerSpawn"
	GroupTargets     = "Targets"
)

// Defaults for heights missing from object properties.
const (
	defaultSolidTop     = 1.0
	defaultTargetHeight = 1.0
	defaultSpawnHeight  = 1.0
)

// LoadArena parses a TMX file into an Arena. It takes an fs.FS so callers
// can pass embed.FS or os.DirFS.
func LoadArena(fsys fs.FS, tmxPath string) (*Arena, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}
	if levelMap.TileWidth <= 0 {
		return nil, fmt.Errorf("load TMX %s: tile width must be positive", tmxPath)
	}

	ppu := float64(levelMap.TileWidth)
	arena := &Arena{
		Name:          strings.TrimSuffix(filepath.Base(tmxPath), ".tmx"),
		Width:         float64(levelMap.Width*levelMap.TileWidth) / ppu,
		Depth:         float64(levelMap.Height*levelMap.TileHeight) / ppu,
		PixelsPerUnit: ppu,
	}

	for _, og := range levelMap.ObjectGroups {
		for _, o := range og.Objects {
			props := propertyMap(o.Properties)
			switch og.Name {
			case GroupSolids:
				bottom, err := floatProp(props, "bottom", 0)
				if err != nil {
					return nil, fmt.Errorf("%s: solid %q: %w", tmxPath, o.Name, err)
				}
				top, err := floatProp(props, "top", defaultSolidTop)
				if err != nil {
					return nil, fmt.Errorf("%s: solid %q: %w", tmxPath, o.Name, err)
				}
				arena.Solids = append(arena.Solids, Solid{
					Name: o.Name,
					Box:  footprintBox(o.X, o.Y, o.Width, o.Height, ppu, bottom, top),
				})
			case GroupPlayerSpawn:
				y, err := floatProp(props, "y", defaultSpawnHeight)
				if err != nil {
					return nil, fmt.Errorf("%s: spawn: %w", tmxPath, err)
				}
				index, _ := strconv.Atoi(props["spawnIndex"])
				arena.Spawns = append(arena.Spawns, SpawnPoint{
					X:     o.X / ppu,
					Y:     y,
					Z:     o.Y / ppu,
					Index: index,
				})
			case GroupTargets:
				bottom, err := floatProp(props, "bottom", 0)
				if err != nil {
					return nil, fmt.Errorf("%s: target %q: %w", tmxPath, o.Name, err)
				}
				height, err := floatProp(props, "height", defaultTargetHeight)
				if err != nil {
					return nil, fmt.Errorf("%s: target %q: %w", tmxPath, o.Name, err)
				}
				arena.Targets = append(arena.Targets, Target{
					Name:         o.Name,
					Box:          footprintBox(o.X, o.Y, o.Width, o.Height, ppu, bottom, bottom+height),
					Interactable: props["interactable"] == "true",
					Properties:   props,
				})
			}
		}
	}

	if len(arena.Spawns) == 0 {
		return nil, fmt.Errorf("%s: no player spawn points defined", tmxPath)
	}

	sort.Slice(arena.Spawns, func(i, j int) bool {
		return arena.Spawns[i].Index < arena.Spawns[j].Index
	})

	return arena, nil
}

// LoadAllArenas discovers all .tmx files in dir within fsys and loads them,
// returning the arenas sorted by name.
func LoadAllArenas(fsys fs.FS, dir string) ([]*Arena, error) {
	pattern := dir + "/*.tmx"
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("no .tmx files found in %s", dir)
	}

	sort.Strings(matches)
	arenas := make([]*Arena, 0, len(matches))
	for _, path := range matches {
		arena, err := LoadArena(fsys, path)
		if err != nil {
			return nil, err
		}
		arenas = append(arenas, arena)
	}
	return arenas, nil
}

// footprintBox converts a Tiled rectangle (pixels, top-down) plus a height
// range into a world box.
func footprintBox(x, y, w, h, ppu, bottom, top float64) gamemath.AABB {
	return gamemath.AABB{
		Min: mgl64.Vec3{x / ppu, bottom, y / ppu},
		Max: mgl64.Vec3{(x + w) / ppu, top, (y + h) / ppu},
	}
}

func propertyMap(props tiled.Properties) map[string]string {
	m := make(map[string]string, len(props))
	for _, p := range props {
		m[p.Name] = p.Value
	}
	return m
}

func floatProp(props map[string]string, name string, def float64) (float64, error) {
	raw, ok := props[name]
	if !ok || raw == "" {
		return def, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("property %s: %w", name, err)
	}
	return v, nil
}
