package systems_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/automoto/groundwork/components"
	cfg "github.com/automoto/groundwork/config"
	"github.com/automoto/groundwork/shared/gamemath"
	"github.com/automoto/groundwork/systems"
	"github.com/automoto/groundwork/systems/factory"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// newArena returns a world with a collision space and a 40x40 floor whose
// top is at y = 0.
func newArena(t *testing.T) *ecs.ECS {
	t.Helper()
	e := ecs.NewECS(donburi.NewWorld())
	factory.CreateSpace(e, 40, 40, 16, 8)
	factory.CreateSolid(e, "floor", box(0, -1, 0, 40, 0, 40))
	return e
}

func box(x0, y0, z0, x1, y1, z1 float64) gamemath.AABB {
	return gamemath.AABB{Min: mgl64.Vec3{x0, y0, z0}, Max: mgl64.Vec3{x1, y1, z1}}
}

// spawnPlayer places a default player standing on the floor at x/z.
func spawnPlayer(e *ecs.ECS, x, z float64) *donburi.Entry {
	return factory.CreatePlayer(e, mgl64.Vec3{x, 1, z}, cfg.DefaultPlayer())
}

func spawnTarget(e *ecs.ECS, name string, b gamemath.AABB, health cfg.HealthConfig) *donburi.Entry {
	return factory.CreateTarget(e, name, b, health, true)
}

// tick runs n full gameplay ticks.
func tick(e *ecs.ECS, n int) {
	for i := 0; i < n; i++ {
		for _, system := range systems.Gameplay() {
			system(e)
		}
	}
}

// captureLogs routes the global logger into a buffer for the rest of the
// test.
func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	buf := &bytes.Buffer{}
	prevLogger, prevLevel := log.Logger, zerolog.GlobalLevel()
	log.Logger = zerolog.New(buf)
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	t.Cleanup(func() {
		log.Logger = prevLogger
		zerolog.SetGlobalLevel(prevLevel)
	})
	return buf
}

func countMessages(buf *bytes.Buffer, msg string) int {
	return strings.Count(buf.String(), `"message":"`+msg+`"`)
}

func health(entry *donburi.Entry) *components.HealthData {
	return components.Health.Get(entry)
}
