package systems

import (
	"github.com/automoto/groundwork/components"
	cfg "github.com/automoto/groundwork/config"
	"github.com/automoto/groundwork/shared/gamemath"
	"github.com/automoto/groundwork/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// DrawDebug outlines every collision footprint and the player's use and
// ground probes.
func DrawDebug(e *ecs.ECS, screen *ebiten.Image) {
	settings := GetOrCreateSettings(e)
	if !settings.Overlay {
		return
	}
	v, ok := newView(e, screen)
	if !ok {
		return
	}

	if space, ok := GetSpace(e); ok {
		ppu := space.PixelsPerUnit
		for _, obj := range space.Objects() {
			if obj.HasTags(tags.ResolvProbe) {
				continue
			}
			c := cfg.UI.DisabledColor
			switch {
			case obj.HasTags(tags.ResolvSolid):
				c = cfg.Grey
			case obj.HasTags(tags.ResolvPlayer):
				c = cfg.Blue
			case obj.HasTags(tags.ResolvTarget):
				c = cfg.Red
			}
			box := gamemath.AABB{}
			box.Min[0], box.Min[2] = obj.X/ppu, obj.Y/ppu
			box.Max[0], box.Max[2] = (obj.X+obj.W)/ppu, (obj.Y+obj.H)/ppu
			x, y, w, h := v.rect(box)
			vector.StrokeRect(screen, x, y, w, h, 1, c, false)
		}
	}

	playerEntry, ok := tags.Player.First(e.World)
	if !ok || !IsActive(playerEntry) {
		return
	}
	player := components.PlayerController.Get(playerEntry)
	t := components.Transform.Get(playerEntry)
	dir := gamemath.FacingDirection(t.Rotation)
	end := t.Position.Add(dir.Mul(player.Settings.UseRaycastLength))
	if hit, ok := Raycast(e, t.Position, dir, player.Settings.UseRaycastLength, playerEntry); ok {
		end = hit.Point
	}
	x0, y0 := v.point(t.Position)
	x1, y1 := v.point(end)
	vector.StrokeLine(screen, x0, y0, x1, y1, 1, cfg.UI.UseRayColor, false)

	gc := cfg.Red
	if IsGrounded(e, playerEntry) {
		gc = cfg.Green
	}
	vector.FillRect(screen, x0-2, y0-2, 4, 4, gc, false)
}
