package systems

import (
	"fmt"

	"github.com/automoto/groundwork/components"
	cfg "github.com/automoto/groundwork/config"
	"github.com/automoto/groundwork/fonts"
	"github.com/automoto/groundwork/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// DrawHUD renders the player's state and the health of whatever the
// player last used in the top-left corner.
func DrawHUD(e *ecs.ECS, screen *ebiten.Image) {
	if !fonts.Loaded(fonts.HUD) {
		return
	}
	face := fonts.HUD.Get()
	margin := cfg.UI.HealthBarMargin
	lineH := int(cfg.UI.HUDFontSize * 1.5)
	x, y := int(margin), int(margin)+lineH

	playerEntry, ok := tags.Player.First(e.World)
	if ok && IsActive(playerEntry) {
		player := components.PlayerController.Get(playerEntry)
		pos := components.Transform.Get(playerEntry).Position
		text.Draw(screen, fmt.Sprintf("pos %.1f %.1f %.1f", pos.X(), pos.Y(), pos.Z()), face, x, y, cfg.UI.HUDTextColor)
		y += lineH
		text.Draw(screen, playerFlags(player), face, x, y, cfg.UI.HUDTextColor)
		y += lineH

		if target, ok := UseTarget(playerEntry); ok {
			label := EntityName(target)
			if target.HasComponent(components.Interactable) {
				label = fmt.Sprintf("%s (used %d)", label, components.Interactable.Get(target).Uses)
			}
			text.Draw(screen, label, face, x, y, cfg.UI.HUDTextColor)
			y += lineH / 2

			if target.HasComponent(components.HealthBar) && target.HasComponent(components.Health) {
				bar := components.HealthBar.Get(target)
				h := components.Health.Get(target)
				w, bh := float32(cfg.UI.HealthBarWidth), float32(cfg.UI.HealthBarHeight)
				vector.FillRect(screen, float32(x), float32(y), w, bh, cfg.UI.HealthBarBgColor, false)
				vector.FillRect(screen, float32(x), float32(y), w*bar.Displayed, bh, cfg.UI.HealthBarFgColor, false)
				y += int(bh) + lineH
				text.Draw(screen, fmt.Sprintf("%.0f / %.0f", h.CurrentHealth, h.MaxHealth), face, x, y, cfg.UI.HUDTextColor)
			}
		}
	}

	if GetOrCreatePause(e).IsPaused {
		msg := "PAUSED"
		px := screen.Bounds().Dx()/2 - len(msg)*int(cfg.UI.HUDFontSize)/3
		text.Draw(screen, msg, face, px, screen.Bounds().Dy()/2, cfg.UI.HUDTextColor)
	}
}

func playerFlags(p *components.PlayerControllerData) string {
	s := "walking"
	switch {
	case p.IsCrouching:
		s = "crouching"
	case p.IsRunning:
		s = "running"
	}
	if p.IsJumping {
		s += ", jumping"
	}
	return s
}
