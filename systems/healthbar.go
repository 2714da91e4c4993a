package systems

import (
	"github.com/automoto/groundwork/components"
	cfg "github.com/automoto/groundwork/config"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateHealthBars eases each displayed health ratio toward the real one.
func UpdateHealthBars(e *ecs.ECS) {
	dt := float32(DeltaTime(e))
	components.HealthBar.Each(e.World, func(entry *donburi.Entry) {
		if !entry.HasComponent(components.Health) {
			return
		}
		bar := components.HealthBar.Get(entry)
		target := healthRatio(components.Health.Get(entry))

		if target != bar.Target {
			bar.Target = target
			bar.Tween = gween.New(bar.Displayed, target, cfg.UI.HealthBarEaseSeconds, ease.OutQuad)
		}
		if bar.Tween == nil {
			return
		}
		value, done := bar.Tween.Update(dt)
		bar.Displayed = value
		if done {
			bar.Displayed = bar.Target
			bar.Tween = nil
		}
	})
}
