package systems

import (
	"image/color"

	"github.com/automoto/groundwork/components"
	cfg "github.com/automoto/groundwork/config"
	"github.com/automoto/groundwork/shared/gamemath"
	"github.com/automoto/groundwork/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// view maps world X/Z onto the screen for the top-down renderers.
// World +Z points up the screen.
type view struct {
	camX, camZ float64
	halfW      float64
	halfH      float64
	scale      float64
}

func newView(e *ecs.ECS, screen *ebiten.Image) (view, bool) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return view{}, false // No camera yet
	}
	camera := components.Camera.Get(cameraEntry)
	return view{
		camX:  camera.Position.X,
		camZ:  camera.Position.Y,
		halfW: float64(screen.Bounds().Dx()) / 2,
		halfH: float64(screen.Bounds().Dy()) / 2,
		scale: cfg.UI.ViewScale,
	}, true
}

func (v view) point(p mgl64.Vec3) (float32, float32) {
	x := (p.X()-v.camX)*v.scale + v.halfW
	y := v.halfH - (p.Z()-v.camZ)*v.scale
	return float32(x), float32(y)
}

// rect returns the screen rectangle covering box's XZ extent.
func (v view) rect(box gamemath.AABB) (x, y, w, h float32) {
	x0, y0 := v.point(mgl64.Vec3{box.Min.X(), 0, box.Max.Z()})
	x1, y1 := v.point(mgl64.Vec3{box.Max.X(), 0, box.Min.Z()})
	return x0, y0, x1 - x0, y1 - y0
}

// DrawArena renders solids, targets and the player from above. Taller
// geometry is drawn later and lighter.
func DrawArena(e *ecs.ECS, screen *ebiten.Image) {
	v, ok := newView(e, screen)
	if !ok {
		return
	}

	tags.Solid.Each(e.World, func(entry *donburi.Entry) {
		box := entityBounds(entry)
		x, y, w, h := v.rect(box)
		vector.FillRect(screen, x, y, w, h, shade(cfg.UI.SolidColor, box.Max.Y()), false)
	})

	tags.Target.Each(e.World, func(entry *donburi.Entry) {
		if entry.HasComponent(tags.Disabled) {
			return
		}
		box := entityBounds(entry)
		x, y, w, h := v.rect(box)
		vector.FillRect(screen, x, y, w, h, cfg.UI.TargetColor, false)
		drawTargetBar(screen, entry, x, y, w)
	})

	tags.Player.Each(e.World, func(entry *donburi.Entry) {
		if entry.HasComponent(tags.Disabled) {
			return
		}
		t := components.Transform.Get(entry)
		x, y, w, h := v.rect(entityBounds(entry))
		vector.FillRect(screen, x, y, w, h, cfg.UI.PlayerColor, false)

		// Facing indicator
		tip := t.Position.Add(gamemath.FacingDirection(t.Rotation))
		x0, y0 := v.point(t.Position)
		x1, y1 := v.point(tip)
		vector.StrokeLine(screen, x0, y0, x1, y1, 2, cfg.White, false)
	})
}

// drawTargetBar draws the eased health ratio above a target.
func drawTargetBar(screen *ebiten.Image, entry *donburi.Entry, x, y, w float32) {
	if !entry.HasComponent(components.HealthBar) {
		return
	}
	bar := components.HealthBar.Get(entry)
	const barH = 3
	vector.FillRect(screen, x, y-barH-2, w, barH, cfg.UI.HealthBarBgColor, false)
	vector.FillRect(screen, x, y-barH-2, w*bar.Displayed, barH, cfg.UI.HealthBarFgColor, false)
}

func entityBounds(entry *donburi.Entry) gamemath.AABB {
	return components.Collider.Get(entry).Bounds(components.Transform.Get(entry))
}

// shade lightens c with height so steps and walls read apart.
func shade(c color.RGBA, height float64) color.RGBA {
	lift := mgl64.Clamp(height*12, 0, 80)
	return color.RGBA{
		R: uint8(mgl64.Clamp(float64(c.R)+lift, 0, 255)),
		G: uint8(mgl64.Clamp(float64(c.G)+lift, 0, 255)),
		B: uint8(mgl64.Clamp(float64(c.B)+lift, 0, 255)),
		A: c.A,
	}
}
