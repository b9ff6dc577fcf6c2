package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/piratecave/components"
	cfg "github.com/automoto/piratecave/config"
	"github.com/automoto/piratecave/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// UpdateDebug toggles the hitbox overlay.
func UpdateDebug(ecs *ecs.ECS) {
	if GetAction(getOrCreateInput(ecs), cfg.ActionToggleHitboxes).JustPressed {
		cfg.Debug.DrawHitboxes = !cfg.Debug.DrawHitboxes
	}
}

func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.DrawHitboxes {
		return
	}

	spaceEntry, ok := components.Space.First(ecs.World)
	if ok {
		space := components.Space.Get(spaceEntry)
		for _, obj := range space.Objects() {
			// Determine color based on tags
			c := color.RGBA{0, 255, 255, 255} // Cyan default
			if obj.HasTags(tags.ResolvSolid) {
				c = color.RGBA{100, 100, 100, 255} // Grey
			} else if obj.HasTags(tags.ResolvPlayer) {
				c = color.RGBA{0, 0, 255, 255} // Blue
			} else if obj.HasTags(tags.ResolvHazard) {
				c = color.RGBA{255, 0, 0, 255} // Red
			} else if obj.HasTags(tags.ResolvLash) {
				c = color.RGBA{255, 160, 0, 255} // Orange
			}
			vector.StrokeRect(screen, float32(obj.X), float32(obj.Y), float32(obj.W), float32(obj.H), 1, c, false)
		}
	}

	// Foot sensor
	if playerEntry, ok := components.Player.First(ecs.World); ok {
		ctrl := components.Player.Get(playerEntry).Controller
		obj := components.Object.Get(playerEntry).Object
		r := float32(cfg.ToPixels(cfg.Player.GroundSenseRadius))
		c := color.RGBA{255, 0, 255, 255}
		if ctrl.Grounded() {
			c = color.RGBA{0, 255, 0, 255}
		}
		vector.StrokeCircle(screen, float32(obj.X+obj.W/2), float32(obj.Y+obj.H), r, 1, c, false)

		ebitenutil.DebugPrintAt(screen, fmt.Sprintf(
			"grounded=%v jumping=%v lash=%s life=%.0f facing=%+.0f",
			ctrl.Grounded(), ctrl.Jumping(), ctrl.LashState(), ctrl.Life(), ctrl.Facing(),
		), 4, cfg.C.Height-16)
	}
}
