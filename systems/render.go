package systems

import (
	"image/color"

	"github.com/automoto/piratecave/components"
	cfg "github.com/automoto/piratecave/config"
	"github.com/automoto/piratecave/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	caveBackground = color.RGBA{R: 18, G: 16, B: 24, A: 255}
	hazardIdle     = color.RGBA{R: 120, G: 40, B: 40, A: 120}
	hazardArmed    = color.RGBA{R: 230, G: 50, B: 40, A: 220}
	emitterColor   = color.RGBA{R: 90, G: 90, B: 110, A: 255}
	bulletColor    = color.RGBA{R: 250, G: 230, B: 120, A: 255}
	lashColor      = color.RGBA{R: 220, G: 170, B: 90, A: 255}
)

// clipColors tints the pirate by the playing clip.
var clipColors = map[cfg.ClipID]color.RGBA{
	cfg.ClipIdle: cfg.LightBlue,
	cfg.ClipWalk: {R: 80, G: 160, B: 240, A: 255},
	cfg.ClipRun:  {R: 60, G: 130, B: 255, A: 255},
	cfg.ClipJump: {R: 140, G: 200, B: 255, A: 255},
	cfg.ClipLash: cfg.BrightOrange,
	cfg.ClipDie:  cfg.LightRed,
}

// DrawLevel fills the cave and draws every ground rectangle.
func DrawLevel(ecs *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(caveBackground)
	tags.Ground.Each(ecs.World, func(e *donburi.Entry) {
		fillObject(screen, components.Object.Get(e).Object, cfg.Rock)
	})
}

// DrawHazards draws slash zones, bright while armed.
func DrawHazards(ecs *ecs.ECS, screen *ebiten.Image) {
	tags.Hazard.Each(ecs.World, func(e *donburi.Entry) {
		c := hazardIdle
		if components.Hazard.Get(e).Active {
			c = hazardArmed
		}
		fillObject(screen, components.Object.Get(e).Object, c)
	})
}

// DrawEmitters draws cannons with a health pip per remaining hit.
func DrawEmitters(ecs *ecs.ECS, screen *ebiten.Image) {
	tags.Emitter.Each(ecs.World, func(e *donburi.Entry) {
		obj := components.Object.Get(e).Object
		fillObject(screen, obj, emitterColor)
		hp := components.Health.Get(e)
		for i := 0; i < hp.Current; i++ {
			vector.FillRect(screen, float32(obj.X)+2+float32(i)*6, float32(obj.Y)-6, 4, 4, cfg.BrightGreen, false)
		}
	})
}

// DrawProjectiles draws bullets.
func DrawProjectiles(ecs *ecs.ECS, screen *ebiten.Image) {
	tags.Projectile.Each(ecs.World, func(e *donburi.Entry) {
		fillObject(screen, components.Object.Get(e).Object, bulletColor)
	})
}

// DrawPlayer draws the pirate tinted by clip, an eye on the facing side
// and the lash while it is out.
func DrawPlayer(ecs *ecs.ECS, screen *ebiten.Image) {
	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		obj := components.Object.Get(e).Object
		anim := components.Animator.Get(e)
		ctrl := components.Player.Get(e).Controller
		alpha := deathAlpha(e)

		c, ok := clipColors[anim.CurrentClip]
		if !ok {
			c = cfg.White
		}
		fillObject(screen, obj, fade(c, alpha))

		eyeX := obj.X + obj.W - 5
		if ctrl.Facing() < 0 {
			eyeX = obj.X + 2
		}
		vector.FillRect(screen, float32(eyeX), float32(obj.Y+6), 3, 3, fade(cfg.DarkGray, alpha), false)

		hb := components.LashHitbox.Get(e)
		switch {
		case hb.Enabled:
			fillObject(screen, hb.Object, fade(lashColor, alpha))
		case anim.CurrentClip == cfg.ClipLash && anim.CurrentAnimation != nil:
			// Wind-up: the lash grows towards full reach
			reach := float32(hb.Object.W * anim.CurrentAnimation.Progress())
			x := float32(hb.Object.X)
			if ctrl.Facing() < 0 {
				x = float32(hb.Object.X+hb.Object.W) - reach
			}
			vector.FillRect(screen, x, float32(hb.Object.Y+hb.Object.H/2-1), reach, 2, fade(lashColor, alpha), false)
		}
	})
}

func fillObject(screen *ebiten.Image, obj *resolv.Object, c color.Color) {
	vector.FillRect(screen, float32(obj.X), float32(obj.Y), float32(obj.W), float32(obj.H), c, false)
}

// fade scales a colour by alpha, premultiplied as ebiten expects.
func fade(c color.RGBA, alpha float32) color.RGBA {
	if alpha >= 1 {
		return c
	}
	if alpha < 0 {
		alpha = 0
	}
	return color.RGBA{
		R: uint8(float32(c.R) * alpha),
		G: uint8(float32(c.G) * alpha),
		B: uint8(float32(c.B) * alpha),
		A: uint8(float32(c.A) * alpha),
	}
}
