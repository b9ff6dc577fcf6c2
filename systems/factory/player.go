package factory

import (
	"fmt"
	"log"

	"github.com/automoto/piratecave/archetypes"
	"github.com/automoto/piratecave/components"
	cfg "github.com/automoto/piratecave/config"
	"github.com/automoto/piratecave/player"
	"github.com/automoto/piratecave/tags"
	"github.com/solarlune/resolv"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// PlayerSettings maps the config tables onto controller settings.
func PlayerSettings() player.Settings {
	return player.Settings{
		Life:          cfg.Player.Life,
		MoveSpeed:     cfg.Player.MoveSpeed,
		RunMultiplier: cfg.Player.RunMultiplier,
		JumpImpulse:   cfg.Player.JumpImpulse,
		GroundRadius:  cfg.Player.GroundSenseRadius,
		GroundMask:    cfg.Player.GroundMask,
		Damage: player.DamageTable{
			HeavyMelee: cfg.Hazard.HeavyMeleeDamage,
			LightMelee: cfg.Hazard.LightMeleeDamage,
			Projectile: cfg.Hazard.ProjectileDamage,
		},
		RemovalDelay: cfg.Player.RemovalDelay,
	}
}

// CreatePlayer spawns the pirate with its feet centred on (x, y) in level
// pixels. The collision space must already exist.
func CreatePlayer(ecs *ecs.ECS, x, y float64) (*donburi.Entry, error) {
	spaceEntry, ok := components.Space.First(ecs.World)
	if !ok {
		return nil, fmt.Errorf("create player: no collision space")
	}
	space := components.Space.Get(spaceEntry)

	e := archetypes.Player.Spawn(ecs)

	w, h := cfg.ToPixels(cfg.Player.CollisionWidth), cfg.ToPixels(cfg.Player.CollisionHeight)
	obj := resolv.NewObject(x-w/2, y-h, w, h, "character", tags.ResolvPlayer)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = e
	components.Object.SetValue(e, components.ObjectData{Object: obj})

	components.Body.SetValue(e, components.BodyData{
		Mass:    cfg.Player.Mass,
		Gravity: cfg.ToPixels(cfg.Physics.Gravity),
	})
	body := components.Body.Get(e)

	components.Animator.Set(e, components.NewAnimator(cfg.PlayerClips))
	animator := components.Animator.Get(e)
	animator.SetClip(cfg.ClipIdle)

	lw, lh := cfg.ToPixels(cfg.Player.LashWidth), cfg.ToPixels(cfg.Player.LashHeight)
	lashObj := resolv.NewObject(obj.X+obj.W, obj.Y+h/2-lh/2, lw, lh, tags.ResolvLash)
	lashObj.Data = e
	components.LashHitbox.SetValue(e, components.LashHitboxData{Object: lashObj})
	hitbox := components.LashHitbox.Get(e)

	ctrl, err := player.New(player.Deps{
		Body:      body,
		Animator:  animator,
		Ground:    components.SpaceGroundQuery{Space: space},
		Feet:      components.FootAnchor{Object: obj},
		Hitbox:    hitbox,
		Defeat:    playerDefeated(ecs),
		Despawner: entryDespawner{entry: e},
	}, PlayerSettings())
	if err != nil {
		ecs.World.Remove(e.Entity())
		return nil, fmt.Errorf("create player: %w", err)
	}
	components.Player.SetValue(e, components.PlayerData{Controller: ctrl})

	space.Add(obj, lashObj)

	return e, nil
}

// playerDefeated raises the lose panel.
func playerDefeated(ecs *ecs.ECS) player.DefeatFunc {
	return func() {
		log.Printf("[player] defeated")
		if e, ok := components.GameOver.First(ecs.World); ok {
			components.GameOver.Get(e).Defeated = true
		}
	}
}

// entryDespawner starts the death countdown on an entity. UpdateDeaths
// removes it once the timer runs out.
type entryDespawner struct {
	entry *donburi.Entry
}

func (d entryDespawner) DespawnAfter(delay float64) {
	if !d.entry.Valid() || d.entry.HasComponent(components.Death) {
		return
	}
	if body := components.Body.Get(d.entry); body != nil {
		body.Frozen = true
	}
	donburi.Add(d.entry, components.Death, &components.DeathData{
		Timer: cfg.SecondsToFrames(delay),
		Fade:  gween.New(1, 0, float32(delay), ease.InQuad),
		Alpha: 1,
	})
	log.Printf("[death] removal in %.2fs", delay)
}
