package systems

import (
	"log"

	"github.com/automoto/piratecave/components"
	cfg "github.com/automoto/piratecave/config"
	"github.com/automoto/piratecave/player"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// walkThreshold is the smallest walking value that leaves the idle clip.
const walkThreshold = 0.01

// UpdateAnimations picks each animator's clip from its parameters, advances
// it one tick and delivers frame events to the owning controller.
func UpdateAnimations(ecs *ecs.ECS) {
	type pending struct {
		ctrl *player.Controller
		evt  player.AnimationEvent
	}
	var events []pending

	components.Animator.Each(ecs.World, func(e *donburi.Entry) {
		a := components.Animator.Get(e)
		a.SetClip(SelectClip(a))

		anim := a.CurrentAnimation
		if anim == nil || !anim.Update() {
			return
		}
		evt, ok := a.Events[a.CurrentClip][anim.Frame()]
		if !ok || !e.HasComponent(components.Player) {
			return
		}
		events = append(events, pending{ctrl: components.Player.Get(e).Controller, evt: evt})
	})

	// Delivered after the walk; death handling may add components
	for _, p := range events {
		if cfg.Debug.LogEvents {
			log.Printf("[animation] %s", p.evt)
		}
		p.ctrl.HandleAnimationEvent(p.evt)
	}
}

// SelectClip maps animator parameters to a clip. Death wins over the
// lash, the lash over the jump.
func SelectClip(a *components.AnimatorData) cfg.ClipID {
	walking := a.Float(player.ParamWalking)
	switch {
	case a.Bool(player.ParamDie):
		return cfg.ClipDie
	case a.Bool(player.ParamLash):
		return cfg.ClipLash
	case a.Bool(player.ParamJump):
		return cfg.ClipJump
	case walking > walkThreshold && a.Bool(player.ParamRunning):
		return cfg.ClipRun
	case walking > walkThreshold:
		return cfg.ClipWalk
	}
	return cfg.ClipIdle
}
