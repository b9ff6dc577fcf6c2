package components

import (
	"github.com/automoto/piratecave/assets/animations"
	"github.com/automoto/piratecave/config"
	"github.com/automoto/piratecave/player"
	"github.com/yohamta/donburi"
)

// AnimatorData holds named animator parameters and the clip they select.
type AnimatorData struct {
	Floats map[string]float64
	Bools  map[string]bool

	CurrentAnimation *animations.Animation
	CurrentClip      config.ClipID
	Animations       map[config.ClipID]*animations.Animation
	Events           map[config.ClipID]map[int]player.AnimationEvent
}

// NewAnimator builds an animator with one playable clip per definition.
func NewAnimator(defs map[config.ClipID]config.AnimationDef) *AnimatorData {
	a := &AnimatorData{
		Floats:     map[string]float64{},
		Bools:      map[string]bool{},
		Animations: map[config.ClipID]*animations.Animation{},
		Events:     map[config.ClipID]map[int]player.AnimationEvent{},
	}
	for id, def := range defs {
		anim := animations.NewAnimation(def.First, def.Last, def.Step, def.Speed)
		anim.FreezeOnComplete = def.FreezeOnComplete
		a.Animations[id] = anim
		if len(def.Events) > 0 {
			a.Events[id] = def.Events
		}
	}
	return a
}

func (a *AnimatorData) SetFloat(name string, v float64) {
	a.Floats[name] = v
}

func (a *AnimatorData) SetBool(name string, v bool) {
	a.Bools[name] = v
}

func (a *AnimatorData) Float(name string) float64 {
	return a.Floats[name]
}

func (a *AnimatorData) Bool(name string) bool {
	return a.Bools[name]
}

// SetClip switches playback to a clip, restarting it. It reports whether
// the clip changed.
func (a *AnimatorData) SetClip(id config.ClipID) bool {
	if a.CurrentClip == id && a.CurrentAnimation != nil {
		return false
	}
	anim, ok := a.Animations[id]
	if !ok {
		a.CurrentAnimation = nil
		a.CurrentClip = id
		return true
	}
	a.CurrentAnimation = anim
	a.CurrentClip = id
	a.CurrentAnimation.Restart()
	return true
}

var Animator = donburi.NewComponentType[AnimatorData]()
