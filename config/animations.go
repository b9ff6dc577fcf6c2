package config

import "github.com/automoto/piratecave/player"

// ClipID names an animation clip.
type ClipID string

const (
	ClipIdle ClipID = "idle"
	ClipWalk ClipID = "walk"
	ClipRun  ClipID = "run"
	ClipJump ClipID = "jump"
	ClipLash ClipID = "lash"
	ClipDie  ClipID = "die"
)

type AnimationDef struct {
	First int
	Last  int
	Step  int
	Speed float32

	// Events fire when playback enters the keyed frame.
	Events           map[int]player.AnimationEvent
	FreezeOnComplete bool
}

// PlayerClips is the pirate's clip set. The jump clip is as long as a
// flat-ground jump, so its last frame stands in for landing.
var PlayerClips = map[ClipID]AnimationDef{
	ClipIdle: {First: 0, Last: 5, Step: 1, Speed: 8},
	ClipWalk: {First: 0, Last: 7, Step: 1, Speed: 6},
	ClipRun:  {First: 0, Last: 7, Step: 1, Speed: 3},
	ClipJump: {
		First: 0, Last: 7, Step: 1, Speed: 10,
		Events: map[int]player.AnimationEvent{7: player.EventLanded},
	},
	ClipLash: {
		First: 0, Last: 6, Step: 1, Speed: 3,
		Events: map[int]player.AnimationEvent{
			3: player.EventWeaponExtended,
			6: player.EventAttackFinished,
		},
	},
	ClipDie: {
		First: 0, Last: 8, Step: 1, Speed: 5,
		Events:           map[int]player.AnimationEvent{8: player.EventDeathAnimationComplete},
		FreezeOnComplete: true,
	},
}
