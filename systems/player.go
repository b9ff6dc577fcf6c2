package systems

import (
	"github.com/automoto/piratecave/components"
	cfg "github.com/automoto/piratecave/config"
	"github.com/automoto/piratecave/player"
	"github.com/automoto/piratecave/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePlayer feeds this frame's input to every player controller.
// Must run AFTER UpdateInput and BEFORE UpdatePhysics.
func UpdatePlayer(ecs *ecs.ECS) {
	snapshot := PlayerInput(getOrCreateInput(ecs))

	// Collect first: a dying player gains a Death component mid-tick,
	// which moves it to another archetype.
	var players []*donburi.Entry
	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		players = append(players, e)
	})

	for _, e := range players {
		components.Player.Get(e).Controller.Tick(snapshot, cfg.DeltaTime())
	}
}

// PlayerInput turns the action buffers into a controller snapshot. Jump
// and attack are edges; run is held.
func PlayerInput(input *components.InputData) player.Input {
	return player.Input{
		Horizontal: input.Horizontal,
		Run:        GetAction(input, cfg.ActionRun).Pressed,
		Jump:       GetAction(input, cfg.ActionJump).JustPressed,
		Attack:     GetAction(input, cfg.ActionAttack).JustPressed,
	}
}

// controllerOf returns the controller behind a collision object, if the
// object belongs to a player.
func controllerOf(data interface{}) (*player.Controller, *donburi.Entry, bool) {
	e, ok := data.(*donburi.Entry)
	if !ok || e == nil || !e.Valid() || !e.HasComponent(components.Player) {
		return nil, nil, false
	}
	ctrl := components.Player.Get(e).Controller
	return ctrl, e, ctrl != nil
}
