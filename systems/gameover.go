package systems

import (
	"github.com/automoto/piratecave/components"
	cfg "github.com/automoto/piratecave/config"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
)

// SceneChanger swaps the running scene.
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// NewUpdateGameOver creates an UpdateGameOver system with scene transition capability.
// Once the player is defeated the lose panel fades in and Restart reloads the level.
func NewUpdateGameOver(sceneChanger SceneChanger, createPlatformerScene func() interface{}) ecs.System {
	return func(e *ecs.ECS) {
		gameOver := GetOrCreateGameOver(e)
		if !gameOver.Defeated {
			return
		}

		if gameOver.Fade == nil {
			gameOver.Fade = gween.New(0, 1, cfg.GameOver.FadeSeconds, ease.OutQuad)
		}
		gameOver.Alpha, _ = gameOver.Fade.Update(float32(cfg.DeltaTime()))

		input := getOrCreateInput(e)
		if GetAction(input, cfg.ActionRestart).JustPressed {
			sceneChanger.ChangeScene(createPlatformerScene())
		}
	}
}

// GetOrCreateGameOver returns the singleton lose panel state.
func GetOrCreateGameOver(e *ecs.ECS) *components.GameOverData {
	if _, ok := components.GameOver.First(e.World); !ok {
		e.World.Entry(e.World.Create(components.GameOver))
	}

	ent, _ := components.GameOver.First(e.World)
	return components.GameOver.Get(ent)
}
