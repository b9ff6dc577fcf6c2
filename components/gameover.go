package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// GameOverData tracks the lose panel. It is shown once the player is
// defeated and fades in over GameOver.FadeSeconds.
type GameOverData struct {
	Defeated bool
	Fade     *gween.Tween
	Alpha    float32
}

// GameOver is the component type for the lose panel state
var GameOver = donburi.NewComponentType[GameOverData]()
