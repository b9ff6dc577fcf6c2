package systems

import (
	"fmt"
	"math"

	"github.com/automoto/piratecave/components"
	cfg "github.com/automoto/piratecave/config"
	"github.com/automoto/piratecave/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // freetype faces are font.Face, not text/v2 faces
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// DrawHUD renders the player's life bar in the top-left corner.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	playerEntry, ok := components.Player.First(ecs.World)
	if !ok {
		return
	}
	ctrl := components.Player.Get(playerEntry).Controller
	h := cfg.HUD

	// Background (dark gray)
	vector.FillRect(screen, h.Margin, h.Margin, h.BarWidth, h.BarHeight, cfg.DarkGray, false)

	// Current life (green), empty once life is gone
	ratio := float32(math.Max(0, ctrl.Life()/ctrl.MaxLife()))
	vector.FillRect(screen, h.Margin, h.Margin, h.BarWidth*ratio, h.BarHeight, cfg.BrightGreen, false)

	if !fonts.Loaded(fonts.Small) {
		return
	}
	label := fmt.Sprintf("LIFE %.0f", math.Max(0, ctrl.Life()))
	text.Draw(screen, label, fonts.Small.Get(), int(h.Margin+h.BarWidth+6), int(h.Margin+h.BarHeight-2), cfg.White)
}
