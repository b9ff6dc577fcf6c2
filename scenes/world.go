package scenes

import (
	"image/color"
	"log"
	"sync"

	"github.com/automoto/piratecave/components"
	cfg "github.com/automoto/piratecave/config"
	factory2 "github.com/automoto/piratecave/systems/factory"
	"github.com/automoto/piratecave/ui"

	"github.com/automoto/piratecave/archetypes"
	"github.com/automoto/piratecave/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SceneChanger swaps the scene the game runs.
type SceneChanger interface {
	ChangeScene(scene interface{})
}

type PlatformerScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	losePanel    *ui.LosePanel
	once         sync.Once
}

// NewPlatformerScene creates the cave scene; the level loads on first update.
func NewPlatformerScene(sc SceneChanger) *PlatformerScene {
	return &PlatformerScene{sceneChanger: sc}
}

func (ps *PlatformerScene) Update() {
	ps.once.Do(ps.configure)
	ps.ecs.Update()

	if ps.defeated() {
		ps.losePanel.Update()
	}
}

func (ps *PlatformerScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ps.ecs == nil {
		return
	}
	ps.ecs.Draw(screen)
}

func (ps *PlatformerScene) defeated() bool {
	e, ok := components.GameOver.First(ps.ecs.World)
	return ok && components.GameOver.Get(e).Defeated
}

func (ps *PlatformerScene) restart() interface{} {
	return NewPlatformerScene(ps.sceneChanger)
}

func (ps *PlatformerScene) configure() {
	ecs := ecs.NewECS(donburi.NewWorld())

	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdateDebug)
	ecs.AddSystem(systems.UpdatePlayer)
	ecs.AddSystem(systems.UpdateEmitters)
	ecs.AddSystem(systems.UpdatePhysics)
	ecs.AddSystem(systems.UpdateProjectiles)
	ecs.AddSystem(systems.UpdateHazards)
	ecs.AddSystem(systems.UpdateAnimations)
	ecs.AddSystem(systems.UpdateLash)
	ecs.AddSystem(systems.UpdateDeaths)
	ecs.AddSystem(systems.NewUpdateGameOver(ps.sceneChanger, ps.restart))

	// Add renderers
	ecs.AddRenderer(cfg.Default, systems.DrawLevel)
	ecs.AddRenderer(cfg.Default, systems.DrawHazards)
	ecs.AddRenderer(cfg.Default, systems.DrawEmitters)
	ecs.AddRenderer(cfg.Default, systems.DrawProjectiles)
	ecs.AddRenderer(cfg.Default, systems.DrawPlayer)
	ecs.AddRenderer(cfg.Default, systems.DrawHUD)
	ecs.AddRenderer(cfg.Default, systems.DrawDebug)
	ecs.AddRenderer(cfg.Default, ps.drawLosePanel)

	ps.ecs = ecs

	archetypes.Input.Spawn(ps.ecs)
	archetypes.GameOver.Spawn(ps.ecs)

	panel, err := ui.NewLosePanel(func() {
		ps.sceneChanger.ChangeScene(ps.restart())
	})
	if err != nil {
		log.Fatalf("[ui] lose panel: %v", err)
	}
	ps.losePanel = panel

	level, err := factory2.CreateLevel(ps.ecs, cfg.Debug.Level)
	if err != nil {
		log.Fatalf("[level] %v", err)
	}
	levelData := components.Level.Get(level)

	if _, err := factory2.PopulateLevel(ps.ecs, levelData.CurrentLevel); err != nil {
		log.Fatalf("[level] %v", err)
	}
	log.Printf("[level] loaded %s (%dx%d)", levelData.Name, levelData.CurrentLevel.Width, levelData.CurrentLevel.Height)
}

func (ps *PlatformerScene) drawLosePanel(e *ecs.ECS, screen *ebiten.Image) {
	gameOver := systems.GetOrCreateGameOver(e)
	if !gameOver.Defeated {
		return
	}
	ps.losePanel.Draw(screen, gameOver.Alpha)
}
