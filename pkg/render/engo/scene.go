// pkg/render/engo/scene.go
package engo

import (
	"context"
	"image/color"

	"github.com/EngoEngine/ecs"
	"github.com/EngoEngine/engo"
	"github.com/EngoEngine/engo/common"

	"github.com/opd-ai/go-asteroids/pkg/engine"
	"github.com/opd-ai/go-asteroids/pkg/logging"
	"github.com/opd-ai/go-asteroids/pkg/render"
)

// SceneType is the engo scene name of the game
const SceneType = "AsteroidsScene"

// GameScene hosts one simulation inside an engo window
type GameScene struct {
	sim    *engine.Simulation
	logger *logging.Logger
	assets *AssetManager

	renderer *EngoRenderer
	hud      *HUDSystem
}

// NewGameScene creates a new game scene
func NewGameScene(sim *engine.Simulation, logger *logging.Logger) *GameScene {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	return &GameScene{
		sim:    sim,
		logger: logger,
		assets: NewAssetManager(),
	}
}

// Type returns the scene type (required by Engo)
func (scene *GameScene) Type() string {
	return SceneType
}

// Preload is called before the scene starts (required by Engo)
func (scene *GameScene) Preload() {
	if err := scene.assets.Preload(); err != nil {
		scene.logger.Error(context.Background(), "failed to preload font", err)
	}
}

// Setup is called when the scene starts (required by Engo)
func (scene *GameScene) Setup(u engo.Updater) {
	world, _ := u.(*ecs.World)
	common.SetBackground(color.Black)

	if err := scene.assets.LoadAssets(); err != nil {
		// Engo gives Setup no way to fail.
		panic("failed to load assets: " + err.Error())
	}

	SetupInputBindings()

	renderSystem := &common.RenderSystem{}
	world.AddSystem(renderSystem)

	scene.hud = NewHUDSystem(renderSystem, scene.assets.Font())
	scene.renderer = NewEngoRenderer(renderSystem, scene.assets, scene.hud, scene.sim.Space())

	world.AddSystem(NewInputSystem(scene.sim))
	world.AddSystem(NewSimulationSystem(scene.sim, scene.renderer, scene.logger))
	world.AddSystem(scene.hud)

	scene.logger.Info(context.Background(), "engo scene ready", "session_id", scene.sim.SessionID())
}

// Exit is called when the window closes
func (scene *GameScene) Exit() {
	scene.logger.Info(context.Background(), "engo scene closed",
		"score", scene.sim.Score(),
		"tick", scene.sim.Tick(),
	)
	engo.Exit()
}

// SimulationSystem advances the simulation by engo's frame time and draws
// the resulting snapshot.
type SimulationSystem struct {
	sim      *engine.Simulation
	renderer render.Renderer
	logger   *logging.Logger
}

// NewSimulationSystem creates a system driving sim
func NewSimulationSystem(sim *engine.Simulation, renderer render.Renderer, logger *logging.Logger) *SimulationSystem {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	return &SimulationSystem{sim: sim, renderer: renderer, logger: logger}
}

// Remove satisfies the ecs.System interface
func (s *SimulationSystem) Remove(ecs.BasicEntity) {}

// Update advances one frame
func (s *SimulationSystem) Update(dt float32) {
	s.step(float64(dt))
}

func (s *SimulationSystem) step(dt float64) {
	if err := s.sim.Advance(dt); err != nil {
		s.logger.Warn(context.Background(), "frame skipped", "error", err.Error())
		return
	}
	render.DrawFrame(s.renderer, s.sim.Snapshot())
}

// RunOptions returns engo window options sized to the simulated world
func RunOptions(sim *engine.Simulation, title string) engo.RunOptions {
	space := sim.Space()
	return engo.RunOptions{
		Title:  title,
		Width:  int(space.Width),
		Height: int(space.Height),
		VSync:  true,
	}
}
