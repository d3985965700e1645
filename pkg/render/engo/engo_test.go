// pkg/render/engo/engo_test.go
package engo

import (
	"image/color"
	"testing"

	"github.com/EngoEngine/engo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opd-ai/go-asteroids/pkg/config"
	"github.com/opd-ai/go-asteroids/pkg/engine"
	"github.com/opd-ai/go-asteroids/pkg/entity"
	"github.com/opd-ai/go-asteroids/pkg/physics"
	"github.com/opd-ai/go-asteroids/pkg/random"
	"github.com/opd-ai/go-asteroids/pkg/render"
)

const tolerance = 1e-4

func newSimulation(t *testing.T) *engine.Simulation {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.Runtime.Seed = 9
	generator, err := random.NewFromConfig(cfg)
	require.NoError(t, err)
	sim, err := engine.NewSimulation(cfg, generator)
	require.NoError(t, err)
	return sim
}

func TestWorldToScreen(t *testing.T) {
	world := physics.NewTorus(800, 600)

	p := worldToScreen(physics.Vector2D{X: 400, Y: 300}, world, 800, 600)
	assert.Equal(t, engo.Point{X: 400, Y: 300}, p)

	p = worldToScreen(physics.Vector2D{X: 400, Y: 300}, world, 1600, 300)
	assert.Equal(t, engo.Point{X: 800, Y: 150}, p)
}

func TestFanTriangles_Square(t *testing.T) {
	outline := []engo.Point{{X: 10, Y: 20}, {X: 30, Y: 20}, {X: 30, Y: 60}, {X: 10, Y: 60}}

	origin, width, height, points := fanTriangles(engo.Point{X: 20, Y: 40}, outline)

	assert.Equal(t, engo.Point{X: 10, Y: 20}, origin)
	assert.Equal(t, float32(20), width)
	assert.Equal(t, float32(40), height)

	c := engo.Point{X: 0.5, Y: 0.5}
	assert.Equal(t, []engo.Point{
		c, {X: 0, Y: 0}, {X: 1, Y: 0},
		c, {X: 1, Y: 0}, {X: 1, Y: 1},
		c, {X: 1, Y: 1}, {X: 0, Y: 1},
		c, {X: 0, Y: 1}, {X: 0, Y: 0},
	}, points)
}

func TestFanTriangles_Degenerate(t *testing.T) {
	_, _, _, points := fanTriangles(engo.Point{}, []engo.Point{{X: 1, Y: 1}, {X: 2, Y: 2}})
	assert.Nil(t, points)

	line := []engo.Point{{X: 1, Y: 1}, {X: 2, Y: 1}, {X: 3, Y: 1}}
	_, width, height, points := fanTriangles(engo.Point{X: 2, Y: 1}, line)
	assert.Equal(t, float32(2), width)
	assert.Equal(t, float32(1), height)
	assert.Len(t, points, 9)
}

func TestFanTriangles_PointsInUnitSquare(t *testing.T) {
	sim := newSimulation(t)
	for _, obstacle := range sim.ObstaclesSnapshot() {
		outline := make([]engo.Point, obstacle.Hull.Len())
		for i := range outline {
			outline[i] = worldToScreen(obstacle.Hull.Vertex(i), sim.Space(), 800, 800)
		}

		center := worldToScreen(obstacle.Position, sim.Space(), 800, 800)
		_, _, _, points := fanTriangles(center, outline)
		require.Len(t, points, 3*len(outline))
		for _, p := range points {
			assert.GreaterOrEqual(t, p.X, float32(0))
			assert.LessOrEqual(t, p.X, float32(1))
			assert.GreaterOrEqual(t, p.Y, float32(0))
			assert.LessOrEqual(t, p.Y, float32(1))
		}
	}
}

func TestSpriteOrigin(t *testing.T) {
	anchor := engo.Point{X: 100, Y: 100}
	pivot := engo.Point{X: 10, Y: 4}

	p := spriteOrigin(anchor, pivot, 0)
	assert.InDelta(t, 90, p.X, tolerance)
	assert.InDelta(t, 96, p.Y, tolerance)

	p = spriteOrigin(anchor, pivot, 90)
	assert.InDelta(t, 104, p.X, tolerance)
	assert.InDelta(t, 90, p.Y, tolerance)

	p = spriteOrigin(anchor, pivot, 180)
	assert.InDelta(t, 110, p.X, tolerance)
	assert.InDelta(t, 104, p.Y, tolerance)
}

func TestRasterizeHull_Craft(t *testing.T) {
	img, pivot := rasterizeHull(entity.ContactPoints(), 2, color.White)

	// Contact points span x in [-14, 27] and y in [-18, 18].
	assert.Equal(t, 83, img.Bounds().Dx())
	assert.Equal(t, 73, img.Bounds().Dy())
	assert.Equal(t, engo.Point{X: 28, Y: 36}, pivot)

	opaque := func(localX, localY float64) bool {
		px := int(float64(pivot.X) + localX*2)
		py := int(float64(pivot.Y) + localY*2)
		_, _, _, a := img.At(px, py).RGBA()
		return a > 0
	}
	assert.True(t, opaque(-8, 10), "wing")
	assert.True(t, opaque(-8, -10), "wing")
	assert.True(t, opaque(10, 0.6), "nose")
	assert.False(t, opaque(20, 10), "outside")
	assert.False(t, opaque(26, 1.2), "beyond the nose slope")
}

func TestRasterizeHull_Empty(t *testing.T) {
	img, pivot := rasterizeHull(physics.NewPolygon(), 2, color.White)
	assert.Equal(t, 1, img.Bounds().Dx())
	assert.Equal(t, engo.Point{}, pivot)
}

// propellerRecorder records propulsion commands
type propellerRecorder struct {
	calls []string
}

func (p *propellerRecorder) StartPropulsion() { p.calls = append(p.calls, "start") }
func (p *propellerRecorder) StopPropulsion()  { p.calls = append(p.calls, "stop") }

func TestInputSystem_HoldToThrust(t *testing.T) {
	recorder := &propellerRecorder{}
	is := NewInputSystem(recorder)

	for _, held := range []bool{false, true, true, true, false, false, true} {
		is.apply(held)
	}

	assert.Equal(t, []string{"start", "stop", "start"}, recorder.calls)
}

func TestInputSystem_DrivesSimulation(t *testing.T) {
	sim := newSimulation(t)
	is := NewInputSystem(sim)

	is.apply(true)
	assert.True(t, sim.CraftSnapshot().PropulsionOn)
	is.apply(false)
	assert.False(t, sim.CraftSnapshot().PropulsionOn)
}

// frameRecorder counts frames drawn through the render contract
type frameRecorder struct {
	frames int
	score  float64
}

func (f *frameRecorder) Clear()                               {}
func (f *frameRecorder) RenderObstacle(engine.ObstacleState) {}
func (f *frameRecorder) RenderCraft(engine.CraftState)       {}
func (f *frameRecorder) RenderScore(score float64)            { f.score = score }
func (f *frameRecorder) Present()                             { f.frames++ }

func TestSimulationSystem_Step(t *testing.T) {
	sim := newSimulation(t)
	frames := &frameRecorder{}
	system := NewSimulationSystem(sim, frames, nil)

	system.step(0.5)
	system.step(0.5)

	assert.Equal(t, 2, frames.frames)
	assert.InDelta(t, 10.0, frames.score, tolerance)
	assert.Equal(t, uint64(2), sim.Tick())
}

func TestHUDSystem_SetScore(t *testing.T) {
	hud := NewHUDSystem(nil, nil)
	assert.Equal(t, "0", hud.Text())

	hud.SetScore(41.7)
	assert.Equal(t, "42", hud.Text())

	// Update without a text entity is a no-op.
	hud.Update(0)
}

func TestGameScene_Type(t *testing.T) {
	scene := NewGameScene(newSimulation(t), nil)
	assert.Equal(t, SceneType, scene.Type())

	opts := RunOptions(newSimulation(t), "Asteroids")
	assert.Equal(t, 800, opts.Width)
	assert.Equal(t, 800, opts.Height)
	assert.Equal(t, "Asteroids", opts.Title)
}

var _ render.Renderer = (*frameRecorder)(nil)
