package random

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opd-ai/go-asteroids/pkg/config"
	"github.com/opd-ai/go-asteroids/pkg/physics"
)

const epsilon = 1e-9

var space = physics.NewTorus(800, 600)

func defaultParams() ObstacleParams {
	return ParamsFromConfig(config.DefaultConfig())
}

func newGenerator(t *testing.T, seed uint64) *Generator {
	t.Helper()
	g, err := NewGenerator(seed, space, defaultParams())
	require.NoError(t, err)
	return g
}

func TestGenerator_Deterministic(t *testing.T) {
	a := newGenerator(t, 42)
	b := newGenerator(t, 42)

	for i := 0; i < 20; i++ {
		assert.Equal(t, a.Position(), b.Position())
		assert.Equal(t, a.Direction(), b.Direction())

		oa, err := a.Obstacle(2)
		require.NoError(t, err)
		ob, err := b.Obstacle(2)
		require.NoError(t, err)
		assert.Equal(t, oa.Position, ob.Position)
		assert.Equal(t, oa.Velocity, ob.Velocity)
		assert.Equal(t, oa.Shape.Vertices(), ob.Shape.Vertices())
	}
}

func TestGenerator_DifferentSeedsDiverge(t *testing.T) {
	a := newGenerator(t, 1)
	b := newGenerator(t, 2)
	assert.NotEqual(t, a.Position(), b.Position())
}

func TestGenerator_PositionInsideWorld(t *testing.T) {
	g := newGenerator(t, 7)
	for i := 0; i < 1000; i++ {
		p := g.Position()
		assert.GreaterOrEqual(t, p.X, 0.0)
		assert.Less(t, p.X, space.Width)
		assert.GreaterOrEqual(t, p.Y, 0.0)
		assert.Less(t, p.Y, space.Height)
	}
}

func TestGenerator_DirectionIsUnit(t *testing.T) {
	g := newGenerator(t, 7)
	for i := 0; i < 1000; i++ {
		assert.InDelta(t, 1.0, g.Direction().Length(), epsilon)
	}
}

func TestGenerator_Obstacle(t *testing.T) {
	params := defaultParams()
	g := newGenerator(t, 99)

	for _, size := range []float64{0.5, 1, 2, 3} {
		obstacle, err := g.Obstacle(size)
		require.NoError(t, err)

		assert.Equal(t, size, obstacle.Size)
		assert.Equal(t, space, obstacle.Space)
		assert.Zero(t, obstacle.GetID())

		speed := obstacle.Velocity.Length()
		nominal := params.BaseSpeed / size
		assert.GreaterOrEqual(t, speed, nominal*(1-params.SpeedJitter)-epsilon)
		assert.LessOrEqual(t, speed, nominal*(1+params.SpeedJitter)+epsilon)

		n := obstacle.Shape.Len()
		assert.GreaterOrEqual(t, n, params.MinVertices)
		assert.LessOrEqual(t, n, params.MaxVertices)

		radius := size * params.RadiusPerSize
		for _, v := range obstacle.Shape.Vertices() {
			assert.GreaterOrEqual(t, v.Length(), radius*(1-params.ShapeJitter)-epsilon)
			assert.LessOrEqual(t, v.Length(), radius*(1+params.ShapeJitter)+epsilon)
		}
	}
}

func TestGenerator_ObstacleOutlineCounterClockwise(t *testing.T) {
	g := newGenerator(t, 3)
	obstacle, err := g.Obstacle(2)
	require.NoError(t, err)

	vertices := obstacle.Shape.Vertices()
	area := 0.0
	for i, v := range vertices {
		next := vertices[(i+1)%len(vertices)]
		area += v.X*next.Y - next.X*v.Y
	}
	assert.Greater(t, area, 0.0)
	assert.True(t, obstacle.Shape.Contains(physics.Vector2D{}))
}

func TestGenerator_ObstacleInvalidSize(t *testing.T) {
	g := newGenerator(t, 1)

	for _, size := range []float64{0, -1, 1e-300, config.MinObstacleSize / 2, math.NaN(), math.Inf(1), math.Inf(-1)} {
		obstacle, err := g.Obstacle(size)
		assert.Nil(t, obstacle)
		assert.True(t, errors.Is(err, ErrInvalidSize), "size %v: %v", size, err)
	}
}

func TestGenerator_ObstacleSpeedStaysFinite(t *testing.T) {
	params := defaultParams()
	params.BaseSpeed = math.MaxFloat64
	g, err := NewGenerator(1, space, params)
	require.NoError(t, err)

	obstacle, err := g.Obstacle(config.MinObstacleSize)
	assert.Nil(t, obstacle)
	assert.ErrorIs(t, err, ErrInvalidParams)

	g = newGenerator(t, 1)
	obstacle, err = g.Obstacle(config.MinObstacleSize)
	require.NoError(t, err)
	speed := obstacle.Velocity.Length()
	assert.False(t, math.IsInf(speed, 0) || math.IsNaN(speed))
}

func TestNewGenerator_InvalidParams(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(p *ObstacleParams)
	}{
		{"negative_speed", func(p *ObstacleParams) { p.BaseSpeed = -1 }},
		{"speed_jitter_one", func(p *ObstacleParams) { p.SpeedJitter = 1 }},
		{"zero_radius", func(p *ObstacleParams) { p.RadiusPerSize = 0 }},
		{"shape_jitter_nan", func(p *ObstacleParams) { p.ShapeJitter = math.NaN() }},
		{"two_vertices", func(p *ObstacleParams) { p.MinVertices, p.MaxVertices = 2, 2 }},
		{"inverted_vertices", func(p *ObstacleParams) { p.MinVertices, p.MaxVertices = 9, 8 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params := defaultParams()
			tt.mutate(&params)

			g, err := NewGenerator(1, space, params)
			assert.Nil(t, g)
			assert.True(t, errors.Is(err, ErrInvalidParams))
		})
	}
}

func TestSeedFromPhrase(t *testing.T) {
	assert.Equal(t, SeedFromPhrase("kuiper"), SeedFromPhrase("kuiper"))
	assert.NotEqual(t, SeedFromPhrase("kuiper"), SeedFromPhrase("oort"))
}

func TestNewFromConfig(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Runtime.Seed = 5

	g, err := NewFromConfig(cfg)
	require.NoError(t, err)
	assert.Equal(t, uint64(5), g.Seed())

	cfg.Runtime.SeedPhrase = "belt"
	g, err = NewFromConfig(cfg)
	require.NoError(t, err)
	assert.Equal(t, SeedFromPhrase("belt"), g.Seed())

	p := g.Position()
	assert.Less(t, p.X, cfg.World.Width)
	assert.Less(t, p.Y, cfg.World.Height)
}
