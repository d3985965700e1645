// Package random produces the randomized initial conditions of a session:
// positions, drift directions and asteroid shapes. A Generator is seeded
// explicitly so a session can be replayed.
package random

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/cespare/xxhash/v2"

	"github.com/opd-ai/go-asteroids/pkg/config"
	"github.com/opd-ai/go-asteroids/pkg/entity"
	"github.com/opd-ai/go-asteroids/pkg/physics"
)

var (
	// ErrInvalidSize is returned when an obstacle size is non-finite or
	// below config.MinObstacleSize.
	ErrInvalidSize = errors.New("obstacle size must be finite and at least the minimum size")

	// ErrInvalidParams is returned by NewGenerator for unusable shape or
	// speed parameters.
	ErrInvalidParams = errors.New("invalid obstacle parameters")
)

// streamSalt decorrelates the second PCG word from the seed.
const streamSalt = 0x9e3779b97f4a7c15

// ObstacleParams controls the speed and outline of generated obstacles.
type ObstacleParams struct {
	BaseSpeed     float64 // speed of a size-1 obstacle, units per second
	SpeedJitter   float64 // relative speed spread in [0, 1)
	RadiusPerSize float64 // outline radius per unit of size
	ShapeJitter   float64 // relative radius spread in [0, 1)
	MinVertices   int
	MaxVertices   int
}

// ParamsFromConfig extracts obstacle parameters from a configuration.
func ParamsFromConfig(cfg *config.Config) ObstacleParams {
	o := cfg.Obstacles
	return ObstacleParams{
		BaseSpeed:     o.BaseSpeed,
		SpeedJitter:   o.SpeedJitter,
		RadiusPerSize: o.RadiusPerSize,
		ShapeJitter:   o.ShapeJitter,
		MinVertices:   o.MinVertices,
		MaxVertices:   o.MaxVertices,
	}
}

func (p ObstacleParams) validate() error {
	switch {
	case p.BaseSpeed < 0 || math.IsNaN(p.BaseSpeed) || math.IsInf(p.BaseSpeed, 0):
		return fmt.Errorf("%w: base speed %v", ErrInvalidParams, p.BaseSpeed)
	case !(p.SpeedJitter >= 0 && p.SpeedJitter < 1):
		return fmt.Errorf("%w: speed jitter %v", ErrInvalidParams, p.SpeedJitter)
	case !(p.RadiusPerSize > 0) || math.IsInf(p.RadiusPerSize, 0):
		return fmt.Errorf("%w: radius per size %v", ErrInvalidParams, p.RadiusPerSize)
	case !(p.ShapeJitter >= 0 && p.ShapeJitter < 1):
		return fmt.Errorf("%w: shape jitter %v", ErrInvalidParams, p.ShapeJitter)
	case p.MinVertices < 3 || p.MaxVertices < p.MinVertices:
		return fmt.Errorf("%w: vertex range [%d, %d]", ErrInvalidParams, p.MinVertices, p.MaxVertices)
	}
	return nil
}

// Generator is a seedable source of random positions, directions and
// obstacles on a torus. It is not safe for concurrent use.
type Generator struct {
	rng    *rand.Rand
	seed   uint64
	space  physics.Torus
	params ObstacleParams
}

// NewGenerator creates a generator. Two generators built from the same
// seed, space and params produce identical sequences.
func NewGenerator(seed uint64, space physics.Torus, params ObstacleParams) (*Generator, error) {
	if err := params.validate(); err != nil {
		return nil, err
	}
	return &Generator{
		rng:    rand.New(rand.NewPCG(seed, seed^streamSalt)),
		seed:   seed,
		space:  space,
		params: params,
	}, nil
}

// NewFromConfig builds a generator for the configured world using
// SeedFromConfig.
func NewFromConfig(cfg *config.Config) (*Generator, error) {
	space := physics.NewTorus(cfg.World.Width, cfg.World.Height)
	return NewGenerator(SeedFromConfig(cfg), space, ParamsFromConfig(cfg))
}

// SeedFromPhrase hashes a human-readable phrase into a seed.
func SeedFromPhrase(phrase string) uint64 {
	return xxhash.Sum64String(phrase)
}

// SeedFromConfig returns the seed a configuration asks for. A non-empty
// seed phrase takes precedence over the numeric seed.
func SeedFromConfig(cfg *config.Config) uint64 {
	if cfg.Runtime.SeedPhrase != "" {
		return SeedFromPhrase(cfg.Runtime.SeedPhrase)
	}
	return cfg.Runtime.Seed
}

// Seed returns the seed the generator was created with.
func (g *Generator) Seed() uint64 {
	return g.seed
}

// Position returns a point uniformly distributed over the world.
func (g *Generator) Position() physics.Vector2D {
	return g.space.Remap(physics.Vector2D{
		X: g.rng.Float64() * g.space.Width,
		Y: g.rng.Float64() * g.space.Height,
	})
}

// Direction returns a unit vector with a uniformly distributed angle.
func (g *Generator) Direction() physics.Vector2D {
	return physics.FromAngle(g.rng.Float64()*2*math.Pi, 1)
}

// Obstacle returns a randomly placed obstacle of the given size. Larger
// obstacles are slower and wider. The returned obstacle has ID 0; the
// caller assigns identity.
func (g *Generator) Obstacle(size float64) (*entity.Obstacle, error) {
	if !(size >= config.MinObstacleSize) || math.IsInf(size, 1) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSize, size)
	}

	speed := g.params.BaseSpeed / size * g.jitter(g.params.SpeedJitter)
	if math.IsInf(speed, 0) {
		return nil, fmt.Errorf("%w: speed overflows for size %v", ErrInvalidParams, size)
	}
	position := g.Position()
	velocity := g.Direction().Scale(speed)
	shape := g.outline(size)

	return entity.NewObstacle(0, g.space, position, velocity, size, shape), nil
}

// outline builds a star-shaped counter-clockwise polygon around the local
// origin with evenly spaced vertex angles and jittered radii.
func (g *Generator) outline(size float64) physics.Polygon {
	n := g.params.MinVertices + g.rng.IntN(g.params.MaxVertices-g.params.MinVertices+1)
	radius := size * g.params.RadiusPerSize

	vertices := make([]physics.Vector2D, n)
	step := 2 * math.Pi / float64(n)
	for i := range vertices {
		vertices[i] = physics.FromAngle(float64(i)*step, radius*g.jitter(g.params.ShapeJitter))
	}
	return physics.NewPolygon(vertices...)
}

// jitter returns a factor uniform in [1-spread, 1+spread).
func (g *Generator) jitter(spread float64) float64 {
	return 1 + spread*(2*g.rng.Float64()-1)
}
