// pkg/engine/simulation.go
package engine

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/google/uuid"

	"github.com/opd-ai/go-asteroids/pkg/config"
	"github.com/opd-ai/go-asteroids/pkg/entity"
	"github.com/opd-ai/go-asteroids/pkg/event"
	"github.com/opd-ai/go-asteroids/pkg/logging"
	"github.com/opd-ai/go-asteroids/pkg/physics"
)

var (
	// ErrInvalidTimeDelta is returned by Advance for a negative or
	// non-finite time step.
	ErrInvalidTimeDelta = errors.New("invalid time delta")

	// ErrSpawnRetryExhausted is returned by NewSimulation when an obstacle
	// could not be placed far enough from the craft within the retry cap.
	ErrSpawnRetryExhausted = errors.New("spawn retries exhausted")
)

// craftID is the identity of the single craft; obstacles are numbered
// after it.
const craftID entity.ID = 1

// ObstacleSource supplies candidate obstacles during initial placement.
type ObstacleSource interface {
	Obstacle(size float64) (*entity.Obstacle, error)
}

// Option customises a Simulation at construction time.
type Option func(*Simulation)

// WithEventBus publishes simulation events on bus instead of a private one.
func WithEventBus(bus *event.Bus) Option {
	return func(s *Simulation) {
		s.EventBus = bus
	}
}

// WithLogger sets the logger used by the simulation.
func WithLogger(logger *logging.Logger) Option {
	return func(s *Simulation) {
		s.logger = logger
	}
}

// WithSeed records the seed reported with the session. Sources with a
// Seed method are picked up without it.
func WithSeed(seed uint64) Option {
	return func(s *Simulation) {
		s.seed = seed
	}
}

// Simulation owns one craft and an ordered collection of obstacles on a
// torus and advances them in fixed time steps. It is not safe for
// concurrent use; Run serialises commands and ticks on one goroutine.
type Simulation struct {
	EventBus *event.Bus

	config    config.Config
	sessionID string
	seed      uint64
	space     physics.Torus
	craft     *entity.Craft
	obstacles []*entity.Obstacle
	bodies    []entity.Entity // obstacles in order, then the craft
	score     float64
	tick      uint64
	elapsed   float64
	nextID    entity.ID
	logger    *logging.Logger
}

// NewSimulation validates cfg, places the craft at the center of the world
// and draws the initial obstacles from source. The simulation keeps its own
// copy of cfg; later changes to cfg do not affect it. Every obstacle is resampled
// until it lies at least the security distance away from the craft, at most
// SpawnRetries times.
func NewSimulation(cfg *config.Config, source ObstacleSource, opts ...Option) (*Simulation, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	space := physics.NewTorus(cfg.World.Width, cfg.World.Height)
	s := &Simulation{
		config:    *cfg,
		sessionID: uuid.NewString(),
		space:     space,
		craft:     entity.NewCraft(craftID, space, cfg.Craft.ThrustSpeed),
		nextID:    craftID + 1,
	}
	if seeded, ok := source.(interface{ Seed() uint64 }); ok {
		s.seed = seeded.Seed()
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.EventBus == nil {
		s.EventBus = event.NewEventBus()
	}
	if s.logger == nil {
		s.logger = logging.NewNopLogger()
	}
	s.logger = s.logger.With("session_id", s.sessionID)

	if err := s.initObstacles(source); err != nil {
		return nil, err
	}
	s.initBodies()

	s.logger.Info(context.Background(), "simulation started",
		"seed", s.seed,
		"obstacles", len(s.obstacles),
		"world_width", space.Width,
		"world_height", space.Height,
	)
	s.EventBus.Publish(event.NewSessionEvent(s, s.sessionID, s.seed, len(s.obstacles)))

	return s, nil
}

// initObstacles creates the initial obstacle population.
func (s *Simulation) initObstacles(source ObstacleSource) error {
	count := s.config.Obstacles.InitialCount
	s.obstacles = make([]*entity.Obstacle, 0, count)

	for i := 0; i < count; i++ {
		obstacle, attempts, err := s.spawnObstacle(source)
		if err != nil {
			s.logger.Error(context.Background(), "initial obstacle placement failed", err,
				"index", i,
				"attempts", attempts,
			)
			return fmt.Errorf("placing obstacle %d of %d: %w", i+1, count, err)
		}

		obstacle.ID = s.nextID
		s.nextID++
		s.obstacles = append(s.obstacles, obstacle)

		s.logger.Debug(context.Background(), "obstacle spawned",
			"obstacle_id", obstacle.ID,
			"x", obstacle.Position.X,
			"y", obstacle.Position.Y,
			"attempts", attempts,
		)
		s.EventBus.Publish(event.NewObstacleEvent(s, uint64(obstacle.ID), obstacle.Size, attempts))
	}
	return nil
}

// spawnObstacle draws candidates until one respects the security distance.
// It returns the number of candidates drawn.
func (s *Simulation) spawnObstacle(source ObstacleSource) (*entity.Obstacle, int, error) {
	size := s.config.Obstacles.InitialSize
	minDistance := s.config.Obstacles.SecurityDistance
	retries := s.config.Obstacles.SpawnRetries

	for attempt := 1; attempt <= retries; attempt++ {
		candidate, err := source.Obstacle(size)
		if err != nil {
			return nil, attempt, fmt.Errorf("generating obstacle: %w", err)
		}
		if candidate == nil {
			return nil, attempt, errors.New("generating obstacle: source returned no obstacle")
		}

		// Candidates are rebound to this world whatever torus the source used.
		candidate.Space = s.space
		candidate.Position = s.space.Remap(candidate.Position)

		distance := candidate.Position.Distance(s.craft.Position)
		if distance >= minDistance {
			return candidate, attempt, nil
		}
		s.logger.Debug(context.Background(), "obstacle candidate rejected",
			"attempt", attempt,
			"distance", distance,
		)
	}

	return nil, retries, fmt.Errorf("%w: no obstacle at distance >= %v from the craft after %d attempts",
		ErrSpawnRetryExhausted, minDistance, retries)
}

// initBodies fixes the update order: obstacles in collection order, then
// the craft.
func (s *Simulation) initBodies() {
	s.bodies = make([]entity.Entity, 0, len(s.obstacles)+1)
	for _, obstacle := range s.obstacles {
		s.bodies = append(s.bodies, obstacle)
	}
	s.bodies = append(s.bodies, s.craft)
}

// Advance moves the simulation forward by deltaTime seconds: the score
// accrues first, then every obstacle moves, then the craft. An invalid
// delta is rejected before any state changes.
func (s *Simulation) Advance(deltaTime float64) error {
	if deltaTime < 0 || math.IsNaN(deltaTime) || math.IsInf(deltaTime, 0) {
		s.logger.Warn(context.Background(), "rejected time delta", "delta", deltaTime, "tick", s.tick)
		return fmt.Errorf("%w: %v", ErrInvalidTimeDelta, deltaTime)
	}

	s.score += s.config.Rules.ScoreRate * deltaTime
	for _, body := range s.bodies {
		body.Update(deltaTime)
	}

	s.tick++
	s.elapsed += deltaTime
	return nil
}

// StartPropulsion switches the craft engine on.
func (s *Simulation) StartPropulsion() {
	if s.craft.StartPropulsion() {
		s.publishPropulsion(event.PropulsionStarted)
	}
}

// StopPropulsion switches the craft engine off.
func (s *Simulation) StopPropulsion() {
	if s.craft.StopPropulsion() {
		s.publishPropulsion(event.PropulsionStopped)
	}
}

func (s *Simulation) publishPropulsion(eventType event.Type) {
	s.logger.Debug(context.Background(), "engine state changed",
		"state", s.craft.EngineState().String(),
		"tick", s.tick,
	)
	s.EventBus.Publish(event.NewPropulsionEvent(eventType, s, uint64(s.craft.ID), s.tick))
}

// Config returns a copy of the configuration the simulation runs with.
func (s *Simulation) Config() config.Config {
	return s.config
}

// Score returns the accumulated score.
func (s *Simulation) Score() float64 {
	return s.score
}

// IsOver always reports false: collisions between the craft and obstacles
// are not resolved, so a session never ends on its own.
func (s *Simulation) IsOver() bool {
	return false
}

// SessionID returns the unique identifier of this session.
func (s *Simulation) SessionID() string {
	return s.sessionID
}

// Seed returns the seed of the obstacle source.
func (s *Simulation) Seed() uint64 {
	return s.seed
}

// Space returns the world the bodies move in.
func (s *Simulation) Space() physics.Torus {
	return s.space
}

// Tick returns the number of successful Advance calls.
func (s *Simulation) Tick() uint64 {
	return s.tick
}
