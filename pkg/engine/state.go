// pkg/engine/state.go
package engine

import (
	"github.com/opd-ai/go-asteroids/pkg/entity"
	"github.com/opd-ai/go-asteroids/pkg/physics"
)

// State is a read-only snapshot of a simulation. It shares no memory with
// the simulation, so renderers may keep it across ticks.
type State struct {
	SessionID string
	Tick      uint64
	Elapsed   float64
	Score     float64
	Over      bool
	World     physics.Torus
	Craft     CraftState
	Obstacles []ObstacleState
}

// CraftState is a snapshot of the craft
type CraftState struct {
	ID           entity.ID
	Position     physics.Vector2D
	HeadingAngle float64 // degrees, 0 faces +x
	PropulsionOn bool
	Hull         physics.Polygon
}

// ObstacleState is a snapshot of one obstacle
type ObstacleState struct {
	ID       entity.ID
	Position physics.Vector2D
	Size     float64
	Hull     physics.Polygon
}

// CraftSnapshot returns the current pose of the craft.
func (s *Simulation) CraftSnapshot() CraftState {
	return CraftState{
		ID:           s.craft.ID,
		Position:     s.craft.Position,
		HeadingAngle: s.craft.HeadingAngle(),
		PropulsionOn: s.craft.PropulsionOn(),
		Hull:         s.craft.GetHull(),
	}
}

// ObstaclesSnapshot returns every obstacle in collection order with its
// world-frame hull.
func (s *Simulation) ObstaclesSnapshot() []ObstacleState {
	states := make([]ObstacleState, len(s.obstacles))
	for i, obstacle := range s.obstacles {
		states[i] = ObstacleState{
			ID:       obstacle.ID,
			Position: obstacle.Position,
			Size:     obstacle.Size,
			Hull:     obstacle.GetHull(),
		}
	}
	return states
}

// Snapshot returns the complete simulation state.
func (s *Simulation) Snapshot() *State {
	return &State{
		SessionID: s.sessionID,
		Tick:      s.tick,
		Elapsed:   s.elapsed,
		Score:     s.score,
		Over:      s.IsOver(),
		World:     s.space,
		Craft:     s.CraftSnapshot(),
		Obstacles: s.ObstaclesSnapshot(),
	}
}
