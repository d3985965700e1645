// pkg/entity/craft.go
package entity

import (
	"github.com/opd-ai/go-asteroids/pkg/physics"
)

// EngineState is the propulsion state of a craft
type EngineState int

const (
	EngineOff EngineState = iota
	EngineOn
)

// String returns the state name used in logs
func (s EngineState) String() string {
	switch s {
	case EngineOff:
		return "engine_off"
	case EngineOn:
		return "engine_on"
	default:
		return "unknown"
	}
}

// craftContactPoints are points on the boundary of the craft in its local
// frame, facing +x. Every craft shares this table.
var craftContactPoints = physics.NewPolygon(
	physics.Vector2D{X: 0, Y: 0},
	physics.Vector2D{X: 27, Y: 0},
	physics.Vector2D{X: 14.5, Y: 1.5},
	physics.Vector2D{X: 2, Y: 3},
	physics.Vector2D{X: 0, Y: 18},
	physics.Vector2D{X: -13, Y: 18},
	physics.Vector2D{X: -14, Y: 2},
	physics.Vector2D{X: -14, Y: -2},
	physics.Vector2D{X: -13, Y: -18},
	physics.Vector2D{X: 0, Y: -18},
	physics.Vector2D{X: 2, Y: -3},
	physics.Vector2D{X: 14.5, Y: -1.5},
)

// ContactPoints returns the local-frame collision hull shared by all crafts
func ContactPoints() physics.Polygon {
	return craftContactPoints
}

// Craft is the player's steerable body
type Craft struct {
	BaseEntity
	Heading     physics.Vector2D
	ThrustSpeed float64
	engine      EngineState
}

// NewCraft creates a craft at the center of space, facing +x with its
// engine off.
func NewCraft(id ID, space physics.Torus, thrustSpeed float64) *Craft {
	return &Craft{
		BaseEntity: BaseEntity{
			ID:       id,
			Position: space.Center(),
			Space:    space,
		},
		Heading:     physics.Vector2D{X: 1, Y: 0},
		ThrustSpeed: thrustSpeed,
		engine:      EngineOff,
	}
}

// StartPropulsion switches the main engine on. It reports whether the state
// changed.
func (c *Craft) StartPropulsion() bool {
	changed := c.engine != EngineOn
	c.engine = EngineOn
	return changed
}

// StopPropulsion switches the main engine off. It reports whether the state
// changed.
func (c *Craft) StopPropulsion() bool {
	changed := c.engine != EngineOff
	c.engine = EngineOff
	return changed
}

// EngineState returns the current propulsion state
func (c *Craft) EngineState() EngineState {
	return c.engine
}

// PropulsionOn reports whether the main engine is on
func (c *Craft) PropulsionOn() bool {
	return c.engine == EngineOn
}

// HeadingAngle returns the heading in degrees, where 0 faces +x
func (c *Craft) HeadingAngle() float64 {
	return c.Heading.AngleDegrees()
}

// Update advances the craft by deltaTime seconds. The heading is never
// changed here.
func (c *Craft) Update(deltaTime float64) {
	if c.engine == EngineOn {
		c.Position = c.Position.Add(c.Heading.Scale(c.ThrustSpeed * deltaTime))
	}
	c.Position = c.Space.Remap(c.Position)
}

// GetHull returns the contact points rotated to the heading and placed at
// the craft's position.
func (c *Craft) GetHull() physics.Polygon {
	return craftContactPoints.Transform(c.Heading.Angle(), c.Position)
}
