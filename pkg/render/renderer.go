// pkg/render/renderer.go
package render

import (
	"context"
	"math"
	"strconv"

	"github.com/opd-ai/go-asteroids/pkg/engine"
	"github.com/opd-ai/go-asteroids/pkg/logging"
)

// Renderer draws simulation snapshots. Implementations never mutate the
// simulation; they only see copies.
type Renderer interface {
	Clear()
	RenderObstacle(obstacle engine.ObstacleState)
	RenderCraft(craft engine.CraftState)
	RenderScore(score float64)
	Present()
}

// DrawFrame renders one snapshot: clear, obstacles in collection order,
// craft, score, present.
func DrawFrame(r Renderer, state *engine.State) {
	r.Clear()
	for _, obstacle := range state.Obstacles {
		r.RenderObstacle(obstacle)
	}
	r.RenderCraft(state.Craft)
	r.RenderScore(state.Score)
	r.Present()
}

// ScoreText formats a score the way it is displayed: rounded to the
// nearest integer.
func ScoreText(score float64) string {
	return strconv.FormatInt(int64(math.Round(score)), 10)
}

// NullRenderer is a Renderer that only logs what it is asked to draw.
type NullRenderer struct {
	logger *logging.Logger
}

// NewNullRenderer creates a new NullRenderer with structured logging.
func NewNullRenderer(logger *logging.Logger) *NullRenderer {
	if logger == nil {
		logger = logging.NewLogger()
	}
	return &NullRenderer{logger: logger}
}

// Clear implements Renderer.
func (d *NullRenderer) Clear() {
	d.logger.Debug(context.Background(), "Clear called")
}

// Present implements Renderer.
func (d *NullRenderer) Present() {
	d.logger.Debug(context.Background(), "Present called")
}

// RenderObstacle implements Renderer.
func (d *NullRenderer) RenderObstacle(obstacle engine.ObstacleState) {
	d.logger.Debug(context.Background(), "RenderObstacle called",
		"obstacle_id", obstacle.ID,
		"x", obstacle.Position.X,
		"y", obstacle.Position.Y,
		"vertices", obstacle.Hull.Len(),
	)
}

// RenderCraft implements Renderer.
func (d *NullRenderer) RenderCraft(craft engine.CraftState) {
	d.logger.Debug(context.Background(), "RenderCraft called",
		"x", craft.Position.X,
		"y", craft.Position.Y,
		"heading", craft.HeadingAngle,
		"propulsion", craft.PropulsionOn,
	)
}

// RenderScore implements Renderer.
func (d *NullRenderer) RenderScore(score float64) {
	d.logger.Debug(context.Background(), "RenderScore called", "score", score)
}
