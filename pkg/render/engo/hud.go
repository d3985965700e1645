// pkg/render/engo/hud.go
package engo

import (
	"github.com/EngoEngine/ecs"
	"github.com/EngoEngine/engo"
	"github.com/EngoEngine/engo/common"

	"github.com/opd-ai/go-asteroids/pkg/render"
)

// scoreOffset is where the score is drawn, in screen pixels
var scoreOffset = engo.Point{X: 50, Y: 20}

// HUDSystem draws the score on top of the playfield
type HUDSystem struct {
	renderSystem *common.RenderSystem
	font         *common.Font

	score     *spriteEntity
	text      string
	displayed string
}

// NewHUDSystem creates a new HUD system
func NewHUDSystem(renderSystem *common.RenderSystem, font *common.Font) *HUDSystem {
	return &HUDSystem{
		renderSystem: renderSystem,
		font:         font,
		text:         render.ScoreText(0),
	}
}

// New is called when the system is added to the world
func (hud *HUDSystem) New(*ecs.World) {
	hud.score = &spriteEntity{BasicEntity: ecs.NewBasic()}
	hud.score.RenderComponent = common.RenderComponent{
		Drawable: common.Text{Font: hud.font, Text: hud.text},
	}
	hud.score.SetZIndex(10)
	hud.score.SetShader(common.TextHUDShader)
	hud.score.SpaceComponent = common.SpaceComponent{Position: scoreOffset}
	hud.displayed = hud.text
	hud.renderSystem.Add(&hud.score.BasicEntity, &hud.score.RenderComponent, &hud.score.SpaceComponent)
}

// Remove satisfies the ecs.System interface
func (hud *HUDSystem) Remove(ecs.BasicEntity) {}

// Update refreshes the score text when it changed
func (hud *HUDSystem) Update(float32) {
	if hud.score == nil || hud.text == hud.displayed {
		return
	}
	hud.score.Drawable = common.Text{Font: hud.font, Text: hud.text}
	hud.displayed = hud.text
}

// SetScore records the score to display on the next update
func (hud *HUDSystem) SetScore(score float64) {
	hud.text = render.ScoreText(score)
}

// Text returns the score text that will be displayed
func (hud *HUDSystem) Text() string {
	return hud.text
}
