// pkg/render/engo/renderer.go
package engo

import (
	"image/color"

	"github.com/EngoEngine/ecs"
	"github.com/EngoEngine/engo"
	"github.com/EngoEngine/engo/common"

	"github.com/opd-ai/go-asteroids/pkg/engine"
	"github.com/opd-ai/go-asteroids/pkg/entity"
	"github.com/opd-ai/go-asteroids/pkg/physics"
	"github.com/opd-ai/go-asteroids/pkg/render"
)

// spriteEntity is anything the render system draws
type spriteEntity struct {
	ecs.BasicEntity
	common.RenderComponent
	common.SpaceComponent
}

var (
	obstacleColor = color.RGBA{170, 170, 170, 255}
	craftColor    = color.RGBA{255, 255, 255, 255}
)

// EngoRenderer implements render.Renderer on top of engo's render system.
// Obstacles become filled polygons; the craft is a rotated sprite.
type EngoRenderer struct {
	renderSystem *common.RenderSystem
	assets       *AssetManager
	hud          *HUDSystem
	world        physics.Torus

	obstacles map[entity.ID]*spriteEntity
	seen      map[entity.ID]bool
	craft     *spriteEntity
	flame     *spriteEntity
}

// NewEngoRenderer creates a renderer drawing a world of the given size.
func NewEngoRenderer(renderSystem *common.RenderSystem, assets *AssetManager, hud *HUDSystem, world physics.Torus) *EngoRenderer {
	return &EngoRenderer{
		renderSystem: renderSystem,
		assets:       assets,
		hud:          hud,
		world:        world,
		obstacles:    make(map[entity.ID]*spriteEntity),
		seen:         make(map[entity.ID]bool),
	}
}

var _ render.Renderer = (*EngoRenderer)(nil)

// Clear implements render.Renderer. Engo clears the screen itself; here
// the renderer only forgets which obstacles were drawn last frame.
func (r *EngoRenderer) Clear() {
	for id := range r.seen {
		delete(r.seen, id)
	}
}

// RenderObstacle implements render.Renderer
func (r *EngoRenderer) RenderObstacle(obstacle engine.ObstacleState) {
	sprite := r.getOrCreateObstacle(obstacle.ID)
	r.seen[obstacle.ID] = true

	outline := make([]engo.Point, obstacle.Hull.Len())
	for i := range outline {
		outline[i] = r.worldToScreen(obstacle.Hull.Vertex(i))
	}
	origin, width, height, points := fanTriangles(r.worldToScreen(obstacle.Position), outline)

	sprite.Drawable = common.ComplexTriangles{Points: points}
	sprite.SpaceComponent = common.SpaceComponent{Position: origin, Width: width, Height: height}
}

// RenderCraft implements render.Renderer
func (r *EngoRenderer) RenderCraft(craft engine.CraftState) {
	r.ensureCraft()

	anchor := r.worldToScreen(craft.Position)
	rotation := float32(craft.HeadingAngle)
	scale := r.spriteScale()

	_, pivot := r.assets.CraftSprite()
	r.placeSprite(r.craft, anchor, pivot, r.assets.craftSize, rotation, scale)

	_, flamePivot := r.assets.FlameSprite()
	r.placeSprite(r.flame, anchor, flamePivot, r.assets.flameSize, rotation, scale)
	r.flame.Hidden = !craft.PropulsionOn
}

// RenderScore implements render.Renderer
func (r *EngoRenderer) RenderScore(score float64) {
	r.hud.SetScore(score)
}

// Present implements render.Renderer. Obstacles that were not drawn this
// frame are removed from the render system.
func (r *EngoRenderer) Present() {
	for id, sprite := range r.obstacles {
		if r.seen[id] {
			continue
		}
		r.renderSystem.Remove(sprite.BasicEntity)
		delete(r.obstacles, id)
	}
}

func (r *EngoRenderer) getOrCreateObstacle(id entity.ID) *spriteEntity {
	if sprite, exists := r.obstacles[id]; exists {
		return sprite
	}

	sprite := &spriteEntity{BasicEntity: ecs.NewBasic()}
	sprite.RenderComponent = common.RenderComponent{
		Drawable: common.ComplexTriangles{},
		Color:    obstacleColor,
	}
	r.obstacles[id] = sprite
	r.renderSystem.Add(&sprite.BasicEntity, &sprite.RenderComponent, &sprite.SpaceComponent)
	return sprite
}

func (r *EngoRenderer) ensureCraft() {
	if r.craft != nil {
		return
	}

	flameDrawable, _ := r.assets.FlameSprite()
	r.flame = &spriteEntity{BasicEntity: ecs.NewBasic()}
	r.flame.RenderComponent = common.RenderComponent{Drawable: flameDrawable, Color: craftColor, Hidden: true}
	r.renderSystem.Add(&r.flame.BasicEntity, &r.flame.RenderComponent, &r.flame.SpaceComponent)

	craftDrawable, _ := r.assets.CraftSprite()
	r.craft = &spriteEntity{BasicEntity: ecs.NewBasic()}
	r.craft.RenderComponent = common.RenderComponent{Drawable: craftDrawable, Color: craftColor}
	r.craft.SetZIndex(1)
	r.renderSystem.Add(&r.craft.BasicEntity, &r.craft.RenderComponent, &r.craft.SpaceComponent)
}

// placeSprite positions a sprite so that its pivot sits on anchor.
func (r *EngoRenderer) placeSprite(sprite *spriteEntity, anchor, pivot, size engo.Point, rotation, scale float32) {
	scaledPivot := engo.Point{X: pivot.X * scale, Y: pivot.Y * scale}
	sprite.Scale = engo.Point{X: scale, Y: scale}
	sprite.SpaceComponent = common.SpaceComponent{
		Position: spriteOrigin(anchor, scaledPivot, rotation),
		Width:    size.X * scale,
		Height:   size.Y * scale,
		Rotation: rotation,
	}
}

// spriteScale converts sprite pixels to screen pixels.
func (r *EngoRenderer) spriteScale() float32 {
	return engo.GameWidth() / float32(r.world.Width) / craftPixelsPerUnit
}

func (r *EngoRenderer) worldToScreen(pos physics.Vector2D) engo.Point {
	return worldToScreen(pos, r.world, engo.GameWidth(), engo.GameHeight())
}
