// pkg/render/engo/assets.go
package engo

import (
	"bytes"
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/EngoEngine/engo"
	"github.com/EngoEngine/engo/common"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/opd-ai/go-asteroids/pkg/entity"
	"github.com/opd-ai/go-asteroids/pkg/physics"
)

const (
	// fontURL is the virtual file the HUD font is registered under
	fontURL = "goregular.ttf"

	// craftPixelsPerUnit is the resolution of the craft sprite
	craftPixelsPerUnit = 2
)

// AssetManager builds the sprites and fonts of the engo frontend. Nothing
// is read from disk: sprites are rasterised from hull polygons.
type AssetManager struct {
	craftSprite common.Drawable
	flameSprite common.Drawable

	// craftPivot is the pixel of the craft sprite under the craft's position
	craftPivot engo.Point
	craftSize  engo.Point
	flamePivot engo.Point
	flameSize  engo.Point

	font *common.Font
}

// NewAssetManager creates a new asset manager
func NewAssetManager() *AssetManager {
	return &AssetManager{}
}

// Preload registers the embedded Go font with engo's file loader
func (am *AssetManager) Preload() error {
	return engo.Files.LoadReaderData(fontURL, bytes.NewReader(goregular.TTF))
}

// LoadAssets rasterises sprites and prepares fonts. It needs a GL context.
func (am *AssetManager) LoadAssets() error {
	craft, pivot := rasterizeHull(entity.ContactPoints(), craftPixelsPerUnit, color.RGBA{255, 255, 255, 255})
	am.craftSprite = am.convertToEngoTexture(craft)
	am.craftPivot = pivot
	am.craftSize = imageSize(craft)

	flame, flamePivot := rasterizeHull(flameOutline(), craftPixelsPerUnit, color.RGBA{255, 140, 0, 255})
	am.flameSprite = am.convertToEngoTexture(flame)
	am.flamePivot = flamePivot
	am.flameSize = imageSize(flame)

	am.font = &common.Font{
		URL:  fontURL,
		FG:   color.RGBA{0, 255, 0, 255},
		Size: 32,
	}
	return am.font.CreatePreloaded()
}

// flameOutline is the exhaust drawn behind the craft while the engine is
// on, in the craft's local frame.
func flameOutline() physics.Polygon {
	return physics.NewPolygon(
		physics.Vector2D{X: -14, Y: -6},
		physics.Vector2D{X: -14, Y: 6},
		physics.Vector2D{X: -30, Y: 0},
	)
}

// rasterizeHull fills polygon into a transparent image at the given
// resolution. The returned pivot is the pixel position of the polygon's
// local origin.
func rasterizeHull(polygon physics.Polygon, pixelsPerUnit float64, fill color.Color) (*image.NRGBA, engo.Point) {
	vertices := polygon.Vertices()
	if len(vertices) == 0 {
		return image.NewNRGBA(image.Rect(0, 0, 1, 1)), engo.Point{}
	}

	minX, minY := vertices[0].X, vertices[0].Y
	maxX, maxY := minX, minY
	for _, v := range vertices[1:] {
		minX, minY = math.Min(minX, v.X), math.Min(minY, v.Y)
		maxX, maxY = math.Max(maxX, v.X), math.Max(maxY, v.Y)
	}

	width := int(math.Ceil((maxX-minX)*pixelsPerUnit)) + 1
	height := int(math.Ceil((maxY-minY)*pixelsPerUnit)) + 1
	img := createBaseImage(width, height)

	for py := 0; py < height; py++ {
		for px := 0; px < width; px++ {
			local := physics.Vector2D{
				X: minX + (float64(px)+0.5)/pixelsPerUnit,
				Y: minY + (float64(py)+0.5)/pixelsPerUnit,
			}
			if polygon.Contains(local) {
				img.Set(px, py, fill)
			}
		}
	}

	pivot := engo.Point{
		X: float32(-minX * pixelsPerUnit),
		Y: float32(-minY * pixelsPerUnit),
	}
	return img, pivot
}

// createBaseImage creates a transparent NRGBA image with the specified dimensions.
func createBaseImage(width, height int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), &image.Uniform{color.NRGBA{0, 0, 0, 0}}, image.Point{}, draw.Src)
	return img
}

func imageSize(img image.Image) engo.Point {
	b := img.Bounds()
	return engo.Point{X: float32(b.Dx()), Y: float32(b.Dy())}
}

// convertToEngoTexture uploads an image as an engo texture.
func (am *AssetManager) convertToEngoTexture(img *image.NRGBA) common.Drawable {
	texture := common.NewImageObject(img)
	return common.NewTextureSingle(texture)
}

// CraftSprite returns the craft texture and the pixel under its position
func (am *AssetManager) CraftSprite() (common.Drawable, engo.Point) {
	return am.craftSprite, am.craftPivot
}

// FlameSprite returns the exhaust texture and the pixel under the craft's
// position
func (am *AssetManager) FlameSprite() (common.Drawable, engo.Point) {
	return am.flameSprite, am.flamePivot
}

// Font returns the HUD font
func (am *AssetManager) Font() *common.Font {
	return am.font
}
