// pkg/render/grid_renderer.go
package render

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"go-tile-defense/pkg/gridmap"
)

// Layout переводит координаты клеток в пиксели экрана. Позиции в клетках,
// начало клетки в её левом верхнем углу.
type Layout struct {
	OriginX, OriginY float64
	TileSize         float64
}

// CellRect возвращает левый верхний угол c на экране.
func (l Layout) CellRect(c gridmap.Cell) (float64, float64) {
	x, y := c.ToPixel(l.TileSize)
	return l.OriginX + x, l.OriginY + y
}

// Center переводит позицию в клетках в центр клетки на экране.
func (l Layout) Center(x, y float64) (float64, float64) {
	return l.OriginX + (x+0.5)*l.TileSize, l.OriginY + (y+0.5)*l.TileSize
}

// CellAt возвращает клетку под точкой экрана (px, py).
func (l Layout) CellAt(px, py int) gridmap.Cell {
	return gridmap.CellAt(float64(px)-l.OriginX, float64(py)-l.OriginY, l.TileSize)
}

// GridRenderer рисует статичную карту один раз в отдельное изображение.
type GridRenderer struct {
	grid     *gridmap.Map
	layout   Layout
	colors   *MapColors
	fontFace font.Face
	mapImage *ebiten.Image
	width    int
	height   int
}

func NewGridRenderer(grid *gridmap.Map, layout Layout, screenWidth, screenHeight int, face font.Face, colors *MapColors) *GridRenderer {
	r := &GridRenderer{
		grid:     grid,
		layout:   layout,
		colors:   colors,
		fontFace: face,
		width:    screenWidth,
		height:   screenHeight,
	}
	r.RenderMapImage()
	return r
}

func (r *GridRenderer) Layout() Layout { return r.layout }

// RenderMapImage перерисовывает кэш карты.
func (r *GridRenderer) RenderMapImage() {
	if r.mapImage == nil {
		r.mapImage = ebiten.NewImage(r.width, r.height)
	}
	r.mapImage.Clear()
	for y := 0; y < r.grid.Height(); y++ {
		for x := 0; x < r.grid.Width(); x++ {
			r.drawTile(r.mapImage, gridmap.Cell{X: x, Y: y})
		}
	}
}

func (r *GridRenderer) TileColor(t gridmap.TileType) color.RGBA {
	switch t {
	case gridmap.Path:
		return r.colors.PathColor
	case gridmap.Placeable:
		return r.colors.PlaceableColor
	case gridmap.Goal:
		return r.colors.GoalColor
	default:
		return r.colors.BlockedColor
	}
}

func (r *GridRenderer) drawTile(target *ebiten.Image, c gridmap.Cell) {
	x, y := r.layout.CellRect(c)
	size := float32(r.layout.TileSize)
	fill := r.TileColor(r.grid.Tile(c.X, c.Y))

	vector.DrawFilledRect(target, float32(x), float32(y), size, size, fill, false)
	vector.StrokeRect(target, float32(x), float32(y), size, size, r.colors.StrokeWidth/2, r.colors.GridLineColor, false)

	if c == r.grid.Goal() {
		label := "G"
		b := text.BoundString(r.fontFace, label)
		tx := int(x) + (int(size)-b.Dx())/2
		ty := int(y) + (int(size)+b.Dy())/2
		text.Draw(target, label, r.fontFace, tx, ty, Contrast(fill, r.colors.TextDarkColor, r.colors.TextLightColor))
	}
}

// Draw blits the cached map.
func (r *GridRenderer) Draw(screen *ebiten.Image) {
	screen.DrawImage(r.mapImage, nil)
}

// DrawHover обводит c, если клетка на карте.
func (r *GridRenderer) DrawHover(screen *ebiten.Image, c gridmap.Cell, clr color.Color) {
	if !r.grid.InBounds(c) {
		return
	}
	x, y := r.layout.CellRect(c)
	size := float32(r.layout.TileSize)
	vector.StrokeRect(screen, float32(x)+1, float32(y)+1, size-2, size-2, r.colors.StrokeWidth, clr, true)
}

// DrawLabel пишет короткую подпись по центру c, например уровень юнита.
func (r *GridRenderer) DrawLabel(screen *ebiten.Image, c gridmap.Cell, label string, clr color.Color) {
	x, y := r.layout.CellRect(c)
	b := text.BoundString(r.fontFace, label)
	size := int(r.layout.TileSize)
	text.Draw(screen, label, r.fontFace, int(x)+(size-b.Dx())/2, int(y)+(size+b.Dy())/2, clr)
}

// CellLabel formats a cell for the HUD.
func CellLabel(c gridmap.Cell) string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}
