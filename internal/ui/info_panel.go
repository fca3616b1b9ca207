// internal/ui/info_panel.go
package ui

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"go-tile-defense/internal/app"
	"go-tile-defense/internal/defs"
	"go-tile-defense/pkg/gridmap"
)

const (
	paletteButtonHeight = 28
	paletteGap          = 6
	lineHeight          = 16
	detailsHeight       = 150
	animationSpeed      = 12.0
)

var (
	panelBgColor     = color.RGBA{25, 35, 45, 230}
	panelBorderColor = color.RGBA{70, 130, 180, 255}
	selectedColor    = color.RGBA{180, 140, 20, 255}
	panelTextColor   = color.RGBA{240, 240, 240, 255}
)

// PanelAction — что клик по панели просит сделать.
type PanelAction int

const (
	PanelNone PanelAction = iota
	PanelSelectUnit
	PanelUpgrade
)

// InfoPanel — правая колонка: палитра юнитов сверху и сведения о выбранном
// юните снизу. Блок сведений выезжает снизу.
type InfoPanel struct {
	X, Y, Width int
	Palette     []*Button
	Upgrade     *Button
	Selected    int // индекс в палитре, -1 если ничего не выбрано

	Target    gridmap.Cell
	HasTarget bool

	catalog  *defs.Catalog
	fontFace font.Face
	currentY float64
	targetY  float64
	bottom   float64
}

func NewInfoPanel(x, y, width, bottom int, catalog *defs.Catalog, face font.Face) *InfoPanel {
	p := &InfoPanel{
		X:        x,
		Y:        y,
		Width:    width,
		Selected: -1,
		catalog:  catalog,
		fontFace: face,
		bottom:   float64(bottom),
		currentY: float64(bottom),
		targetY:  float64(bottom),
	}
	for i := range catalog.Units {
		def := &catalog.Units[i]
		top := y + i*(paletteButtonHeight+paletteGap)
		label := fmt.Sprintf("%d %s  $%d", i+1, def.Name, def.Cost)
		p.Palette = append(p.Palette, NewButton(image.Rect(x, top, x+width, top+paletteButtonHeight), label, face))
	}
	return p
}

// SelectedUnit возвращает ID выбранного в палитре юнита.
func (p *InfoPanel) SelectedUnit() (string, bool) {
	if p.Selected < 0 || p.Selected >= len(p.catalog.Units) {
		return "", false
	}
	return p.catalog.Units[p.Selected].ID, true
}

// Select переключает выбор i-го юнита.
func (p *InfoPanel) Select(i int) {
	if i < 0 || i >= len(p.Palette) || p.Selected == i {
		p.Selected = -1
		return
	}
	p.Selected = i
}

func (p *InfoPanel) SetTarget(c gridmap.Cell) {
	p.Target = c
	p.HasTarget = true
	p.targetY = p.bottom - detailsHeight
}

func (p *InfoPanel) Hide() {
	p.targetY = p.bottom
}

// Update анимирует блок сведений и гасит то, на что не хватает средств.
func (p *InfoPanel) Update(snap *app.Snapshot) {
	if p.currentY != p.targetY {
		diff := p.targetY - p.currentY
		switch {
		case math.Abs(diff) < animationSpeed:
			p.currentY = p.targetY
		case diff > 0:
			p.currentY += animationSpeed
		default:
			p.currentY -= animationSpeed
		}
		if p.currentY >= p.bottom {
			p.HasTarget = false
		}
	}
	for i, b := range p.Palette {
		b.Disabled = p.catalog.Units[i].Cost > snap.Funds
	}
	if u, ok := p.targetUnit(snap); ok && p.Upgrade != nil {
		p.Upgrade.Disabled = u.UpgradeCost == 0 || u.UpgradeCost > snap.Funds
	}
}

// Contains — точка на панели
func (p *InfoPanel) Contains(x, y int) bool {
	return x >= p.X && x < p.X+p.Width && y >= p.Y
}

// HandleClick обрабатывает клик внутри панели.
func (p *InfoPanel) HandleClick(x, y int) PanelAction {
	for i, b := range p.Palette {
		if b.Contains(x, y) {
			p.Select(i)
			return PanelSelectUnit
		}
	}
	if p.HasTarget && p.Upgrade != nil && p.Upgrade.IsClicked(x, y) {
		return PanelUpgrade
	}
	return PanelNone
}

func (p *InfoPanel) targetUnit(snap *app.Snapshot) (app.UnitView, bool) {
	if !p.HasTarget {
		return app.UnitView{}, false
	}
	for _, u := range snap.Units {
		if u.Cell == p.Target {
			return u, true
		}
	}
	return app.UnitView{}, false
}

func (p *InfoPanel) Draw(screen *ebiten.Image, snap *app.Snapshot, mouseX, mouseY int) {
	for i, b := range p.Palette {
		b.Draw(screen, mouseX, mouseY)
		if i == p.Selected {
			r := b.Rect
			vector.StrokeRect(screen, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), 2, selectedColor, false)
		}
	}

	if !p.HasTarget && p.currentY >= p.bottom {
		return
	}
	top := int(p.currentY)
	vector.DrawFilledRect(screen, float32(p.X), float32(top), float32(p.Width), detailsHeight, panelBgColor, false)
	vector.StrokeRect(screen, float32(p.X), float32(top), float32(p.Width), detailsHeight, 2, panelBorderColor, false)

	u, ok := p.targetUnit(snap)
	if !ok {
		return
	}
	def, ok := p.catalog.Lookup(u.UnitID)
	if !ok {
		return
	}
	x := p.X + 10
	y := top + 20
	text.Draw(screen, def.Name, p.fontFace, x, y, panelTextColor)
	y += lineHeight
	lines := []string{
		fmt.Sprintf("Level %d/%d", u.Level, u.MaxLevel),
		fmt.Sprintf("Attack %d  Range %.1f", def.AttackAt(u.Level), u.Range),
		fmt.Sprintf("Cell %d,%d", u.Cell.X, u.Cell.Y),
	}
	if def.GrantsStatus() {
		lines = append(lines, fmt.Sprintf("Slow %d frames", def.Slow.Duration))
	}
	for _, l := range lines {
		text.Draw(screen, l, p.fontFace, x, y, panelTextColor)
		y += lineHeight
	}

	label := "Max level"
	if u.UpgradeCost > 0 {
		label = fmt.Sprintf("Upgrade $%d", u.UpgradeCost)
	}
	btnTop := top + detailsHeight - paletteButtonHeight - 10
	if p.Upgrade == nil {
		p.Upgrade = NewButton(image.Rectangle{}, label, p.fontFace)
	}
	p.Upgrade.Rect = image.Rect(p.X+10, btnTop, p.X+p.Width-10, btnTop+paletteButtonHeight)
	p.Upgrade.Text = label
	p.Upgrade.Draw(screen, mouseX, mouseY)
}
