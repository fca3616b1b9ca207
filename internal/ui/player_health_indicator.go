// internal/ui/player_health_indicator.go
package ui

import (
	"image/color"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

const (
	HealthCols          = 5
	HealthCircleRadius  = 7.0
	HealthCircleSpacing = 4.0
	healthTextHeight    = 18
)

var (
	healthFullColor  = color.RGBA{60, 110, 230, 255}
	healthLowColor   = color.RGBA{220, 50, 50, 255}
	healthEmptyColor = color.RGBA{0, 0, 0, 255}
)

// PlayerHealthIndicator отображает здоровье базы сеткой кружков.
type PlayerHealthIndicator struct {
	X, Y float32
	Font font.Face
}

func NewPlayerHealthIndicator(x, y float32, face font.Face) *PlayerHealthIndicator {
	return &PlayerHealthIndicator{X: x, Y: y, Font: face}
}

// HealthCellColor возвращает цвет j-го кружка. При половине здоровья и
// меньше все оставшиеся кружки красные.
func HealthCellColor(j, health, maxHealth int) color.RGBA {
	if j >= health {
		return healthEmptyColor
	}
	if health*2 <= maxHealth {
		return healthLowColor
	}
	return healthFullColor
}

func (i *PlayerHealthIndicator) Draw(screen *ebiten.Image, health, maxHealth int) {
	label := "Base " + strconv.Itoa(health) + "/" + strconv.Itoa(maxHealth)
	text.Draw(screen, label, i.Font, int(i.X), int(i.Y)+12, color.White)

	step := float32(HealthCircleRadius*2 + HealthCircleSpacing)
	top := i.Y + healthTextHeight
	for j := 0; j < maxHealth; j++ {
		cx := i.X + float32(j%HealthCols)*step + HealthCircleRadius
		cy := top + float32(j/HealthCols)*step + HealthCircleRadius
		vector.DrawFilledCircle(screen, cx, cy, HealthCircleRadius, HealthCellColor(j, health, maxHealth), true)
		vector.StrokeCircle(screen, cx, cy, HealthCircleRadius, 1, color.White, true)
	}
}

// GetHeight возвращает общую высоту индикатора.
func (i *PlayerHealthIndicator) GetHeight(maxHealth int) float32 {
	rows := (maxHealth + HealthCols - 1) / HealthCols
	return healthTextHeight + float32(rows)*(HealthCircleRadius*2+HealthCircleSpacing)
}
