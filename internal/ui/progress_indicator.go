// internal/ui/progress_indicator.go
package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-tile-defense/internal/utils"
)

const (
	progressBarWidth  = 150
	progressBarHeight = 10
	waveRectWidth     = 16
	waveRectHeight    = 10
	waveRectGap       = 6
	progressBorder    = 1
)

var progressFillColor = color.RGBA{70, 100, 120, 220}

// StageProgressIndicator показывает, сколько врагов уже вышло, и по
// квадрату на волну, закрашенному после её зачистки.
type StageProgressIndicator struct {
	X, Y float32
}

func NewStageProgressIndicator(x, y float32) *StageProgressIndicator {
	return &StageProgressIndicator{X: x, Y: y}
}

// FillRatio — spawned/total в пределах [0, 1].
func FillRatio(spawned, total int) float64 {
	if total <= 0 {
		return 0
	}
	return utils.Clamp(float64(spawned)/float64(total), 0, 1)
}

func (i *StageProgressIndicator) Draw(screen *ebiten.Image, spawned, totalSpawns, cleared, waves int) {
	vector.StrokeRect(screen, i.X, i.Y, progressBarWidth, progressBarHeight, progressBorder, color.White, true)
	if w := float32(float64(progressBarWidth-2*progressBorder) * FillRatio(spawned, totalSpawns)); w > 0 {
		vector.DrawFilledRect(screen, i.X+progressBorder, i.Y+progressBorder, w, progressBarHeight-2*progressBorder, progressFillColor, true)
	}

	rectY := i.Y + progressBarHeight + 8
	for j := 0; j < waves; j++ {
		rx := i.X + float32(j)*(waveRectWidth+waveRectGap)
		vector.StrokeRect(screen, rx, rectY, waveRectWidth, waveRectHeight, progressBorder, color.White, true)
		if j < cleared {
			vector.DrawFilledRect(screen, rx+progressBorder, rectY+progressBorder, waveRectWidth-2*progressBorder, waveRectHeight-2*progressBorder, progressFillColor, true)
		}
	}
}
