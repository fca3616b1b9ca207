// internal/ui/range_indicator.go
package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

var (
	rangeActiveColor   = color.RGBA{240, 240, 240, 255}
	rangeInactiveColor = color.RGBA{110, 110, 120, 255}
	strikeColor        = color.RGBA{220, 60, 60, 255}
)

// RangeIndicator отображает, включены ли круги дальности (клавиша R).
type RangeIndicator struct {
	X, Y float32
	Font font.Face
}

func NewRangeIndicator(x, y float32, face font.Face) *RangeIndicator {
	return &RangeIndicator{X: x, Y: y, Font: face}
}

func (i *RangeIndicator) Draw(screen *ebiten.Image, active bool) {
	label := "RNG"
	clr := rangeInactiveColor
	if active {
		clr = rangeActiveColor
	}
	b := text.BoundString(i.Font, label)
	x := int(i.X) - b.Dx()/2
	y := int(i.Y) + b.Dy()/2
	text.Draw(screen, label, i.Font, x, y, clr)

	// перечёркиваем, если выключено
	if !active {
		vector.StrokeLine(screen, float32(x), float32(y), float32(x+b.Dx()), float32(y-b.Dy()), 2, strikeColor, true)
	}
}
