// internal/ui/button.go
package ui

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// Button представляет собой кликабельную кнопку в UI.
type Button struct {
	Rect       image.Rectangle
	Text       string
	TextColor  color.Color
	BgColor    color.Color
	HoverColor color.Color
	Disabled   bool
	Font       font.Face
}

func NewButton(rect image.Rectangle, label string, face font.Face) *Button {
	return &Button{
		Rect:       rect,
		Text:       label,
		TextColor:  color.White,
		BgColor:    color.RGBA{45, 55, 70, 255},
		HoverColor: color.RGBA{70, 90, 115, 255},
		Font:       face,
	}
}

// Contains — точка (x, y) внутри кнопки
func (b *Button) Contains(x, y int) bool {
	return image.Pt(x, y).In(b.Rect)
}

// IsClicked проверяет клик по активной кнопке.
func (b *Button) IsClicked(x, y int) bool {
	return !b.Disabled && b.Contains(x, y)
}

func (b *Button) Draw(screen *ebiten.Image, mouseX, mouseY int) {
	bg := b.BgColor
	if !b.Disabled && b.Contains(mouseX, mouseY) {
		bg = b.HoverColor
	}
	x, y := float32(b.Rect.Min.X), float32(b.Rect.Min.Y)
	w, h := float32(b.Rect.Dx()), float32(b.Rect.Dy())
	vector.DrawFilledRect(screen, x, y, w, h, bg, false)
	vector.StrokeRect(screen, x, y, w, h, 1, color.RGBA{120, 130, 150, 255}, false)

	fg := b.TextColor
	if b.Disabled {
		fg = color.RGBA{120, 120, 120, 255}
	}
	bounds := text.BoundString(b.Font, b.Text)
	tx := b.Rect.Min.X + (b.Rect.Dx()-bounds.Dx())/2
	ty := b.Rect.Min.Y + (b.Rect.Dy()-bounds.Dy())/2 - bounds.Min.Y
	text.Draw(screen, b.Text, b.Font, tx, ty, fg)
}
