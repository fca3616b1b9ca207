// internal/ui/wave_indicator.go
package ui

import (
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
)

// WaveIndicator отображает номер текущей волны римскими цифрами.
type WaveIndicator struct {
	X, Y         float32
	Font         font.Face
	Color        color.Color
	FinalColor   color.Color
	OutlineColor color.Color
}

func NewWaveIndicator(x, y float32, face font.Face) *WaveIndicator {
	return &WaveIndicator{
		X:            x,
		Y:            y,
		Font:         face,
		Color:        color.RGBA{70, 130, 180, 255},
		FinalColor:   color.RGBA{220, 60, 60, 255},
		OutlineColor: color.White,
	}
}

// toRoman конвертирует целое число в римское.
func toRoman(num int) string {
	if num <= 0 {
		return ""
	}
	val := []int{1000, 900, 500, 400, 100, 90, 50, 40, 10, 9, 5, 4, 1}
	syb := []string{"M", "CM", "D", "CD", "C", "XC", "L", "XL", "X", "IX", "V", "IV", "I"}

	var roman strings.Builder
	for i := 0; i < len(val); i++ {
		for num >= val[i] {
			roman.WriteString(syb[i])
			num -= val[i]
		}
	}
	return roman.String()
}

// WaveLabel форматирует "волна/всего", например "II/III".
func WaveLabel(wave, total int) string {
	if wave <= 0 {
		return ""
	}
	return toRoman(wave) + "/" + toRoman(total)
}

// Draw рисует номер волны, последняя волна выделяется цветом.
func (i *WaveIndicator) Draw(screen *ebiten.Image, wave, total int) {
	label := WaveLabel(wave, total)
	if label == "" {
		return
	}
	clr := i.Color
	if wave == total {
		clr = i.FinalColor
	}
	b := text.BoundString(i.Font, label)
	x := int(i.X) - b.Dx()/2
	y := int(i.Y)
	for _, d := range [][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}} {
		text.Draw(screen, label, i.Font, x+d[0], y+d[1], i.OutlineColor)
	}
	text.Draw(screen, label, i.Font, x, y, clr)
}
