// pkg/render/color.go
package render

import "image/color"

// MapColors holds the colors needed to prerender the static tile map.
type MapColors struct {
	BackgroundColor color.RGBA
	PathColor       color.RGBA
	PlaceableColor  color.RGBA
	BlockedColor    color.RGBA
	GoalColor       color.RGBA
	GridLineColor   color.RGBA
	TextDarkColor   color.RGBA
	TextLightColor  color.RGBA
	StrokeWidth     float32
}

// DarkenColor затемняет цвет
func DarkenColor(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * 0.5),
		G: uint8(float64(c.G) * 0.5),
		B: uint8(float64(c.B) * 0.5),
		A: c.A,
	}
}

// LightenColor добавляет delta к каждому каналу, не выше 255.
func LightenColor(c color.RGBA, delta int) color.RGBA {
	return color.RGBA{
		R: uint8(min(255, int(c.R)+delta)),
		G: uint8(min(255, int(c.G)+delta)),
		B: uint8(min(255, int(c.B)+delta)),
		A: c.A,
	}
}

// WithAlpha возвращает c с другой прозрачностью.
func WithAlpha(c color.RGBA, a uint8) color.RGBA {
	c.A = a
	return c
}

// Contrast выбирает тёмный или светлый текст под фон.
func Contrast(bg color.RGBA, dark, light color.RGBA) color.RGBA {
	if (int(bg.R)+int(bg.G)+int(bg.B))/3 > 128 {
		return dark
	}
	return light
}
