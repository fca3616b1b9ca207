package render

import (
	"image/color"
	"testing"

	"go-tile-defense/pkg/gridmap"
)

func TestLayoutRoundTrip(t *testing.T) {
	l := Layout{OriginX: 16, OriginY: 48, TileSize: 32}

	tests := []struct {
		px, py int
		want   gridmap.Cell
	}{
		{16, 48, gridmap.Cell{X: 0, Y: 0}},
		{47, 79, gridmap.Cell{X: 0, Y: 0}},
		{48, 80, gridmap.Cell{X: 1, Y: 1}},
		{15, 48, gridmap.Cell{X: -1, Y: 0}},
		{16 + 32*9 + 5, 48 + 32*20 + 5, gridmap.Cell{X: 9, Y: 20}},
	}
	for _, tt := range tests {
		if got := l.CellAt(tt.px, tt.py); got != tt.want {
			t.Errorf("CellAt(%d,%d) = %v, want %v", tt.px, tt.py, got, tt.want)
		}
	}

	x, y := l.CellRect(gridmap.Cell{X: 2, Y: 3})
	if x != 80 || y != 144 {
		t.Errorf("CellRect = (%v,%v)", x, y)
	}
	cx, cy := l.Center(2, 3)
	if cx != 96 || cy != 160 {
		t.Errorf("Center = (%v,%v)", cx, cy)
	}
}

func TestColorHelpers(t *testing.T) {
	c := color.RGBA{200, 100, 20, 255}
	if got := LightenColor(c, 80); got != (color.RGBA{255, 180, 100, 255}) {
		t.Errorf("LightenColor = %v", got)
	}
	if got := DarkenColor(c); got != (color.RGBA{100, 50, 10, 255}) {
		t.Errorf("DarkenColor = %v", got)
	}
	if got := WithAlpha(c, 40); got.A != 40 || got.R != 200 {
		t.Errorf("WithAlpha = %v", got)
	}
	dark, light := color.RGBA{0, 0, 0, 255}, color.RGBA{255, 255, 255, 255}
	if Contrast(color.RGBA{240, 240, 240, 255}, dark, light) != dark {
		t.Error("bright background needs dark text")
	}
	if Contrast(color.RGBA{20, 20, 20, 255}, dark, light) != light {
		t.Error("dark background needs light text")
	}
}
