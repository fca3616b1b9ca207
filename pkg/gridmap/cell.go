// pkg/gridmap/cell.go
package gridmap

import "math"

// Cell is an integer tile coordinate. It is comparable and used as a map key.
type Cell struct {
	X int
	Y int
}

// порядок соседей решает ничьи в ShortestPath: влево, вправо, вверх, вниз
var directions = [4]Cell{
	{X: -1, Y: 0},
	{X: 1, Y: 0},
	{X: 0, Y: -1},
	{X: 0, Y: 1},
}

func (c Cell) Add(o Cell) Cell {
	return Cell{X: c.X + o.X, Y: c.Y + o.Y}
}

// Neighbors возвращает четырёх соседей в порядке поиска.
func (c Cell) Neighbors() [4]Cell {
	var out [4]Cell
	for i, d := range directions {
		out[i] = c.Add(d)
	}
	return out
}

// Distance is the Euclidean distance between cell origins in tile units.
func (c Cell) Distance(o Cell) float64 {
	dx := float64(o.X - c.X)
	dy := float64(o.Y - c.Y)
	return math.Sqrt(dx*dx + dy*dy)
}

// ToPixel переводит угол клетки в пиксели экрана.
func (c Cell) ToPixel(tileSize float64) (float64, float64) {
	return float64(c.X) * tileSize, float64(c.Y) * tileSize
}

// CellAt возвращает клетку, в которой лежит пиксель (px, py).
func CellAt(px, py, tileSize float64) Cell {
	return Cell{X: int(math.Floor(px / tileSize)), Y: int(math.Floor(py / tileSize))}
}
