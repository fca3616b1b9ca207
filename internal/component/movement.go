// internal/component/movement.go
package component

import (
	"math"

	"go-tile-defense/pkg/gridmap"
)

// Position — дробная позиция на карте в клетках.
type Position struct {
	X, Y float64
}

func PositionOf(c gridmap.Cell) Position {
	return Position{X: float64(c.X), Y: float64(c.Y)}
}

func (p Position) DistanceTo(o Position) float64 {
	return math.Hypot(o.X-p.X, o.Y-p.Y)
}

// Path — список точек пути и индекс следующей.
type Path struct {
	Cells        []gridmap.Cell
	CurrentIndex int
}

// Done reports whether every waypoint has been reached.
func (p *Path) Done() bool {
	return p.CurrentIndex >= len(p.Cells)
}

func (p *Path) Current() (gridmap.Cell, bool) {
	if p.Done() {
		return gridmap.Cell{}, false
	}
	return p.Cells[p.CurrentIndex], true
}
