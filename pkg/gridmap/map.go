// pkg/gridmap/map.go
package gridmap

import "fmt"

type TileType int

const (
	Path TileType = iota
	Placeable
	Blocked
	Goal
)

func (t TileType) String() string {
	switch t {
	case Path:
		return "path"
	case Placeable:
		return "placeable"
	case Blocked:
		return "blocked"
	case Goal:
		return "goal"
	default:
		return fmt.Sprintf("tile(%d)", int(t))
	}
}

// Glyphs used by Parse and Rows.
const (
	GlyphPath      = '.'
	GlyphPlaceable = '#'
	GlyphBlocked   = 'x'
	GlyphGoal      = 'G'
)

// Map — неизменяемая прямоугольная сетка клеток с одной целью.
type Map struct {
	width  int
	height int
	tiles  [][]TileType // [y][x]
	goal   Cell
}

// New builds a map from a row-major tile grid. Every row must have the same
// width and the grid must contain exactly one Goal tile.
func New(tiles [][]TileType) (*Map, error) {
	if len(tiles) == 0 || len(tiles[0]) == 0 {
		return nil, fmt.Errorf("empty tile grid")
	}
	m := &Map{
		width:  len(tiles[0]),
		height: len(tiles),
		tiles:  make([][]TileType, len(tiles)),
	}
	goals := 0
	for y, row := range tiles {
		if len(row) != m.width {
			return nil, fmt.Errorf("row %d has width %d, want %d", y, len(row), m.width)
		}
		m.tiles[y] = append([]TileType(nil), row...)
		for x, t := range row {
			if t == Goal {
				m.goal = Cell{X: x, Y: y}
				goals++
			}
		}
	}
	if goals != 1 {
		return nil, fmt.Errorf("map must have exactly one goal tile, found %d", goals)
	}
	return m, nil
}

// Parse builds a map from text rows using the Glyph* characters.
func Parse(rows []string) (*Map, error) {
	tiles := make([][]TileType, len(rows))
	for y, row := range rows {
		tiles[y] = make([]TileType, 0, len(row))
		for x, r := range row {
			switch r {
			case GlyphPath:
				tiles[y] = append(tiles[y], Path)
			case GlyphPlaceable:
				tiles[y] = append(tiles[y], Placeable)
			case GlyphBlocked:
				tiles[y] = append(tiles[y], Blocked)
			case GlyphGoal:
				tiles[y] = append(tiles[y], Goal)
			default:
				return nil, fmt.Errorf("unknown tile %q at (%d,%d)", r, x, y)
			}
		}
	}
	return New(tiles)
}

func (m *Map) Width() int  { return m.width }
func (m *Map) Height() int { return m.height }
func (m *Map) Goal() Cell  { return m.goal }

func (m *Map) InBounds(c Cell) bool {
	return c.X >= 0 && c.Y >= 0 && c.X < m.width && c.Y < m.height
}

// Tile возвращает клетку (x, y). Всё за пределами сетки — Blocked.
func (m *Map) Tile(x, y int) TileType {
	if !m.InBounds(Cell{X: x, Y: y}) {
		return Blocked
	}
	return m.tiles[y][x]
}

// IsWalkable — могут ли наземные враги пройти по клетке.
func (m *Map) IsWalkable(c Cell) bool {
	t := m.Tile(c.X, c.Y)
	return t == Path || t == Goal
}

func (m *Map) IsPlaceable(c Cell) bool {
	return m.Tile(c.X, c.Y) == Placeable
}

// Rows переводит карту обратно в строки символов.
func (m *Map) Rows() []string {
	out := make([]string, m.height)
	buf := make([]rune, m.width)
	for y := 0; y < m.height; y++ {
		for x := 0; x < m.width; x++ {
			switch m.tiles[y][x] {
			case Path:
				buf[x] = GlyphPath
			case Placeable:
				buf[x] = GlyphPlaceable
			case Blocked:
				buf[x] = GlyphBlocked
			case Goal:
				buf[x] = GlyphGoal
			}
		}
		out[y] = string(buf)
	}
	return out
}
