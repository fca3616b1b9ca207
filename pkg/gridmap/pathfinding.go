// pkg/gridmap/pathfinding.go
package gridmap

// ShortestPath ищет кратчайший путь по четырём направлениям от from до to
// по клеткам Path и Goal. Оба конца входят в путь. Если конец непроходим
// или пути нет, результат пустой.
func (m *Map) ShortestPath(from, to Cell) []Cell {
	if !m.IsWalkable(from) || !m.IsWalkable(to) {
		return nil
	}
	if from == to {
		return []Cell{from}
	}

	parent := map[Cell]Cell{from: from}
	queue := []Cell{from}
	head := 0
	for head < len(queue) {
		current := queue[head]
		head++
		for _, next := range current.Neighbors() {
			if _, seen := parent[next]; seen {
				continue
			}
			if !m.IsWalkable(next) {
				continue
			}
			parent[next] = current
			if next == to {
				return reconstructPath(parent, from, to)
			}
			queue = append(queue, next)
		}
	}
	return nil // Нет пути
}

func reconstructPath(parent map[Cell]Cell, from, to Cell) []Cell {
	path := []Cell{}
	for c := to; c != from; c = parent[c] {
		path = append(path, c)
	}
	path = append(path, from)
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
