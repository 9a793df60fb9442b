package campusmap

import (
	"github.com/zyedidia/generic/mapset"

	"campuslockdown/pkg/engine/world"
)

// Reachable returns the walkable cells the player can reach from start
// without leaving the map. Door cells are included but not walked through,
// since stepping on one loads another map.
func Reachable(m *Map, start world.Point) mapset.Set[world.Point] {
	visited := mapset.New[world.Point]()
	if !m.IsWalkable(start) {
		return visited
	}
	queue := []world.Point{start}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		if visited.Has(current) {
			continue
		}
		visited.Put(current)
		if _, door := m.DoorAt(current); door && current != start {
			continue
		}
		for _, n := range m.grid.Neighbors(current) {
			if !visited.Has(n) && m.IsWalkable(n) {
				queue = append(queue, n)
			}
		}
	}
	return visited
}
