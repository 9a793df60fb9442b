// Package campusmap loads tile maps from JSON documents and answers queries
// about their cells, doors and items.
package campusmap

import (
	"sort"

	"campuslockdown/pkg/engine/world"
	"campuslockdown/pkg/game/items"
	"campuslockdown/pkg/game/tiles"
)

// Door is a transition from a cell of this map to another map. Spawn is nil
// when the target map's default spawn should be used. Return doors lead back
// to wherever the player last entered from.
type Door struct {
	Pos    world.Point
	Target string
	Spawn  *world.Point
	Return bool
}

// Map is one explorable area. Tiles are shared registry pointers; only the
// item placements change after loading.
type Map struct {
	ID    string
	Name  string
	Spawn world.Point

	grid  *world.Grid[*tiles.Tile]
	doors map[world.Point]Door
	items map[world.Point]*items.Item
}

func newMap(id, name string, width, height int) *Map {
	return &Map{
		ID:    id,
		Name:  name,
		grid:  world.NewGrid[*tiles.Tile](width, height),
		doors: make(map[world.Point]Door),
		items: make(map[world.Point]*items.Item),
	}
}

// Width returns the number of columns.
func (m *Map) Width() int { return m.grid.Width() }

// Height returns the number of rows.
func (m *Map) Height() int { return m.grid.Height() }

// InBounds reports whether p is inside the map.
func (m *Map) InBounds(p world.Point) bool { return m.grid.InBounds(p) }

// TileAt returns the tile at p, or nil when p is out of bounds.
func (m *Map) TileAt(p world.Point) *tiles.Tile {
	return m.grid.Get(p)
}

// IsWalkable reports whether the player may stand on p. Out-of-bounds cells
// are never walkable.
func (m *Map) IsWalkable(p world.Point) bool {
	t := m.grid.Get(p)
	return t != nil && t.Walkable
}

// DoorAt returns the door at p. Explicit door entries win over doors implied
// by the tile kind.
func (m *Map) DoorAt(p world.Point) (Door, bool) {
	if d, ok := m.doors[p]; ok {
		return d, true
	}
	t := m.grid.Get(p)
	if t.IsDoor() {
		return Door{Pos: p, Target: t.Door.Map, Return: t.Door.Return}, true
	}
	return Door{}, false
}

// Doors returns every door cell, explicit or implied, in row-major order.
func (m *Map) Doors() []Door {
	var out []Door
	m.grid.ForEach(func(p world.Point, _ *tiles.Tile) {
		if d, ok := m.DoorAt(p); ok {
			out = append(out, d)
		}
	})
	return out
}

// ItemAt returns the item lying on p, or nil.
func (m *Map) ItemAt(p world.Point) *items.Item {
	return m.items[p]
}

// TakeItem removes the item at p from the map and returns it. A second call
// for the same cell returns nil.
func (m *Map) TakeItem(p world.Point) *items.Item {
	it, ok := m.items[p]
	if !ok {
		return nil
	}
	delete(m.items, p)
	it.Location = nil
	return it
}

// Items returns the items still on the map in row-major order.
func (m *Map) Items() []*items.Item {
	out := make([]*items.Item, 0, len(m.items))
	for _, it := range m.items {
		out = append(out, it)
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i].Location, out[j].Location
		if a.Y != b.Y {
			return a.Y < b.Y
		}
		return a.X < b.X
	})
	return out
}

// ItemCount returns the number of items still on the map.
func (m *Map) ItemCount() int {
	return len(m.items)
}

// ForEachTile visits every cell row by row.
func (m *Map) ForEachTile(fn func(p world.Point, t *tiles.Tile)) {
	m.grid.ForEach(fn)
}

// PixelSize returns the map size in pixels for the given tile size.
func (m *Map) PixelSize(tileSize int) (w, h int) {
	return m.Width() * tileSize, m.Height() * tileSize
}

// ExitNear finds a walkable, non-door cell next to p. The cell in the
// preferred direction is tried first, then the cell below, then the other
// orthogonal and diagonal neighbours. Falls back to p itself and then to
// the map spawn. Pass world.None for no preference.
func (m *Map) ExitNear(p world.Point, prefer world.Direction) world.Point {
	offsets := []world.Point{
		{X: 0, Y: 1}, {X: 1, Y: 0}, {X: 0, Y: -1}, {X: -1, Y: 0},
		{X: 1, Y: 1}, {X: -1, Y: -1}, {X: 1, Y: -1}, {X: -1, Y: 1},
	}
	if prefer.IsValid() {
		dx, dy := prefer.Delta()
		offsets = append([]world.Point{{X: dx, Y: dy}}, offsets...)
	}
	for _, o := range offsets {
		c := world.Pt(p.X+o.X, p.Y+o.Y)
		if _, door := m.DoorAt(c); m.IsWalkable(c) && !door {
			return c
		}
	}
	if m.IsWalkable(p) {
		return p
	}
	return m.Spawn
}

func (m *Map) placeItem(it *items.Item) {
	m.items[*it.Location] = it
}
