package campusmap

import (
	"encoding/json"
	"errors"
	"fmt"
	"image/color"
	"io/fs"
	"strings"
	"unicode/utf8"

	"github.com/zyedidia/generic/mapset"

	"campuslockdown/pkg/engine/world"
	"campuslockdown/pkg/game/items"
	"campuslockdown/pkg/game/tiles"
)

// mapData is the on-disk JSON document
type mapData struct {
	Name       string                 `json:"name"`
	Width      int                    `json:"width"`
	Height     int                    `json:"height"`
	Legend     map[string]legendEntry `json:"legend"`
	Rows       []string               `json:"map_data"`
	SpawnPoint *world.Point           `json:"spawn_point"`
	Doors      []doorData             `json:"doors"`
	Items      []itemData             `json:"items"`
	Scatter    *ScatterConfig         `json:"scatter"`
}

type doorData struct {
	X      int          `json:"x"`
	Y      int          `json:"y"`
	Target string       `json:"target"`
	Spawn  *world.Point `json:"spawn"`
	Return bool         `json:"return"`
}

type itemData struct {
	X           int    `json:"x"`
	Y           int    `json:"y"`
	Kind        string `json:"kind"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// legendEntry is either a bare kind name or an object overriding attributes
// of that kind for this map only.
type legendEntry struct {
	Kind     tiles.Kind `json:"kind"`
	Name     string     `json:"name"`
	Walkable *bool      `json:"walkable"`
	Color    *[3]int    `json:"color"`
}

func (e *legendEntry) UnmarshalJSON(b []byte) error {
	var kind string
	if err := json.Unmarshal(b, &kind); err == nil {
		*e = legendEntry{Kind: tiles.Kind(kind)}
		return nil
	}
	type plain legendEntry
	var p plain
	if err := json.Unmarshal(b, &p); err != nil {
		return fmt.Errorf("legend entry must be a kind name or an object: %w", err)
	}
	*e = legendEntry(p)
	return nil
}

// Load reads the map with the given id from fsys. It looks for "<id>.json"
// and then "<id>_map.json".
func Load(fsys fs.FS, id string, reg *tiles.Registry) (*Map, error) {
	var data []byte
	var err error
	for _, name := range []string{id + ".json", id + "_map.json"} {
		data, err = fs.ReadFile(fsys, name)
		if err == nil {
			break
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, &LoadError{MapID: id, Kind: ErrNotFound, Err: fmt.Errorf("failed to read map file %s: %w", name, err)}
		}
	}
	if err != nil {
		return nil, &LoadError{MapID: id, Kind: ErrNotFound, Err: err}
	}
	return Parse(id, data, reg)
}

// Parse builds a Map from a JSON document. It never returns a partially
// built map: either every check passes or a *LoadError is returned.
func Parse(id string, data []byte, reg *tiles.Registry) (*Map, error) {
	var doc mapData
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, &LoadError{MapID: id, Kind: ErrMalformed, Err: fmt.Errorf("failed to parse map file: %w", err)}
	}

	width, height, err := validateDimensions(id, &doc)
	if err != nil {
		return nil, err
	}

	legend, err := buildLegend(id, doc.Legend, reg)
	if err != nil {
		return nil, err
	}

	name := doc.Name
	if name == "" {
		name = id
	}
	m := newMap(id, name, width, height)

	for y, row := range doc.Rows {
		x := 0
		for _, c := range row {
			t, ok := legend[c]
			if !ok {
				t, ok = reg.ByChar(c)
			}
			if !ok {
				return nil, loadErr(id, ErrUnknownLegend, "character %q at %v has no legend entry", c, world.Pt(x, y))
			}
			m.grid.Set(world.Pt(x, y), t)
			x++
		}
	}

	if err := addDoors(m, doc.Doors); err != nil {
		return nil, err
	}

	spawn, err := resolveSpawn(m, doc.SpawnPoint)
	if err != nil {
		return nil, err
	}
	m.Spawn = spawn

	if err := addItems(m, doc.Items); err != nil {
		return nil, err
	}

	if doc.Scatter != nil {
		if err := Scatter(m, *doc.Scatter); err != nil {
			return nil, &LoadError{MapID: id, Kind: ErrMalformed, Err: err}
		}
	}

	return m, nil
}

func validateDimensions(id string, doc *mapData) (width, height int, err error) {
	if len(doc.Rows) == 0 {
		return 0, 0, loadErr(id, ErrDimensions, "map_data is empty")
	}
	height = len(doc.Rows)
	width = utf8.RuneCountInString(doc.Rows[0])
	if width == 0 {
		return 0, 0, loadErr(id, ErrDimensions, "row 0 is empty")
	}
	for y, row := range doc.Rows {
		if n := utf8.RuneCountInString(row); n != width {
			return 0, 0, loadErr(id, ErrDimensions, "row %d width mismatch: expected %d, got %d", y, width, n)
		}
	}
	if doc.Width != 0 && doc.Width != width {
		return 0, 0, loadErr(id, ErrDimensions, "width is %d but rows are %d wide", doc.Width, width)
	}
	if doc.Height != 0 && doc.Height != height {
		return 0, 0, loadErr(id, ErrDimensions, "height is %d but there are %d rows", doc.Height, height)
	}
	return width, height, nil
}

// buildLegend resolves the map's own legend. Characters it doesn't mention
// fall back to the registry's characters.
func buildLegend(id string, entries map[string]legendEntry, reg *tiles.Registry) (map[rune]*tiles.Tile, error) {
	legend := make(map[rune]*tiles.Tile, len(entries))
	for key, e := range entries {
		if utf8.RuneCountInString(key) != 1 {
			return nil, loadErr(id, ErrMalformed, "legend key %q must be a single character", key)
		}
		c, _ := utf8.DecodeRuneInString(key)

		base, err := reg.Lookup(tiles.Kind(strings.ToLower(string(e.Kind))))
		if err != nil {
			return nil, &LoadError{MapID: id, Kind: ErrUnknownLegend, Err: fmt.Errorf("legend %q: %w", key, err)}
		}

		if e.Walkable == nil && e.Color == nil && e.Name == "" {
			legend[c] = base
			continue
		}

		var clr *color.RGBA
		if e.Color != nil {
			for _, v := range e.Color {
				if v < 0 || v > 255 {
					return nil, loadErr(id, ErrMalformed, "legend %q: color component %d out of range", key, v)
				}
			}
			clr = &color.RGBA{R: uint8(e.Color[0]), G: uint8(e.Color[1]), B: uint8(e.Color[2]), A: 255}
		}
		local := base.WithOverrides(e.Walkable, clr)
		local.Char = c
		if e.Name != "" {
			local.Name = e.Name
		}
		legend[c] = local
	}
	return legend, nil
}

func addDoors(m *Map, doors []doorData) error {
	seen := mapset.New[world.Point]()
	for i, d := range doors {
		p := world.Pt(d.X, d.Y)
		if !m.InBounds(p) {
			return loadErr(m.ID, ErrOutOfBounds, "door %d at %v", i, p)
		}
		if seen.Has(p) {
			return loadErr(m.ID, ErrMalformed, "two doors at %v", p)
		}
		if !m.IsWalkable(p) {
			return loadErr(m.ID, ErrUnwalkable, "door %d at %v is on a %s tile", i, p, m.TileAt(p).Kind)
		}
		if d.Target == "" && !d.Return {
			return loadErr(m.ID, ErrMalformed, "door %d at %v has no target", i, p)
		}
		if d.Spawn != nil && (d.Spawn.X < 0 || d.Spawn.Y < 0) {
			return loadErr(m.ID, ErrOutOfBounds, "door %d spawn %v", i, *d.Spawn)
		}
		seen.Put(p)
		m.doors[p] = Door{Pos: p, Target: d.Target, Spawn: d.Spawn, Return: d.Return}
	}
	return nil
}

func addItems(m *Map, placements []itemData) error {
	for i, it := range placements {
		p := world.Pt(it.X, it.Y)
		if !m.InBounds(p) {
			return loadErr(m.ID, ErrOutOfBounds, "item %d at %v", i, p)
		}
		if !m.IsWalkable(p) {
			return loadErr(m.ID, ErrUnwalkable, "item %d at %v is on a %s tile", i, p, m.TileAt(p).Kind)
		}
		if m.ItemAt(p) != nil {
			return loadErr(m.ID, ErrMalformed, "two items at %v", p)
		}
		kind, err := items.ParseKind(it.Kind)
		if err != nil {
			return &LoadError{MapID: m.ID, Kind: ErrMalformed, Err: fmt.Errorf("item %d: %w", i, err)}
		}
		m.placeItem(items.New(kind, p, it.Name, it.Description))
	}
	return nil
}

// resolveSpawn validates an explicit spawn point, or searches near the map
// centre for a walkable cell when none is given.
func resolveSpawn(m *Map, sp *world.Point) (world.Point, error) {
	if sp != nil {
		if !m.InBounds(*sp) {
			return world.Point{}, loadErr(m.ID, ErrOutOfBounds, "spawn point %v", *sp)
		}
		if !m.IsWalkable(*sp) {
			return world.Point{}, loadErr(m.ID, ErrUnwalkable, "spawn point %v is on a %s tile", *sp, m.TileAt(*sp).Kind)
		}
		return *sp, nil
	}

	c := m.grid.Center()
	for y := c.Y - 2; y <= c.Y+2; y++ {
		for x := c.X - 2; x <= c.X+2; x++ {
			if m.IsWalkable(world.Pt(x, y)) {
				return world.Pt(x, y), nil
			}
		}
	}
	var found *world.Point
	m.grid.ForEach(func(p world.Point, t *tiles.Tile) {
		if found == nil && t.Walkable {
			found = &p
		}
	})
	if found == nil {
		return world.Point{}, loadErr(m.ID, ErrUnwalkable, "no walkable cell for a spawn point")
	}
	return *found, nil
}
