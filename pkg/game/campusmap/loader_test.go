package campusmap

import (
	"errors"
	"io/fs"
	"testing"
	"testing/fstest"

	"campuslockdown/maps"
	"campuslockdown/pkg/engine/world"
	"campuslockdown/pkg/game/items"
	"campuslockdown/pkg/game/tiles"
)

const smallMap = `{
  "name": "Quad",
  "width": 5, "height": 4,
  "legend": {"g": "grass", "#": "wall", "L": "library_door", "~": {"kind": "water", "walkable": true, "name": "Shallows"}},
  "map_data": [
    "#####",
    "#gg~#",
    "#gLg#",
    "#####"
  ],
  "spawn_point": {"x": 1, "y": 1},
  "doors": [{"x": 2, "y": 2, "target": "library", "spawn": {"x": 3, "y": 3}}],
  "items": [{"x": 3, "y": 2, "kind": "potion"}]
}`

func parse(t *testing.T, doc string) *Map {
	t.Helper()
	m, err := Parse("test", []byte(doc), tiles.MustDefault())
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	return m
}

func TestParse_CellsMatchLegend(t *testing.T) {
	m := parse(t, smallMap)

	if m.Name != "Quad" || m.Width() != 5 || m.Height() != 4 {
		t.Fatalf("got %q %dx%d", m.Name, m.Width(), m.Height())
	}

	rows := []string{"#####", "#gg~#", "#gLg#", "#####"}
	want := map[rune]tiles.Kind{'#': tiles.Wall, 'g': tiles.Grass, 'L': tiles.LibraryDoor, '~': tiles.Water}
	for y, row := range rows {
		for x, c := range row {
			got := m.TileAt(world.Pt(x, y))
			if got.Kind != want[c] {
				t.Errorf("TileAt(%d,%d) = %s, want %s", x, y, got.Kind, want[c])
			}
		}
	}

	if m.TileAt(world.Pt(5, 0)) != nil {
		t.Error("out of bounds TileAt should be nil")
	}
}

func TestParse_SharedAndLocalTiles(t *testing.T) {
	m := parse(t, smallMap)
	reg := tiles.MustDefault()
	grass, _ := reg.Lookup(tiles.Grass)

	if m.TileAt(world.Pt(1, 1)) != grass || m.TileAt(world.Pt(2, 1)) != grass {
		t.Error("grass cells should share the registry tile")
	}

	shallows := m.TileAt(world.Pt(3, 1))
	if !shallows.Walkable || shallows.Name != "Shallows" {
		t.Errorf("legend override not applied: %+v", shallows)
	}
	water, _ := reg.Lookup(tiles.Water)
	if water.Walkable {
		t.Error("override leaked into the registry")
	}
}

func TestParse_DoorsAndItems(t *testing.T) {
	m := parse(t, smallMap)

	d, ok := m.DoorAt(world.Pt(2, 2))
	if !ok || d.Target != "library" || d.Spawn == nil || *d.Spawn != world.Pt(3, 3) {
		t.Errorf("DoorAt(2,2) = %+v, %v", d, ok)
	}
	if _, ok := m.DoorAt(world.Pt(1, 1)); ok {
		t.Error("grass cell should not be a door")
	}

	it := m.ItemAt(world.Pt(3, 2))
	if it == nil || it.Kind != items.Potion {
		t.Fatalf("ItemAt(3,2) = %v", it)
	}
	if m.TakeItem(world.Pt(3, 2)) != it {
		t.Error("TakeItem should return the placed item")
	}
	if !it.Collected() {
		t.Error("taken item should have no location")
	}
	if m.TakeItem(world.Pt(3, 2)) != nil {
		t.Error("second TakeItem should return nil")
	}
}

func TestParse_DefaultLegend(t *testing.T) {
	m := parse(t, `{"map_data": ["BBB", "BQB", "BPB"], "spawn_point": {"x": 1, "y": 2}}`)
	d, ok := m.DoorAt(world.Pt(1, 1))
	if !ok || d.Target != "library" || d.Spawn != nil {
		t.Errorf("implied door = %+v, %v", d, ok)
	}
	if m.Name != "test" {
		t.Errorf("Name = %q, want id fallback", m.Name)
	}
}

func TestParse_SpawnSearch(t *testing.T) {
	m := parse(t, `{"map_data": ["BBBBB", "BBBBB", "BBBBB", "BBBBB", "BBBBB", "BBBBB", "BBBBB", "BBBBP"]}`)
	if m.Spawn != world.Pt(4, 7) {
		t.Errorf("Spawn = %v, want (4, 7)", m.Spawn)
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want ErrorKind
	}{
		{"invalid json", `{"map_data": [`, ErrMalformed},
		{"empty", `{"map_data": []}`, ErrDimensions},
		{"ragged rows", `{"map_data": ["GGG", "GG"]}`, ErrDimensions},
		{"width mismatch", `{"width": 4, "map_data": ["GGG"]}`, ErrDimensions},
		{"height mismatch", `{"height": 2, "map_data": ["GGG"]}`, ErrDimensions},
		{"unknown char", `{"map_data": ["G!G"]}`, ErrUnknownLegend},
		{"unknown kind", `{"legend": {"x": "lava"}, "map_data": ["GxG"]}`, ErrUnknownLegend},
		{"door out of bounds", `{"map_data": ["GGG"], "doors": [{"x": 3, "y": 0, "target": "library"}]}`, ErrOutOfBounds},
		{"door without target", `{"map_data": ["GGG"], "doors": [{"x": 1, "y": 0}]}`, ErrMalformed},
		{"door on wall", `{"map_data": ["GBG"], "doors": [{"x": 1, "y": 0, "target": "x"}]}`, ErrUnwalkable},
		{"item out of bounds", `{"map_data": ["GGG"], "items": [{"x": 0, "y": 1, "kind": "key"}]}`, ErrOutOfBounds},
		{"item on water", `{"map_data": ["GWG"], "items": [{"x": 1, "y": 0, "kind": "key"}]}`, ErrUnwalkable},
		{"two items", `{"map_data": ["GGG"], "items": [{"x": 1, "y": 0, "kind": "key"}, {"x": 1, "y": 0, "kind": "potion"}]}`, ErrMalformed},
		{"bad item kind", `{"map_data": ["GGG"], "items": [{"x": 1, "y": 0, "kind": "sword"}]}`, ErrMalformed},
		{"spawn out of bounds", `{"map_data": ["GGG"], "spawn_point": {"x": 9, "y": 0}}`, ErrOutOfBounds},
		{"spawn on tree", `{"map_data": ["GTG"], "spawn_point": {"x": 1, "y": 0}}`, ErrUnwalkable},
		{"nowhere to stand", `{"map_data": ["BBB"]}`, ErrUnwalkable},
		{"scatter range too large", `{"map_data": ["GGGGGGGGG", "GGGGGGGGG", "GGGGGGGGG"], "scatter": {"seed": 1, "kinds": {"potion": [0, 9223372036854775807]}}}`, ErrMalformed},
		{"scatter more than cells", `{"map_data": ["GGG"], "scatter": {"kinds": {"key": [4, 4]}}}`, ErrMalformed},
		{"scatter negative range", `{"map_data": ["GGG"], "scatter": {"kinds": {"scroll": [-2, 1]}}}`, ErrMalformed},
		{"scatter inverted range", `{"map_data": ["GGG"], "scatter": {"kinds": {"scroll": [2, 1]}}}`, ErrMalformed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := Parse("bad", []byte(tt.doc), tiles.MustDefault())
			if err == nil {
				t.Fatalf("Parse succeeded, want %v", tt.want)
			}
			if m != nil {
				t.Error("failed Parse must not return a map")
			}
			if !errors.Is(err, tt.want) {
				t.Errorf("err = %v, want kind %v", err, tt.want)
			}
			var le *LoadError
			if !errors.As(err, &le) || le.MapID != "bad" {
				t.Errorf("err = %#v, want *LoadError for map bad", err)
			}
		})
	}
}

func TestLoad_FileNames(t *testing.T) {
	fsys := fstest.MapFS{
		"plain.json":       {Data: []byte(`{"map_data": ["G"]}`)},
		"library_map.json": {Data: []byte(`{"name": "Library", "map_data": ["E"]}`)},
	}
	reg := tiles.MustDefault()

	if _, err := Load(fsys, "plain", reg); err != nil {
		t.Errorf("Load(plain): %v", err)
	}
	m, err := Load(fsys, "library", reg)
	if err != nil || m.Name != "Library" {
		t.Errorf("Load(library) = %v, %v", m, err)
	}

	_, err = Load(fsys, "missing", reg)
	if !errors.Is(err, ErrNotFound) || !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Load(missing) = %v, want ErrNotFound wrapping fs.ErrNotExist", err)
	}
}

func TestLoad_ShippedMaps(t *testing.T) {
	reg := tiles.MustDefault()
	for _, id := range []string{maps.Campus, "library", "cafeteria", "dormitory", "parking"} {
		t.Run(id, func(t *testing.T) {
			m, err := Load(maps.FS, id, reg)
			if err != nil {
				t.Fatalf("Load: %v", err)
			}
			if !m.IsWalkable(m.Spawn) {
				t.Errorf("spawn %v is not walkable", m.Spawn)
			}
			if len(m.Doors()) == 0 {
				t.Error("map has no doors")
			}
			for _, d := range m.Doors() {
				if d.Return {
					continue
				}
				if _, err := Load(maps.FS, d.Target, reg); err != nil {
					t.Errorf("door %v leads to unloadable map %q: %v", d.Pos, d.Target, err)
				}
			}
		})
	}
}

func TestExitNear(t *testing.T) {
	m := parse(t, `{"map_data": ["GBG", "BQB", "GGG"], "spawn_point": {"x": 0, "y": 0}}`)
	if got := m.ExitNear(world.Pt(1, 1), world.None); got != world.Pt(1, 2) {
		t.Errorf("ExitNear = %v, want cell below the door", got)
	}

	plaza := parse(t, `{"map_data": ["GGG", "GQG", "GGG"], "spawn_point": {"x": 0, "y": 0}}`)
	tests := []struct {
		prefer world.Direction
		want   world.Point
	}{
		{world.None, world.Pt(1, 2)},
		{world.West, world.Pt(0, 1)},
		{world.North, world.Pt(1, 0)},
		{world.East.Opposite(), world.Pt(0, 1)},
	}
	for _, tt := range tests {
		if got := plaza.ExitNear(world.Pt(1, 1), tt.prefer); got != tt.want {
			t.Errorf("ExitNear(prefer %v) = %v, want %v", tt.prefer, got, tt.want)
		}
	}

	walled := parse(t, `{"map_data": ["BBB", "BQB", "BBG"], "spawn_point": {"x": 2, "y": 2}}`)
	if got := walled.ExitNear(world.Pt(1, 1), world.North); got != world.Pt(2, 2) {
		t.Errorf("ExitNear = %v, want diagonal (2, 2)", got)
	}
}

func TestSample(t *testing.T) {
	m := Sample(tiles.MustDefault())
	if m.Width() != 20 || m.Height() != 16 {
		t.Errorf("Sample size = %dx%d, want 20x16", m.Width(), m.Height())
	}
	if m.Spawn != world.Pt(8, 6) {
		t.Errorf("Sample spawn = %v, want (8, 6)", m.Spawn)
	}
	if m.ItemCount() < 16 || m.ItemCount() > 25 {
		t.Errorf("Sample scattered %d items, want 16..25", m.ItemCount())
	}
}
