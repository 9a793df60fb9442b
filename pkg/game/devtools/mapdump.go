// Package devtools provides developer tools for testing and debugging.
package devtools

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	"campuslockdown/pkg/engine/world"
	"campuslockdown/pkg/game/items"
	"campuslockdown/pkg/game/state"
	"campuslockdown/pkg/game/tiles"
)

const mapDumpFilename = "map.txt"

// itemSymbols mark items in the dumped grid
var itemSymbols = map[items.Kind]rune{
	items.Potion: '!',
	items.Scroll: '~',
	items.Key:    '$',
}

// cellSymbol returns the symbol for p: player, item, or the tile's legend char.
func cellSymbol(g *state.Game, p world.Point) rune {
	if p == g.Player.Cell() {
		return '@'
	}
	if it := g.Map.ItemAt(p); it != nil {
		return itemSymbols[it.Kind]
	}
	t := g.Map.TileAt(p)
	if t == nil {
		return ' '
	}
	return t.Char
}

// WriteMapGrid writes the current map, one row per line.
func WriteMapGrid(w io.Writer, g *state.Game) {
	for y := 0; y < g.Map.Height(); y++ {
		row := make([]rune, g.Map.Width())
		for x := range row {
			row[x] = cellSymbol(g, world.Pt(x, y))
		}
		fmt.Fprintln(w, string(row))
	}
}

// DumpMapToFile writes a debug dump of the current map to map.txt in the
// game's dump directory: metadata, legend, grid, doors, items and inventory.
func DumpMapToFile(g *state.Game) (string, error) {
	if g.Map == nil {
		return "", fmt.Errorf("no map")
	}

	absPath, err := filepath.Abs(filepath.Join(g.DumpDir, mapDumpFilename))
	if err != nil {
		return "", err
	}

	f, err := os.Create(absPath)
	if err != nil {
		return "", err
	}
	defer f.Close()

	m := g.Map
	pos := g.Player.Cell()

	fmt.Fprintln(f, "=== MAP DUMP ===")
	fmt.Fprintln(f, "")
	fmt.Fprintln(f, "--- Metadata ---")
	fmt.Fprintf(f, "map_id: %s\n", m.ID)
	fmt.Fprintf(f, "map_name: %q\n", m.Name)
	fmt.Fprintf(f, "width: %d\n", m.Width())
	fmt.Fprintf(f, "height: %d\n", m.Height())
	fmt.Fprintln(f, "coordinate_system: x,y (0-based, x=column, y=row)")
	fmt.Fprintf(f, "spawn: %d,%d\n", m.Spawn.X, m.Spawn.Y)
	fmt.Fprintf(f, "player: %d,%d\n", pos.X, pos.Y)
	fmt.Fprintf(f, "player_state: %s\n", g.Player.State())
	fmt.Fprintf(f, "health: %d\n", g.Player.Health())
	fmt.Fprintf(f, "flashlight: %v\n", g.Player.FlashlightOn())
	fmt.Fprintf(f, "elapsed: %.2f\n", g.Elapsed)
	if g.ReturnTo != nil {
		fmt.Fprintf(f, "return_to: %s %d,%d\n", g.ReturnTo.MapID, g.ReturnTo.Cell.X, g.ReturnTo.Cell.Y)
	}
	fmt.Fprintln(f, "")

	fmt.Fprintln(f, "--- Legend ---")
	used := make(map[rune]*tiles.Tile)
	m.ForEachTile(func(_ world.Point, t *tiles.Tile) {
		used[t.Char] = t
	})
	chars := make([]rune, 0, len(used))
	for c := range used {
		chars = append(chars, c)
	}
	sort.Slice(chars, func(i, j int) bool { return chars[i] < chars[j] })
	for _, c := range chars {
		t := used[c]
		fmt.Fprintf(f, "%c = %s (walkable: %v)\n", c, t.Kind, t.Walkable)
	}
	fmt.Fprintln(f, "@ = player  ! = potion  ~ = scroll  $ = key")
	fmt.Fprintln(f, "")

	fmt.Fprintln(f, "--- Map ---")
	WriteMapGrid(f, g)
	fmt.Fprintln(f, "")

	fmt.Fprintln(f, "Doors:")
	for _, d := range m.Doors() {
		target := d.Target
		if d.Return {
			target = "(return)"
		}
		fmt.Fprintf(f, "  x: %d y: %d target: %s\n", d.Pos.X, d.Pos.Y, target)
	}
	fmt.Fprintln(f, "")

	fmt.Fprintln(f, "Items on map:")
	for _, it := range m.Items() {
		fmt.Fprintf(f, "  x: %d y: %d kind: %s name: %q\n", it.Location.X, it.Location.Y, it.Kind, it.Name)
	}
	fmt.Fprintln(f, "")

	fmt.Fprintln(f, "Inventory:")
	owned := g.Player.Inventory().Items()
	if len(owned) == 0 {
		fmt.Fprintln(f, "  (none)")
	}
	for _, it := range owned {
		fmt.Fprintf(f, "  kind: %s name: %q\n", it.Kind, it.Name)
	}
	fmt.Fprintln(f, "")

	fmt.Fprintln(f, "=== END MAP DUMP ===")

	if err := f.Sync(); err != nil {
		return absPath, err
	}
	return absPath, nil
}
