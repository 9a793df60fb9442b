package renderer

import (
	"image/color"

	"campuslockdown/pkg/engine/world"
	"campuslockdown/pkg/game/camera"
	"campuslockdown/pkg/game/items"
	"campuslockdown/pkg/game/player"
	"campuslockdown/pkg/game/state"
	"campuslockdown/pkg/game/tiles"
)

// TileView is one visible map cell, positioned in screen pixels
type TileView struct {
	Pos      world.Point
	X, Y     float64
	Tile     *tiles.Tile
	Item     *items.Item
	Darkness uint8
}

// InventoryLine is one entry of the inventory panel: the carried items that
// share a kind, name and description
type InventoryLine struct {
	Kind        items.Kind
	Name        string
	Description string
	Count       int
	Color       color.RGBA
}

// Frame is everything a backend needs to draw one frame. Building it reads
// the game state but never changes it.
type Frame struct {
	TileSize int
	Camera   camera.Camera
	Window   camera.TileWindow
	Tiles    []TileView

	// Player position in screen pixels (top-left of its tile)
	PlayerX, PlayerY float64
	PlayerCell       world.Point
	Facing           world.Direction
	Flashlight       bool

	Status   []string
	Messages []string

	// Inventory is nil when the panel is hidden
	Inventory      []InventoryLine
	InventoryTitle string

	Elapsed float64
}

// BuildFrame lays out the current map for a screen of w by h pixels with
// the given tile size. The camera follows the player's interpolated position.
func BuildFrame(g *state.Game, w, h, tileSize int) Frame {
	p := g.Player
	px, py := p.Position(tileSize)
	mapW, mapH := g.Map.PixelSize(tileSize)
	half := float64(tileSize) / 2

	cam := camera.Follow(px+half, py+half, float64(w), float64(h), float64(mapW), float64(mapH))
	win := cam.VisibleTiles(tileSize, g.Map.Width(), g.Map.Height())

	cx, cy := p.Center()
	shade := g.Lighting.ForWindow(win, cx, cy, p.FlashlightOn())

	f := Frame{
		TileSize:   tileSize,
		Camera:     cam,
		Window:     win,
		PlayerCell: p.Cell(),
		Facing:     p.Facing(),
		Flashlight: p.FlashlightOn(),
		Status:     statusLines(g, px, py, cam),
		Messages:   append([]string(nil), g.Messages...),
		Elapsed:    g.Elapsed,
	}
	f.PlayerX, f.PlayerY = cam.WorldToScreen(px, py)

	ts := float64(tileSize)
	win.ForEach(func(pt world.Point) {
		x, y := cam.WorldToScreen(float64(pt.X)*ts, float64(pt.Y)*ts)
		f.Tiles = append(f.Tiles, TileView{
			Pos:      pt,
			X:        x,
			Y:        y,
			Tile:     g.Map.TileAt(pt),
			Item:     g.Map.ItemAt(pt),
			Darkness: shade.At(pt),
		})
	})

	if inv := p.Inventory(); inv.Visible() {
		f.Inventory = inventoryLines(inv)
		if inv.Capacity() > 0 {
			f.InventoryTitle = ApplyMarkup("Inventory (%d/%d)", inv.Len(), inv.Capacity())
		} else {
			f.InventoryTitle = ApplyMarkup("Inventory (%d)", inv.Len())
		}
	}
	return f
}

// TileAt returns the view of p, or false if p is off screen
func (f Frame) TileAt(p world.Point) (TileView, bool) {
	if !f.Window.Contains(p) {
		return TileView{}, false
	}
	w := f.Window.MaxX - f.Window.MinX
	return f.Tiles[(p.Y-f.Window.MinY)*w+(p.X-f.Window.MinX)], true
}

// statusLines are the HUD lines: map, cell, pixel and camera position,
// health, flashlight and item count.
func statusLines(g *state.Game, px, py float64, cam camera.Camera) []string {
	p := g.Player
	cell := p.Cell()
	light := ApplyMarkup("off")
	if p.FlashlightOn() {
		light = ApplyMarkup("on")
	}
	tileName := ""
	if t := g.CurrentTile(); t != nil {
		tileName = t.Name
	}
	return []string{
		ApplyMarkup("ROOM{%s} (%dx%d)", g.Map.Name, g.Map.Width(), g.Map.Height()),
		ApplyMarkup("Position: (%d, %d)  %s", cell.X, cell.Y, tileName),
		ApplyMarkup("SUBTLE{Pixel: (%d, %d)  Camera: (%d, %d)}", int(px), int(py), int(cam.X), int(cam.Y)),
		ApplyMarkup("Health: ACTION{%d}/%d", p.Health(), player.MaxHealth),
		ApplyMarkup("Flashlight: ACTION{%s}  Items: ITEM{%d}", light, p.Inventory().Len()),
	}
}

// inventoryLines groups the held items in pickup order
func inventoryLines(inv *items.Inventory) []InventoryLine {
	type key struct {
		kind              items.Kind
		name, description string
	}
	lines := make([]InventoryLine, 0, inv.Len())
	index := make(map[key]int)
	for _, it := range inv.Items() {
		k := key{it.Kind, it.Name, it.Description}
		if i, ok := index[k]; ok {
			lines[i].Count++
			continue
		}
		index[k] = len(lines)
		lines = append(lines, InventoryLine{
			Kind:        it.Kind,
			Name:        it.Name,
			Description: it.Description,
			Count:       1,
			Color:       it.Color,
		})
	}
	return lines
}
