// Package ebiten provides an Ebiten-based 2D graphical renderer for Campus Lockdown.
package ebiten

import (
	"campuslockdown/pkg/game/renderer"
	"campuslockdown/pkg/game/tiles"
)

// Tile decorations drawn on top of the fill
const (
	decorNone    = ""
	decorCanopy  = "canopy"
	decorShelves = "shelves"
	decorStripe  = "stripe"
	decorPillow  = "pillow"
)

var tileDecorations = map[tiles.Kind]string{
	tiles.Tree:         decorCanopy,
	tiles.Bookshelf:    decorShelves,
	tiles.ParkingSpace: decorStripe,
	tiles.Bed:          decorPillow,
}

// getTileRenderOptions decides how a visible tile is drawn this frame
func (e *EbitenRenderer) getTileRenderOptions(v renderer.TileView, elapsed float64) tileRenderOptions {
	t := v.Tile
	opts := tileRenderOptions{
		Fill:       t.Color,
		Decoration: tileDecorations[t.Kind],
	}
	if t.Kind == tiles.Water {
		opts.Fill = waterShimmer(t.Color, elapsed, v.Pos)
	}
	if t.HasAccent() && opts.Decoration == decorNone {
		opts.Border = t.Accent
		opts.HasBorder = true
	}
	if t.IsDoor() {
		opts.DoorPanel = true
		opts.HasBorder = false
	}
	return opts
}
