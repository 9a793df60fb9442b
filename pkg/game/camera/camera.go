// Package camera computes the viewport onto the map for a single frame.
// Nothing is kept between frames: the same inputs always give the same view.
package camera

import (
	"math"

	"campuslockdown/pkg/engine/world"
)

// Camera is a viewport in world pixels. X and Y are the world coordinates of
// the top-left corner of the screen and may be negative when the map is
// smaller than the screen.
type Camera struct {
	X, Y          float64
	Width, Height float64
}

// Follow centres a screen of the given size on (targetX, targetY), clamped so
// it never shows past the map edge. On an axis where the map is smaller than
// the screen the map is centred instead.
func Follow(targetX, targetY, screenW, screenH, mapW, mapH float64) Camera {
	return Camera{
		X:      axis(targetX, screenW, mapW),
		Y:      axis(targetY, screenH, mapH),
		Width:  screenW,
		Height: screenH,
	}
}

func axis(target, screen, size float64) float64 {
	if size <= screen {
		return -math.Floor((screen - size) / 2)
	}
	origin := target - math.Floor(screen/2)
	return math.Max(0, math.Min(origin, size-screen))
}

// WorldToScreen converts world pixels to screen pixels.
func (c Camera) WorldToScreen(x, y float64) (float64, float64) {
	return x - c.X, y - c.Y
}

// ScreenToWorld converts screen pixels to world pixels.
func (c Camera) ScreenToWorld(x, y float64) (float64, float64) {
	return x + c.X, y + c.Y
}

// TileWindow is a rectangle of tile cells; Max is exclusive.
type TileWindow struct {
	MinX, MinY int
	MaxX, MaxY int
}

// Contains reports whether p is inside the window.
func (w TileWindow) Contains(p world.Point) bool {
	return p.X >= w.MinX && p.X < w.MaxX && p.Y >= w.MinY && p.Y < w.MaxY
}

// Empty reports whether the window has no cells.
func (w TileWindow) Empty() bool {
	return w.MaxX <= w.MinX || w.MaxY <= w.MinY
}

// ForEach visits every cell of the window row by row.
func (w TileWindow) ForEach(fn func(p world.Point)) {
	for y := w.MinY; y < w.MaxY; y++ {
		for x := w.MinX; x < w.MaxX; x++ {
			fn(world.Pt(x, y))
		}
	}
}

// VisibleTiles returns the cells at least partly on screen, clipped to a map
// of cols by rows tiles.
func (c Camera) VisibleTiles(tileSize, cols, rows int) TileWindow {
	ts := float64(tileSize)
	return TileWindow{
		MinX: clamp(int(math.Floor(c.X/ts)), 0, cols),
		MinY: clamp(int(math.Floor(c.Y/ts)), 0, rows),
		MaxX: clamp(int(math.Ceil((c.X+c.Width)/ts)), 0, cols),
		MaxY: clamp(int(math.Ceil((c.Y+c.Height)/ts)), 0, rows),
	}
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
