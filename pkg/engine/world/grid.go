// Package world provides generic 2D grid-based world primitives.
// These are engine-level constructs usable by any tile-based game.
package world

import "fmt"

// Point is a grid coordinate. X is the column, Y is the row.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Pt is shorthand for Point{X: x, Y: y}
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

// Add returns the point moved one step in the given direction
func (p Point) Add(dir Direction) Point {
	dx, dy := dir.Delta()
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// String returns the "(x, y)" form used in logs and errors
func (p Point) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}

// Grid is a fixed-size rectangular grid of values stored row-major
type Grid[T any] struct {
	cells  []T
	width  int
	height int
}

// NewGrid creates a new grid with the given dimensions
func NewGrid[T any](width, height int) *Grid[T] {
	if width <= 0 || height <= 0 {
		panic("Grid dimensions must be positive")
	}
	return &Grid[T]{
		cells:  make([]T, width*height),
		width:  width,
		height: height,
	}
}

// Width returns the number of columns in the grid
func (g *Grid[T]) Width() int {
	return g.width
}

// Height returns the number of rows in the grid
func (g *Grid[T]) Height() int {
	return g.height
}

// InBounds checks if a position is within grid bounds
func (g *Grid[T]) InBounds(p Point) bool {
	return p.X >= 0 && p.X < g.width && p.Y >= 0 && p.Y < g.height
}

// IsOnPerimeter checks if a position is on the edge of the grid
func (g *Grid[T]) IsOnPerimeter(p Point) bool {
	if !g.InBounds(p) {
		return false
	}
	return p.X == 0 || p.Y == 0 || p.X == g.width-1 || p.Y == g.height-1
}

// Get returns the value at the given position, or the zero value if out of bounds
func (g *Grid[T]) Get(p Point) T {
	var zero T
	if !g.InBounds(p) {
		return zero
	}
	return g.cells[p.Y*g.width+p.X]
}

// Set stores a value at the given position. Returns false if out of bounds.
func (g *Grid[T]) Set(p Point, v T) bool {
	if !g.InBounds(p) {
		return false
	}
	g.cells[p.Y*g.width+p.X] = v
	return true
}

// Center returns the position at the center of the grid
func (g *Grid[T]) Center() Point {
	return Point{X: g.width / 2, Y: g.height / 2}
}

// Neighbors returns the in-bounds positions adjacent to p in NESW order
func (g *Grid[T]) Neighbors(p Point) []Point {
	var out []Point
	for _, dir := range AllDirections() {
		n := p.Add(dir)
		if g.InBounds(n) {
			out = append(out, n)
		}
	}
	return out
}

// ForEach iterates over all cells row by row
func (g *Grid[T]) ForEach(fn func(p Point, v T)) {
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			fn(Point{X: x, Y: y}, g.cells[y*g.width+x])
		}
	}
}
