package world

import "math"

// ChebyshevDist returns Chebyshev (chessboard) distance for (dx, dy).
func ChebyshevDist(dx, dy float64) float64 {
	return math.Max(math.Abs(dx), math.Abs(dy))
}

// EuclideanDist returns the straight-line distance for (dx, dy).
func EuclideanDist(dx, dy float64) float64 {
	return math.Hypot(dx, dy)
}

// ManhattanDist returns the taxicab distance between two grid points
func ManhattanDist(a, b Point) int {
	dx := a.X - b.X
	dy := a.Y - b.Y
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}
	return dx + dy
}
