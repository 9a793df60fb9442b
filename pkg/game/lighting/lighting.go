// Package lighting computes the darkness overlay around the player.
package lighting

import (
	"fmt"

	"campuslockdown/pkg/engine/world"
	"campuslockdown/pkg/game/camera"
)

// Metric measures distance in tiles between the player and a tile centre.
type Metric int

// Distance metrics
const (
	Euclidean Metric = iota
	Chebyshev
)

func (m Metric) String() string {
	if m == Chebyshev {
		return "chebyshev"
	}
	return "euclidean"
}

// ParseMetric accepts "euclidean" or "chebyshev".
func ParseMetric(s string) (Metric, error) {
	switch s {
	case "", "euclidean":
		return Euclidean, nil
	case "chebyshev":
		return Chebyshev, nil
	}
	return Euclidean, fmt.Errorf("unknown distance metric %q", s)
}

// Distance returns the distance for the offset (dx, dy).
func (m Metric) Distance(dx, dy float64) float64 {
	if m == Chebyshev {
		return world.ChebyshevDist(dx, dy)
	}
	return world.EuclideanDist(dx, dy)
}

// Overlay describes how dark each tile is. Radii are in tiles. A tile is
// fully lit up to FadeStart*radius, then darkens linearly to MaxAlpha at
// radius and stays at MaxAlpha beyond it.
type Overlay struct {
	BaseRadius       float64
	FlashlightRadius float64
	MaxAlpha         uint8
	FadeStart        float64
	Metric           Metric
}

// Default returns the overlay used by the game: a small glow around the
// player and a flashlight that reaches four tiles.
func Default() Overlay {
	return Overlay{
		BaseRadius:       1.5,
		FlashlightRadius: 4.0,
		MaxAlpha:         200,
		FadeStart:        0.7,
		Metric:           Euclidean,
	}
}

// Validate checks that the flashlight actually extends the lit area.
func (o Overlay) Validate() error {
	if o.BaseRadius < 0 {
		return fmt.Errorf("base radius %v is negative", o.BaseRadius)
	}
	if o.FlashlightRadius <= o.BaseRadius {
		return fmt.Errorf("flashlight radius %v must exceed base radius %v", o.FlashlightRadius, o.BaseRadius)
	}
	if o.FadeStart < 0 || o.FadeStart > 1 {
		return fmt.Errorf("fade start %v outside 0..1", o.FadeStart)
	}
	return nil
}

// Radius returns the active radius.
func (o Overlay) Radius(flashlightOn bool) float64 {
	if flashlightOn {
		return o.FlashlightRadius
	}
	return o.BaseRadius
}

// Alpha returns the darkness for a tile at distance d.
func (o Overlay) Alpha(d float64, flashlightOn bool) uint8 {
	r := o.Radius(flashlightOn)
	lit := o.FadeStart * r
	switch {
	case d <= lit:
		return 0
	case d >= r:
		return o.MaxAlpha
	}
	return uint8(float64(o.MaxAlpha) * (d - lit) / (r - lit))
}

// AlphaAt returns the darkness of tile p with the player centred at
// (cx, cy) in tile units.
func (o Overlay) AlphaAt(p world.Point, cx, cy float64, flashlightOn bool) uint8 {
	d := o.Metric.Distance(float64(p.X)+0.5-cx, float64(p.Y)+0.5-cy)
	return o.Alpha(d, flashlightOn)
}

// Shade is the darkness of every tile in a camera window.
type Shade struct {
	Window camera.TileWindow
	alpha  []uint8
}

// At returns the darkness of p, or 255 outside the window.
func (s Shade) At(p world.Point) uint8 {
	if !s.Window.Contains(p) {
		return 255
	}
	w := s.Window.MaxX - s.Window.MinX
	return s.alpha[(p.Y-s.Window.MinY)*w+(p.X-s.Window.MinX)]
}

// ForWindow computes darkness for every tile in win.
func (o Overlay) ForWindow(win camera.TileWindow, cx, cy float64, flashlightOn bool) Shade {
	s := Shade{Window: win}
	if win.Empty() {
		return s
	}
	s.alpha = make([]uint8, 0, (win.MaxX-win.MinX)*(win.MaxY-win.MinY))
	win.ForEach(func(p world.Point) {
		s.alpha = append(s.alpha, o.AlphaAt(p, cx, cy, flashlightOn))
	})
	return s
}
