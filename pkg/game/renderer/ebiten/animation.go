// Package ebiten provides an Ebiten-based 2D graphical renderer for Campus Lockdown.
package ebiten

import (
	"image/color"
	"math"
	"time"

	"campuslockdown/pkg/engine/world"
)

// waterShimmer brightens and darkens water in a slow wave across the map
func waterShimmer(c color.RGBA, elapsed float64, p world.Point) color.RGBA {
	wave := math.Sin(elapsed*2 + float64(p.X)*0.5 + float64(p.Y)*0.3)
	shift := wave * 20
	return color.RGBA{
		R: clampChannel(float64(c.R) + shift),
		G: clampChannel(float64(c.G) + shift),
		B: clampChannel(float64(c.B) + shift),
		A: c.A,
	}
}

// itemBob returns the vertical offset of an item, as a fraction of the tile
func itemBob(elapsed float64, p world.Point) float64 {
	return math.Sin(elapsed*3+float64(p.X+p.Y)) * 0.08
}

// itemPulse returns the radius scale of an item glow, between 0.8 and 1.0
func itemPulse(elapsed float64) float64 {
	return 0.9 + 0.1*math.Sin(elapsed*4)
}

// messageAlpha fades a message out over the end of its lifetime
func messageAlpha(age time.Duration) float64 {
	switch {
	case age >= messageLifetime:
		return 0
	case age <= messageFadeStart:
		return 1
	}
	return 1 - float64(age-messageFadeStart)/float64(messageLifetime-messageFadeStart)
}

func clampChannel(v float64) uint8 {
	return uint8(max(0, min(v, 255)))
}
