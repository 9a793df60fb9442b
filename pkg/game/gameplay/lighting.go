package gameplay

import (
	"campuslockdown/pkg/game/state"
)

// ToggleFlashlight switches the player's flashlight and reports the new state
func ToggleFlashlight(g *state.Game) {
	if g.Player.ToggleFlashlight() {
		logMessage(g, "Flashlight ACTION{on}")
	} else {
		logMessage(g, "Flashlight ACTION{off}")
	}
}

// LightRadius returns how far the player can currently see, in tiles
func LightRadius(g *state.Game) float64 {
	return g.Lighting.Radius(g.Player.FlashlightOn())
}
