// Package gameplay provides core game logic for player movement and interactions.
package gameplay

import (
	engineinput "campuslockdown/pkg/engine/input"
	"campuslockdown/pkg/engine/world"
	"campuslockdown/pkg/game/devtools"
	"campuslockdown/pkg/game/state"
)

// ProcessIntent handles a high-level input intent from the tiered input system.
// Zoom intents are handled by the renderer and ignored here.
func ProcessIntent(g *state.Game, intent engineinput.Intent) {
	switch intent.Action {
	case engineinput.ActionNone:
		return

	case engineinput.ActionQuit:
		g.Quit = true

	case engineinput.ActionMapDump:
		path, err := devtools.DumpMapToFile(g)
		if err != nil {
			logMessage(g, "Map dump failed: %v", err)
		} else {
			logMessage(g, "Map dumped to ITEM{%s}", path)
		}

	case engineinput.ActionToggleFlashlight:
		ToggleFlashlight(g)

	case engineinput.ActionToggleInventory:
		g.Player.Inventory().ToggleVisible()

	case engineinput.ActionUsePotion:
		UsePotion(g)

	case engineinput.ActionMoveNorth:
		MovePlayer(g, world.North)
	case engineinput.ActionMoveSouth:
		MovePlayer(g, world.South)
	case engineinput.ActionMoveEast:
		MovePlayer(g, world.East)
	case engineinput.ActionMoveWest:
		MovePlayer(g, world.West)
	}
}

// Update advances the game by dt seconds. Intents are applied first, so a
// move started this frame already makes progress.
func Update(g *state.Game, intents []engineinput.Intent, dt float64) {
	for _, intent := range intents {
		ProcessIntent(g, intent)
		if g.Quit {
			return
		}
	}

	g.Elapsed += dt
	if g.Player.Update(dt) {
		OnArrival(g)
	}
}
