package gameplay

import (
	"strings"

	engineinput "campuslockdown/pkg/engine/input"
	"campuslockdown/pkg/game/campusmap"
	"campuslockdown/pkg/game/state"
)

// ShowControlsHint logs the keys for the non-movement actions
func ShowControlsHint(g *state.Game) {
	logMessage(g, "Move with the ACTION{arrows}, ACTION{%s} flashlight, ACTION{%s} inventory, ACTION{%s} potion",
		keyFor(engineinput.ActionToggleFlashlight),
		keyFor(engineinput.ActionToggleInventory),
		keyFor(engineinput.ActionUsePotion))
}

// ShowMapHint tells the player how many items are left on m
func ShowMapHint(g *state.Game, m *campusmap.Map) {
	switch n := m.ItemCount(); n {
	case 0:
		return
	case 1:
		logMessage(g, "There is ACTION{1} item to find here.")
	default:
		logMessage(g, "There are ACTION{%d} items to find here.", n)
	}
}

// keyFor returns the first key bound to a, in upper case
func keyFor(a engineinput.Action) string {
	codes := engineinput.GetBindingsByAction()[a]
	if len(codes) == 0 {
		return "?"
	}
	return strings.ToUpper(codes[0])
}
