package input

import (
	"sort"
	"time"
)

// Device represents a physical input source.
type Device int

const (
	DeviceUnknown Device = iota
	DeviceKeyboard
	DeviceTerminal
)

// Action represents a high-level intent in the game.
type Action int

const (
	ActionNone Action = iota

	// Movement
	ActionMoveNorth
	ActionMoveSouth
	ActionMoveWest
	ActionMoveEast

	// Toggles / items
	ActionToggleFlashlight
	ActionToggleInventory
	ActionUsePotion

	// Meta / UI
	ActionQuit
	ActionMapDump
	ActionZoomIn
	ActionZoomOut
	ActionZoomReset
)

// Intent is the 4th-layer, high-level description of what the player wants to do.
type Intent struct {
	Action Action
}

// RawInput is the 1st-layer event emitted directly from an input device.
// Code is a device-specific identifier (e.g. "w", "arrow_up", "f12").
type RawInput struct {
	Device    Device
	Code      string
	Timestamp time.Time
}

// DebouncedInput is the 2nd-layer representation after deduplication.
// Ebiten and terminal raw mode already deliver one event per press.
type DebouncedInput struct {
	Device Device
	Code   string
}

// NewDebouncedInput converts a raw event to a debounced event.
func NewDebouncedInput(raw RawInput) DebouncedInput {
	return DebouncedInput{
		Device: raw.Device,
		Code:   raw.Code,
	}
}

// defaultBindings maps raw codes to actions (3rd-layer bindings).
// Multiple codes may point to the same Action.
func defaultBindings() map[string]Action {
	return map[string]Action{
		// Movement (arrows, WASD, Vim)
		"arrow_up":    ActionMoveNorth,
		"w":           ActionMoveNorth,
		"k":           ActionMoveNorth,
		"arrow_down":  ActionMoveSouth,
		"s":           ActionMoveSouth,
		"j":           ActionMoveSouth,
		"arrow_left":  ActionMoveWest,
		"a":           ActionMoveWest,
		"h":           ActionMoveWest,
		"arrow_right": ActionMoveEast,
		"d":           ActionMoveEast,
		"l":           ActionMoveEast,

		"f": ActionToggleFlashlight,
		"i": ActionToggleInventory,
		"u": ActionUsePotion,

		// Quit
		"q":      ActionQuit,
		"escape": ActionQuit,
		"ctrl_c": ActionQuit,

		"f12": ActionMapDump,

		// Zoom (fixed bindings, not rebindable)
		"=":               ActionZoomIn,
		"+":               ActionZoomIn,
		"numpad_add":      ActionZoomIn,
		"-":               ActionZoomOut,
		"numpad_subtract": ActionZoomOut,
		"0":               ActionZoomReset,
	}
}

var bindings = defaultBindings()

// MapToIntent is the 3rd+4th layer: it applies the current bindings to a
// debounced input and returns a high-level Intent.
func MapToIntent(ev DebouncedInput) Intent {
	if act, ok := bindings[ev.Code]; ok {
		return Intent{Action: act}
	}
	return Intent{Action: ActionNone}
}

// CollectIntents maps codes to intents in the order given, keeping those for
// which active returns true. active gets the index of the code and whether
// its action is a movement, so callers can poll held and tapped keys
// differently. Unbound codes are skipped.
func CollectIntents(device Device, codes []string, active func(i int, movement bool) bool) []Intent {
	var intents []Intent
	for i, code := range codes {
		intent := MapToIntent(NewDebouncedInput(RawInput{Device: device, Code: code}))
		if intent.Action == ActionNone {
			continue
		}
		if active(i, intent.Action.IsMovement()) {
			intents = append(intents, intent)
		}
	}
	return intents
}

// IsMovement reports whether the action moves the player.
func (a Action) IsMovement() bool {
	return a >= ActionMoveNorth && a <= ActionMoveEast
}

// ActionName returns a human-friendly name for an action.
func ActionName(a Action) string {
	switch a {
	case ActionMoveNorth:
		return "Move North"
	case ActionMoveSouth:
		return "Move South"
	case ActionMoveWest:
		return "Move West"
	case ActionMoveEast:
		return "Move East"
	case ActionToggleFlashlight:
		return "Flashlight"
	case ActionToggleInventory:
		return "Inventory"
	case ActionUsePotion:
		return "Use Potion"
	case ActionQuit:
		return "Quit"
	case ActionMapDump:
		return "Map Dump"
	case ActionZoomIn:
		return "Zoom In"
	case ActionZoomOut:
		return "Zoom Out"
	case ActionZoomReset:
		return "Reset Zoom"
	default:
		return "None"
	}
}

// GetBindingsByAction returns the current bindings grouped by action.
func GetBindingsByAction() map[Action][]string {
	result := make(map[Action][]string)
	for code, act := range bindings {
		result[act] = append(result[act], code)
	}
	// Stable ordering so the controls line doesn't flicker.
	for act, codes := range result {
		sort.Strings(codes)
		result[act] = codes
	}
	return result
}

// SetSingleBinding replaces all bindings for the given action with a single code.
// Arrow keys stay bound to movement.
func SetSingleBinding(action Action, code string) {
	for c, a := range bindings {
		if isReserved(c) {
			continue
		}
		if a == action {
			delete(bindings, c)
		}
	}
	if code != "" && !isReserved(code) {
		bindings[code] = action
	}
}

// ResetBindings restores the default bindings.
func ResetBindings() {
	bindings = defaultBindings()
}

func isReserved(code string) bool {
	switch code {
	case "arrow_up", "arrow_down", "arrow_left", "arrow_right", "escape":
		return true
	}
	return false
}

// ActionFromName is the inverse of ActionName, used for bindings loaded
// from preferences.
func ActionFromName(name string) (Action, bool) {
	for a := ActionMoveNorth; a <= ActionZoomReset; a++ {
		if ActionName(a) == name {
			return a, true
		}
	}
	return ActionNone, false
}
