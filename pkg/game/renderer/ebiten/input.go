// Package ebiten provides an Ebiten-based 2D graphical renderer for Campus Lockdown.
package ebiten

import (
	"fmt"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	engineinput "campuslockdown/pkg/engine/input"
	"campuslockdown/pkg/game/config"
	"campuslockdown/pkg/game/gameplay"
)

// keyCodes maps Ebiten keys to the raw codes used by the binding layer.
// Order matters: when several movement keys are held the first one listed
// wins.
var keyCodes = []struct {
	key  ebiten.Key
	code string
}{
	{ebiten.KeyArrowUp, "arrow_up"},
	{ebiten.KeyArrowDown, "arrow_down"},
	{ebiten.KeyArrowLeft, "arrow_left"},
	{ebiten.KeyArrowRight, "arrow_right"},
	{ebiten.KeyEscape, "escape"},
	{ebiten.KeyF12, "f12"},
	{ebiten.KeyEqual, "="},
	{ebiten.KeyMinus, "-"},
	{ebiten.KeyNumpadAdd, "numpad_add"},
	{ebiten.KeyNumpadSubtract, "numpad_subtract"},
	{ebiten.KeyDigit0, "0"},
	{ebiten.KeyA, "a"},
	{ebiten.KeyB, "b"},
	{ebiten.KeyC, "c"},
	{ebiten.KeyD, "d"},
	{ebiten.KeyE, "e"},
	{ebiten.KeyF, "f"},
	{ebiten.KeyG, "g"},
	{ebiten.KeyH, "h"},
	{ebiten.KeyI, "i"},
	{ebiten.KeyJ, "j"},
	{ebiten.KeyK, "k"},
	{ebiten.KeyL, "l"},
	{ebiten.KeyM, "m"},
	{ebiten.KeyN, "n"},
	{ebiten.KeyO, "o"},
	{ebiten.KeyP, "p"},
	{ebiten.KeyQ, "q"},
	{ebiten.KeyR, "r"},
	{ebiten.KeyS, "s"},
	{ebiten.KeyT, "t"},
	{ebiten.KeyU, "u"},
	{ebiten.KeyV, "v"},
	{ebiten.KeyW, "w"},
	{ebiten.KeyX, "x"},
	{ebiten.KeyY, "y"},
	{ebiten.KeyZ, "z"},
}

// Update handles input and game logic (Ebiten interface)
func (e *EbitenRenderer) Update() error {
	// Log window opening on first update (confirms window is actually running)
	if !e.windowOpenedLogged {
		e.windowOpenedLogged = true
		w, h := ebiten.WindowSize()
		log.Printf("Main window opened successfully (%dx%d)", w, h)
	}

	var intents []engineinput.Intent
	for _, intent := range e.checkInput() {
		switch intent.Action {
		case engineinput.ActionZoomIn:
			e.increaseTileSize()
		case engineinput.ActionZoomOut:
			e.decreaseTileSize()
		case engineinput.ActionZoomReset:
			e.resetTileSize()
		default:
			intents = append(intents, intent)
		}
	}

	gameplay.Update(e.game, intents, 1/float64(ebiten.TPS()))
	if e.game.Quit {
		return ebiten.Termination
	}

	e.updateSnapshot()
	return nil
}

// checkInput returns the intents for this frame. Movement keys count while
// held so the player keeps walking; everything else fires once per press.
func (e *EbitenRenderer) checkInput() []engineinput.Intent {
	codes := make([]string, len(keyCodes))
	for i, kc := range keyCodes {
		codes[i] = kc.code
	}
	return engineinput.CollectIntents(engineinput.DeviceKeyboard, codes, func(i int, movement bool) bool {
		if movement {
			return ebiten.IsKeyPressed(keyCodes[i].key)
		}
		return inpututil.IsKeyJustPressed(keyCodes[i].key)
	})
}

// increaseTileSize increases the tile/font size
func (e *EbitenRenderer) increaseTileSize() {
	if e.tileSize < config.MaxTileSize {
		e.tileSize = min(e.tileSize+config.TileSizeStep, config.MaxTileSize)
		e.invalidateFontCache()
		e.saveZoomPreference()
	}
}

// decreaseTileSize decreases the tile/font size
func (e *EbitenRenderer) decreaseTileSize() {
	if e.tileSize > config.MinTileSize {
		e.tileSize = max(e.tileSize-config.TileSizeStep, config.MinTileSize)
		e.invalidateFontCache()
		e.saveZoomPreference()
	}
}

// resetTileSize resets tile size to default
func (e *EbitenRenderer) resetTileSize() {
	e.tileSize = config.DefaultTileSize
	e.invalidateFontCache()
	e.saveZoomPreference()
}

// saveZoomPreference saves the current tile size to preferences
func (e *EbitenRenderer) saveZoomPreference() {
	cfg := config.Current()
	if err := cfg.SetTileSize(e.tileSize); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not save preferences: %v\n", err)
	}
}

// Layout returns the game's logical screen size (Ebiten interface)
func (e *EbitenRenderer) Layout(outsideWidth, outsideHeight int) (int, int) {
	e.windowWidth = outsideWidth
	e.windowHeight = outsideHeight
	return outsideWidth, outsideHeight
}
