package renderer

import (
	"campuslockdown/pkg/game/state"
)

// TextStyle represents different text styling options
type TextStyle int

const (
	StyleNormal TextStyle = iota
	StyleItem
	StyleRoom
	StyleAction
	StyleDenied
	StyleSubtle
	StylePlayer
)

// Renderer defines the interface for game rendering backends
// Implementations include TUI (terminal) and Ebiten.
type Renderer interface {
	// Init initializes the renderer (colors, fonts, window, etc.)
	Init() error

	// Run drives the game loop until the player quits
	Run(g *state.Game) error

	// StyleText applies a style to text and returns the styled string
	// For TUI this applies ANSI colors, for GUI it returns the text unchanged
	StyleText(text string, style TextStyle) string

	// GetViewportSize returns the current viewport dimensions (rows, cols)
	GetViewportSize() (rows, cols int)
}

// Current holds the active renderer instance
var Current Renderer

// SetRenderer sets the active renderer
func SetRenderer(r Renderer) {
	Current = r
}

// StyleText applies a style to text
func StyleText(text string, style TextStyle) string {
	if Current != nil {
		return Current.StyleText(text, style)
	}
	return text
}

// GetViewportSize returns viewport dimensions
func GetViewportSize() (rows, cols int) {
	if Current != nil {
		return Current.GetViewportSize()
	}
	return 15, 30
}
