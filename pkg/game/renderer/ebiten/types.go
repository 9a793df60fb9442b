// Package ebiten provides an Ebiten-based 2D graphical renderer for Campus Lockdown.
package ebiten

import (
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"campuslockdown/pkg/game/config"
	"campuslockdown/pkg/game/renderer"
	"campuslockdown/pkg/game/state"
)

// messageEntry represents a message with timestamp for fade-out
type messageEntry struct {
	Text      string
	Timestamp time.Time
}

// textSegment represents a segment of text with a specific color
type textSegment struct {
	text  string
	color color.Color
}

// tileRenderOptions describes how a map tile is drawn
type tileRenderOptions struct {
	Fill       color.Color
	Border     color.Color
	HasBorder  bool
	DoorPanel  bool
	Decoration string
}

// EbitenRenderer is the Ebiten-based graphical renderer
type EbitenRenderer struct {
	cfg *config.Config

	// Window dimensions
	windowWidth  int
	windowHeight int

	// Tile size for rendering (adjustable with +/-)
	tileSize int

	// Font sources for text rendering
	monoFontSource *text.GoTextFaceSource
	sansFontSource *text.GoTextFaceSource
	boldFontSource *text.GoTextFaceSource

	// Cached font faces (recreated when tile size changes)
	cachedTileFontSize float64
	cachedUIFontSize   float64
	cachedMonoFace     *text.GoTextFace
	cachedSansFace     *text.GoTextFace
	cachedBoldFace     *text.GoTextFace

	// Game being drawn; Update and Draw run on the same goroutine
	game *state.Game

	// Frame built by the last Update, drawn by Draw
	snapshot      renderer.Frame
	snapshotValid bool

	// Messages to display with timestamps for fade-out
	trackedMessages []messageEntry
	lastSerial      int

	// Flag to track if we've logged window opening
	windowOpenedLogged bool
}
