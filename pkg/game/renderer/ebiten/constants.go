// Package ebiten provides an Ebiten-based 2D graphical renderer for Campus Lockdown.
package ebiten

import (
	"image/color"
	"time"
)

// Color palette for the game
var (
	colorBackground      = color.RGBA{0, 0, 0, 255}
	colorPlayer          = color.RGBA{255, 0, 0, 255}     // Red, as on the campus map
	colorPlayerOutline   = color.RGBA{139, 0, 0, 255}     // Dark red
	colorFacing          = color.RGBA{255, 255, 255, 255} // White
	colorDoorPanel       = color.RGBA{101, 67, 33, 255}   // Dark wood
	colorDoorKnob        = color.RGBA{255, 215, 0, 255}   // Brass
	colorText            = color.RGBA{200, 210, 245, 255} // Soft off-white with blue-purple tint
	colorSubtle          = color.RGBA{120, 130, 180, 255} // Soft blue-purple-gray
	colorAction          = color.RGBA{180, 150, 250, 255} // Blue-purple
	colorItem            = color.RGBA{220, 170, 255, 255} // Bright purple
	colorRoom            = color.RGBA{160, 160, 180, 255} // Light gray-blue for place names
	colorDenied          = color.RGBA{255, 100, 100, 255} // Bright red
	colorPanelBackground = color.RGBA{30, 30, 50, 220}    // Semi-transparent dark
	colorPanelBorder     = color.RGBA{80, 80, 100, 255}
)

// Font scaling
const (
	baseFontSize    = 16.0 // Font size at the default tile size
	defaultTileSize = 50.0
)

// Panel layout
const (
	panelPadding         = 10
	inventoryPanelWidth  = 300
	inventoryPanelHeight = 150
	maxVisibleMessages   = 4
)

// Message fade timing
const (
	messageLifetime  = 10 * time.Second
	messageFadeStart = 7 * time.Second
)
