// Package ebiten provides an Ebiten-based 2D graphical renderer for Campus Lockdown.
package ebiten

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/leonelquinteros/gotext"

	"campuslockdown/pkg/game/config"
	"campuslockdown/pkg/game/renderer"
	"campuslockdown/pkg/game/state"
)

// New creates a new Ebiten renderer sized from cfg
func New(cfg *config.Config) *EbitenRenderer {
	return &EbitenRenderer{
		cfg:          cfg,
		windowWidth:  cfg.WindowWidth,
		windowHeight: cfg.WindowHeight,
		tileSize:     cfg.TileSize,
	}
}

// Init loads fonts and sets up the window
func (e *EbitenRenderer) Init() error {
	if err := e.loadFonts(); err != nil {
		return err
	}
	ebiten.SetWindowSize(e.windowWidth, e.windowHeight)
	ebiten.SetWindowTitle(gotext.Get("Campus Lockdown"))
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(e.cfg.FPS)
	return nil
}

// Run starts the Ebiten game loop and returns when the player quits
func (e *EbitenRenderer) Run(g *state.Game) error {
	e.game = g
	e.updateSnapshot()
	return ebiten.RunGame(e)
}

// StyleText returns text unchanged; Ebiten colors markup when drawing
func (e *EbitenRenderer) StyleText(text string, style renderer.TextStyle) string {
	return text
}

// GetViewportSize returns how many whole tiles fit in the window
func (e *EbitenRenderer) GetViewportSize() (rows, cols int) {
	return e.windowHeight / e.tileSize, e.windowWidth / e.tileSize
}
