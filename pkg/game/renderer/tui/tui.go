// Package tui draws the game in a terminal with ANSI colours and reads keys
// in raw mode.
package tui

import (
	"fmt"
	"image/color"
	"io"
	"strings"

	gcolor "github.com/gookit/color"
	"github.com/leonelquinteros/gotext"

	"campuslockdown/pkg/engine/input"
	"campuslockdown/pkg/engine/terminal"
	"campuslockdown/pkg/game/gameplay"
	"campuslockdown/pkg/game/items"
	"campuslockdown/pkg/game/player"
	"campuslockdown/pkg/game/renderer"
	"campuslockdown/pkg/game/state"
	"campuslockdown/pkg/game/tiles"
)

// Icons for things drawn over tiles
const (
	PlayerIcon = "@"
	IconVoid   = " "
)

var itemIcons = map[items.Kind]string{
	items.Potion: "!",
	items.Scroll: "?",
	items.Key:    "⚷",
}

// tileIcons replace legend characters for tiles that read better as symbols
var tileIcons = map[tiles.Kind]string{
	tiles.Grass:   ".",
	tiles.Water:   "~",
	tiles.Wall:    "▒",
	tiles.Tree:    "♣",
	tiles.Pathway: "·",
	tiles.Empty:   " ",
}

// Layout of the screen around the map
const (
	cellWidth    = 2
	reservedRows = 16
)

// TUIRenderer is the terminal-based renderer implementation
type TUIRenderer struct {
	colorItem        gcolor.Style
	colorRoom        gcolor.Style
	colorAction      gcolor.Style
	colorActionShort gcolor.Style
	colorDenied      gcolor.Style
	colorSubtle      gcolor.Style
	colorPlayer      gcolor.Style

	out io.Writer
	fps int
}

// New creates a new TUI renderer writing to out
func New(out io.Writer, fps int) *TUIRenderer {
	if fps <= 0 {
		fps = 60
	}
	return &TUIRenderer{out: out, fps: fps}
}

// Init initializes the TUI renderer colors
func (t *TUIRenderer) Init() error {
	t.colorItem = gcolor.Style{gcolor.FgGreen, gcolor.OpBold}
	t.colorRoom = gcolor.Style{gcolor.FgBlue}
	t.colorAction = gcolor.Style{gcolor.FgMagenta}
	t.colorActionShort = gcolor.Style{gcolor.FgMagenta, gcolor.OpBold}
	t.colorDenied = gcolor.Style{gcolor.FgRed, gcolor.OpBold}
	t.colorSubtle = gcolor.Style{gcolor.FgGray, gcolor.OpBold}
	t.colorPlayer = gcolor.Style{gcolor.FgGreen, gcolor.BgBlack, gcolor.OpBold}
	return nil
}

// StyleText applies a style to text
func (t *TUIRenderer) StyleText(text string, style renderer.TextStyle) string {
	switch style {
	case renderer.StyleItem:
		return t.colorItem.Sprint(text)
	case renderer.StyleRoom:
		return t.colorRoom.Sprint(text)
	case renderer.StyleAction:
		if text == "" {
			return text
		}
		return t.colorActionShort.Sprint(text[0:1]) + t.colorAction.Sprint(text[1:])
	case renderer.StyleDenied:
		return t.colorDenied.Sprint(text)
	case renderer.StyleSubtle:
		return t.colorSubtle.Sprint(text)
	case renderer.StylePlayer:
		return t.colorPlayer.Sprint(text)
	default:
		return text
	}
}

// GetViewportSize returns how many tiles fit in the terminal
func (t *TUIRenderer) GetViewportSize() (rows, cols int) {
	w, h := terminal.GetSize()
	cols, rows = terminal.Viewport(w, h, cellWidth, reservedRows)
	return rows, cols
}

// Run reads keys in raw mode and redraws after each one until the player quits.
func (t *TUIRenderer) Run(g *state.Game) error {
	keys, err := input.OpenKeyReader()
	if err != nil {
		return fmt.Errorf("tui needs a terminal: %w", err)
	}
	defer keys.Close()

	for !g.Quit {
		t.Render(g)
		raw, err := keys.ReadKey()
		if err != nil {
			return err
		}
		intent := input.MapToIntent(input.NewDebouncedInput(raw))
		Settle(g, intent, 1/float64(t.fps))
	}

	terminal.Home(t.out)
	fmt.Fprint(t.out, gotext.Get("Goodbye!")+"\r\n")
	return nil
}

// Settle applies intent and runs frames until any move it started is over.
// The terminal has no animation, so each key press is one whole step.
func Settle(g *state.Game, intent input.Intent, dt float64) {
	gameplay.Update(g, []input.Intent{intent}, dt)
	for !g.Quit && g.Player.State() == player.Moving {
		gameplay.Update(g, nil, dt)
	}
}

// Render draws the current frame to the terminal
func (t *TUIRenderer) Render(g *state.Game) {
	rows, cols := t.GetViewportSize()
	f := renderer.BuildFrame(g, cols, rows, 1)

	var sb strings.Builder
	terminal.Home(&sb)
	t.WriteFrame(&sb, f)
	io.WriteString(t.out, strings.ReplaceAll(sb.String(), "\n", "\r\n"))
}

// WriteFrame writes the map window, status lines, messages and inventory.
func (t *TUIRenderer) WriteFrame(w io.Writer, f renderer.Frame) {
	width := f.Window.MaxX - f.Window.MinX
	for i, v := range f.Tiles {
		fmt.Fprint(w, t.tileGlyph(v, f))
		fmt.Fprint(w, IconVoid)
		if (i+1)%width == 0 {
			fmt.Fprintln(w)
		}
	}
	fmt.Fprintln(w)

	for _, line := range f.Status {
		fmt.Fprintln(w, t.format(line))
	}
	fmt.Fprintln(w)

	for _, msg := range f.Messages {
		fmt.Fprintln(w, t.format(msg))
	}

	if f.Inventory != nil {
		fmt.Fprintln(w)
		fmt.Fprintln(w, t.colorSubtle.Sprint(f.InventoryTitle))
		if len(f.Inventory) == 0 {
			fmt.Fprintln(w, "  "+gotext.Get("(empty)"))
		}
		for _, line := range f.Inventory {
			fmt.Fprintf(w, "  %s x%d  %s\n", shaded(line.Color, 0).Sprint(line.Name), line.Count, t.colorSubtle.Sprint(line.Description))
		}
	}
}

func (t *TUIRenderer) format(msg string) string {
	return renderer.FormatMarkup(msg, t.StyleText)
}

// tileGlyph returns the coloured character for one tile, darkened by the
// lighting overlay.
func (t *TUIRenderer) tileGlyph(v renderer.TileView, f renderer.Frame) string {
	if v.Pos == f.PlayerCell {
		return t.colorPlayer.Sprint(PlayerIcon)
	}
	if v.Darkness == 255 || v.Tile == nil {
		return IconVoid
	}
	if v.Item != nil {
		return shaded(v.Item.Color, v.Darkness).Sprint(itemIcons[v.Item.Kind])
	}
	icon, ok := tileIcons[v.Tile.Kind]
	if !ok {
		icon = string(v.Tile.Char)
	}
	c := v.Tile.Color
	if v.Tile.HasAccent() {
		c = v.Tile.Accent
	}
	return shaded(c, v.Darkness).Sprint(icon)
}

// shaded darkens c by alpha as if a black layer of that opacity lay over it.
func shaded(c color.RGBA, alpha uint8) gcolor.RGBColor {
	k := 1 - float64(alpha)/255
	return gcolor.RGB(uint8(float64(c.R)*k), uint8(float64(c.G)*k), uint8(float64(c.B)*k))
}
