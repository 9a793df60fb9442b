// Package ebiten provides an Ebiten-based 2D graphical renderer for Campus Lockdown.
package ebiten

import (
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/leonelquinteros/gotext"

	"campuslockdown/pkg/game/items"
	"campuslockdown/pkg/game/renderer"
)

var itemGlyphs = map[items.Kind]string{
	items.Potion: "P",
	items.Scroll: "S",
	items.Key:    "K",
}

// Draw renders the game to the screen (Ebiten interface)
func (e *EbitenRenderer) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)

	if !e.snapshotValid || e.sansFontSource == nil {
		return
	}
	f := &e.snapshot
	screenWidth, screenHeight := screen.Bounds().Dx(), screen.Bounds().Dy()

	e.drawMap(screen, f)
	e.drawItems(screen, f)
	e.drawPlayer(screen, f)
	e.drawDarkness(screen, f)

	e.drawStatusBar(screen, f)
	e.drawMessages(screen, screenWidth, screenHeight)
	if f.Inventory != nil {
		e.drawInventoryPanel(screen, f, screenWidth)
	}
}

// drawMap fills every visible tile and its decoration
func (e *EbitenRenderer) drawMap(screen *ebiten.Image, f *renderer.Frame) {
	ts := float32(f.TileSize)
	for _, v := range f.Tiles {
		if v.Tile == nil {
			continue
		}
		opts := e.getTileRenderOptions(v, f.Elapsed)
		x, y := float32(v.X), float32(v.Y)

		vector.DrawFilledRect(screen, x, y, ts, ts, opts.Fill, false)

		if opts.HasBorder {
			vector.StrokeRect(screen, x+1, y+1, ts-2, ts-2, 2, opts.Border, false)
		}
		if opts.DoorPanel {
			inset := ts * 0.15
			vector.DrawFilledRect(screen, x+inset, y+inset, ts-2*inset, ts-inset, colorDoorPanel, false)
			vector.DrawFilledCircle(screen, x+ts*0.7, y+ts*0.55, ts*0.06, colorDoorKnob, true)
		}
		e.drawDecoration(screen, opts.Decoration, x, y, ts, v.Tile.Accent)
	}
}

func (e *EbitenRenderer) drawDecoration(screen *ebiten.Image, decor string, x, y, ts float32, accent color.Color) {
	switch decor {
	case decorCanopy:
		vector.DrawFilledCircle(screen, x+ts/2, y+ts/2, ts*0.4, accent, true)
	case decorShelves:
		for i := float32(1); i < 4; i++ {
			vector.StrokeLine(screen, x+2, y+ts*i/4, x+ts-2, y+ts*i/4, 2, accent, false)
		}
	case decorStripe:
		vector.StrokeLine(screen, x+ts*0.1, y+2, x+ts*0.1, y+ts-2, 2, accent, false)
	case decorPillow:
		vector.DrawFilledRect(screen, x+ts*0.2, y+ts*0.1, ts*0.6, ts*0.2, accent, false)
	}
}

// drawItems draws each item as a pulsing disc that bobs on its tile
func (e *EbitenRenderer) drawItems(screen *ebiten.Image, f *renderer.Frame) {
	ts := float64(f.TileSize)
	pulse := itemPulse(f.Elapsed)
	for _, v := range f.Tiles {
		if v.Item == nil {
			continue
		}
		bob := itemBob(f.Elapsed, v.Pos) * ts
		cx := float32(v.X + ts/2)
		cy := float32(v.Y + ts/2 + bob)

		vector.DrawFilledCircle(screen, cx, cy, float32(ts*0.35*pulse), applyAlpha(v.Item.Color, 0.35), true)
		vector.DrawFilledCircle(screen, cx, cy, float32(ts*0.22), v.Item.Color, true)
		e.drawGlyph(screen, itemGlyphs[v.Item.Kind], v.X, v.Y+bob, colorBackground)
	}
}

// drawPlayer draws the player at its interpolated position with a dot
// showing which way it faces
func (e *EbitenRenderer) drawPlayer(screen *ebiten.Image, f *renderer.Frame) {
	ts := float32(f.TileSize)
	cx := float32(f.PlayerX) + ts/2
	cy := float32(f.PlayerY) + ts/2

	vector.DrawFilledCircle(screen, cx, cy, ts*0.4, colorPlayerOutline, true)
	vector.DrawFilledCircle(screen, cx, cy, ts*0.34, colorPlayer, true)

	dx, dy := f.Facing.Delta()
	vector.DrawFilledCircle(screen, cx+float32(dx)*ts*0.2, cy+float32(dy)*ts*0.2, ts*0.08, colorFacing, true)
}

// drawDarkness shades each tile by its distance from the player
func (e *EbitenRenderer) drawDarkness(screen *ebiten.Image, f *renderer.Frame) {
	ts := float32(f.TileSize)
	for _, v := range f.Tiles {
		if v.Darkness == 0 {
			continue
		}
		// color.RGBA is premultiplied, so black at alpha a is {0, 0, 0, a}
		shade := color.RGBA{0, 0, 0, v.Darkness}
		vector.DrawFilledRect(screen, float32(v.X), float32(v.Y), ts, ts, shade, false)
	}
}

// drawPanel draws a bordered, semi-transparent panel
func drawPanel(screen *ebiten.Image, x, y, w, h float32) {
	vector.DrawFilledRect(screen, x-1, y-1, w+2, h+2, colorPanelBorder, false)
	vector.DrawFilledRect(screen, x, y, w, h, colorPanelBackground, false)
}

// drawStatusBar draws the HUD lines in the top-left corner
func (e *EbitenRenderer) drawStatusBar(screen *ebiten.Image, f *renderer.Frame) {
	if len(f.Status) == 0 {
		return
	}
	lineHeight := int(e.getUIFontSize()) + 4

	lines := make([][]textSegment, len(f.Status))
	width := 0.0
	for i, s := range f.Status {
		lines[i] = e.parseMarkup(s)
		width = max(width, e.segmentsWidth(lines[i]))
	}

	x, y := panelPadding, panelPadding
	drawPanel(screen, float32(x), float32(y), float32(width)+2*panelPadding, float32(len(lines)*lineHeight+panelPadding))
	for i, segs := range lines {
		e.drawColoredTextSegments(screen, segs, x+panelPadding, y+panelPadding/2+i*lineHeight)
	}
}

// drawMessages draws the most recent messages at the bottom of the screen,
// fading them out as they age
func (e *EbitenRenderer) drawMessages(screen *ebiten.Image, screenWidth, screenHeight int) {
	now := time.Now()
	lineHeight := int(e.getUIFontSize()) + 4

	start := max(0, len(e.trackedMessages)-maxVisibleMessages)
	var visible [][]textSegment
	for _, m := range e.trackedMessages[start:] {
		alpha := messageAlpha(now.Sub(m.Timestamp))
		if alpha <= 0 {
			continue
		}
		segs := e.parseMarkup(m.Text)
		for i := range segs {
			segs[i].color = applyAlpha(segs[i].color, alpha)
		}
		visible = append(visible, segs)
	}
	if len(visible) == 0 {
		return
	}

	width := 100.0
	for _, segs := range visible {
		width = max(width, e.segmentsWidth(segs))
	}
	panelWidth := min(int(width)+2*panelPadding, screenWidth-40)
	panelHeight := len(visible)*lineHeight + panelPadding

	x := (screenWidth - panelWidth) / 2
	y := max(0, screenHeight-20-panelHeight)
	drawPanel(screen, float32(x), float32(y), float32(panelWidth), float32(panelHeight))
	for i, segs := range visible {
		e.drawColoredTextSegments(screen, segs, x+panelPadding, y+panelPadding/2+i*lineHeight)
	}
}

// drawInventoryPanel draws the inventory in the top-right corner. Each entry
// takes two rows: name and count, then the description.
func (e *EbitenRenderer) drawInventoryPanel(screen *ebiten.Image, f *renderer.Frame, screenWidth int) {
	x := screenWidth - inventoryPanelWidth - panelPadding
	y := panelPadding
	lineHeight := int(e.getUIFontSize()) + 6

	height := panelPadding + lineHeight + 4 + 2*lineHeight*len(f.Inventory)
	height = max(height, inventoryPanelHeight)
	drawPanel(screen, float32(x), float32(y), inventoryPanelWidth, float32(height))
	e.drawColoredTextWithFace(screen, f.InventoryTitle, x+panelPadding, y+panelPadding/2, colorAction, e.getBoldFontFace())

	rowY := y + panelPadding/2 + lineHeight + 4
	if len(f.Inventory) == 0 {
		e.drawColoredTextWithFace(screen, gotext.Get("(empty)"), x+panelPadding, rowY, colorSubtle, e.getSansFontFace())
		return
	}
	for _, line := range f.Inventory {
		vector.DrawFilledCircle(screen, float32(x+panelPadding+6), float32(rowY+lineHeight/2-2), 6, line.Color, true)
		label := fmt.Sprintf("%s x%d", line.Name, line.Count)
		e.drawColoredTextWithFace(screen, label, x+panelPadding+20, rowY, colorText, e.getSansFontFace())
		rowY += lineHeight
		e.drawColoredTextWithFace(screen, line.Description, x+panelPadding+20, rowY, colorSubtle, e.getSansFontFace())
		rowY += lineHeight
	}
}
