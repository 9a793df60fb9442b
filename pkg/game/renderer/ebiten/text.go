// Package ebiten provides an Ebiten-based 2D graphical renderer for Campus Lockdown.
package ebiten

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"campuslockdown/pkg/game/renderer"
)

// styleColor maps a markup style to its palette color
func styleColor(s renderer.TextStyle) color.Color {
	switch s {
	case renderer.StyleItem:
		return colorItem
	case renderer.StyleRoom:
		return colorRoom
	case renderer.StyleAction:
		return colorAction
	case renderer.StyleDenied:
		return colorDenied
	case renderer.StyleSubtle:
		return colorSubtle
	case renderer.StylePlayer:
		return colorPlayer
	default:
		return colorText
	}
}

// parseMarkup parses a message string with markup (ITEM{}, ROOM{}, ACTION{}) and returns colored segments
func (e *EbitenRenderer) parseMarkup(msg string) []textSegment {
	spans := renderer.ParseMarkup(msg)
	segments := make([]textSegment, 0, len(spans))
	for _, s := range spans {
		segments = append(segments, textSegment{text: s.Text, color: styleColor(s.Style)})
	}
	return segments
}

// drawGlyph draws a glyph centred in the tile at (x, y) using the mono font
func (e *EbitenRenderer) drawGlyph(screen *ebiten.Image, glyph string, x, y float64, col color.Color) {
	face := e.getMonoFontFace()
	w, h := text.Measure(glyph, face, 0)

	op := &text.DrawOptions{}
	op.GeoM.Translate(x+(float64(e.tileSize)-w)/2, y+(float64(e.tileSize)-h)/2)
	op.ColorScale.ScaleWithColor(col)

	text.Draw(screen, glyph, face, op)
}

// drawColoredTextWithFace draws text with a specific color and font face.
func (e *EbitenRenderer) drawColoredTextWithFace(screen *ebiten.Image, str string, x, y int, col color.Color, face *text.GoTextFace) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(col)

	text.Draw(screen, str, face, op)
}

// drawColoredTextSegments draws multiple text segments with different colors
func (e *EbitenRenderer) drawColoredTextSegments(screen *ebiten.Image, segments []textSegment, x, y int) {
	face := e.getSansFontFace()
	currentX := float64(x)

	for _, seg := range segments {
		if seg.text == "" {
			continue
		}

		op := &text.DrawOptions{}
		op.GeoM.Translate(currentX, float64(y))
		op.ColorScale.ScaleWithColor(seg.color)

		text.Draw(screen, seg.text, face, op)

		w, _ := text.Measure(seg.text, face, 0)
		currentX += w
	}
}

// getTextWidth returns the width of a string in pixels at UI font size
func (e *EbitenRenderer) getTextWidth(str string) float64 {
	w, _ := text.Measure(str, e.getSansFontFace(), 0)
	return w
}

// segmentsWidth returns the total width of a line of segments
func (e *EbitenRenderer) segmentsWidth(segments []textSegment) float64 {
	total := 0.0
	for _, seg := range segments {
		total += e.getTextWidth(seg.text)
	}
	return total
}

// applyAlpha applies an alpha value to a color
func applyAlpha(c color.Color, alpha float64) color.Color {
	alpha = max(0, min(alpha, 1))

	r, g, b, a := c.RGBA()
	// Fade to transparent black; color.RGBA is premultiplied
	return color.RGBA{
		uint8(float64(r>>8) * alpha),
		uint8(float64(g>>8) * alpha),
		uint8(float64(b>>8) * alpha),
		uint8(float64(a>>8) * alpha),
	}
}
