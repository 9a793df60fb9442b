package terminal

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

const (
	DefaultWidth  = 80
	DefaultHeight = 24
)

// GetSize returns the current terminal width and height.
// Falls back to defaults if the size cannot be determined.
func GetSize() (width, height int) {
	width, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 || height <= 0 {
		return DefaultWidth, DefaultHeight
	}
	return width, height
}

// IsTerminal reports whether stdin is attached to a terminal.
func IsTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// Viewport converts a terminal size into a tile window, given how many
// columns one tile takes and how many rows are reserved for the HUD.
func Viewport(width, height, cellWidth, reservedRows int) (cols, rows int) {
	if cellWidth < 1 {
		cellWidth = 1
	}
	cols = width / cellWidth
	rows = height - reservedRows
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}
	return cols, rows
}

// Home moves the cursor to the top-left corner and clears the screen.
// In raw mode lines must end with "\r\n".
func Home(w io.Writer) {
	fmt.Fprint(w, "\x1b[H\x1b[2J")
}
