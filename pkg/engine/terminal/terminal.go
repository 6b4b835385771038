package terminal

import (
	"os"

	"golang.org/x/term"
)

const (
	DefaultWidth  = 80
	DefaultHeight = 24
)

// Escape sequences for full-screen redraws
const (
	ClearScreen = "\033[H\033[2J"
	HideCursor  = "\033[?25l"
	ShowCursor  = "\033[?25h"
)

// GetSize returns the current terminal width and height.
// Falls back to defaults if the size cannot be determined.
func GetSize() (width, height int) {
	width, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return DefaultWidth, DefaultHeight
	}
	return width, height
}

// IsInteractive reports whether stdin is a terminal that can enter raw mode
func IsInteractive() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// BoardFits reports whether a board with the given number of rows and
// columns, each drawn cellWidth characters wide, plus extraRows lines of
// surrounding text fits in a terminal of the given dimensions.
func BoardFits(width, height, size, cellWidth, extraRows int) bool {
	// one extra column and row for the clues
	return (size+1)*cellWidth <= width && size+1+extraRows <= height
}
