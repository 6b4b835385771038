package input

import (
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// ErrInterrupted is returned when the player presses Ctrl+C in raw mode
var ErrInterrupted = errors.New("interrupted")

// readByte reads a single byte from r
func readByte(r io.Reader) (byte, error) {
	buf := make([]byte, 1)
	_, err := r.Read(buf)
	return buf[0], err
}

// decodeKey turns the bytes of one keypress into a binding code.
// Arrow keys arrive as CSI (ESC [) or SS3 (ESC O) sequences.
func decodeKey(r io.Reader) (string, error) {
	b1, err := readByte(r)
	if err != nil {
		return "", err
	}

	switch {
	case b1 == 3:
		return "", ErrInterrupted
	case b1 == '\n' || b1 == '\r':
		return "enter", nil
	case b1 == ' ':
		return "space", nil
	case b1 != 0x1b:
		if b1 >= 32 && b1 < 127 {
			return string(b1), nil
		}
		return "", nil
	}

	b2, err := readByte(r)
	if err != nil {
		return "escape", nil
	}
	if b2 != '[' && b2 != 'O' {
		return "escape", nil
	}

	b3, err := readByte(r)
	if err != nil {
		return "", nil
	}

	switch b3 {
	case 'A':
		return "arrow_up", nil
	case 'B':
		return "arrow_down", nil
	case 'C':
		return "arrow_right", nil
	case 'D':
		return "arrow_left", nil
	}

	// Unknown escape sequence - discard it
	return "", nil
}

// GetInputWithArrows reads a single keypress from stdin in raw mode and
// returns its binding code ("arrow_up", "space", "r", ...).
// Returns an empty code for keys that have no name.
func GetInputWithArrows() (string, error) {
	fd := int(os.Stdin.Fd())

	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return "", fmt.Errorf("cannot set terminal to raw mode: %w", err)
	}
	defer term.Restore(fd, oldState)

	return decodeKey(os.Stdin)
}
