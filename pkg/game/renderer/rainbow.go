package renderer

import (
	"image/color"
	"time"
)

// RainbowStep is how long each hue holds before the win animation shifts
const RainbowStep = 120 * time.Millisecond

// Rainbow holds the win animation hues in order
var Rainbow = []color.RGBA{
	{255, 80, 80, 255},
	{255, 170, 60, 255},
	{250, 230, 80, 255},
	{90, 220, 110, 255},
	{80, 190, 255, 255},
	{170, 120, 255, 255},
}

// RainbowIndex picks the hue for a cell on a given animation frame.
// Diagonals share a hue and the bands move one cell per frame.
func RainbowIndex(row, col, frame int) int {
	idx := (row + col - frame) % len(Rainbow)
	if idx < 0 {
		idx += len(Rainbow)
	}
	return idx
}

// RainbowFrame converts the time since the win into an animation frame
func RainbowFrame(wonAt, now time.Time) int {
	if wonAt.IsZero() || now.Before(wonAt) {
		return 0
	}
	return int(now.Sub(wonAt) / RainbowStep)
}
