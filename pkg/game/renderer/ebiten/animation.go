package ebiten

import (
	"image/color"
	"math"
	"time"

	"tentsandtrees/pkg/game/renderer"
)

// rainbowColor returns the win animation color for a cell at time now
func rainbowColor(row, col int, wonAt, now time.Time) color.RGBA {
	frame := renderer.RainbowFrame(wonAt, now)
	return renderer.Rainbow[renderer.RainbowIndex(row, col, frame)]
}

// pulse scales a color between 60% and 100% brightness on a one second sine wave
func pulse(base color.RGBA, now time.Time) color.RGBA {
	const pulsePeriod = 1000.0
	phase := float64(now.UnixMilli()%int64(pulsePeriod)) / pulsePeriod
	value := (math.Sin(phase*2*math.Pi) + 1.0) / 2.0

	brightness := 0.6 + 0.4*value
	return color.RGBA{
		R: uint8(float64(base.R) * brightness),
		G: uint8(float64(base.G) * brightness),
		B: uint8(float64(base.B) * brightness),
		A: base.A,
	}
}
