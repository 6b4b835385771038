package ebiten

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	engineinput "tentsandtrees/pkg/engine/input"
)

// keyCodes maps ebiten keys to binding codes (raw layer)
var keyCodes = map[ebiten.Key]string{
	ebiten.KeyArrowUp:    "arrow_up",
	ebiten.KeyArrowDown:  "arrow_down",
	ebiten.KeyArrowLeft:  "arrow_left",
	ebiten.KeyArrowRight: "arrow_right",
	ebiten.KeyK:          "k",
	ebiten.KeyJ:          "j",
	ebiten.KeyH:          "h",
	ebiten.KeyL:          "l",
	ebiten.KeySpace:      "space",
	ebiten.KeyEnter:      "enter",
	ebiten.KeyT:          "t",
	ebiten.KeyR:          "r",
	ebiten.KeyD:          "d",
	ebiten.KeyF9:         "f9",
	ebiten.KeyP:          "p",
	ebiten.KeyQ:          "q",
	ebiten.KeyEscape:     "escape",
}

// Update handles input (Ebiten interface)
func (e *EbitenRenderer) Update() error {
	select {
	case <-e.done:
		return ebiten.Termination
	default:
	}

	if intent := e.checkMouse(); intent.Action != engineinput.ActionNone {
		e.queue(intent)
	} else if intent := e.checkInput(); intent.Action != engineinput.ActionNone {
		e.queue(intent)
	}

	return nil
}

// queue sends an intent to the game loop without blocking ebiten
func (e *EbitenRenderer) queue(intent engineinput.Intent) {
	select {
	case e.inputChan <- intent:
	default:
		// Channel full, drop input
	}
}

// checkInput maps the first key pressed this tick to an intent
func (e *EbitenRenderer) checkInput() engineinput.Intent {
	// "?" is shift+slash on most layouts
	if inpututil.IsKeyJustPressed(ebiten.KeySlash) && ebiten.IsKeyPressed(ebiten.KeyShift) {
		return engineinput.CodeToIntent(engineinput.DeviceKeyboard, "?")
	}

	for key, code := range keyCodes {
		if inpututil.IsKeyJustPressed(key) {
			return engineinput.CodeToIntent(engineinput.DeviceKeyboard, code)
		}
	}
	return engineinput.Intent{Action: engineinput.ActionNone}
}

// checkMouse turns a left click on a board cell into a toggle intent
func (e *EbitenRenderer) checkMouse() engineinput.Intent {
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return engineinput.Intent{Action: engineinput.ActionNone}
	}

	e.snapshotMutex.RLock()
	size := e.snapshot.size
	e.snapshotMutex.RUnlock()

	x, y := ebiten.CursorPosition()
	row, col, ok := e.cellAt(x, y, size)
	if !ok {
		return engineinput.Intent{Action: engineinput.ActionNone}
	}
	return engineinput.ToggleAt(row, col)
}

// boardOrigin returns the top-left pixel of board cell (0, 0)
func (e *EbitenRenderer) boardOrigin() (int, int) {
	return frameBorder + e.tileSize, frameBorder + headerHeight + e.tileSize
}

// cellAt converts a window position to a board cell
func (e *EbitenRenderer) cellAt(x, y, size int) (row, col int, ok bool) {
	ox, oy := e.boardOrigin()
	if x < ox || y < oy {
		return 0, 0, false
	}
	col = (x - ox) / e.tileSize
	row = (y - oy) / e.tileSize
	if row >= size || col >= size {
		return 0, 0, false
	}
	return row, col, true
}

// Layout returns the game's logical screen size
func (e *EbitenRenderer) Layout(outsideWidth, outsideHeight int) (int, int) {
	e.windowWidth = outsideWidth
	e.windowHeight = outsideHeight
	return outsideWidth, outsideHeight
}
