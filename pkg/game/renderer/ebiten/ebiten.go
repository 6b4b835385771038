package ebiten

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"

	engineinput "tentsandtrees/pkg/engine/input"
	"tentsandtrees/pkg/engine/logging"
	"tentsandtrees/pkg/game/renderer"
)

// minWindowWidth keeps the header and messages readable on small boards
const minWindowWidth = 480

// Init loads fonts. A missing font leaves text undrawn but the board playable.
func (e *EbitenRenderer) Init() {
	if err := e.loadFonts(); err != nil {
		logging.Log.WithError(err).Warn("window renderer fonts unavailable")
	}
}

// Clear is a no-op: Draw repaints the whole window every frame
func (e *EbitenRenderer) Clear() {}

// GetInput blocks until Update queues an intent. Closing the window quits.
func (e *EbitenRenderer) GetInput() engineinput.Intent {
	select {
	case intent := <-e.inputChan:
		return intent
	case <-e.closed:
		return engineinput.Intent{Action: engineinput.ActionQuit}
	}
}

// StyleText returns text unchanged; colors are chosen at draw time
func (e *EbitenRenderer) StyleText(text string, _ renderer.TextStyle) string {
	return text
}

// FormatText expands markup without styling
func (e *EbitenRenderer) FormatText(msg string, args ...any) string {
	return renderer.ExpandMarkup(renderer.Plain, msg, args...)
}

// ShowMessage writes to the log; the window only shows the game's message log
func (e *EbitenRenderer) ShowMessage(msg string) {
	logging.Log.Info(e.FormatText("%s", msg))
}

// windowSize returns the window dimensions for a board of the given size
func (e *EbitenRenderer) windowSize(size int) (int, int) {
	w := 2*frameBorder + (size+1)*e.tileSize
	if w < minWindowWidth {
		w = minWindowWidth
	}
	h := 2*frameBorder + headerHeight + (size+1)*e.tileSize + lineHeight + messageLines*lineHeight
	return w, h
}

// Run opens the window and blocks until it closes, either because the
// player closed it or the game loop called Shutdown.
// It must be called from the main goroutine.
func (e *EbitenRenderer) Run() error {
	defer e.closedOnce.Do(func() { close(e.closed) })

	e.snapshotMutex.RLock()
	size := e.snapshot.size
	e.snapshotMutex.RUnlock()

	e.windowWidth, e.windowHeight = e.windowSize(size)
	ebiten.SetWindowSize(e.windowWidth, e.windowHeight)
	ebiten.SetWindowTitle("Tents and Trees")

	if err := ebiten.RunGame(e); err != nil {
		return fmt.Errorf("window renderer: %w", err)
	}
	return nil
}

// Shutdown asks the window to close on its next Update
func (e *EbitenRenderer) Shutdown() {
	e.doneOnce.Do(func() { close(e.done) })
}
