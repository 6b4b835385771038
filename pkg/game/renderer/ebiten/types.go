// Package ebiten provides an Ebiten-based 2D graphical renderer for Tents and Trees.
package ebiten

import (
	"sync"
	"time"

	"github.com/hajimehoshi/ebiten/v2/text/v2"

	engineinput "tentsandtrees/pkg/engine/input"
	"tentsandtrees/pkg/engine/world"
)

// renderSnapshot holds a consistent copy of the game state for Draw.
// The game loop goroutine writes it, ebiten's goroutine reads it.
type renderSnapshot struct {
	valid     bool
	size      int
	cells     [][]world.CellState
	rowCounts []int
	colCounts []int
	rowTents  []int
	colTents  []int
	cursorRow int
	cursorCol int
	placed    int
	treeCount int
	seed      int64
	won       bool
	wonAt     time.Time
	messages  []string
}

// EbitenRenderer is the Ebiten-based graphical renderer
type EbitenRenderer struct {
	// Window dimensions
	windowWidth  int
	windowHeight int

	tileSize int

	// Font sources for text rendering
	sansFontSource *text.GoTextFaceSource
	monoFontSource *text.GoTextFaceSource
	uiFace         *text.GoTextFace
	clueFace       *text.GoTextFace

	// Cached render snapshot for consistent drawing
	snapshot      renderSnapshot
	snapshotMutex sync.RWMutex

	// Input channel for communication between Ebiten and game loop
	inputChan chan engineinput.Intent

	// done is closed when the game loop asks the window to close
	done     chan struct{}
	doneOnce sync.Once

	// closed is closed when the window is gone
	closed     chan struct{}
	closedOnce sync.Once

	// now is the clock used for animations
	now func() time.Time
}

// New creates a new Ebiten renderer
func New() *EbitenRenderer {
	return &EbitenRenderer{
		tileSize:  defaultTileSize,
		inputChan: make(chan engineinput.Intent, 16),
		done:      make(chan struct{}),
		closed:    make(chan struct{}),
		now:       time.Now,
	}
}
