package ebiten

import (
	"fmt"
	"image/color"
	"strconv"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"tentsandtrees/pkg/engine/world"
	"tentsandtrees/pkg/game/i18n"
)

// Draw renders the game to the screen (Ebiten interface)
func (e *EbitenRenderer) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)

	// Get snapshot for consistent rendering
	e.snapshotMutex.RLock()
	snap := e.snapshot
	e.snapshotMutex.RUnlock()

	if !snap.valid {
		return
	}

	now := e.now()

	e.drawHeader(screen, &snap)
	e.drawClues(screen, &snap)
	e.drawBoard(screen, &snap, now)
	e.drawMessages(screen, &snap)
}

// drawHeader draws the title, puzzle info and tent counter
func (e *EbitenRenderer) drawHeader(screen *ebiten.Image, snap *renderSnapshot) {
	e.drawText(screen, "Tents and Trees", frameBorder, frameBorder, colorAction, e.uiFace)

	info := i18n.T("BOARD_INFO", snap.size, snap.size, snap.treeCount, snap.seed)
	status := i18n.T("TENTS_PLACED", snap.placed, snap.treeCount)
	statusColor := colorSubtle
	if snap.won {
		statusColor = colorClueMet
	}

	e.drawText(screen, info, frameBorder, frameBorder+lineHeight, colorSubtle, e.uiFace)
	e.drawText(screen, status, frameBorder+e.tileSize*snap.size/2+e.tileSize, frameBorder, statusColor, e.uiFace)
}

// clueColor colors a clue by comparing it with the tents placed in that line
func clueColor(clue, placed int) color.RGBA {
	switch {
	case placed == clue:
		return colorClueMet
	case placed > clue:
		return colorClueOver
	default:
		return colorClue
	}
}

// drawClues draws the column clues above the board and the row clues to its left
func (e *EbitenRenderer) drawClues(screen *ebiten.Image, snap *renderSnapshot) {
	ox, oy := e.boardOrigin()

	for col := 0; col < snap.size; col++ {
		x := ox + col*e.tileSize
		e.drawCentered(screen, strconv.Itoa(snap.colCounts[col]), x, oy-e.tileSize, clueColor(snap.colCounts[col], snap.colTents[col]))
	}
	for row := 0; row < snap.size; row++ {
		y := oy + row*e.tileSize
		e.drawCentered(screen, strconv.Itoa(snap.rowCounts[row]), ox-e.tileSize, y, clueColor(snap.rowCounts[row], snap.rowTents[row]))
	}
}

// drawBoard draws every cell, the cursor and, after a win, the rainbow
func (e *EbitenRenderer) drawBoard(screen *ebiten.Image, snap *renderSnapshot, now time.Time) {
	ox, oy := e.boardOrigin()
	boardPx := float32(snap.size * e.tileSize)
	vector.DrawFilledRect(screen, float32(ox), float32(oy), boardPx, boardPx, colorBoardBackground, false)

	for row := 0; row < snap.size; row++ {
		for col := 0; col < snap.size; col++ {
			x := float32(ox + col*e.tileSize)
			y := float32(oy + row*e.tileSize)

			bg := colorCellBlank
			if snap.won {
				bg = rainbowColor(row, col, snap.wonAt, now)
			}
			e.drawTile(screen, snap.cells[row][col], x, y, bg)
		}
	}

	if !snap.won {
		x := float32(ox + snap.cursorCol*e.tileSize)
		y := float32(oy + snap.cursorRow*e.tileSize)
		vector.StrokeRect(screen, x+1, y+1, float32(e.tileSize)-2, float32(e.tileSize)-2, 3, pulse(colorCursor, now), false)
	}
}

// drawTile draws a single cell at x, y with the given background
func (e *EbitenRenderer) drawTile(screen *ebiten.Image, cellState world.CellState, x, y float32, bg color.RGBA) {
	tile := float32(e.tileSize)
	inner := tile - 2*cellMargin
	vector.DrawFilledRect(screen, x+cellMargin, y+cellMargin, inner, inner, bg, false)

	cx, cy := x+tile/2, y+tile/2

	switch cellState {
	case world.StateMarked:
		vector.DrawFilledRect(screen, x+tile*0.3, y+tile*0.3, tile*0.4, tile*0.4, colorGrass, false)
	case world.StateTent:
		top := cy - tile*0.28
		left, right, base := cx-tile*0.28, cx+tile*0.28, cy+tile*0.25
		vector.StrokeLine(screen, left, base, cx, top, 3, colorTent, true)
		vector.StrokeLine(screen, cx, top, right, base, 3, colorTent, true)
		vector.StrokeLine(screen, left, base, right, base, 3, colorTent, true)
	case world.StateTree:
		vector.DrawFilledRect(screen, cx-tile*0.05, cy, tile*0.1, tile*0.3, colorTrunk, false)
		vector.DrawFilledCircle(screen, cx, cy-tile*0.08, tile*0.24, colorTree, true)
	}
}

// drawMessages draws the message log below the board
func (e *EbitenRenderer) drawMessages(screen *ebiten.Image, snap *renderSnapshot) {
	_, oy := e.boardOrigin()
	y := oy + snap.size*e.tileSize + lineHeight/2

	for i, msg := range snap.messages {
		// older messages fade towards the subtle color
		c := colorText
		if i < len(snap.messages)-1 {
			c = colorSubtle
		}
		e.drawText(screen, msg, frameBorder, y+i*lineHeight, c, e.uiFace)
	}
}

// drawText draws str with its top-left corner at x, y
func (e *EbitenRenderer) drawText(screen *ebiten.Image, str string, x, y int, col color.Color, face *text.GoTextFace) {
	if face == nil {
		return
	}

	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(col)

	text.Draw(screen, str, face, op)
}

// drawCentered draws str centered in the tile whose top-left corner is x, y
func (e *EbitenRenderer) drawCentered(screen *ebiten.Image, str string, x, y int, col color.Color) {
	if e.clueFace == nil {
		return
	}

	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(x)+float64(e.tileSize)/2, float64(y)+float64(e.tileSize)/2)
	op.ColorScale.ScaleWithColor(col)
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter

	text.Draw(screen, str, e.clueFace, op)
}

// String describes the renderer for logs
func (e *EbitenRenderer) String() string {
	return fmt.Sprintf("ebiten %dx%d tile=%d", e.windowWidth, e.windowHeight, e.tileSize)
}
