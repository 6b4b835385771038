package ebiten

import "image/color"

// Color palette
var (
	colorBackground      = color.RGBA{26, 26, 46, 255}    // Dark blue-gray
	colorBoardBackground = color.RGBA{15, 15, 26, 255}    // Darker for the board
	colorCellBlank       = color.RGBA{60, 60, 80, 255}    // Empty cell
	colorGrass           = color.RGBA{70, 140, 70, 255}   // Marked cell
	colorTree            = color.RGBA{40, 200, 90, 255}   // Tree crown
	colorTrunk           = color.RGBA{140, 95, 50, 255}   // Tree trunk
	colorTent            = color.RGBA{255, 200, 80, 255}  // Tent outline
	colorCursor          = color.RGBA{180, 150, 250, 255} // Keyboard cursor frame
	colorClue            = color.RGBA{200, 210, 245, 255} // Clue not yet met
	colorClueMet         = color.RGBA{100, 255, 150, 255} // Clue met exactly
	colorClueOver        = color.RGBA{255, 100, 100, 255} // Too many tents
	colorText            = color.RGBA{200, 210, 245, 255} // Soft off-white
	colorSubtle          = color.RGBA{120, 130, 180, 255} // Soft blue-purple-gray
	colorAction          = color.RGBA{180, 150, 250, 255} // Blue-purple
)

// Layout
const (
	defaultTileSize = 56
	cellMargin      = 3
	frameBorder     = 20
	headerHeight    = 56
	uiFontSize      = 16.0
	clueFontSize    = 22.0
	messageLines    = 5
	lineHeight      = 22
)
