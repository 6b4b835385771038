package devtools

import (
	"fmt"
	"html"
	"os"
	"path/filepath"
	"strings"
	"time"

	"tentsandtrees/pkg/engine/world"
	"tentsandtrees/pkg/game/renderer"
	"tentsandtrees/pkg/game/state"
)

const screenshotStyle = `    <style>
        body {
            background-color: #1a1a2e;
            color: #eee;
            font-family: 'Courier New', monospace;
            padding: 20px;
        }
        .header { color: #bb86fc; font-size: 18px; margin-bottom: 10px; }
        .info { color: #888; margin-bottom: 20px; }
        .board-container {
            background-color: #0f0f1a;
            padding: 20px;
            border-radius: 8px;
            display: inline-block;
        }
        .board-row { white-space: pre; line-height: 1.4; font-size: 20px; }
        .clue { color: #c8d2f5; font-weight: bold; }
        .clue-met { color: #64ff96; }
        .clue-over { color: #ff6464; font-weight: bold; }
        .blank { color: #555; }
        .grass { color: #46a046; }
        .tent { color: #ffc850; font-weight: bold; }
        .tree { color: #28c85a; font-weight: bold; }
        .cursor { background-color: #3c3c64; }
        .messages { margin-top: 20px; border-top: 1px solid #333; padding-top: 10px; }
        .message { color: #ccc; margin: 5px 0; }
    </style>
`

// clueClass picks the CSS class for a clue given the tents in its line
func clueClass(clue, placed int) string {
	switch {
	case placed == clue:
		return "clue-met"
	case placed > clue:
		return "clue-over"
	default:
		return "clue"
	}
}

// getCellHTMLInfo returns the icon and CSS class for a cell
func getCellHTMLInfo(c *world.Cell) (string, string) {
	switch c.State() {
	case world.StateTree:
		return "♣", "tree"
	case world.StateTent:
		return "▲", "tent"
	case world.StateMarked:
		return "░", "grass"
	default:
		return "·", "blank"
	}
}

// ScreenshotHTML renders the play board, clues and messages as an HTML page
func ScreenshotHTML(g *state.Game) string {
	board := g.Board
	size := board.Size()

	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n<html>\n<head>\n    <meta charset=\"UTF-8\">\n    <title>Tents and Trees - Screenshot</title>\n")
	b.WriteString(screenshotStyle)
	b.WriteString("</head>\n<body>\n")

	fmt.Fprintf(&b, "    <div class=\"header\">Tents and Trees</div>\n")
	fmt.Fprintf(&b, "    <div class=\"info\">seed %d, %d trees, %d/%d tents</div>\n",
		g.Puzzle.Seed, g.TreeCount(), g.PlacedTents, g.TreeCount())

	b.WriteString("    <div class=\"board-container\">\n")

	// column clues
	b.WriteString("        <div class=\"board-row\">   ")
	for col := 0; col < size; col++ {
		clue := g.Puzzle.ColCounts[col]
		fmt.Fprintf(&b, `<span class="%s"> %d </span>`, clueClass(clue, board.ColTents(col)), clue)
	}
	b.WriteString("</div>\n")

	for row := 0; row < size; row++ {
		clue := g.Puzzle.RowCounts[row]
		fmt.Fprintf(&b, `        <div class="board-row"><span class="%s">%2d </span>`, clueClass(clue, board.RowTents(row)), clue)
		for col := 0; col < size; col++ {
			icon, class := getCellHTMLInfo(board.GetCell(row, col))
			if row == g.CursorRow && col == g.CursorCol && !g.Won {
				class += " cursor"
			}
			fmt.Fprintf(&b, `<span class="%s"> %s </span>`, class, icon)
		}
		b.WriteString("</div>\n")
	}

	b.WriteString("    </div>\n")

	if len(g.Messages) > 0 {
		b.WriteString("    <div class=\"messages\">\n")
		for _, msg := range g.Messages {
			// Strip ANSI codes for HTML output
			fmt.Fprintf(&b, "        <div class=\"message\">%s</div>\n", html.EscapeString(renderer.StripANSI(msg)))
		}
		b.WriteString("    </div>\n")
	}

	b.WriteString("</body>\n</html>\n")
	return b.String()
}

// SaveScreenshotHTML writes the current board as an HTML file in dir and
// returns its path
func SaveScreenshotHTML(g *state.Game, dir string) (string, error) {
	timestamp := time.Now().Format("20060102-150405")
	path := filepath.Join(dir, fmt.Sprintf("screenshot-%s.html", timestamp))

	if err := os.WriteFile(path, []byte(ScreenshotHTML(g)), 0644); err != nil {
		return "", fmt.Errorf("writing screenshot: %w", err)
	}
	return path, nil
}
