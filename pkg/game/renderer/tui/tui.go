package tui

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/gookit/color"
	"github.com/sirupsen/logrus"

	"tentsandtrees/pkg/engine/input"
	"tentsandtrees/pkg/engine/logging"
	"tentsandtrees/pkg/engine/terminal"
	"tentsandtrees/pkg/engine/world"
	"tentsandtrees/pkg/game/i18n"
	"tentsandtrees/pkg/game/renderer"
	"tentsandtrees/pkg/game/state"
)

// Board icons
const (
	IconBlank = "·"
	IconGrass = "░"
	IconTent  = "▲"
	IconTree  = "♣"
)

// cellWidth is the number of columns one board cell takes, brackets included
const cellWidth = 3

// Lines printed around the board: title, info, blank, status, actions,
// messages pane (header + 5 messages + footer)
const chromeRows = 12

// keyReader reads one keypress and returns its binding code
type keyReader func() (string, error)

// TUIRenderer is the terminal-based renderer implementation
type TUIRenderer struct {
	out     io.Writer
	readKey keyReader

	colorTitle       color.Style
	colorClue        color.Style
	colorClueMet     color.Style
	colorClueOver    color.Style
	colorTree        color.Style
	colorTent        color.Style
	colorGrass       color.Style
	colorBlank       color.Style
	colorCursor      color.Style
	colorAction      color.Style
	colorActionShort color.Style
	colorSubtle      color.Style
	colorDenied      color.Style

	// rainbow holds one style per renderer.Rainbow hue
	rainbow []*color.RGBStyle

	// now is the clock the win animation is timed against
	now func() time.Time

	// frame is the win animation frame of the last render
	frame int
}

// New creates a new TUI renderer writing to stdout
func New() *TUIRenderer {
	return &TUIRenderer{
		out:     os.Stdout,
		readKey: input.GetInputWithArrows,
		now:     time.Now,
	}
}

// Init initializes the TUI renderer colors
func (t *TUIRenderer) Init() {
	t.colorTitle = color.Style{color.FgMagenta, color.OpBold}
	t.colorClue = color.Style{color.FgWhite, color.OpBold}
	t.colorClueMet = color.Style{color.FgGreen}
	t.colorClueOver = color.Style{color.FgRed, color.OpBold}
	t.colorTree = color.Style{color.FgGreen, color.OpBold}
	t.colorTent = color.Style{color.FgYellow, color.OpBold}
	t.colorGrass = color.Style{color.FgGreen}
	t.colorBlank = color.Style{color.FgGray}
	t.colorCursor = color.Style{color.FgWhite, color.BgBlue, color.OpBold}
	t.colorAction = color.Style{color.FgMagenta}
	t.colorActionShort = color.Style{color.FgMagenta, color.OpBold}
	t.colorSubtle = color.Style{color.FgGray, color.OpBold}
	t.colorDenied = color.Style{color.FgRed, color.OpBold}

	t.rainbow = make([]*color.RGBStyle, len(renderer.Rainbow))
	for i, c := range renderer.Rainbow {
		t.rainbow[i] = color.NewRGBStyle(color.RGB(c.R, c.G, c.B))
	}
}

// Clear clears the terminal screen
func (t *TUIRenderer) Clear() {
	fmt.Fprint(t.out, terminal.ClearScreen)
}

// GetInput reads one keypress and returns a high-level Intent.
// Ctrl+C and read failures quit the game.
func (t *TUIRenderer) GetInput() input.Intent {
	code, err := t.readKey()
	if err != nil {
		if !errors.Is(err, input.ErrInterrupted) {
			logging.Log.WithError(err).Error("cannot read terminal input")
		}
		return input.Intent{Action: input.ActionQuit}
	}
	return input.CodeToIntent(input.DeviceTerminal, code)
}

// StyleText applies a style to text
func (t *TUIRenderer) StyleText(text string, style renderer.TextStyle) string {
	switch style {
	case renderer.StyleTitle:
		return t.colorTitle.Sprint(text)
	case renderer.StyleClue:
		return t.colorClue.Sprint(text)
	case renderer.StyleClueMet:
		return t.colorClueMet.Sprint(text)
	case renderer.StyleClueOver:
		return t.colorClueOver.Sprint(text)
	case renderer.StyleTree:
		return t.colorTree.Sprint(text)
	case renderer.StyleTent:
		return t.colorTent.Sprint(text)
	case renderer.StyleGrass:
		return t.colorGrass.Sprint(text)
	case renderer.StyleBlank:
		return t.colorBlank.Sprint(text)
	case renderer.StyleCursor:
		return t.colorCursor.Sprint(text)
	case renderer.StyleAction:
		return t.colorAction.Sprint(text)
	case renderer.StyleActionShort:
		return t.colorActionShort.Sprint(text)
	case renderer.StyleSubtle:
		return t.colorSubtle.Sprint(text)
	case renderer.StyleDenied:
		return t.colorDenied.Sprint(text)
	default:
		return text
	}
}

// FormatText formats a message with the markup system
func (t *TUIRenderer) FormatText(msg string, args ...any) string {
	return renderer.ExpandMarkup(t.StyleText, msg, args...)
}

// ShowMessage displays a message to the user
func (t *TUIRenderer) ShowMessage(msg string) {
	fmt.Fprintln(t.out, t.FormatText("%s", msg))
}

// RenderFrame renders a complete game frame
func (t *TUIRenderer) RenderFrame(g *state.Game) {
	t.frame = 0
	if g.Won {
		t.frame = renderer.RainbowFrame(g.WonAt, t.now())
	}

	fmt.Fprintln(t.out, t.colorTitle.Sprint("Tents and Trees"))
	fmt.Fprintln(t.out, t.colorSubtle.Sprint(i18n.T("BOARD_INFO", g.Size(), g.Size(), g.TreeCount(), g.Puzzle.Seed)))
	fmt.Fprintln(t.out)

	width, height := terminal.GetSize()
	if !terminal.BoardFits(width, height, g.Size(), cellWidth, chromeRows) {
		logging.Log.WithFields(logrus.Fields{
			"width":  width,
			"height": height,
			"size":   g.Size(),
		}).Warn("terminal smaller than the board")
	}

	t.printBoard(g)
	t.printStatus(g)
	t.printPossibleActions()
	t.printMessagesPane(g, width)
}

// clueText styles a clue by comparing it with the tents placed in that line
func (t *TUIRenderer) clueText(clue, placed int) string {
	s := fmt.Sprintf("%*d", cellWidth-1, clue) + " "
	switch {
	case placed == clue:
		return t.colorClueMet.Sprint(s)
	case placed > clue:
		return t.colorClueOver.Sprint(s)
	default:
		return t.colorClue.Sprint(s)
	}
}

// printBoard prints the column clues, then each row with its clue on the left
func (t *TUIRenderer) printBoard(g *state.Game) {
	board := g.Board
	size := board.Size()

	var sb strings.Builder
	sb.WriteString(strings.Repeat(" ", cellWidth))
	for col := 0; col < size; col++ {
		sb.WriteString(t.clueText(g.Puzzle.ColCounts[col], board.ColTents(col)))
	}
	fmt.Fprintln(t.out, sb.String())

	for row := 0; row < size; row++ {
		sb.Reset()
		sb.WriteString(t.clueText(g.Puzzle.RowCounts[row], board.RowTents(row)))
		for col := 0; col < size; col++ {
			sb.WriteString(t.renderCell(g, board.GetCell(row, col)))
		}
		fmt.Fprintln(t.out, sb.String())
	}
}

// renderCell returns the string representation of a cell, brackets included
func (t *TUIRenderer) renderCell(g *state.Game, c *world.Cell) string {
	icon, style := cellIcon(c)

	if g.Won {
		hue := t.rainbow[renderer.RainbowIndex(c.Row, c.Col, t.frame)]
		return " " + hue.Sprint(icon) + " "
	}

	if c.Row == g.CursorRow && c.Col == g.CursorCol {
		return t.colorCursor.Sprint("[" + icon + "]")
	}

	return " " + t.StyleText(icon, style) + " "
}

// cellIcon maps a cell state to its icon and style
func cellIcon(c *world.Cell) (string, renderer.TextStyle) {
	switch c.State() {
	case world.StateTree:
		return IconTree, renderer.StyleTree
	case world.StateTent:
		return IconTent, renderer.StyleTent
	case world.StateMarked:
		return IconGrass, renderer.StyleGrass
	default:
		return IconBlank, renderer.StyleBlank
	}
}

// printStatus prints the placed tent counter
func (t *TUIRenderer) printStatus(g *state.Game) {
	fmt.Fprintln(t.out)
	status := i18n.T("TENTS_PLACED", g.PlacedTents, g.TreeCount())
	if g.Won {
		status = t.colorClueMet.Sprint(status)
	} else {
		status = t.colorSubtle.Sprint(status)
	}
	fmt.Fprintln(t.out, status)
}

// printPossibleActions prints the main key bindings on one line
func (t *TUIRenderer) printPossibleActions() {
	fmt.Fprintln(t.out, t.FormatText("ACTION{space} toggle  ACTION{reset}  ACTION{?} help  ACTION{quit}"))
}

// printMessagesPane renders the messages log pane
func (t *TUIRenderer) printMessagesPane(g *state.Game, width int) {
	label := " Messages "
	sideLen := (width - len(label)) / 2
	if sideLen < 1 {
		sideLen = 1
	}
	rightLen := width - sideLen - len(label)
	if rightLen < 1 {
		rightLen = 1
	}

	fmt.Fprintln(t.out)
	fmt.Fprintln(t.out, t.colorSubtle.Sprint(strings.Repeat("─", sideLen)+label+strings.Repeat("─", rightLen)))

	if len(g.Messages) == 0 {
		fmt.Fprintln(t.out, t.colorSubtle.Sprint("  (no messages)"))
	} else {
		for _, msg := range g.Messages {
			fmt.Fprintf(t.out, "  %s\n", msg)
		}
	}

	fmt.Fprintln(t.out, t.colorSubtle.Sprint(strings.Repeat("─", width)))
}
