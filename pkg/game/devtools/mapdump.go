// Package devtools provides developer tools for testing and debugging.
package devtools

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"tentsandtrees/pkg/engine/world"
	"tentsandtrees/pkg/game/generator"
	"tentsandtrees/pkg/game/rules"
	"tentsandtrees/pkg/game/state"
)

const boardDumpFilename = "board.txt"

// writeGrid writes one symbol per cell with the row clues on the right
func writeGrid(w io.Writer, grid *world.Grid, rowCounts []int) {
	lines := strings.Split(strings.TrimSuffix(grid.String(), "\n"), "\n")
	for row, line := range lines {
		fmt.Fprintf(w, "%s  %d\n", line, rowCounts[row])
	}
}

// writeColClues writes the column clues under a grid, left to right
func writeColClues(w io.Writer, colCounts []int) {
	clues := make([]string, len(colCounts))
	for i, c := range colCounts {
		clues[i] = strconv.Itoa(c)
	}
	fmt.Fprintf(w, "cols: %s\n", strings.Join(clues, " "))
}

// WriteBoardDump writes a full debug dump: metadata, legend, solution board,
// play board, verdict and audit. Format is key: value sections.
func WriteBoardDump(w io.Writer, g *state.Game) {
	p := g.Puzzle
	verdict := rules.Evaluate(g.Board, p.RowCounts, p.ColCounts, g.PlacedTents, p.TreeCount)

	fmt.Fprintln(w, "=== BOARD DUMP ===")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "--- Metadata ---")
	fmt.Fprintf(w, "seed: %d\n", p.Seed)
	fmt.Fprintf(w, "size: %d\n", p.Size())
	fmt.Fprintf(w, "trees: %d\n", p.TreeCount)
	fmt.Fprintf(w, "placed_tents: %d\n", g.PlacedTents)
	fmt.Fprintf(w, "toggles: %d\n", g.Toggles)
	fmt.Fprintf(w, "abandoned_candidates: %d\n", p.Abandoned)
	fmt.Fprintf(w, "cursor: %d,%d\n", g.CursorRow, g.CursorCol)
	fmt.Fprintf(w, "won: %v\n", g.Won)
	fmt.Fprintln(w)

	fmt.Fprintln(w, "--- Legend (cell symbols) ---")
	fmt.Fprintln(w, "T = tree  A = tent  x = marked  . = blank  (row clue on the right, column clues below)")
	fmt.Fprintln(w)

	fmt.Fprintln(w, "--- Solution ---")
	writeGrid(w, p.Solution, p.RowCounts)
	writeColClues(w, p.ColCounts)
	fmt.Fprintln(w)

	fmt.Fprintln(w, "--- Play board ---")
	writeGrid(w, g.Board, p.RowCounts)
	writeColClues(w, p.ColCounts)
	fmt.Fprintln(w)

	fmt.Fprintln(w, "--- Verdict ---")
	fmt.Fprintf(w, "verdict: %s\n", verdict)
	fmt.Fprintln(w)

	fmt.Fprintln(w, "--- Audit (trees without exactly one adjacent tent) ---")
	crowded := generator.Audit(p)
	if len(crowded) == 0 {
		fmt.Fprintln(w, "  (none)")
	}
	for _, pos := range crowded {
		fmt.Fprintf(w, "  row: %d col: %d tents: %d\n", pos.Row, pos.Col, p.Solution.AdjacentTents(pos.Row, pos.Col))
	}
}

// DumpBoardToFile writes the board dump to board.txt in dir and returns its
// absolute path.
func DumpBoardToFile(g *state.Game, dir string) (string, error) {
	if g == nil || g.Puzzle == nil || g.Board == nil {
		return "", fmt.Errorf("no board")
	}

	absPath, err := filepath.Abs(filepath.Join(dir, boardDumpFilename))
	if err != nil {
		return "", fmt.Errorf("resolving dump path: %w", err)
	}

	f, err := os.Create(absPath)
	if err != nil {
		return "", fmt.Errorf("creating board dump: %w", err)
	}

	if err := writeBuffered(f, g); err != nil {
		f.Close()
		return "", fmt.Errorf("writing board dump: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("closing board dump: %w", err)
	}
	return absPath, nil
}

// writeBuffered writes the dump through a bufio.Writer, whose Flush reports
// the first failed write
func writeBuffered(w io.Writer, g *state.Game) error {
	bw := bufio.NewWriter(w)
	WriteBoardDump(bw, g)
	return bw.Flush()
}
