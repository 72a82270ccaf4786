package tetris

import (
	"fmt"
	"strings"
)

// Grid is the board of locked cells. Its dimensions are fixed at creation.
type Grid struct {
	cols  int
	cells [][]Cell
}

func NewGrid(rows, cols int) *Grid {
	g := &Grid{cols: cols, cells: make([][]Cell, rows)}
	for r := range g.cells {
		g.cells[r] = make([]Cell, cols)
	}
	return g
}

func (g *Grid) Rows() int { return len(g.cells) }
func (g *Grid) Cols() int { return g.cols }

func (g *Grid) inBounds(row, col int) bool {
	return row >= 0 && row < len(g.cells) && col >= 0 && col < g.cols
}

// IsOccupied is true only for in-bounds, non-empty cells. Whether an
// out-of-bounds square is legal is decided by Collides, not here.
func (g *Grid) IsOccupied(row, col int) bool {
	return g.inBounds(row, col) && g.cells[row][col] != Empty
}

// Cell returns Empty for out-of-bounds squares.
func (g *Grid) Cell(row, col int) Cell {
	if !g.inBounds(row, col) {
		return Empty
	}
	return g.cells[row][col]
}

// Set writes a single cell. Out-of-bounds writes are ignored.
func (g *Grid) Set(row, col int, c Cell) {
	if g.inBounds(row, col) {
		g.cells[row][col] = c
	}
}

// Row returns a copy of one row.
func (g *Grid) Row(row int) []Cell {
	out := make([]Cell, g.cols)
	if row >= 0 && row < len(g.cells) {
		copy(out, g.cells[row])
	}
	return out
}

// Lock paints the piece's color into every square it covers. The caller must
// already have checked the position with Collides; squares above the board
// are dropped.
func (g *Grid) Lock(p Piece) {
	for _, pt := range p.Cells() {
		g.Set(pt.Row, pt.Col, p.Color)
	}
}

func (g *Grid) rowFull(row int) bool {
	for _, c := range g.cells[row] {
		if c == Empty {
			return false
		}
	}
	return true
}

// ClearFullLines scans from the bottom row up. A full row is removed on the
// spot and an empty row enters at the top, so the same index is checked again
// before moving upward. It returns the number of rows removed.
func (g *Grid) ClearFullLines() int {
	cleared := 0
	for row := len(g.cells) - 1; row >= 0; {
		if !g.rowFull(row) {
			row--
			continue
		}

		removed := g.cells[row]
		copy(g.cells[1:row+1], g.cells[:row])
		clear(removed)
		g.cells[0] = removed
		cleared++
	}
	return cleared
}

// Clear empties every cell.
func (g *Grid) Clear() {
	for _, row := range g.cells {
		clear(row)
	}
}

func (g *Grid) Clone() *Grid {
	out := &Grid{cols: g.cols, cells: make([][]Cell, len(g.cells))}
	for r, row := range g.cells {
		out.cells[r] = make([]Cell, len(row))
		copy(out.cells[r], row)
	}
	return out
}

// String dumps one line per row: '.' for empty, the shape letter otherwise.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow(len(g.cells) * (g.cols + 1))
	for _, row := range g.cells {
		for _, c := range row {
			sb.WriteByte(c.Letter())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// ParseGrid builds a grid from the String format. Blank lines are skipped and
// every row must have the same width.
func ParseGrid(text string) (*Grid, error) {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	if len(lines) == 0 {
		return nil, fmt.Errorf("parse grid: no rows")
	}

	g := NewGrid(len(lines), len(lines[0]))
	for r, line := range lines {
		if len(line) != g.cols {
			return nil, fmt.Errorf("parse grid: row %d has %d cells, want %d", r, len(line), g.cols)
		}
		for c := 0; c < len(line); c++ {
			cell, ok := cellFromLetter(line[c])
			if !ok {
				return nil, fmt.Errorf("parse grid: row %d col %d: unknown cell %q", r, c, line[c])
			}
			g.cells[r][c] = cell
		}
	}
	return g, nil
}
