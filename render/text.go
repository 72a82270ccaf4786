package render

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/plus3/blockfall/tetris"
)

// Text writes each snapshot as a framed character grid followed by a status
// line. Locked cells show their shape letter, the active piece is lower case
// and the ghost, when enabled, is ':'.
type Text struct {
	W     io.Writer
	Ghost bool

	// Err holds the first write error; later renders are skipped.
	Err error
}

func NewText(w io.Writer) *Text {
	return &Text{W: w}
}

func (t *Text) Render(view tetris.View) {
	if t.Err != nil {
		return
	}
	_, t.Err = t.W.Write(Frame(view, t.Ghost))
}

// Frame formats one snapshot the way Text writes it.
func Frame(view tetris.View, ghost bool) []byte {
	rows, cols := view.Grid.Rows(), view.Grid.Cols()

	cells := make([][]byte, rows)
	for r := range cells {
		cells[r] = make([]byte, cols)
		for c := range cells[r] {
			cells[r][c] = view.Grid.Cell(r, c).Letter()
		}
	}

	paint := func(p tetris.Piece, fn func(old byte) byte) {
		for _, pt := range p.Cells() {
			if pt.Row >= 0 && pt.Row < rows && pt.Col >= 0 && pt.Col < cols {
				cells[pt.Row][pt.Col] = fn(cells[pt.Row][pt.Col])
			}
		}
	}

	if ghost && view.State == tetris.Falling {
		paint(view.Ghost, func(old byte) byte {
			if old == '.' {
				return ':'
			}
			return old
		})
	}
	letter := view.Piece.Color.Letter()
	paint(view.Piece, func(byte) byte { return letter | 0x20 })

	var buf bytes.Buffer
	border := "+" + strings.Repeat("-", cols) + "+\n"
	buf.WriteString(border)
	for _, row := range cells {
		buf.WriteByte('|')
		buf.Write(row)
		buf.WriteString("|\n")
	}
	buf.WriteString(border)
	fmt.Fprintf(&buf, "score %s  lines %d  %s\n", FormatScore(view.Score), view.Lines, view.State)

	return buf.Bytes()
}
