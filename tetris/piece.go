package tetris

import "fmt"

// Point is a grid coordinate. Row 0 is the top of the board and Row may be
// negative while a piece pokes out above it.
type Point struct {
	Row, Col int
}

// Piece is a shape placed at an anchor. X and Y are the column and row of the
// top-left corner of the shape's bounding box. Pieces are values: moving or
// rotating returns a new Piece.
type Piece struct {
	Shape Shape
	X, Y  int
	Color Cell
}

// NewPiece places catalog shape kind at (x, y) with the shape's own color.
func NewPiece(kind, x, y int) Piece {
	shape := ShapeAt(kind)
	return Piece{Shape: shape, X: x, Y: y, Color: shape.Color()}
}

// Cells returns the grid squares the piece covers at its anchor.
func (p Piece) Cells() []Point {
	return p.CellsAt(p.X, p.Y)
}

// CellsAt returns the grid squares the piece would cover anchored at (x, y).
func (p Piece) CellsAt(x, y int) []Point {
	cells := make([]Point, 0, 4)
	for r := 0; r < p.Shape.Height(); r++ {
		for c := 0; c < p.Shape.Width(); c++ {
			if p.Shape.Filled(r, c) {
				cells = append(cells, Point{Row: y + r, Col: x + c})
			}
		}
	}
	return cells
}

func (p Piece) Moved(dx, dy int) Piece {
	p.X += dx
	p.Y += dy
	return p
}

// Rotated keeps the anchor and color and rotates the shape.
func (p Piece) Rotated() Piece {
	p.Shape = p.Shape.Rotated()
	return p
}

func (p Piece) String() string {
	return fmt.Sprintf("%s@(%d,%d)", p.Shape.Name(), p.X, p.Y)
}
