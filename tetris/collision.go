package tetris

// Collides reports whether piece p anchored at (x, y) would leave the board
// through the sides or the floor, or overlap a locked cell. Squares above
// row 0 are allowed so pieces can spawn and rotate against the ceiling.
func Collides(g *Grid, p Piece, x, y int) bool {
	for r := 0; r < p.Shape.Height(); r++ {
		for c := 0; c < p.Shape.Width(); c++ {
			if !p.Shape.Filled(r, c) {
				continue
			}

			row, col := y+r, x+c
			if col < 0 || col >= g.Cols() || row >= g.Rows() {
				return true
			}

			if g.IsOccupied(row, col) {
				return true
			}
		}
	}

	return false
}

// Fits is the negation of Collides at the piece's own anchor.
func Fits(g *Grid, p Piece) bool {
	return !Collides(g, p, p.X, p.Y)
}
