package tetris

// Cell is the content of one grid square: Empty or the color of the shape
// that was locked there.
type Cell uint8

const Empty Cell = 0

// Shape colors. Catalog index i is painted with Cell(i + 1).
const (
	ColorI Cell = iota + 1
	ColorS
	ColorZ
	ColorO
	ColorL
	ColorJ
	ColorT
)

// ShapeCount is the number of shapes in the catalog.
const ShapeCount = 7

const shapeLetters = "ISZOLJT"

// Letter returns the shape letter a cell was painted by, or '.' for Empty.
func (c Cell) Letter() byte {
	if c == Empty || int(c) > ShapeCount {
		return '.'
	}
	return shapeLetters[c-1]
}

func cellFromLetter(b byte) (Cell, bool) {
	if b == '.' {
		return Empty, true
	}
	for i := 0; i < len(shapeLetters); i++ {
		if shapeLetters[i] == b {
			return Cell(i + 1), true
		}
	}
	return Empty, false
}

// Shape is an immutable bounding box of filled flags. Values are safe to copy
// and share; no method modifies the receiver.
type Shape struct {
	kind  int
	cells [][]bool
}

var catalog = [ShapeCount]Shape{
	{kind: 0, cells: [][]bool{ // I
		{true, true, true, true},
	}},
	{kind: 1, cells: [][]bool{ // S
		{true, true, false},
		{false, true, true},
	}},
	{kind: 2, cells: [][]bool{ // Z
		{false, true, true},
		{true, true, false},
	}},
	{kind: 3, cells: [][]bool{ // O
		{true, true},
		{true, true},
	}},
	{kind: 4, cells: [][]bool{ // L
		{true, false, false},
		{true, true, true},
	}},
	{kind: 5, cells: [][]bool{ // J
		{false, false, true},
		{true, true, true},
	}},
	{kind: 6, cells: [][]bool{ // T
		{false, true, false},
		{true, true, true},
	}},
}

// ShapeAt returns catalog entry i. It panics when i is outside [0, ShapeCount).
func ShapeAt(i int) Shape {
	return catalog[i]
}

// Shapes returns every catalog entry in index order.
func Shapes() []Shape {
	out := make([]Shape, ShapeCount)
	copy(out, catalog[:])
	return out
}

// Kind is the catalog index the shape (or its rotations) came from.
func (s Shape) Kind() int { return s.kind }

// Color is the cell value pieces of this shape lock with.
func (s Shape) Color() Cell { return Cell(s.kind + 1) }

// Name is the single-letter shape name.
func (s Shape) Name() string { return string(shapeLetters[s.kind]) }

func (s Shape) Height() int { return len(s.cells) }

func (s Shape) Width() int {
	if len(s.cells) == 0 {
		return 0
	}
	return len(s.cells[0])
}

// Filled reports whether the bounding-box square at (row, col) is part of the
// shape. Squares outside the box are never filled.
func (s Shape) Filled(row, col int) bool {
	if row < 0 || row >= len(s.cells) || col < 0 || col >= len(s.cells[row]) {
		return false
	}
	return s.cells[row][col]
}

// Rotated transposes the box and reverses the resulting row order. Applying it
// four times yields the original shape. Only this one direction exists.
func (s Shape) Rotated() Shape {
	h, w := s.Height(), s.Width()
	rotated := make([][]bool, w)
	for i := range rotated {
		rotated[i] = make([]bool, h)
		for j := range h {
			rotated[i][j] = s.cells[j][w-1-i]
		}
	}
	return Shape{kind: s.kind, cells: rotated}
}

// Equal compares kind and filled squares.
func (s Shape) Equal(other Shape) bool {
	if s.kind != other.kind || s.Height() != other.Height() || s.Width() != other.Width() {
		return false
	}
	for r, row := range s.cells {
		for c, v := range row {
			if other.cells[r][c] != v {
				return false
			}
		}
	}
	return true
}

func (s Shape) String() string {
	buf := make([]byte, 0, s.Height()*(s.Width()+1))
	for _, row := range s.cells {
		for _, v := range row {
			if v {
				buf = append(buf, shapeLetters[s.kind])
			} else {
				buf = append(buf, '.')
			}
		}
		buf = append(buf, '\n')
	}
	return string(buf)
}
