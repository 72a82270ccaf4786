package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/plus3/blockfall/tetris"
	"golang.org/x/image/font/basicfont"
)

const (
	boardOffset = 20
	hudWidth    = 160
)

var (
	backgroundColor = color.RGBA{16, 16, 24, 255}
	borderColor     = color.RGBA{128, 128, 128, 255}
	ghostColor      = color.RGBA{255, 255, 255, 48}
	outlineColor    = color.RGBA{0, 0, 0, 255}
)

// Screen draws the latest snapshot onto an ebiten image. Render and
// ScoreChanged only record state; Draw does the painting, so the engine never
// waits on the GPU.
type Screen struct {
	BlockSize int

	view    tetris.View
	hasView bool
	score   string
	face    *text.GoXFace
}

func NewScreen(blockSize int) *Screen {
	return &Screen{BlockSize: blockSize, score: FormatScore(0)}
}

func (s *Screen) Render(view tetris.View) {
	s.view = view
	s.hasView = true
}

// ScoreChanged makes Screen the game's score sink.
func (s *Screen) ScoreChanged(score int) {
	s.score = FormatScore(score)
}

// Score is the text currently shown in the HUD.
func (s *Screen) Score() string {
	return s.score
}

// Size is the window size needed for a rows x cols board and the HUD.
func (s *Screen) Size(rows, cols int) (int, int) {
	return cols*s.BlockSize + 2*boardOffset + hudWidth, rows*s.BlockSize + 2*boardOffset
}

func (s *Screen) Draw(dst *ebiten.Image) {
	dst.Fill(backgroundColor)
	if !s.hasView {
		return
	}

	view := s.view
	block := float32(s.BlockSize)
	rows, cols := view.Grid.Rows(), view.Grid.Cols()

	vector.StrokeRect(dst, boardOffset-2, boardOffset-2,
		float32(cols)*block+4, float32(rows)*block+4, 1, borderColor, false)

	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if cell := view.Grid.Cell(r, c); cell != tetris.Empty {
				s.drawBlock(dst, r, c, Palette(cell), true)
			}
		}
	}

	if view.State == tetris.Falling {
		for _, pt := range view.Ghost.Cells() {
			if pt.Row >= 0 {
				s.drawBlock(dst, pt.Row, pt.Col, ghostColor, false)
			}
		}
	}

	for _, pt := range view.Piece.Cells() {
		if pt.Row >= 0 {
			s.drawBlock(dst, pt.Row, pt.Col, Palette(view.Piece.Color), true)
		}
	}

	s.drawHUD(dst, cols, rows)
}

func (s *Screen) drawBlock(dst *ebiten.Image, row, col int, clr color.Color, outline bool) {
	block := float32(s.BlockSize)
	x := boardOffset + float32(col)*block
	y := boardOffset + float32(row)*block
	vector.DrawFilledRect(dst, x, y, block, block, clr, false)
	if outline {
		vector.StrokeRect(dst, x, y, block, block, 1, outlineColor, false)
	}
}

func (s *Screen) drawHUD(dst *ebiten.Image, cols, rows int) {
	if s.face == nil {
		s.face = text.NewGoXFace(basicfont.Face7x13)
	}

	x := float64(boardOffset + cols*s.BlockSize + 20)
	s.drawText(dst, "SCORE", x, boardOffset, color.White)
	s.drawText(dst, s.score, x, boardOffset+20, color.White)
	s.drawText(dst, "LINES", x, boardOffset+50, color.White)
	s.drawText(dst, FormatScore(s.view.Lines), x, boardOffset+70, color.White)

	if s.view.State == tetris.GameOver {
		mid := float64(boardOffset + rows*s.BlockSize/2)
		s.drawText(dst, "GAME OVER", boardOffset+20, mid-10, color.RGBA{255, 64, 64, 255})
		s.drawText(dst, "Press R to restart", boardOffset+10, mid+10, color.White)
	}
}

func (s *Screen) drawText(dst *ebiten.Image, str string, x, y float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(dst, str, s.face, op)
}
