package tetris_test

import (
	"math/rand/v2"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/plus3/blockfall/tetris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/tools/txtar"
)

func TestGridIsOccupied(t *testing.T) {
	g := tetris.NewGrid(tetris.DefaultRows, tetris.DefaultCols)
	g.Set(19, 0, tetris.ColorI)

	assert.True(t, g.IsOccupied(19, 0))
	assert.False(t, g.IsOccupied(19, 1))

	// out of bounds is never occupied, whatever lies next to it
	assert.False(t, g.IsOccupied(-1, 0))
	assert.False(t, g.IsOccupied(20, 0))
	assert.False(t, g.IsOccupied(19, -1))
	assert.False(t, g.IsOccupied(19, 10))
}

func TestGridLock(t *testing.T) {
	g := tetris.NewGrid(tetris.DefaultRows, tetris.DefaultCols)

	piece := tetris.NewPiece(6, 3, 18) // T
	g.Lock(piece)

	assert.Equal(t, tetris.ColorT, g.Cell(18, 4))
	assert.Equal(t, tetris.ColorT, g.Cell(19, 3))
	assert.Equal(t, tetris.ColorT, g.Cell(19, 4))
	assert.Equal(t, tetris.ColorT, g.Cell(19, 5))
	assert.Equal(t, tetris.Empty, g.Cell(18, 3))
	assert.Equal(t, tetris.Empty, g.Cell(18, 5))
}

func TestGridLockAboveCeiling(t *testing.T) {
	g := tetris.NewGrid(tetris.DefaultRows, tetris.DefaultCols)

	vertical := tetris.NewPiece(0, 2, -2).Rotated()
	g.Lock(vertical)

	assert.True(t, g.IsOccupied(0, 2))
	assert.True(t, g.IsOccupied(1, 2))
	assert.False(t, g.IsOccupied(2, 2))
}

func TestGridClearFullLinesFixtures(t *testing.T) {
	files, err := filepath.Glob(filepath.Join("testdata", "clear", "*.txtar"))
	require.NoError(t, err)
	require.NotEmpty(t, files)

	for _, file := range files {
		name := strings.TrimSuffix(filepath.Base(file), ".txtar")
		t.Run(name, func(t *testing.T) {
			archive, err := txtar.ParseFile(file)
			require.NoError(t, err)

			sections := make(map[string]string)
			for _, f := range archive.Files {
				sections[f.Name] = string(f.Data)
			}

			grid, err := tetris.ParseGrid(sections["before"])
			require.NoError(t, err)
			want, err := tetris.ParseGrid(sections["after"])
			require.NoError(t, err)
			wantLines, err := strconv.Atoi(strings.TrimSpace(sections["lines"]))
			require.NoError(t, err)

			rows := grid.Rows()
			lines := grid.ClearFullLines()

			assert.Equal(t, wantLines, lines)
			assert.Equal(t, rows, grid.Rows())
			assert.Equal(t, want.String(), grid.String())
		})
	}
}

func TestGridClearBottomRow(t *testing.T) {
	g := tetris.NewGrid(tetris.DefaultRows, tetris.DefaultCols)
	for col := 0; col < g.Cols(); col++ {
		if col != 5 {
			g.Set(19, col, tetris.ColorS)
		}
	}
	g.Set(18, 2, tetris.ColorZ)

	assert.Equal(t, 0, g.ClearFullLines())

	g.Set(19, 5, tetris.ColorI)
	assert.Equal(t, 1, g.ClearFullLines())

	assert.Equal(t, tetris.ColorZ, g.Cell(19, 2))
	for col := 0; col < g.Cols(); col++ {
		assert.False(t, g.IsOccupied(0, col))
		if col != 2 {
			assert.False(t, g.IsOccupied(19, col))
		}
	}
}

// A full row always goes and a row with a gap always stays, and the board
// height never changes.
func TestGridClearFullLinesProperties(t *testing.T) {
	r := rand.New(rand.NewPCG(7, 11))

	for i := 0; i < 200; i++ {
		g := tetris.NewGrid(tetris.DefaultRows, tetris.DefaultCols)
		full := 0
		var kept [][]tetris.Cell

		for row := 0; row < g.Rows(); row++ {
			if r.IntN(3) == 0 {
				for col := 0; col < g.Cols(); col++ {
					g.Set(row, col, tetris.Cell(r.IntN(tetris.ShapeCount)+1))
				}
				full++
				continue
			}
			for col := 0; col < g.Cols(); col++ {
				if r.IntN(2) == 0 {
					g.Set(row, col, tetris.Cell(r.IntN(tetris.ShapeCount)+1))
				}
			}
			// guarantee at least one gap
			g.Set(row, r.IntN(g.Cols()), tetris.Empty)
			kept = append(kept, g.Row(row))
		}

		require.Equal(t, full, g.ClearFullLines())
		require.Equal(t, tetris.DefaultRows, g.Rows())

		for row := 0; row < full; row++ {
			assert.Equal(t, make([]tetris.Cell, g.Cols()), g.Row(row))
		}
		for j, want := range kept {
			assert.Equal(t, want, g.Row(full+j))
		}
	}
}

func TestParseGrid(t *testing.T) {
	g, err := tetris.ParseGrid("..\nIO\n")
	require.NoError(t, err)
	assert.Equal(t, 2, g.Rows())
	assert.Equal(t, 2, g.Cols())
	assert.Equal(t, tetris.ColorI, g.Cell(1, 0))
	assert.Equal(t, tetris.ColorO, g.Cell(1, 1))
	assert.Equal(t, "..\nIO\n", g.String())

	_, err = tetris.ParseGrid("...\n..\n")
	assert.Error(t, err)

	_, err = tetris.ParseGrid("..X\n")
	assert.Error(t, err)

	_, err = tetris.ParseGrid("\n\n")
	assert.Error(t, err)
}

func TestGridClone(t *testing.T) {
	g := tetris.NewGrid(4, 6)
	g.Set(3, 3, tetris.ColorL)

	clone := g.Clone()
	clone.Set(3, 3, tetris.Empty)

	assert.Equal(t, tetris.ColorL, g.Cell(3, 3))
	assert.Equal(t, tetris.Empty, clone.Cell(3, 3))
}
