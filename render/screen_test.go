package render_test

import (
	"testing"

	"github.com/plus3/blockfall/render"
	"github.com/plus3/blockfall/tetris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScreenScoreSink(t *testing.T) {
	screen := render.NewScreen(30)
	assert.Equal(t, "0", screen.Score())

	e, err := tetris.NewEngine(tetris.DefaultConfig(),
		tetris.WithPicker(&tetris.SequencePicker{Kinds: []int{0}}),
		tetris.WithScoreSink(screen))
	require.NoError(t, err)

	g := e.Grid()
	for row := 10; row < 20; row++ {
		for col := 0; col < g.Cols(); col++ {
			if col < 4 || col > 7 {
				g.Set(row, col, tetris.ColorZ)
			}
		}
	}
	for i := 0; i < 10; i++ {
		for !e.Step().Locked {
		}
	}

	assert.Equal(t, 1000, e.Score())
	assert.Equal(t, "1,000", screen.Score())
}

func TestScreenSize(t *testing.T) {
	screen := render.NewScreen(30)
	w, h := screen.Size(20, 10)

	assert.Equal(t, 10*30+40+160, w)
	assert.Equal(t, 20*30+40, h)
}
