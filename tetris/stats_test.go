package tetris_test

import (
	"testing"

	"github.com/plus3/blockfall/tetris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatsClearHistogram(t *testing.T) {
	e, _ := newTestEngine(t, kindI)
	g := e.Grid()
	for row := 18; row < 20; row++ {
		for col := 0; col < g.Cols(); col++ {
			if col < 4 || col > 7 {
				g.Set(row, col, tetris.ColorJ)
			}
		}
	}

	// two horizontal Is complete rows 19 and 18 one after the other
	for i := 0; i < 2; i++ {
		for !e.Step().Locked {
		}
	}

	stats := e.Stats()
	assert.Equal(t, int64(2), stats.Locks)
	assert.Equal(t, int64(2), stats.Lines)
	assert.Equal(t, int64(2), stats.Clears(1))
	assert.Equal(t, int64(0), stats.Clears(2))
	assert.Equal(t, 1, stats.ClearSizes())
}

func TestStatsSnapshotIsDetached(t *testing.T) {
	e, _ := newTestEngine(t, kindI)
	g := e.Grid()
	for col := 0; col < g.Cols(); col++ {
		if col < 4 || col > 7 {
			g.Set(19, col, tetris.ColorJ)
		}
	}

	before := e.Stats()
	for !e.Step().Locked {
	}

	assert.Equal(t, int64(0), before.Clears(1))
	assert.Equal(t, int64(1), e.Stats().Clears(1))
}

func TestStatsMerge(t *testing.T) {
	e, _ := newTestEngine(t, kindO)
	for !e.Step().Locked {
	}

	var total tetris.Stats
	total.Merge(e.Stats())
	total.Merge(e.Stats())

	require.Equal(t, int64(2), total.Locks)
	assert.Equal(t, int64(38), total.Steps)
	assert.Equal(t, int64(4), total.Spawns)
	assert.Equal(t, int64(0), total.Clears(1))

	var zero tetris.Stats
	assert.Equal(t, int64(0), zero.Clears(1))
	assert.Equal(t, 0, zero.ClearSizes())
}
