package debugui_test

import (
	"testing"

	"github.com/plus3/blockfall/debugui"
	"github.com/plus3/blockfall/sched"
	"github.com/plus3/blockfall/tetris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInspectorFrameHistory(t *testing.T) {
	e, err := tetris.NewEngine(tetris.DefaultConfig())
	require.NoError(t, err)

	in := debugui.NewInspector(e, sched.NewScheduler(), 4)
	assert.Equal(t, float32(0), in.AverageFrameTime())

	in.Record(0.010)
	in.Record(0.020)
	assert.InDelta(t, 7.5, in.AverageFrameTime(), 0.001)

	// the ring buffer overwrites the oldest samples
	for i := 0; i < 4; i++ {
		in.Record(0.016)
	}
	assert.InDelta(t, 16.0, in.AverageFrameTime(), 0.001)
}

func TestImguiSystemAdd(t *testing.T) {
	sys := &debugui.ImguiSystem{}
	calls := 0
	sys.Add(func() { calls++ })
	sys.Add(func() { calls++ })

	require.Len(t, sys.Items, 2)
	for _, item := range sys.Items {
		item.Render()
	}
	assert.Equal(t, 2, calls)
}

func TestFrameTimer(t *testing.T) {
	timer := debugui.NewFrameTimer()
	first := timer.GetDeltaTime()
	second := timer.GetDeltaTime()

	assert.GreaterOrEqual(t, first, float32(0))
	assert.GreaterOrEqual(t, second, float32(0))
}
