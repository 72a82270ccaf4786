package tetris_test

import (
	"sync"
	"testing"
	"time"

	"github.com/plus3/blockfall/sched"
	"github.com/plus3/blockfall/tetris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingRenderer struct {
	views []tetris.View
}

func (r *recordingRenderer) Render(view tetris.View) {
	r.views = append(r.views, view)
}

func newTestScheduler(t *testing.T, e *tetris.Engine) (*sched.Scheduler, *tetris.GravitySystem, *recordingRenderer) {
	t.Helper()
	renderer := &recordingRenderer{}
	gravity := tetris.NewGravitySystem(e)

	s := sched.NewScheduler()
	s.Register(&tetris.InputSystem{Engine: e})
	s.Register(gravity)
	s.Register(&tetris.RenderSystem{Engine: e, Renderer: renderer})
	return s, gravity, renderer
}

func TestGravitySystemFixedPeriod(t *testing.T) {
	e, _ := newTestEngine(t, kindT)
	s, gravity, _ := newTestScheduler(t, e)

	assert.Equal(t, 500*time.Millisecond, gravity.Period)

	s.Once(0.25)
	assert.Equal(t, 0, e.Piece().Y)
	s.Once(0.25)
	assert.Equal(t, 1, e.Piece().Y)

	// one long frame catches up on every missed tick
	s.Once(1.5)
	assert.Equal(t, 4, e.Piece().Y)
	assert.Equal(t, int64(4), gravity.Ticks)
}

func TestGravitySystemDisabled(t *testing.T) {
	e, _ := newTestEngine(t, kindT)
	gravity := &tetris.GravitySystem{Engine: e}

	s := sched.NewScheduler()
	s.Register(gravity)
	s.Once(10)

	assert.Equal(t, 0, e.Piece().Y)
}

func TestRenderSystemRendersOnlyChanges(t *testing.T) {
	e, _ := newTestEngine(t, kindT)
	s, _, renderer := newTestScheduler(t, e)

	s.Once(0)
	require.Len(t, renderer.views, 1)

	s.Once(0.1)
	assert.Len(t, renderer.views, 1, "nothing moved")

	s.Once(0.4)
	require.Len(t, renderer.views, 2)
	assert.Equal(t, 1, renderer.views[1].Piece.Y)
}

func TestInputSystemAppliesQueuedCommands(t *testing.T) {
	e, _ := newTestEngine(t, kindO)
	s, _, renderer := newTestScheduler(t, e)
	input := &tetris.InputSystem{Engine: e}
	s.Register(input)

	q := s.Commands()
	q.Push(tetris.MoveLeft)
	q.Push("not a command")
	q.Push(tetris.MoveLeft)
	q.Push(tetris.MoveDown)

	s.Once(0)

	assert.Equal(t, 2, e.Piece().X)
	assert.Equal(t, 1, e.Piece().Y)
	assert.Equal(t, 0, q.Len())
	// the render deferred in the same frame saw the settled state
	require.Len(t, renderer.views, 1)
	assert.Equal(t, 2, renderer.views[0].Piece.X)
	// the first input system drained everything
	assert.Equal(t, int64(0), input.Applied)
}

func TestInputSystemCountsRejections(t *testing.T) {
	e, _ := newTestEngine(t, kindO)
	input := &tetris.InputSystem{Engine: e}
	s := sched.NewScheduler()
	s.Register(input)

	for i := 0; i < 6; i++ {
		s.Commands().Push(tetris.MoveLeft)
	}
	s.Once(0)

	assert.Equal(t, int64(4), input.Applied)
	assert.Equal(t, int64(2), input.Rejected)
}

// Inputs pushed from other goroutines are only applied on the goroutine that
// runs the scheduler.
func TestConcurrentInputProducers(t *testing.T) {
	e, _ := newTestEngine(t, kindT)
	s, _, _ := newTestScheduler(t, e)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				if (i+j)%2 == 0 {
					s.Commands().Push(tetris.MoveLeft)
				} else {
					s.Commands().Push(tetris.MoveRight)
				}
			}
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 400, s.Commands().Len())
	s.Once(0)
	assert.Equal(t, 0, s.Commands().Len())
	assert.True(t, tetris.Fits(e.Grid(), e.Piece()))
}
