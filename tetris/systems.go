package tetris

import (
	"time"

	"github.com/plus3/blockfall/sched"
)

// InputSystem applies every queued Command to the engine in arrival order.
// Anything else found on the queue is left alone for later systems.
type InputSystem struct {
	Engine *Engine

	Applied  int64
	Rejected int64
}

func (s *InputSystem) Execute(frame *sched.Frame) {
	for _, item := range frame.Commands.Drain() {
		cmd, ok := item.(Command)
		if !ok {
			continue
		}
		if s.Engine.Apply(cmd) {
			s.Applied++
		} else {
			s.Rejected++
		}
	}
}

// GravitySystem converts frame time into fixed-period gravity steps. A long
// frame produces several steps; a short one may produce none.
type GravitySystem struct {
	Engine *Engine
	Period time.Duration

	Ticks   int64
	elapsed time.Duration
}

func NewGravitySystem(e *Engine) *GravitySystem {
	return &GravitySystem{Engine: e, Period: e.Config().TickPeriod}
}

func (s *GravitySystem) Execute(frame *sched.Frame) {
	if s.Period <= 0 {
		return
	}

	s.elapsed += time.Duration(frame.DeltaTime * float64(time.Second))
	for s.elapsed >= s.Period {
		s.elapsed -= s.Period
		s.Engine.Step()
		s.Ticks++
	}
}

// RenderSystem hands the renderer a snapshot at the end of any frame in which
// the engine changed.
type RenderSystem struct {
	Engine   *Engine
	Renderer Renderer

	Frames       int64
	lastRevision uint64
}

func (s *RenderSystem) Execute(frame *sched.Frame) {
	if s.Renderer == nil {
		return
	}
	frame.Commands.Defer(func() {
		rev := s.Engine.Revision()
		if s.Frames > 0 && rev == s.lastRevision {
			return
		}
		s.lastRevision = rev
		s.Frames++
		s.Renderer.Render(s.Engine.View())
	})
}
