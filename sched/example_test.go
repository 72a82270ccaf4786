package sched_test

import (
	"context"
	"fmt"
	"time"

	"github.com/plus3/blockfall/sched"
)

type Counter struct {
	Frames int
	Time   float64
}

func (s *Counter) Execute(frame *sched.Frame) {
	s.Frames++
	s.Time += frame.DeltaTime
}

type EchoSystem struct{}

func (s *EchoSystem) Execute(frame *sched.Frame) {
	for _, item := range frame.Commands.Drain() {
		frame.Commands.Defer(func() {
			fmt.Println("applied", item)
		})
	}
}

// ExampleScheduler runs systems in registration order. Inputs pushed between
// frames are drained by the next frame, and deferred work runs after every
// system has finished.
func ExampleScheduler() {
	counter := &Counter{}

	scheduler := sched.NewScheduler()
	scheduler.Register(counter)
	scheduler.Register(&EchoSystem{})

	scheduler.Commands().Push("left")
	scheduler.Commands().Push("rotate")

	scheduler.Once(0.016)
	scheduler.Once(0.016)
	scheduler.Once(0.016)

	fmt.Printf("Frames: %d, Time: %.3f\n", counter.Frames, counter.Time)

	// Output:
	// applied left
	// applied rotate
	// Frames: 3, Time: 0.048
}

// ExampleScheduler_Run executes all systems at a fixed interval until the
// context is cancelled.
func ExampleScheduler_Run() {
	scheduler := sched.NewScheduler()
	scheduler.Register(&Counter{})

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	scheduler.Run(ctx, 16*time.Millisecond)

	fmt.Println("Scheduler stopped")
	// Output:
	// Scheduler stopped
}
