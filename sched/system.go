package sched

// System is one stage of a frame. Systems keep their own state between frames
// and run in registration order on the scheduler goroutine.
type System interface {
	Execute(frame *Frame)
}

// Frame is what every system sees during one Once call.
type Frame struct {
	DeltaTime float64
	Commands  *Commands
}
