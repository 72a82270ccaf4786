// Package debugui provides a Dear ImGui overlay for inspecting a running
// game: engine state, line-clear statistics and scheduler timings.
package debugui

import (
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/blockfall/sched"
)

// ImguiItem holds a Dear ImGui render function.
type ImguiItem struct {
	Render func()
}

// ImguiInputState tracks whether Dear ImGui is consuming mouse or keyboard
// input this frame. Input sources should skip keys ImGui wants.
type ImguiInputState struct {
	WantCaptureMouse    bool
	WantCaptureKeyboard bool
}

// ImguiSystem refreshes InputState and defers every item's render function
// to the end of the frame, after the engine has settled.
type ImguiSystem struct {
	Items      []ImguiItem
	InputState ImguiInputState
}

// Add registers another window.
func (i *ImguiSystem) Add(render func()) {
	i.Items = append(i.Items, ImguiItem{Render: render})
}

func (i *ImguiSystem) Execute(frame *sched.Frame) {
	i.InputState.WantCaptureMouse = imgui.CurrentIO().WantCaptureMouse()
	i.InputState.WantCaptureKeyboard = imgui.CurrentIO().WantCaptureKeyboard()

	for _, item := range i.Items {
		frame.Commands.Defer(item.Render)
	}
}
