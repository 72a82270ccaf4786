package debugui

import (
	"fmt"
	"time"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/blockfall/sched"
	"github.com/plus3/blockfall/tetris"
)

// Inspector is an ImGui window showing the engine and the scheduler that
// drives it.
type Inspector struct {
	Engine    *tetris.Engine
	Scheduler *sched.Scheduler

	historyFrames int
	frameHistory  []float32
	frameIndex    int
	timer         *FrameTimer
}

func NewInspector(engine *tetris.Engine, scheduler *sched.Scheduler, historyFrames int) *Inspector {
	return &Inspector{
		Engine:        engine,
		Scheduler:     scheduler,
		historyFrames: historyFrames,
		frameHistory:  make([]float32, historyFrames),
		timer:         NewFrameTimer(),
	}
}

// Record stores one frame time in milliseconds in the ring buffer behind the
// frame time graph.
func (in *Inspector) Record(deltaTime float32) {
	in.frameHistory[in.frameIndex] = deltaTime * 1000.0
	in.frameIndex = (in.frameIndex + 1) % in.historyFrames
}

// AverageFrameTime is the mean of the recorded history in milliseconds.
func (in *Inspector) AverageFrameTime() float32 {
	var total float32
	for _, ft := range in.frameHistory {
		total += ft
	}
	return total / float32(in.historyFrames)
}

func (in *Inspector) Render() {
	in.Record(in.timer.GetDeltaTime())

	imgui.SetNextWindowPosV(imgui.NewVec2(10, 10), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(320, 420), imgui.CondOnce)

	if !imgui.BeginV("Blockfall Inspector", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	e := in.Engine
	piece := e.Piece()
	stats := e.Stats()

	imgui.Text(fmt.Sprintf("Session: %s", e.Session()))
	imgui.Text(fmt.Sprintf("State: %s", e.State()))
	imgui.Text(fmt.Sprintf("Score: %d", e.Score()))
	imgui.Text(fmt.Sprintf("Piece: %s", piece))
	imgui.Text(fmt.Sprintf("Revision: %d", e.Revision()))
	if imgui.Button("Reset") {
		e.Reset()
	}

	imgui.Separator()
	imgui.Text(fmt.Sprintf("Steps: %d  Spawns: %d  Locks: %d", stats.Steps, stats.Spawns, stats.Locks))
	imgui.Text(fmt.Sprintf("Lines: %d", stats.Lines))

	if imgui.TreeNodeStr("Line Clears") {
		const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
		if imgui.BeginTableV("ClearTable", 2, tableFlags, imgui.NewVec2(0, 0), 0) {
			imgui.TableSetupColumn("Rows at once")
			imgui.TableSetupColumn("Count")
			imgui.TableHeadersRow()

			for n := 1; n <= tetris.MaxClearSize; n++ {
				imgui.TableNextRow()
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("%d", n))
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("%d", stats.Clears(n)))
			}

			imgui.EndTable()
		}
		imgui.TreePop()
	}

	imgui.Separator()
	avg := in.AverageFrameTime()
	imgui.Text(fmt.Sprintf("Avg Frame Time: %.2f ms (%.0f FPS)", avg, 1000.0/avg))
	imgui.Text("Frame Time Graph (ms)")
	imgui.PlotLinesFloatPtr("##frametime", &in.frameHistory[0], int32(len(in.frameHistory)))

	if in.Scheduler != nil && imgui.TreeNodeStr("Systems") {
		const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
		if imgui.BeginTableV("SystemTable", 4, tableFlags, imgui.NewVec2(0, 0), 0) {
			imgui.TableSetupColumn("System")
			imgui.TableSetupColumn("Runs")
			imgui.TableSetupColumn("Avg")
			imgui.TableSetupColumn("Max")
			imgui.TableHeadersRow()

			for _, sys := range in.Scheduler.Stats().Systems {
				imgui.TableNextRow()
				imgui.TableNextColumn()
				imgui.Text(sys.Name)
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("%d", sys.ExecutionCount))
				imgui.TableNextColumn()
				imgui.Text(sys.AvgDuration.String())
				imgui.TableNextColumn()
				imgui.Text(sys.MaxDuration.String())
			}

			imgui.EndTable()
		}
		imgui.TreePop()
	}

	imgui.End()
}

type FrameTimer struct {
	lastFrameTime time.Time
}

func NewFrameTimer() *FrameTimer {
	return &FrameTimer{
		lastFrameTime: time.Now(),
	}
}

func (ft *FrameTimer) GetDeltaTime() float32 {
	now := time.Now()
	delta := float32(now.Sub(ft.lastFrameTime).Seconds())
	ft.lastFrameTime = now
	return delta
}
