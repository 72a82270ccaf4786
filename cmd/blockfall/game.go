package main

import (
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/plus3/blockfall/debugui"
	debugui_ebiten "github.com/plus3/blockfall/debugui/ebiten"
	"github.com/plus3/blockfall/render"
	"github.com/plus3/blockfall/sched"
	"github.com/plus3/blockfall/tetris"
)

var keyCommands = map[ebiten.Key]tetris.Command{
	ebiten.KeyArrowLeft:  tetris.MoveLeft,
	ebiten.KeyArrowRight: tetris.MoveRight,
	ebiten.KeyArrowDown:  tetris.MoveDown,
	ebiten.KeyArrowUp:    tetris.Rotate,
}

// Game adapts the scheduler to ebiten's Update/Draw loop. Keyboard input is
// queued as commands; the engine is only touched from inside Once.
type Game struct {
	Engine    *tetris.Engine
	Scheduler *sched.Scheduler
	Screen    *render.Screen

	Imgui   *debugui_ebiten.ImguiBackend
	Overlay *debugui.ImguiSystem
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	if g.Overlay == nil || !g.Overlay.InputState.WantCaptureKeyboard {
		g.readKeys()
	}

	if g.Imgui != nil {
		g.Imgui.Frame(func() {
			g.Scheduler.Once(frameTime)
		})
		return nil
	}
	g.Scheduler.Once(frameTime)
	return nil
}

func (g *Game) readKeys() {
	commands := g.Scheduler.Commands()
	for key, cmd := range keyCommands {
		if inpututil.IsKeyJustPressed(key) {
			commands.Push(cmd)
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		commands.Defer(func() {
			g.Engine.Reset()
			slog.Info("game reset", "session", g.Engine.Session())
		})
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.Screen.Draw(screen)
	if g.Imgui != nil {
		g.Imgui.Overlay(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.Imgui != nil {
		g.Imgui.Layout(outsideWidth, outsideHeight)
	}
	return outsideWidth, outsideHeight
}
