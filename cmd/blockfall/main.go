package main

import (
	"flag"
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/blockfall/debugui"
	debugui_ebiten "github.com/plus3/blockfall/debugui/ebiten"
	"github.com/plus3/blockfall/render"
	"github.com/plus3/blockfall/sched"
	"github.com/plus3/blockfall/tetris"
)

const frameTime = 1.0 / 60.0

func main() {
	configPath := flag.String("config", "", "YAML game configuration; defaults are used when empty.")
	debug := flag.Bool("debug", false, "Show the ImGui inspector overlay.")
	verbose := flag.Bool("verbose", false, "Log engine events at debug level.")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	cfg := tetris.DefaultConfig()
	if *configPath != "" {
		loaded, err := tetris.LoadConfig(*configPath)
		if err != nil {
			slog.Error("failed to load config", "path", *configPath, "error", err)
			os.Exit(1)
		}
		cfg = loaded
	}

	screen := render.NewScreen(cfg.BlockSize)
	width, height := screen.Size(cfg.Rows, cfg.Cols)

	var backend *debugui_ebiten.ImguiBackend
	if *debug {
		// the ImGui backend owns window creation
		backend = debugui_ebiten.NewImguiBackend("Blockfall", width+340, height)
	} else {
		ebiten.SetWindowSize(width, height)
		ebiten.SetWindowTitle("Blockfall")
	}

	engine, err := tetris.NewEngine(cfg, tetris.WithScoreSink(screen))
	if err != nil {
		slog.Error("failed to create engine", "error", err)
		os.Exit(1)
	}

	scheduler := sched.NewScheduler()
	scheduler.Register(&tetris.InputSystem{Engine: engine})
	scheduler.Register(tetris.NewGravitySystem(engine))
	scheduler.Register(&tetris.RenderSystem{Engine: engine, Renderer: screen})

	game := &Game{
		Engine:    engine,
		Scheduler: scheduler,
		Screen:    screen,
		Imgui:     backend,
	}
	if backend != nil {
		game.Overlay = &debugui.ImguiSystem{}
		game.Overlay.Add(debugui.NewInspector(engine, scheduler, 120).Render)
		scheduler.Register(game.Overlay)
	}

	slog.Info("starting game", "session", engine.Session(), "rows", cfg.Rows, "cols", cfg.Cols, "debug", *debug)
	if err := ebiten.RunGame(game); err != nil {
		slog.Error("game exited with error", "error", err)
		os.Exit(1)
	}
}
