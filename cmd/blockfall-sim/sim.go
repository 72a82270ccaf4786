package main

import (
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/plus3/blockfall/render"
	"github.com/plus3/blockfall/sched"
	"github.com/plus3/blockfall/tetris"
)

// SimOptions are the knobs for one batch of headless games.
type SimOptions struct {
	Games      int
	Ticks      int
	Seed       uint64
	Bot        string
	Script     string
	Moves      int
	ConfigPath string
	Picker     string
	PrintBoard bool
}

// lastView keeps the most recent snapshot so the final board can be printed.
type lastView struct {
	view tetris.View
}

func (l *lastView) Render(v tetris.View) { l.view = v }

func loadSimConfig(opts SimOptions) (tetris.Config, error) {
	cfg := tetris.DefaultConfig()
	if opts.ConfigPath != "" {
		loaded, err := tetris.LoadConfig(opts.ConfigPath)
		if err != nil {
			return cfg, err
		}
		cfg = loaded
	}
	if opts.Picker != "" {
		cfg.Picker = opts.Picker
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	if cfg.TickPeriod <= 0 {
		return cfg, fmt.Errorf("%w: simulation needs a positive tick period", tetris.ErrInvalidConfig)
	}
	return cfg, nil
}

// Simulate plays opts.Games games back to back. Each game gets its own engine
// and scheduler; the bot queues commands before every gravity tick, and a
// game ends at game over or after opts.Ticks ticks.
func Simulate(opts SimOptions) (*Report, error) {
	if opts.Games <= 0 {
		return nil, errors.New("games must be positive")
	}
	if opts.Ticks <= 0 {
		return nil, errors.New("ticks must be positive")
	}

	cfg, err := loadSimConfig(opts)
	if err != nil {
		return nil, err
	}

	report := &Report{
		Games:  opts.Games,
		Ticks:  opts.Ticks,
		Seed:   opts.Seed,
		Bot:    opts.Bot,
		Picker: cfg.Picker,
		Config: cfg,
		UpdateTime: Stats{
			Samples: make([]time.Duration, 0, opts.Games*opts.Ticks),
		},
	}

	dt := cfg.TickPeriod.Seconds()
	systems := map[string]*sched.SystemStats{}
	var order []string

	startTime := time.Now()
	for game := 0; game < opts.Games; game++ {
		r := rand.New(rand.NewPCG(opts.Seed, uint64(game)))
		bot, err := newBot(opts.Bot, opts.Script, opts.Moves, r)
		if err != nil {
			return nil, err
		}

		engine, err := tetris.NewEngine(cfg, tetris.WithRand(r))
		if err != nil {
			return nil, err
		}

		view := &lastView{}
		scheduler := sched.NewScheduler()
		scheduler.Register(&tetris.InputSystem{Engine: engine})
		scheduler.Register(tetris.NewGravitySystem(engine))
		scheduler.Register(&tetris.RenderSystem{Engine: engine, Renderer: view})

		ticks := 0
		for ticks < opts.Ticks && engine.State() != tetris.GameOver {
			for _, cmd := range bot.Next(engine.View()) {
				scheduler.Commands().Push(cmd)
			}

			updateStart := time.Now()
			scheduler.Once(dt)
			report.UpdateTime.Samples = append(report.UpdateTime.Samples, time.Since(updateStart))
			ticks++
		}

		stats := engine.Stats()
		result := GameResult{
			Session:  engine.Session().String(),
			Score:    engine.Score(),
			Lines:    stats.Lines,
			Ticks:    ticks,
			GameOver: engine.State() == tetris.GameOver,
		}
		if opts.PrintBoard {
			result.Board = string(render.Frame(view.view, false))
		}
		report.Results = append(report.Results, result)
		report.Totals.Merge(stats)

		for _, s := range scheduler.Stats().Systems {
			acc, ok := systems[s.Name]
			if !ok {
				acc = &sched.SystemStats{Name: s.Name, MinDuration: s.MinDuration}
				systems[s.Name] = acc
				order = append(order, s.Name)
			}
			acc.ExecutionCount += s.ExecutionCount
			acc.TotalDuration += s.TotalDuration
			acc.MinDuration = min(acc.MinDuration, s.MinDuration)
			acc.MaxDuration = max(acc.MaxDuration, s.MaxDuration)
			acc.LastDuration = s.LastDuration
		}

		slog.Debug("game finished",
			"game", game+1,
			"session", result.Session,
			"score", result.Score,
			"lines", result.Lines,
			"ticks", ticks,
			"game_over", result.GameOver,
		)
	}

	report.TotalTime = time.Since(startTime)
	report.UpdateTime.Finalize()
	for _, name := range order {
		acc := systems[name]
		if acc.ExecutionCount > 0 {
			acc.AvgDuration = acc.TotalDuration / time.Duration(acc.ExecutionCount)
		}
		report.Systems = append(report.Systems, *acc)
	}

	return report, nil
}
