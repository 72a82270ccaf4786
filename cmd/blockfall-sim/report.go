package main

import (
	"io"
	"text/template"
	"time"

	"github.com/plus3/blockfall/render"
	"github.com/plus3/blockfall/sched"
	"github.com/plus3/blockfall/tetris"
)

type Report struct {
	// Configuration
	Games  int
	Ticks  int
	Seed   uint64
	Bot    string
	Picker string
	Config tetris.Config

	// Results
	Results    []GameResult
	Totals     tetris.Stats
	TotalTime  time.Duration
	UpdateTime Stats
	Systems    []sched.SystemStats
}

// GameResult is the outcome of one simulated game.
type GameResult struct {
	Session  string
	Score    int
	Lines    int64
	Ticks    int
	GameOver bool
	Board    string
}

type Stats struct {
	Min     time.Duration
	Max     time.Duration
	Avg     time.Duration
	Samples []time.Duration
}

func (s *Stats) Finalize() {
	if len(s.Samples) == 0 {
		return
	}

	var total time.Duration
	s.Min = s.Samples[0]
	s.Max = s.Samples[0]

	for _, sample := range s.Samples {
		if sample < s.Min {
			s.Min = sample
		}
		if sample > s.Max {
			s.Max = sample
		}
		total += sample
	}
	s.Avg = total / time.Duration(len(s.Samples))
}

// BestScore is the highest score over all games.
func (r *Report) BestScore() int {
	best := 0
	for _, g := range r.Results {
		best = max(best, g.Score)
	}
	return best
}

func (r *Report) TotalScore() int {
	total := 0
	for _, g := range r.Results {
		total += g.Score
	}
	return total
}

// ClearRows lists 1..MaxClearSize for the histogram.
func (r *Report) ClearRows() []int {
	rows := make([]int, tetris.MaxClearSize)
	for i := range rows {
		rows[i] = i + 1
	}
	return rows
}

func (r *Report) Generate(w io.Writer) error {
	const reportTemplate = `
# Blockfall Simulation Report

## Configuration
- **Games:** {{.Games}}
- **Max Ticks per Game:** {{.Ticks}}
- **Seed:** {{.Seed}}
- **Bot:** {{.Bot}}
- **Picker:** {{.Picker}}
- **Board:** {{.Config.Rows}} x {{.Config.Cols}}, tick {{.Config.TickPeriod}}, {{.Config.PointsPerLine}} points per line

## Games
{{range $i, $g := .Results}}- **#{{inc $i}}** {{$g.Session}}: score {{score $g.Score}}, lines {{$g.Lines}}, ticks {{$g.Ticks}}{{if $g.GameOver}}, game over{{end}}
{{end}}
## Totals
- **Total Score:** {{score .TotalScore}}
- **Best Score:** {{score .BestScore}}
- **Lines:** {{.Totals.Lines}}
- **Pieces Locked:** {{.Totals.Locks}}
- **Gravity Steps:** {{.Totals.Steps}}
{{$totals := .Totals}}
## Line Clears
| Rows at once | Count |
|---|---|
{{range .ClearRows}}| {{.}} | {{$totals.Clears .}} |
{{end}}
## Performance
- **Total Time:** {{.TotalTime}}
- **Frame Time:**
  - **Avg:** {{.UpdateTime.Avg}}
  - **Min:** {{.UpdateTime.Min}}
  - **Max:** {{.UpdateTime.Max}}
{{if .Systems}}
| System | Runs | Avg | Max |
|---|---|---|---|
{{range .Systems}}| {{.Name}} | {{.ExecutionCount}} | {{.AvgDuration}} | {{.MaxDuration}} |
{{end}}{{end}}`

	fm := template.FuncMap{
		"score": render.FormatScore,
		"inc": func(i int) int {
			return i + 1
		},
	}

	tmpl, err := template.New("report").Funcs(fm).Parse(reportTemplate)
	if err != nil {
		return err
	}

	return tmpl.Execute(w, r)
}
