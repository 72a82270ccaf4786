package tetris

import (
	"log/slog"
	"math/rand/v2"

	"github.com/google/uuid"
)

// StepResult describes what one gravity step (or manual drop) did.
type StepResult struct {
	Moved    bool
	Locked   bool
	Lines    int
	GameOver bool
}

// Engine owns the grid, the active piece and the score. It is not safe for
// concurrent use; drive it from a single goroutine (see sched.Scheduler).
type Engine struct {
	cfg      Config
	grid     *Grid
	piece    Piece
	score    int
	state    State
	stats    Stats
	revision uint64
	session  uuid.UUID

	picker     ShapePicker
	sink       ScoreSink
	baseLogger *slog.Logger
	logger     *slog.Logger
}

type engineOptions struct {
	rand   *rand.Rand
	picker ShapePicker
	sink   ScoreSink
	logger *slog.Logger
}

// Option customises NewEngine.
type Option func(*engineOptions)

// WithRand seeds the configured picker. Ignored when WithPicker is given.
func WithRand(r *rand.Rand) Option {
	return func(o *engineOptions) { o.rand = r }
}

// WithPicker overrides Config.Picker.
func WithPicker(p ShapePicker) Option {
	return func(o *engineOptions) { o.picker = p }
}

func WithScoreSink(s ScoreSink) Option {
	return func(o *engineOptions) { o.sink = s }
}

func WithLogger(l *slog.Logger) Option {
	return func(o *engineOptions) { o.logger = l }
}

// NewEngine validates cfg and returns an engine with an empty grid, a score
// of zero and a freshly spawned piece.
func NewEngine(cfg Config, opts ...Option) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	o := engineOptions{logger: slog.Default()}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = slog.Default()
	}

	picker := o.picker
	if picker == nil {
		r := o.rand
		if r == nil {
			r = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
		}
		var err error
		picker, err = NewPicker(cfg.Picker, r)
		if err != nil {
			return nil, err
		}
	}

	e := &Engine{
		cfg:        cfg,
		grid:       NewGrid(cfg.Rows, cfg.Cols),
		picker:     picker,
		sink:       o.sink,
		baseLogger: o.logger,
	}
	e.Reset()
	return e, nil
}

// Reset starts a new game on the same engine: empty grid, zero score, new
// session id and a fresh piece.
func (e *Engine) Reset() {
	e.grid.Clear()
	e.state = Falling
	e.stats = newStats()
	e.session = uuid.New()
	e.logger = e.baseLogger.With("session", e.session.String())
	e.setScore(0)
	e.spawn()
	e.revision++

	e.logger.Debug("game started", "rows", e.cfg.Rows, "cols", e.cfg.Cols)
}

func (e *Engine) Config() Config { return e.cfg }
func (e *Engine) Piece() Piece { return e.piece }
func (e *Engine) Score() int { return e.score }
func (e *Engine) State() State { return e.state }
func (e *Engine) Session() uuid.UUID { return e.session }
func (e *Engine) Stats() Stats { return e.stats.clone() }

// Grid returns the live board. Callers must treat it as read-only; use View
// for a snapshot.
func (e *Engine) Grid() *Grid { return e.grid }

// Revision increases every time the grid, the piece, the score or the state
// changes.
func (e *Engine) Revision() uint64 { return e.revision }

// Ghost is the active piece dropped straight down to where it would lock.
func (e *Engine) Ghost() Piece {
	ghost := e.piece
	if e.state == GameOver {
		return ghost
	}
	for !Collides(e.grid, ghost, ghost.X, ghost.Y+1) {
		ghost.Y++
	}
	return ghost
}

func (e *Engine) View() View {
	return View{
		Grid:     e.grid.Clone(),
		Piece:    e.piece,
		Ghost:    e.Ghost(),
		Score:    e.score,
		Lines:    int(e.stats.Lines),
		State:    e.state,
		Revision: e.revision,
	}
}

// Step is one gravity tick: the piece falls a row, or locks where it is when
// the row below is blocked.
func (e *Engine) Step() StepResult {
	if e.state == GameOver {
		return StepResult{GameOver: true}
	}
	e.stats.Steps++
	return e.drop()
}

// MoveDown is a player-requested gravity step.
func (e *Engine) MoveDown() StepResult {
	if e.state == GameOver {
		return StepResult{GameOver: true}
	}
	return e.drop()
}

func (e *Engine) MoveLeft() bool { return e.shift(-1) }
func (e *Engine) MoveRight() bool { return e.shift(1) }

// Rotate commits the rotated shape at the same anchor if it fits. There is no
// kick: a blocked rotation leaves the piece as it was.
func (e *Engine) Rotate() bool {
	if e.state == GameOver {
		return false
	}
	rotated := e.piece.Rotated()
	if Collides(e.grid, rotated, rotated.X, rotated.Y) {
		return false
	}
	e.piece = rotated
	e.revision++
	return true
}

// Apply runs a decoded command and reports whether the board changed.
func (e *Engine) Apply(cmd Command) bool {
	switch cmd {
	case MoveLeft:
		return e.MoveLeft()
	case MoveRight:
		return e.MoveRight()
	case MoveDown:
		res := e.MoveDown()
		return res.Moved || res.Locked
	case Rotate:
		return e.Rotate()
	}
	e.logger.Warn("ignoring unknown command", "command", cmd)
	return false
}

func (e *Engine) shift(dx int) bool {
	if e.state == GameOver {
		return false
	}
	if Collides(e.grid, e.piece, e.piece.X+dx, e.piece.Y) {
		return false
	}
	e.piece = e.piece.Moved(dx, 0)
	e.revision++
	return true
}

func (e *Engine) drop() StepResult {
	if !Collides(e.grid, e.piece, e.piece.X, e.piece.Y+1) {
		e.piece = e.piece.Moved(0, 1)
		e.revision++
		return StepResult{Moved: true}
	}
	return e.lock()
}

func (e *Engine) lock() StepResult {
	locked := e.piece
	e.grid.Lock(locked)
	lines := e.grid.ClearFullLines()
	e.stats.recordLock(lines)

	if lines > 0 {
		e.setScore(e.score + lines*e.cfg.PointsPerLine)
	}

	e.logger.Debug("piece locked", "piece", locked.String(), "lines", lines, "score", e.score)

	e.spawn()
	e.revision++

	return StepResult{Locked: true, Lines: lines, GameOver: e.state == GameOver}
}

// spawn places a new piece at the top centre. If it already overlaps the
// stack the game is over.
func (e *Engine) spawn() {
	kind := e.picker.Next() % ShapeCount
	if kind < 0 {
		kind += ShapeCount
	}

	e.piece = NewPiece(kind, e.cfg.SpawnColumn(), 0)
	e.stats.Spawns++

	if !Fits(e.grid, e.piece) {
		e.state = GameOver
		e.logger.Info("game over", "score", e.score, "lines", e.stats.Lines, "piece", e.piece.String())
	}
}

func (e *Engine) setScore(score int) {
	if score == e.score {
		return
	}
	e.score = score
	if e.sink != nil {
		e.sink.ScoreChanged(score)
	}
}
