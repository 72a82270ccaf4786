package tetris

// State is the engine's play state.
type State int

const (
	Falling State = iota
	GameOver
)

func (s State) String() string {
	switch s {
	case Falling:
		return "falling"
	case GameOver:
		return "game over"
	default:
		return "unknown"
	}
}

// View is a snapshot handed to renderers. It owns its Grid copy and stays
// valid after the engine moves on.
type View struct {
	Grid     *Grid
	Piece    Piece
	Ghost    Piece
	Score    int
	Lines    int
	State    State
	Revision uint64
}

// Renderer draws engine snapshots. Nothing it returns feeds back into play.
type Renderer interface {
	Render(view View)
}

// ScoreSink is told the new score every time it changes.
type ScoreSink interface {
	ScoreChanged(score int)
}

// ScoreFunc adapts a plain function to ScoreSink.
type ScoreFunc func(score int)

func (f ScoreFunc) ScoreChanged(score int) { f(score) }
