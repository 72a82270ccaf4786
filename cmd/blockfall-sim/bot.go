package main

import (
	"fmt"
	"math/rand/v2"

	"github.com/plus3/blockfall/tetris"
)

const (
	botRandom = "random"
	botScript = "script"
)

// Bot decides which commands to queue before the next gravity tick.
type Bot interface {
	Next(view tetris.View) []tetris.Command
}

// RandomBot queues up to MaxMoves uniformly chosen commands per tick.
type RandomBot struct {
	Rand     *rand.Rand
	MaxMoves int
}

func (b *RandomBot) Next(tetris.View) []tetris.Command {
	n := b.Rand.IntN(b.MaxMoves + 1)
	cmds := make([]tetris.Command, n)
	for i := range cmds {
		cmds[i] = tetris.Command(b.Rand.IntN(4))
	}
	return cmds
}

// ScriptBot replays one scripted command per tick, looping at the end.
type ScriptBot struct {
	Script []tetris.Command
	pos    int
}

func (b *ScriptBot) Next(tetris.View) []tetris.Command {
	if len(b.Script) == 0 {
		return nil
	}
	cmd := b.Script[b.pos]
	b.pos = (b.pos + 1) % len(b.Script)
	return []tetris.Command{cmd}
}

func newBot(kind, script string, maxMoves int, r *rand.Rand) (Bot, error) {
	switch kind {
	case botRandom:
		if maxMoves < 0 {
			return nil, fmt.Errorf("moves must be >= 0, got %d", maxMoves)
		}
		return &RandomBot{Rand: r, MaxMoves: maxMoves}, nil
	case botScript:
		cmds, err := tetris.ParseScript(script)
		if err != nil {
			return nil, fmt.Errorf("parse script: %w", err)
		}
		if len(cmds) == 0 {
			return nil, fmt.Errorf("script bot needs a non-empty --script")
		}
		return &ScriptBot{Script: cmds}, nil
	default:
		return nil, fmt.Errorf("unknown bot %q: must be %s or %s", kind, botRandom, botScript)
	}
}
