package tetris

import (
	"errors"
	"fmt"
	"strings"
)

// Command is a decoded player input.
type Command int

const (
	MoveLeft Command = iota
	MoveRight
	MoveDown
	Rotate
)

var ErrUnknownCommand = errors.New("unknown command")

var commandNames = [...]string{
	MoveLeft:  "left",
	MoveRight: "right",
	MoveDown:  "down",
	Rotate:    "rotate",
}

func (c Command) String() string {
	if c < 0 || int(c) >= len(commandNames) {
		return fmt.Sprintf("Command(%d)", int(c))
	}
	return commandNames[c]
}

// ParseCommand accepts the command names case-insensitively, plus the arrow
// shorthands "l", "r", "d" and "u" (up rotates).
func ParseCommand(s string) (Command, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "left", "l":
		return MoveLeft, nil
	case "right", "r":
		return MoveRight, nil
	case "down", "d":
		return MoveDown, nil
	case "rotate", "up", "u":
		return Rotate, nil
	}
	return 0, fmt.Errorf("%w %q", ErrUnknownCommand, s)
}

// ParseScript splits a comma or whitespace separated list of commands.
func ParseScript(script string) ([]Command, error) {
	fields := strings.FieldsFunc(script, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n'
	})

	cmds := make([]Command, 0, len(fields))
	for i, f := range fields {
		cmd, err := ParseCommand(f)
		if err != nil {
			return nil, fmt.Errorf("script item %d: %w", i, err)
		}
		cmds = append(cmds, cmd)
	}
	return cmds, nil
}
