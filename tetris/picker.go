package tetris

import (
	"errors"
	"fmt"
	"math/rand/v2"
)

const (
	PickerUniform = "uniform"
	PickerBag     = "bag"
)

var ErrUnknownPicker = errors.New("unknown picker")

// ShapePicker chooses the catalog index of the next spawned piece.
type ShapePicker interface {
	Next() int
}

func validPicker(name string) bool {
	return name == PickerUniform || name == PickerBag
}

// NewPicker builds the named picker drawing from r.
func NewPicker(name string, r *rand.Rand) (ShapePicker, error) {
	switch name {
	case PickerUniform:
		return &UniformPicker{Rand: r}, nil
	case PickerBag:
		return &BagPicker{Rand: r}, nil
	default:
		return nil, fmt.Errorf("%w %q", ErrUnknownPicker, name)
	}
}

// UniformPicker draws every shape independently with equal probability.
type UniformPicker struct {
	Rand *rand.Rand
}

func (p *UniformPicker) Next() int {
	return p.Rand.IntN(ShapeCount)
}

// BagPicker deals a shuffled permutation of all seven shapes before
// reshuffling, so no shape is missing for more than twelve spawns.
type BagPicker struct {
	Rand *rand.Rand
	bag  []int
}

func (p *BagPicker) Next() int {
	if len(p.bag) == 0 {
		p.bag = []int{0, 1, 2, 3, 4, 5, 6}
		p.Rand.Shuffle(len(p.bag), func(i, j int) {
			p.bag[i], p.bag[j] = p.bag[j], p.bag[i]
		})
	}

	kind := p.bag[0]
	p.bag = p.bag[1:]
	return kind
}

// SequencePicker replays Kinds in order and wraps around.
type SequencePicker struct {
	Kinds []int
	next  int
}

func (p *SequencePicker) Next() int {
	if len(p.Kinds) == 0 {
		return 0
	}
	kind := p.Kinds[p.next%len(p.Kinds)]
	p.next++
	return kind
}
