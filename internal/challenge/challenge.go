package challenge

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/chenyiwei198603-source/xmpkfjjjzhiuizhusuan/internal/abacus"
	"github.com/chenyiwei198603-source/xmpkfjjjzhiuizhusuan/internal/position"
)

// Kind is the operation a challenge practices.
type Kind string

const (
	Add      Kind = "ADD"
	Subtract Kind = "SUB"
	Multiply Kind = "MUL"
	Divide   Kind = "DIV"
)

// Kinds lists every kind in menu order.
var Kinds = []Kind{Add, Subtract, Multiply, Divide}

// ParseKind accepts a kind name in any case.
func ParseKind(s string) (Kind, error) {
	k := Kind(strings.ToUpper(strings.TrimSpace(s)))
	for _, known := range Kinds {
		if k == known {
			return k, nil
		}
	}
	return "", abacus.NewInputError("kind", "unknown challenge kind %q", s)
}

// Challenge is one generated problem and the learner's progress through it.
type Challenge struct {
	ID       string `json:"id"`
	Kind     Kind   `json:"kind"`
	Question string `json:"question"`
	A        int    `json:"a"`
	B        int    `json:"b"`
	// Steps are the signed increments entered in sequence (ADD/SUB only).
	Steps       []int          `json:"steps"`
	Target      int            `json:"target"`
	CurrentStep int            `json:"current_step"`
	Positioning *position.Rule `json:"positioning,omitempty"`
}

// Generator builds challenges from an injected random source.
type Generator struct {
	rng *rand.Rand
	ids IDGenerator
}

// NewGenerator creates a generator. A nil ids defaults to UUIDv7Generator.
func NewGenerator(rng *rand.Rand, ids IDGenerator) *Generator {
	if ids == nil {
		ids = UUIDv7Generator{}
	}
	return &Generator{rng: rng, ids: ids}
}

// NewSeeded creates a generator whose problems are fully determined by seed.
func NewSeeded(seed uint64, ids IDGenerator) *Generator {
	return NewGenerator(rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)), ids)
}

// between returns a uniform int in [lo, hi].
func (g *Generator) between(lo, hi int) int {
	return lo + g.rng.IntN(hi-lo+1)
}

// Generate produces a new challenge of the requested kind.
func (g *Generator) Generate(kind Kind) (*Challenge, error) {
	switch kind {
	case Add:
		a, b := g.between(10, 99), g.between(10, 99)
		return g.stepwise(kind, fmt.Sprintf("%d + %d", a, b), a, b, []int{a, b}, a+b), nil

	case Subtract:
		a := g.between(10, 99)
		b := g.rng.IntN(a)
		return g.stepwise(kind, fmt.Sprintf("%d - %d", a, b), a, b, []int{a, -b}, a-b), nil

	case Multiply:
		a, b := g.between(10, 99), g.between(10, 99)
		return g.positioned(kind, position.Multiply, fmt.Sprintf("%d × %d", a, b), a, b, a*b)

	case Divide:
		b := g.between(2, 21)
		res := g.between(1, 50)
		a := b * res
		return g.positioned(kind, position.Divide, fmt.Sprintf("%d ÷ %d", a, b), a, b, res)
	}

	return nil, abacus.NewInputError("kind", "unknown challenge kind %q", kind)
}

func (g *Generator) stepwise(kind Kind, question string, a, b int, steps []int, target int) *Challenge {
	return &Challenge{
		ID:       g.ids.Generate(),
		Kind:     kind,
		Question: question,
		A:        a,
		B:        b,
		Steps:    steps,
		Target:   target,
	}
}

func (g *Generator) positioned(kind Kind, op position.Operation, question string, a, b, target int) (*Challenge, error) {
	rule, err := position.Position(op, a, b)
	if err != nil {
		return nil, fmt.Errorf("position %s: %w", kind, err)
	}
	return &Challenge{
		ID:          g.ids.Generate(),
		Kind:        kind,
		Question:    question,
		A:           a,
		B:           b,
		Steps:       []int{},
		Target:      target,
		Positioning: &rule,
	}, nil
}
