package formula

import "github.com/chenyiwei198603-source/xmpkfjjjzhiuizhusuan/internal/abacus"

// Transition is a classified single-click column change.
type Transition struct {
	Previous int      `json:"previous"`
	Current  int      `json:"current"`
	Formula  *Formula `json:"formula"`
}

// Reachable classifies every distinct (previous, current) pair that one bead
// click can produce, in the order abacus.Transitions enumerates them.
func Reachable() []Transition {
	type pair struct{ prev, cur int }
	seen := make(map[pair]bool)

	var out []Transition
	for _, m := range abacus.Transitions() {
		p := pair{m.Previous, m.Current}
		if seen[p] {
			continue
		}
		seen[p] = true
		out = append(out, Transition{
			Previous: m.Previous,
			Current:  m.Current,
			Formula:  Classify(m.Previous, m.Current),
		})
	}
	return out
}

// FallbackTransitions returns the reachable transitions no named rule
// explains. They all start from a rod showing 10 or more.
func FallbackTransitions() []Transition {
	var out []Transition
	for _, t := range Reachable() {
		if t.Formula != nil && t.Formula.Rule == Mixed {
			out = append(out, t)
		}
	}
	return out
}
