package formula

import (
	"fmt"
	"strconv"
)

// Rule names a traditional bead-manipulation rule.
type Rule string

const (
	DirectAdd           Rule = "direct_add"             // 直接加
	FullFiveAdd         Rule = "full_five_add"          // 满五加
	CarryTen            Rule = "carry_ten"              // 进十加
	BreakFiveCarryTen   Rule = "break_five_carry_ten"   // 破五进十加
	DirectSubtract      Rule = "direct_subtract"        // 直接减
	BreakFiveSubtract   Rule = "break_five_subtract"    // 破五减
	BorrowTen           Rule = "borrow_ten"             // 退十减
	BorrowTenReturnFive Rule = "borrow_ten_return_five" // 退十补五减
	Mixed               Rule = "mixed"                  // 混合运算
)

// Fallback texts for transitions no rule explains.
const (
	MixedKoujue      = "混合运算"
	MixedDescription = "复杂拨珠操作"
)

// Formula is the result of classifying one column transition.
type Formula struct {
	Action      string `json:"action"`
	Koujue      string `json:"koujue"`
	Description string `json:"description"`
	Rule        Rule   `json:"rule"`
}

// transition holds the quantities every rule predicate reads.
type transition struct {
	previous   int
	current    int
	delta      int
	abs        int
	prevRod    int  // previous mod 10
	prevEarth  int  // active earth beads
	prevHeaven bool // heaven bead active
}

func newTransition(previous, current int) transition {
	delta := current - previous
	abs := delta
	if abs < 0 {
		abs = -abs
	}
	prevRod := previous % 10
	return transition{
		previous:   previous,
		current:    current,
		delta:      delta,
		abs:        abs,
		prevRod:    prevRod,
		prevEarth:  prevRod % 5,
		prevHeaven: prevRod >= 5,
	}
}

// action renders the signed delta, "+3" or "-6".
func (t transition) action() string {
	if t.delta > 0 {
		return "+" + strconv.Itoa(t.delta)
	}
	return strconv.Itoa(t.delta)
}

// Classify returns the mnemonic explaining a change of one column from
// previous to current. It returns nil when the value did not change.
//
// Values are treated as unbounded integers: previous may exceed 9 and
// current may leave 0..9 when a carry or borrow crosses into the next column.
func Classify(previous, current int) *Formula {
	t := newTransition(previous, current)
	if t.delta == 0 {
		return nil
	}

	table := subtractionRules
	if t.delta > 0 {
		table = additionRules
	}
	for _, r := range table {
		if r.match(t) {
			f := r.build(t)
			f.Action = t.action()
			f.Rule = r.rule
			return &f
		}
	}

	return &Formula{
		Action:      t.action(),
		Koujue:      MixedKoujue,
		Description: MixedDescription,
		Rule:        Mixed,
	}
}

// String renders "koujue (action)".
func (f Formula) String() string {
	return fmt.Sprintf("%s (%s)", f.Koujue, f.Action)
}
