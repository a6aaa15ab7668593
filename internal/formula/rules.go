package formula

import "fmt"

// rule pairs a predicate with the mnemonic it produces.
type rule struct {
	rule  Rule
	match func(t transition) bool
	build func(t transition) Formula
}

// fixedMnemonic is a mnemonic that does not follow the N<verb>M pattern.
type fixedMnemonic struct {
	koujue      string
	description string
}

// breakFiveCarryTen holds 破五进十加, keyed by delta.
var breakFiveCarryTen = map[int]fixedMnemonic{
	6: {"六上一去五进一", "加6，不够减4，上1去5进1"},
	7: {"七上二去五进一", "加7，不够减3，上2去5进1"},
	8: {"八上三去五进一", "加8，不够减2，上3去5进1"},
	9: {"九上四去五进一", "加9，不够减1，上4去5进1"},
}

// borrowTenReturnFive holds 退十补五减, keyed by |delta|.
var borrowTenReturnFive = map[int]fixedMnemonic{
	6: {"六退一还五去一", "退1，还5去1"},
	7: {"七退一还五去二", "退1，还5去2"},
	8: {"八退一还五去三", "退1，还5去3"},
	9: {"九退一还五去四", "退1，还5去4"},
}

// crossesTenUp reports a carry into the next column.
func crossesTenUp(t transition) bool {
	return t.current >= 10 && t.previous < 10
}

// crossesTenDown reports a borrow from the next column.
func crossesTenDown(t transition) bool {
	return t.current < 0
}

// additionRules are tried in order for positive deltas.
var additionRules = []rule{
	{
		rule: DirectAdd,
		match: func(t transition) bool {
			return (t.abs < 5 && t.prevEarth+t.abs < 5) ||
				(t.abs >= 5 && !t.prevHeaven && t.prevEarth+(t.abs-5) < 5)
		},
		build: func(t transition) Formula {
			n := Numeral(t.abs)
			return Formula{Koujue: n + "上" + n, Description: "直接拨入"}
		},
	},
	{
		rule: FullFiveAdd,
		match: func(t transition) bool {
			return t.prevRod < 5 && t.abs < 5 && t.prevRod+t.abs >= 5
		},
		build: func(t transition) Formula {
			removal := 5 - t.delta
			return Formula{
				Koujue:      Numeral(t.abs) + "下五去" + Numeral(removal),
				Description: fmt.Sprintf("加%d不够，下5减%d", t.abs, removal),
			}
		},
	},
	{
		rule: BreakFiveCarryTen,
		match: func(t transition) bool {
			_, ok := breakFiveCarryTen[t.delta]
			return ok && crossesTenUp(t) && t.prevHeaven && t.prevEarth < 10-t.delta
		},
		build: func(t transition) Formula {
			m := breakFiveCarryTen[t.delta]
			return Formula{Koujue: m.koujue, Description: m.description}
		},
	},
	{
		rule:  CarryTen,
		match: crossesTenUp,
		build: func(t transition) Formula {
			complement := 10 - t.delta
			return Formula{
				Koujue:      Numeral(t.abs) + "去" + Numeral(complement) + "进一",
				Description: fmt.Sprintf("加%d不够，去%d进1", t.abs, complement),
			}
		},
	},
}

// subtractionRules are tried in order for negative deltas.
var subtractionRules = []rule{
	{
		rule: DirectSubtract,
		match: func(t transition) bool {
			return (t.abs < 5 && t.prevEarth >= t.abs) ||
				(t.abs >= 5 && t.prevHeaven && t.prevEarth >= t.abs-5)
		},
		build: func(t transition) Formula {
			n := Numeral(t.abs)
			return Formula{Koujue: n + "去" + n, Description: "直接拨去"}
		},
	},
	{
		rule: BreakFiveSubtract,
		match: func(t transition) bool {
			return t.prevHeaven && t.abs < 5 && t.prevEarth < t.abs
		},
		build: func(t transition) Formula {
			addBack := 5 - t.abs
			return Formula{
				Koujue:      Numeral(t.abs) + "上" + Numeral(addBack) + "去五",
				Description: fmt.Sprintf("减%d不够，上%d去5", t.abs, addBack),
			}
		},
	},
	{
		rule: BorrowTenReturnFive,
		match: func(t transition) bool {
			_, ok := borrowTenReturnFive[t.abs]
			return ok && crossesTenDown(t) && !t.prevHeaven && t.prevEarth+(10-t.abs) >= 5
		},
		build: func(t transition) Formula {
			m := borrowTenReturnFive[t.abs]
			return Formula{Koujue: m.koujue, Description: m.description}
		},
	},
	{
		rule:  BorrowTen,
		match: crossesTenDown,
		build: func(t transition) Formula {
			complement := 10 - t.abs
			return Formula{
				Koujue:      Numeral(t.abs) + "退一还" + Numeral(complement),
				Description: fmt.Sprintf("减%d不够，退1还%d", t.abs, complement),
			}
		},
	},
}
