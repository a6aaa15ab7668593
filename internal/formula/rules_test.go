package formula

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func findRule(table []rule, name Rule) rule {
	for _, r := range table {
		if r.rule == name {
			return r
		}
	}
	panic("rule not found: " + string(name))
}

func TestRuleTables_Order(t *testing.T) {
	var add, sub []Rule
	for _, r := range additionRules {
		add = append(add, r.rule)
	}
	for _, r := range subtractionRules {
		sub = append(sub, r.rule)
	}

	assert.Equal(t, []Rule{DirectAdd, FullFiveAdd, BreakFiveCarryTen, CarryTen}, add)
	assert.Equal(t, []Rule{DirectSubtract, BreakFiveSubtract, BorrowTenReturnFive, BorrowTen}, sub)
}

func TestDirectAddPredicate(t *testing.T) {
	r := findRule(additionRules, DirectAdd)

	assert.True(t, r.match(newTransition(0, 4)))
	assert.True(t, r.match(newTransition(2, 8)), "add 6 with free heaven bead")
	assert.False(t, r.match(newTransition(3, 6)), "not enough earth beads")
	assert.False(t, r.match(newTransition(5, 11)), "heaven already down")
}

func TestFullFiveAddPredicate(t *testing.T) {
	r := findRule(additionRules, FullFiveAdd)

	assert.True(t, r.match(newTransition(4, 5)))
	assert.True(t, r.match(newTransition(2, 6)))
	assert.False(t, r.match(newTransition(6, 9)), "heaven already down")
	assert.False(t, r.match(newTransition(1, 7)), "delta of five or more")
}

func TestBreakFiveCarryTenPredicate(t *testing.T) {
	r := findRule(additionRules, BreakFiveCarryTen)

	assert.True(t, r.match(newTransition(6, 13)))
	assert.False(t, r.match(newTransition(9, 16)), "complement 3 available on earth")
	assert.False(t, r.match(newTransition(4, 12)), "heaven not down")
	assert.False(t, r.match(newTransition(8, 13)), "delta 5 has no table entry")
	assert.False(t, r.match(newTransition(11, 17)), "previous already past ten")
}

func TestCarryTenPredicate(t *testing.T) {
	r := findRule(additionRules, CarryTen)

	assert.True(t, r.match(newTransition(7, 12)))
	assert.False(t, r.match(newTransition(7, 9)))
	assert.False(t, r.match(newTransition(10, 12)))
}

func TestDirectSubtractPredicate(t *testing.T) {
	r := findRule(subtractionRules, DirectSubtract)

	assert.True(t, r.match(newTransition(3, 1)))
	assert.True(t, r.match(newTransition(9, 2)))
	assert.False(t, r.match(newTransition(5, 3)), "no earth beads to remove")
	assert.False(t, r.match(newTransition(4, -1)), "heaven not down")
}

func TestBreakFiveSubtractPredicate(t *testing.T) {
	r := findRule(subtractionRules, BreakFiveSubtract)

	assert.True(t, r.match(newTransition(5, 1)))
	assert.True(t, r.match(newTransition(7, 4)))
	assert.False(t, r.match(newTransition(3, 1)), "heaven not down")
	assert.False(t, r.match(newTransition(9, 3)), "delta six")
}

func TestBorrowTenReturnFivePredicate(t *testing.T) {
	r := findRule(subtractionRules, BorrowTenReturnFive)

	assert.True(t, r.match(newTransition(2, -5)))
	assert.False(t, r.match(newTransition(0, -6)), "complement 4 fits on earth")
	assert.False(t, r.match(newTransition(4, -1)), "delta five has no table entry")
}

func TestBorrowTenPredicate(t *testing.T) {
	r := findRule(subtractionRules, BorrowTen)

	assert.True(t, r.match(newTransition(0, -1)))
	assert.False(t, r.match(newTransition(3, 0)))
}
