// Package position implements the traditional digit-positioning rules (定位)
// that tell an operator, before calculating, how many digits a product or
// quotient occupies.
package position

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/chenyiwei198603-source/xmpkfjjjzhiuizhusuan/internal/abacus"
)

// Operation selects the positioning rule.
type Operation string

const (
	Multiply Operation = "MUL"
	Divide   Operation = "DIV"
)

// ParseOperation accepts MUL/DIV in any case, plus the words multiply and divide.
func ParseOperation(s string) (Operation, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "MUL", "MULTIPLY":
		return Multiply, nil
	case "DIV", "DIVIDE":
		return Divide, nil
	}
	return "", abacus.NewInputError("operation", "unknown operation %q", s)
}

// Rule is the outcome of positioning one problem.
type Rule struct {
	Operation    Operation `json:"operation"`
	TargetDigits int       `json:"target_digits"`
	// Carry is true when the head digits carry (MUL) or the dividend's
	// leading digits are not smaller than the divisor's (DIV).
	Carry       bool   `json:"carry"`
	Description string `json:"description"`
}

// operand exposes the digit facts the rules read.
type operand struct {
	digits string
}

func newOperand(n int) operand {
	return operand{digits: strconv.Itoa(n)}
}

func (o operand) count() int { return len(o.digits) }

// digit returns the i-th leading digit, or 0 when the number is shorter.
func (o operand) digit(i int) int {
	if i >= len(o.digits) {
		return 0
	}
	return int(o.digits[i] - '0')
}

// Position computes the digit count of a·b (Multiply) or a÷b (Divide).
// Both operands must be positive.
func Position(op Operation, a, b int) (Rule, error) {
	if a <= 0 {
		return Rule{}, abacus.NewInputError("a", "must be positive, got %d", a)
	}
	if b <= 0 {
		return Rule{}, abacus.NewInputError("b", "must be positive, got %d", b)
	}

	x, y := newOperand(a), newOperand(b)
	switch op {
	case Multiply:
		return multiply(x, y), nil
	case Divide:
		return divide(x, y), nil
	}
	return Rule{}, abacus.NewInputError("operation", "unknown operation %q", op)
}

func multiply(a, b operand) Rule {
	m, n := a.count(), b.count()
	fa, fb := a.digit(0), b.digit(0)
	head := fa * fb

	if head >= 10 {
		t := m + n
		return Rule{
			Operation:    Multiply,
			TargetDigits: t,
			Carry:        true,
			Description:  fmt.Sprintf("被乘数位m=%d, 乘数位n=%d。首积进位(%d×%d=%d≥10), 积位=m+n=%d。", m, n, fa, fb, head, t),
		}
	}

	t := m + n - 1
	return Rule{
		Operation:    Multiply,
		TargetDigits: t,
		Description:  fmt.Sprintf("被乘数位m=%d, 乘数位n=%d。首积不进位(%d×%d=%d<10), 积位=m+n-1=%d。", m, n, fa, fb, head, t),
	}
}

func divide(a, b operand) Rule {
	m, n := a.count(), b.count()
	fa, fb := a.digit(0), b.digit(0)

	ge := fa > fb || (fa == fb && a.digit(1) >= b.digit(1))

	if ge {
		t := m - n + 1
		return Rule{
			Operation:    Divide,
			TargetDigits: t,
			Carry:        true,
			Description:  fmt.Sprintf("被除数m=%d, 除数n=%d。首位%d≥%d, 商位=m-n+1=%d。", m, n, fa, fb, t),
		}
	}

	t := m - n
	return Rule{
		Operation:    Divide,
		TargetDigits: t,
		Description:  fmt.Sprintf("被除数m=%d, 除数n=%d。首位%d<%d, 商位=m-n=%d。", m, n, fa, fb, t),
	}
}
