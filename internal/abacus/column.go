package abacus

// Bead limits for a single column.
const (
	MaxUpper   = 2
	MaxLower   = 5
	UpperValue = 5
)

// Column is the bead configuration of one rod.
type Column struct {
	Upper int `json:"upper"` // active heaven beads, 0..2
	Lower int `json:"lower"` // active earth beads, 0..5
}

// Value returns 5*Upper + Lower.
// The column is assumed valid; use ColumnValue to check bead counts.
func (c Column) Value() int {
	return c.Upper*UpperValue + c.Lower
}

// ColumnValue converts bead counts to the numeric column value.
// Counts outside upper ∈ [0,2], lower ∈ [0,5] are rejected rather than
// clamped so that caller bugs surface early.
func ColumnValue(upper, lower int) (int, error) {
	if upper < 0 || upper > MaxUpper {
		return 0, NewInputError("upper", "must be in [0,%d], got %d", MaxUpper, upper)
	}
	if lower < 0 || lower > MaxLower {
		return 0, NewInputError("lower", "must be in [0,%d], got %d", MaxLower, lower)
	}
	return Column{Upper: upper, Lower: lower}.Value(), nil
}

// MaxBoardDigits is the longest digit sequence BoardValue accepts without
// overflowing int64.
const MaxBoardDigits = 18

// BoardValue composes column digits, most-significant first, into an integer:
// Σ digits[i] * 10^(len-1-i). An empty board is 0.
func BoardValue(digits []int) (int64, error) {
	if len(digits) > MaxBoardDigits {
		return 0, NewInputError("digits", "at most %d columns, got %d", MaxBoardDigits, len(digits))
	}
	for i, d := range digits {
		if d < 0 || d > 9 {
			return 0, NewInputError("digits", "column %d must be in [0,9], got %d", i, d)
		}
	}
	return compose(digits), nil
}

// compose applies positional weighting without range checks. Column values
// above 9 (a rod showing 10..15) still contribute value*10^power.
func compose(values []int) int64 {
	var total int64
	for _, v := range values {
		total = total*10 + int64(v)
	}
	return total
}
