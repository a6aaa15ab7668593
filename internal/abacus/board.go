package abacus

// DefaultRods is the number of columns on a standard practice board.
const DefaultRods = 13

// Move records a single bead toggle on one rod.
type Move struct {
	Rod      int `json:"rod"`
	Previous int `json:"previous"`
	Current  int `json:"current"`
}

// Delta returns Current - Previous.
func (m Move) Delta() int {
	return m.Current - m.Previous
}

// Board is an ordered set of columns, most-significant first.
// The zero value is an empty board; use NewBoard.
type Board struct {
	cols []Column
}

// NewBoard creates a cleared board with the given number of rods.
func NewBoard(rods int) (*Board, error) {
	if rods <= 0 || rods > MaxBoardDigits {
		return nil, NewInputError("rods", "must be in [1,%d], got %d", MaxBoardDigits, rods)
	}
	return &Board{cols: make([]Column, rods)}, nil
}

// Rods returns the number of columns.
func (b *Board) Rods() int {
	return len(b.cols)
}

// Column returns the bead state of one rod.
func (b *Board) Column(rod int) (Column, error) {
	if err := b.checkRod(rod); err != nil {
		return Column{}, err
	}
	return b.cols[rod], nil
}

// Values returns every column's value, most-significant first.
// A rod with both heaven beads down can show 10..15.
func (b *Board) Values() []int {
	out := make([]int, len(b.cols))
	for i, c := range b.cols {
		out[i] = c.Value()
	}
	return out
}

// Value returns the whole-board integer.
func (b *Board) Value() int64 {
	return compose(b.Values())
}

// Reset clears every rod.
func (b *Board) Reset() {
	for i := range b.cols {
		b.cols[i] = Column{}
	}
}

// ToggleHeaven clicks heaven bead index (0 = top, 1 = next to the beam).
//
// Count transitions:
//
//	0 -> idx0: 2, idx1: 1
//	1 -> idx0: 2, idx1: 0
//	2 -> idx0: 1, idx1: 0
func (b *Board) ToggleHeaven(rod, index int) (Move, error) {
	if err := b.checkRod(rod); err != nil {
		return Move{}, err
	}
	if index < 0 || index >= MaxUpper {
		return Move{}, NewInputError("index", "heaven bead must be in [0,%d], got %d", MaxUpper-1, index)
	}

	col := b.cols[rod]
	prev := col.Value()
	col.Upper = nextHeaven(col.Upper, index)
	b.cols[rod] = col

	return Move{Rod: rod, Previous: prev, Current: col.Value()}, nil
}

func nextHeaven(count, index int) int {
	switch count {
	case 0:
		if index == 0 {
			return 2
		}
		return 1
	case 1:
		if index == 0 {
			return 2
		}
		return 0
	default:
		if index == 0 {
			return 1
		}
		return 0
	}
}

// ToggleEarth clicks earth bead index (0 = next to the beam, 4 = bottom).
// Clicking an active bead drops it and every bead below it; clicking an
// inactive bead raises it and every bead above it.
func (b *Board) ToggleEarth(rod, index int) (Move, error) {
	if err := b.checkRod(rod); err != nil {
		return Move{}, err
	}
	if index < 0 || index >= MaxLower {
		return Move{}, NewInputError("index", "earth bead must be in [0,%d], got %d", MaxLower-1, index)
	}

	col := b.cols[rod]
	prev := col.Value()
	col.Lower = nextEarth(col.Lower, index)
	b.cols[rod] = col

	return Move{Rod: rod, Previous: prev, Current: col.Value()}, nil
}

func nextEarth(count, index int) int {
	if index < count {
		return index
	}
	return index + 1
}

func (b *Board) checkRod(rod int) error {
	if rod < 0 || rod >= len(b.cols) {
		return NewInputError("rod", "must be in [0,%d], got %d", len(b.cols)-1, rod)
	}
	return nil
}

// Transitions enumerates every Move a single click can produce from every
// valid column state, in state order then heaven clicks before earth clicks.
// Rod is always 0.
func Transitions() []Move {
	var moves []Move
	for upper := 0; upper <= MaxUpper; upper++ {
		for lower := 0; lower <= MaxLower; lower++ {
			prev := Column{Upper: upper, Lower: lower}
			for i := 0; i < MaxUpper; i++ {
				next := prev
				next.Upper = nextHeaven(upper, i)
				moves = append(moves, Move{Previous: prev.Value(), Current: next.Value()})
			}
			for i := 0; i < MaxLower; i++ {
				next := prev
				next.Lower = nextEarth(lower, i)
				moves = append(moves, Move{Previous: prev.Value(), Current: next.Value()})
			}
		}
	}
	return moves
}
