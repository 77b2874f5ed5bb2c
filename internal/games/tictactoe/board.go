// Package tictactoe implements Tic-Tac-Toe against a fixed-heuristic CPU.
package tictactoe

// Cell is the content of one tile.
type Cell int

const (
	Empty Cell = iota
	X          // Human, moves first
	O          // CPU when enabled
)

// Other returns the opposing piece.
func (c Cell) Other() Cell {
	switch c {
	case X:
		return O
	case O:
		return X
	default:
		panic("tictactoe: empty cell has no opponent")
	}
}

// String returns the piece name stored with round results.
func (c Cell) String() string {
	switch c {
	case X:
		return "x"
	case O:
		return "o"
	default:
		return "empty"
	}
}

// Board holds the 3x3 tiles in row-major order.
type Board [9]Cell

// lines lists every winning triple: rows, then columns, then diagonals.
var lines = [8][3]int{
	{0, 1, 2}, {3, 4, 5}, {6, 7, 8},
	{0, 3, 6}, {1, 4, 7}, {2, 5, 8},
	{0, 4, 8}, {2, 4, 6},
}

// Count returns the number of placed pieces.
func (b *Board) Count() int {
	n := 0
	for _, c := range b {
		if c != Empty {
			n++
		}
	}
	return n
}

// Full reports whether no tile is empty.
func (b *Board) Full() bool {
	return b.Count() == len(b)
}

// Winner returns the piece owning a complete line, or Empty.
func (b *Board) Winner() Cell {
	for _, l := range lines {
		if c := b[l[0]]; c != Empty && c == b[l[1]] && c == b[l[2]] {
			return c
		}
	}
	return Empty
}
