package tictactoe

import "fmt"

// corners are tried in this order once no tactical move exists.
var corners = [4]int{0, 2, 6, 8}

// ChooseMove picks the CPU's tile for piece ai. Priority: complete own line,
// block the opponent's line, opening reply, the diagonal heuristic, any
// corner, then the first free tile. The board must have a free tile.
func ChooseMove(b Board, ai Cell) int {
	if b.Full() {
		panic("tictactoe: ChooseMove on a full board")
	}
	opp := ai.Other()

	if idx, ok := winningTile(b, ai); ok {
		return idx
	}
	if idx, ok := winningTile(b, opp); ok {
		return idx
	}

	if b.Count() == 1 {
		if b[4] == Empty {
			return 4
		}
		return 0
	}

	// Take the corner next to an opponent edge piece
	if (b[5] == opp || b[7] == opp) && b[8] == Empty {
		return 8
	}

	for _, idx := range corners {
		if b[idx] == Empty {
			return idx
		}
	}
	for idx, c := range b {
		if c == Empty {
			return idx
		}
	}
	panic(fmt.Sprintf("tictactoe: no free tile on %v", b))
}

// winningTile returns the empty tile that completes a line of p.
func winningTile(b Board, p Cell) (int, bool) {
	for _, l := range lines {
		own, free := 0, -1
		for _, idx := range l {
			switch b[idx] {
			case p:
				own++
			case Empty:
				free = idx
			}
		}
		if own == 2 && free >= 0 {
			return free, true
		}
	}
	return 0, false
}
