package engine

// winDirections are the four line orientations that can hold a winning
// run: horizontal, vertical, and the two diagonals. Each entry is a
// (row delta, column delta) step.
var winDirections = [4][2]int{
	{0, 1},  // horizontal
	{1, 0},  // vertical
	{1, 1},  // diagonal down-right
	{1, -1}, // diagonal down-left
}

// hasConnectFour reports whether a run of four or more cells owned by slot
// passes through (row, column). Only the four lines through the placed
// cell are scanned: no other line can have newly become a win, so checking
// the full board is unnecessary.
//
// Each direction scans offsets -3..+3 from the placed cell, resetting the
// run counter when a step lands out of bounds or on a cell not owned by
// slot. The run therefore does not need to start at the placed cell; any
// four-in-a-row along the line is found.
func (b Board) hasConnectFour(row, column int, slot Slot) bool {
	for _, dir := range winDirections {
		count := 0
		for delta := -3; delta <= 3; delta++ {
			r := row + delta*dir[0]
			c := column + delta*dir[1]
			if r < 0 || r >= Rows || c < 0 || c >= Columns || b[r][c] != slot {
				count = 0
				continue
			}
			count++
			if count >= 4 {
				return true
			}
		}
	}
	return false
}
