package engine

// Board is the 6x7 game grid. Row 0 is the top row, row 5 is the bottom.
// A cell holds Empty or the slot of the player who owns the piece in it.
type Board [][]Slot

// NewBoard returns an empty 6x7 board.
func NewBoard() Board {
	board := make(Board, Rows)
	for r := range board {
		board[r] = make([]Slot, Columns)
	}
	return board
}

// Clone returns a deep copy of the board. Snapshots handed to callers use
// clones so later moves do not mutate data already returned.
func (b Board) Clone() Board {
	clone := make(Board, len(b))
	for r := range b {
		clone[r] = make([]Slot, len(b[r]))
		copy(clone[r], b[r])
	}
	return clone
}

// ColumnFull reports whether a column cannot accept another piece.
// A column is full exactly when its top cell is occupied.
func (b Board) ColumnFull(column int) bool {
	return b[0][column] != Empty
}

// Full reports whether every column is full.
func (b Board) Full() bool {
	for c := 0; c < Columns; c++ {
		if b[0][c] == Empty {
			return false
		}
	}
	return true
}

// LegalColumns returns the columns whose top cell is unoccupied, in
// ascending order.
func (b Board) LegalColumns() []int {
	var legal []int
	for c := 0; c < Columns; c++ {
		if !b.ColumnFull(c) {
			legal = append(legal, c)
		}
	}
	return legal
}

// drop places slot in the lowest empty row of column and returns that row.
// It scans from the bottom row upward so the piece obeys gravity. Returns
// -1 if the column is full.
func (b Board) drop(column int, slot Slot) int {
	for row := Rows - 1; row >= 0; row-- {
		if b[row][column] == Empty {
			b[row][column] = slot
			return row
		}
	}
	return -1
}
