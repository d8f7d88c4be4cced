package engine

import (
	"reflect"
	"testing"
)

func TestNewBoardDimensions(t *testing.T) {
	board := NewBoard()
	if len(board) != Rows {
		t.Fatalf("expected %d rows, got %d", Rows, len(board))
	}
	for r, row := range board {
		if len(row) != Columns {
			t.Errorf("row %d: expected %d columns, got %d", r, Columns, len(row))
		}
	}
}

func TestBoardClone(t *testing.T) {
	board := NewBoard()
	board[5][3] = SlotP1

	clone := board.Clone()
	if clone[5][3] != SlotP1 {
		t.Error("clone missing piece from original")
	}

	// Mutating the clone must not touch the original, and vice versa.
	clone[5][3] = SlotP2
	if board[5][3] != SlotP1 {
		t.Error("mutating the clone changed the original")
	}
	board[0][0] = SlotP1
	if clone[0][0] != Empty {
		t.Error("mutating the original changed the clone")
	}
}

func TestColumnFull(t *testing.T) {
	board := NewBoard()
	if board.ColumnFull(0) {
		t.Error("empty column reported full")
	}

	// A column is full only when the top cell is occupied.
	for r := 1; r < Rows; r++ {
		board[r][0] = SlotP1
	}
	if board.ColumnFull(0) {
		t.Error("column with empty top cell reported full")
	}

	board[0][0] = SlotP2
	if !board.ColumnFull(0) {
		t.Error("full column not reported full")
	}
}

func TestBoardFull(t *testing.T) {
	board := NewBoard()
	if board.Full() {
		t.Error("empty board reported full")
	}

	// Only the top row matters; pieces cannot float.
	for c := 0; c < Columns; c++ {
		board[0][c] = SlotP1
	}
	if !board.Full() {
		t.Error("board with full top row not reported full")
	}

	board[0][3] = Empty
	if board.Full() {
		t.Error("board with open column reported full")
	}
}

func TestLegalColumns(t *testing.T) {
	board := NewBoard()

	got := board.LegalColumns()
	want := []int{0, 1, 2, 3, 4, 5, 6}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected all columns legal, got %v", got)
	}

	board[0][0] = SlotP1
	board[0][3] = SlotP2
	board[0][6] = SlotP1

	got = board.LegalColumns()
	want = []int{1, 2, 4, 5}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}

	for c := 0; c < Columns; c++ {
		board[0][c] = SlotP1
	}
	if got := board.LegalColumns(); len(got) != 0 {
		t.Errorf("expected no legal columns on full board, got %v", got)
	}
}

func TestDrop(t *testing.T) {
	board := NewBoard()

	if row := board.drop(4, SlotP1); row != Rows-1 {
		t.Errorf("expected drop into row %d, got %d", Rows-1, row)
	}
	if row := board.drop(4, SlotP2); row != Rows-2 {
		t.Errorf("expected drop into row %d, got %d", Rows-2, row)
	}
	if board[Rows-1][4] != SlotP1 || board[Rows-2][4] != SlotP2 {
		t.Errorf("pieces not stacked as dropped: %v", board)
	}

	for i := 0; i < Rows-2; i++ {
		if row := board.drop(4, SlotP1); row < 0 {
			t.Fatalf("drop %d unexpectedly failed", i)
		}
	}
	if row := board.drop(4, SlotP1); row != -1 {
		t.Errorf("expected -1 dropping into a full column, got %d", row)
	}
}
