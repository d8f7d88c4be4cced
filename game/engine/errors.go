package engine

import "errors"

// Move rejection errors. Every rejected move maps to exactly one of these;
// a rejected move never mutates the board.
var (
	// ErrGameAlreadyDecided is returned for any move on a game whose
	// status has left in-progress (won or draw).
	ErrGameAlreadyDecided = errors.New("game already decided")

	// ErrNotYourTurn is returned when the acting slot does not hold the
	// current turn.
	ErrNotYourTurn = errors.New("it's not your turn")

	// ErrColumnOutOfBounds is returned for columns outside 0..6.
	ErrColumnOutOfBounds = errors.New("column out of bounds")

	// ErrColumnFull is returned when the target column's top cell is
	// occupied.
	ErrColumnFull = errors.New("column is full")

	// ErrInvalidMove covers any placement failure the ordered checks do
	// not account for. It should be unreachable.
	ErrInvalidMove = errors.New("invalid move")

	// ErrNoLegalMoves is returned by SelectMove when every column is full.
	ErrNoLegalMoves = errors.New("no legal moves available")
)
