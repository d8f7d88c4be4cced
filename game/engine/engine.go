package engine

import (
	"math/rand"
	"time"
)

// GameEngine is the state machine for a single game session. It owns the
// board, turn order, and status transitions, and selects computer moves.
// It has no knowledge of sessions or transports.
type GameEngine struct {
	state *GameState
	rng   *rand.Rand
}

// NewEngine creates an engine for a fresh game between the two players.
// The board starts empty, p1 moves first, and the game is in progress.
func NewEngine(p1, p2 Player) *GameEngine {
	return NewEngineWithRand(p1, p2, rand.New(rand.NewSource(time.Now().UnixNano())))
}

// NewEngineWithRand is NewEngine with an injected random source. Tests pass
// a seeded generator so computer move selection is deterministic.
func NewEngineWithRand(p1, p2 Player, rng *rand.Rand) *GameEngine {
	return &GameEngine{
		state: &GameState{
			Board: NewBoard(),
			Players: map[Slot]Player{
				SlotP1: p1,
				SlotP2: p2,
			},
			CurrentTurn: SlotP1,
			Status:      StatusInProgress,
		},
		rng: rng,
	}
}

// GetState returns the current game state. The returned value is live;
// callers that need an immutable snapshot should clone the board.
func (e *GameEngine) GetState() *GameState {
	return e.state
}

// IsDecided reports whether the game has left in-progress.
func (e *GameEngine) IsDecided() bool {
	return e.state.Status != StatusInProgress
}

// ApplyMove drops a piece for slot into column and returns the row it
// landed in. The preconditions are checked in a fixed order and the first
// failure determines the error: game already decided, not the acting
// slot's turn, column out of bounds, column full. A rejected move leaves
// the state untouched.
//
// On success the piece lands in the lowest empty row of the column. If the
// placement completes four-in-a-row the game is won by slot and the turn
// does not change; if it fills the last cell the game is a draw; otherwise
// the turn passes to the other slot.
func (e *GameEngine) ApplyMove(slot Slot, column int) (int, error) {
	st := e.state

	if st.Status != StatusInProgress {
		return -1, ErrGameAlreadyDecided
	}
	if slot != st.CurrentTurn {
		return -1, ErrNotYourTurn
	}
	if column < 0 || column >= Columns {
		return -1, ErrColumnOutOfBounds
	}
	if st.Board.ColumnFull(column) {
		return -1, ErrColumnFull
	}

	row := st.Board.drop(column, slot)
	if row < 0 {
		// Unreachable after the checks above; guards against any illegal
		// board mutation slipping through silently.
		return -1, ErrInvalidMove
	}

	switch {
	case st.Board.hasConnectFour(row, column, slot):
		st.Status = StatusWon
		st.Winner = slot
	case st.Board.Full():
		st.Status = StatusDraw
	default:
		st.CurrentTurn = slot.Opponent()
	}

	return row, nil
}

// SelectMove picks a column for the computer player, uniformly at random
// among the columns that can still accept a piece. It is advisory only and
// does not mutate game state; the caller applies the move via ApplyMove
// with whichever slot holds the turn.
func (e *GameEngine) SelectMove() (int, error) {
	if e.state.Status != StatusInProgress {
		return -1, ErrGameAlreadyDecided
	}

	legal := e.state.Board.LegalColumns()
	if len(legal) == 0 {
		return -1, ErrNoLegalMoves
	}

	return legal[e.rng.Intn(len(legal))], nil
}

// Restart resets the board, status, winner, and turn to their initial
// values. Player records are preserved. Valid regardless of prior status.
func (e *GameEngine) Restart() *GameState {
	st := e.state
	st.Board = NewBoard()
	st.Status = StatusInProgress
	st.Winner = Empty
	st.CurrentTurn = SlotP1
	return st
}
