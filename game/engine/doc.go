// Package engine provides the core game logic for the Connect 4 server.
//
// The engine package implements the game mechanics including:
//   - 6x7 board representation with gravity-based piece placement
//   - Move legality checking with a fixed precondition order
//   - Four-in-a-row win detection on the lines through the latest move
//   - Draw detection and strict turn alternation
//   - Uniform-random computer move selection
//
// Core Types:
//
// GameEngine is the state machine for a single game. GameState holds the
// board, the two player records keyed by slot ("p1"/"p2"), the current
// turn, the status, and the winner. Slot, Status, and Kind are closed
// string types.
//
// Usage:
//
//	eng := engine.NewEngine(
//		engine.Player{ID: "p1", Name: "Alice", Color: "red", Kind: engine.KindHuman},
//		engine.Player{ID: "p2", Name: "Computer 2", Color: "yellow", Kind: engine.KindComputer},
//	)
//
//	row, err := eng.ApplyMove(engine.SlotP1, 3)
//	if err != nil {
//		log.Fatal(err)
//	}
//	state := eng.GetState()
//
// Game Rules:
//
// Players alternate dropping pieces into columns; a piece falls to the
// lowest empty cell. Four same-slot cells in a row, column, or diagonal
// win the game; a full board with no winner is a draw. Once a game is
// decided no further moves are accepted until an explicit restart.
//
// The engine is not safe for concurrent use; callers serialize access
// (the service layer does this).
package engine
