package service

import (
	"time"

	"github.com/wricardo/connect4-server/game/engine"
)

// CreateGameParams carries the creation arguments for a new game.
// NumHumanPlayers selects how the two slots are controlled: 0 means both
// computers, 1 means p1 human, 2 means both human.
type CreateGameParams struct {
	Player1Name     string `json:"player1_name,omitempty"`
	Player2Name     string `json:"player2_name,omitempty"`
	NumHumanPlayers int    `json:"num_human_players"`
}

// GameInfo is a full snapshot of one game session. The board is a deep
// copy, so a snapshot is not affected by later moves.
type GameInfo struct {
	ID             string                        `json:"id"`
	Board          engine.Board                  `json:"board"`
	Players        map[engine.Slot]engine.Player `json:"players"`
	CurrentTurn    engine.Slot                   `json:"current_turn"`
	Status         engine.Status                 `json:"status"`
	Winner         engine.Slot                   `json:"winner,omitempty"`
	CreatedAt      time.Time                     `json:"created_at"`
	LastAccessedAt time.Time                     `json:"last_accessed_at"`
}

// MoveResult contains the outcome of a successful move.
type MoveResult struct {
	Game   *GameInfo   `json:"game"`
	Row    int         `json:"row"`
	Column int         `json:"column"`
	Events []GameEvent `json:"events,omitempty"`
}

// NextMoveResult contains the column chosen for the computer player.
type NextMoveResult struct {
	NextMove int    `json:"next_move"`
	Message  string `json:"message"`
}

// GameEvent represents a notable occurrence during gameplay.
type GameEvent struct {
	Type      string    `json:"type"` // "move", "won", "draw", "restart"
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}
