package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/wricardo/connect4-server/game/engine"
)

// ErrInvalidCreateParams is returned when game creation arguments are
// missing or out of range. The wrapped message names the offending field.
var ErrInvalidCreateParams = errors.New("invalid game creation arguments")

// Player colors are fixed by slot.
const (
	player1Color = "red"
	player2Color = "yellow"
)

// Default names for computer-controlled slots.
const (
	defaultComputer1Name = "Computer 1"
	defaultComputer2Name = "Computer 2"
)

// gameServiceImpl implements the GameService interface. Its mutex
// serializes game mutations: at most one in-flight mutation at a time,
// with concurrent reads allowed while no mutation is running.
type gameServiceImpl struct {
	sessions SessionManager
	mu       sync.RWMutex
}

// NewGameService creates a new game service instance.
func NewGameService(sessions SessionManager) GameService {
	return &gameServiceImpl{
		sessions: sessions,
	}
}

// CreateGame validates the creation arguments, builds the two player
// records, and registers a new session. Slot p1 is human iff at least one
// human player was requested; slot p2 is human iff two were.
func (s *gameServiceImpl) CreateGame(ctx context.Context, params CreateGameParams) (*GameInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if params.NumHumanPlayers < 0 || params.NumHumanPlayers > 2 {
		return nil, fmt.Errorf("%w: num_human_players must be 0, 1, or 2, got %d",
			ErrInvalidCreateParams, params.NumHumanPlayers)
	}
	if params.NumHumanPlayers >= 1 && params.Player1Name == "" {
		return nil, fmt.Errorf("%w: player1_name is required when num_human_players >= 1",
			ErrInvalidCreateParams)
	}
	if params.NumHumanPlayers == 2 && params.Player2Name == "" {
		return nil, fmt.Errorf("%w: player2_name is required when num_human_players = 2",
			ErrInvalidCreateParams)
	}

	p1 := engine.Player{
		ID:    string(engine.SlotP1),
		Name:  params.Player1Name,
		Color: player1Color,
		Kind:  engine.KindComputer,
	}
	if params.NumHumanPlayers >= 1 {
		p1.Kind = engine.KindHuman
	} else if p1.Name == "" {
		p1.Name = defaultComputer1Name
	}

	p2 := engine.Player{
		ID:    string(engine.SlotP2),
		Name:  params.Player2Name,
		Color: player2Color,
		Kind:  engine.KindComputer,
	}
	if params.NumHumanPlayers == 2 {
		p2.Kind = engine.KindHuman
	} else if p2.Name == "" {
		p2.Name = defaultComputer2Name
	}

	sess := s.sessions.Create(p1, p2)
	return snapshot(sess), nil
}

// GetGame retrieves a snapshot of a game.
func (s *gameServiceImpl) GetGame(ctx context.Context, gameID string) (*GameInfo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, err := s.sessions.Get(gameID)
	if err != nil {
		return nil, err
	}

	return snapshot(sess), nil
}

// ListGames returns snapshots of all active games.
func (s *gameServiceImpl) ListGames(ctx context.Context) ([]*GameInfo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sessions := s.sessions.List()
	result := make([]*GameInfo, 0, len(sessions))
	for _, sess := range sessions {
		result = append(result, snapshot(sess))
	}
	return result, nil
}

// DeleteGame removes a game session.
func (s *gameServiceImpl) DeleteGame(ctx context.Context, gameID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.sessions.Delete(gameID)
}

// RestartGame resets a game to its initial state, keeping the players.
func (s *gameServiceImpl) RestartGame(ctx context.Context, gameID string) (*GameInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.sessions.Get(gameID)
	if err != nil {
		return nil, err
	}

	s.sessions.UpdateLastAccessed(gameID)
	sess.Engine.Restart()

	return snapshot(sess), nil
}

// MakeMove applies a move for the acting slot and reports what happened.
func (s *gameServiceImpl) MakeMove(ctx context.Context, gameID string, slot engine.Slot, column int) (*MoveResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.sessions.Get(gameID)
	if err != nil {
		return nil, err
	}

	s.sessions.UpdateLastAccessed(gameID)

	row, err := sess.Engine.ApplyMove(slot, column)
	if err != nil {
		return nil, err
	}

	state := sess.Engine.GetState()
	actor := state.Players[slot]

	events := []GameEvent{{
		Type:      "move",
		Message:   fmt.Sprintf("%s dropped a piece in column %d", actor.Name, column),
		Timestamp: time.Now(),
	}}

	switch state.Status {
	case engine.StatusWon:
		events = append(events, GameEvent{
			Type:      "won",
			Message:   fmt.Sprintf("%s won the game", actor.Name),
			Timestamp: time.Now(),
		})
	case engine.StatusDraw:
		events = append(events, GameEvent{
			Type:      "draw",
			Message:   "the board is full, the game is a draw",
			Timestamp: time.Now(),
		})
	}

	return &MoveResult{
		Game:   snapshot(sess),
		Row:    row,
		Column: column,
		Events: events,
	}, nil
}

// NextMove asks the engine for a computer move in the given game. It does
// not apply the move; the caller submits it through MakeMove for the slot
// that holds the turn.
func (s *gameServiceImpl) NextMove(ctx context.Context, gameID string) (*NextMoveResult, error) {
	// SelectMove advances the engine's random source, so take the write
	// lock even though the board is untouched.
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.sessions.Get(gameID)
	if err != nil {
		return nil, err
	}

	s.sessions.UpdateLastAccessed(gameID)

	column, err := sess.Engine.SelectMove()
	if err != nil {
		return nil, err
	}

	return &NextMoveResult{
		NextMove: column,
		Message:  "Next move calculated.",
	}, nil
}

// snapshot builds an immutable GameInfo from a live session.
func snapshot(sess *Session) *GameInfo {
	state := sess.Engine.GetState()
	players := make(map[engine.Slot]engine.Player, len(state.Players))
	for slot, player := range state.Players {
		players[slot] = player
	}

	return &GameInfo{
		ID:             sess.ID,
		Board:          state.Board.Clone(),
		Players:        players,
		CurrentTurn:    state.CurrentTurn,
		Status:         state.Status,
		Winner:         state.Winner,
		CreatedAt:      sess.CreatedAt,
		LastAccessedAt: sess.LastAccessedAt,
	}
}
