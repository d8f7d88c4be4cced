package service

import (
	"context"
	"time"

	"github.com/wricardo/connect4-server/game/engine"
)

// GameService defines all game-related operations exposed to transports.
type GameService interface {
	// Game Management
	CreateGame(ctx context.Context, params CreateGameParams) (*GameInfo, error)
	GetGame(ctx context.Context, gameID string) (*GameInfo, error)
	ListGames(ctx context.Context) ([]*GameInfo, error)
	DeleteGame(ctx context.Context, gameID string) error
	RestartGame(ctx context.Context, gameID string) (*GameInfo, error)

	// Gameplay
	MakeMove(ctx context.Context, gameID string, slot engine.Slot, column int) (*MoveResult, error)
	NextMove(ctx context.Context, gameID string) (*NextMoveResult, error)
}

// SessionManager defines session storage operations.
type SessionManager interface {
	Create(p1, p2 engine.Player) *Session
	Get(id string) (*Session, error)
	List() []*Session
	Delete(id string) error
	UpdateLastAccessed(id string) error
	Count() int
}

// Session represents an active game session.
type Session struct {
	ID             string
	Engine         *engine.GameEngine
	CreatedAt      time.Time
	LastAccessedAt time.Time
}
