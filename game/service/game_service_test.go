package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/wricardo/connect4-server/game/engine"
)

var errNotFound = errors.New("game not found")

// fakeSessionManager is an in-memory SessionManager for tests. The service
// layer only depends on the interface, so the tests do not need the real
// registry.
type fakeSessionManager struct {
	sessions map[string]*Session
	nextID   int
}

func newFakeSessionManager() *fakeSessionManager {
	return &fakeSessionManager{sessions: make(map[string]*Session)}
}

func (f *fakeSessionManager) Create(p1, p2 engine.Player) *Session {
	f.nextID++
	now := time.Now()
	sess := &Session{
		ID:             string(rune('a' + f.nextID - 1)),
		Engine:         engine.NewEngine(p1, p2),
		CreatedAt:      now,
		LastAccessedAt: now,
	}
	f.sessions[sess.ID] = sess
	return sess
}

func (f *fakeSessionManager) Get(id string) (*Session, error) {
	sess, ok := f.sessions[id]
	if !ok {
		return nil, errNotFound
	}
	return sess, nil
}

func (f *fakeSessionManager) List() []*Session {
	result := make([]*Session, 0, len(f.sessions))
	for _, sess := range f.sessions {
		result = append(result, sess)
	}
	return result
}

func (f *fakeSessionManager) Delete(id string) error {
	if _, ok := f.sessions[id]; !ok {
		return errNotFound
	}
	delete(f.sessions, id)
	return nil
}

func (f *fakeSessionManager) UpdateLastAccessed(id string) error {
	sess, ok := f.sessions[id]
	if !ok {
		return errNotFound
	}
	sess.LastAccessedAt = time.Now()
	return nil
}

func (f *fakeSessionManager) Count() int {
	return len(f.sessions)
}

func newTestService() (GameService, *fakeSessionManager) {
	sessions := newFakeSessionManager()
	return NewGameService(sessions), sessions
}

func TestCreateGameValidation(t *testing.T) {
	tests := []struct {
		name    string
		params  CreateGameParams
		wantErr bool
	}{
		{
			name:    "zero humans needs no names",
			params:  CreateGameParams{NumHumanPlayers: 0},
			wantErr: false,
		},
		{
			name:    "one human with name",
			params:  CreateGameParams{Player1Name: "Alice", NumHumanPlayers: 1},
			wantErr: false,
		},
		{
			name:    "two humans with names",
			params:  CreateGameParams{Player1Name: "Alice", Player2Name: "Bob", NumHumanPlayers: 2},
			wantErr: false,
		},
		{
			name:    "one human missing name",
			params:  CreateGameParams{NumHumanPlayers: 1},
			wantErr: true,
		},
		{
			name:    "two humans missing second name",
			params:  CreateGameParams{Player1Name: "Alice", NumHumanPlayers: 2},
			wantErr: true,
		},
		{
			name:    "negative humans",
			params:  CreateGameParams{NumHumanPlayers: -1},
			wantErr: true,
		},
		{
			name:    "too many humans",
			params:  CreateGameParams{Player1Name: "a", Player2Name: "b", NumHumanPlayers: 3},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newTestService()
			game, err := svc.CreateGame(context.Background(), tt.params)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidCreateParams) {
					t.Fatalf("expected ErrInvalidCreateParams, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if game.ID == "" {
				t.Error("expected a game id")
			}
			if game.Status != engine.StatusInProgress {
				t.Errorf("expected in-progress game, got %q", game.Status)
			}
		})
	}
}

func TestCreateGamePlayerKinds(t *testing.T) {
	tests := []struct {
		name       string
		params     CreateGameParams
		wantP1Kind engine.Kind
		wantP2Kind engine.Kind
		wantP1Name string
		wantP2Name string
	}{
		{
			name:       "zero humans defaults both names",
			params:     CreateGameParams{NumHumanPlayers: 0},
			wantP1Kind: engine.KindComputer,
			wantP2Kind: engine.KindComputer,
			wantP1Name: "Computer 1",
			wantP2Name: "Computer 2",
		},
		{
			name:       "one human controls p1",
			params:     CreateGameParams{Player1Name: "Alice", NumHumanPlayers: 1},
			wantP1Kind: engine.KindHuman,
			wantP2Kind: engine.KindComputer,
			wantP1Name: "Alice",
			wantP2Name: "Computer 2",
		},
		{
			name:       "two humans control both slots",
			params:     CreateGameParams{Player1Name: "Alice", Player2Name: "Bob", NumHumanPlayers: 2},
			wantP1Kind: engine.KindHuman,
			wantP2Kind: engine.KindHuman,
			wantP1Name: "Alice",
			wantP2Name: "Bob",
		},
		{
			name:       "custom names survive for computer slots",
			params:     CreateGameParams{Player1Name: "HAL", Player2Name: "GLaDOS", NumHumanPlayers: 0},
			wantP1Kind: engine.KindComputer,
			wantP2Kind: engine.KindComputer,
			wantP1Name: "HAL",
			wantP2Name: "GLaDOS",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newTestService()
			game, err := svc.CreateGame(context.Background(), tt.params)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			p1 := game.Players[engine.SlotP1]
			p2 := game.Players[engine.SlotP2]

			if p1.Kind != tt.wantP1Kind || p1.Name != tt.wantP1Name {
				t.Errorf("p1 = %q/%q, want %q/%q", p1.Name, p1.Kind, tt.wantP1Name, tt.wantP1Kind)
			}
			if p2.Kind != tt.wantP2Kind || p2.Name != tt.wantP2Name {
				t.Errorf("p2 = %q/%q, want %q/%q", p2.Name, p2.Kind, tt.wantP2Name, tt.wantP2Kind)
			}
			if p1.Color != "red" || p2.Color != "yellow" {
				t.Errorf("unexpected colors: p1=%q p2=%q", p1.Color, p2.Color)
			}
		})
	}
}

func TestGetGame(t *testing.T) {
	svc, _ := newTestService()
	created, err := svc.CreateGame(context.Background(), CreateGameParams{NumHumanPlayers: 0})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := svc.GetGame(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ID != created.ID {
		t.Errorf("expected game %q, got %q", created.ID, got.ID)
	}

	if _, err := svc.GetGame(context.Background(), "missing"); !errors.Is(err, errNotFound) {
		t.Errorf("expected not-found error, got %v", err)
	}
}

func TestListGames(t *testing.T) {
	svc, _ := newTestService()

	games, err := svc.ListGames(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(games) != 0 {
		t.Errorf("expected no games, got %d", len(games))
	}

	for i := 0; i < 3; i++ {
		if _, err := svc.CreateGame(context.Background(), CreateGameParams{NumHumanPlayers: 0}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	games, err = svc.ListGames(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(games) != 3 {
		t.Errorf("expected 3 games, got %d", len(games))
	}
}

func TestDeleteGame(t *testing.T) {
	svc, sessions := newTestService()
	created, err := svc.CreateGame(context.Background(), CreateGameParams{NumHumanPlayers: 0})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := svc.DeleteGame(context.Background(), created.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sessions.Count() != 0 {
		t.Errorf("expected session removed, got %d sessions", sessions.Count())
	}

	if err := svc.DeleteGame(context.Background(), created.ID); !errors.Is(err, errNotFound) {
		t.Errorf("expected not-found error, got %v", err)
	}
}

func TestMakeMove(t *testing.T) {
	svc, _ := newTestService()
	created, err := svc.CreateGame(context.Background(), CreateGameParams{Player1Name: "Alice", NumHumanPlayers: 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	result, err := svc.MakeMove(context.Background(), created.ID, engine.SlotP1, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Row != engine.Rows-1 || result.Column != 3 {
		t.Errorf("expected piece at (%d,3), got (%d,%d)", engine.Rows-1, result.Row, result.Column)
	}
	if result.Game.Board[engine.Rows-1][3] != engine.SlotP1 {
		t.Error("snapshot board missing the placed piece")
	}
	if result.Game.CurrentTurn != engine.SlotP2 {
		t.Errorf("expected turn to pass to p2, got %q", result.Game.CurrentTurn)
	}
	if len(result.Events) != 1 || result.Events[0].Type != "move" {
		t.Errorf("expected a single move event, got %+v", result.Events)
	}

	// Engine errors pass through unchanged.
	if _, err := svc.MakeMove(context.Background(), created.ID, engine.SlotP1, 0); !errors.Is(err, engine.ErrNotYourTurn) {
		t.Errorf("expected ErrNotYourTurn, got %v", err)
	}
	if _, err := svc.MakeMove(context.Background(), "missing", engine.SlotP1, 0); !errors.Is(err, errNotFound) {
		t.Errorf("expected not-found error, got %v", err)
	}
}

func TestMakeMoveWinEvent(t *testing.T) {
	svc, _ := newTestService()
	created, err := svc.CreateGame(context.Background(), CreateGameParams{NumHumanPlayers: 0})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	moves := []struct {
		slot   engine.Slot
		column int
	}{
		{engine.SlotP1, 0}, {engine.SlotP2, 6},
		{engine.SlotP1, 1}, {engine.SlotP2, 6},
		{engine.SlotP1, 2}, {engine.SlotP2, 6},
	}
	for _, m := range moves {
		if _, err := svc.MakeMove(context.Background(), created.ID, m.slot, m.column); err != nil {
			t.Fatalf("setup move failed: %v", err)
		}
	}

	result, err := svc.MakeMove(context.Background(), created.ID, engine.SlotP1, 3)
	if err != nil {
		t.Fatalf("winning move failed: %v", err)
	}
	if result.Game.Status != engine.StatusWon {
		t.Errorf("expected status %q, got %q", engine.StatusWon, result.Game.Status)
	}
	if result.Game.Winner != engine.SlotP1 {
		t.Errorf("expected winner p1, got %q", result.Game.Winner)
	}
	if len(result.Events) != 2 || result.Events[1].Type != "won" {
		t.Errorf("expected move + won events, got %+v", result.Events)
	}
}

func TestNextMove(t *testing.T) {
	svc, sessions := newTestService()
	created, err := svc.CreateGame(context.Background(), CreateGameParams{NumHumanPlayers: 0})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	result, err := svc.NextMove(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.NextMove < 0 || result.NextMove >= engine.Columns {
		t.Errorf("expected a legal column, got %d", result.NextMove)
	}

	// NextMove is advisory: the board must not change.
	game, err := svc.GetGame(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for r := 0; r < engine.Rows; r++ {
		for c := 0; c < engine.Columns; c++ {
			if game.Board[r][c] != engine.Empty {
				t.Fatalf("NextMove placed a piece at (%d,%d)", r, c)
			}
		}
	}

	// Decided games do not get a suggestion.
	sess := sessions.sessions[created.ID]
	sess.Engine.GetState().Status = engine.StatusWon
	sess.Engine.GetState().Winner = engine.SlotP2
	if _, err := svc.NextMove(context.Background(), created.ID); !errors.Is(err, engine.ErrGameAlreadyDecided) {
		t.Errorf("expected ErrGameAlreadyDecided, got %v", err)
	}

	if _, err := svc.NextMove(context.Background(), "missing"); !errors.Is(err, errNotFound) {
		t.Errorf("expected not-found error, got %v", err)
	}
}

func TestRestartGame(t *testing.T) {
	svc, _ := newTestService()
	created, err := svc.CreateGame(context.Background(), CreateGameParams{Player1Name: "Alice", NumHumanPlayers: 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := svc.MakeMove(context.Background(), created.ID, engine.SlotP1, 3); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	game, err := svc.RestartGame(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if game.Status != engine.StatusInProgress {
		t.Errorf("expected in-progress after restart, got %q", game.Status)
	}
	if game.CurrentTurn != engine.SlotP1 {
		t.Errorf("expected p1's turn after restart, got %q", game.CurrentTurn)
	}
	for r := 0; r < engine.Rows; r++ {
		for c := 0; c < engine.Columns; c++ {
			if game.Board[r][c] != engine.Empty {
				t.Fatalf("expected empty board after restart, piece at (%d,%d)", r, c)
			}
		}
	}
	if game.Players[engine.SlotP1].Name != "Alice" {
		t.Errorf("players not preserved across restart: %+v", game.Players)
	}

	if _, err := svc.RestartGame(context.Background(), "missing"); !errors.Is(err, errNotFound) {
		t.Errorf("expected not-found error, got %v", err)
	}
}

func TestSnapshotIsDetached(t *testing.T) {
	svc, _ := newTestService()
	created, err := svc.CreateGame(context.Background(), CreateGameParams{NumHumanPlayers: 0})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	before, err := svc.GetGame(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := svc.MakeMove(context.Background(), created.ID, engine.SlotP1, 0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// The earlier snapshot must not reflect the later move.
	if before.Board[engine.Rows-1][0] != engine.Empty {
		t.Error("snapshot board mutated by a later move")
	}
	if before.CurrentTurn != engine.SlotP1 {
		t.Errorf("snapshot turn mutated: %q", before.CurrentTurn)
	}
}
