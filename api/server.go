package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/wricardo/connect4-server/game/engine"
	"github.com/wricardo/connect4-server/game/service"
	"github.com/wricardo/connect4-server/game/session"
	"github.com/wricardo/connect4-server/transport/websocket"
)

// Server represents the REST API server.
type Server struct {
	service service.GameService
	hub     *websocket.Hub
	router  *mux.Router
}

// NewServer creates a new API server. The hub is optional; when present,
// snapshots are broadcast to spectators after every state change.
func NewServer(gameService service.GameService, hub *websocket.Hub) *Server {
	s := &Server{
		service: gameService,
		hub:     hub,
		router:  mux.NewRouter(),
	}

	s.setupRoutes()
	return s
}

// setupRoutes configures all API routes.
func (s *Server) setupRoutes() {
	api := s.router.PathPrefix("/api").Subrouter()

	// Game management
	api.HandleFunc("/games", s.handleCreateGame).Methods("POST")
	api.HandleFunc("/games", s.handleListGames).Methods("GET")
	api.HandleFunc("/games/{id}", s.handleGetGame).Methods("GET")
	api.HandleFunc("/games/{id}", s.handleDeleteGame).Methods("DELETE")
	api.HandleFunc("/games/{id}/restart", s.handleRestartGame).Methods("POST")

	// Gameplay
	api.HandleFunc("/games/{id}/moves", s.handleMakeMove).Methods("POST")
	api.HandleFunc("/games/{id}/next-move", s.handleNextMove).Methods("POST")

	// Health
	api.HandleFunc("/health", s.handleHealth).Methods("GET")

	// WebSocket spectator feed
	s.router.HandleFunc("/ws", s.handleWebSocket)
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Response helpers

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

// statusForError maps service and engine errors to HTTP status codes.
// Unknown session ids are 404; everything else in the error taxonomy is a
// caller mistake and maps to 400.
func statusForError(err error) int {
	switch {
	case errors.Is(err, session.ErrSessionNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrInvalidCreateParams),
		errors.Is(err, engine.ErrGameAlreadyDecided),
		errors.Is(err, engine.ErrNotYourTurn),
		errors.Is(err, engine.ErrColumnOutOfBounds),
		errors.Is(err, engine.ErrColumnFull),
		errors.Is(err, engine.ErrInvalidMove),
		errors.Is(err, engine.ErrNoLegalMoves):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// Game Management Handlers

func (s *Server) handleCreateGame(w http.ResponseWriter, r *http.Request) {
	var params service.CreateGameParams
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	game, err := s.service.CreateGame(r.Context(), params)
	if err != nil {
		respondError(w, statusForError(err), err.Error())
		return
	}

	log.Printf("[CREATE] game=%s p1=%q p2=%q humans=%d",
		game.ID, game.Players[engine.SlotP1].Name, game.Players[engine.SlotP2].Name, params.NumHumanPlayers)

	respondJSON(w, http.StatusCreated, game)
}

func (s *Server) handleListGames(w http.ResponseWriter, r *http.Request) {
	games, err := s.service.ListGames(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"count": len(games),
		"games": games,
	})
}

func (s *Server) handleGetGame(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	gameID := vars["id"]

	game, err := s.service.GetGame(r.Context(), gameID)
	if err != nil {
		respondError(w, statusForError(err), err.Error())
		return
	}

	respondJSON(w, http.StatusOK, game)
}

func (s *Server) handleDeleteGame(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	gameID := vars["id"]

	if err := s.service.DeleteGame(r.Context(), gameID); err != nil {
		respondError(w, statusForError(err), err.Error())
		return
	}

	log.Printf("[QUIT] game=%s", gameID)

	respondJSON(w, http.StatusOK, map[string]string{
		"message": fmt.Sprintf("Game %s has been quit", gameID),
		"game_id": gameID,
	})
}

func (s *Server) handleRestartGame(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	gameID := vars["id"]

	game, err := s.service.RestartGame(r.Context(), gameID)
	if err != nil {
		respondError(w, statusForError(err), err.Error())
		return
	}

	if s.hub != nil {
		s.hub.BroadcastGame(gameID, game, "restart")
	}

	log.Printf("[RESTART] game=%s", gameID)

	respondJSON(w, http.StatusOK, game)
}

// Gameplay Handlers

func (s *Server) handleMakeMove(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	gameID := vars["id"]

	var req struct {
		Player engine.Slot `json:"player"`
		Column int         `json:"column"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if !req.Player.Valid() {
		respondError(w, http.StatusBadRequest, "player must be \"p1\" or \"p2\"")
		return
	}

	result, err := s.service.MakeMove(r.Context(), gameID, req.Player, req.Column)
	if err != nil {
		log.Printf("[MOVE] game=%s player=%s col=%d status=REJECTED reason=%q",
			gameID, req.Player, req.Column, err.Error())
		respondError(w, statusForError(err), err.Error())
		return
	}

	if s.hub != nil {
		s.hub.BroadcastGame(gameID, result.Game, "state_update")
	}

	log.Printf("[MOVE] game=%s player=%s col=%d row=%d status=%s",
		gameID, req.Player, result.Column, result.Row, result.Game.Status)

	respondJSON(w, http.StatusOK, result)
}

func (s *Server) handleNextMove(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	gameID := vars["id"]

	result, err := s.service.NextMove(r.Context(), gameID)
	if err != nil {
		respondError(w, statusForError(err), err.Error())
		return
	}

	log.Printf("[NEXT] game=%s col=%d", gameID, result.NextMove)

	respondJSON(w, http.StatusOK, result)
}

// WebSocket Handler

func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	gameID := r.URL.Query().Get("game")
	if gameID == "" {
		http.Error(w, "game parameter required", http.StatusBadRequest)
		return
	}

	// Verify the game exists before upgrading
	if _, err := s.service.GetGame(r.Context(), gameID); err != nil {
		http.Error(w, "Invalid game", http.StatusNotFound)
		return
	}

	s.hub.ServeWS(w, r, gameID)
}

// Health check

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{
		"status": "healthy",
	})
}
