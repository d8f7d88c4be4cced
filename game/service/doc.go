// Package service provides the business logic layer for the Connect 4
// server.
//
// The service package implements:
//   - Multi-game session management
//   - Creation argument validation and player slot assignment
//   - Move processing and computer move calculation
//   - Snapshot construction for transports
//
// Core Interfaces:
//
// GameService is the main service interface providing high-level game
// operations. SessionManager handles session creation, retrieval, and
// lifecycle.
//
// Architecture:
//
// The service layer sits between the transport layer (HTTP/WebSocket/MCP)
// and the game engine. Each session maintains its own engine instance with
// independent state. The service serializes mutations so at most one move
// is in flight at a time while reads stay concurrent.
//
// Usage:
//
//	sessionMgr := session.NewManager()
//	gameService := service.NewGameService(sessionMgr)
//
//	game, err := gameService.CreateGame(ctx, service.CreateGameParams{
//		Player1Name:     "Alice",
//		NumHumanPlayers: 1,
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	result, err := gameService.MakeMove(ctx, game.ID, engine.SlotP1, 3)
package service
