// Package websocket provides a spectator feed for the Connect 4 server.
//
// The websocket package implements:
//   - Game-aware WebSocket connections
//   - Automatic snapshot broadcasting after moves and restarts
//   - Connection lifecycle management
//
// Architecture:
//
// The package uses a hub-and-spoke model where a central Hub manages all
// WebSocket connections. Each client connection is handled by a dedicated
// goroutine pair that manages reading, writing, and cleanup. All state
// changes flow through the hub's event loop, so the connection maps are
// only touched from one goroutine.
//
// Clients specify the game they want to watch via query parameter
// (?game=<id>) when establishing the connection; snapshots are broadcast
// only to clients watching that game. The feed is read-only: moves are
// submitted over the REST API, never over the socket.
//
// Usage:
//
//	hub := websocket.NewHub()
//	go hub.Run()
//
//	// after a successful move:
//	hub.BroadcastGame(gameID, snapshot, "state_update")
package websocket
