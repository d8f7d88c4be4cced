// Package api provides HTTP REST API handlers for the Connect 4 server.
//
// The api package implements:
//   - RESTful endpoints for game management and gameplay
//   - JSON request decoding and response encoding
//   - Error-to-status mapping for the game error taxonomy
//   - WebSocket upgrade handling for the spectator feed
//
// Endpoints:
//
// Game Management:
//   - POST   /api/games              - Create a new game
//   - GET    /api/games              - List all games
//   - GET    /api/games/{id}         - Get a game snapshot
//   - POST   /api/games/{id}/restart - Restart a game, keeping players
//   - DELETE /api/games/{id}         - Quit (discard) a game
//
// Gameplay:
//   - POST /api/games/{id}/moves     - Drop a piece: {"player":"p1","column":3}
//   - POST /api/games/{id}/next-move - Compute the computer's next column
//
// Other:
//   - GET /api/health                - Liveness check
//   - GET /ws?game=<id>              - WebSocket spectator feed
//
// Error Handling:
//
// Errors are returned as JSON with appropriate HTTP status codes:
//
//	{
//	  "error": "column is full"
//	}
//
// Unknown game ids yield 404; rejected moves and invalid creation
// arguments yield 400.
package api
