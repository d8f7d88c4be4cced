// Package mcp exposes the Connect 4 server as a set of MCP tools.
//
// The package implements a thin client that proxies every tool call to the
// REST API, so the MCP surface and the HTTP surface always agree. Tools
// cover the full game lifecycle: create_game, list_games, get_game,
// make_move, next_move, restart_game, quit_game, and game_instructions.
//
// Tool results are rendered as text with an ASCII board (x for p1, o for
// p2, - for empty cells) so an MCP client can play without parsing JSON.
//
// Usage:
//
//	client := mcp.NewClient("http://localhost:8080")
//	server.ServeStdio(client.GetMCPServer())
package mcp
