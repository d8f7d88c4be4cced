package mcp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/wricardo/connect4-server/game/engine"
	"github.com/wricardo/connect4-server/game/service"
)

// Client is a thin MCP client that proxies to the REST API.
type Client struct {
	baseURL    string
	httpClient *http.Client
	mcpServer  *server.MCPServer
}

// NewClient creates a new MCP client that calls the REST API.
func NewClient(baseURL string) *Client {
	c := &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}

	c.initMCPServer()
	return c
}

// initMCPServer initializes the MCP server with all tools.
func (c *Client) initMCPServer() {
	c.mcpServer = server.NewMCPServer(
		"Connect 4 Game Server",
		"1.0.0",
		server.WithToolCapabilities(true),
		server.WithInstructions(`Connect 4 Game Server - MCP Interface

This is a thin client that proxies all requests to the REST API server.

GAME OBJECTIVE:
Drop pieces into a 6x7 grid. The first player to connect four pieces in a
row (horizontally, vertically, or diagonally) wins. Pieces fall to the
lowest empty cell of the chosen column.

AVAILABLE TOOLS:
- create_game: Create a new game (0, 1, or 2 human players)
- list_games: List all active games
- get_game: Get the current state of a game, including a board rendering
- make_move: Drop a piece in a column (0-6) for a player slot
- next_move: Ask the server which column the computer would play
- restart_game: Reset the board while keeping the players
- quit_game: Discard a game
- game_instructions: Get comprehensive game rules

Slot "p1" always moves first. Columns are numbered 0-6 left to right.`),
	)

	c.registerTools()
}

// registerTools registers all MCP tools.
func (c *Client) registerTools() {
	// Game management
	c.mcpServer.AddTool(mcp.Tool{
		Name:        "create_game",
		Description: "Create a new Connect 4 game with zero, one, or two human players",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"player1_name": map[string]interface{}{
					"type":        "string",
					"description": "Name for player 1 (required when num_human_players >= 1)",
				},
				"player2_name": map[string]interface{}{
					"type":        "string",
					"description": "Name for player 2 (required when num_human_players = 2)",
				},
				"num_human_players": map[string]interface{}{
					"type":        "integer",
					"enum":        []int{0, 1, 2},
					"description": "How many human players (0, 1, or 2); remaining slots are computer-controlled",
				},
			},
			Required: []string{"num_human_players"},
		},
	}, c.handleCreateGame)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "list_games",
		Description: "List all active games",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, c.handleListGames)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "get_game",
		Description: "Get the current state of a specific game",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"game_id": map[string]interface{}{
					"type":        "string",
					"description": "Game ID to retrieve",
				},
			},
			Required: []string{"game_id"},
		},
	}, c.handleGetGame)

	// Gameplay
	c.mcpServer.AddTool(mcp.Tool{
		Name:        "make_move",
		Description: "Drop a piece in a column for a player slot",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"game_id": map[string]interface{}{
					"type":        "string",
					"description": "Game ID",
				},
				"player": map[string]interface{}{
					"type":        "string",
					"enum":        []string{"p1", "p2"},
					"description": "Acting player slot; must hold the current turn",
				},
				"column": map[string]interface{}{
					"type":        "integer",
					"description": "Column to drop into (0-6)",
				},
				"intent": map[string]interface{}{
					"type":        "string",
					"description": "Brief explanation of the intent behind this move (serves as a rubber duck to help explain your reasoning)",
				},
			},
			Required: []string{"game_id", "player", "column"},
		},
	}, c.handleMakeMove)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "next_move",
		Description: "Ask the server which column the computer would play next",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"game_id": map[string]interface{}{
					"type":        "string",
					"description": "Game ID",
				},
			},
			Required: []string{"game_id"},
		},
	}, c.handleNextMove)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "restart_game",
		Description: "Reset the board while keeping the players",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"game_id": map[string]interface{}{
					"type":        "string",
					"description": "Game ID",
				},
			},
			Required: []string{"game_id"},
		},
	}, c.handleRestartGame)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "quit_game",
		Description: "Discard a game; its id becomes invalid",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"game_id": map[string]interface{}{
					"type":        "string",
					"description": "Game ID",
				},
			},
			Required: []string{"game_id"},
		},
	}, c.handleQuitGame)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "game_instructions",
		Description: "Get comprehensive game instructions and rules",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, c.handleGameInstructions)
}

// GetMCPServer returns the underlying MCP server for serving.
func (c *Client) GetMCPServer() *server.MCPServer {
	return c.mcpServer
}

// Helper methods for API calls

func (c *Client) apiCall(method, path string, body interface{}, result interface{}) error {
	url := c.baseURL + path

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reqBody = bytes.NewBuffer(data)
	}

	req, err := http.NewRequest(method, url, reqBody)
	if err != nil {
		return err
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var errResp map[string]string
		json.NewDecoder(resp.Body).Decode(&errResp)
		if msg, ok := errResp["error"]; ok {
			return fmt.Errorf("%s", msg)
		}
		return fmt.Errorf("API error: %d", resp.StatusCode)
	}

	if result != nil {
		return json.NewDecoder(resp.Body).Decode(result)
	}

	return nil
}

// Tool handlers

func (c *Client) handleCreateGame(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	player1Name, _ := args["player1_name"].(string)
	player2Name, _ := args["player2_name"].(string)
	numHumans, _ := args["num_human_players"].(float64)

	body := service.CreateGameParams{
		Player1Name:     player1Name,
		Player2Name:     player2Name,
		NumHumanPlayers: int(numHumans),
	}

	var game service.GameInfo
	if err := c.apiCall("POST", "/api/games", body, &game); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := fmt.Sprintf("Created game: %s\n%s vs %s\n\n%s",
		game.ID,
		game.Players[engine.SlotP1].Name,
		game.Players[engine.SlotP2].Name,
		formatGame(&game))
	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleListGames(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var response struct {
		Count int                `json:"count"`
		Games []service.GameInfo `json:"games"`
	}

	if err := c.apiCall("GET", "/api/games", nil, &response); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := fmt.Sprintf("Active Games (%d):\n\n", response.Count)
	for _, g := range response.Games {
		result += fmt.Sprintf("- %s: %s vs %s, turn=%s, status=%s\n",
			g.ID,
			g.Players[engine.SlotP1].Name,
			g.Players[engine.SlotP2].Name,
			g.CurrentTurn,
			g.Status)
	}

	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleGetGame(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	gameID, _ := args["game_id"].(string)

	var game service.GameInfo
	if err := c.apiCall("GET", fmt.Sprintf("/api/games/%s", gameID), nil, &game); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(formatGame(&game)), nil
}

func (c *Client) handleMakeMove(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	gameID, _ := args["game_id"].(string)
	player, _ := args["player"].(string)
	column, _ := args["column"].(float64)
	intent, _ := args["intent"].(string)

	// Intent parameter serves as rubber duck debugging - we don't need to process it further
	_ = intent

	body := map[string]interface{}{
		"player": player,
		"column": int(column),
	}

	var result service.MoveResult
	if err := c.apiCall("POST", fmt.Sprintf("/api/games/%s/moves", gameID), body, &result); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	response := fmt.Sprintf("Piece landed at row %d, column %d\n\n%s",
		result.Row, result.Column, formatGame(result.Game))
	for _, ev := range result.Events {
		if ev.Type != "move" {
			response += fmt.Sprintf("\nEvent: %s", ev.Message)
		}
	}

	return mcp.NewToolResultText(response), nil
}

func (c *Client) handleNextMove(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	gameID, _ := args["game_id"].(string)

	var result service.NextMoveResult
	if err := c.apiCall("POST", fmt.Sprintf("/api/games/%s/next-move", gameID), nil, &result); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(fmt.Sprintf("Computer would play column %d", result.NextMove)), nil
}

func (c *Client) handleRestartGame(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	gameID, _ := args["game_id"].(string)

	var game service.GameInfo
	if err := c.apiCall("POST", fmt.Sprintf("/api/games/%s/restart", gameID), nil, &game); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText("Game restarted\n\n" + formatGame(&game)), nil
}

func (c *Client) handleQuitGame(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	gameID, _ := args["game_id"].(string)

	var response map[string]string
	if err := c.apiCall("DELETE", fmt.Sprintf("/api/games/%s", gameID), nil, &response); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(fmt.Sprintf("Game %s has been quit", gameID)), nil
}

func (c *Client) handleGameInstructions(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	instructions := `CONNECT 4 - GAME RULES

THE BOARD:
6 rows by 7 columns. Row 0 is the top, row 5 is the bottom. Columns are
numbered 0-6 left to right.

MAKING MOVES:
Players take turns dropping a piece into a column. The piece falls to the
lowest empty cell of that column. Slot "p1" always moves first. A move is
rejected when the game is already decided, when it is not your turn, when
the column is outside 0-6, or when the column is full.

WINNING:
The first player to line up four of their own pieces horizontally,
vertically, or diagonally wins. If all 42 cells fill with no winner the
game is a draw.

COMPUTER PLAYERS:
Computer slots pick uniformly at random among the columns that can still
accept a piece. Use next_move to get the column, then submit it with
make_move for the slot holding the turn.

OTHER OPERATIONS:
restart_game clears the board and gives the turn back to p1, keeping both
players. quit_game discards the game entirely.`

	return mcp.NewToolResultText(instructions), nil
}

// Formatting helpers

// formatGame renders a game snapshot as text, with the board drawn as a
// grid of x (p1), o (p2), and - (empty) cells.
func formatGame(game *service.GameInfo) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Game %s [%s]\n", game.ID, game.Status)
	fmt.Fprintf(&b, "%s (%s, %s) vs %s (%s, %s)\n",
		game.Players[engine.SlotP1].Name, game.Players[engine.SlotP1].Color, game.Players[engine.SlotP1].Kind,
		game.Players[engine.SlotP2].Name, game.Players[engine.SlotP2].Color, game.Players[engine.SlotP2].Kind)

	b.WriteString("\n  0 1 2 3 4 5 6\n")
	b.WriteString(formatBoard(game.Board))

	switch game.Status {
	case engine.StatusWon:
		fmt.Fprintf(&b, "\nWinner: %s", game.Players[game.Winner].Name)
	case engine.StatusDraw:
		b.WriteString("\nThe game is a draw")
	default:
		fmt.Fprintf(&b, "\nCurrent turn: %s (%s)",
			game.CurrentTurn, game.Players[game.CurrentTurn].Name)
	}

	return b.String()
}

// formatBoard renders just the grid portion of a board.
func formatBoard(board engine.Board) string {
	var b strings.Builder
	for _, row := range board {
		b.WriteString(" ")
		for _, cell := range row {
			switch cell {
			case engine.SlotP1:
				b.WriteString(" x")
			case engine.SlotP2:
				b.WriteString(" o")
			default:
				b.WriteString(" -")
			}
		}
		b.WriteString("\n")
	}
	return b.String()
}
