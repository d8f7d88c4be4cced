// Command play is an interactive terminal client for the Connect 4 server.
//
// It drives the REST API: it creates a game, renders the board after every
// move, submits human moves typed at the prompt, and plays computer turns
// by asking the server for its next move. Besides dropping pieces, the
// prompt accepts r (restart), q (quit), h (help), ls (list games), and
// gs <id> (show another game's board).
package main

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/wricardo/connect4-server/game/engine"
	"github.com/wricardo/connect4-server/game/service"
)

func main() {
	cmd := &cli.Command{
		Name:  "play",
		Usage: "Play Connect 4 against the game server from your terminal",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "server",
				Value: "http://localhost:8080",
				Usage: "Base URL of the game server",
			},
			&cli.IntFlag{
				Name:  "humans",
				Value: 1,
				Usage: "Number of human players (0, 1, or 2)",
			},
			&cli.StringFlag{
				Name:  "p1",
				Usage: "Player 1 name (prompted when omitted and humans >= 1)",
			},
			&cli.StringFlag{
				Name:  "p2",
				Usage: "Player 2 name (prompted when omitted and humans = 2)",
			},
		},
		Action: run,
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func run(ctx context.Context, cmd *cli.Command) error {
	client := &gameClient{
		baseURL:    cmd.String("server"),
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
	stdin := bufio.NewScanner(os.Stdin)

	printBanner()

	humans := int(cmd.Int("humans"))
	if humans < 0 || humans > 2 {
		return fmt.Errorf("humans must be 0, 1, or 2, got %d", humans)
	}

	p1Name := cmd.String("p1")
	if humans >= 1 && p1Name == "" {
		p1Name = promptLine(stdin, "Enter Player 1 name: ")
	}
	p2Name := cmd.String("p2")
	if humans == 2 && p2Name == "" {
		p2Name = promptLine(stdin, "Enter Player 2 name: ")
	}

	for {
		game, err := client.createGame(p1Name, p2Name, humans)
		if err != nil {
			return fmt.Errorf("failed to create game: %w", err)
		}

		fmt.Printf("Game created! Game ID: %s\n", game.ID)
		printGame(game)

		done, err := playGame(client, stdin, game.ID)
		if err != nil {
			return err
		}
		if done {
			return nil
		}
		// Fresh game requested; loop around.
	}
}

// playGame runs the move loop for one game. It returns true when the user
// quit for good, false when a fresh game should start.
func playGame(client *gameClient, stdin *bufio.Scanner, gameID string) (bool, error) {
	for {
		game, err := client.getGame(gameID)
		if err != nil {
			return false, fmt.Errorf("failed to fetch game: %w", err)
		}

		switch game.Status {
		case engine.StatusWon:
			fmt.Printf("Game over! %s won!\n", game.Players[game.Winner].Name)
			promptLine(stdin, "Press Enter to start a new game...")
			return false, nil
		case engine.StatusDraw:
			fmt.Println("Game over! It's a draw!")
			promptLine(stdin, "Press Enter to start a new game...")
			return false, nil
		}

		if game.Players[game.CurrentTurn].Kind == engine.KindComputer {
			column, err := client.nextMove(gameID)
			if err != nil {
				return false, fmt.Errorf("failed to get computer move: %w", err)
			}
			updated, err := client.makeMove(gameID, game.CurrentTurn, column)
			if err != nil {
				return false, fmt.Errorf("computer move rejected: %w", err)
			}
			printGame(updated)
			continue
		}

		input := promptLine(stdin, "Enter column (0-6) or command ('h' for help): ")
		switch {
		case input == "q":
			if err := client.quitGame(gameID); err != nil {
				fmt.Println("Error quitting game:", err)
				continue
			}
			fmt.Println("Game has been quit.")
			return true, nil

		case input == "r":
			restarted, err := client.restartGame(gameID)
			if err != nil {
				fmt.Println("Error restarting game:", err)
				continue
			}
			fmt.Println("Game restarted.")
			printGame(restarted)

		case input == "h":
			printHelp()

		case input == "ls":
			games, err := client.listGames()
			if err != nil {
				fmt.Println("Error listing games:", err)
				continue
			}
			printGameList(games)

		case strings.HasPrefix(input, "gs "):
			other, err := client.getGame(strings.TrimSpace(strings.TrimPrefix(input, "gs ")))
			if err != nil {
				fmt.Println("Error fetching game state:", err)
				continue
			}
			fmt.Println("Game Board of", other.ID)
			printBoard(other.Board)

		default:
			column, err := strconv.Atoi(input)
			if err != nil {
				fmt.Println("Invalid input. Please enter a column number (0-6), 'r' to restart, or 'q' to quit.")
				continue
			}
			updated, err := client.makeMove(gameID, game.CurrentTurn, column)
			if err != nil {
				fmt.Println("Error making move:", err)
				continue
			}
			printGame(updated)
		}
	}
}

// gameClient is a small REST client for the game server.
type gameClient struct {
	baseURL    string
	httpClient *http.Client
}

func (c *gameClient) do(method, path string, body interface{}, result interface{}) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reqBody = bytes.NewBuffer(data)
	}

	req, err := http.NewRequest(method, c.baseURL+path, reqBody)
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
		return fmt.Errorf("server error: %d", resp.StatusCode)
	}

	if result != nil {
		return json.NewDecoder(resp.Body).Decode(result)
	}
	return nil
}

func (c *gameClient) createGame(p1Name, p2Name string, humans int) (*service.GameInfo, error) {
	params := service.CreateGameParams{
		Player1Name:     p1Name,
		Player2Name:     p2Name,
		NumHumanPlayers: humans,
	}
	var game service.GameInfo
	if err := c.do("POST", "/api/games", params, &game); err != nil {
		return nil, err
	}
	return &game, nil
}

func (c *gameClient) getGame(id string) (*service.GameInfo, error) {
	var game service.GameInfo
	if err := c.do("GET", "/api/games/"+id, nil, &game); err != nil {
		return nil, err
	}
	return &game, nil
}

func (c *gameClient) listGames() ([]service.GameInfo, error) {
	var response struct {
		Count int                `json:"count"`
		Games []service.GameInfo `json:"games"`
	}
	if err := c.do("GET", "/api/games", nil, &response); err != nil {
		return nil, err
	}
	return response.Games, nil
}

func (c *gameClient) makeMove(id string, slot engine.Slot, column int) (*service.GameInfo, error) {
	body := map[string]interface{}{
		"player": slot,
		"column": column,
	}
	var result service.MoveResult
	if err := c.do("POST", "/api/games/"+id+"/moves", body, &result); err != nil {
		return nil, err
	}
	return result.Game, nil
}

func (c *gameClient) nextMove(id string) (int, error) {
	var result service.NextMoveResult
	if err := c.do("POST", "/api/games/"+id+"/next-move", nil, &result); err != nil {
		return -1, err
	}
	return result.NextMove, nil
}

func (c *gameClient) restartGame(id string) (*service.GameInfo, error) {
	var game service.GameInfo
	if err := c.do("POST", "/api/games/"+id+"/restart", nil, &game); err != nil {
		return nil, err
	}
	return &game, nil
}

func (c *gameClient) quitGame(id string) error {
	return c.do("DELETE", "/api/games/"+id, nil, nil)
}

// Rendering helpers

func printBanner() {
	fmt.Println("##############################################")
	fmt.Println("#                                            #")
	fmt.Println("#                 CONNECT 4                  #")
	fmt.Println("#                                            #")
	fmt.Println("##############################################")
	fmt.Println("#                                            #")
	fmt.Println("#  Welcome to the Connect 4 Game!            #")
	fmt.Println("#  Two players will take turns to drop       #")
	fmt.Println("#  their pieces into the columns. The first  #")
	fmt.Println("#  player to connect four pieces in a row    #")
	fmt.Println("#  (horizontally, vertically, or diagonally) #")
	fmt.Println("#  wins the game.                            #")
	fmt.Println("#                                            #")
	fmt.Println("##############################################")
	fmt.Println()
}

func printHelp() {
	fmt.Println("----------------------------------------------")
	fmt.Println("Available commands:")
	fmt.Println("  0-6: Drop a piece in the specified column")
	fmt.Println("  r  : Restart the game")
	fmt.Println("  q  : Quit the game")
	fmt.Println("  h  : Display this help message")
	fmt.Println("  ls : List all games")
	fmt.Println("  gs <game_id>: Get the current state of a specific game")
	fmt.Println("----------------------------------------------")
}

func printGame(game *service.GameInfo) {
	fmt.Println("Current Board")
	printBoard(game.Board)
	if game.Status == engine.StatusInProgress {
		turn := game.Players[game.CurrentTurn]
		fmt.Printf("%s's turn (%s)\n", turn.Name, turn.Color)
	}
}

func printBoard(board engine.Board) {
	for _, row := range board {
		var line strings.Builder
		for _, cell := range row {
			switch cell {
			case engine.SlotP1:
				line.WriteByte('x')
			case engine.SlotP2:
				line.WriteByte('o')
			default:
				line.WriteByte('-')
			}
		}
		fmt.Println(line.String())
	}
}

func printGameList(games []service.GameInfo) {
	fmt.Println("----------------------------------------------")
	fmt.Println("Active games:")
	for _, g := range games {
		winner := "none"
		if g.Winner != engine.Empty {
			winner = string(g.Winner)
		}
		fmt.Printf("Game ID: %s, Players: %s vs %s, Current Turn: %s, Status: %s, Winner: %s\n",
			g.ID,
			g.Players[engine.SlotP1].Name,
			g.Players[engine.SlotP2].Name,
			g.CurrentTurn,
			g.Status,
			winner)
	}
	fmt.Println("----------------------------------------------")
}

func promptLine(stdin *bufio.Scanner, prompt string) string {
	fmt.Print(prompt)
	if !stdin.Scan() {
		return "q"
	}
	return strings.TrimSpace(strings.ToLower(stdin.Text()))
}
