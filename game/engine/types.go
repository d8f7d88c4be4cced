package engine

// Slot identifies one of the two fixed player positions in a game.
// It is distinct from player identity: slots are always "p1" and "p2"
// regardless of who occupies them.
type Slot string

const (
	SlotP1 Slot = "p1"
	SlotP2 Slot = "p2"

	// Empty marks an unoccupied board cell.
	Empty Slot = ""
)

// Valid reports whether s is one of the two player slots.
func (s Slot) Valid() bool {
	return s == SlotP1 || s == SlotP2
}

// Opponent returns the other player slot.
func (s Slot) Opponent() Slot {
	if s == SlotP1 {
		return SlotP2
	}
	return SlotP1
}

// Kind distinguishes human-controlled slots from computer-controlled ones.
// The engine does not enforce it; it is carried for the presentation layer.
type Kind string

const (
	KindHuman    Kind = "human"
	KindComputer Kind = "computer"
)

// Status represents the lifecycle state of a game.
type Status string

const (
	StatusInProgress Status = "in-progress"
	StatusWon        Status = "won"
	StatusDraw       Status = "draw"
)

// Board dimensions. The grid is always 6 rows by 7 columns.
const (
	Rows    = 6
	Columns = 7
)

// Player describes one participant in a game.
type Player struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
	Kind  Kind   `json:"kind"`
}

// GameState represents the complete state of a single game.
type GameState struct {
	Board       Board           `json:"board"`
	Players     map[Slot]Player `json:"players"`
	CurrentTurn Slot            `json:"current_turn"`
	Status      Status          `json:"status"`
	Winner      Slot            `json:"winner,omitempty"`
}
