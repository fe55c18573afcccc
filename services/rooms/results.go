package rooms

import "Gobang/models"

type DepartKind int

const (
	// The player left and the room lives on unchanged otherwise
	DepartRemoved DepartKind = iota
	// The player escaped a running game and the remaining seat won
	DepartOpponentAwarded
	// Nobody is left; the room no longer exists
	DepartRoomDeleted
)

func (k DepartKind) String() string {
	switch k {
	case DepartRemoved:
		return "removed"
	case DepartOpponentAwarded:
		return "opponent_awarded"
	case DepartRoomDeleted:
		return "room_deleted"
	}
	return "unknown"
}

type DepartResult struct {
	Kind   DepartKind
	RoomID string
	Room   models.Room // zero value when Kind is DepartRoomDeleted
	Seat   int         // seat the player held, -1 for a spectator
	Winner string      // set when Kind is DepartOpponentAwarded
}

type UnseatResult struct {
	Room    models.Room
	Seat    int
	Escaped bool // the game was running and the opponent won
}

type MoveOutcome int

const (
	MoveContinue MoveOutcome = iota
	MoveWin
	MoveDraw
)

func (o MoveOutcome) String() string {
	switch o {
	case MoveContinue:
		return "continue"
	case MoveWin:
		return "win"
	case MoveDraw:
		return "draw"
	}
	return "unknown"
}

type MoveResult struct {
	Room    models.Room
	Seat    int // seat index of the mover
	X, Y    int
	Outcome MoveOutcome
}

// Finished reports whether the move ended the game
func (r MoveResult) Finished() bool {
	return r.Outcome != MoveContinue
}
