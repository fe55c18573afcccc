package models

import "time"

// MatchResult is what a finished game leaves behind once the room settles
type MatchResult struct {
	RoomID   string
	RoomName string
	Players  Seats
	Winner   *string // nil on a draw
	Reason   string
	Board    Grid
	Moves    int
	EndedAt  time.Time
}
