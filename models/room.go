package models

import (
	game_constants "Gobang/constants/game"
	"encoding/json"
	"time"
)

type GameStatus string

const (
	StatusIdle     GameStatus = "idle"
	StatusPlaying  GameStatus = "playing"
	StatusFinished GameStatus = "finished"
)

// Grid is the authoritative 15x15 board of a room, indexed [y][x].
// Cells hold game_constants.EmptyCell or the seat index of the stone owner.
type Grid [game_constants.BoardSize][game_constants.BoardSize]int

// NewGrid returns a grid with every cell empty
func NewGrid() Grid {
	var g Grid
	for y := range g {
		for x := range g[y] {
			g[y][x] = game_constants.EmptyCell
		}
	}
	return g
}

// Stones counts the occupied cells
func (g Grid) Stones() int {
	n := 0
	for y := range g {
		for x := range g[y] {
			if g[y][x] != game_constants.EmptyCell {
				n++
			}
		}
	}
	return n
}

// Seats holds the two turn-order slots of a room. An empty string is a free seat.
// On the wire a free seat is null, as the clients expect.
type Seats [game_constants.SeatCount]string

func (s Seats) MarshalJSON() ([]byte, error) {
	var out [game_constants.SeatCount]*string
	for i := range s {
		if s[i] != "" {
			id := s[i]
			out[i] = &id
		}
	}
	return json.Marshal(out)
}

// IndexOf returns the seat held by playerID, or -1
func (s Seats) IndexOf(playerID string) int {
	if playerID == "" {
		return -1
	}
	for i := range s {
		if s[i] == playerID {
			return i
		}
	}
	return -1
}

// Full reports whether both seats are taken
func (s Seats) Full() bool {
	for i := range s {
		if s[i] == "" {
			return false
		}
	}
	return true
}

// Empty reports whether both seats are free
func (s Seats) Empty() bool {
	for i := range s {
		if s[i] != "" {
			return false
		}
	}
	return true
}

// DrawRequest is a pending, unanswered draw offer
type DrawRequest struct {
	PlayerID  string `json:"playerId"`
	Timestamp int64  `json:"timestamp"` // unix millis
}

/*
 * 'Room' is the central entity of the server: two seats, any number of spectators,
 * one game and a bounded chat log. Rooms only live in memory.
 */
type Room struct {
	ID            string         `json:"id"`
	Name          string         `json:"name"`
	Players       Seats          `json:"players"`
	Spectators    []string       `json:"spectators"`
	Status        GameStatus     `json:"status"`
	Board         Grid           `json:"board"`
	CurrentPlayer int            `json:"currentPlayer"` // seat index allowed to move, meaningful while playing
	Winner        *string        `json:"winner"`
	DrawRequests  []DrawRequest  `json:"drawRequests"`
	DrawCount     map[string]int `json:"drawCount"`
	ChatMessages  []ChatMessage  `json:"chatMessages"`

	SettlementDeadline *time.Time `json:"-"`
	CreatedAt          time.Time  `json:"-"`
}

// MarshalJSON keeps the timestamps in unix millis like the rest of the protocol
func (r Room) MarshalJSON() ([]byte, error) {
	type roomAlias Room
	var settlementEnd *int64
	if r.SettlementDeadline != nil {
		ms := r.SettlementDeadline.UnixMilli()
		settlementEnd = &ms
	}
	return json.Marshal(struct {
		roomAlias
		SettlementEndTime *int64 `json:"settlementEndTime"`
		CreatedAt         int64  `json:"createdAt"`
	}{
		roomAlias:         roomAlias(r),
		SettlementEndTime: settlementEnd,
		CreatedAt:         r.CreatedAt.UnixMilli(),
	})
}

// HasMember reports whether playerID is seated or spectating
func (r *Room) HasMember(playerID string) bool {
	return r.Players.IndexOf(playerID) != -1 || r.spectatorIndex(playerID) != -1
}

// Vacant reports whether nobody is left in the room
func (r *Room) Vacant() bool {
	return r.Players.Empty() && len(r.Spectators) == 0
}

// Opponent returns the player in the other seat, or "" if seatIndex is not a seat
// or the other seat is free
func (r *Room) Opponent(seatIndex int) string {
	if seatIndex < 0 || seatIndex >= game_constants.SeatCount {
		return ""
	}
	return r.Players[1-seatIndex]
}

func (r *Room) spectatorIndex(playerID string) int {
	for i, id := range r.Spectators {
		if id == playerID {
			return i
		}
	}
	return -1
}

// RemoveSpectator drops playerID from the spectators, reporting whether it was there
func (r *Room) RemoveSpectator(playerID string) bool {
	i := r.spectatorIndex(playerID)
	if i == -1 {
		return false
	}
	r.Spectators = append(r.Spectators[:i], r.Spectators[i+1:]...)
	return true
}

// PendingDrawIndex returns the index of playerID's pending draw request, or -1
func (r *Room) PendingDrawIndex(playerID string) int {
	for i, req := range r.DrawRequests {
		if req.PlayerID == playerID {
			return i
		}
	}
	return -1
}

// Clone returns a deep copy that shares no memory with r
func (r *Room) Clone() Room {
	c := *r
	c.Spectators = append([]string{}, r.Spectators...)
	c.DrawRequests = append([]DrawRequest{}, r.DrawRequests...)
	c.ChatMessages = append([]ChatMessage{}, r.ChatMessages...)
	c.DrawCount = make(map[string]int, len(r.DrawCount))
	for k, v := range r.DrawCount {
		c.DrawCount[k] = v
	}
	if r.Winner != nil {
		w := *r.Winner
		c.Winner = &w
	}
	if r.SettlementDeadline != nil {
		d := *r.SettlementDeadline
		c.SettlementDeadline = &d
	}
	return c
}

// RoomSummary is the listing-relevant subset of a room, used by the lobby mirror
type RoomSummary struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	Players    Seats      `json:"players"`
	Spectators int        `json:"spectators"`
	Status     GameStatus `json:"status"`
	CreatedAt  int64      `json:"created_at"` // unix millis
}

func (r *Room) Summary() RoomSummary {
	return RoomSummary{
		ID:         r.ID,
		Name:       r.Name,
		Players:    r.Players,
		Spectators: len(r.Spectators),
		Status:     r.Status,
		CreatedAt:  r.CreatedAt.UnixMilli(),
	}
}
