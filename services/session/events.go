package session

import "Gobang/models"

// Outbound event names
const (
	EventPlayerAssigned = "player:assigned"
	EventLobbyRooms     = "lobby:rooms"
	EventLobbyChat      = "lobby:chat"
	EventRoomJoined     = "room:joined"
	EventRoomUpdated    = "room:updated"
	EventRoomChat       = "room:chat"
	EventGameStarted    = "game:started"
	EventGameMove       = "game:move"
	EventGameEnded      = "game:ended"
	EventGameSettlement = "game:settlement"
	EventDrawRequested  = "game:draw:requested"
	EventDrawRejected   = "game:draw:rejected"
	EventError          = "error"
)

type RoomJoinedPayload struct {
	Room        models.Room `json:"room"`
	PlayerIndex *int        `json:"playerIndex"` // null for spectators
}

type GameStartedPayload struct {
	Room        models.Room `json:"room"`
	FirstPlayer int         `json:"firstPlayer"`
}

type MovePayload struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Player int `json:"player"` // seat index of the mover
}

type GameEndedPayload struct {
	Winner *string `json:"winner"`
	Reason string  `json:"reason"`
}

type SettlementPayload struct {
	Winner    *string `json:"winner"`
	Countdown int     `json:"countdown"`
}

// DrawNoticePayload goes to the opponent only
type DrawNoticePayload struct {
	PlayerID       string `json:"playerId"`
	PlayerNickname string `json:"playerNickname"`
}
