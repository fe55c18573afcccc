package redis

import "Gobang/models"

// LobbySnapshot is the room listing mirrored to redis for observers outside the process
type LobbySnapshot struct {
	Rooms     []models.RoomSummary `json:"rooms"`
	UpdatedAt int64                `json:"updated_at"` // unix millis
}
