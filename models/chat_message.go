package models

type ChatType string

const (
	ChatLobby ChatType = "lobby"
	ChatRoom  ChatType = "room"
)

// ChatMessage represents a message in the lobby or in a room chat
type ChatMessage struct {
	ID        string   `json:"id"`
	PlayerID  string   `json:"playerId"`
	Nickname  string   `json:"nickname"`
	Content   string   `json:"content"`
	Timestamp int64    `json:"timestamp"` // unix millis
	Type      ChatType `json:"type"`
	RoomID    string   `json:"roomId,omitempty"`
}
