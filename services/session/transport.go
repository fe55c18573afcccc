package session

import "Gobang/models"

// Transport delivers events to connected players. Implementations address
// players by id and never expose connections to the coordinator.
type Transport interface {
	ToPlayer(playerID, event string, payload interface{})
	ToRoom(roomID, event string, payload interface{})
	Broadcast(event string, payload interface{})
	JoinRoom(playerID, roomID string)
	LeaveRoom(playerID, roomID string)
	// Detach forgets the connection of a player that has disconnected
	Detach(playerID string)
}

// MatchRecorder receives every finished game. Record must not block.
type MatchRecorder interface {
	Record(result models.MatchResult)
}

// LobbyPublisher mirrors the lobby listing outside the process. Publish must not block.
type LobbyPublisher interface {
	Publish(rooms []models.Room)
}
