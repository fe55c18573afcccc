package socketio_types

import (
	"sync"

	log "github.com/sirupsen/logrus"
	"github.com/zishang520/socket.io/v2/socket"
)

// SocketServer is a struct that contains the socket.io server and a map of socket connections.
// It delivers the events produced by the session coordinator.
type SocketServer struct {
	Sio_server *socket.Server
	// Map to track player id -> socket connections
	PlayerConnections map[string]*socket.Socket
	mutex             sync.RWMutex
}

func NewSocketServer() *SocketServer {
	return &SocketServer{
		PlayerConnections: make(map[string]*socket.Socket),
	}
}

// Add methods to manage connections
func (s *SocketServer) AddConnection(playerID string, socket *socket.Socket) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.PlayerConnections[playerID] = socket
}

func (s *SocketServer) RemoveConnection(playerID string) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	delete(s.PlayerConnections, playerID)
}

func (s *SocketServer) GetConnection(playerID string) (*socket.Socket, bool) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	socket, exists := s.PlayerConnections[playerID]
	return socket, exists
}

func (s *SocketServer) ConnectionCount() int {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return len(s.PlayerConnections)
}

func (s *SocketServer) ToPlayer(playerID, event string, payload interface{}) {
	client, ok := s.GetConnection(playerID)
	if !ok {
		log.Debugf("[EMIT] No connection for player %s, dropping %s", playerID, event)
		return
	}
	if err := client.Emit(event, payload); err != nil {
		log.Errorf("[EMIT-ERROR] %s to player %s: %v", event, playerID, err)
	}
}

func (s *SocketServer) ToRoom(roomID, event string, payload interface{}) {
	if err := s.Sio_server.To(socket.Room(roomID)).Emit(event, payload); err != nil {
		log.Errorf("[EMIT-ERROR] %s to room %s: %v", event, roomID, err)
	}
}

func (s *SocketServer) Broadcast(event string, payload interface{}) {
	s.Sio_server.Emit(event, payload)
}

func (s *SocketServer) JoinRoom(playerID, roomID string) {
	if client, ok := s.GetConnection(playerID); ok {
		client.Join(socket.Room(roomID))
	}
}

func (s *SocketServer) LeaveRoom(playerID, roomID string) {
	if client, ok := s.GetConnection(playerID); ok {
		client.Leave(socket.Room(roomID))
	}
}

// Detach drops the connection of a player whose disconnect has been processed
func (s *SocketServer) Detach(playerID string) {
	s.RemoveConnection(playerID)
}
