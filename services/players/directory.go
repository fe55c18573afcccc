package players

import (
	"Gobang/models"
	"fmt"
	"math/rand"
	"sync"

	"github.com/google/uuid"
)

var adjectives = []string{
	"Swift", "Calm", "Bold", "Silent", "Clever", "Patient", "Lucky", "Sharp",
	"Wandering", "Steady", "Curious", "Fearless",
}

var nouns = []string{
	"Swordsman", "Sage", "Stone", "Crane", "Tiger", "Scholar", "Master",
	"Rookie", "Dragon", "Strategist",
}

// GenerateNickname returns something like "CalmCrane4821"
func GenerateNickname() string {
	return fmt.Sprintf("%s%s%d",
		adjectives[rand.Intn(len(adjectives))],
		nouns[rand.Intn(len(nouns))],
		rand.Intn(9999)+1)
}

/*
 * 'Directory' maps live connections to player identities. A player exists
 * here only while its socket is connected.
 */
type Directory struct {
	mu      sync.RWMutex
	players map[string]*models.Player // player id -> player
}

func NewDirectory() *Directory {
	return &Directory{
		players: make(map[string]*models.Player),
	}
}

// Connect registers a new connection. A requested id that parses as a uuid and
// is not held by another live connection is reused, otherwise a fresh one is issued.
func (d *Directory) Connect(socketID, requestedID string) models.Player {
	d.mu.Lock()
	defer d.mu.Unlock()

	id := ""
	if requestedID != "" {
		if _, err := uuid.Parse(requestedID); err == nil {
			if _, taken := d.players[requestedID]; !taken {
				id = requestedID
			}
		}
	}
	if id == "" {
		id = uuid.New().String()
	}

	p := &models.Player{ID: id, Nickname: GenerateNickname(), SocketID: socketID}
	d.players[id] = p
	return *p
}

func (d *Directory) Player(playerID string) (models.Player, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	p, ok := d.players[playerID]
	if !ok {
		return models.Player{}, false
	}
	return *p, true
}

// Online reports whether playerID has a live connection
func (d *Directory) Online(playerID string) bool {
	_, ok := d.Player(playerID)
	return ok
}

// Nickname returns the nickname of playerID or "" if unknown
func (d *Directory) Nickname(playerID string) string {
	p, ok := d.Player(playerID)
	if !ok {
		return ""
	}
	return p.Nickname
}

// Remove forgets playerID and its socket
func (d *Directory) Remove(playerID string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	if _, ok := d.players[playerID]; !ok {
		return false
	}
	delete(d.players, playerID)
	return true
}

// Count is the number of connected players
func (d *Directory) Count() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.players)
}
