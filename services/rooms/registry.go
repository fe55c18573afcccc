package rooms

import (
	game_constants "Gobang/constants/game"
	"Gobang/models"
	"Gobang/services/gobang"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

/*
 * 'Registry' owns every room of the server and the player -> room index.
 * All operations run under one mutex, so the command processor and the
 * settlement sweeper never see a half applied transition. Rooms handed out
 * are deep copies.
 */
type Registry struct {
	mu          sync.Mutex
	rooms       map[string]*models.Room
	order       []string          // room ids in creation order
	playerRooms map[string]string // player id -> room id
	created     int
	now         func() time.Time
}

type Option func(*Registry)

// WithClock replaces time.Now, used by tests to drive the settlement window
func WithClock(now func() time.Time) Option {
	return func(r *Registry) {
		r.now = now
	}
}

func NewRegistry(opts ...Option) *Registry {
	r := &Registry{
		rooms:       make(map[string]*models.Room),
		playerRooms: make(map[string]string),
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Now is the registry clock
func (r *Registry) Now() time.Time {
	return r.now()
}

// CreateRoom makes an empty idle room. Blank names get a numbered default.
func (r *Registry) CreateRoom(name string) models.Room {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.created++
	name = strings.TrimSpace(name)
	if name == "" {
		name = fmt.Sprintf("Room %d", r.created)
	}

	room := &models.Room{
		ID:           uuid.New().String(),
		Name:         name,
		Spectators:   []string{},
		Status:       models.StatusIdle,
		Board:        models.NewGrid(),
		DrawRequests: []models.DrawRequest{},
		DrawCount:    map[string]int{},
		ChatMessages: []models.ChatMessage{},
		CreatedAt:    r.now(),
	}
	r.rooms[room.ID] = room
	r.order = append(r.order, room.ID)
	return room.Clone()
}

// ListRooms returns every room, newest first
func (r *Registry) ListRooms() []models.Room {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.listLocked("")
}

// SearchRooms matches keyword case-insensitively against room names and ids
func (r *Registry) SearchRooms(keyword string) []models.Room {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.listLocked(strings.ToLower(strings.TrimSpace(keyword)))
}

func (r *Registry) listLocked(keyword string) []models.Room {
	list := make([]models.Room, 0, len(r.order))
	for i := len(r.order) - 1; i >= 0; i-- {
		room := r.rooms[r.order[i]]
		if keyword != "" &&
			!strings.Contains(strings.ToLower(room.Name), keyword) &&
			!strings.Contains(strings.ToLower(room.ID), keyword) {
			continue
		}
		list = append(list, room.Clone())
	}
	return list
}

func (r *Registry) Room(roomID string) (models.Room, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	room, ok := r.rooms[roomID]
	if !ok {
		return models.Room{}, false
	}
	return room.Clone(), true
}

// RoomOf returns the room playerID is currently in
func (r *Registry) RoomOf(playerID string) (models.Room, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	room, ok := r.roomOfLocked(playerID)
	if !ok {
		return models.Room{}, false
	}
	return room.Clone(), true
}

func (r *Registry) roomOfLocked(playerID string) (*models.Room, bool) {
	roomID, ok := r.playerRooms[playerID]
	if !ok {
		return nil, false
	}
	room, ok := r.rooms[roomID]
	return room, ok
}

// memberRoomLocked returns roomID only if playerID is currently in it
func (r *Registry) memberRoomLocked(roomID, playerID string) (*models.Room, error) {
	room, ok := r.rooms[roomID]
	if !ok {
		return nil, ErrRoomNotFound
	}
	if r.playerRooms[playerID] != roomID {
		return nil, ErrNotInRoom
	}
	return room, nil
}

// Enter adds playerID to the spectators. Entering a room the player is already
// in changes nothing; entering while in another room is refused.
func (r *Registry) Enter(roomID, playerID string) (models.Room, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	room, ok := r.rooms[roomID]
	if !ok {
		return models.Room{}, ErrRoomNotFound
	}
	if current, in := r.playerRooms[playerID]; in && current != roomID {
		return models.Room{}, ErrAlreadyInRoom
	}
	if !room.HasMember(playerID) {
		room.Spectators = append(room.Spectators, playerID)
	}
	r.playerRooms[playerID] = roomID
	return room.Clone(), nil
}

// Seat moves a spectator of the room into seat
func (r *Registry) Seat(roomID, playerID string, seat int) (models.Room, error) {
	if seat < 0 || seat >= game_constants.SeatCount {
		return models.Room{}, ErrInvalidSeat
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	room, err := r.memberRoomLocked(roomID, playerID)
	if err != nil {
		return models.Room{}, err
	}
	if room.Players.IndexOf(playerID) != -1 {
		return models.Room{}, ErrAlreadySeated
	}
	if room.Players[seat] != "" {
		return models.Room{}, ErrSeatOccupied
	}

	room.RemoveSpectator(playerID)
	room.Players[seat] = playerID
	return room.Clone(), nil
}

// Unseat sends a seated player back to the spectators. Standing up during a
// running game hands the win to the opponent.
func (r *Registry) Unseat(roomID, playerID string) (UnseatResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	room, err := r.memberRoomLocked(roomID, playerID)
	if err != nil {
		return UnseatResult{}, err
	}
	seat := room.Players.IndexOf(playerID)
	if seat == -1 {
		return UnseatResult{}, ErrNotSeated
	}

	escaped := r.escapeLocked(room, seat)
	room.Players[seat] = ""
	room.Spectators = append(room.Spectators, playerID)
	return UnseatResult{Room: room.Clone(), Seat: seat, Escaped: escaped}, nil
}

// escapeLocked awards the game to the other seat when seat is abandoned mid game
func (r *Registry) escapeLocked(room *models.Room, seat int) bool {
	if room.Status != models.StatusPlaying {
		return false
	}
	opponent := room.Opponent(seat)
	if opponent == "" {
		return false
	}
	r.finishLocked(room, opponent)
	return true
}

// Depart removes playerID from whatever room it is in. A room left with nobody
// in it is deleted, and deletion takes precedence over awarding a win.
func (r *Registry) Depart(playerID string) (DepartResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	room, ok := r.roomOfLocked(playerID)
	if !ok {
		delete(r.playerRooms, playerID)
		return DepartResult{}, ErrNotInRoom
	}
	delete(r.playerRooms, playerID)

	seat := room.Players.IndexOf(playerID)
	if seat != -1 {
		room.Players[seat] = ""
	}
	room.RemoveSpectator(playerID)

	if room.Vacant() {
		r.deleteLocked(room.ID)
		return DepartResult{Kind: DepartRoomDeleted, RoomID: room.ID, Seat: seat}, nil
	}

	if seat != -1 && r.escapeLocked(room, seat) {
		return DepartResult{
			Kind:   DepartOpponentAwarded,
			RoomID: room.ID,
			Room:   room.Clone(),
			Seat:   seat,
			Winner: *room.Winner,
		}, nil
	}
	return DepartResult{Kind: DepartRemoved, RoomID: room.ID, Room: room.Clone(), Seat: seat}, nil
}

func (r *Registry) deleteLocked(roomID string) {
	delete(r.rooms, roomID)
	for i, id := range r.order {
		if id == roomID {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	for playerID, id := range r.playerRooms {
		if id == roomID {
			delete(r.playerRooms, playerID)
		}
	}
}

// StartGame moves an idle room with both seats taken into play. Only a seated
// player may start.
func (r *Registry) StartGame(roomID, playerID string) (models.Room, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	room, err := r.memberRoomLocked(roomID, playerID)
	if err != nil {
		return models.Room{}, err
	}
	if room.Players.IndexOf(playerID) == -1 {
		return models.Room{}, ErrNotSeated
	}
	if room.Status != models.StatusIdle {
		return models.Room{}, ErrNotIdle
	}
	if !room.Players.Full() {
		return models.Room{}, ErrSeatsNotFilled
	}

	room.Status = models.StatusPlaying
	room.Board = models.NewGrid()
	room.CurrentPlayer = 0
	room.Winner = nil
	room.DrawRequests = []models.DrawRequest{}
	room.DrawCount = map[string]int{room.Players[0]: 0, room.Players[1]: 0}
	room.SettlementDeadline = nil
	return room.Clone(), nil
}

// Move places the stone of playerID on (x, y). The board is rebuilt from the
// room grid to judge the move.
func (r *Registry) Move(roomID, playerID string, x, y int) (MoveResult, error) {
	if !gobang.InBounds(x, y) {
		return MoveResult{}, ErrInvalidCoordinates
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	room, err := r.memberRoomLocked(roomID, playerID)
	if err != nil {
		return MoveResult{}, err
	}
	if room.Status != models.StatusPlaying {
		return MoveResult{}, ErrNotPlaying
	}
	seat := room.Players.IndexOf(playerID)
	if seat == -1 {
		return MoveResult{}, ErrNotSeated
	}
	if seat != room.CurrentPlayer {
		return MoveResult{}, ErrNotYourTurn
	}

	board, err := gobang.FromGrid(room.Board)
	if err != nil {
		return MoveResult{}, fmt.Errorf("room %s holds an invalid board: %w", room.ID, err)
	}
	if err := board.Place(x, y, seat); err != nil {
		if errors.Is(err, gobang.ErrCellOccupied) {
			return MoveResult{}, ErrCellOccupied
		}
		return MoveResult{}, err
	}
	room.Board[y][x] = seat

	result := MoveResult{Seat: seat, X: x, Y: y, Outcome: MoveContinue}
	switch {
	case board.HasWinAt(x, y, seat):
		result.Outcome = MoveWin
		r.finishLocked(room, playerID)
	case board.IsFull():
		result.Outcome = MoveDraw
		r.finishLocked(room, "")
	default:
		room.CurrentPlayer = 1 - seat
	}
	result.Room = room.Clone()
	return result, nil
}

// Surrender ends a running game in favour of the opponent of playerID
func (r *Registry) Surrender(roomID, playerID string) (models.Room, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	room, err := r.memberRoomLocked(roomID, playerID)
	if err != nil {
		return models.Room{}, err
	}
	if room.Status != models.StatusPlaying {
		return models.Room{}, ErrNotPlaying
	}
	seat := room.Players.IndexOf(playerID)
	if seat == -1 {
		return models.Room{}, ErrNotSeated
	}
	r.finishLocked(room, room.Opponent(seat))
	return room.Clone(), nil
}

// RequestDraw records a pending draw offer from playerID
func (r *Registry) RequestDraw(roomID, playerID string) (models.Room, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	room, err := r.memberRoomLocked(roomID, playerID)
	if err != nil {
		return models.Room{}, err
	}
	if room.Status != models.StatusPlaying {
		return models.Room{}, ErrNotPlaying
	}
	if room.Players.IndexOf(playerID) == -1 {
		return models.Room{}, ErrNotSeated
	}
	if room.DrawCount[playerID] >= game_constants.MaxDrawRequests {
		return models.Room{}, ErrDrawLimit
	}
	if room.PendingDrawIndex(playerID) != -1 {
		return models.Room{}, ErrDrawPending
	}

	room.DrawCount[playerID]++
	room.DrawRequests = append(room.DrawRequests, models.DrawRequest{
		PlayerID:  playerID,
		Timestamp: r.now().UnixMilli(),
	})
	return room.Clone(), nil
}

// AcceptDraw ends the game as a draw when the opponent has an offer pending
func (r *Registry) AcceptDraw(roomID, playerID string) (models.Room, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	room, err := r.memberRoomLocked(roomID, playerID)
	if err != nil {
		return models.Room{}, err
	}
	seat := room.Players.IndexOf(playerID)
	if seat == -1 {
		return models.Room{}, ErrNotSeated
	}
	if room.Status != models.StatusPlaying {
		return models.Room{}, ErrNotPlaying
	}
	opponent := room.Opponent(seat)
	if opponent == "" || room.PendingDrawIndex(opponent) == -1 {
		return models.Room{}, ErrNoDrawRequest
	}

	r.finishLocked(room, "")
	return room.Clone(), nil
}

// RejectDraw drops the pending offer of the opponent. The counter of the
// requester is left as it was.
func (r *Registry) RejectDraw(roomID, playerID string) (models.Room, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	room, err := r.memberRoomLocked(roomID, playerID)
	if err != nil {
		return models.Room{}, err
	}
	seat := room.Players.IndexOf(playerID)
	if seat == -1 {
		return models.Room{}, ErrNotSeated
	}
	opponent := room.Opponent(seat)
	if opponent == "" {
		return models.Room{}, ErrNoOpponent
	}
	i := room.PendingDrawIndex(opponent)
	if i == -1 {
		return models.Room{}, ErrNoDrawRequest
	}

	room.DrawRequests = append(room.DrawRequests[:i], room.DrawRequests[i+1:]...)
	return room.Clone(), nil
}

// finishLocked is the single playing -> finished transition. winner "" is a draw.
func (r *Registry) finishLocked(room *models.Room, winner string) {
	room.Status = models.StatusFinished
	room.Winner = nil
	if winner != "" {
		w := winner
		room.Winner = &w
	}
	room.DrawRequests = []models.DrawRequest{}
	deadline := r.now().Add(game_constants.SettlementWindow)
	room.SettlementDeadline = &deadline
}

// ResetRoom takes a finished room back to idle for a rematch. Seats are kept.
func (r *Registry) ResetRoom(roomID string) (models.Room, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	room, ok := r.rooms[roomID]
	if !ok {
		return models.Room{}, ErrRoomNotFound
	}
	if room.Status != models.StatusFinished {
		return models.Room{}, ErrNotFinished
	}

	room.Status = models.StatusIdle
	room.Board = models.NewGrid()
	room.CurrentPlayer = 0
	room.Winner = nil
	room.DrawRequests = []models.DrawRequest{}
	room.DrawCount = map[string]int{}
	room.SettlementDeadline = nil
	return room.Clone(), nil
}

// ExpiredSettlements lists the finished rooms whose settlement window is over at now
func (r *Registry) ExpiredSettlements(now time.Time) []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	var expired []string
	for _, id := range r.order {
		room := r.rooms[id]
		if room.Status == models.StatusFinished && room.SettlementDeadline != nil &&
			!now.Before(*room.SettlementDeadline) {
			expired = append(expired, id)
		}
	}
	return expired
}

// AddChatMessage appends msg to the room log, evicting the oldest entries past the cap
func (r *Registry) AddChatMessage(roomID string, msg models.ChatMessage) (models.Room, error) {
	if strings.TrimSpace(msg.Content) == "" {
		return models.Room{}, ErrEmptyMessage
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	room, ok := r.rooms[roomID]
	if !ok {
		return models.Room{}, ErrRoomNotFound
	}
	room.ChatMessages = append(room.ChatMessages, msg)
	if over := len(room.ChatMessages) - game_constants.MaxChatMessages; over > 0 {
		room.ChatMessages = append([]models.ChatMessage{}, room.ChatMessages[over:]...)
	}
	return room.Clone(), nil
}
