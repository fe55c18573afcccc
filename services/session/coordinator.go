package session

import (
	game_constants "Gobang/constants/game"
	"Gobang/models"
	"Gobang/services/players"
	"Gobang/services/rooms"
	"strings"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

/*
 * 'Coordinator' turns player commands into registry operations and decides who
 * hears about the result: the caller, the room, or everybody.
 *
 * Rejections of seating, starting, surrendering and the draw negotiation are
 * sent back to the caller as an error event. Moves, chat and commands issued
 * outside of a room are dropped quietly, the next room:updated corrects the client.
 */
type Coordinator struct {
	registry  *rooms.Registry
	directory *players.Directory
	transport Transport
	recorder  MatchRecorder
	lobby     LobbyPublisher
}

type NewCoordinatorOptions struct {
	Registry  *rooms.Registry
	Directory *players.Directory
	Transport Transport
	Recorder  MatchRecorder  // optional
	Lobby     LobbyPublisher // optional
}

func NewCoordinator(opts NewCoordinatorOptions) *Coordinator {
	return &Coordinator{
		registry:  opts.Registry,
		directory: opts.Directory,
		transport: opts.Transport,
		recorder:  opts.Recorder,
		lobby:     opts.Lobby,
	}
}

// Dispatch runs one command to completion
func (c *Coordinator) Dispatch(env Envelope) {
	playerID := env.PlayerID
	switch cmd := env.Command.(type) {
	case Connect:
		c.handleConnect(playerID)
	case Disconnect:
		c.handleDisconnect(playerID)
	case ListRooms:
		c.transport.ToPlayer(playerID, EventLobbyRooms, c.registry.ListRooms())
	case SearchRooms:
		c.transport.ToPlayer(playerID, EventLobbyRooms, c.registry.SearchRooms(cmd.Keyword))
	case CreateRoom:
		c.handleCreateRoom(playerID, cmd)
	case JoinRoom:
		c.join(playerID, cmd.RoomID)
	case LobbyChat:
		c.handleLobbyChat(playerID, cmd)
	case LeaveRoom:
		if !c.leave(playerID) {
			log.Debugf("[LEAVE] Player %s is not in a room, ignoring", playerID)
		}
	case Sit:
		c.handleSit(playerID, cmd)
	case Stand:
		c.handleStand(playerID)
	case StartGame:
		c.handleStartGame(playerID)
	case Move:
		c.handleMove(playerID, cmd)
	case RequestDraw:
		c.handleRequestDraw(playerID)
	case AcceptDraw:
		c.handleAcceptDraw(playerID)
	case RejectDraw:
		c.handleRejectDraw(playerID)
	case Surrender:
		c.handleSurrender(playerID)
	case RoomChat:
		c.handleRoomChat(playerID, cmd)
	case ResetSettlement:
		c.ResetRoom(cmd.RoomID)
	default:
		log.Warnf("[DISPATCH] Unknown command %T from player %s", env.Command, playerID)
	}
}

func (c *Coordinator) handleConnect(playerID string) {
	player, ok := c.directory.Player(playerID)
	if !ok {
		log.Warnf("[CONNECT] Player %s is not in the directory", playerID)
		return
	}
	log.Infof("[CONNECT] Player %s (%s) connected", player.ID, player.Nickname)
	c.transport.ToPlayer(playerID, EventPlayerAssigned, player)
	c.transport.ToPlayer(playerID, EventLobbyRooms, c.registry.ListRooms())
}

func (c *Coordinator) handleDisconnect(playerID string) {
	log.Infof("[DISCONNECT] Player %s disconnected", playerID)
	c.leave(playerID)
	// Detach first: once removed from the directory the id may be handed out again
	c.transport.Detach(playerID)
	c.directory.Remove(playerID)
}

func (c *Coordinator) handleCreateRoom(playerID string, cmd CreateRoom) {
	room := c.registry.CreateRoom(cmd.Name)
	log.Infof("[ROOM-CREATE] Player %s created room %s (%s)", playerID, room.ID, room.Name)
	c.join(playerID, room.ID)
}

// join moves the player into roomID, leaving its current room first
func (c *Coordinator) join(playerID, roomID string) {
	if _, ok := c.registry.Room(roomID); !ok {
		log.Debugf("[JOIN] Room %s not found for player %s, ignoring", roomID, playerID)
		return
	}

	if current, ok := c.registry.RoomOf(playerID); ok {
		if current.ID == roomID {
			c.transport.ToPlayer(playerID, EventRoomJoined, joinedPayload(current, playerID))
			return
		}
		c.leave(playerID)
	}

	room, err := c.registry.Enter(roomID, playerID)
	if err != nil {
		log.Debugf("[JOIN-ERROR] Player %s could not enter room %s: %v", playerID, roomID, err)
		return
	}
	log.Infof("[JOIN] Player %s entered room %s", playerID, roomID)

	c.transport.JoinRoom(playerID, roomID)
	c.transport.ToPlayer(playerID, EventRoomJoined, joinedPayload(room, playerID))
	c.transport.ToRoom(roomID, EventRoomUpdated, room)
	c.refreshLobby()
}

func joinedPayload(room models.Room, playerID string) RoomJoinedPayload {
	payload := RoomJoinedPayload{Room: room}
	if seat := room.Players.IndexOf(playerID); seat != -1 {
		payload.PlayerIndex = &seat
	}
	return payload
}

// leave departs the player from its room and tells everyone concerned. It
// reports false when the player was not in a room.
func (c *Coordinator) leave(playerID string) bool {
	res, err := c.registry.Depart(playerID)
	if err != nil {
		return false
	}
	c.transport.LeaveRoom(playerID, res.RoomID)

	switch res.Kind {
	case rooms.DepartRoomDeleted:
		log.Infof("[LEAVE] Player %s left room %s, room deleted", playerID, res.RoomID)
	case rooms.DepartOpponentAwarded:
		log.Infof("[LEAVE] Player %s escaped from room %s, %s wins", playerID, res.RoomID, res.Winner)
		seats := res.Room.Players
		seats[res.Seat] = playerID
		c.emitFinished(res.Room, seats, game_constants.REASON_ESCAPE)
	default:
		log.Infof("[LEAVE] Player %s left room %s", playerID, res.RoomID)
		c.transport.ToRoom(res.RoomID, EventRoomUpdated, res.Room)
	}
	c.refreshLobby()
	return true
}

func (c *Coordinator) handleSit(playerID string, cmd Sit) {
	current, ok := c.registry.RoomOf(playerID)
	if !ok {
		log.Debugf("[ROOM-SIT] Player %s is not in a room, ignoring", playerID)
		return
	}
	room, err := c.registry.Seat(current.ID, playerID, cmd.Seat)
	if err != nil {
		c.reject(playerID, "ROOM-SIT", err)
		return
	}
	log.Infof("[ROOM-SIT] Player %s took seat %d in room %s", playerID, cmd.Seat, room.ID)
	c.transport.ToRoom(room.ID, EventRoomUpdated, room)
	c.refreshLobby()
}

func (c *Coordinator) handleStand(playerID string) {
	current, ok := c.registry.RoomOf(playerID)
	if !ok {
		log.Debugf("[ROOM-STAND] Player %s is not in a room, ignoring", playerID)
		return
	}
	res, err := c.registry.Unseat(current.ID, playerID)
	if err != nil {
		c.reject(playerID, "ROOM-STAND", err)
		return
	}
	log.Infof("[ROOM-STAND] Player %s left seat %d in room %s", playerID, res.Seat, res.Room.ID)
	if res.Escaped {
		seats := res.Room.Players
		seats[res.Seat] = playerID
		c.emitFinished(res.Room, seats, game_constants.REASON_ESCAPE)
	} else {
		c.transport.ToRoom(res.Room.ID, EventRoomUpdated, res.Room)
	}
	c.refreshLobby()
}

func (c *Coordinator) handleStartGame(playerID string) {
	current, ok := c.registry.RoomOf(playerID)
	if !ok {
		log.Debugf("[GAME-START] Player %s is not in a room, ignoring", playerID)
		return
	}
	room, err := c.registry.StartGame(current.ID, playerID)
	if err != nil {
		c.reject(playerID, "GAME-START", err)
		return
	}
	log.Infof("[GAME-START] Room %s started: %s vs %s", room.ID, room.Players[0], room.Players[1])
	c.transport.ToRoom(room.ID, EventGameStarted, GameStartedPayload{Room: room, FirstPlayer: room.CurrentPlayer})
	c.transport.ToRoom(room.ID, EventRoomUpdated, room)
	c.refreshLobby()
}

func (c *Coordinator) handleMove(playerID string, cmd Move) {
	current, ok := c.registry.RoomOf(playerID)
	if !ok {
		log.Debugf("[MOVE] Player %s is not in a room, ignoring", playerID)
		return
	}
	res, err := c.registry.Move(current.ID, playerID, cmd.X, cmd.Y)
	if err != nil {
		log.Debugf("[MOVE-REJECTED] Player %s at (%d,%d) in room %s: %v", playerID, cmd.X, cmd.Y, current.ID, err)
		return
	}

	c.transport.ToRoom(res.Room.ID, EventGameMove, MovePayload{X: res.X, Y: res.Y, Player: res.Seat})
	switch res.Outcome {
	case rooms.MoveWin:
		log.Infof("[GAME-END] Player %s wins in room %s", playerID, res.Room.ID)
		c.emitFinished(res.Room, res.Room.Players, game_constants.REASON_WIN)
		c.refreshLobby()
	case rooms.MoveDraw:
		log.Infof("[GAME-END] Board full in room %s, draw", res.Room.ID)
		c.emitFinished(res.Room, res.Room.Players, game_constants.REASON_DRAW)
		c.refreshLobby()
	default:
		c.transport.ToRoom(res.Room.ID, EventRoomUpdated, res.Room)
	}
}

func (c *Coordinator) handleSurrender(playerID string) {
	current, ok := c.registry.RoomOf(playerID)
	if !ok {
		log.Debugf("[SURRENDER] Player %s is not in a room, ignoring", playerID)
		return
	}
	room, err := c.registry.Surrender(current.ID, playerID)
	if err != nil {
		c.reject(playerID, "SURRENDER", err)
		return
	}
	log.Infof("[SURRENDER] Player %s surrendered in room %s", playerID, room.ID)
	c.emitFinished(room, room.Players, game_constants.REASON_WIN)
	c.refreshLobby()
}

// drawRoom resolves the room for the draw negotiation, which reports a missing
// room to the caller instead of ignoring it
func (c *Coordinator) drawRoom(playerID, tag string) (models.Room, bool) {
	current, ok := c.registry.RoomOf(playerID)
	if !ok {
		c.surface(playerID, tag, rooms.ErrNotInRoom)
		return models.Room{}, false
	}
	return current, true
}

func (c *Coordinator) handleRequestDraw(playerID string) {
	current, ok := c.drawRoom(playerID, "DRAW-REQUEST")
	if !ok {
		return
	}
	room, err := c.registry.RequestDraw(current.ID, playerID)
	if err != nil {
		c.surface(playerID, "DRAW-REQUEST", err)
		return
	}
	log.Infof("[DRAW-REQUEST] Player %s offered a draw in room %s (%d/%d)",
		playerID, room.ID, room.DrawCount[playerID], game_constants.MaxDrawRequests)

	if opponent := room.Opponent(room.Players.IndexOf(playerID)); opponent != "" {
		c.transport.ToPlayer(opponent, EventDrawRequested, c.drawNotice(playerID))
	}
	c.transport.ToRoom(room.ID, EventRoomUpdated, room)
}

func (c *Coordinator) handleAcceptDraw(playerID string) {
	current, ok := c.drawRoom(playerID, "DRAW-ACCEPT")
	if !ok {
		return
	}
	room, err := c.registry.AcceptDraw(current.ID, playerID)
	if err != nil {
		c.surface(playerID, "DRAW-ACCEPT", err)
		return
	}
	log.Infof("[DRAW-ACCEPT] Player %s accepted the draw in room %s", playerID, room.ID)
	c.emitFinished(room, room.Players, game_constants.REASON_DRAW)
	c.refreshLobby()
}

func (c *Coordinator) handleRejectDraw(playerID string) {
	current, ok := c.drawRoom(playerID, "DRAW-REJECT")
	if !ok {
		return
	}
	room, err := c.registry.RejectDraw(current.ID, playerID)
	if err != nil {
		c.surface(playerID, "DRAW-REJECT", err)
		return
	}
	log.Infof("[DRAW-REJECT] Player %s rejected the draw in room %s", playerID, room.ID)

	if opponent := room.Opponent(room.Players.IndexOf(playerID)); opponent != "" {
		c.transport.ToPlayer(opponent, EventDrawRejected, c.drawNotice(playerID))
	}
	c.transport.ToRoom(room.ID, EventRoomUpdated, room)
}

func (c *Coordinator) drawNotice(playerID string) DrawNoticePayload {
	return DrawNoticePayload{PlayerID: playerID, PlayerNickname: c.directory.Nickname(playerID)}
}

func (c *Coordinator) handleRoomChat(playerID string, cmd RoomChat) {
	content := strings.TrimSpace(cmd.Content)
	if content == "" {
		return
	}
	current, ok := c.registry.RoomOf(playerID)
	if !ok {
		log.Debugf("[ROOM-CHAT] Player %s is not in a room, ignoring", playerID)
		return
	}

	msg := c.chatMessage(playerID, content, models.ChatRoom)
	msg.RoomID = current.ID
	if _, err := c.registry.AddChatMessage(current.ID, msg); err != nil {
		log.Debugf("[ROOM-CHAT] Message from %s dropped: %v", playerID, err)
		return
	}
	c.transport.ToRoom(current.ID, EventRoomChat, msg)
}

func (c *Coordinator) handleLobbyChat(playerID string, cmd LobbyChat) {
	content := strings.TrimSpace(cmd.Content)
	if content == "" {
		return
	}
	c.transport.Broadcast(EventLobbyChat, c.chatMessage(playerID, content, models.ChatLobby))
}

func (c *Coordinator) chatMessage(playerID, content string, kind models.ChatType) models.ChatMessage {
	return models.ChatMessage{
		ID:        uuid.New().String(),
		PlayerID:  playerID,
		Nickname:  c.directory.Nickname(playerID),
		Content:   content,
		Timestamp: c.registry.Now().UnixMilli(),
		Type:      kind,
	}
}

// ResetRoom takes a finished room back to idle and tells the room and the lobby.
// Settlement resets reach it through the processor as ResetSettlement.
func (c *Coordinator) ResetRoom(roomID string) bool {
	room, err := c.registry.ResetRoom(roomID)
	if err != nil {
		log.Debugf("[RESET] Room %s not reset: %v", roomID, err)
		return false
	}
	log.Infof("[RESET] Room %s is idle again", roomID)
	c.transport.ToRoom(roomID, EventRoomUpdated, room)
	c.refreshLobby()
	return true
}

// emitFinished announces a game that just ended. players are the seats as they
// were when the game ended, before an escaping player was removed.
func (c *Coordinator) emitFinished(room models.Room, players models.Seats, reason string) {
	c.transport.ToRoom(room.ID, EventGameEnded, GameEndedPayload{Winner: room.Winner, Reason: reason})
	c.transport.ToRoom(room.ID, EventGameSettlement, SettlementPayload{
		Winner:    room.Winner,
		Countdown: game_constants.SettlementCountdown,
	})
	c.transport.ToRoom(room.ID, EventRoomUpdated, room)

	if c.recorder != nil {
		c.recorder.Record(models.MatchResult{
			RoomID:   room.ID,
			RoomName: room.Name,
			Players:  players,
			Winner:   room.Winner,
			Reason:   reason,
			Board:    room.Board,
			Moves:    room.Board.Stones(),
			EndedAt:  c.registry.Now(),
		})
	}
}

func (c *Coordinator) refreshLobby() {
	list := c.registry.ListRooms()
	c.transport.Broadcast(EventLobbyRooms, list)
	if c.lobby != nil {
		c.lobby.Publish(list)
	}
}

// reject reports a refused command to the caller. A missing room or player is
// not worth a message outside the draw negotiation, so those are only logged.
func (c *Coordinator) reject(playerID, tag string, err error) {
	if rooms.IsNotFound(err) {
		log.Debugf("[%s] Player %s: %v, ignoring", tag, playerID, err)
		return
	}
	c.surface(playerID, tag, err)
}

// surface sends the reason to the caller as a bare string, whatever its kind
func (c *Coordinator) surface(playerID, tag string, err error) {
	switch {
	case rooms.IsValidation(err):
		log.Debugf("[%s-INVALID] Player %s: %v", tag, playerID, err)
	case rooms.IsPrecondition(err), rooms.IsNotFound(err):
		log.Debugf("[%s-REJECTED] Player %s: %v", tag, playerID, err)
	default:
		log.Warnf("[%s-ERROR] Player %s: %v", tag, playerID, err)
	}
	c.transport.ToPlayer(playerID, EventError, err.Error())
}
