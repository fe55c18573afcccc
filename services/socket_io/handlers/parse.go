package handlers

import (
	"Gobang/services/session"
	"errors"
	"fmt"
	"math"
)

// Inbound event names
const (
	EventGetRooms    = "lobby:getRooms"
	EventCreateRoom  = "lobby:createRoom"
	EventJoinRoom    = "lobby:joinRoom"
	EventSearchRoom  = "lobby:searchRoom"
	EventLobbyChat   = "lobby:chat"
	EventLeaveRoom   = "room:leave"
	EventSit         = "room:sit"
	EventStand       = "room:stand"
	EventRoomChat    = "room:chat"
	EventStartGame   = "game:start"
	EventMove        = "game:move"
	EventDrawRequest = "game:draw:request"
	EventDrawAccept  = "game:draw:accept"
	EventDrawReject  = "game:draw:reject"
	EventSurrender   = "game:surrender"
)

// InboundEvents are the client events that map to a session command
var InboundEvents = []string{
	EventGetRooms, EventCreateRoom, EventJoinRoom, EventSearchRoom, EventLobbyChat,
	EventLeaveRoom, EventSit, EventStand, EventRoomChat,
	EventStartGame, EventMove, EventDrawRequest, EventDrawAccept, EventDrawReject, EventSurrender,
}

var (
	ErrMissingArgument = errors.New("missing argument")
	ErrUnknownEvent    = errors.New("unknown event")
)

// ParseCommand turns a socket.io event and its decoded JSON arguments into a command
func ParseCommand(event string, args []interface{}) (session.Command, error) {
	switch event {
	case EventGetRooms:
		return session.ListRooms{}, nil
	case EventCreateRoom:
		// The name is optional, a blank one gets a default
		name, _ := optionalString(args, 0)
		return session.CreateRoom{Name: name}, nil
	case EventJoinRoom:
		roomID, err := stringArg(args, 0)
		if err != nil {
			return nil, err
		}
		return session.JoinRoom{RoomID: roomID}, nil
	case EventSearchRoom:
		keyword, _ := optionalString(args, 0)
		return session.SearchRooms{Keyword: keyword}, nil
	case EventLobbyChat:
		content, err := stringArg(args, 0)
		if err != nil {
			return nil, err
		}
		return session.LobbyChat{Content: content}, nil
	case EventLeaveRoom:
		return session.LeaveRoom{}, nil
	case EventSit:
		seat, err := intArg(args, 0)
		if err != nil {
			return nil, err
		}
		return session.Sit{Seat: seat}, nil
	case EventStand:
		return session.Stand{}, nil
	case EventRoomChat:
		content, err := stringArg(args, 0)
		if err != nil {
			return nil, err
		}
		return session.RoomChat{Content: content}, nil
	case EventStartGame:
		return session.StartGame{}, nil
	case EventMove:
		x, err := intArg(args, 0)
		if err != nil {
			return nil, err
		}
		y, err := intArg(args, 1)
		if err != nil {
			return nil, err
		}
		return session.Move{X: x, Y: y}, nil
	case EventDrawRequest:
		return session.RequestDraw{}, nil
	case EventDrawAccept:
		return session.AcceptDraw{}, nil
	case EventDrawReject:
		return session.RejectDraw{}, nil
	case EventSurrender:
		return session.Surrender{}, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownEvent, event)
}

func optionalString(args []interface{}, i int) (string, bool) {
	if i >= len(args) {
		return "", false
	}
	s, ok := args[i].(string)
	return s, ok
}

func stringArg(args []interface{}, i int) (string, error) {
	if i >= len(args) {
		return "", fmt.Errorf("%w: argument %d", ErrMissingArgument, i)
	}
	s, ok := args[i].(string)
	if !ok {
		return "", fmt.Errorf("argument %d: expected string, got %T", i, args[i])
	}
	return s, nil
}

// intArg accepts the float64 that JSON numbers decode to, as long as it is integral
func intArg(args []interface{}, i int) (int, error) {
	if i >= len(args) {
		return 0, fmt.Errorf("%w: argument %d", ErrMissingArgument, i)
	}
	switch v := args[i].(type) {
	case float64:
		if v != math.Trunc(v) || math.IsInf(v, 0) || math.IsNaN(v) {
			return 0, fmt.Errorf("argument %d: %v is not an integer", i, v)
		}
		if v > math.MaxInt32 || v < math.MinInt32 {
			return 0, fmt.Errorf("argument %d: %v out of range", i, v)
		}
		return int(v), nil
	case int:
		return v, nil
	case int64:
		return int(v), nil
	}
	return 0, fmt.Errorf("argument %d: expected number, got %T", i, args[i])
}
