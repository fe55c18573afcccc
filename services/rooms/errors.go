package rooms

import "errors"

// Kind classifies why the registry refused an operation
type Kind int

const (
	// Malformed input, refused before any room is looked at
	KindValidation Kind = iota
	// The room or the player is not in a state that allows the operation
	KindPrecondition
	// Unknown room, or a player that is not in any room
	KindNotFound
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindPrecondition:
		return "precondition"
	case KindNotFound:
		return "not_found"
	}
	return "unknown"
}

// Error is a rejection. A rejected operation never leaves partial changes behind.
type Error struct {
	Kind   Kind
	Reason string
}

func (e *Error) Error() string {
	return e.Reason
}

var (
	ErrInvalidSeat        = &Error{KindValidation, "invalid seat index"}
	ErrInvalidCoordinates = &Error{KindValidation, "coordinates outside the board"}
	ErrEmptyMessage       = &Error{KindValidation, "empty message"}

	ErrRoomNotFound = &Error{KindNotFound, "room not found"}
	ErrNotInRoom    = &Error{KindNotFound, "you are not in a room"}

	ErrAlreadyInRoom  = &Error{KindPrecondition, "already in another room"}
	ErrAlreadySeated  = &Error{KindPrecondition, "you are already seated"}
	ErrSeatOccupied   = &Error{KindPrecondition, "seat is already taken"}
	ErrNotSeated      = &Error{KindPrecondition, "you are not a player in this room"}
	ErrNotIdle        = &Error{KindPrecondition, "a game can only be started from an idle room"}
	ErrSeatsNotFilled = &Error{KindPrecondition, "both seats must be taken to start"}
	ErrNotPlaying     = &Error{KindPrecondition, "game has not started"}
	ErrNotYourTurn    = &Error{KindPrecondition, "not your turn"}
	ErrCellOccupied   = &Error{KindPrecondition, "cell already occupied"}
	ErrDrawLimit      = &Error{KindPrecondition, "no draw requests left for this game"}
	ErrDrawPending    = &Error{KindPrecondition, "you already have a pending draw request"}
	ErrNoDrawRequest  = &Error{KindPrecondition, "opponent has no pending draw request"}
	ErrNoOpponent     = &Error{KindPrecondition, "there is no opponent"}
	ErrNotFinished    = &Error{KindPrecondition, "room is not in settlement"}
)

func kindOf(err error) (Kind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return 0, false
}

func IsValidation(err error) bool {
	k, ok := kindOf(err)
	return ok && k == KindValidation
}

func IsPrecondition(err error) bool {
	k, ok := kindOf(err)
	return ok && k == KindPrecondition
}

func IsNotFound(err error) bool {
	k, ok := kindOf(err)
	return ok && k == KindNotFound
}
