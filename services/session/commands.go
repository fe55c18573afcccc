package session

// Command is the closed set of things a player can ask for. Only types of this
// package implement it.
type Command interface {
	isCommand()
}

// Lobby scoped
type (
	ListRooms   struct{}
	SearchRooms struct{ Keyword string }
	CreateRoom  struct{ Name string }
	JoinRoom    struct{ RoomID string }
	LobbyChat   struct{ Content string }
)

// Room scoped, resolved against the room the caller is in
type (
	LeaveRoom   struct{}
	Sit         struct{ Seat int }
	Stand       struct{}
	StartGame   struct{}
	Move        struct{ X, Y int }
	RequestDraw struct{}
	AcceptDraw  struct{}
	RejectDraw  struct{}
	Surrender   struct{}
	RoomChat    struct{ Content string }
)

// Connection lifecycle
type (
	Connect    struct{}
	Disconnect struct{}
)

// ResetSettlement is queued by the settlement sweeper, not by a player
type ResetSettlement struct{ RoomID string }

func (ListRooms) isCommand()   {}
func (SearchRooms) isCommand() {}
func (CreateRoom) isCommand()  {}
func (JoinRoom) isCommand()    {}
func (LobbyChat) isCommand()   {}
func (LeaveRoom) isCommand()   {}
func (Sit) isCommand()         {}
func (Stand) isCommand()       {}
func (StartGame) isCommand()   {}
func (Move) isCommand()        {}
func (RequestDraw) isCommand() {}
func (AcceptDraw) isCommand()  {}
func (RejectDraw) isCommand()  {}
func (Surrender) isCommand()   {}
func (RoomChat) isCommand()    {}
func (Connect) isCommand()     {}
func (Disconnect) isCommand()  {}

func (ResetSettlement) isCommand() {}

// Envelope is a command together with the player that issued it
type Envelope struct {
	PlayerID string
	Command  Command
}
