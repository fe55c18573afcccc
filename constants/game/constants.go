package game_constants

import "time"

const BoardSize = 15
const WinLength = 5

// Cell value for an unoccupied intersection. Occupied cells hold the seat index (0 or 1).
const EmptyCell = -1

const SeatCount = 2
const MaxDrawRequests = 3 // NOTE: per player, per game
const MaxChatMessages = 100

// Settlement constants
const (
	SettlementWindow    = 10 * time.Second
	SettlementCountdown = 10 // seconds, sent to clients with game:settlement
	SweepInterval       = 1 * time.Second
)

// Termination reasons carried by game:ended
const REASON_WIN = "win"
const REASON_DRAW = "draw"
const REASON_ESCAPE = "escape"
