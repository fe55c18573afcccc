package postgres

import (
	"time"

	"gorm.io/datatypes"
)

/*
 * 'MatchRecord' is a finished game, kept after the in-memory room has been reset.
 * The final board is stored as a jsonb matrix.
 */
type MatchRecord struct {
	ID        uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	RoomID    string         `gorm:"size:50;not null;index:idx_match_records_room" json:"roomId"`
	RoomName  string         `gorm:"size:100" json:"roomName"`
	BlackID   string         `gorm:"size:50;index" json:"blackId"` // seat 0, moves first
	WhiteID   string         `gorm:"size:50;index" json:"whiteId"`
	WinnerID  *string        `gorm:"size:50" json:"winnerId"`
	Reason    string         `gorm:"size:20;not null" json:"reason"`
	Moves     int            `gorm:"default:0" json:"moves"`
	Board     datatypes.JSON `gorm:"type:jsonb;default:'[]'" json:"board" swaggertype:"array,integer"`
	EndedAt   time.Time      `gorm:"index:idx_match_records_ended" json:"endedAt"`
	CreatedAt time.Time      `gorm:"default:CURRENT_TIMESTAMP" json:"createdAt"`
}
