package history

import (
	"Gobang/models"
	"Gobang/models/postgres"
	"context"
	"encoding/json"
	"fmt"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	DefaultRecentLimit = 20
	MaxRecentLimit     = 100
)

// Store reads and writes finished games
type Store struct {
	DB *gorm.DB
}

func NewStore(db *gorm.DB) *Store {
	return &Store{DB: db}
}

// ToRecord converts a settled game into its database row
func ToRecord(result models.MatchResult) (*postgres.MatchRecord, error) {
	board, err := json.Marshal(result.Board)
	if err != nil {
		return nil, fmt.Errorf("error marshaling board: %w", err)
	}
	return &postgres.MatchRecord{
		RoomID:   result.RoomID,
		RoomName: result.RoomName,
		BlackID:  result.Players[0],
		WhiteID:  result.Players[1],
		WinnerID: result.Winner,
		Reason:   result.Reason,
		Moves:    result.Moves,
		Board:    datatypes.JSON(board),
		EndedAt:  result.EndedAt,
	}, nil
}

func (s *Store) Save(ctx context.Context, result models.MatchResult) (*postgres.MatchRecord, error) {
	record, err := ToRecord(result)
	if err != nil {
		return nil, err
	}
	if err := s.DB.WithContext(ctx).Create(record).Error; err != nil {
		return nil, fmt.Errorf("error saving match record: %w", err)
	}
	return record, nil
}

// Recent returns the newest records first. limit is clamped to 1..MaxRecentLimit,
// anything below 1 means DefaultRecentLimit.
func (s *Store) Recent(ctx context.Context, limit int) ([]postgres.MatchRecord, error) {
	limit = ClampLimit(limit)
	var records []postgres.MatchRecord
	err := s.DB.WithContext(ctx).
		Order("ended_at DESC").
		Limit(limit).
		Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("error listing match records: %w", err)
	}
	return records, nil
}

func ClampLimit(limit int) int {
	switch {
	case limit < 1:
		return DefaultRecentLimit
	case limit > MaxRecentLimit:
		return MaxRecentLimit
	}
	return limit
}
