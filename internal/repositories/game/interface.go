package game

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/werewolf/internal/repositories/game Repository

import (
	"context"

	"github.com/KirkDiggler/werewolf/internal/models"
)

// Repository defines the interface for finished game persistence
type Repository interface {
	// SaveRecord persists a finished game
	SaveRecord(ctx context.Context, input *SaveRecordInput) error

	// GetRecord retrieves a finished game by ID
	GetRecord(ctx context.Context, input *GetRecordInput) (*models.GameRecord, error)

	// ListRecords retrieves the most recent finished games of a guild, newest first
	ListRecords(ctx context.Context, input *ListRecordsInput) (*ListRecordsOutput, error)

	// DeleteRecord removes a finished game
	DeleteRecord(ctx context.Context, input *DeleteRecordInput) error
}
