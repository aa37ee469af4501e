package player

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/werewolf/internal/repositories/player Repository

import (
	"context"

	"github.com/KirkDiggler/werewolf/internal/models"
)

// Repository defines the interface for player statistics persistence
type Repository interface {
	// RecordResult adds one finished game to a player's record
	RecordResult(ctx context.Context, input *RecordResultInput) error

	// GetStats retrieves a player's record in a guild
	GetStats(ctx context.Context, input *GetStatsInput) (*models.PlayerStats, error)

	// GetLeaderboard retrieves the players of a guild ordered by wins
	GetLeaderboard(ctx context.Context, input *GetLeaderboardInput) (*GetLeaderboardOutput, error)
}
