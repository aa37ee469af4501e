package player

import "github.com/KirkDiggler/werewolf/internal/models"

// RecordResultInput contains parameters for recording a finished game
type RecordResultInput struct {
	GuildID    string
	PlayerID   string
	PlayerName string

	// Won is true when the player's faction won the game
	Won bool
}

// GetStatsInput contains parameters for retrieving a player's record
type GetStatsInput struct {
	GuildID  string
	PlayerID string
}

// GetLeaderboardInput contains parameters for retrieving a guild leaderboard
type GetLeaderboardInput struct {
	GuildID string

	// Limit caps the number of entries; zero means DefaultLeaderboardLimit
	Limit int
}

// GetLeaderboardOutput contains the ordered leaderboard
type GetLeaderboardOutput struct {
	Stats []*models.PlayerStats
}
