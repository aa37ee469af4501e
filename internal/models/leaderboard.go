package models

// PlayerStats is a player's record across finished games
type PlayerStats struct {
	// PlayerID is the Discord user ID of the player
	PlayerID string

	// PlayerName is the most recent display name of the player
	PlayerName string

	// Games is the number of finished games played
	Games int

	// Wins is the number of games the player's faction won
	Wins int

	// Losses is the number of games the player's faction lost
	Losses int
}
