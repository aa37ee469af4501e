package game

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/werewolf/internal/services/game Service

import "context"

// Service defines the interface for game operations across guilds
type Service interface {
	// SetCast stores the role counts used by the next game of a guild
	SetCast(ctx context.Context, input *SetCastInput) (*SetCastOutput, error)

	// GetCast returns the configured role counts of a guild
	GetCast(ctx context.Context, input *GetCastInput) (*GetCastOutput, error)

	// JoinLobby adds a player to the entry pool
	JoinLobby(ctx context.Context, input *JoinLobbyInput) (*JoinLobbyOutput, error)

	// LeaveLobby removes a player from the entry pool
	LeaveLobby(ctx context.Context, input *LeaveLobbyInput) (*LeaveLobbyOutput, error)

	// StartGame deals roles and starts the phase loop
	StartGame(ctx context.Context, input *StartGameInput) (*StartGameOutput, error)

	// StopGame asks the running game to end on its next tick
	StopGame(ctx context.Context, input *StopGameInput) (*StopGameOutput, error)

	// SubmitAction records a vote, inspection, protection or kill
	SubmitAction(ctx context.Context, input *SubmitActionInput) (*SubmitActionOutput, error)

	// GetGameStatus returns a snapshot of a guild's game
	GetGameStatus(ctx context.Context, input *GetGameStatusInput) (*GetGameStatusOutput, error)

	// GetPlayerStats returns a player's record in a guild
	GetPlayerStats(ctx context.Context, input *GetPlayerStatsInput) (*GetPlayerStatsOutput, error)

	// GetLeaderboard returns the guild's players ordered by wins
	GetLeaderboard(ctx context.Context, input *GetLeaderboardInput) (*GetLeaderboardOutput, error)

	// GetHistory returns the most recent finished games of a guild
	GetHistory(ctx context.Context, input *GetHistoryInput) (*GetHistoryOutput, error)

	// Close force-stops every running game and waits for them to finish
	Close(ctx context.Context) error
}
