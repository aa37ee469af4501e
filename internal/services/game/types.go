package game

import (
	"time"

	"github.com/KirkDiggler/werewolf/internal/common/clock"
	"github.com/KirkDiggler/werewolf/internal/common/random"
	"github.com/KirkDiggler/werewolf/internal/common/uuid"
	"github.com/KirkDiggler/werewolf/internal/models"
	castRepo "github.com/KirkDiggler/werewolf/internal/repositories/cast"
	gameRepo "github.com/KirkDiggler/werewolf/internal/repositories/game"
	playerRepo "github.com/KirkDiggler/werewolf/internal/repositories/player"
	"github.com/KirkDiggler/werewolf/internal/services/messaging"
	"go.uber.org/zap"
)

const (
	DefaultDayDuration     = 240 * time.Second
	DefaultEveningDuration = 60 * time.Second
	DefaultNightDuration   = 120 * time.Second
	DefaultTickInterval    = time.Second
	DefaultCallTimeout     = 10 * time.Second
	DefaultMaxConcurrency  = 8
)

// Rules holds the timing and ruleset of a game
type Rules struct {
	DayDuration     time.Duration
	EveningDuration time.Duration
	NightDuration   time.Duration

	// TickInterval is how long one countdown step lasts
	TickInterval time.Duration

	// AllowFirstNightKill lets the werewolves kill on day 0
	AllowFirstNightKill bool
}

func (r Rules) withDefaults() Rules {
	if r.DayDuration <= 0 {
		r.DayDuration = DefaultDayDuration
	}
	if r.EveningDuration <= 0 {
		r.EveningDuration = DefaultEveningDuration
	}
	if r.NightDuration <= 0 {
		r.NightDuration = DefaultNightDuration
	}
	if r.TickInterval <= 0 {
		r.TickInterval = DefaultTickInterval
	}
	return r
}

// EngineConfig holds configuration for a single guild's engine
type EngineConfig struct {
	GuildID string
	Rules   Rules

	// CallTimeout bounds each notify, move and mute call
	CallTimeout time.Duration

	// MaxConcurrency caps parallel room moves and mutes
	MaxConcurrency int

	// Platform delivers messages and moves players
	Platform *Platform

	Messaging messaging.Service
	Random    random.Source
	Clock     clock.Clock
	UUID      uuid.UUID

	// Optional persistence of finished games and player stats
	GameRepo   gameRepo.Repository
	PlayerRepo playerRepo.Repository

	// Logger defaults to a no-op logger
	Logger *zap.Logger
}

// Config holds configuration for the game service
type Config struct {
	Rules          Rules
	CallTimeout    time.Duration
	MaxConcurrency int

	// Platforms hands out the notifier and rooms for each guild
	Platforms PlatformProvider

	Messaging messaging.Service
	Random    random.Source
	Clock     clock.Clock
	UUID      uuid.UUID

	// Optional repositories
	CastRepo   castRepo.Repository
	GameRepo   gameRepo.Repository
	PlayerRepo playerRepo.Repository

	Logger *zap.Logger
}

// Submission is one secret action sent by a player
type Submission struct {
	PlayerID string
	Action   models.ActionType

	// Token is copied from the prompt the player answered
	Token    models.Token
	TargetID string
}

// Status is a snapshot of a guild's game
type Status struct {
	GameID      string
	Phase       models.Phase
	Day         int
	SecondsLeft int

	// Players is empty while waiting
	Players []*models.Player

	// Entries is the lobby pool while waiting
	Entries []models.Entrant

	Cast models.CastPlan
}

// SetCastInput contains parameters for configuring the cast of a guild
type SetCastInput struct {
	GuildID string
	Plan    models.CastPlan
}

// SetCastOutput contains the stored cast
type SetCastOutput struct {
	Plan models.CastPlan
}

// GetCastInput contains parameters for reading the cast of a guild
type GetCastInput struct {
	GuildID string
}

// GetCastOutput contains the configured cast
type GetCastOutput struct {
	Plan models.CastPlan
}

// JoinLobbyInput contains parameters for adding an entrant to the pool
type JoinLobbyInput struct {
	GuildID    string
	PlayerID   string
	PlayerName string
}

// JoinLobbyOutput contains the result of joining the pool
type JoinLobbyOutput struct {
	// Added is false when the player was already in the pool or a game is running
	Added bool
}

// LeaveLobbyInput contains parameters for removing an entrant from the pool
type LeaveLobbyInput struct {
	GuildID  string
	PlayerID string
}

// LeaveLobbyOutput contains the result of leaving the pool
type LeaveLobbyOutput struct {
	Removed bool
}

// StartGameInput contains parameters for starting a game
type StartGameInput struct {
	GuildID string
}

// StartGameOutput contains the result of starting a game
type StartGameOutput struct {
	GameID  string
	Players int
}

// StopGameInput contains parameters for force-stopping a game
type StopGameInput struct {
	GuildID string
}

// StopGameOutput contains the result of a force-stop request
type StopGameOutput struct{}

// SubmitActionInput contains a player's secret action
type SubmitActionInput struct {
	GuildID string
	Submission
}

// SubmitActionOutput contains the result of a submission
type SubmitActionOutput struct {
	Accepted bool
}

// GetGameStatusInput contains parameters for querying a game
type GetGameStatusInput struct {
	GuildID string
}

// GetGameStatusOutput contains the game snapshot
type GetGameStatusOutput struct {
	Status *Status
}

// GetPlayerStatsInput contains parameters for reading a player's record
type GetPlayerStatsInput struct {
	GuildID  string
	PlayerID string
}

// GetPlayerStatsOutput contains a player's record
type GetPlayerStatsOutput struct {
	Stats *models.PlayerStats
}

// GetLeaderboardInput contains parameters for reading the guild leaderboard
type GetLeaderboardInput struct {
	GuildID string
	Limit   int
}

// GetLeaderboardOutput contains the guild leaderboard
type GetLeaderboardOutput struct {
	Stats []*models.PlayerStats
}

// GetHistoryInput contains parameters for reading finished games
type GetHistoryInput struct {
	GuildID string
	Limit   int
}

// GetHistoryOutput contains finished games, newest first
type GetHistoryOutput struct {
	Records []*models.GameRecord
}
