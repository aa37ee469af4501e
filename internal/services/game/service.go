package game

import (
	"context"
	"errors"
	"fmt"
	"sync"
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
	"golang.org/x/sync/singleflight"
)

// service implements the Service interface with one engine per guild
type service struct {
	rules          Rules
	callTimeout    time.Duration
	maxConcurrency int

	platforms  PlatformProvider
	messaging  messaging.Service
	random     random.Source
	clock      clock.Clock
	uuid       uuid.UUID
	castRepo   castRepo.Repository
	gameRepo   gameRepo.Repository
	playerRepo playerRepo.Repository
	logger     *zap.Logger

	mu      sync.RWMutex
	engines map[string]*Engine
	closed  bool

	// opening collapses concurrent first lookups of a guild into one open
	opening singleflight.Group

	// runCtx is cancelled by Close to stop every game loop
	runCtx    context.Context
	cancelRun context.CancelFunc
	running   sync.WaitGroup
}

// New creates a new game service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.Platforms == nil {
		return nil, ErrNilPlatformProvider
	}
	if cfg.Messaging == nil {
		return nil, ErrNilMessaging
	}
	if cfg.Random == nil {
		return nil, ErrNilRandom
	}
	if cfg.Clock == nil {
		return nil, ErrNilClock
	}
	if cfg.UUID == nil {
		return nil, ErrNilUUIDGenerator
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	runCtx, cancel := context.WithCancel(context.Background())

	return &service{
		rules:          cfg.Rules.withDefaults(),
		callTimeout:    cfg.CallTimeout,
		maxConcurrency: cfg.MaxConcurrency,
		platforms:      cfg.Platforms,
		messaging:      cfg.Messaging,
		random:         cfg.Random,
		clock:          cfg.Clock,
		uuid:           cfg.UUID,
		castRepo:       cfg.CastRepo,
		gameRepo:       cfg.GameRepo,
		playerRepo:     cfg.PlayerRepo,
		logger:         logger,
		engines:        make(map[string]*Engine),
		runCtx:         runCtx,
		cancelRun:      cancel,
	}, nil
}

// engine returns the guild's engine, creating and seeding it on first use
func (s *service) engine(ctx context.Context, guildID string) (*Engine, error) {
	if guildID == "" {
		return nil, ErrMissingGuildID
	}

	s.mu.RLock()
	e, ok := s.engines[guildID]
	closed := s.closed
	s.mu.RUnlock()
	if closed {
		return nil, ErrServiceClosed
	}
	if ok {
		return e, nil
	}

	// Opening talks to discord and redis, so it runs without the lock and
	// other guilds stay reachable meanwhile
	v, err, _ := s.opening.Do(guildID, func() (any, error) {
		e, err := s.open(ctx, guildID)
		if err != nil {
			return nil, err
		}

		s.mu.Lock()
		defer s.mu.Unlock()

		if s.closed {
			return nil, ErrServiceClosed
		}
		if existing, ok := s.engines[guildID]; ok {
			return existing, nil
		}
		s.engines[guildID] = e
		return e, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*Engine), nil
}

func (s *service) open(ctx context.Context, guildID string) (*Engine, error) {
	platform, err := s.platforms.ForGuild(ctx, guildID)
	if err != nil {
		return nil, fmt.Errorf("opening platform for guild %q: %w", guildID, err)
	}

	e, err := NewEngine(&EngineConfig{
		GuildID:        guildID,
		Rules:          s.rules,
		CallTimeout:    s.callTimeout,
		MaxConcurrency: s.maxConcurrency,
		Platform:       platform,
		Messaging:      s.messaging,
		Random:         s.random,
		Clock:          s.clock,
		UUID:           s.uuid,
		GameRepo:       s.gameRepo,
		PlayerRepo:     s.playerRepo,
		Logger:         s.logger,
	})
	if err != nil {
		return nil, err
	}

	if s.castRepo != nil {
		plan, err := s.castRepo.GetCast(ctx, &castRepo.GetCastInput{GuildID: guildID})
		switch {
		case err == nil:
			if err := e.SetCast(plan); err != nil {
				s.logger.Warn("ignoring stored cast", zap.String("guild_id", guildID), zap.Error(err))
			}
		case errors.Is(err, castRepo.ErrCastNotFound):
		default:
			s.logger.Warn("failed to load cast", zap.String("guild_id", guildID), zap.Error(err))
		}
	}

	if err := e.SeedEntries(ctx); err != nil {
		s.logger.Warn("failed to seed entries", zap.String("guild_id", guildID), zap.Error(err))
	}

	return e, nil
}

// SetCast stores the role counts used by the next game of a guild
func (s *service) SetCast(ctx context.Context, input *SetCastInput) (*SetCastOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}
	if err := input.Plan.Validate(); err != nil {
		return nil, err
	}

	e, err := s.engine(ctx, input.GuildID)
	if err != nil {
		return nil, err
	}

	if s.castRepo != nil {
		err := s.castRepo.SaveCast(ctx, &castRepo.SaveCastInput{
			GuildID: input.GuildID,
			Plan:    input.Plan,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to save cast: %w", err)
		}
	}

	if err := e.SetCast(input.Plan); err != nil {
		return nil, err
	}

	return &SetCastOutput{
		Plan: e.Cast(),
	}, nil
}

// GetCast returns the configured role counts of a guild
func (s *service) GetCast(ctx context.Context, input *GetCastInput) (*GetCastOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	e, err := s.engine(ctx, input.GuildID)
	if err != nil {
		return nil, err
	}

	return &GetCastOutput{
		Plan: e.Cast(),
	}, nil
}

// JoinLobby adds a player to the entry pool
func (s *service) JoinLobby(ctx context.Context, input *JoinLobbyInput) (*JoinLobbyOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}
	if input.PlayerID == "" {
		return nil, models.ErrUnknownPlayer
	}

	e, err := s.engine(ctx, input.GuildID)
	if err != nil {
		return nil, err
	}

	return &JoinLobbyOutput{
		Added: e.Register(models.Entrant{ID: input.PlayerID, Name: input.PlayerName}),
	}, nil
}

// LeaveLobby removes a player from the entry pool
func (s *service) LeaveLobby(ctx context.Context, input *LeaveLobbyInput) (*LeaveLobbyOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	e, err := s.engine(ctx, input.GuildID)
	if err != nil {
		return nil, err
	}

	return &LeaveLobbyOutput{
		Removed: e.Unregister(input.PlayerID),
	}, nil
}

// StartGame deals roles and runs the phase loop in the background
func (s *service) StartGame(ctx context.Context, input *StartGameInput) (*StartGameOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	e, err := s.engine(ctx, input.GuildID)
	if err != nil {
		return nil, err
	}

	// The engine outlives the request that started it
	gameID, err := e.Start(context.WithoutCancel(ctx))
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		_ = e.Stop()
		e.Tick(context.WithoutCancel(ctx))
		return nil, ErrServiceClosed
	}
	s.running.Add(1)
	s.mu.Unlock()

	go func() {
		defer s.running.Done()
		e.Run(s.runCtx)
	}()

	return &StartGameOutput{
		GameID:  gameID,
		Players: len(e.Status().Players),
	}, nil
}

// StopGame asks the running game to end on its next tick
func (s *service) StopGame(ctx context.Context, input *StopGameInput) (*StopGameOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	e, err := s.engine(ctx, input.GuildID)
	if err != nil {
		return nil, err
	}

	if err := e.Stop(); err != nil {
		return nil, err
	}

	return &StopGameOutput{}, nil
}

// SubmitAction records a vote, inspection, protection or kill
func (s *service) SubmitAction(ctx context.Context, input *SubmitActionInput) (*SubmitActionOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	e, err := s.engine(ctx, input.GuildID)
	if err != nil {
		return nil, err
	}

	if err := e.Submit(input.Submission); err != nil {
		return nil, err
	}

	return &SubmitActionOutput{
		Accepted: true,
	}, nil
}

// GetGameStatus returns a snapshot of a guild's game
func (s *service) GetGameStatus(ctx context.Context, input *GetGameStatusInput) (*GetGameStatusOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	e, err := s.engine(ctx, input.GuildID)
	if err != nil {
		return nil, err
	}

	return &GetGameStatusOutput{
		Status: e.Status(),
	}, nil
}

// GetPlayerStats returns a player's record in a guild
func (s *service) GetPlayerStats(ctx context.Context, input *GetPlayerStatsInput) (*GetPlayerStatsOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}
	if input.GuildID == "" {
		return nil, ErrMissingGuildID
	}

	// Without storage every player has an empty record
	if s.playerRepo == nil {
		return &GetPlayerStatsOutput{
			Stats: &models.PlayerStats{PlayerID: input.PlayerID},
		}, nil
	}

	stats, err := s.playerRepo.GetStats(ctx, &playerRepo.GetStatsInput{
		GuildID:  input.GuildID,
		PlayerID: input.PlayerID,
	})
	if errors.Is(err, playerRepo.ErrPlayerNotFound) {
		return &GetPlayerStatsOutput{
			Stats: &models.PlayerStats{PlayerID: input.PlayerID},
		}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get player stats: %w", err)
	}

	return &GetPlayerStatsOutput{
		Stats: stats,
	}, nil
}

// GetLeaderboard returns the guild's players ordered by wins
func (s *service) GetLeaderboard(ctx context.Context, input *GetLeaderboardInput) (*GetLeaderboardOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}
	if input.GuildID == "" {
		return nil, ErrMissingGuildID
	}

	if s.playerRepo == nil {
		return &GetLeaderboardOutput{Stats: []*models.PlayerStats{}}, nil
	}

	board, err := s.playerRepo.GetLeaderboard(ctx, &playerRepo.GetLeaderboardInput{
		GuildID: input.GuildID,
		Limit:   input.Limit,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get leaderboard: %w", err)
	}

	return &GetLeaderboardOutput{
		Stats: board.Stats,
	}, nil
}

// GetHistory returns the most recent finished games of a guild
func (s *service) GetHistory(ctx context.Context, input *GetHistoryInput) (*GetHistoryOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}
	if input.GuildID == "" {
		return nil, ErrMissingGuildID
	}

	if s.gameRepo == nil {
		return &GetHistoryOutput{Records: []*models.GameRecord{}}, nil
	}

	out, err := s.gameRepo.ListRecords(ctx, &gameRepo.ListRecordsInput{
		GuildID: input.GuildID,
		Limit:   input.Limit,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get history: %w", err)
	}

	return &GetHistoryOutput{
		Records: out.Records,
	}, nil
}

// Close force-stops every running game and waits until their final
// announcements are delivered or ctx expires
func (s *service) Close(ctx context.Context) error {
	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()

	s.cancelRun()

	done := make(chan struct{})
	go func() {
		s.running.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
