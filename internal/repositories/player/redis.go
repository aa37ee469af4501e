package player

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/KirkDiggler/werewolf/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefixes for Redis
	statsKeyPrefix     = "werewolf:stats:"
	guildWinsKeyPrefix = "werewolf:guild_wins:"

	fieldName   = "name"
	fieldGames  = "games"
	fieldWins   = "wins"
	fieldLosses = "losses"

	// DefaultLeaderboardLimit is used when GetLeaderboard is called without a limit
	DefaultLeaderboardLimit = 10
)

// ErrPlayerNotFound is returned when a player has no recorded games
var ErrPlayerNotFound = errors.New("player not found")

// Config holds configuration for the Redis player repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed player repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	// Validate config
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	// Test connection
	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisRepository{
		client: cfg.RedisClient,
	}, nil
}

func statsKey(guildID, playerID string) string {
	return fmt.Sprintf("%s%s:%s", statsKeyPrefix, guildID, playerID)
}

// RecordResult increments the player's counters and the guild wins index
func (r *redisRepository) RecordResult(ctx context.Context, input *RecordResultInput) error {
	if input == nil || input.GuildID == "" || input.PlayerID == "" {
		return errors.New("input, guild ID and player ID cannot be empty")
	}

	key := statsKey(input.GuildID, input.PlayerID)
	winsKey := fmt.Sprintf("%s%s", guildWinsKeyPrefix, input.GuildID)

	pipe := r.client.TxPipeline()
	if input.PlayerName != "" {
		pipe.HSet(ctx, key, fieldName, input.PlayerName)
	}
	pipe.HIncrBy(ctx, key, fieldGames, 1)

	won := 0.0
	if input.Won {
		pipe.HIncrBy(ctx, key, fieldWins, 1)
		won = 1
	} else {
		pipe.HIncrBy(ctx, key, fieldLosses, 1)
	}
	// Incrementing by zero still adds the member, so losers appear on the board
	pipe.ZIncrBy(ctx, winsKey, won, input.PlayerID)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to record result: %w", err)
	}

	return nil
}

// GetStats retrieves a player's record in a guild
func (r *redisRepository) GetStats(ctx context.Context, input *GetStatsInput) (*models.PlayerStats, error) {
	if input == nil || input.GuildID == "" || input.PlayerID == "" {
		return nil, errors.New("input, guild ID and player ID cannot be empty")
	}

	fields, err := r.client.HGetAll(ctx, statsKey(input.GuildID, input.PlayerID)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get stats: %w", err)
	}
	if len(fields) == 0 {
		return nil, ErrPlayerNotFound
	}

	return parseStats(input.PlayerID, fields)
}

// GetLeaderboard retrieves the players of a guild ordered by wins, highest first
func (r *redisRepository) GetLeaderboard(ctx context.Context, input *GetLeaderboardInput) (*GetLeaderboardOutput, error) {
	if input == nil || input.GuildID == "" {
		return nil, errors.New("input and guild ID cannot be empty")
	}

	limit := input.Limit
	if limit <= 0 {
		limit = DefaultLeaderboardLimit
	}

	winsKey := fmt.Sprintf("%s%s", guildWinsKeyPrefix, input.GuildID)
	playerIDs, err := r.client.ZRevRange(ctx, winsKey, 0, int64(limit-1)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get leaderboard: %w", err)
	}

	if len(playerIDs) == 0 {
		return &GetLeaderboardOutput{
			Stats: []*models.PlayerStats{},
		}, nil
	}

	// Fetch every record in one round trip
	pipe := r.client.Pipeline()
	cmds := make([]*redis.MapStringStringCmd, len(playerIDs))
	for i, playerID := range playerIDs {
		cmds[i] = pipe.HGetAll(ctx, statsKey(input.GuildID, playerID))
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, fmt.Errorf("failed to get leaderboard stats: %w", err)
	}

	stats := make([]*models.PlayerStats, 0, len(playerIDs))
	for i, cmd := range cmds {
		fields := cmd.Val()
		if len(fields) == 0 {
			continue
		}

		entry, err := parseStats(playerIDs[i], fields)
		if err != nil {
			return nil, err
		}
		stats = append(stats, entry)
	}

	return &GetLeaderboardOutput{
		Stats: stats,
	}, nil
}

func parseStats(playerID string, fields map[string]string) (*models.PlayerStats, error) {
	stats := &models.PlayerStats{
		PlayerID:   playerID,
		PlayerName: fields[fieldName],
	}

	counters := []struct {
		field string
		dest  *int
	}{
		{fieldGames, &stats.Games},
		{fieldWins, &stats.Wins},
		{fieldLosses, &stats.Losses},
	}
	for _, c := range counters {
		raw, ok := fields[c.field]
		if !ok {
			continue
		}
		value, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s for player %s: %w", c.field, playerID, err)
		}
		*c.dest = value
	}

	return stats, nil
}
