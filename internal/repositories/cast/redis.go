package cast

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/KirkDiggler/werewolf/internal/models"
	"github.com/redis/go-redis/v9"
)

// guild cast plans live in a hash of role -> count
const castKeyPrefix = "werewolf:cast:"

// ErrCastNotFound is returned when a guild has never configured a cast
var ErrCastNotFound = errors.New("cast plan not found")

// Config holds configuration for the Redis cast repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed cast repository
func NewRedis(cfg *Config) (*redisRepository, error) {
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

// SaveCast replaces the stored plan. Roles with a zero count are not stored.
func (r *redisRepository) SaveCast(ctx context.Context, input *SaveCastInput) error {
	if input == nil || input.GuildID == "" {
		return errors.New("input and guild ID cannot be empty")
	}
	if err := input.Plan.Validate(); err != nil {
		return err
	}

	key := castKeyPrefix + input.GuildID

	values := make(map[string]interface{}, len(input.Plan))
	for role, count := range input.Plan {
		if count > 0 {
			values[string(role)] = count
		}
	}

	pipe := r.client.TxPipeline()
	pipe.Del(ctx, key)
	if len(values) > 0 {
		pipe.HSet(ctx, key, values)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save cast: %w", err)
	}

	return nil
}

// GetCast retrieves the stored plan. Unknown roles left over from older
// versions are skipped.
func (r *redisRepository) GetCast(ctx context.Context, input *GetCastInput) (models.CastPlan, error) {
	if input == nil || input.GuildID == "" {
		return nil, errors.New("input and guild ID cannot be empty")
	}

	key := castKeyPrefix + input.GuildID
	exists, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to check cast: %w", err)
	}
	if exists == 0 {
		return nil, ErrCastNotFound
	}

	fields, err := r.client.HGetAll(ctx, key).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get cast: %w", err)
	}

	plan := make(models.CastPlan, len(fields))
	for field, raw := range fields {
		role := models.Role(field)
		if !role.IsValid() {
			continue
		}
		count, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("failed to parse count for %s: %w", role, err)
		}
		plan[role] = count
	}

	return plan, nil
}
