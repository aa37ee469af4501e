package game

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/KirkDiggler/werewolf/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefixes for Redis
	recordKeyPrefix       = "werewolf:record:"
	guildRecordsKeyPrefix = "werewolf:guild_records:"

	// DefaultListLimit is used when ListRecords is called without a limit
	DefaultListLimit = 10
)

// ErrRecordNotFound is returned when a game record is not found
var ErrRecordNotFound = errors.New("game record not found")

// Config holds configuration for the Redis game repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed game repository
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

// SaveRecord persists a finished game and indexes it under its guild
func (r *redisRepository) SaveRecord(ctx context.Context, input *SaveRecordInput) error {
	if input == nil || input.Record == nil {
		return errors.New("input and record cannot be nil")
	}

	record := input.Record
	if record.ID == "" {
		return errors.New("record ID cannot be empty")
	}

	recordJSON, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to marshal record: %w", err)
	}

	pipe := r.client.TxPipeline()

	recordKey := fmt.Sprintf("%s%s", recordKeyPrefix, record.ID)
	pipe.Set(ctx, recordKey, recordJSON, 0)

	// Index by end time so history reads newest first
	if record.GuildID != "" {
		guildKey := fmt.Sprintf("%s%s", guildRecordsKeyPrefix, record.GuildID)
		pipe.ZAdd(ctx, guildKey, redis.Z{
			Score:  float64(record.EndedAt.UnixNano()),
			Member: record.ID,
		})
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save record: %w", err)
	}

	return nil
}

// GetRecord retrieves a finished game by ID from Redis
func (r *redisRepository) GetRecord(ctx context.Context, input *GetRecordInput) (*models.GameRecord, error) {
	if input == nil || input.RecordID == "" {
		return nil, errors.New("input and record ID cannot be empty")
	}

	recordKey := fmt.Sprintf("%s%s", recordKeyPrefix, input.RecordID)
	recordJSON, err := r.client.Get(ctx, recordKey).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrRecordNotFound
		}
		return nil, fmt.Errorf("failed to get record: %w", err)
	}

	var record models.GameRecord
	if err := json.Unmarshal([]byte(recordJSON), &record); err != nil {
		return nil, fmt.Errorf("failed to unmarshal record: %w", err)
	}

	return &record, nil
}

// ListRecords retrieves the newest finished games of a guild
func (r *redisRepository) ListRecords(ctx context.Context, input *ListRecordsInput) (*ListRecordsOutput, error) {
	if input == nil || input.GuildID == "" {
		return nil, errors.New("input and guild ID cannot be empty")
	}

	limit := input.Limit
	if limit <= 0 {
		limit = DefaultListLimit
	}

	guildKey := fmt.Sprintf("%s%s", guildRecordsKeyPrefix, input.GuildID)
	recordIDs, err := r.client.ZRevRange(ctx, guildKey, 0, int64(limit-1)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get record IDs for guild: %w", err)
	}

	if len(recordIDs) == 0 {
		return &ListRecordsOutput{
			Records: []*models.GameRecord{},
		}, nil
	}

	// Fetch all records in one round trip
	pipe := r.client.Pipeline()
	cmds := make([]*redis.StringCmd, len(recordIDs))
	for i, recordID := range recordIDs {
		cmds[i] = pipe.Get(ctx, fmt.Sprintf("%s%s", recordKeyPrefix, recordID))
	}

	// redis.Nil for a single missing key is reported here too; handled per command below
	if _, err := pipe.Exec(ctx); err != nil && !errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("failed to get records: %w", err)
	}

	records := make([]*models.GameRecord, 0, len(recordIDs))
	for i, cmd := range cmds {
		recordJSON, err := cmd.Result()
		if err != nil {
			if errors.Is(err, redis.Nil) {
				// Record was deleted between reading the index and fetching it
				continue
			}
			return nil, fmt.Errorf("failed to get record %s: %w", recordIDs[i], err)
		}

		var record models.GameRecord
		if err := json.Unmarshal([]byte(recordJSON), &record); err != nil {
			return nil, fmt.Errorf("failed to unmarshal record %s: %w", recordIDs[i], err)
		}

		records = append(records, &record)
	}

	return &ListRecordsOutput{
		Records: records,
	}, nil
}

// DeleteRecord removes a finished game and its guild index entry
func (r *redisRepository) DeleteRecord(ctx context.Context, input *DeleteRecordInput) error {
	if input == nil || input.RecordID == "" {
		return errors.New("input and record ID cannot be empty")
	}

	record, err := r.GetRecord(ctx, &GetRecordInput{
		RecordID: input.RecordID,
	})
	if err != nil {
		return err
	}

	pipe := r.client.TxPipeline()
	pipe.Del(ctx, fmt.Sprintf("%s%s", recordKeyPrefix, record.ID))
	if record.GuildID != "" {
		pipe.ZRem(ctx, fmt.Sprintf("%s%s", guildRecordsKeyPrefix, record.GuildID), record.ID)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete record: %w", err)
	}

	return nil
}
