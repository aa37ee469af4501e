package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config is read from the environment, optionally seeded from a .env file
type Config struct {
	DiscordToken          string `env:"DISCORD_TOKEN,required,notEmpty"`
	ApplicationID         string `env:"DISCORD_APPLICATION_ID"`
	GuildID               string `env:"DISCORD_GUILD_ID"`
	LobbyChannelID        string `env:"LOBBY_CHANNEL_ID"`
	LobbyName             string `env:"LOBBY_NAME" envDefault:"werewolf"`
	NotificationChannelID string `env:"NOTIFICATION_CHANNEL_ID"`
	CategoryID            string `env:"GAME_CATEGORY_ID"`

	RedisAddr     string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPassword string `env:"REDIS_PASSWORD"`

	LogLevel   string `env:"LOG_LEVEL" envDefault:"info"`
	HealthAddr string `env:"HEALTH_ADDR" envDefault:":8080"`

	DayDuration     time.Duration `env:"DAY_DURATION" envDefault:"240s"`
	EveningDuration time.Duration `env:"EVENING_DURATION" envDefault:"60s"`
	NightDuration   time.Duration `env:"NIGHT_DURATION" envDefault:"120s"`
	FirstNightKill  bool          `env:"FIRST_NIGHT_KILL" envDefault:"false"`

	// RandomSeed of zero seeds from the clock
	RandomSeed int64 `env:"RANDOM_SEED" envDefault:"0"`
}

// Load reads envFile when it exists and then parses the environment.
// Variables already set in the environment win over the file.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("loading %s: %w", envFile, err)
		}
	}

	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return nil, fmt.Errorf("parsing environment: %w", err)
	}

	for name, d := range map[string]time.Duration{
		"DAY_DURATION":     cfg.DayDuration,
		"EVENING_DURATION": cfg.EveningDuration,
		"NIGHT_DURATION":   cfg.NightDuration,
	} {
		if d < time.Second {
			return nil, fmt.Errorf("%s must be at least 1s, got %s", name, d)
		}
	}

	return &cfg, nil
}
