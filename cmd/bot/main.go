package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/KirkDiggler/werewolf/internal/common/clock"
	"github.com/KirkDiggler/werewolf/internal/common/random"
	"github.com/KirkDiggler/werewolf/internal/common/uuid"
	"github.com/KirkDiggler/werewolf/internal/config"
	"github.com/KirkDiggler/werewolf/internal/handlers/discord"
	"github.com/KirkDiggler/werewolf/internal/handlers/health"
	"github.com/KirkDiggler/werewolf/internal/logger"
	"github.com/KirkDiggler/werewolf/internal/repositories/cast"
	"github.com/KirkDiggler/werewolf/internal/repositories/game"
	"github.com/KirkDiggler/werewolf/internal/repositories/player"
	gameService "github.com/KirkDiggler/werewolf/internal/services/game"
	"github.com/KirkDiggler/werewolf/internal/services/messaging"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// shutdownTimeout bounds how long running games get to announce their end
const shutdownTimeout = 15 * time.Second

func main() {
	envFile := pflag.String("env-file", ".env", "optional file of environment variables")
	pflag.Parse()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, *envFile); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, envFile string) error {
	cfg, err := config.Load(envFile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	log, err := logger.New(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	// --- Redis ---
	redisClient, err := openRedis(ctx, cfg.RedisAddr, cfg.RedisPassword)
	if err != nil {
		return fmt.Errorf("connecting to redis: %w", err)
	}
	defer redisClient.Close()
	log.Info("connected to redis", zap.String("addr", cfg.RedisAddr))

	castRepo, err := cast.NewRedis(&cast.Config{RedisClient: redisClient})
	if err != nil {
		return fmt.Errorf("creating cast repository: %w", err)
	}

	gameRepo, err := game.NewRedis(&game.Config{RedisClient: redisClient})
	if err != nil {
		return fmt.Errorf("creating game repository: %w", err)
	}

	playerRepo, err := player.NewRedis(&player.Config{RedisClient: redisClient})
	if err != nil {
		return fmt.Errorf("creating player repository: %w", err)
	}

	// --- Discord ---
	session, err := discord.NewSession(cfg.DiscordToken)
	if err != nil {
		return err
	}

	rooms, err := discord.NewRooms(&discord.RoomsConfig{
		API:                   session,
		State:                 session.State,
		LobbyChannelID:        cfg.LobbyChannelID,
		LobbyName:             cfg.LobbyName,
		NotificationChannelID: cfg.NotificationChannelID,
		CategoryID:            cfg.CategoryID,
		Logger:                log.Named("rooms"),
	})
	if err != nil {
		return fmt.Errorf("creating rooms: %w", err)
	}

	// --- Game ---
	roller := random.New(&random.Config{Seed: cfg.RandomSeed})

	msgSvc, err := messaging.NewService(&messaging.ServiceConfig{Random: roller})
	if err != nil {
		return fmt.Errorf("creating messaging service: %w", err)
	}

	gameSvc, err := gameService.New(&gameService.Config{
		Rules: gameService.Rules{
			DayDuration:         cfg.DayDuration,
			EveningDuration:     cfg.EveningDuration,
			NightDuration:       cfg.NightDuration,
			AllowFirstNightKill: cfg.FirstNightKill,
		},
		Platforms:  rooms,
		Messaging:  msgSvc,
		Random:     roller,
		Clock:      &clock.DefaultClock{},
		UUID:       uuid.New(),
		CastRepo:   castRepo,
		GameRepo:   gameRepo,
		PlayerRepo: playerRepo,
		Logger:     log.Named("game"),
	})
	if err != nil {
		return fmt.Errorf("creating game service: %w", err)
	}

	bot, err := discord.New(&discord.Config{
		ApplicationID: cfg.ApplicationID,
		GuildID:       cfg.GuildID,
		Session:       session,
		GameService:   gameSvc,
		Messaging:     msgSvc,
		Rooms:         rooms,
		Logger:        log.Named("bot"),
	})
	if err != nil {
		return fmt.Errorf("creating bot: %w", err)
	}

	if err := bot.Start(); err != nil {
		return fmt.Errorf("starting bot: %w", err)
	}

	// --- Health ---
	srv := health.NewServer(cfg.HealthAddr, log.Named("health"), health.NewHandler(log, map[string]health.Checker{
		"redis":   redisChecker{redisClient},
		"discord": bot,
	}))

	// --- Run ---
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return srv.Run(gctx)
	})

	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutting down")

		closeCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		var errs []error
		if err := gameSvc.Close(closeCtx); err != nil {
			errs = append(errs, fmt.Errorf("closing games: %w", err))
		}
		if err := bot.Stop(); err != nil {
			errs = append(errs, fmt.Errorf("stopping bot: %w", err))
		}
		if err := srv.Shutdown(context.Background()); err != nil {
			errs = append(errs, fmt.Errorf("stopping health server: %w", err))
		}
		return errors.Join(errs...)
	})

	return g.Wait()
}

func openRedis(ctx context.Context, addr, password string) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("pinging redis: %w", err)
	}
	return client, nil
}

// redisChecker adapts *redis.Client to health.Checker
type redisChecker struct{ client *redis.Client }

func (r redisChecker) Check(ctx context.Context) error { return r.client.Ping(ctx).Err() }
