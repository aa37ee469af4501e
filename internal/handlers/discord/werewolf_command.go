package discord

import (
	"context"
	"errors"
	"fmt"

	"github.com/KirkDiggler/werewolf/internal/models"
	"github.com/KirkDiggler/werewolf/internal/services/game"
	"github.com/KirkDiggler/werewolf/internal/services/messaging"
	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"
)

// WerewolfCommand handles the /werewolf command
type WerewolfCommand struct {
	BaseCommand
	gameService game.Service
	messaging   messaging.Service
	logger      *zap.Logger
}

// NewWerewolfCommand creates a new werewolf command handler
func NewWerewolfCommand(gameService game.Service, messagingService messaging.Service, logger *zap.Logger) *WerewolfCommand {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &WerewolfCommand{
		BaseCommand: BaseCommand{
			Name:        "werewolf",
			Description: "Werewolf party game commands",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "join",
					Description: "Join the next game",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "leave",
					Description: "Leave the lobby before the game starts",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "cast",
					Description: "Show or change how many players get each role",
					Options:     castOptions(),
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "start",
					Description: "Deal roles to the lobby and start the game",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "stop",
					Description: "Stop the running game",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "status",
					Description: "Show the current phase and players",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "stats",
					Description: "Show a player's record",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionUser,
							Name:        "player",
							Description: "Player to look up (defaults to you)",
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "leaderboard",
					Description: "Show the players with the most wins",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "history",
					Description: "Show recent games",
				},
			},
		},
		gameService: gameService,
		messaging:   messagingService,
		logger:      logger,
	}
}

// operatorSubcommands change or run the guild's game
var operatorSubcommands = map[string]bool{
	"cast":  true,
	"start": true,
	"stop":  true,
}

// isOperator reports whether the member may run operator subcommands
func isOperator(member *discordgo.Member) bool {
	if member == nil {
		return false
	}
	return member.Permissions&(discordgo.PermissionAdministrator|discordgo.PermissionManageServer) != 0
}

// castOptions has one optional count per role
func castOptions() []*discordgo.ApplicationCommandOption {
	zero := 0.0
	options := make([]*discordgo.ApplicationCommandOption, 0, len(models.Roles()))
	for _, role := range models.Roles() {
		options = append(options, &discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionInteger,
			Name:        string(role),
			Description: fmt.Sprintf("Number of %s players", messaging.RoleName(role)),
			MinValue:    &zero,
		})
	}
	return options
}

// castFromOptions builds a plan from the cast subcommand's options. Roles
// that were not given keep their current count.
func castFromOptions(current models.CastPlan, options []*discordgo.ApplicationCommandInteractionDataOption) (models.CastPlan, bool) {
	plan := current.Clone()
	changed := false
	for _, opt := range options {
		role := models.Role(opt.Name)
		if !role.IsValid() || opt.Type != discordgo.ApplicationCommandOptionInteger {
			continue
		}
		plan[role] = int(opt.IntValue())
		changed = true
	}
	return plan, changed
}

// Handle processes a Discord interaction for the werewolf command
func (c *WerewolfCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	if i.Type != discordgo.InteractionApplicationCommand {
		return nil
	}

	data := i.ApplicationCommandData()
	if data.Name != c.Name || len(data.Options) == 0 {
		return nil
	}

	if i.GuildID == "" || i.Member == nil {
		return RespondWithEphemeralMessage(s, i, "Werewolf can only be played in a server.")
	}

	ctx := context.Background()
	sub := data.Options[0]

	if operatorSubcommands[sub.Name] && !isOperator(i.Member) {
		return RespondWithEphemeralMessage(s, i, "Only server managers can change the cast or start and stop games.")
	}

	var err error
	switch sub.Name {
	case "join":
		err = c.handleJoin(ctx, s, i)
	case "leave":
		err = c.handleLeave(ctx, s, i)
	case "cast":
		err = c.handleCast(ctx, s, i, sub.Options)
	case "start":
		err = c.handleStart(ctx, s, i)
	case "stop":
		err = c.handleStop(ctx, s, i)
	case "status":
		err = c.handleStatus(ctx, s, i)
	case "stats":
		err = c.handleStats(ctx, s, i, sub.Options)
	case "leaderboard":
		err = c.handleLeaderboard(ctx, s, i)
	case "history":
		err = c.handleHistory(ctx, s, i)
	default:
		err = errors.New("unknown subcommand")
	}

	return err
}

func (c *WerewolfCommand) handleJoin(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate) error {
	out, err := c.gameService.JoinLobby(ctx, &game.JoinLobbyInput{
		GuildID:    i.GuildID,
		PlayerID:   i.Member.User.ID,
		PlayerName: displayName(i.Member, i.Member.User.ID),
	})
	if err != nil {
		return c.respondWithGameError(ctx, s, i, "join", err)
	}

	if !out.Added {
		return RespondWithEphemeralMessage(s, i, "You're already in the lobby, or a game is running.")
	}
	return RespondWithEphemeralMessage(s, i, "You joined the lobby.")
}

func (c *WerewolfCommand) handleLeave(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate) error {
	out, err := c.gameService.LeaveLobby(ctx, &game.LeaveLobbyInput{
		GuildID:  i.GuildID,
		PlayerID: i.Member.User.ID,
	})
	if err != nil {
		return c.respondWithGameError(ctx, s, i, "leave", err)
	}

	if !out.Removed {
		return RespondWithEphemeralMessage(s, i, "You're not in the lobby.")
	}
	return RespondWithEphemeralMessage(s, i, "You left the lobby.")
}

func (c *WerewolfCommand) handleCast(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, options []*discordgo.ApplicationCommandInteractionDataOption) error {
	current, err := c.gameService.GetCast(ctx, &game.GetCastInput{GuildID: i.GuildID})
	if err != nil {
		return c.respondWithGameError(ctx, s, i, "cast", err)
	}

	plan, changed := castFromOptions(current.Plan, options)
	if !changed {
		return RespondWithEmbed(s, i, renderCast(current.Plan))
	}

	out, err := c.gameService.SetCast(ctx, &game.SetCastInput{
		GuildID: i.GuildID,
		Plan:    plan,
	})
	if err != nil {
		return c.respondWithGameError(ctx, s, i, "cast", err)
	}

	c.logger.Info("cast updated",
		zap.String("guild_id", i.GuildID),
		zap.Int("total", out.Plan.Total()),
	)
	return RespondWithEmbed(s, i, renderCast(out.Plan))
}

func (c *WerewolfCommand) handleStart(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate) error {
	out, err := c.gameService.StartGame(ctx, &game.StartGameInput{GuildID: i.GuildID})
	if err != nil {
		return c.respondWithGameError(ctx, s, i, "start", err)
	}

	return RespondWithMessage(s, i, fmt.Sprintf("The game begins with %d players. Check your private room for your role.", out.Players))
}

func (c *WerewolfCommand) handleStop(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate) error {
	if _, err := c.gameService.StopGame(ctx, &game.StopGameInput{GuildID: i.GuildID}); err != nil {
		return c.respondWithGameError(ctx, s, i, "stop", err)
	}

	return RespondWithMessage(s, i, "Stopping the game...")
}

func (c *WerewolfCommand) handleStatus(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate) error {
	out, err := c.gameService.GetGameStatus(ctx, &game.GetGameStatusInput{GuildID: i.GuildID})
	if err != nil {
		return c.respondWithGameError(ctx, s, i, "status", err)
	}

	return RespondWithEmbed(s, i, renderStatus(out.Status))
}

func (c *WerewolfCommand) handleStats(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, options []*discordgo.ApplicationCommandInteractionDataOption) error {
	playerID := i.Member.User.ID
	name := displayName(i.Member, playerID)
	for _, opt := range options {
		if opt.Name != "player" || opt.Type != discordgo.ApplicationCommandOptionUser {
			continue
		}
		playerID = opt.UserValue(nil).ID
		name = playerID
		if resolved := i.ApplicationCommandData().Resolved; resolved != nil {
			if user, ok := resolved.Users[playerID]; ok {
				name = user.Username
			}
		}
	}

	out, err := c.gameService.GetPlayerStats(ctx, &game.GetPlayerStatsInput{
		GuildID:  i.GuildID,
		PlayerID: playerID,
	})
	if err != nil {
		return c.respondWithGameError(ctx, s, i, "stats", err)
	}

	if out.Stats.PlayerName != "" {
		name = out.Stats.PlayerName
	}
	return RespondWithEmbed(s, i, renderStats(name, out.Stats))
}

func (c *WerewolfCommand) handleLeaderboard(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate) error {
	out, err := c.gameService.GetLeaderboard(ctx, &game.GetLeaderboardInput{GuildID: i.GuildID})
	if err != nil {
		return c.respondWithGameError(ctx, s, i, "leaderboard", err)
	}

	return RespondWithEmbed(s, i, renderLeaderboard(out.Stats))
}

func (c *WerewolfCommand) handleHistory(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate) error {
	out, err := c.gameService.GetHistory(ctx, &game.GetHistoryInput{GuildID: i.GuildID})
	if err != nil {
		return c.respondWithGameError(ctx, s, i, "history", err)
	}

	return RespondWithEmbed(s, i, renderHistory(out.Records))
}

// respondWithGameError explains a failed call to the user privately
func (c *WerewolfCommand) respondWithGameError(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, subcommand string, err error) error {
	c.logger.Warn("command failed",
		zap.String("guild_id", i.GuildID),
		zap.String("subcommand", subcommand),
		zap.Error(err),
	)
	return RespondWithEphemeralMessage(s, i, errorMessage(ctx, c.messaging, err))
}

func errorMessage(ctx context.Context, messagingService messaging.Service, err error) string {
	out, msgErr := messagingService.GetErrorMessage(ctx, &messaging.GetErrorMessageInput{Err: err})
	if msgErr != nil {
		return "Something went wrong."
	}
	return out.Message
}
