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

// Bot represents the Discord bot instance
type Bot struct {
	session     *discordgo.Session
	commands    map[string]CommandHandler
	commandIDs  map[string]string // Maps command name to command ID
	gameService game.Service
	messaging   messaging.Service
	rooms       *Rooms
	logger      *zap.Logger
	config      *Config
}

// Config holds the configuration for the bot
type Config struct {
	// Application ID for the bot
	ApplicationID string

	// Optional guild ID for development (server-specific commands)
	GuildID string

	// Session is shared with the room adapter; see NewSession
	Session *discordgo.Session

	// Game service
	GameService game.Service

	// Messaging renders errors for users
	Messaging messaging.Service

	// Rooms resolves each guild's lobby for the voice-state feed
	Rooms *Rooms

	Logger *zap.Logger
}

// NewSession creates a discord session with the intents the bot needs to
// follow who is in which voice channel
func NewSession(token string) (*discordgo.Session, error) {
	if token == "" {
		return nil, errors.New("token cannot be empty")
	}

	session, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, fmt.Errorf("failed to create Discord session: %w", err)
	}
	session.Identify.Intents = discordgo.IntentsGuilds | discordgo.IntentsGuildVoiceStates
	session.StateEnabled = true

	return session, nil
}

// New creates a new Discord bot
func New(cfg *Config) (*Bot, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Session == nil {
		return nil, errors.New("session cannot be nil")
	}

	if cfg.GameService == nil {
		return nil, errors.New("game service cannot be nil")
	}

	if cfg.Messaging == nil {
		return nil, errors.New("messaging service cannot be nil")
	}

	if cfg.Rooms == nil {
		return nil, errors.New("rooms cannot be nil")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	bot := &Bot{
		session:     cfg.Session,
		commands:    make(map[string]CommandHandler),
		commandIDs:  make(map[string]string),
		gameService: cfg.GameService,
		messaging:   cfg.Messaging,
		rooms:       cfg.Rooms,
		logger:      logger,
		config:      cfg,
	}

	bot.session.AddHandler(bot.handleInteraction)
	bot.session.AddHandler(bot.handleVoiceStateUpdate)

	return bot, nil
}

// Start initializes the Discord connection and registers commands
func (b *Bot) Start() error {
	// Open the websocket connection to Discord
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("failed to open Discord connection: %w", err)
	}

	werewolfCmd := NewWerewolfCommand(b.gameService, b.messaging, b.logger)
	if err := b.RegisterCommand(werewolfCmd); err != nil {
		return fmt.Errorf("failed to register werewolf command: %w", err)
	}

	b.logger.Info("bot is running")
	return nil
}

// Stop removes the registered commands and closes the connection
func (b *Bot) Stop() error {
	appID, guildID := b.commandScope()

	for cmdName, cmdID := range b.commandIDs {
		if err := b.session.ApplicationCommandDelete(appID, guildID, cmdID); err != nil {
			b.logger.Warn("failed to delete command", zap.String("command", cmdName), zap.String("command_id", cmdID), zap.Error(err))
		} else {
			b.logger.Info("deleted command", zap.String("command", cmdName), zap.String("command_id", cmdID))
		}
	}

	return b.session.Close()
}

// Check reports whether the gateway connection is ready
func (b *Bot) Check(ctx context.Context) error {
	if !b.session.DataReady {
		return errors.New("discord session is not connected")
	}
	return nil
}

// RegisterCommand registers a command with Discord
func (b *Bot) RegisterCommand(cmd CommandHandler) error {
	appID, guildID := b.commandScope()

	// If guild ID is provided, register command for that specific guild
	// Otherwise, register it globally
	createdCmd, err := b.session.ApplicationCommandCreate(appID, guildID, cmd.GetCommand())
	if err != nil {
		return fmt.Errorf("failed to create command %s: %w", cmd.GetName(), err)
	}

	// Store the command handler and its ID
	b.commands[cmd.GetName()] = cmd
	b.commandIDs[cmd.GetName()] = createdCmd.ID
	b.logger.Info("registered command",
		zap.String("command", cmd.GetName()),
		zap.String("command_id", createdCmd.ID),
		zap.String("guild_id", guildID),
	)

	return nil
}

func (b *Bot) commandScope() (appID, guildID string) {
	appID = b.config.ApplicationID
	if appID == "" {
		// Fall back to session user ID if application ID is not provided
		appID = b.session.State.User.ID
	}
	return appID, b.config.GuildID
}

// handleInteraction handles Discord interactions
func (b *Bot) handleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		name := i.ApplicationCommandData().Name
		if h, ok := b.commands[name]; ok {
			if err := h.Handle(s, i); err != nil {
				b.logger.Error("error handling command", zap.String("command", name), zap.Error(err))
			}
		}
	case discordgo.InteractionMessageComponent:
		if err := b.handlePromptSelect(s, i); err != nil {
			b.logger.Error("error handling component interaction", zap.Error(err))
		}
	}
}

// handlePromptSelect submits the target a player picked from a prompt
func (b *Bot) handlePromptSelect(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	data := i.MessageComponentData()

	action, token, err := parsePromptCustomID(data.CustomID)
	if err != nil {
		return RespondWithEphemeralMessage(s, i, "That menu is no longer in use.")
	}
	if len(data.Values) == 0 || i.Member == nil || i.GuildID == "" {
		return RespondWithEphemeralMessage(s, i, "Pick a player from the menu.")
	}

	ctx := context.Background()
	_, err = b.gameService.SubmitAction(ctx, &game.SubmitActionInput{
		GuildID: i.GuildID,
		Submission: game.Submission{
			PlayerID: i.Member.User.ID,
			Action:   action,
			Token:    token,
			TargetID: data.Values[0],
		},
	})
	if err != nil {
		b.logger.Debug("submission rejected",
			zap.String("guild_id", i.GuildID),
			zap.String("player_id", i.Member.User.ID),
			zap.String("action", string(action)),
			zap.Error(err),
		)
		return RespondWithEphemeralMessage(s, i, errorMessage(ctx, b.messaging, err))
	}

	return RespondWithEphemeralMessage(s, i, submissionReceipt(action))
}

// handleVoiceStateUpdate keeps the lobby in step with the shared voice channel
func (b *Bot) handleVoiceStateUpdate(s *discordgo.Session, v *discordgo.VoiceStateUpdate) {
	if v.VoiceState == nil || v.GuildID == "" {
		return
	}

	lobbyID, err := b.rooms.LobbyChannel(v.GuildID)
	if err != nil {
		return
	}

	ctx := context.Background()
	switch lobbyTransition(v, lobbyID) {
	case lobbyJoined:
		name := displayName(v.Member, v.UserID)
		if _, err := b.gameService.JoinLobby(ctx, &game.JoinLobbyInput{
			GuildID:    v.GuildID,
			PlayerID:   v.UserID,
			PlayerName: name,
		}); err != nil {
			b.logger.Warn("failed to join lobby", zap.String("guild_id", v.GuildID), zap.String("player_id", v.UserID), zap.Error(err))
		}
	case lobbyLeft:
		if _, err := b.gameService.LeaveLobby(ctx, &game.LeaveLobbyInput{
			GuildID:  v.GuildID,
			PlayerID: v.UserID,
		}); err != nil {
			b.logger.Warn("failed to leave lobby", zap.String("guild_id", v.GuildID), zap.String("player_id", v.UserID), zap.Error(err))
		}
	}
}

type lobbyChange int

const (
	lobbyUnchanged lobbyChange = iota
	lobbyJoined
	lobbyLeft
)

// lobbyTransition classifies a voice state update relative to the lobby
func lobbyTransition(v *discordgo.VoiceStateUpdate, lobbyID string) lobbyChange {
	was := v.BeforeUpdate != nil && v.BeforeUpdate.ChannelID == lobbyID
	is := v.VoiceState != nil && v.ChannelID == lobbyID

	switch {
	case is && !was:
		return lobbyJoined
	case was && !is:
		return lobbyLeft
	default:
		return lobbyUnchanged
	}
}

func submissionReceipt(action models.ActionType) string {
	switch action {
	case models.ActionVote:
		return "Your vote is in. You can change it until the evening ends."
	case models.ActionKill:
		return "The pack's choice is set. The last choice before dawn counts."
	default:
		return "Your choice is recorded. You can change it until dawn."
	}
}
