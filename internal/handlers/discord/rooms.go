package discord

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/KirkDiggler/werewolf/internal/models"
	"github.com/KirkDiggler/werewolf/internal/services/game"
	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_api.go github.com/KirkDiggler/werewolf/internal/handlers/discord API

// DefaultLobbyName is the voice channel used as the shared room when no
// lobby channel ID is configured for a guild
const DefaultLobbyName = "werewolf"

var (
	// ErrLobbyNotFound is returned when a guild has no shared voice channel
	ErrLobbyNotFound = errors.New("lobby voice channel not found")

	// ErrRoomNotReady is returned when a room was never provisioned
	ErrRoomNotReady = errors.New("room has not been created")
)

// API is the part of the discord session the room adapter drives.
// *discordgo.Session implements it.
type API interface {
	GuildChannelCreateComplex(guildID string, data discordgo.GuildChannelCreateData, options ...discordgo.RequestOption) (*discordgo.Channel, error)
	ChannelDelete(channelID string, options ...discordgo.RequestOption) (*discordgo.Channel, error)
	GuildMemberMove(guildID string, userID string, channelID *string, options ...discordgo.RequestOption) error
	GuildMemberMute(guildID string, userID string, mute bool, options ...discordgo.RequestOption) error
	ChannelMessageSendComplex(channelID string, data *discordgo.MessageSend, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

// RoomsConfig holds configuration for the room adapter
type RoomsConfig struct {
	API   API
	State *discordgo.State

	// LobbyChannelID is the shared voice channel. Guilds it does not belong
	// to fall back to a voice channel named LobbyName.
	LobbyChannelID string
	LobbyName      string

	// NotificationChannelID receives shared-room announcements instead of
	// the lobby's text chat when it belongs to the guild
	NotificationChannelID string

	// CategoryID is the parent of the per-game voice channels
	CategoryID string

	Logger *zap.Logger
}

// Rooms maps the game's rooms onto discord voice channels. It implements
// game.PlatformProvider; each guild gets its own set of rooms.
type Rooms struct {
	api    API
	state  *discordgo.State
	config *RoomsConfig
	logger *zap.Logger

	mu     sync.Mutex
	guilds map[string]*guildRooms
}

// NewRooms creates the room adapter
func NewRooms(cfg *RoomsConfig) (*Rooms, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if cfg.API == nil {
		return nil, errors.New("discord API cannot be nil")
	}
	if cfg.State == nil {
		return nil, errors.New("discord state cannot be nil")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.LobbyName == "" {
		cfg.LobbyName = DefaultLobbyName
	}

	return &Rooms{
		api:    cfg.API,
		state:  cfg.State,
		config: cfg,
		logger: logger,
		guilds: make(map[string]*guildRooms),
	}, nil
}

// ForGuild returns the platform capabilities for a guild
func (r *Rooms) ForGuild(ctx context.Context, guildID string) (*game.Platform, error) {
	g, err := r.guild(guildID)
	if err != nil {
		return nil, err
	}

	return &game.Platform{
		Notifier: g,
		Rooms:    g,
		Muter:    g,
	}, nil
}

// LobbyChannel returns the shared voice channel of a guild
func (r *Rooms) LobbyChannel(guildID string) (string, error) {
	g, err := r.guild(guildID)
	if err != nil {
		return "", err
	}
	return g.lobbyID, nil
}

func (r *Rooms) guild(guildID string) (*guildRooms, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if g, ok := r.guilds[guildID]; ok {
		return g, nil
	}

	lobbyID, err := r.resolveLobby(guildID)
	if err != nil {
		return nil, err
	}

	noticeID := lobbyID
	if r.belongsTo(r.config.NotificationChannelID, guildID) {
		noticeID = r.config.NotificationChannelID
	}
	categoryID := ""
	if r.belongsTo(r.config.CategoryID, guildID) {
		categoryID = r.config.CategoryID
	}

	g := &guildRooms{
		api:        r.api,
		state:      r.state,
		guildID:    guildID,
		lobbyID:    lobbyID,
		noticeID:   noticeID,
		categoryID: categoryID,
		logger:     r.logger.With(zap.String("guild_id", guildID)),
		private:    make(map[string]string),
	}
	r.guilds[guildID] = g
	return g, nil
}

func (r *Rooms) resolveLobby(guildID string) (string, error) {
	if r.belongsTo(r.config.LobbyChannelID, guildID) {
		return r.config.LobbyChannelID, nil
	}

	guild, err := r.state.Guild(guildID)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrLobbyNotFound, err)
	}
	for _, ch := range guild.Channels {
		if ch.Type == discordgo.ChannelTypeGuildVoice && ch.Name == r.config.LobbyName {
			return ch.ID, nil
		}
	}
	return "", ErrLobbyNotFound
}

func (r *Rooms) belongsTo(channelID, guildID string) bool {
	if channelID == "" {
		return false
	}
	ch, err := r.state.Channel(channelID)
	return err == nil && ch.GuildID == guildID
}

// guildRooms is one guild's shared, werewolf and private rooms
type guildRooms struct {
	api        API
	state      *discordgo.State
	guildID    string
	lobbyID    string
	noticeID   string
	categoryID string
	logger     *zap.Logger

	mu         sync.Mutex
	werewolfID string
	private    map[string]string
}

// Notify posts a message, with a select menu when a prompt is attached
func (g *guildRooms) Notify(ctx context.Context, room models.Room, content string, prompt *models.Prompt) error {
	channelID := g.noticeID
	if room.Kind != models.RoomShared {
		var err error
		if channelID, err = g.channelFor(room); err != nil {
			return err
		}
	}

	msg := &discordgo.MessageSend{
		Content: content,
	}
	if prompt != nil {
		msg.Components = promptComponents(prompt)
	}

	_, err := g.api.ChannelMessageSendComplex(channelID, msg, discordgo.WithContext(ctx))
	return err
}

// MoveTo moves a connected member into the room's voice channel
func (g *guildRooms) MoveTo(ctx context.Context, playerID string, room models.Room) error {
	channelID, err := g.channelFor(room)
	if err != nil {
		return err
	}
	return g.api.GuildMemberMove(g.guildID, playerID, &channelID, discordgo.WithContext(ctx))
}

// RoomOccupants lists the members connected to the room's voice channel
func (g *guildRooms) RoomOccupants(ctx context.Context, room models.Room) ([]models.Entrant, error) {
	channelID, err := g.channelFor(room)
	if err != nil {
		return nil, err
	}

	guild, err := g.state.Guild(g.guildID)
	if err != nil {
		return nil, err
	}

	var occupants []models.Entrant
	for _, vs := range guild.VoiceStates {
		if vs.ChannelID != channelID {
			continue
		}
		member := vs.Member
		if member == nil {
			member, _ = g.state.Member(g.guildID, vs.UserID)
		}
		occupants = append(occupants, models.Entrant{
			ID:   vs.UserID,
			Name: displayName(member, vs.UserID),
		})
	}
	return occupants, nil
}

// PrepareRooms creates the werewolf room and one private room per player
func (g *guildRooms) PrepareRooms(ctx context.Context, players []*models.Player) error {
	var pack []*models.Player
	for _, p := range players {
		if p.IsWerewolfAligned() {
			pack = append(pack, p)
		}
	}

	var eg errgroup.Group
	eg.SetLimit(4)

	if len(pack) > 0 {
		eg.Go(func() error {
			ch, err := g.createRoom(ctx, "werewolves", pack)
			if err != nil {
				return fmt.Errorf("creating werewolf room: %w", err)
			}
			g.mu.Lock()
			g.werewolfID = ch.ID
			g.mu.Unlock()
			return nil
		})
	}

	for _, p := range players {
		p := p
		eg.Go(func() error {
			ch, err := g.createRoom(ctx, "home-"+p.Name, []*models.Player{p})
			if err != nil {
				return fmt.Errorf("creating room for %s: %w", p.ID, err)
			}
			g.mu.Lock()
			g.private[p.ID] = ch.ID
			g.mu.Unlock()
			return nil
		})
	}

	return eg.Wait()
}

// ReleaseRooms deletes every channel created by PrepareRooms
func (g *guildRooms) ReleaseRooms(ctx context.Context) error {
	g.mu.Lock()
	channels := make([]string, 0, len(g.private)+1)
	if g.werewolfID != "" {
		channels = append(channels, g.werewolfID)
	}
	for _, id := range g.private {
		channels = append(channels, id)
	}
	g.werewolfID = ""
	g.private = make(map[string]string)
	g.mu.Unlock()

	var errs []error
	for _, id := range channels {
		if _, err := g.api.ChannelDelete(id, discordgo.WithContext(ctx)); err != nil {
			errs = append(errs, fmt.Errorf("deleting channel %s: %w", id, err))
		}
	}
	return errors.Join(errs...)
}

// SetMuted server-mutes or unmutes a member
func (g *guildRooms) SetMuted(ctx context.Context, playerID string, muted bool) error {
	return g.api.GuildMemberMute(g.guildID, playerID, muted, discordgo.WithContext(ctx))
}

func (g *guildRooms) createRoom(ctx context.Context, name string, members []*models.Player) (*discordgo.Channel, error) {
	const access = discordgo.PermissionViewChannel | discordgo.PermissionVoiceConnect | discordgo.PermissionSendMessages

	// @everyone shares the guild's ID
	overwrites := []*discordgo.PermissionOverwrite{{
		ID:   g.guildID,
		Type: discordgo.PermissionOverwriteTypeRole,
		Deny: access,
	}}
	for _, p := range members {
		overwrites = append(overwrites, &discordgo.PermissionOverwrite{
			ID:    p.ID,
			Type:  discordgo.PermissionOverwriteTypeMember,
			Allow: access,
		})
	}

	ch, err := g.api.GuildChannelCreateComplex(g.guildID, discordgo.GuildChannelCreateData{
		Name:                 name,
		Type:                 discordgo.ChannelTypeGuildVoice,
		ParentID:             g.categoryID,
		PermissionOverwrites: overwrites,
	}, discordgo.WithContext(ctx))
	if err != nil {
		return nil, err
	}

	g.logger.Debug("created room", zap.String("channel_id", ch.ID), zap.String("name", name))
	return ch, nil
}

func (g *guildRooms) channelFor(room models.Room) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	var id string
	switch room.Kind {
	case models.RoomShared:
		id = g.lobbyID
	case models.RoomWerewolf:
		id = g.werewolfID
	case models.RoomPrivate:
		id = g.private[room.Owner]
	}
	if id == "" {
		return "", fmt.Errorf("%w: %s", ErrRoomNotReady, room)
	}
	return id, nil
}

func displayName(member *discordgo.Member, fallback string) string {
	if member == nil {
		return fallback
	}
	if member.Nick != "" {
		return member.Nick
	}
	if member.User != nil {
		if member.User.GlobalName != "" {
			return member.User.GlobalName
		}
		return member.User.Username
	}
	return fallback
}
