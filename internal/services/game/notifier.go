package game

//go:generate mockgen -package=mocks -destination=mocks/mock_platform.go github.com/KirkDiggler/werewolf/internal/services/game Notifier,RoomProvisioner,Muter,PlatformProvider

import (
	"context"

	"github.com/KirkDiggler/werewolf/internal/models"
)

// Notifier is how the engine reaches players. Every call addresses a single
// room or player and may fail on its own without affecting the others.
type Notifier interface {
	// Notify posts content to a room, optionally with an actionable prompt
	Notify(ctx context.Context, room models.Room, content string, prompt *models.Prompt) error

	// MoveTo relocates a player into a room
	MoveTo(ctx context.Context, playerID string, room models.Room) error

	// RoomOccupants lists who is currently present in a room
	RoomOccupants(ctx context.Context, room models.Room) ([]models.Entrant, error)
}

// RoomProvisioner creates the werewolf and private rooms for a game and
// removes them once it ends
type RoomProvisioner interface {
	PrepareRooms(ctx context.Context, players []*models.Player) error
	ReleaseRooms(ctx context.Context) error
}

// Muter silences dead players in the shared room
type Muter interface {
	SetMuted(ctx context.Context, playerID string, muted bool) error
}

// Platform bundles the collaborators serving one guild. Rooms and Muter are
// optional.
type Platform struct {
	Notifier Notifier
	Rooms    RoomProvisioner
	Muter    Muter
}

// PlatformProvider hands out the platform for a guild
type PlatformProvider interface {
	ForGuild(ctx context.Context, guildID string) (*Platform, error)
}
