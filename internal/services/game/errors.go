package game

import "github.com/KirkDiggler/werewolf/internal/models"

// Define errors
const (
	ErrNilConfig           models.GameError = "config cannot be nil"
	ErrNilInput            models.GameError = "input cannot be nil"
	ErrMissingGuildID      models.GameError = "guild ID is required"
	ErrNilPlatform         models.GameError = "platform cannot be nil"
	ErrNilNotifier         models.GameError = "notifier cannot be nil"
	ErrNilPlatformProvider models.GameError = "platform provider cannot be nil"
	ErrNilMessaging        models.GameError = "messaging service cannot be nil"
	ErrNilRandom           models.GameError = "random source cannot be nil"
	ErrNilClock            models.GameError = "clock cannot be nil"
	ErrNilUUIDGenerator    models.GameError = "UUID generator cannot be nil"
	ErrUnknownAction       models.GameError = "unknown action"
	ErrServiceClosed       models.GameError = "game service is closed"
)
