package roster

import "github.com/KirkDiggler/werewolf/internal/models"

const (
	ErrNilConfig models.GameError = "config cannot be nil"
	ErrNilRandom models.GameError = "random source cannot be nil"
)
