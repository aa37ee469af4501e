package cast

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/werewolf/internal/repositories/cast Repository

import (
	"context"

	"github.com/KirkDiggler/werewolf/internal/models"
)

// Repository stores the cast plan configured for each guild
type Repository interface {
	// SaveCast replaces the guild's cast plan
	SaveCast(ctx context.Context, input *SaveCastInput) error

	// GetCast retrieves the guild's cast plan
	GetCast(ctx context.Context, input *GetCastInput) (models.CastPlan, error)
}

// SaveCastInput contains parameters for saving a cast plan
type SaveCastInput struct {
	GuildID string
	Plan    models.CastPlan
}

// GetCastInput contains parameters for retrieving a cast plan
type GetCastInput struct {
	GuildID string
}
