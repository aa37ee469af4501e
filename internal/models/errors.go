package models

import "fmt"

// GameError is a domain error comparable with errors.Is
type GameError string

// Error implements the error interface
func (e GameError) Error() string {
	return string(e)
}

const (
	ErrInsufficientPlayers GameError = "not enough players for the cast"
	ErrInvalidTarget       GameError = "invalid target"
	ErrUnknownPlayer       GameError = "unknown player"
	ErrStalePhase          GameError = "not the current phase"
	ErrDeliveryFailure     GameError = "delivery failed"
	ErrActionNotAllowed    GameError = "action not allowed for this player"
	ErrInvalidCastPlan     GameError = "invalid cast plan"
	ErrGameInProgress      GameError = "a game is already in progress"
	ErrGameNotRunning      GameError = "no game is running"
)

// InsufficientPlayersError reports how many entrants a cast plan is short
type InsufficientPlayersError struct {
	Required  int
	Available int
}

// Missing is the number of additional entrants needed
func (e *InsufficientPlayersError) Missing() int {
	return e.Required - e.Available
}

func (e *InsufficientPlayersError) Error() string {
	return fmt.Sprintf("%s (%d more needed)", ErrInsufficientPlayers, e.Missing())
}

// Is lets errors.Is(err, ErrInsufficientPlayers) match
func (e *InsufficientPlayersError) Is(target error) bool {
	return target == ErrInsufficientPlayers
}

// DeliveryError wraps a failed notify, move or mute of a single participant
type DeliveryError struct {
	PlayerID string
	Room     Room
	Err      error
}

func (e *DeliveryError) Error() string {
	return fmt.Sprintf("%s: %s to %s: %v", ErrDeliveryFailure, e.PlayerID, e.Room, e.Err)
}

func (e *DeliveryError) Unwrap() []error {
	return []error{ErrDeliveryFailure, e.Err}
}
