package models

import (
	"time"
)

// Phase is the current step of the day/night cycle
type Phase string

const (
	// PhaseWaiting indicates the entry pool is open and no game is running
	PhaseWaiting Phase = "waiting"

	// PhaseDay is the open discussion window
	PhaseDay Phase = "day"

	// PhaseEvening is the execution vote
	PhaseEvening Phase = "evening"

	// PhaseNight is when secret role actions are taken
	PhaseNight Phase = "night"

	// PhaseEnded is terminal; the game resets to waiting right after
	PhaseEnded Phase = "ended"
)

// IsActive reports whether the phase is part of a running game
func (p Phase) IsActive() bool {
	return p == PhaseDay || p == PhaseEvening || p == PhaseNight
}

// Outcome is the result of evaluating the living players
type Outcome string

const (
	OutcomeNotEnded      Outcome = "not_ended"
	OutcomeWerewolvesWin Outcome = "werewolves_win"
	OutcomeVillagersWin  Outcome = "villagers_win"
	OutcomeFoxWins       Outcome = "fox_wins"

	// OutcomeForced marks a game stopped by an operator or shutdown
	OutcomeForced Outcome = "forced"
)

// IsEnded reports whether the outcome terminates the game
func (o Outcome) IsEnded() bool {
	return o != OutcomeNotEnded && o != ""
}

// Winner returns the faction that won, or "" for not ended and forced games
func (o Outcome) Winner() Faction {
	switch o {
	case OutcomeWerewolvesWin:
		return FactionWerewolf
	case OutcomeVillagersWin:
		return FactionVillager
	case OutcomeFoxWins:
		return FactionIndependent
	default:
		return ""
	}
}

// GameRecord is the summary stored when a game ends
type GameRecord struct {
	// ID is the unique identifier for the game
	ID string

	// GuildID is the Discord server the game was played in
	GuildID string

	// Outcome is how the game ended
	Outcome Outcome

	// Days is the value of the day counter when the game ended
	Days int

	// Players contains every dealt player with their final alive flag
	Players []*Player

	// StartedAt is when roles were dealt
	StartedAt time.Time

	// EndedAt is when the game reached the ended phase
	EndedAt time.Time
}
