package models

import "fmt"

// RoomKind identifies a communication room managed by the platform adapter
type RoomKind string

const (
	// RoomShared holds every player during the day and evening
	RoomShared RoomKind = "shared"

	// RoomWerewolf is where the werewolf-aligned players meet at night
	RoomWerewolf RoomKind = "werewolf"

	// RoomPrivate belongs to a single player
	RoomPrivate RoomKind = "private"
)

// Room addresses a room. Owner is set only for private rooms.
type Room struct {
	Kind  RoomKind
	Owner string
}

// SharedRoom returns the room everyone gathers in
func SharedRoom() Room {
	return Room{Kind: RoomShared}
}

// WerewolfRoom returns the werewolf meeting room
func WerewolfRoom() Room {
	return Room{Kind: RoomWerewolf}
}

// PrivateRoom returns the private room of a player
func PrivateRoom(playerID string) Room {
	return Room{Kind: RoomPrivate, Owner: playerID}
}

func (r Room) String() string {
	if r.Kind == RoomPrivate {
		return fmt.Sprintf("%s:%s", r.Kind, r.Owner)
	}
	return string(r.Kind)
}

// ActionType is a secret action a player can submit
type ActionType string

const (
	ActionVote    ActionType = "vote"
	ActionInspect ActionType = "inspect"
	ActionProtect ActionType = "protect"
	ActionKill    ActionType = "kill"
)

// Token ties a prompt to the phase and day it was issued for. Submissions
// carrying a token that no longer matches the engine are rejected.
type Token struct {
	Phase Phase
	Day   int
}

// Target is one selectable option in a prompt
type Target struct {
	PlayerID string
	Name     string
}

// Prompt is an actionable selection delivered alongside a message
type Prompt struct {
	Action  ActionType
	Token   Token
	Targets []Target
}
