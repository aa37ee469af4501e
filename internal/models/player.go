package models

// Player is a participant who was dealt a role
type Player struct {
	// ID is the Discord user ID of the player
	ID string

	// Name is the display name of the player
	Name string

	// Role is the secret role dealt at game start
	Role Role

	// Alive flips to false exactly once
	Alive bool
}

// Faction is derived from the player's role
func (p *Player) Faction() Faction {
	return p.Role.Faction()
}

// IsWerewolfAligned reports whether the player sides with the werewolves
func (p *Player) IsWerewolfAligned() bool {
	return p.Faction() == FactionWerewolf
}

// Entrant is a candidate in the entry pool before roles are dealt
type Entrant struct {
	// ID is the Discord user ID
	ID string

	// Name is the display name
	Name string
}
