package models

// Role is the secret card a player is dealt at game start
type Role string

const (
	// RoleVillager has no night action
	RoleVillager Role = "villager"

	// RoleKnight protects one player from the werewolf kill each night
	RoleKnight Role = "knight"

	// RoleTeller inspects one player each night and learns if they are werewolf-aligned
	RoleTeller Role = "teller"

	// RolePsychic learns the role of each player executed in the evening
	RolePsychic Role = "psychic"

	// RoleBakery is a villager with no action
	RoleBakery Role = "bakery"

	// RoleWerewolf chooses the nightly kill together with the rest of the pack
	RoleWerewolf Role = "werewolf"

	// RoleMadman sides with the werewolves
	RoleMadman Role = "madman"

	// RoleFox wins alone by surviving to the end
	RoleFox Role = "fox"
)

// Faction is the win-condition grouping a role belongs to
type Faction string

const (
	FactionVillager    Faction = "villager"
	FactionWerewolf    Faction = "werewolf"
	FactionIndependent Faction = "independent"
)

// Roles returns every role in deal order
func Roles() []Role {
	return []Role{
		RoleVillager,
		RoleKnight,
		RoleTeller,
		RolePsychic,
		RoleBakery,
		RoleWerewolf,
		RoleMadman,
		RoleFox,
	}
}

// Faction derives the faction for the role. Factions are never stored.
func (r Role) Faction() Faction {
	switch r {
	case RoleVillager, RoleKnight, RoleTeller, RolePsychic, RoleBakery:
		return FactionVillager
	case RoleWerewolf, RoleMadman:
		return FactionWerewolf
	case RoleFox:
		return FactionIndependent
	default:
		return ""
	}
}

// IsValid reports whether r is one of the known roles
func (r Role) IsValid() bool {
	return r.Faction() != ""
}

// factionOrder clusters announcements: villagers, then werewolves, then the rest
func (f Faction) order() int {
	switch f {
	case FactionVillager:
		return 0
	case FactionWerewolf:
		return 1
	case FactionIndependent:
		return 2
	default:
		return 3
	}
}

// Less orders factions for presentation
func (f Faction) Less(other Faction) bool {
	return f.order() < other.order()
}
