package judge

import "github.com/KirkDiggler/werewolf/internal/models"

// Tally counts the living players of each faction
type Tally struct {
	Werewolves int
	Villagers  int
	Foxes      int
}

// Count tallies the alive players in the snapshot; dead entries are ignored
func Count(players []*models.Player) Tally {
	var t Tally
	for _, p := range players {
		if p == nil || !p.Alive {
			continue
		}
		switch p.Faction() {
		case models.FactionWerewolf:
			t.Werewolves++
		case models.FactionVillager:
			t.Villagers++
		case models.FactionIndependent:
			t.Foxes++
		}
	}
	return t
}

// Evaluate decides whether the game is over. A surviving fox takes any win
// that would otherwise go to the villagers or the werewolves.
func Evaluate(players []*models.Player) models.Outcome {
	t := Count(players)

	switch {
	case t.Werewolves == 0:
		if t.Foxes > 0 {
			return models.OutcomeFoxWins
		}
		return models.OutcomeVillagersWin
	case t.Villagers <= t.Werewolves:
		if t.Foxes > 0 {
			return models.OutcomeFoxWins
		}
		return models.OutcomeWerewolvesWin
	default:
		return models.OutcomeNotEnded
	}
}
