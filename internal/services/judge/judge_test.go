package judge

import (
	"fmt"
	"testing"

	"github.com/KirkDiggler/werewolf/internal/models"
	"github.com/stretchr/testify/assert"
)

func players(roles ...models.Role) []*models.Player {
	out := make([]*models.Player, 0, len(roles))
	for i, r := range roles {
		out = append(out, &models.Player{ID: fmt.Sprintf("p%d", i), Role: r, Alive: true})
	}
	return out
}

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name    string
		players []*models.Player
		want    models.Outcome
	}{
		{
			name:    "fox steals village win",
			players: players(models.RoleFox, models.RoleVillager, models.RoleKnight, models.RoleTeller),
			want:    models.OutcomeFoxWins,
		},
		{
			name:    "werewolves reach parity",
			players: players(models.RoleWerewolf, models.RoleMadman, models.RoleVillager, models.RoleBakery),
			want:    models.OutcomeWerewolvesWin,
		},
		{
			name:    "werewolves outnumbered",
			players: players(models.RoleWerewolf, models.RoleWerewolf, models.RoleVillager, models.RolePsychic, models.RoleKnight),
			want:    models.OutcomeNotEnded,
		},
		{
			name:    "no werewolves left",
			players: players(models.RoleVillager, models.RoleTeller),
			want:    models.OutcomeVillagersWin,
		},
		{
			name:    "fox steals werewolf win",
			players: players(models.RoleWerewolf, models.RoleVillager, models.RoleFox),
			want:    models.OutcomeFoxWins,
		},
		{
			name:    "fox alone does not count as villager",
			players: players(models.RoleWerewolf, models.RoleFox, models.RoleFox),
			want:    models.OutcomeFoxWins,
		},
		{
			name:    "nobody alive",
			players: nil,
			want:    models.OutcomeVillagersWin,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Evaluate(tt.players))
			// same snapshot, same answer
			assert.Equal(t, tt.want, Evaluate(tt.players))
		})
	}
}

func TestEvaluate_IgnoresDead(t *testing.T) {
	snapshot := players(models.RoleWerewolf, models.RoleVillager, models.RoleVillager, models.RoleVillager)
	assert.Equal(t, models.OutcomeNotEnded, Evaluate(snapshot))

	snapshot[0].Alive = false
	assert.Equal(t, models.OutcomeVillagersWin, Evaluate(snapshot))
}

func TestCount(t *testing.T) {
	snapshot := players(models.RoleWerewolf, models.RoleMadman, models.RoleFox, models.RoleBakery, models.RoleKnight)
	snapshot[4].Alive = false

	assert.Equal(t, Tally{Werewolves: 2, Villagers: 1, Foxes: 1}, Count(snapshot))
}
