package discord

import (
	"fmt"
	"testing"
	"time"

	"github.com/KirkDiggler/werewolf/internal/models"
	"github.com/KirkDiggler/werewolf/internal/services/game"
	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPromptCustomID_RoundTrip(t *testing.T) {
	tests := []*models.Prompt{
		{Action: models.ActionVote, Token: models.Token{Phase: models.PhaseEvening, Day: 0}},
		{Action: models.ActionKill, Token: models.Token{Phase: models.PhaseNight, Day: 3}},
		{Action: models.ActionInspect, Token: models.Token{Phase: models.PhaseNight, Day: 12}},
	}

	for _, prompt := range tests {
		for menu := 0; menu < maxSelectMenus; menu++ {
			id := promptCustomID(prompt, menu)
			action, token, err := parsePromptCustomID(id)
			require.NoError(t, err, id)
			assert.Equal(t, prompt.Action, action)
			assert.Equal(t, prompt.Token, token)
		}
	}
}

func TestParsePromptCustomID_Rejects(t *testing.T) {
	for _, id := range []string{
		"",
		"join_game",
		"ww:vote:evening",
		"xx:vote:evening:1",
		"ww:vote:evening:one",
		"ww:vote:evening:-1",
		"ww:vote:evening:1:0",
		"ww:vote:evening:1:5",
		"ww:vote:evening:1:x",
		"ww:vote:evening:1:2:3",
	} {
		_, _, err := parsePromptCustomID(id)
		assert.ErrorIs(t, err, errNotPrompt, id)
	}
}

func TestPromptComponents(t *testing.T) {
	prompt := &models.Prompt{
		Action: models.ActionProtect,
		Token:  models.Token{Phase: models.PhaseNight, Day: 1},
	}
	assert.Nil(t, promptComponents(prompt), "no targets, no menu")

	for i := 0; i < 3; i++ {
		prompt.Targets = append(prompt.Targets, models.Target{
			PlayerID: fmt.Sprintf("u%d", i),
			Name:     fmt.Sprintf("Player %d", i),
		})
	}

	menus := selectMenus(t, promptComponents(prompt))
	require.Len(t, menus, 1)
	assert.Equal(t, "ww:protect:night:1", menus[0].CustomID)
	assert.Equal(t, "Choose a player to guard", menus[0].Placeholder)
	require.Len(t, menus[0].Options, 3)
	assert.Equal(t, "u0", menus[0].Options[0].Value)
	assert.Equal(t, "Player 0", menus[0].Options[0].Label)
	assert.Equal(t, "🛡️", menus[0].Options[0].Emoji.Name)
}

func TestPromptComponents_SplitsLargeGames(t *testing.T) {
	prompt := &models.Prompt{
		Action: models.ActionVote,
		Token:  models.Token{Phase: models.PhaseEvening, Day: 2},
	}
	for i := 0; i < 30; i++ {
		prompt.Targets = append(prompt.Targets, models.Target{
			PlayerID: fmt.Sprintf("u%d", i),
			Name:     fmt.Sprintf("Player %d", i),
		})
	}

	menus := selectMenus(t, promptComponents(prompt))
	require.Len(t, menus, 2)
	assert.Equal(t, "ww:vote:evening:2", menus[0].CustomID)
	assert.Equal(t, "ww:vote:evening:2:1", menus[1].CustomID)
	assert.Len(t, menus[0].Options, maxSelectOptions)
	assert.Len(t, menus[1].Options, 5)
	assert.Equal(t, "Vote to execute (Player 25 to Player 29)", menus[1].Placeholder)

	// every living player can be picked from some menu
	seen := map[string]bool{}
	for _, menu := range menus {
		for _, opt := range menu.Options {
			seen[opt.Value] = true
		}
	}
	assert.Len(t, seen, 30)

	for _, menu := range menus {
		action, token, err := parsePromptCustomID(menu.CustomID)
		require.NoError(t, err)
		assert.Equal(t, models.ActionVote, action)
		assert.Equal(t, prompt.Token, token)
	}
}

func TestPromptComponents_CapsAtFiveMenus(t *testing.T) {
	prompt := &models.Prompt{Action: models.ActionVote, Token: models.Token{Phase: models.PhaseEvening}}
	for i := 0; i < maxSelectOptions*maxSelectMenus+10; i++ {
		prompt.Targets = append(prompt.Targets, models.Target{PlayerID: fmt.Sprintf("u%d", i), Name: fmt.Sprintf("P%d", i)})
	}

	assert.Len(t, promptComponents(prompt), maxSelectMenus)
}

func selectMenus(t *testing.T, components []discordgo.MessageComponent) []discordgo.SelectMenu {
	t.Helper()

	menus := make([]discordgo.SelectMenu, 0, len(components))
	for _, c := range components {
		row, ok := c.(discordgo.ActionsRow)
		require.True(t, ok)
		require.Len(t, row.Components, 1)
		menu, ok := row.Components[0].(discordgo.SelectMenu)
		require.True(t, ok)
		menus = append(menus, menu)
	}
	return menus
}

func TestRenderStatus(t *testing.T) {
	waiting := renderStatus(&game.Status{
		Phase:   models.PhaseWaiting,
		Entries: []models.Entrant{{ID: "u1", Name: "Alice"}, {ID: "u2", Name: "Bob"}, {ID: "u3", Name: "Carol"}},
		Cast:    models.CastPlan{models.RoleWerewolf: 1, models.RoleTeller: 1},
	})
	require.Len(t, waiting.Fields, 2)
	assert.Equal(t, "Lobby (3)", waiting.Fields[0].Name)
	assert.Equal(t, "Alice\nBob\nCarol", waiting.Fields[0].Value)
	assert.Equal(t, "Fortune Teller x1\nWerewolf x1\n+1 Villager", waiting.Fields[1].Value)

	running := renderStatus(&game.Status{
		Phase:       models.PhaseNight,
		Day:         1,
		SecondsLeft: 42,
		Players: []*models.Player{
			{ID: "u1", Name: "Alice", Alive: true},
			{ID: "u2", Name: "Bob", Alive: false},
		},
	})
	assert.Equal(t, "Day 2, **night**. 42 seconds left.", running.Description)
	require.Len(t, running.Fields, 2)
	assert.Equal(t, "Alive (1)", running.Fields[0].Name)
	assert.Equal(t, "Dead (1)", running.Fields[1].Name)
	assert.Equal(t, "Bob", running.Fields[1].Value)
}

func TestRenderLeaderboardAndHistory(t *testing.T) {
	empty := renderLeaderboard(nil)
	assert.Equal(t, "No finished games yet.", empty.Description)

	board := renderLeaderboard([]*models.PlayerStats{
		{PlayerID: "u1", PlayerName: "Alice", Wins: 3, Games: 4},
		{PlayerID: "u2", Wins: 1, Games: 4},
	})
	assert.Equal(t, "1. **Alice** - 3 wins / 4 games\n2. **u2** - 1 wins / 4 games\n", board.Description)

	history := renderHistory([]*models.GameRecord{{
		Outcome: models.OutcomeWerewolvesWin,
		Days:    2,
		Players: []*models.Player{{Alive: true}, {Alive: false}, {Alive: false}},
		EndedAt: time.Date(2025, 4, 19, 22, 15, 0, 0, time.UTC),
	}})
	require.Len(t, history.Fields, 1)
	assert.Equal(t, "Werewolves won (Apr 19 22:15)", history.Fields[0].Name)
	assert.Equal(t, "3 players, 1 survived, 3 days", history.Fields[0].Value)
	assert.Equal(t, outcomeColor[models.OutcomeWerewolvesWin], history.Color)
}

func TestRenderStats(t *testing.T) {
	embed := renderStats("Alice", &models.PlayerStats{Games: 5, Wins: 2, Losses: 3})
	assert.Equal(t, "Alice's record", embed.Title)
	require.Len(t, embed.Fields, 3)
	assert.Equal(t, "5", embed.Fields[0].Value)
	assert.Equal(t, "2", embed.Fields[1].Value)
	assert.Equal(t, "3", embed.Fields[2].Value)
}
