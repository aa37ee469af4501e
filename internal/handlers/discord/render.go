package discord

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/KirkDiggler/werewolf/internal/models"
	"github.com/KirkDiggler/werewolf/internal/services/game"
	"github.com/KirkDiggler/werewolf/internal/services/messaging"
	"github.com/bwmarrin/discordgo"
)

// promptPrefix marks select menus that carry a game action
const promptPrefix = "ww"

// discord allows 25 options per select menu and five action rows per message
const (
	maxSelectOptions = 25
	maxSelectMenus   = 5
)

var errNotPrompt = errors.New("not a werewolf prompt")

var actionEmoji = map[models.ActionType]string{
	models.ActionVote:    "🗳️",
	models.ActionInspect: "🔮",
	models.ActionProtect: "🛡️",
	models.ActionKill:    "🐺",
}

var actionPlaceholder = map[models.ActionType]string{
	models.ActionVote:    "Vote to execute",
	models.ActionInspect: "Choose a player to read",
	models.ActionProtect: "Choose a player to guard",
	models.ActionKill:    "Choose tonight's victim",
}

var outcomeColor = map[models.Outcome]int{
	models.OutcomeVillagersWin:  0x2ecc71,
	models.OutcomeWerewolvesWin: 0xe74c3c,
	models.OutcomeFoxWins:       0xe67e22,
	models.OutcomeForced:        0x95a5a6,
}

// promptCustomID encodes the action and the phase it was issued for,
// e.g. "ww:vote:evening:2". Menus after the first carry their index so
// every menu on a message has a distinct ID.
func promptCustomID(prompt *models.Prompt, menu int) string {
	id := fmt.Sprintf("%s:%s:%s:%d", promptPrefix, prompt.Action, prompt.Token.Phase, prompt.Token.Day)
	if menu > 0 {
		id += ":" + strconv.Itoa(menu)
	}
	return id
}

// parsePromptCustomID reverses promptCustomID; the menu index is dropped
func parsePromptCustomID(customID string) (models.ActionType, models.Token, error) {
	parts := strings.Split(customID, ":")
	if (len(parts) != 4 && len(parts) != 5) || parts[0] != promptPrefix {
		return "", models.Token{}, errNotPrompt
	}

	day, err := strconv.Atoi(parts[3])
	if err != nil || day < 0 {
		return "", models.Token{}, fmt.Errorf("%w: bad day %q", errNotPrompt, parts[3])
	}
	if len(parts) == 5 {
		if menu, err := strconv.Atoi(parts[4]); err != nil || menu < 1 || menu >= maxSelectMenus {
			return "", models.Token{}, fmt.Errorf("%w: bad menu %q", errNotPrompt, parts[4])
		}
	}

	return models.ActionType(parts[1]), models.Token{
		Phase: models.Phase(parts[2]),
		Day:   day,
	}, nil
}

// promptComponents renders a prompt as select menus of up to 25 players,
// one menu per action row
func promptComponents(prompt *models.Prompt) []discordgo.MessageComponent {
	if len(prompt.Targets) == 0 {
		return nil
	}

	placeholder := actionPlaceholder[prompt.Action]
	if placeholder == "" {
		placeholder = "Choose a player"
	}
	var emoji *discordgo.ComponentEmoji
	if name, ok := actionEmoji[prompt.Action]; ok {
		emoji = &discordgo.ComponentEmoji{Name: name}
	}

	var rows []discordgo.MessageComponent
	for start := 0; start < len(prompt.Targets) && len(rows) < maxSelectMenus; start += maxSelectOptions {
		chunk := prompt.Targets[start:min(start+maxSelectOptions, len(prompt.Targets))]

		options := make([]discordgo.SelectMenuOption, 0, len(chunk))
		for _, target := range chunk {
			options = append(options, discordgo.SelectMenuOption{
				Label: target.Name,
				Value: target.PlayerID,
				Emoji: emoji,
			})
		}

		menuPlaceholder := placeholder
		if len(prompt.Targets) > maxSelectOptions {
			menuPlaceholder = fmt.Sprintf("%s (%s to %s)", placeholder, chunk[0].Name, chunk[len(chunk)-1].Name)
		}

		rows = append(rows, discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				discordgo.SelectMenu{
					MenuType:    discordgo.StringSelectMenu,
					CustomID:    promptCustomID(prompt, len(rows)),
					Placeholder: menuPlaceholder,
					Options:     options,
				},
			},
		})
	}
	return rows
}

// renderStatus renders the current game or lobby
func renderStatus(status *game.Status) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title: "Werewolf",
		Color: 0x5865f2,
	}

	if !status.Phase.IsActive() {
		embed.Description = "Waiting for players. Join the lobby voice channel and use `/werewolf start`."

		names := make([]string, 0, len(status.Entries))
		for _, entrant := range status.Entries {
			names = append(names, entrant.Name)
		}
		embed.Fields = append(embed.Fields,
			&discordgo.MessageEmbedField{
				Name:  fmt.Sprintf("Lobby (%d)", len(status.Entries)),
				Value: listOrNone(names),
			},
			&discordgo.MessageEmbedField{
				Name:  "Cast",
				Value: castSummary(status.Cast, len(status.Entries)),
			},
		)
		return embed
	}

	embed.Description = fmt.Sprintf("Day %d, **%s**. %d seconds left.", status.Day+1, status.Phase, status.SecondsLeft)

	var living, dead []string
	for _, p := range status.Players {
		if p.Alive {
			living = append(living, p.Name)
		} else {
			dead = append(dead, p.Name)
		}
	}
	embed.Fields = append(embed.Fields,
		&discordgo.MessageEmbedField{
			Name:   fmt.Sprintf("Alive (%d)", len(living)),
			Value:  listOrNone(living),
			Inline: true,
		},
		&discordgo.MessageEmbedField{
			Name:   fmt.Sprintf("Dead (%d)", len(dead)),
			Value:  listOrNone(dead),
			Inline: true,
		},
	)
	return embed
}

// renderCast renders the configured role counts
func renderCast(plan models.CastPlan) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       "Cast",
		Description: castSummary(plan, 0),
		Color:       0x5865f2,
	}
}

// castSummary lists role counts in deal order. Any entrants beyond the
// plan's total are dealt as villagers.
func castSummary(plan models.CastPlan, entrants int) string {
	var lines []string
	for _, role := range models.Roles() {
		if count := plan[role]; count > 0 {
			lines = append(lines, fmt.Sprintf("%s x%d", messaging.RoleName(role), count))
		}
	}
	if extra := entrants - plan.Total(); extra > 0 {
		lines = append(lines, fmt.Sprintf("+%d %s", extra, messaging.RoleName(models.RoleVillager)))
	}
	return listOrNone(lines)
}

// renderStats renders a single player's record
func renderStats(name string, stats *models.PlayerStats) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title: fmt.Sprintf("%s's record", name),
		Color: 0x5865f2,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Games", Value: strconv.Itoa(stats.Games), Inline: true},
			{Name: "Wins", Value: strconv.Itoa(stats.Wins), Inline: true},
			{Name: "Losses", Value: strconv.Itoa(stats.Losses), Inline: true},
		},
	}
}

// renderLeaderboard renders players ordered by wins
func renderLeaderboard(stats []*models.PlayerStats) *discordgo.MessageEmbed {
	var b strings.Builder
	for i, s := range stats {
		name := s.PlayerName
		if name == "" {
			name = s.PlayerID
		}
		fmt.Fprintf(&b, "%d. **%s** - %d wins / %d games\n", i+1, name, s.Wins, s.Games)
	}

	description := b.String()
	if description == "" {
		description = "No finished games yet."
	}

	return &discordgo.MessageEmbed{
		Title:       "Leaderboard",
		Description: description,
		Color:       0xf1c40f,
	}
}

// renderHistory renders the most recent games, newest first
func renderHistory(records []*models.GameRecord) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title: "Recent games",
		Color: 0x5865f2,
	}
	if len(records) == 0 {
		embed.Description = "No finished games yet."
		return embed
	}

	for _, record := range records {
		alive := 0
		for _, p := range record.Players {
			if p.Alive {
				alive++
			}
		}
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name: fmt.Sprintf("%s (%s)", outcomeLabel(record.Outcome), record.EndedAt.Format("Jan 2 15:04")),
			Value: fmt.Sprintf("%d players, %d survived, %d days",
				len(record.Players), alive, record.Days+1),
		})
	}
	embed.Color = outcomeColor[records[0].Outcome]
	return embed
}

func outcomeLabel(outcome models.Outcome) string {
	switch outcome {
	case models.OutcomeVillagersWin:
		return "Villagers won"
	case models.OutcomeWerewolvesWin:
		return "Werewolves won"
	case models.OutcomeFoxWins:
		return "Fox won"
	case models.OutcomeForced:
		return "Stopped"
	default:
		return string(outcome)
	}
}

func listOrNone(items []string) string {
	if len(items) == 0 {
		return "None"
	}
	return strings.Join(items, "\n")
}
