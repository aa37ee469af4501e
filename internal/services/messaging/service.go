package messaging

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/KirkDiggler/werewolf/internal/common/random"
	"github.com/KirkDiggler/werewolf/internal/models"
)

// service implements the Service interface
type service struct {
	// Random source for selecting flavor lines
	random random.Source
}

// NewService creates a new messaging service
func NewService(config *ServiceConfig) (Service, error) {
	var src random.Source
	if config != nil && config.Random != nil {
		src = config.Random
	} else {
		src = random.New(nil)
	}

	return &service{
		random: src,
	}, nil
}

var roleNames = map[models.Role]string{
	models.RoleVillager: "Villager",
	models.RoleKnight:   "Knight",
	models.RoleTeller:   "Fortune Teller",
	models.RolePsychic:  "Psychic",
	models.RoleBakery:   "Baker",
	models.RoleWerewolf: "Werewolf",
	models.RoleMadman:   "Madman",
	models.RoleFox:      "Fox",
}

// RoleName returns the display name of a role
func RoleName(role models.Role) string {
	if name, ok := roleNames[role]; ok {
		return name
	}
	return string(role)
}

func (s *service) pick(lines []string) string {
	line, _ := random.Pick(s.random, lines)
	return line
}

// GetPhaseMessage returns the announcement for a phase opening
func (s *service) GetPhaseMessage(ctx context.Context, input *GetPhaseMessageInput) (*GetPhaseMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	var message string
	switch input.Phase {
	case models.PhaseDay:
		opener := s.pick([]string{
			"The sun rises over the village.",
			"Morning comes. The roosters are suspiciously quiet.",
			"A new day begins. Somebody here is lying.",
		})
		message = fmt.Sprintf("%s Day %d: you have %d seconds to talk it over.", opener, input.Day+1, input.Seconds)
	case models.PhaseEvening:
		message = fmt.Sprintf("Evening falls. Vote for the player to execute within %d seconds. Players who do not vote get a random vote.", input.Seconds)
	case models.PhaseNight:
		message = fmt.Sprintf("Night falls. Everyone returns home for %d seconds.", input.Seconds)
		if input.KillSuppressed {
			message += " The werewolves cannot kill anyone on the first night."
		}
	default:
		return nil, fmt.Errorf("no announcement for phase %q", input.Phase)
	}

	return &GetPhaseMessageOutput{
		Message: message,
	}, nil
}

// GetRoleAssignmentMessage returns the private message telling a player their role
func (s *service) GetRoleAssignmentMessage(ctx context.Context, input *GetRoleAssignmentMessageInput) (*GetRoleAssignmentMessageOutput, error) {
	if input == nil || input.Player == nil {
		return nil, errors.New("input and player cannot be nil")
	}

	message := fmt.Sprintf("You are the **%s**!", RoleName(input.Player.Role))

	if len(input.Partners) > 0 {
		names := make([]string, 0, len(input.Partners))
		for _, partner := range input.Partners {
			names = append(names, partner.Name)
		}
		message += fmt.Sprintf(" Your pack: %s.", strings.Join(names, ", "))
	}

	return &GetRoleAssignmentMessageOutput{
		Message: message,
	}, nil
}

// GetPromptMessage returns the instruction sent alongside an action prompt
func (s *service) GetPromptMessage(ctx context.Context, input *GetPromptMessageInput) (*GetPromptMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	var message string
	switch input.Action {
	case models.ActionVote:
		message = "Who should be executed?"
	case models.ActionInspect:
		message = "Choose a player to read. You will learn whether they are a werewolf."
	case models.ActionProtect:
		message = "Choose a player to guard tonight."
	case models.ActionKill:
		message = "Talk it over with your pack and choose tonight's victim. The last choice counts."
	default:
		return nil, fmt.Errorf("no prompt for action %q", input.Action)
	}

	return &GetPromptMessageOutput{
		Message: message,
	}, nil
}

// GetExecutionMessage returns the announcement of the evening vote result
func (s *service) GetExecutionMessage(ctx context.Context, input *GetExecutionMessageInput) (*GetExecutionMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	var b strings.Builder
	if len(input.TiedNames) > 1 {
		fmt.Fprintf(&b, "The vote was tied between %s. Fate chose %s.", strings.Join(input.TiedNames, ", "), input.ExecutedName)
	} else {
		fmt.Fprintf(&b, "With %d votes, %s has been executed.", input.Votes, input.ExecutedName)
	}

	if input.Abstained > 0 {
		fmt.Fprintf(&b, " (%d random votes)", input.Abstained)
	}

	return &GetExecutionMessageOutput{
		Message: b.String(),
	}, nil
}

// GetNightReportMessage returns the morning announcement of what happened at night
func (s *service) GetNightReportMessage(ctx context.Context, input *GetNightReportMessageInput) (*GetNightReportMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	var message string
	switch {
	case input.KillSuppressed:
		message = "The first night passed quietly."
	case input.Protected:
		message = "The knight protected the village from the werewolves!"
	case input.VictimName != "":
		message = fmt.Sprintf("%s was killed by the werewolves during the night.", input.VictimName)
	default:
		message = "Nobody died during the night."
	}

	return &GetNightReportMessageOutput{
		Message: message,
	}, nil
}

// GetInspectionMessage returns a teller's private result
func (s *service) GetInspectionMessage(ctx context.Context, input *GetInspectionMessageInput) (*GetInspectionMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	message := fmt.Sprintf("%s is not a werewolf.", input.TargetName)
	if input.WerewolfAligned {
		message = fmt.Sprintf("%s is a werewolf.", input.TargetName)
	}

	return &GetInspectionMessageOutput{
		Message: message,
	}, nil
}

// GetPsychicMessage returns a psychic's private reading of the executed player
func (s *service) GetPsychicMessage(ctx context.Context, input *GetPsychicMessageInput) (*GetPsychicMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	return &GetPsychicMessageOutput{
		Message: fmt.Sprintf("The spirit of %s reveals they were the **%s**.", input.TargetName, RoleName(input.Role)),
	}, nil
}

// GetGameOverMessage returns the final announcement with every role revealed
func (s *service) GetGameOverMessage(ctx context.Context, input *GetGameOverMessageInput) (*GetGameOverMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	var title string
	switch input.Outcome {
	case models.OutcomeWerewolvesWin:
		title = "The villagers have fallen. The werewolves win!"
	case models.OutcomeVillagersWin:
		title = "Every werewolf is dead. The villagers win!"
	case models.OutcomeFoxWins:
		title = "The fox survived to the end. The fox wins!"
	case models.OutcomeForced:
		title = "The game was stopped."
	default:
		return nil, fmt.Errorf("game is not over: %s", input.Outcome)
	}

	lines := make([]string, 0, len(input.Players))
	for _, p := range input.Players {
		status := ""
		if !p.Alive {
			status = " (dead)"
		}
		lines = append(lines, fmt.Sprintf("%s - %s%s", p.Name, RoleName(p.Role), status))
	}

	return &GetGameOverMessageOutput{
		Title:  title,
		Reveal: strings.Join(lines, "\n"),
	}, nil
}

// GetErrorMessage returns a user-friendly explanation of a failed command
func (s *service) GetErrorMessage(ctx context.Context, input *GetErrorMessageInput) (*GetErrorMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	var insufficient *models.InsufficientPlayersError
	var message string
	switch {
	case errors.As(input.Err, &insufficient):
		message = fmt.Sprintf("Not enough players in the lobby: the cast needs %d, %d present (%d missing).",
			insufficient.Required, insufficient.Available, insufficient.Missing())
	case errors.Is(input.Err, models.ErrInvalidTarget):
		message = "You can't choose that player."
	case errors.Is(input.Err, models.ErrStalePhase):
		message = "Too late, that phase is already over."
	case errors.Is(input.Err, models.ErrActionNotAllowed):
		message = "You can't do that right now."
	case errors.Is(input.Err, models.ErrUnknownPlayer):
		message = "You're not part of this game."
	case errors.Is(input.Err, models.ErrInvalidCastPlan):
		message = "That cast is not valid. Counts must be zero or more."
	case errors.Is(input.Err, models.ErrGameInProgress):
		message = "A game is already running."
	case errors.Is(input.Err, models.ErrGameNotRunning):
		message = "No game is running."
	default:
		message = s.pick([]string{
			"Something went wrong. The werewolves may have chewed through a cable.",
			"Something went wrong. Please try again.",
		})
	}

	return &GetErrorMessageOutput{
		Message: message,
	}, nil
}
