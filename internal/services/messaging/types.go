package messaging

import (
	"github.com/KirkDiggler/werewolf/internal/common/random"
	"github.com/KirkDiggler/werewolf/internal/models"
)

// ServiceConfig contains configuration for the messaging service
type ServiceConfig struct {
	// Random picks flavor lines; a time-seeded roller is used when nil
	Random random.Source
}

// GetPhaseMessageInput contains parameters for a phase announcement
type GetPhaseMessageInput struct {
	Phase models.Phase
	Day   int

	// Seconds is how long the phase lasts
	Seconds int

	// KillSuppressed is set on nights where the werewolves cannot kill
	KillSuppressed bool
}

// GetPhaseMessageOutput contains the phase announcement
type GetPhaseMessageOutput struct {
	Message string
}

// GetRoleAssignmentMessageInput contains parameters for a role reveal to one player
type GetRoleAssignmentMessageInput struct {
	Player *models.Player

	// Partners are the other werewolf-aligned players, only filled for them
	Partners []*models.Player
}

// GetRoleAssignmentMessageOutput contains the role reveal
type GetRoleAssignmentMessageOutput struct {
	Message string
}

// GetPromptMessageInput contains parameters for an action prompt
type GetPromptMessageInput struct {
	Action models.ActionType
}

// GetPromptMessageOutput contains the prompt instruction
type GetPromptMessageOutput struct {
	Message string
}

// GetExecutionMessageInput contains parameters for the vote result
type GetExecutionMessageInput struct {
	ExecutedName string
	Votes        int

	// TiedNames is set when the execution was drawn from a tie
	TiedNames []string

	// Abstained is the number of votes that were cast at random
	Abstained int
}

// GetExecutionMessageOutput contains the vote result announcement
type GetExecutionMessageOutput struct {
	Message string
}

// GetNightReportMessageInput contains parameters for the night report
type GetNightReportMessageInput struct {
	// VictimName is empty when nobody died
	VictimName string

	Protected      bool
	KillSuppressed bool
}

// GetNightReportMessageOutput contains the night report
type GetNightReportMessageOutput struct {
	Message string
}

// GetInspectionMessageInput contains parameters for a teller's result
type GetInspectionMessageInput struct {
	TargetName      string
	WerewolfAligned bool
}

// GetInspectionMessageOutput contains a teller's result
type GetInspectionMessageOutput struct {
	Message string
}

// GetPsychicMessageInput contains parameters for a psychic's reading
type GetPsychicMessageInput struct {
	TargetName string
	Role       models.Role
}

// GetPsychicMessageOutput contains a psychic's reading
type GetPsychicMessageOutput struct {
	Message string
}

// GetGameOverMessageInput contains parameters for the final announcement
type GetGameOverMessageInput struct {
	Outcome models.Outcome
	Days    int
	Players []*models.Player
}

// GetGameOverMessageOutput contains the final announcement
type GetGameOverMessageOutput struct {
	Title string

	// Reveal lists every player with their role, one per line
	Reveal string
}

// GetErrorMessageInput contains parameters for an error explanation
type GetErrorMessageInput struct {
	Err error
}

// GetErrorMessageOutput contains an error explanation
type GetErrorMessageOutput struct {
	Message string
}
