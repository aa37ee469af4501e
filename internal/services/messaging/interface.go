package messaging

import "context"

// Service turns game events into player-facing text
type Service interface {
	// GetPhaseMessage returns the announcement for a phase opening
	GetPhaseMessage(ctx context.Context, input *GetPhaseMessageInput) (*GetPhaseMessageOutput, error)

	// GetRoleAssignmentMessage returns the private message telling a player their role
	GetRoleAssignmentMessage(ctx context.Context, input *GetRoleAssignmentMessageInput) (*GetRoleAssignmentMessageOutput, error)

	// GetPromptMessage returns the instruction sent alongside an action prompt
	GetPromptMessage(ctx context.Context, input *GetPromptMessageInput) (*GetPromptMessageOutput, error)

	// GetExecutionMessage returns the announcement of the evening vote result
	GetExecutionMessage(ctx context.Context, input *GetExecutionMessageInput) (*GetExecutionMessageOutput, error)

	// GetNightReportMessage returns the morning announcement of what happened at night
	GetNightReportMessage(ctx context.Context, input *GetNightReportMessageInput) (*GetNightReportMessageOutput, error)

	// GetInspectionMessage returns a teller's private result
	GetInspectionMessage(ctx context.Context, input *GetInspectionMessageInput) (*GetInspectionMessageOutput, error)

	// GetPsychicMessage returns a psychic's private reading of the executed player
	GetPsychicMessage(ctx context.Context, input *GetPsychicMessageInput) (*GetPsychicMessageOutput, error)

	// GetGameOverMessage returns the final announcement with every role revealed
	GetGameOverMessage(ctx context.Context, input *GetGameOverMessageInput) (*GetGameOverMessageOutput, error)

	// GetErrorMessage returns a user-friendly explanation of a failed command
	GetErrorMessage(ctx context.Context, input *GetErrorMessageInput) (*GetErrorMessageOutput, error)
}
