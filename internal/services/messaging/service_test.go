package messaging

import (
	"context"
	"errors"
	"testing"

	randomMocks "github.com/KirkDiggler/werewolf/internal/common/random/mocks"
	"github.com/KirkDiggler/werewolf/internal/models"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type MessagingServiceTestSuite struct {
	suite.Suite
	mockCtrl   *gomock.Controller
	mockRandom *randomMocks.MockSource
	service    Service
	ctx        context.Context
}

func TestMessagingServiceSuite(t *testing.T) {
	suite.Run(t, new(MessagingServiceTestSuite))
}

func (s *MessagingServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockRandom = randomMocks.NewMockSource(s.mockCtrl)
	s.ctx = context.Background()

	svc, err := NewService(&ServiceConfig{Random: s.mockRandom})
	s.Require().NoError(err)
	s.service = svc
}

func (s *MessagingServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func (s *MessagingServiceTestSuite) TestGetPhaseMessage_Day() {
	s.mockRandom.EXPECT().Intn(3).Return(0)

	out, err := s.service.GetPhaseMessage(s.ctx, &GetPhaseMessageInput{
		Phase:   models.PhaseDay,
		Day:     1,
		Seconds: 240,
	})
	s.Require().NoError(err)
	s.Equal("The sun rises over the village. Day 2: you have 240 seconds to talk it over.", out.Message)
}

func (s *MessagingServiceTestSuite) TestGetPhaseMessage_FirstNight() {
	out, err := s.service.GetPhaseMessage(s.ctx, &GetPhaseMessageInput{
		Phase:          models.PhaseNight,
		Seconds:        120,
		KillSuppressed: true,
	})
	s.Require().NoError(err)
	s.Contains(out.Message, "120 seconds")
	s.Contains(out.Message, "cannot kill anyone on the first night")
}

func (s *MessagingServiceTestSuite) TestGetPhaseMessage_UnknownPhase() {
	_, err := s.service.GetPhaseMessage(s.ctx, &GetPhaseMessageInput{Phase: models.PhaseWaiting})
	s.Error(err)
}

func (s *MessagingServiceTestSuite) TestGetRoleAssignmentMessage() {
	out, err := s.service.GetRoleAssignmentMessage(s.ctx, &GetRoleAssignmentMessageInput{
		Player:   &models.Player{ID: "w1", Name: "Wolf", Role: models.RoleWerewolf},
		Partners: []*models.Player{{ID: "m1", Name: "Mad", Role: models.RoleMadman}},
	})
	s.Require().NoError(err)
	s.Equal("You are the **Werewolf**! Your pack: Mad.", out.Message)

	out, err = s.service.GetRoleAssignmentMessage(s.ctx, &GetRoleAssignmentMessageInput{
		Player: &models.Player{ID: "t1", Name: "Seer", Role: models.RoleTeller},
	})
	s.Require().NoError(err)
	s.Equal("You are the **Fortune Teller**!", out.Message)
}

func (s *MessagingServiceTestSuite) TestGetExecutionMessage() {
	out, err := s.service.GetExecutionMessage(s.ctx, &GetExecutionMessageInput{
		ExecutedName: "Alice",
		Votes:        3,
	})
	s.Require().NoError(err)
	s.Equal("With 3 votes, Alice has been executed.", out.Message)

	out, err = s.service.GetExecutionMessage(s.ctx, &GetExecutionMessageInput{
		ExecutedName: "Bob",
		Votes:        2,
		TiedNames:    []string{"Alice", "Bob"},
		Abstained:    1,
	})
	s.Require().NoError(err)
	s.Equal("The vote was tied between Alice, Bob. Fate chose Bob. (1 random votes)", out.Message)
}

func (s *MessagingServiceTestSuite) TestGetNightReportMessage() {
	tests := []struct {
		name  string
		input *GetNightReportMessageInput
		want  string
	}{
		{"suppressed", &GetNightReportMessageInput{KillSuppressed: true}, "The first night passed quietly."},
		{"protected", &GetNightReportMessageInput{Protected: true}, "The knight protected the village from the werewolves!"},
		{"killed", &GetNightReportMessageInput{VictimName: "Carol"}, "Carol was killed by the werewolves during the night."},
		{"quiet", &GetNightReportMessageInput{}, "Nobody died during the night."},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			out, err := s.service.GetNightReportMessage(s.ctx, tt.input)
			s.Require().NoError(err)
			s.Equal(tt.want, out.Message)
		})
	}
}

func (s *MessagingServiceTestSuite) TestGetInspectionMessage() {
	out, err := s.service.GetInspectionMessage(s.ctx, &GetInspectionMessageInput{TargetName: "Dan", WerewolfAligned: true})
	s.Require().NoError(err)
	s.Equal("Dan is a werewolf.", out.Message)

	out, err = s.service.GetInspectionMessage(s.ctx, &GetInspectionMessageInput{TargetName: "Eve"})
	s.Require().NoError(err)
	s.Equal("Eve is not a werewolf.", out.Message)
}

func (s *MessagingServiceTestSuite) TestGetPsychicMessage() {
	out, err := s.service.GetPsychicMessage(s.ctx, &GetPsychicMessageInput{TargetName: "Fay", Role: models.RoleFox})
	s.Require().NoError(err)
	s.Contains(out.Message, "**Fox**")
}

func (s *MessagingServiceTestSuite) TestGetGameOverMessage() {
	out, err := s.service.GetGameOverMessage(s.ctx, &GetGameOverMessageInput{
		Outcome: models.OutcomeVillagersWin,
		Players: []*models.Player{
			{Name: "Wolf", Role: models.RoleWerewolf, Alive: false},
			{Name: "Seer", Role: models.RoleTeller, Alive: true},
		},
	})
	s.Require().NoError(err)
	s.Equal("Every werewolf is dead. The villagers win!", out.Title)
	s.Equal("Wolf - Werewolf (dead)\nSeer - Fortune Teller", out.Reveal)

	_, err = s.service.GetGameOverMessage(s.ctx, &GetGameOverMessageInput{Outcome: models.OutcomeNotEnded})
	s.Error(err)
}

func (s *MessagingServiceTestSuite) TestGetErrorMessage() {
	out, err := s.service.GetErrorMessage(s.ctx, &GetErrorMessageInput{
		Err: &models.InsufficientPlayersError{Required: 6, Available: 4},
	})
	s.Require().NoError(err)
	s.Contains(out.Message, "2 missing")

	out, err = s.service.GetErrorMessage(s.ctx, &GetErrorMessageInput{Err: models.ErrStalePhase})
	s.Require().NoError(err)
	s.Equal("Too late, that phase is already over.", out.Message)

	s.mockRandom.EXPECT().Intn(2).Return(1)
	out, err = s.service.GetErrorMessage(s.ctx, &GetErrorMessageInput{Err: errors.New("boom")})
	s.Require().NoError(err)
	s.Equal("Something went wrong. Please try again.", out.Message)
}

func (s *MessagingServiceTestSuite) TestRoleName_AllRolesNamed() {
	for _, role := range models.Roles() {
		s.NotEqual(string(role), RoleName(role), "role %s has no display name", role)
	}
}
