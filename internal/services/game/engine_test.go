package game_test

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	clockMocks "github.com/KirkDiggler/werewolf/internal/common/clock/mocks"
	"github.com/KirkDiggler/werewolf/internal/common/random"
	uuidMocks "github.com/KirkDiggler/werewolf/internal/common/uuid/mocks"
	"github.com/KirkDiggler/werewolf/internal/models"
	gameRepo "github.com/KirkDiggler/werewolf/internal/repositories/game"
	gameRepoMocks "github.com/KirkDiggler/werewolf/internal/repositories/game/mocks"
	playerRepo "github.com/KirkDiggler/werewolf/internal/repositories/player"
	playerRepoMocks "github.com/KirkDiggler/werewolf/internal/repositories/player/mocks"
	"github.com/KirkDiggler/werewolf/internal/services/game"
	"github.com/KirkDiggler/werewolf/internal/services/game/mocks"
	"github.com/KirkDiggler/werewolf/internal/services/messaging"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest"
	"go.uber.org/zap/zaptest/observer"
)

type sentNotice struct {
	room    models.Room
	content string
	prompt  *models.Prompt
}

type EngineTestSuite struct {
	suite.Suite
	mockCtrl       *gomock.Controller
	mockNotifier   *mocks.MockNotifier
	mockRooms      *mocks.MockRoomProvisioner
	mockMuter      *mocks.MockMuter
	mockClock      *clockMocks.MockClock
	mockUUID       *uuidMocks.MockUUID
	mockGameRepo   *gameRepoMocks.MockRepository
	mockPlayerRepo *playerRepoMocks.MockRepository
	logger         *zap.Logger
	ctx            context.Context

	testTime time.Time
	lobby    []models.Entrant
	rules    game.Rules

	mu      sync.Mutex
	notices []sentNotice
}

func TestEngineTestSuite(t *testing.T) {
	suite.Run(t, new(EngineTestSuite))
}

func (s *EngineTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockNotifier = mocks.NewMockNotifier(s.mockCtrl)
	s.mockRooms = mocks.NewMockRoomProvisioner(s.mockCtrl)
	s.mockMuter = mocks.NewMockMuter(s.mockCtrl)
	s.mockClock = clockMocks.NewMockClock(s.mockCtrl)
	s.mockUUID = uuidMocks.NewMockUUID(s.mockCtrl)
	s.mockGameRepo = gameRepoMocks.NewMockRepository(s.mockCtrl)
	s.mockPlayerRepo = playerRepoMocks.NewMockRepository(s.mockCtrl)
	s.logger = zaptest.NewLogger(s.T())
	s.ctx = context.Background()

	s.testTime = time.Date(2025, 4, 19, 21, 0, 0, 0, time.UTC)
	s.mockClock.EXPECT().Now().Return(s.testTime).AnyTimes()
	s.mockUUID.EXPECT().NewUUID().Return("game-1").AnyTimes()

	s.lobby = nil
	for i := 1; i <= 7; i++ {
		s.lobby = append(s.lobby, models.Entrant{ID: fmt.Sprintf("p%d", i), Name: fmt.Sprintf("Player %d", i)})
	}

	// two ticks per phase
	s.rules = game.Rules{
		DayDuration:     2 * time.Second,
		EveningDuration: 2 * time.Second,
		NightDuration:   2 * time.Second,
		TickInterval:    time.Second,
	}

	s.notices = nil
}

func (s *EngineTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

// newEngine builds an engine over the mocks with the lobby registered
func (s *EngineTestSuite) newEngine(rules game.Rules, plan models.CastPlan) *game.Engine {
	messenger, err := messaging.NewService(&messaging.ServiceConfig{
		Random: random.New(&random.Config{Seed: 7}),
	})
	s.Require().NoError(err)

	e, err := game.NewEngine(&game.EngineConfig{
		GuildID: "guild-1",
		Rules:   rules,
		Platform: &game.Platform{
			Notifier: s.mockNotifier,
			Rooms:    s.mockRooms,
			Muter:    s.mockMuter,
		},
		Messaging:  messenger,
		Random:     random.New(&random.Config{Seed: 42}),
		Clock:      s.mockClock,
		UUID:       s.mockUUID,
		GameRepo:   s.mockGameRepo,
		PlayerRepo: s.mockPlayerRepo,
		Logger:     s.logger,
	})
	s.Require().NoError(err)

	s.Require().NoError(e.SetCast(plan))
	for _, entrant := range s.lobby {
		s.True(e.Register(entrant))
	}
	return e
}

// expectPlatform accepts every platform call and records notices
func (s *EngineTestSuite) expectPlatform() {
	s.mockNotifier.EXPECT().
		Notify(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, room models.Room, content string, prompt *models.Prompt) error {
			s.mu.Lock()
			defer s.mu.Unlock()
			s.notices = append(s.notices, sentNotice{room: room, content: content, prompt: prompt})
			return nil
		}).
		AnyTimes()
	s.mockNotifier.EXPECT().MoveTo(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	s.mockNotifier.EXPECT().RoomOccupants(gomock.Any(), models.SharedRoom()).Return(s.lobby, nil).AnyTimes()
	s.mockRooms.EXPECT().PrepareRooms(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	s.mockRooms.EXPECT().ReleaseRooms(gomock.Any()).Return(nil).AnyTimes()
	s.mockMuter.EXPECT().SetMuted(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
}

func (s *EngineTestSuite) tick(e *game.Engine, n int) bool {
	var ended bool
	for i := 0; i < n; i++ {
		ended = e.Tick(s.ctx)
	}
	return ended
}

func (s *EngineTestSuite) lastPrompt(action models.ActionType) *models.Prompt {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := len(s.notices) - 1; i >= 0; i-- {
		if p := s.notices[i].prompt; p != nil && p.Action == action {
			return p
		}
	}
	return nil
}

func (s *EngineTestSuite) noticesTo(room models.Room) []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []string
	for _, n := range s.notices {
		if n.room == room {
			out = append(out, n.content)
		}
	}
	return out
}

func playersBy(status *game.Status, keep func(*models.Player) bool) []*models.Player {
	var out []*models.Player
	for _, p := range status.Players {
		if keep(p) {
			out = append(out, p)
		}
	}
	return out
}

// voteAll makes every living player vote for target; target votes for fallback
func (s *EngineTestSuite) voteAll(e *game.Engine, target, fallback string) {
	status := e.Status()
	s.Require().Equal(models.PhaseEvening, status.Phase)
	token := models.Token{Phase: models.PhaseEvening, Day: status.Day}

	for _, p := range status.Players {
		if !p.Alive {
			continue
		}
		choice := target
		if p.ID == target {
			choice = fallback
		}
		s.Require().NoError(e.Submit(game.Submission{
			PlayerID: p.ID,
			Action:   models.ActionVote,
			Token:    token,
			TargetID: choice,
		}))
	}
}

func (s *EngineTestSuite) TestNewEngine_Validation() {
	_, err := game.NewEngine(nil)
	s.ErrorIs(err, game.ErrNilConfig)

	_, err = game.NewEngine(&game.EngineConfig{GuildID: "guild-1"})
	s.ErrorIs(err, game.ErrNilPlatform)

	_, err = game.NewEngine(&game.EngineConfig{GuildID: "guild-1", Platform: &game.Platform{}})
	s.ErrorIs(err, game.ErrNilNotifier)

	_, err = game.NewEngine(&game.EngineConfig{Platform: &game.Platform{Notifier: s.mockNotifier}})
	s.ErrorIs(err, game.ErrMissingGuildID)
}

func (s *EngineTestSuite) TestStart_InsufficientPlayers() {
	e := s.newEngine(s.rules, models.CastPlan{
		models.RoleWerewolf: 4,
		models.RoleTeller:   2,
		models.RoleKnight:   3,
	})

	_, err := e.Start(s.ctx)

	var insufficient *models.InsufficientPlayersError
	s.Require().ErrorAs(err, &insufficient)
	s.ErrorIs(err, models.ErrInsufficientPlayers)
	s.Equal(2, insufficient.Missing())

	// nothing was dealt and the pool is untouched
	status := e.Status()
	s.Equal(models.PhaseWaiting, status.Phase)
	s.Len(status.Entries, 7)
}

func (s *EngineTestSuite) TestStart_EmptyPool() {
	s.lobby = nil
	e := s.newEngine(s.rules, models.CastPlan{})

	_, err := e.Start(s.ctx)
	s.ErrorIs(err, models.ErrInsufficientPlayers)
}

func (s *EngineTestSuite) TestStart_AnnouncesRolesAndOpensDay() {
	s.expectPlatform()
	e := s.newEngine(s.rules, models.CastPlan{models.RoleWerewolf: 2, models.RoleTeller: 1})

	gameID, err := e.Start(s.ctx)
	s.Require().NoError(err)
	s.Equal("game-1", gameID)

	status := e.Status()
	s.Equal(models.PhaseDay, status.Phase)
	s.Equal(0, status.Day)
	s.Equal(2, status.SecondsLeft)
	s.Len(status.Players, 7)
	s.Empty(status.Entries)

	for _, p := range status.Players {
		messages := s.noticesTo(models.PrivateRoom(p.ID))
		s.Require().Len(messages, 1, "player %s", p.ID)
		s.Contains(messages[0], "You are the **"+messaging.RoleName(p.Role)+"**!")
	}

	// a second start is rejected while the game runs
	_, err = e.Start(s.ctx)
	s.ErrorIs(err, models.ErrGameInProgress)

	// the pool is frozen
	s.False(e.Register(models.Entrant{ID: "late", Name: "Late"}))
}

func (s *EngineTestSuite) TestFullCycle_NoSubmissions() {
	s.expectPlatform()
	rules := s.rules
	rules.AllowFirstNightKill = true
	e := s.newEngine(rules, models.CastPlan{models.RoleWerewolf: 2})

	_, err := e.Start(s.ctx)
	s.Require().NoError(err)

	s.False(s.tick(e, 2))
	s.Equal(models.PhaseEvening, e.Status().Phase)
	vote := s.lastPrompt(models.ActionVote)
	s.Require().NotNil(vote)
	s.Equal(models.Token{Phase: models.PhaseEvening, Day: 0}, vote.Token)
	s.Len(vote.Targets, 7)

	s.False(s.tick(e, 2))
	status := e.Status()
	s.Equal(models.PhaseNight, status.Phase)
	executed := playersBy(status, func(p *models.Player) bool { return !p.Alive })
	s.Require().Len(executed, 1, "abstained votes still execute someone")

	kill := s.lastPrompt(models.ActionKill)
	s.Require().NotNil(kill)
	s.Equal(models.Token{Phase: models.PhaseNight, Day: 0}, kill.Token)
	for _, target := range kill.Targets {
		s.NotEqual(executed[0].ID, target.PlayerID)
	}

	s.False(s.tick(e, 2))
	status = e.Status()
	s.Equal(models.PhaseDay, status.Phase)
	s.Equal(1, status.Day)

	dead := playersBy(status, func(p *models.Player) bool { return !p.Alive })
	s.Require().Len(dead, 2)
	for _, p := range dead {
		if p.ID != executed[0].ID {
			s.False(p.IsWerewolfAligned(), "random kill hit a werewolf")
		}
	}
}

func (s *EngineTestSuite) TestFirstNight_KillSuppressed() {
	s.expectPlatform()
	e := s.newEngine(s.rules, models.CastPlan{models.RoleWerewolf: 2})

	_, err := e.Start(s.ctx)
	s.Require().NoError(err)
	s.tick(e, 4)

	status := e.Status()
	s.Require().Equal(models.PhaseNight, status.Phase)
	s.Nil(s.lastPrompt(models.ActionKill))

	wolves := playersBy(status, func(p *models.Player) bool { return p.Alive && p.IsWerewolfAligned() })
	villagers := playersBy(status, func(p *models.Player) bool { return p.Alive && !p.IsWerewolfAligned() })
	s.Require().NotEmpty(wolves)
	s.Require().NotEmpty(villagers)

	err = e.Submit(game.Submission{
		PlayerID: wolves[0].ID,
		Action:   models.ActionKill,
		Token:    models.Token{Phase: models.PhaseNight, Day: 0},
		TargetID: villagers[0].ID,
	})
	s.ErrorIs(err, models.ErrActionNotAllowed)

	s.tick(e, 2)
	status = e.Status()
	s.Equal(models.PhaseDay, status.Phase)
	s.Equal(1, status.Day)
	s.Len(playersBy(status, func(p *models.Player) bool { return !p.Alive }), 1)
	s.Contains(s.noticesTo(models.SharedRoom()), "The first night passed quietly.")
}

func (s *EngineTestSuite) TestForceStop_EndsWithinOneTickInEveryPhase() {
	s.expectPlatform()
	e := s.newEngine(s.rules, models.CastPlan{models.RoleWerewolf: 2})

	var saved []*models.GameRecord
	s.mockGameRepo.EXPECT().
		SaveRecord(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input *gameRepo.SaveRecordInput) error {
			saved = append(saved, input.Record)
			return nil
		}).
		Times(3)
	// forced games never touch player stats
	s.mockPlayerRepo.EXPECT().RecordResult(gomock.Any(), gomock.Any()).Times(0)

	phases := []struct {
		ticks int
		phase models.Phase
	}{
		{0, models.PhaseDay},
		{3, models.PhaseEvening},
		{5, models.PhaseNight},
	}

	for _, tt := range phases {
		_, err := e.Start(s.ctx)
		s.Require().NoError(err, "phase %s", tt.phase)

		s.tick(e, tt.ticks)
		s.Require().Equal(tt.phase, e.Status().Phase)

		s.Require().NoError(e.Stop())
		s.True(e.Tick(s.ctx), "game did not end on the tick after stop in %s", tt.phase)

		status := e.Status()
		s.Equal(models.PhaseWaiting, status.Phase)
		s.Empty(status.Players)
		s.Len(status.Entries, 7, "pool is re-seeded from the shared room")
	}

	s.Require().Len(saved, 3)
	for _, record := range saved {
		s.Equal(models.OutcomeForced, record.Outcome)
		s.Equal("guild-1", record.GuildID)
		s.Len(record.Players, 7)
	}

	s.ErrorIs(e.Stop(), models.ErrGameNotRunning)
}

func (s *EngineTestSuite) TestSubmit_StaleAndUnknown() {
	s.expectPlatform()
	e := s.newEngine(s.rules, models.CastPlan{models.RoleWerewolf: 2})

	err := e.Submit(game.Submission{PlayerID: "p1", Action: models.ActionVote})
	s.ErrorIs(err, models.ErrGameNotRunning)

	_, err = e.Start(s.ctx)
	s.Require().NoError(err)

	// nothing to submit during the day
	err = e.Submit(game.Submission{
		PlayerID: "p1",
		Action:   models.ActionVote,
		Token:    models.Token{Phase: models.PhaseDay},
		TargetID: "p2",
	})
	s.ErrorIs(err, models.ErrStalePhase)

	s.tick(e, 2)
	evening := models.Token{Phase: models.PhaseEvening, Day: 0}

	s.NoError(e.Submit(game.Submission{PlayerID: "p1", Action: models.ActionVote, Token: evening, TargetID: "p2"}))
	s.ErrorIs(e.Submit(game.Submission{PlayerID: "p1", Action: models.ActionVote, Token: evening, TargetID: "p1"}), models.ErrInvalidTarget)
	s.ErrorIs(e.Submit(game.Submission{PlayerID: "ghost", Action: models.ActionVote, Token: evening, TargetID: "p2"}), models.ErrUnknownPlayer)
	s.ErrorIs(e.Submit(game.Submission{PlayerID: "p1", Action: models.ActionVote, Token: evening, TargetID: "ghost"}), models.ErrUnknownPlayer)
	s.ErrorIs(e.Submit(game.Submission{PlayerID: "p1", Action: models.ActionVote, Token: models.Token{Phase: models.PhaseEvening, Day: 3}, TargetID: "p2"}), models.ErrStalePhase)
	s.ErrorIs(e.Submit(game.Submission{PlayerID: "p1", Action: "dance", Token: evening, TargetID: "p2"}), game.ErrUnknownAction)

	s.tick(e, 2)
	s.Require().Equal(models.PhaseNight, e.Status().Phase)

	// the evening prompt is no longer valid
	s.ErrorIs(e.Submit(game.Submission{PlayerID: "p1", Action: models.ActionVote, Token: evening, TargetID: "p3"}), models.ErrStalePhase)
}

func (s *EngineTestSuite) TestDeliveryFailure_DoesNotAbortPhase() {
	var moves sync.Map
	s.mockNotifier.EXPECT().
		MoveTo(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, playerID string, _ models.Room) error {
			moves.Store(playerID, true)
			if playerID == "p3" {
				return errors.New("user left the voice channel")
			}
			return nil
		}).
		AnyTimes()
	s.mockNotifier.EXPECT().
		Notify(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, room models.Room, content string, prompt *models.Prompt) error {
			if room == models.PrivateRoom("p3") {
				return errors.New("channel deleted")
			}
			s.mu.Lock()
			defer s.mu.Unlock()
			s.notices = append(s.notices, sentNotice{room: room, content: content, prompt: prompt})
			return nil
		}).
		AnyTimes()
	s.mockRooms.EXPECT().PrepareRooms(gomock.Any(), gomock.Any()).Return(errors.New("missing permissions"))
	s.mockMuter.EXPECT().SetMuted(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	e := s.newEngine(s.rules, models.CastPlan{models.RoleWerewolf: 2})

	_, err := e.Start(s.ctx)
	s.Require().NoError(err)

	for _, entrant := range s.lobby {
		_, ok := moves.Load(entrant.ID)
		s.True(ok, "player %s was not moved", entrant.ID)
	}
	for _, entrant := range s.lobby {
		if entrant.ID == "p3" {
			continue
		}
		s.Len(s.noticesTo(models.PrivateRoom(entrant.ID)), 1)
	}

	s.tick(e, 2)
	s.Equal(models.PhaseEvening, e.Status().Phase)
	s.NotNil(s.lastPrompt(models.ActionVote))
}

func (s *EngineTestSuite) TestWin_EndsGameRecordsStatsAndResets() {
	s.lobby = s.lobby[:3]
	s.expectPlatform()
	e := s.newEngine(s.rules, models.CastPlan{models.RoleWerewolf: 1})

	var saved *models.GameRecord
	s.mockGameRepo.EXPECT().
		SaveRecord(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input *gameRepo.SaveRecordInput) error {
			saved = input.Record
			return nil
		})

	results := map[string]bool{}
	s.mockPlayerRepo.EXPECT().
		RecordResult(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input *playerRepo.RecordResultInput) error {
			s.Equal("guild-1", input.GuildID)
			results[input.PlayerID] = input.Won
			return nil
		}).
		Times(3)

	_, err := e.Start(s.ctx)
	s.Require().NoError(err)
	s.tick(e, 2)

	status := e.Status()
	wolves := playersBy(status, func(p *models.Player) bool { return p.IsWerewolfAligned() })
	villagers := playersBy(status, func(p *models.Player) bool { return !p.IsWerewolfAligned() })
	s.Require().Len(wolves, 1)
	s.Require().Len(villagers, 2)

	s.voteAll(e, wolves[0].ID, villagers[0].ID)

	s.False(e.Tick(s.ctx))
	s.True(e.Tick(s.ctx))

	s.Require().NotNil(saved)
	s.Equal(models.OutcomeVillagersWin, saved.Outcome)
	s.Equal("game-1", saved.ID)
	s.Equal(0, saved.Days)
	s.Equal(s.testTime, saved.StartedAt)

	s.False(results[wolves[0].ID])
	s.True(results[villagers[0].ID])
	s.True(results[villagers[1].ID])

	shared := s.noticesTo(models.SharedRoom())
	s.Contains(shared, "Every werewolf is dead. The villagers win!")
	reveal := shared[len(shared)-1]
	for _, p := range status.Players {
		s.Contains(reveal, p.Name+" - "+messaging.RoleName(p.Role))
	}

	status = e.Status()
	s.Equal(models.PhaseWaiting, status.Phase)
	s.Equal("", status.GameID)
	s.Len(status.Entries, 3)
}

func (s *EngineTestSuite) TestPsychicLearnsExecutedRole() {
	s.expectPlatform()
	s.mockGameRepo.EXPECT().SaveRecord(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	s.mockPlayerRepo.EXPECT().RecordResult(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	e := s.newEngine(s.rules, models.CastPlan{models.RoleWerewolf: 2, models.RolePsychic: 1})

	_, err := e.Start(s.ctx)
	s.Require().NoError(err)
	s.tick(e, 2)

	status := e.Status()
	psychic := playersBy(status, func(p *models.Player) bool { return p.Role == models.RolePsychic })[0]
	wolf := playersBy(status, func(p *models.Player) bool { return p.Role == models.RoleWerewolf })[0]

	s.voteAll(e, wolf.ID, psychic.ID)
	s.tick(e, 2)

	readings := s.noticesTo(models.PrivateRoom(psychic.ID))
	s.Require().Len(readings, 2)
	s.Equal(fmt.Sprintf("The spirit of %s reveals they were the **Werewolf**.", wolf.Name), readings[1])
}

func (s *EngineTestSuite) TestNight_TellerAndKnight() {
	s.expectPlatform()
	rules := s.rules
	rules.AllowFirstNightKill = true
	e := s.newEngine(rules, models.CastPlan{
		models.RoleWerewolf: 2,
		models.RoleTeller:   1,
		models.RoleKnight:   1,
	})

	_, err := e.Start(s.ctx)
	s.Require().NoError(err)
	s.tick(e, 2)

	status := e.Status()
	teller := playersBy(status, func(p *models.Player) bool { return p.Role == models.RoleTeller })[0]
	knight := playersBy(status, func(p *models.Player) bool { return p.Role == models.RoleKnight })[0]
	wolves := playersBy(status, func(p *models.Player) bool { return p.Role == models.RoleWerewolf })
	plain := playersBy(status, func(p *models.Player) bool { return p.Role == models.RoleVillager })
	s.Require().Len(plain, 3)

	// execute a plain villager so the teller and knight survive
	s.voteAll(e, plain[0].ID, plain[1].ID)
	s.tick(e, 2)
	s.Require().Equal(models.PhaseNight, e.Status().Phase)

	inspect := s.lastPrompt(models.ActionInspect)
	s.Require().NotNil(inspect)
	for _, target := range inspect.Targets {
		s.NotEqual(teller.ID, target.PlayerID)
	}

	night := models.Token{Phase: models.PhaseNight, Day: 0}
	s.Require().NoError(e.Submit(game.Submission{PlayerID: teller.ID, Action: models.ActionInspect, Token: night, TargetID: wolves[1].ID}))
	s.Require().NoError(e.Submit(game.Submission{PlayerID: knight.ID, Action: models.ActionProtect, Token: night, TargetID: plain[1].ID}))
	s.Require().NoError(e.Submit(game.Submission{PlayerID: wolves[0].ID, Action: models.ActionKill, Token: night, TargetID: plain[1].ID}))
	s.ErrorIs(e.Submit(game.Submission{PlayerID: wolves[0].ID, Action: models.ActionKill, Token: night, TargetID: wolves[1].ID}), models.ErrInvalidTarget)
	s.ErrorIs(e.Submit(game.Submission{PlayerID: teller.ID, Action: models.ActionProtect, Token: night, TargetID: plain[1].ID}), models.ErrActionNotAllowed)

	s.tick(e, 2)
	status = e.Status()
	s.Equal(models.PhaseDay, status.Phase)
	s.Len(playersBy(status, func(p *models.Player) bool { return !p.Alive }), 1, "protected victim survives")

	s.Contains(s.noticesTo(models.PrivateRoom(teller.ID)), wolves[1].Name+" is a werewolf.")
	s.Contains(s.noticesTo(models.SharedRoom()), "The knight protected the village from the werewolves!")
}

func (s *EngineTestSuite) TestRun_ForceStopWithinOneTick() {
	s.expectPlatform()
	s.mockGameRepo.EXPECT().SaveRecord(gomock.Any(), gomock.Any()).Return(nil)

	ticks := make(chan time.Time)
	s.mockClock.EXPECT().After(time.Second).Return((<-chan time.Time)(ticks)).AnyTimes()

	e := s.newEngine(s.rules, models.CastPlan{models.RoleWerewolf: 1})
	_, err := e.Start(s.ctx)
	s.Require().NoError(err)

	done := make(chan struct{})
	go func() {
		defer close(done)
		e.Run(s.ctx)
	}()

	ticks <- s.testTime
	s.Require().NoError(e.Stop())
	ticks <- s.testTime

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		s.FailNow("run did not return after stop")
	}

	s.Equal(models.PhaseWaiting, e.Status().Phase)
	s.Contains(s.noticesTo(models.SharedRoom()), "The game was stopped.")
}

func (s *EngineTestSuite) TestRun_ContextCancelForcesEnd() {
	s.expectPlatform()

	var outcome models.Outcome
	s.mockGameRepo.EXPECT().
		SaveRecord(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input *gameRepo.SaveRecordInput) error {
			outcome = input.Record.Outcome
			return nil
		})

	ticks := make(chan time.Time)
	s.mockClock.EXPECT().After(gomock.Any()).Return((<-chan time.Time)(ticks)).AnyTimes()

	e := s.newEngine(s.rules, models.CastPlan{models.RoleWerewolf: 1})
	_, err := e.Start(s.ctx)
	s.Require().NoError(err)

	ctx, cancel := context.WithCancel(s.ctx)
	done := make(chan struct{})
	go func() {
		defer close(done)
		e.Run(ctx)
	}()
	cancel()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		s.FailNow("run did not return after cancel")
	}

	s.Equal(models.OutcomeForced, outcome)
	s.Equal(models.PhaseWaiting, e.Status().Phase)
}

func (s *EngineTestSuite) TestDay_MutesTheDead() {
	s.mockNotifier.EXPECT().Notify(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	s.mockNotifier.EXPECT().MoveTo(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	s.mockRooms.EXPECT().PrepareRooms(gomock.Any(), gomock.Any()).Return(nil)

	var mu sync.Mutex
	muted := map[string]bool{}
	s.mockMuter.EXPECT().
		SetMuted(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, playerID string, m bool) error {
			mu.Lock()
			defer mu.Unlock()
			muted[playerID] = m
			return nil
		}).
		AnyTimes()

	e := s.newEngine(s.rules, models.CastPlan{models.RoleWerewolf: 2})
	_, err := e.Start(s.ctx)
	s.Require().NoError(err)
	s.tick(e, 6)

	status := e.Status()
	s.Require().Equal(models.PhaseDay, status.Phase)

	mu.Lock()
	defer mu.Unlock()
	for _, p := range status.Players {
		s.Equal(!p.Alive, muted[p.ID], "player %s", p.ID)
	}
}

func (s *EngineTestSuite) TestMuteFailure_LoggedAsDeliveryError() {
	core, logs := observer.New(zapcore.WarnLevel)
	s.logger = zap.New(core)

	s.mockNotifier.EXPECT().Notify(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	s.mockNotifier.EXPECT().MoveTo(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	s.mockRooms.EXPECT().PrepareRooms(gomock.Any(), gomock.Any()).Return(nil)
	s.mockMuter.EXPECT().
		SetMuted(gomock.Any(), gomock.Any(), true).
		Return(errors.New("member not in voice")).
		MinTimes(1)
	s.mockMuter.EXPECT().SetMuted(gomock.Any(), gomock.Any(), false).Return(nil).AnyTimes()

	e := s.newEngine(s.rules, models.CastPlan{models.RoleWerewolf: 2})
	_, err := e.Start(s.ctx)
	s.Require().NoError(err)
	s.tick(e, 6)
	s.Require().Equal(models.PhaseDay, e.Status().Phase)

	entries := logs.FilterMessage("mute failed").All()
	s.Require().NotEmpty(entries)
	for _, entry := range entries {
		var logged error
		for _, f := range entry.Context {
			if f.Key == "error" {
				logged, _ = f.Interface.(error)
			}
		}
		s.Require().Error(logged)

		var delivery *models.DeliveryError
		s.Require().ErrorAs(logged, &delivery)
		s.Equal(models.SharedRoom(), delivery.Room)
		s.NotEmpty(delivery.PlayerID)
		s.ErrorIs(logged, models.ErrDeliveryFailure)
	}
}

func (s *EngineTestSuite) TestStatus_WaitingShowsSeededEntries() {
	s.mockNotifier.EXPECT().
		RoomOccupants(gomock.Any(), models.SharedRoom()).
		Return([]models.Entrant{{ID: "p1", Name: "Player 1"}, {ID: "p8", Name: "Player 8"}}, nil)

	e := s.newEngine(s.rules, models.CastPlan{models.RoleWerewolf: 1})
	s.Require().NoError(e.SeedEntries(s.ctx))

	status := e.Status()
	s.Equal(models.PhaseWaiting, status.Phase)
	s.Len(status.Entries, 8, "seeding is idempotent for players already registered")
	s.Equal(models.CastPlan{models.RoleWerewolf: 1}, status.Cast)

	s.True(e.Unregister("p8"))
	s.False(e.Unregister("p8"))
	s.Len(e.Status().Entries, 7)
}

func (s *EngineTestSuite) TestNightMessage_MentionsFirstNight() {
	s.expectPlatform()
	e := s.newEngine(s.rules, models.CastPlan{models.RoleWerewolf: 2})

	_, err := e.Start(s.ctx)
	s.Require().NoError(err)
	s.tick(e, 4)

	found := false
	for _, m := range s.noticesTo(models.WerewolfRoom()) {
		if strings.Contains(m, "first night") {
			found = true
		}
	}
	s.True(found)
}
