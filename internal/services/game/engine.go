package game

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/KirkDiggler/werewolf/internal/common/clock"
	"github.com/KirkDiggler/werewolf/internal/common/uuid"
	"github.com/KirkDiggler/werewolf/internal/models"
	gameRepo "github.com/KirkDiggler/werewolf/internal/repositories/game"
	playerRepo "github.com/KirkDiggler/werewolf/internal/repositories/player"
	"github.com/KirkDiggler/werewolf/internal/services/judge"
	"github.com/KirkDiggler/werewolf/internal/services/ledger"
	"github.com/KirkDiggler/werewolf/internal/services/messaging"
	"github.com/KirkDiggler/werewolf/internal/services/roster"
	"go.uber.org/zap"
)

// Engine drives one guild's game through day, evening and night. State is
// mutated under a single lock; room moves and messages produced by a
// transition are delivered after the lock is released, so submissions are
// never blocked by a slow platform.
type Engine struct {
	guildID        string
	rules          Rules
	callTimeout    time.Duration
	maxConcurrency int

	platform   *Platform
	messaging  messaging.Service
	clock      clock.Clock
	uuid       uuid.UUID
	gameRepo   gameRepo.Repository
	playerRepo playerRepo.Repository
	logger     *zap.Logger

	mu        sync.Mutex
	roster    *roster.Roster
	ledger    *ledger.Ledger
	cast      models.CastPlan
	gameID    string
	phase     models.Phase
	day       int
	countdown int
	startedAt time.Time

	stopRequested atomic.Bool
}

// NewEngine creates an engine waiting for entrants
func NewEngine(cfg *EngineConfig) (*Engine, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.GuildID == "" {
		return nil, ErrMissingGuildID
	}
	if cfg.Platform == nil {
		return nil, ErrNilPlatform
	}
	if cfg.Platform.Notifier == nil {
		return nil, ErrNilNotifier
	}
	if cfg.Messaging == nil {
		return nil, ErrNilMessaging
	}
	if cfg.Random == nil {
		return nil, ErrNilRandom
	}
	if cfg.Clock == nil {
		return nil, ErrNilClock
	}
	if cfg.UUID == nil {
		return nil, ErrNilUUIDGenerator
	}

	r, err := roster.New(&roster.Config{Random: cfg.Random})
	if err != nil {
		return nil, err
	}
	l, err := ledger.New(&ledger.Config{Random: cfg.Random})
	if err != nil {
		return nil, err
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	callTimeout := cfg.CallTimeout
	if callTimeout <= 0 {
		callTimeout = DefaultCallTimeout
	}
	maxConcurrency := cfg.MaxConcurrency
	if maxConcurrency <= 0 {
		maxConcurrency = DefaultMaxConcurrency
	}

	return &Engine{
		guildID:        cfg.GuildID,
		rules:          cfg.Rules.withDefaults(),
		callTimeout:    callTimeout,
		maxConcurrency: maxConcurrency,
		platform:       cfg.Platform,
		messaging:      cfg.Messaging,
		clock:          cfg.Clock,
		uuid:           cfg.UUID,
		gameRepo:       cfg.GameRepo,
		playerRepo:     cfg.PlayerRepo,
		logger:         logger.With(zap.String("guild_id", cfg.GuildID)),
		roster:         r,
		ledger:         l,
		cast:           models.CastPlan{},
		phase:          models.PhaseWaiting,
	}, nil
}

// SeedEntries registers whoever is already in the shared room
func (e *Engine) SeedEntries(ctx context.Context) error {
	callCtx, cancel := context.WithTimeout(ctx, e.callTimeout)
	defer cancel()

	occupants, err := e.platform.Notifier.RoomOccupants(callCtx, models.SharedRoom())
	if err != nil {
		return err
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	for _, entrant := range occupants {
		e.roster.Register(entrant)
	}
	return nil
}

// Register adds an entrant to the pool. It is a no-op during a game.
func (e *Engine) Register(entrant models.Entrant) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.roster.Register(entrant)
}

// Unregister removes an entrant from the pool. It is a no-op during a game.
func (e *Engine) Unregister(id string) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.roster.Unregister(id)
}

// SetCast replaces the cast used by the next game
func (e *Engine) SetCast(plan models.CastPlan) error {
	if err := plan.Validate(); err != nil {
		return err
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	e.cast = plan.Clone()
	return nil
}

// Cast returns the configured cast
func (e *Engine) Cast() models.CastPlan {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.cast.Clone()
}

// Start deals roles from the pool and opens the first day
func (e *Engine) Start(ctx context.Context) (string, error) {
	e.mu.Lock()
	if e.phase != models.PhaseWaiting {
		e.mu.Unlock()
		return "", models.ErrGameInProgress
	}

	// a game needs at least one entrant even with an empty cast
	if len(e.roster.Entries()) == 0 {
		e.mu.Unlock()
		return "", &models.InsufficientPlayersError{Required: max(1, e.cast.Total())}
	}

	players, err := e.roster.AssignRoles(e.cast)
	if err != nil {
		e.mu.Unlock()
		return "", err
	}

	e.gameID = e.uuid.NewUUID()
	e.day = 0
	e.startedAt = e.clock.Now()
	e.stopRequested.Store(false)

	fx := &effects{prepare: players}
	e.announceRoles(ctx, fx, players)
	e.enterDay(ctx, fx)
	gameID := e.gameID
	e.mu.Unlock()

	e.logger.Info("game started",
		zap.String("game_id", gameID),
		zap.Int("players", len(players)),
	)

	e.dispatch(ctx, fx)
	return gameID, nil
}

// Stop asks the running game to end. The game ends on the next tick.
func (e *Engine) Stop() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.phase.IsActive() {
		return models.ErrGameNotRunning
	}
	e.stopRequested.Store(true)
	return nil
}

// Tick advances the countdown by one step. It returns true once no game is
// running, either because the game just ended or because none was started.
func (e *Engine) Tick(ctx context.Context) bool {
	e.mu.Lock()
	if !e.phase.IsActive() {
		e.mu.Unlock()
		return true
	}

	var fx *effects
	if e.stopRequested.Load() {
		fx = &effects{}
		e.end(ctx, fx, models.OutcomeForced)
	} else {
		e.countdown--
		if e.countdown <= 0 {
			fx = e.advance(ctx)
		}
	}
	ended := e.phase == models.PhaseEnded
	e.mu.Unlock()

	e.dispatch(ctx, fx)

	if ended {
		e.finish(ctx)
	}
	return ended
}

// Run ticks the engine until the game ends. Cancelling ctx force-stops the
// game; the final announcement is still delivered.
func (e *Engine) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			_ = e.Stop()
			e.Tick(context.WithoutCancel(ctx))
			return
		case <-e.clock.After(e.rules.TickInterval):
		}

		if e.Tick(ctx) {
			return
		}
	}
}

// Submit validates and records a player's action for the current phase
func (e *Engine) Submit(sub Submission) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.phase.IsActive() {
		return models.ErrGameNotRunning
	}
	if sub.Token != e.ledger.Token() || sub.Token.Phase != e.phase || sub.Token.Day != e.day {
		return models.ErrStalePhase
	}
	if _, err := e.roster.Player(sub.PlayerID); err != nil {
		return err
	}

	switch sub.Action {
	case models.ActionVote:
		return e.ledger.SubmitVote(sub.PlayerID, sub.TargetID)
	case models.ActionInspect:
		return e.ledger.SubmitInspect(sub.PlayerID, sub.TargetID)
	case models.ActionProtect:
		return e.ledger.SubmitProtect(sub.PlayerID, sub.TargetID)
	case models.ActionKill:
		return e.ledger.SubmitKill(sub.PlayerID, sub.TargetID)
	default:
		return ErrUnknownAction
	}
}

// Status returns a snapshot of the game
func (e *Engine) Status() *Status {
	e.mu.Lock()
	defer e.mu.Unlock()

	status := &Status{
		GameID: e.gameID,
		Phase:  e.phase,
		Day:    e.day,
		Cast:   e.cast.Clone(),
	}
	if e.phase.IsActive() {
		status.SecondsLeft = int((time.Duration(e.countdown) * e.rules.TickInterval).Seconds())
		status.Players = e.roster.Players()
	} else {
		status.Entries = e.roster.Entries()
	}
	return status
}

// advance runs when the countdown expires
func (e *Engine) advance(ctx context.Context) *effects {
	fx := &effects{}

	switch e.phase {
	case models.PhaseDay:
		e.enterEvening(ctx, fx)
	case models.PhaseEvening:
		e.resolveEvening(ctx, fx)
	case models.PhaseNight:
		e.resolveNight(ctx, fx)
	}
	return fx
}

func (e *Engine) enterDay(ctx context.Context, fx *effects) {
	e.phase = models.PhaseDay
	e.countdown = e.ticks(e.rules.DayDuration)

	for _, p := range e.roster.Players() {
		fx.move(p.ID, models.SharedRoom())
		if !p.Alive {
			fx.mute(p.ID, true)
		}
	}

	out, err := e.messaging.GetPhaseMessage(ctx, &messaging.GetPhaseMessageInput{
		Phase:   models.PhaseDay,
		Day:     e.day,
		Seconds: int(e.rules.DayDuration.Seconds()),
	})
	if err != nil {
		e.logger.Error("failed to build day message", zap.Error(err))
		return
	}
	fx.notify(models.SharedRoom(), out.Message, nil)
}

func (e *Engine) enterEvening(ctx context.Context, fx *effects) {
	e.phase = models.PhaseEvening
	e.countdown = e.ticks(e.rules.EveningDuration)

	living := e.roster.Living()
	e.ledger.ResetVotes(e.day, e.roster.Players())

	out, err := e.messaging.GetPhaseMessage(ctx, &messaging.GetPhaseMessageInput{
		Phase:   models.PhaseEvening,
		Day:     e.day,
		Seconds: int(e.rules.EveningDuration.Seconds()),
	})
	if err != nil {
		e.logger.Error("failed to build evening message", zap.Error(err))
		return
	}
	fx.notify(models.SharedRoom(), out.Message, e.prompt(models.ActionVote, living))
}

func (e *Engine) resolveEvening(ctx context.Context, fx *effects) {
	result, err := e.ledger.ResolveVotes()
	if err != nil {
		// the ledger was opened for this phase by enterEvening
		e.logger.Error("failed to resolve votes", zap.Error(err))
		e.enterNight(ctx, fx)
		return
	}

	if result.Executed != "" {
		executed, err := e.roster.Player(result.Executed)
		if err != nil {
			e.logger.Error("executed player missing from roster", zap.String("player_id", result.Executed))
		} else {
			if _, err := e.roster.MarkDead(executed.ID); err != nil {
				e.logger.Error("failed to mark executed player", zap.Error(err))
			}
			e.logger.Info("player executed",
				zap.String("game_id", e.gameID),
				zap.String("player_id", executed.ID),
				zap.Int("votes", result.Tally[executed.ID]),
				zap.Int("abstained", len(result.Abstained)),
				zap.Bool("tie", len(result.Tied) > 0),
			)
			e.announceExecution(ctx, fx, executed, result)
		}
	}

	if outcome := judge.Evaluate(e.roster.Players()); outcome.IsEnded() {
		e.end(ctx, fx, outcome)
		return
	}
	e.enterNight(ctx, fx)
}

func (e *Engine) enterNight(ctx context.Context, fx *effects) {
	e.phase = models.PhaseNight
	e.countdown = e.ticks(e.rules.NightDuration)

	killAllowed := e.day > 0 || e.rules.AllowFirstNightKill
	living := e.roster.Living()
	e.ledger.ResetNight(e.day, e.roster.Players(), killAllowed)

	for _, p := range living {
		if p.IsWerewolfAligned() {
			fx.move(p.ID, models.WerewolfRoom())
		} else {
			fx.move(p.ID, models.PrivateRoom(p.ID))
		}
	}

	out, err := e.messaging.GetPhaseMessage(ctx, &messaging.GetPhaseMessageInput{
		Phase:          models.PhaseNight,
		Day:            e.day,
		Seconds:        int(e.rules.NightDuration.Seconds()),
		KillSuppressed: !killAllowed,
	})
	if err != nil {
		e.logger.Error("failed to build night message", zap.Error(err))
	} else {
		fx.notify(models.SharedRoom(), out.Message, nil)
	}

	for _, p := range living {
		switch {
		case p.Role == models.RoleTeller:
			e.promptPlayer(ctx, fx, models.ActionInspect, models.PrivateRoom(p.ID), othersThan(living, p.ID))
		case p.Role == models.RoleKnight:
			e.promptPlayer(ctx, fx, models.ActionProtect, models.PrivateRoom(p.ID), othersThan(living, p.ID))
		}
	}

	if killAllowed {
		prey := make([]*models.Player, 0, len(living))
		for _, p := range living {
			if !p.IsWerewolfAligned() {
				prey = append(prey, p)
			}
		}
		e.promptPlayer(ctx, fx, models.ActionKill, models.WerewolfRoom(), prey)
	} else if out != nil {
		fx.notify(models.WerewolfRoom(), out.Message, nil)
	}
}

func (e *Engine) resolveNight(ctx context.Context, fx *effects) {
	result, err := e.ledger.ResolveNight()
	if err != nil {
		e.logger.Error("failed to resolve night", zap.Error(err))
		result = &ledger.NightResult{}
	}

	if result.RandomKill {
		fx.notify(models.WerewolfRoom(), "No target was chosen, so the pack attacked at random.", nil)
	}

	for tellerID, inspection := range result.Inspections {
		target, err := e.roster.Player(inspection.TargetID)
		if err != nil {
			continue
		}
		out, err := e.messaging.GetInspectionMessage(ctx, &messaging.GetInspectionMessageInput{
			TargetName:      target.Name,
			WerewolfAligned: inspection.WerewolfAligned,
		})
		if err != nil {
			e.logger.Error("failed to build inspection message", zap.Error(err))
			continue
		}
		fx.notify(models.PrivateRoom(tellerID), out.Message, nil)
	}

	report := &messaging.GetNightReportMessageInput{
		Protected:      result.Protected,
		KillSuppressed: result.KillSuppressed,
	}
	if result.Victim != "" {
		victim, err := e.roster.Player(result.Victim)
		if err == nil {
			if _, err := e.roster.MarkDead(victim.ID); err != nil {
				e.logger.Error("failed to mark night victim", zap.Error(err))
			}
			report.VictimName = victim.Name
		}
	}

	e.logger.Info("night resolved",
		zap.String("game_id", e.gameID),
		zap.Int("day", e.day),
		zap.String("victim", result.Victim),
		zap.Bool("protected", result.Protected),
		zap.Bool("random_kill", result.RandomKill),
	)

	var reportMessage string
	if out, err := e.messaging.GetNightReportMessage(ctx, report); err != nil {
		e.logger.Error("failed to build night report", zap.Error(err))
	} else {
		reportMessage = out.Message
	}

	if outcome := judge.Evaluate(e.roster.Players()); outcome.IsEnded() {
		if reportMessage != "" {
			fx.notify(models.SharedRoom(), reportMessage, nil)
		}
		e.end(ctx, fx, outcome)
		return
	}

	e.day++
	if reportMessage != "" {
		fx.notify(models.SharedRoom(), reportMessage, nil)
	}
	e.enterDay(ctx, fx)
}

// end moves the game into the terminal phase. The roster is kept until
// finish so the reveal and record can be delivered.
func (e *Engine) end(ctx context.Context, fx *effects, outcome models.Outcome) {
	e.phase = models.PhaseEnded
	e.countdown = 0
	e.ledger.Seal()

	players := e.roster.Players()
	for _, p := range players {
		fx.move(p.ID, models.SharedRoom())
		fx.mute(p.ID, false)
	}

	out, err := e.messaging.GetGameOverMessage(ctx, &messaging.GetGameOverMessageInput{
		Outcome: outcome,
		Days:    e.day,
		Players: players,
	})
	if err != nil {
		e.logger.Error("failed to build game over message", zap.Error(err))
	} else {
		fx.notify(models.SharedRoom(), out.Title, nil)
		fx.notify(models.SharedRoom(), out.Reveal, nil)
	}

	fx.release = true
	fx.record = &models.GameRecord{
		ID:        e.gameID,
		GuildID:   e.guildID,
		Outcome:   outcome,
		Days:      e.day,
		Players:   players,
		StartedAt: e.startedAt,
		EndedAt:   e.clock.Now(),
	}

	e.logger.Info("game ended",
		zap.String("game_id", e.gameID),
		zap.String("outcome", string(outcome)),
		zap.Int("days", e.day),
	)
}

// finish resets the aggregate after the end effects were delivered and
// re-seeds the pool from the shared room
func (e *Engine) finish(ctx context.Context) {
	e.mu.Lock()
	e.roster.Reset()
	e.gameID = ""
	e.phase = models.PhaseWaiting
	e.day = 0
	e.countdown = 0
	e.startedAt = time.Time{}
	e.stopRequested.Store(false)
	e.mu.Unlock()

	if err := e.SeedEntries(ctx); err != nil {
		e.logger.Warn("failed to seed entries after game", zap.Error(err))
	}
}

func (e *Engine) announceRoles(ctx context.Context, fx *effects, players []*models.Player) {
	var pack []*models.Player
	for _, p := range players {
		if p.IsWerewolfAligned() {
			pack = append(pack, p)
		}
	}

	for _, p := range players {
		input := &messaging.GetRoleAssignmentMessageInput{Player: p}
		if p.IsWerewolfAligned() {
			input.Partners = othersThan(pack, p.ID)
		}

		out, err := e.messaging.GetRoleAssignmentMessage(ctx, input)
		if err != nil {
			e.logger.Error("failed to build role message", zap.Error(err))
			continue
		}
		fx.notify(models.PrivateRoom(p.ID), out.Message, nil)
	}
}

func (e *Engine) announceExecution(ctx context.Context, fx *effects, executed *models.Player, result *ledger.VoteResult) {
	input := &messaging.GetExecutionMessageInput{
		ExecutedName: executed.Name,
		Votes:        result.Tally[executed.ID],
		Abstained:    len(result.Abstained),
	}
	for _, id := range result.Tied {
		if p, err := e.roster.Player(id); err == nil {
			input.TiedNames = append(input.TiedNames, p.Name)
		}
	}

	out, err := e.messaging.GetExecutionMessage(ctx, input)
	if err != nil {
		e.logger.Error("failed to build execution message", zap.Error(err))
	} else {
		fx.notify(models.SharedRoom(), out.Message, nil)
	}

	for _, psychic := range e.roster.LivingByRole(models.RolePsychic) {
		reading, err := e.messaging.GetPsychicMessage(ctx, &messaging.GetPsychicMessageInput{
			TargetName: executed.Name,
			Role:       executed.Role,
		})
		if err != nil {
			e.logger.Error("failed to build psychic message", zap.Error(err))
			continue
		}
		fx.notify(models.PrivateRoom(psychic.ID), reading.Message, nil)
	}
}

func (e *Engine) promptPlayer(ctx context.Context, fx *effects, action models.ActionType, room models.Room, targets []*models.Player) {
	out, err := e.messaging.GetPromptMessage(ctx, &messaging.GetPromptMessageInput{Action: action})
	if err != nil {
		e.logger.Error("failed to build prompt", zap.Error(err))
		return
	}
	fx.notify(room, out.Message, e.prompt(action, targets))
}

func (e *Engine) prompt(action models.ActionType, targets []*models.Player) *models.Prompt {
	p := &models.Prompt{
		Action:  action,
		Token:   e.ledger.Token(),
		Targets: make([]models.Target, 0, len(targets)),
	}
	for _, t := range targets {
		p.Targets = append(p.Targets, models.Target{PlayerID: t.ID, Name: t.Name})
	}
	return p
}

// ticks converts a phase duration into countdown steps
func (e *Engine) ticks(d time.Duration) int {
	n := int(d / e.rules.TickInterval)
	if n < 1 {
		return 1
	}
	return n
}

func othersThan(players []*models.Player, id string) []*models.Player {
	out := make([]*models.Player, 0, len(players))
	for _, p := range players {
		if p.ID != id {
			out = append(out, p)
		}
	}
	return out
}
