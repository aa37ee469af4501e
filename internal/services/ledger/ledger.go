package ledger

import (
	"sync"

	"github.com/KirkDiggler/werewolf/internal/common/random"
	"github.com/KirkDiggler/werewolf/internal/models"
)

const (
	ErrNilConfig models.GameError = "config cannot be nil"
	ErrNilRandom models.GameError = "random source cannot be nil"
)

// Config holds configuration for the ledger
type Config struct {
	// Random drives abstain fallbacks, tie-breaks and the fallback kill
	Random random.Source
}

// Ledger collects the secret actions submitted during one phase. Entries are
// created when a phase opens and discarded when the next one opens; once a
// resolve call starts, further submissions fail with ErrStalePhase.
type Ledger struct {
	mu     sync.Mutex
	random random.Source

	token models.Token
	open  bool

	// living is the snapshot of valid actors and targets, in roster order
	living []*models.Player
	byID   map[string]*models.Player

	// dealt holds every player of the game, dead ones included
	dealt map[string]bool

	votes       map[string]string
	inspects    map[string]string
	protects    map[string]string
	kill        string
	killAllowed bool
}

// New creates a closed ledger
func New(cfg *Config) (*Ledger, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.Random == nil {
		return nil, ErrNilRandom
	}

	return &Ledger{
		random: cfg.Random,
		byID:   make(map[string]*models.Player),
		dealt:  make(map[string]bool),
	}, nil
}

// ResetVotes opens the evening vote with one unset slot per living player.
// players is the whole dealt set; dead players are kept only to tell a dead
// target from an unknown one.
func (l *Ledger) ResetVotes(day int, players []*models.Player) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.reset(models.Token{Phase: models.PhaseEvening, Day: day}, players)
	for _, p := range l.living {
		l.votes[p.ID] = ""
	}
}

// ResetNight opens the night actions. killAllowed is false on nights where
// the ruleset forbids the werewolf kill.
func (l *Ledger) ResetNight(day int, players []*models.Player, killAllowed bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.reset(models.Token{Phase: models.PhaseNight, Day: day}, players)
	l.killAllowed = killAllowed
}

// Token returns the phase and day the ledger was opened for
func (l *Ledger) Token() models.Token {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.token
}

// IsOpen reports whether submissions are currently accepted
func (l *Ledger) IsOpen() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.open
}

// Seal stops accepting submissions
func (l *Ledger) Seal() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.open = false
}

// SubmitVote records or overwrites the voter's choice
func (l *Ledger) SubmitVote(voterID, targetID string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := l.checkActor(models.PhaseEvening, voterID, nil); err != nil {
		return err
	}
	if err := l.checkTarget(voterID, targetID); err != nil {
		return err
	}

	l.votes[voterID] = targetID
	return nil
}

// SubmitInspect records or overwrites a teller's inspection target
func (l *Ledger) SubmitInspect(tellerID, targetID string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	isTeller := func(p *models.Player) bool { return p.Role == models.RoleTeller }
	if err := l.checkActor(models.PhaseNight, tellerID, isTeller); err != nil {
		return err
	}
	if err := l.checkTarget(tellerID, targetID); err != nil {
		return err
	}

	l.inspects[tellerID] = targetID
	return nil
}

// SubmitProtect records or overwrites a knight's protection target
func (l *Ledger) SubmitProtect(knightID, targetID string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	isKnight := func(p *models.Player) bool { return p.Role == models.RoleKnight }
	if err := l.checkActor(models.PhaseNight, knightID, isKnight); err != nil {
		return err
	}
	if err := l.checkTarget(knightID, targetID); err != nil {
		return err
	}

	l.protects[knightID] = targetID
	return nil
}

// SubmitKill sets the pack's single kill target; the latest submission wins
func (l *Ledger) SubmitKill(wolfID, targetID string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := l.checkActor(models.PhaseNight, wolfID, (*models.Player).IsWerewolfAligned); err != nil {
		return err
	}
	if !l.killAllowed {
		return models.ErrActionNotAllowed
	}
	if err := l.checkTarget(wolfID, targetID); err != nil {
		return err
	}
	if l.byID[targetID].IsWerewolfAligned() {
		return models.ErrInvalidTarget
	}

	l.kill = targetID
	return nil
}

// Votes returns a copy of the submitted votes; unset slots map to ""
func (l *Ledger) Votes() map[string]string {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make(map[string]string, len(l.votes))
	for voter, target := range l.votes {
		out[voter] = target
	}
	return out
}

// ResolveVotes seals the ledger and resolves the evening vote. Unset votes
// become a random living player other than the voter. A shared top count is
// broken uniformly at random.
func (l *Ledger) ResolveVotes() (*VoteResult, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.token.Phase != models.PhaseEvening {
		return nil, models.ErrStalePhase
	}
	l.open = false

	result := &VoteResult{
		Votes: make(map[string]string, len(l.votes)),
		Tally: make(map[string]int),
	}

	for _, voter := range l.living {
		target := l.votes[voter.ID]
		if target == "" {
			others := l.livingExcept(func(p *models.Player) bool { return p.ID == voter.ID })
			pick, ok := random.Pick(l.random, others)
			if !ok {
				continue
			}
			target = pick.ID
			result.Abstained = append(result.Abstained, voter.ID)
		}
		result.Votes[voter.ID] = target
		result.Tally[target]++
	}

	// walk in roster order so the tied list, and therefore the draw, is stable
	top := 0
	var leaders []string
	for _, p := range l.living {
		count := result.Tally[p.ID]
		switch {
		case count == 0:
		case count > top:
			top = count
			leaders = []string{p.ID}
		case count == top:
			leaders = append(leaders, p.ID)
		}
	}

	switch len(leaders) {
	case 0:
	case 1:
		result.Executed = leaders[0]
	default:
		result.Tied = leaders
		result.Executed, _ = random.Pick(l.random, leaders)
	}

	return result, nil
}

// ResolveNight seals the ledger and resolves the night. Without a submitted
// kill a random living non-werewolf is attacked. The kill fails if any knight
// guarded the target. Tellers learn only whether their target is werewolf-aligned.
func (l *Ledger) ResolveNight() (*NightResult, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.token.Phase != models.PhaseNight {
		return nil, models.ErrStalePhase
	}
	l.open = false

	result := &NightResult{
		Inspections: make(map[string]Inspection, len(l.inspects)),
	}

	if l.killAllowed {
		result.KillTarget = l.kill
		if result.KillTarget == "" {
			prey := l.livingExcept((*models.Player).IsWerewolfAligned)
			if pick, ok := random.Pick(l.random, prey); ok {
				result.KillTarget = pick.ID
				result.RandomKill = true
			}
		}
	} else {
		result.KillSuppressed = true
	}

	if result.KillTarget != "" {
		for _, guarded := range l.protects {
			if guarded == result.KillTarget {
				result.Protected = true
				break
			}
		}
		if !result.Protected {
			result.Victim = result.KillTarget
		}
	}

	for tellerID, targetID := range l.inspects {
		result.Inspections[tellerID] = Inspection{
			TargetID:        targetID,
			WerewolfAligned: l.byID[targetID].IsWerewolfAligned(),
		}
	}

	return result, nil
}

func (l *Ledger) reset(token models.Token, players []*models.Player) {
	l.token = token
	l.open = true
	l.living = make([]*models.Player, 0, len(players))
	l.byID = make(map[string]*models.Player, len(players))
	l.dealt = make(map[string]bool, len(players))
	for _, p := range players {
		l.dealt[p.ID] = true
		if !p.Alive {
			continue
		}
		cp := *p
		l.living = append(l.living, &cp)
		l.byID[cp.ID] = &cp
	}
	l.votes = make(map[string]string)
	l.inspects = make(map[string]string)
	l.protects = make(map[string]string)
	l.kill = ""
	l.killAllowed = false
}

func (l *Ledger) checkActor(phase models.Phase, actorID string, allowed func(*models.Player) bool) error {
	if !l.open || l.token.Phase != phase {
		return models.ErrStalePhase
	}
	actor, ok := l.byID[actorID]
	if !ok {
		return models.ErrActionNotAllowed
	}
	if allowed != nil && !allowed(actor) {
		return models.ErrActionNotAllowed
	}
	return nil
}

func (l *Ledger) checkTarget(actorID, targetID string) error {
	if actorID == targetID {
		return models.ErrInvalidTarget
	}
	if !l.dealt[targetID] {
		return models.ErrUnknownPlayer
	}
	if _, ok := l.byID[targetID]; !ok {
		return models.ErrInvalidTarget
	}
	return nil
}

func (l *Ledger) livingExcept(skip func(*models.Player) bool) []*models.Player {
	out := make([]*models.Player, 0, len(l.living))
	for _, p := range l.living {
		if !skip(p) {
			out = append(out, p)
		}
	}
	return out
}
