package roster

import (
	"sort"

	"github.com/KirkDiggler/werewolf/internal/common/random"
	"github.com/KirkDiggler/werewolf/internal/models"
)

// Config holds configuration for the roster
type Config struct {
	// Random is used to draw entrants for each role
	Random random.Source
}

// Roster tracks the entry pool before a game and the dealt players during one.
// It is not safe for concurrent use; the phase engine serializes access.
type Roster struct {
	random random.Source

	// entries preserves join order so draws are reproducible for a given seed
	entries []models.Entrant
	frozen  bool

	players []*models.Player
	index   map[string]*models.Player
}

// New creates an empty roster
func New(cfg *Config) (*Roster, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.Random == nil {
		return nil, ErrNilRandom
	}

	return &Roster{
		random: cfg.Random,
		index:  make(map[string]*models.Player),
	}, nil
}

// Register adds an entrant to the pool. Returns false if they were already
// present or the pool is frozen because a game started.
func (r *Roster) Register(entrant models.Entrant) bool {
	if r.frozen || r.indexOfEntry(entrant.ID) >= 0 {
		return false
	}
	r.entries = append(r.entries, entrant)
	return true
}

// Unregister removes an entrant from the pool. Returns false if they were
// not present or the pool is frozen.
func (r *Roster) Unregister(id string) bool {
	if r.frozen {
		return false
	}
	return r.removeEntry(id)
}

// Entries returns a copy of the entry pool
func (r *Roster) Entries() []models.Entrant {
	out := make([]models.Entrant, len(r.entries))
	copy(out, r.entries)
	return out
}

// Frozen reports whether roles have been dealt
func (r *Roster) Frozen() bool {
	return r.frozen
}

// AssignRoles deals the cast plan to the entry pool. Each role's count is drawn
// uniformly without replacement; leftover entrants become villagers. The pool
// is emptied and frozen. Players are ordered by faction for announcements.
func (r *Roster) AssignRoles(plan models.CastPlan) ([]*models.Player, error) {
	if err := plan.Validate(); err != nil {
		return nil, err
	}
	if r.frozen {
		return nil, models.ErrGameInProgress
	}
	if plan.Total() > len(r.entries) {
		return nil, &models.InsufficientPlayersError{
			Required:  plan.Total(),
			Available: len(r.entries),
		}
	}

	players := make([]*models.Player, 0, len(r.entries))
	for _, role := range models.Roles() {
		count := plan[role]
		if count == 0 {
			continue
		}

		for _, entrant := range random.Sample(r.random, r.entries, count) {
			players = append(players, &models.Player{
				ID:    entrant.ID,
				Name:  entrant.Name,
				Role:  role,
				Alive: true,
			})
			r.removeEntry(entrant.ID)
		}
	}

	for _, entrant := range r.entries {
		players = append(players, &models.Player{
			ID:    entrant.ID,
			Name:  entrant.Name,
			Role:  models.RoleVillager,
			Alive: true,
		})
	}
	r.entries = nil

	sort.SliceStable(players, func(i, j int) bool {
		return players[i].Faction().Less(players[j].Faction())
	})

	r.players = players
	r.index = make(map[string]*models.Player, len(players))
	for _, p := range players {
		r.index[p.ID] = p
	}
	r.frozen = true

	return r.Players(), nil
}

// MarkDead sets a player's alive flag to false. Returns true if the player
// was alive before the call; marking a dead player again is a no-op.
func (r *Roster) MarkDead(id string) (bool, error) {
	p, ok := r.index[id]
	if !ok {
		return false, models.ErrUnknownPlayer
	}
	if !p.Alive {
		return false, nil
	}
	p.Alive = false
	return true, nil
}

// Player returns a copy of a dealt player
func (r *Roster) Player(id string) (*models.Player, error) {
	p, ok := r.index[id]
	if !ok {
		return nil, models.ErrUnknownPlayer
	}
	cp := *p
	return &cp, nil
}

// Players returns copies of every dealt player in faction order
func (r *Roster) Players() []*models.Player {
	return r.filter(func(*models.Player) bool { return true })
}

// Living returns copies of the living players
func (r *Roster) Living() []*models.Player {
	return r.filter(func(p *models.Player) bool { return p.Alive })
}

// LivingByFaction returns the living players of a faction
func (r *Roster) LivingByFaction(faction models.Faction) []*models.Player {
	return r.filter(func(p *models.Player) bool {
		return p.Alive && p.Faction() == faction
	})
}

// LivingByRole returns the living players holding a role
func (r *Roster) LivingByRole(role models.Role) []*models.Player {
	return r.filter(func(p *models.Player) bool {
		return p.Alive && p.Role == role
	})
}

// Reset clears the pool and players and unfreezes the roster
func (r *Roster) Reset() {
	r.entries = nil
	r.players = nil
	r.index = make(map[string]*models.Player)
	r.frozen = false
}

func (r *Roster) filter(keep func(*models.Player) bool) []*models.Player {
	out := make([]*models.Player, 0, len(r.players))
	for _, p := range r.players {
		if keep(p) {
			cp := *p
			out = append(out, &cp)
		}
	}
	return out
}

func (r *Roster) removeEntry(id string) bool {
	i := r.indexOfEntry(id)
	if i < 0 {
		return false
	}
	r.entries = append(r.entries[:i], r.entries[i+1:]...)
	return true
}

func (r *Roster) indexOfEntry(id string) int {
	for i, e := range r.entries {
		if e.ID == id {
			return i
		}
	}
	return -1
}
