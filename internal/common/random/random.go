package random

import (
	"math/rand"
	"sync"
	"time"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_source.go github.com/KirkDiggler/werewolf/internal/common/random Source

// Source is the single place randomness enters the game: role draws,
// abstain fallbacks, tie-breaks and the fallback kill all go through it.
type Source interface {
	// Intn returns a uniform value in [0, n). n must be positive.
	Intn(n int) int
}

// Roller is a seedable Source safe for concurrent use
type Roller struct {
	mu     sync.Mutex
	random *rand.Rand
}

// Config for the roller
type Config struct {
	// Optional seed for reproducible games and tests
	Seed int64
}

// New creates a new roller
func New(cfg *Config) *Roller {
	var seed int64
	if cfg != nil && cfg.Seed != 0 {
		seed = cfg.Seed
	} else {
		seed = time.Now().UnixNano()
	}

	return &Roller{
		random: rand.New(rand.NewSource(seed)),
	}
}

// Intn returns a uniform value in [0, n)
func (r *Roller) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.random.Intn(n)
}

// Pick returns a uniformly chosen element of items. ok is false when items is empty.
func Pick[T any](src Source, items []T) (item T, ok bool) {
	if len(items) == 0 {
		return item, false
	}
	return items[src.Intn(len(items))], true
}

// Sample draws k distinct elements from items without replacement, preserving
// the draw order. items is not modified. k is clamped to len(items).
func Sample[T any](src Source, items []T, k int) []T {
	pool := make([]T, len(items))
	copy(pool, items)
	if k > len(pool) {
		k = len(pool)
	}

	// partial Fisher-Yates over the copy
	for i := 0; i < k; i++ {
		j := i + src.Intn(len(pool)-i)
		pool[i], pool[j] = pool[j], pool[i]
	}
	return pool[:k]
}
