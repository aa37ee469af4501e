package models

// CastPlan maps each role to the number of players that receive it.
// Entrants left over after the plan is dealt become villagers.
type CastPlan map[Role]int

// Total is the number of explicitly cast players
func (c CastPlan) Total() int {
	total := 0
	for _, count := range c {
		total += count
	}
	return total
}

// Validate checks every role is known and every count is non-negative
func (c CastPlan) Validate() error {
	for role, count := range c {
		if !role.IsValid() || count < 0 {
			return ErrInvalidCastPlan
		}
	}
	return nil
}

// Clone returns an independent copy
func (c CastPlan) Clone() CastPlan {
	out := make(CastPlan, len(c))
	for role, count := range c {
		out[role] = count
	}
	return out
}
