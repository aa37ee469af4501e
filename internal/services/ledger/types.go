package ledger

// VoteResult is the resolved evening vote
type VoteResult struct {
	// Votes maps each voter to their final target, including random fallbacks
	Votes map[string]string

	// Tally maps each target to the number of votes received
	Tally map[string]int

	// Abstained lists voters whose vote was chosen at random
	Abstained []string

	// Tied lists the targets sharing the top count when there was a tie
	Tied []string

	// Executed is the selected target, empty only if nobody could vote
	Executed string
}

// Inspection is what a teller learns about their target
type Inspection struct {
	TargetID        string
	WerewolfAligned bool
}

// NightResult is the resolved night
type NightResult struct {
	// KillTarget is the player the werewolves attacked, empty when suppressed
	KillTarget string

	// RandomKill is set when no kill was submitted and the target was drawn
	RandomKill bool

	// KillSuppressed is set when kills were not allowed this night
	KillSuppressed bool

	// Protected is set when any knight guarded the kill target
	Protected bool

	// Victim is the player who dies, empty when protected or suppressed
	Victim string

	// Inspections maps each teller who submitted to their result
	Inspections map[string]Inspection
}
