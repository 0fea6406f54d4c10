package practice

// Config bounds round and pool sizes. The round sizes are load-bearing:
// UI pacing and the perfect-round check depend on them.
type Config struct {
	// RoundSize is the number of words per round in most modes.
	RoundSize int

	// MatchRoundSize is the smaller round used by the match mode, where all
	// words of a round are on screen at once.
	MatchRoundSize int

	// PoolCap limits how many words a due or least-practiced fetch pulls
	// into one session. A UX bound, not a correctness requirement.
	PoolCap int
}

// DefaultConfig returns the standard sizes: rounds of 10 (5 for match),
// session pools capped at 20.
func DefaultConfig() Config {
	return Config{
		RoundSize:      10,
		MatchRoundSize: 5,
		PoolCap:        20,
	}
}
